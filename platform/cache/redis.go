package cache

import (
	"time"

	"github.com/gomodule/redigo/redis"
)

// CreateRedisPool builds a connection pool against the given address.
func CreateRedisPool(addr string) *redis.Pool {
	return &redis.Pool{
		MaxIdle:     10,
		IdleTimeout: 60 * time.Second,
		Dial:        func() (redis.Conn, error) { return redis.Dial("tcp", addr) },
	}
}
