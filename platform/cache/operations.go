package cache

import "github.com/gomodule/redigo/redis"

func Get(key string, conn redis.Conn) (string, error) {
	return redis.String(conn.Do("GET", key))
}

func Set(key string, value interface{}, conn redis.Conn) error {
	_, err := conn.Do("SET", key, value)
	return err
}

func Del(key string, conn redis.Conn) error {
	_, err := conn.Do("DEL", key)
	return err
}

func Exists(key string, conn redis.Conn) (bool, error) {
	return redis.Bool(conn.Do("EXISTS", key))
}

func RPush(key string, value interface{}, conn redis.Conn) error {
	_, err := conn.Do("RPUSH", key, value)
	return err
}

func LRange(key string, conn redis.Conn) ([]string, error) {
	return redis.Strings(conn.Do("LRANGE", key, 0, -1))
}

func LRem(key string, value interface{}, conn redis.Conn) error {
	_, err := conn.Do("LREM", key, 0, value)
	return err
}
