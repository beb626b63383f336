package storage

import (
	"encoding/json"

	"github.com/boardwalk/monopoly-backend/app/models"
	"github.com/boardwalk/monopoly-backend/platform/cache"
	"github.com/gomodule/redigo/redis"
)

const gameIndexKey = "games.index"

// RedisStorage stores each GameState as one JSON document under
// game.{id}, with an insertion-ordered id list for enumeration.
type RedisStorage struct {
	pool *redis.Pool
}

func NewRedisStorage(pool *redis.Pool) *RedisStorage {
	return &RedisStorage{pool: pool}
}

func gameKey(gameId string) string {
	return "game." + gameId
}

func (s *RedisStorage) GetGame(gameId string) (*models.GameState, error) {
	conn := s.pool.Get()
	defer conn.Close()

	doc, err := cache.Get(gameKey(gameId), conn)
	if err == redis.ErrNil {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	var state models.GameState
	if err := json.Unmarshal([]byte(doc), &state); err != nil {
		return nil, err
	}
	return &state, nil
}

func (s *RedisStorage) SaveGame(state *models.GameState) error {
	conn := s.pool.Get()
	defer conn.Close()

	doc, err := json.Marshal(state)
	if err != nil {
		return err
	}
	known, err := cache.Exists(gameKey(state.Id), conn)
	if err != nil {
		return err
	}
	if err := cache.Set(gameKey(state.Id), doc, conn); err != nil {
		return err
	}
	if !known {
		return cache.RPush(gameIndexKey, state.Id, conn)
	}
	return nil
}

func (s *RedisStorage) ListGames() ([]string, error) {
	conn := s.pool.Get()
	defer conn.Close()
	return cache.LRange(gameIndexKey, conn)
}

func (s *RedisStorage) DeleteGame(gameId string) error {
	conn := s.pool.Get()
	defer conn.Close()

	known, err := cache.Exists(gameKey(gameId), conn)
	if err != nil {
		return err
	}
	if !known {
		return ErrNotFound
	}
	if err := cache.Del(gameKey(gameId), conn); err != nil {
		return err
	}
	return cache.LRem(gameIndexKey, gameId, conn)
}
