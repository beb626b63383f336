package storage

import (
	"sync"

	"github.com/boardwalk/monopoly-backend/app/models"
)

// MemoryStorage keeps games in process memory. Useful for tests and
// single-node deployments without Redis.
type MemoryStorage struct {
	mu    sync.RWMutex
	games map[string]*models.GameState
	order []string
}

func NewMemoryStorage() *MemoryStorage {
	return &MemoryStorage{games: make(map[string]*models.GameState)}
}

func (s *MemoryStorage) GetGame(gameId string) (*models.GameState, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	g, ok := s.games[gameId]
	if !ok {
		return nil, ErrNotFound
	}
	return g.Clone(), nil
}

func (s *MemoryStorage) SaveGame(state *models.GameState) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.games[state.Id]; !ok {
		s.order = append(s.order, state.Id)
	}
	s.games[state.Id] = state.Clone()
	return nil
}

func (s *MemoryStorage) ListGames() ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]string(nil), s.order...), nil
}

func (s *MemoryStorage) DeleteGame(gameId string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.games[gameId]; !ok {
		return ErrNotFound
	}
	delete(s.games, gameId)
	for i, id := range s.order {
		if id == gameId {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
	return nil
}
