package storage

import (
	"errors"

	"github.com/boardwalk/monopoly-backend/app/models"
)

// ErrNotFound is returned for an unknown game id.
var ErrNotFound = errors.New("game not found")

// GameStorage persists one self-contained GameState document per game
// id. ListGames enumerates ids in insertion order.
type GameStorage interface {
	GetGame(gameId string) (*models.GameState, error)
	SaveGame(state *models.GameState) error
	ListGames() ([]string, error)
	DeleteGame(gameId string) error
}
