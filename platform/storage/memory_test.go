package storage

import (
	"testing"

	"github.com/boardwalk/monopoly-backend/app/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleGame(id string) *models.GameState {
	return &models.GameState{
		Id:    id,
		Phase: models.PhaseWaiting,
		Players: []models.Player{
			{Id: "a", Name: "Alice", Money: 1500, IsActive: true},
		},
		Properties: []models.PropertyState{{SpaceId: 0}, {SpaceId: 1}},
		Spectators: []string{},
	}
}

func TestMemorySaveAndGet(t *testing.T) {
	s := NewMemoryStorage()
	require.NoError(t, s.SaveGame(sampleGame("g1")))

	got, err := s.GetGame("g1")
	require.NoError(t, err)
	assert.Equal(t, "g1", got.Id)
	assert.Equal(t, 1500, got.Players[0].Money)
}

func TestMemoryGetMissing(t *testing.T) {
	s := NewMemoryStorage()
	_, err := s.GetGame("nope")
	require.ErrorIs(t, err, ErrNotFound)
}

func TestMemoryReturnsIsolatedCopies(t *testing.T) {
	s := NewMemoryStorage()
	original := sampleGame("g1")
	require.NoError(t, s.SaveGame(original))

	// Mutating the saved value must not leak into storage.
	original.Players[0].Money = 0

	first, err := s.GetGame("g1")
	require.NoError(t, err)
	assert.Equal(t, 1500, first.Players[0].Money)

	// Nor should mutating a returned copy.
	first.Players[0].Money = 7
	second, err := s.GetGame("g1")
	require.NoError(t, err)
	assert.Equal(t, 1500, second.Players[0].Money)
}

func TestMemoryListInsertionOrder(t *testing.T) {
	s := NewMemoryStorage()
	require.NoError(t, s.SaveGame(sampleGame("g1")))
	require.NoError(t, s.SaveGame(sampleGame("g2")))
	require.NoError(t, s.SaveGame(sampleGame("g3")))

	// Re-saving must not duplicate the id.
	require.NoError(t, s.SaveGame(sampleGame("g2")))

	ids, err := s.ListGames()
	require.NoError(t, err)
	assert.Equal(t, []string{"g1", "g2", "g3"}, ids)
}

func TestMemoryDelete(t *testing.T) {
	s := NewMemoryStorage()
	require.NoError(t, s.SaveGame(sampleGame("g1")))
	require.NoError(t, s.SaveGame(sampleGame("g2")))

	require.NoError(t, s.DeleteGame("g1"))
	_, err := s.GetGame("g1")
	require.ErrorIs(t, err, ErrNotFound)

	ids, err := s.ListGames()
	require.NoError(t, err)
	assert.Equal(t, []string{"g2"}, ids)

	require.ErrorIs(t, s.DeleteGame("g1"), ErrNotFound)
}
