package services

import (
	"errors"
	"sync"

	"github.com/boardwalk/monopoly-backend/app/engine"
	"github.com/boardwalk/monopoly-backend/app/models"
	"github.com/boardwalk/monopoly-backend/platform/storage"
	uuid "github.com/satori/go.uuid"
	"github.com/sirupsen/logrus"
)

// Event names emitted after state changes.
const (
	EventGameUpdate   = "gameUpdate"
	EventGameAction   = "gameAction"
	EventPlayerJoined = "playerJoined"
	EventPlayerLeft   = "playerLeft"
)

// Emitter fans an event out to every subscriber of a game id.
// Delivery is at-least-once and unordered across subscribers.
type Emitter interface {
	Emit(gameId string, event string, data interface{})
}

// GameService maps external requests onto engine transitions and keeps
// the storage write-back ordered: actions for one game id run strictly
// one at a time, and the save completes before the next action for that
// game is accepted. Different game ids proceed in parallel.
type GameService struct {
	engine  *engine.Engine
	store   storage.GameStorage
	emitter Emitter

	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

func NewGameService(e *engine.Engine, store storage.GameStorage, emitter Emitter) *GameService {
	return &GameService{
		engine:  e,
		store:   store,
		emitter: emitter,
		locks:   make(map[string]*sync.Mutex),
	}
}

// SetEmitter wires the broadcast collaborator. Meant for startup, where
// the socket server needs the service and vice versa.
func (s *GameService) SetEmitter(emitter Emitter) {
	s.emitter = emitter
}

// lockFor returns the per-game mutex, creating it on first use.
func (s *GameService) lockFor(gameId string) *sync.Mutex {
	s.mu.Lock()
	defer s.mu.Unlock()
	l, ok := s.locks[gameId]
	if !ok {
		l = &sync.Mutex{}
		s.locks[gameId] = l
	}
	return l
}

// CreateGame seeds and persists a new game, returning its id.
func (s *GameService) CreateGame(seats []models.PlayerSeed) (string, error) {
	if len(seats) == 0 {
		return "", &engine.ValidationError{Msg: "a game needs at least one player"}
	}
	gameId := uuid.NewV4().String()
	state := s.engine.NewGame(gameId, seats)
	if err := s.store.SaveGame(state); err != nil {
		return "", err
	}
	logrus.WithFields(logrus.Fields{"game_id": gameId, "players": len(seats)}).Info("game created")
	return gameId, nil
}

// ProcessAction runs one action end to end: load, apply, save,
// broadcast. Engine errors pass through untranslated.
func (s *GameService) ProcessAction(gameId string, action models.Action) (*models.GameState, error) {
	lock := s.lockFor(gameId)
	lock.Lock()
	defer lock.Unlock()

	state, err := s.loadGame(gameId)
	if err != nil {
		return nil, err
	}
	next, err := s.engine.Apply(state, action)
	if err != nil {
		return nil, err
	}
	if err := s.store.SaveGame(next); err != nil {
		logrus.WithError(err).WithField("game_id", gameId).Error("persisting game state failed")
		return nil, err
	}
	logrus.WithFields(logrus.Fields{
		"game_id":   gameId,
		"player_id": action.PlayerId,
		"action":    action.Type,
		"phase":     next.Phase,
	}).Debug("action applied")
	s.broadcast(gameId, next, action)
	return next, nil
}

func (s *GameService) broadcast(gameId string, state *models.GameState, action models.Action) {
	if s.emitter == nil {
		return
	}
	s.emitter.Emit(gameId, EventGameUpdate, state)
	s.emitter.Emit(gameId, EventGameAction, action)
}

// GetGame returns the current persisted state.
func (s *GameService) GetGame(gameId string) (*models.GameState, error) {
	return s.loadGame(gameId)
}

func (s *GameService) loadGame(gameId string) (*models.GameState, error) {
	state, err := s.store.GetGame(gameId)
	if errors.Is(err, storage.ErrNotFound) {
		return nil, &engine.NotFoundError{Msg: "no game with id " + gameId}
	}
	return state, err
}

// ListGames enumerates game ids in insertion order.
func (s *GameService) ListGames() ([]string, error) {
	return s.store.ListGames()
}

// DeleteGame removes a game from storage.
func (s *GameService) DeleteGame(gameId string) error {
	lock := s.lockFor(gameId)
	lock.Lock()
	defer lock.Unlock()

	err := s.store.DeleteGame(gameId)
	if errors.Is(err, storage.ErrNotFound) {
		return &engine.NotFoundError{Msg: "no game with id " + gameId}
	}
	return err
}

// AddPlayer seats another player in a game that has not started.
func (s *GameService) AddPlayer(gameId string, seat models.PlayerSeed) (*models.GameState, error) {
	lock := s.lockFor(gameId)
	lock.Lock()
	defer lock.Unlock()

	state, err := s.loadGame(gameId)
	if err != nil {
		return nil, err
	}
	if state.Phase != models.PhaseWaiting {
		return nil, &engine.RuleViolation{Msg: "game has already started"}
	}
	if state.PlayerById(seat.Id) != nil {
		return nil, &engine.RuleViolation{Msg: "player " + seat.Id + " already seated"}
	}
	next := state.Clone()
	next.Players = append(next.Players, models.Player{
		Id:       seat.Id,
		Name:     seat.Name,
		Color:    seat.Color,
		Avatar:   seat.Avatar,
		Money:    s.engine.Config().StartingMoney,
		IsActive: true,
	})
	if err := s.store.SaveGame(next); err != nil {
		return nil, err
	}
	if s.emitter != nil {
		s.emitter.Emit(gameId, EventPlayerJoined, seat)
		s.emitter.Emit(gameId, EventGameUpdate, next)
	}
	return next, nil
}

// AddSpectator registers a watching client on the game.
func (s *GameService) AddSpectator(gameId, spectatorId string) (*models.GameState, error) {
	lock := s.lockFor(gameId)
	lock.Lock()
	defer lock.Unlock()

	state, err := s.loadGame(gameId)
	if err != nil {
		return nil, err
	}
	for _, id := range state.Spectators {
		if id == spectatorId {
			return state, nil
		}
	}
	next := state.Clone()
	next.Spectators = append(next.Spectators, spectatorId)
	if err := s.store.SaveGame(next); err != nil {
		return nil, err
	}
	if s.emitter != nil {
		s.emitter.Emit(gameId, EventGameUpdate, next)
	}
	return next, nil
}

// RemoveSpectator drops a watching client from the game.
func (s *GameService) RemoveSpectator(gameId, spectatorId string) (*models.GameState, error) {
	lock := s.lockFor(gameId)
	lock.Lock()
	defer lock.Unlock()

	state, err := s.loadGame(gameId)
	if err != nil {
		return nil, err
	}
	next := state.Clone()
	kept := next.Spectators[:0]
	for _, id := range next.Spectators {
		if id != spectatorId {
			kept = append(kept, id)
		}
	}
	next.Spectators = kept
	if err := s.store.SaveGame(next); err != nil {
		return nil, err
	}
	if s.emitter != nil {
		s.emitter.Emit(gameId, EventPlayerLeft, spectatorId)
		s.emitter.Emit(gameId, EventGameUpdate, next)
	}
	return next, nil
}
