package controllers

import (
	"errors"

	"github.com/boardwalk/monopoly-backend/app/engine"
	"github.com/boardwalk/monopoly-backend/app/models"
	"github.com/boardwalk/monopoly-backend/app/services"
	"github.com/boardwalk/monopoly-backend/pkg"
	"github.com/boardwalk/monopoly-backend/platform/database"
	"github.com/go-pg/pg/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

// GameController exposes the lobby and the action endpoint over HTTP.
// Lobby records live in Postgres; game states live in the storage
// backend behind the game service.
type GameController struct {
	Svc *services.GameService
	DB  *pg.DB
}

type createGameDto struct {
	Name    string              `json:"name"`
	Players []models.PlayerSeed `json:"players"`
}

func (gc *GameController) CreateGame(c *fiber.Ctx) error {
	dto := new(createGameDto)
	if err := c.BodyParser(dto); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
	}

	gameId, err := gc.Svc.CreateGame(dto.Players)
	if err != nil {
		return gc.fail(c, err)
	}
	code := pkg.RandString(6)
	if gc.DB != nil {
		rec := &database.GameRecord{Id: gameId, Name: dto.Name, Code: code, Status: database.StatusOpen}
		if err := database.CreateGameRecord(gc.DB, rec); err != nil {
			logrus.WithError(err).WithField("game_id", gameId).Error("creating lobby record")
		}
	}
	return c.JSON(fiber.Map{"id": gameId, "code": code})
}

func (gc *GameController) GetGame(c *fiber.Ctx) error {
	state, err := gc.Svc.GetGame(c.Params("id"))
	if err != nil {
		return gc.fail(c, err)
	}
	return c.JSON(state)
}

func (gc *GameController) ListGames(c *fiber.Ctx) error {
	ids, err := gc.Svc.ListGames()
	if err != nil {
		return gc.fail(c, err)
	}
	return c.JSON(fiber.Map{"games": ids})
}

// ListOpenGames serves the lobby: discoverable games not yet started.
func (gc *GameController) ListOpenGames(c *fiber.Ctx) error {
	if gc.DB == nil {
		return c.JSON([]database.GameRecord{})
	}
	recs, err := database.ListGameRecords(gc.DB, database.StatusOpen)
	if err != nil {
		return gc.fail(c, err)
	}
	return c.JSON(recs)
}

func (gc *GameController) DeleteGame(c *fiber.Ctx) error {
	gameId := c.Params("id")
	if err := gc.Svc.DeleteGame(gameId); err != nil {
		return gc.fail(c, err)
	}
	if gc.DB != nil {
		if err := database.DeleteGameRecord(gc.DB, gameId); err != nil {
			logrus.WithError(err).WithField("game_id", gameId).Error("deleting lobby record")
		}
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func (gc *GameController) ProcessAction(c *fiber.Ctx) error {
	gameId := c.Params("id")
	action := new(models.Action)
	if err := c.BodyParser(action); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid action body"})
	}

	state, err := gc.Svc.ProcessAction(gameId, *action)
	if err != nil {
		return gc.fail(c, err)
	}
	if gc.DB != nil {
		status := database.StatusInProgress
		if state.Phase == models.PhaseEnded {
			status = database.StatusEnded
		}
		if err := database.UpdateGameStatus(gc.DB, gameId, status); err != nil {
			logrus.WithError(err).WithField("game_id", gameId).Error("updating lobby record")
		}
	}
	return c.JSON(state)
}

// fail maps the engine error taxonomy onto HTTP statuses without
// changing the message.
func (gc *GameController) fail(c *fiber.Ctx, err error) error {
	var (
		validation *engine.ValidationError
		notFound   *engine.NotFoundError
		rule       *engine.RuleViolation
	)
	status := fiber.StatusInternalServerError
	switch {
	case errors.As(err, &validation):
		status = fiber.StatusBadRequest
	case errors.As(err, &notFound):
		status = fiber.StatusNotFound
	case errors.As(err, &rule):
		status = fiber.StatusConflict
	}
	return c.Status(status).JSON(fiber.Map{"error": err.Error()})
}
