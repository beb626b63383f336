package engine

import (
	"math/rand"

	"github.com/boardwalk/monopoly-backend/app/models"
	"github.com/boardwalk/monopoly-backend/platform/board"
)

// scriptedRoller replays a fixed dice sequence.
type scriptedRoller struct {
	rolls [][2]int
	next  int
}

func (r *scriptedRoller) Roll() (int, int) {
	d := r.rolls[r.next%len(r.rolls)]
	r.next++
	return d[0], d[1]
}

func testEngine(rolls ...[2]int) *Engine {
	b := board.MustLoad()
	cfg := DefaultConfig()
	if len(rolls) == 0 {
		return New(b, cfg, rand.NewSource(1))
	}
	return NewWithRoller(b, cfg, &scriptedRoller{rolls: rolls}, rand.NewSource(1))
}

func twoPlayerGame(e *Engine) *models.GameState {
	return e.NewGame("g1", []models.PlayerSeed{
		{Id: "a", Name: "Alice", Color: "red"},
		{Id: "b", Name: "Bob", Color: "blue"},
	})
}

func action(kind, playerId string) models.Action {
	return models.Action{Type: kind, PlayerId: playerId}
}

func propertyAction(kind, playerId string, spaceId int) models.Action {
	return models.Action{Type: kind, PlayerId: playerId, Data: models.ActionData{PropertyId: spaceId}}
}

// giveProperty hands a space to a player directly, for test setup.
func giveProperty(g *models.GameState, spaceId int, owner string) {
	g.Properties[spaceId].Owner = owner
}
