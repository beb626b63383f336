package engine

import (
	"math/rand"
	"testing"

	"github.com/boardwalk/monopoly-backend/app/models"
	"github.com/boardwalk/monopoly-backend/platform/board"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRollDiceMovesAndCreditsGoOnWrap(t *testing.T) {
	e := testEngine([2]int{6, 4})
	g := twoPlayerGame(e)
	g.Players[0].Position = 35

	next, err := e.Apply(g, action(models.ActionRollDice, "a"))
	require.NoError(t, err)

	a := next.PlayerById("a")
	assert.Equal(t, 5, a.Position)
	assert.Equal(t, 1700, a.Money) // 1500 + 200 salary
	assert.Equal(t, models.PhaseBuying, next.Phase)
	assert.Equal(t, [2]int{6, 4}, next.Dice)
	assert.Equal(t, 10, next.LastRoll)
	assert.True(t, next.HasRolled)
}

func TestMoveBackNeverCreditsGo(t *testing.T) {
	e := testEngine()
	g := twoPlayerGame(e)
	a := g.PlayerById("a")
	a.Position = 35

	card := models.Card{Id: "ch8", Effect: models.CardEffect{Type: models.EffectMoveBack, Value: 3}}
	require.NoError(t, e.applyCard(g, a, card))
	assert.Equal(t, 32, a.Position)
	assert.Equal(t, 1500, a.Money)
}

func TestDoublesAllowAnotherRoll(t *testing.T) {
	e := testEngine([2]int{3, 3})
	g := twoPlayerGame(e)

	next, err := e.Apply(g, action(models.ActionRollDice, "a"))
	require.NoError(t, err)
	assert.Equal(t, 1, next.DoubleCount)
	assert.False(t, next.HasRolled)
	assert.Equal(t, 6, next.PlayerById("a").Position)
}

func TestThirdConsecutiveDoublesJailsWithoutMoving(t *testing.T) {
	e := testEngine([2]int{4, 4})
	g := twoPlayerGame(e)
	g.DoubleCount = 2
	g.Players[0].Position = 5

	next, err := e.Apply(g, action(models.ActionRollDice, "a"))
	require.NoError(t, err)

	a := next.PlayerById("a")
	assert.True(t, a.InJail)
	assert.Equal(t, 10, a.Position)
	assert.Zero(t, next.DoubleCount)
	assert.True(t, next.HasRolled)
	assert.Equal(t, 1500, a.Money)
}

func TestBuyPropertyAndCollectRent(t *testing.T) {
	e := testEngine([2]int{3, 5}, [2]int{3, 5})
	g := twoPlayerGame(e)

	// A rolls 8 onto Vermont Avenue and buys it.
	g1, err := e.Apply(g, action(models.ActionRollDice, "a"))
	require.NoError(t, err)
	require.Equal(t, models.PhaseBuying, g1.Phase)

	g2, err := e.Apply(g1, propertyAction(models.ActionBuyProperty, "a", 8))
	require.NoError(t, err)
	assert.Equal(t, 1400, g2.PlayerById("a").Money)
	assert.Equal(t, "a", g2.Properties[8].Owner)
	assert.Equal(t, models.PhaseRolling, g2.Phase)

	g3, err := e.Apply(g2, action(models.ActionEndTurn, "a"))
	require.NoError(t, err)
	assert.Equal(t, "b", g3.CurrentPlayer().Id)

	// B rolls the same 8 and pays rent on landing.
	g4, err := e.Apply(g3, action(models.ActionRollDice, "b"))
	require.NoError(t, err)
	assert.Equal(t, 1494, g4.PlayerById("b").Money)
	assert.Equal(t, 1406, g4.PlayerById("a").Money)
	assert.Equal(t, models.PhaseRolling, g4.Phase)
}

func TestRollDiceOutOfTurn(t *testing.T) {
	e := testEngine([2]int{1, 2})
	g := twoPlayerGame(e)

	_, err := e.Apply(g, action(models.ActionRollDice, "b"))
	var rule *RuleViolation
	require.ErrorAs(t, err, &rule)
}

func TestRollDiceTwiceRejected(t *testing.T) {
	e := testEngine([2]int{1, 2})
	g := twoPlayerGame(e)

	g1, err := e.Apply(g, action(models.ActionRollDice, "a"))
	require.NoError(t, err)
	_, err = e.Apply(g1, action(models.ActionRollDice, "a"))
	var rule *RuleViolation
	require.ErrorAs(t, err, &rule)
}

func TestBuyPropertyWrongPhase(t *testing.T) {
	e := testEngine()
	g := twoPlayerGame(e)

	_, err := e.Apply(g, propertyAction(models.ActionBuyProperty, "a", 1))
	var rule *RuleViolation
	require.ErrorAs(t, err, &rule)
}

func TestBuyPropertyInsufficientFunds(t *testing.T) {
	e := testEngine([2]int{3, 5})
	g := twoPlayerGame(e)
	g.Players[0].Money = 50

	g1, err := e.Apply(g, action(models.ActionRollDice, "a"))
	require.NoError(t, err)
	_, err = e.Apply(g1, propertyAction(models.ActionBuyProperty, "a", 8))
	var rule *RuleViolation
	require.ErrorAs(t, err, &rule)
	assert.Empty(t, g1.Properties[8].Owner)
}

func TestApplyLeavesInputUntouched(t *testing.T) {
	e := testEngine([2]int{3, 5})
	g := twoPlayerGame(e)
	snapshot := g.Clone()

	_, err := e.Apply(g, action(models.ActionRollDice, "a"))
	require.NoError(t, err)
	assert.Equal(t, snapshot, g)
}

func TestTaxFeedsFreeParkingPool(t *testing.T) {
	b := board.MustLoad()
	cfg := DefaultConfig()
	cfg.CollectFreeParking = true
	e := NewWithRoller(b, cfg, &scriptedRoller{rolls: [][2]int{{1, 3}, {2, 3}}}, rand.NewSource(1))
	g := twoPlayerGame(e)

	// A lands on Income Tax.
	g1, err := e.Apply(g, action(models.ActionRollDice, "a"))
	require.NoError(t, err)
	assert.Equal(t, 1300, g1.PlayerById("a").Money)
	assert.Equal(t, 200, g1.FreeParking)

	g2, err := e.Apply(g1, action(models.ActionEndTurn, "a"))
	require.NoError(t, err)

	// B lands on Free Parking and takes the pool.
	g2.PlayerById("b").Position = 15
	g3, err := e.Apply(g2, action(models.ActionRollDice, "b"))
	require.NoError(t, err)
	assert.Equal(t, 1700, g3.PlayerById("b").Money)
	assert.Zero(t, g3.FreeParking)
}

func TestGoToJailSpaceEndsMovement(t *testing.T) {
	e := testEngine([2]int{2, 3})
	g := twoPlayerGame(e)
	g.Players[0].Position = 25

	next, err := e.Apply(g, action(models.ActionRollDice, "a"))
	require.NoError(t, err)
	a := next.PlayerById("a")
	assert.True(t, a.InJail)
	assert.Equal(t, 10, a.Position)
	assert.True(t, next.HasRolled)
}

func TestJailRollWithoutDoublesStays(t *testing.T) {
	e := testEngine([2]int{1, 2})
	g := twoPlayerGame(e)
	SendToJail(g, e.cfg, "a")

	next, err := e.Apply(g, action(models.ActionRollDice, "a"))
	require.NoError(t, err)
	a := next.PlayerById("a")
	assert.True(t, a.InJail)
	assert.Equal(t, 1, a.JailTurns)
	assert.Equal(t, 10, a.Position)
	assert.True(t, next.HasRolled)
}

func TestJailDoublesWalkFree(t *testing.T) {
	e := testEngine([2]int{4, 4})
	g := twoPlayerGame(e)
	SendToJail(g, e.cfg, "a")

	next, err := e.Apply(g, action(models.ActionRollDice, "a"))
	require.NoError(t, err)
	a := next.PlayerById("a")
	assert.False(t, a.InJail)
	assert.Equal(t, 18, a.Position)
	// No extra roll after leaving jail on doubles.
	assert.True(t, next.HasRolled)
}

func TestJailThirdFailedRollForcesFee(t *testing.T) {
	e := testEngine([2]int{1, 2})
	g := twoPlayerGame(e)
	SendToJail(g, e.cfg, "a")
	g.PlayerById("a").JailTurns = 2

	next, err := e.Apply(g, action(models.ActionRollDice, "a"))
	require.NoError(t, err)
	a := next.PlayerById("a")
	assert.False(t, a.InJail)
	assert.Equal(t, 1450, a.Money)
	assert.Equal(t, 13, a.Position)
}

func TestPayJailFee(t *testing.T) {
	e := testEngine()
	g := twoPlayerGame(e)
	SendToJail(g, e.cfg, "a")

	next, err := e.Apply(g, action(models.ActionPayJailFee, "a"))
	require.NoError(t, err)
	a := next.PlayerById("a")
	assert.False(t, a.InJail)
	assert.Equal(t, 1450, a.Money)
	assert.False(t, next.HasRolled)

	_, err = e.Apply(next, action(models.ActionPayJailFee, "a"))
	var rule *RuleViolation
	require.ErrorAs(t, err, &rule)
}

func TestUseGetOutOfJailCard(t *testing.T) {
	e := testEngine()
	g := twoPlayerGame(e)
	SendToJail(g, e.cfg, "a")
	g.PlayerById("a").JailCards = 1
	g.ChanceJailOut = true

	next, err := e.Apply(g, action(models.ActionUseJailCard, "a"))
	require.NoError(t, err)
	a := next.PlayerById("a")
	assert.False(t, a.InJail)
	assert.Zero(t, a.JailCards)
	assert.False(t, next.ChanceJailOut)
	assert.Equal(t, 1500, a.Money)
}

func TestRentBankruptcyTransfersEstate(t *testing.T) {
	e := testEngine([2]int{1, 1})
	g := twoPlayerGame(e)
	a := g.PlayerById("a")
	a.Money = 10
	a.Position = 37
	giveProperty(g, 6, "a")
	giveProperty(g, 39, "b")
	g.Properties[39].Hotels = 1

	next, err := e.Apply(g, action(models.ActionRollDice, "a"))
	require.NoError(t, err)

	// Boardwalk with a hotel charges 2000; a can only raise 60.
	assert.False(t, next.PlayerById("a").IsActive)
	assert.Zero(t, next.PlayerById("a").Money)
	assert.Equal(t, 1560, next.PlayerById("b").Money)
	assert.Equal(t, "b", next.Properties[6].Owner)
	assert.True(t, next.Properties[6].Mortgaged)
	assert.Equal(t, "b", next.Winner)
	assert.Equal(t, models.PhaseEnded, next.Phase)
}

func TestForcedMortgageCoversDebt(t *testing.T) {
	e := testEngine()
	g := twoPlayerGame(e)
	a := g.PlayerById("a")
	a.Money = 10
	giveProperty(g, 6, "a") // mortgage value 50

	collected := e.charge(g, "a", "b", 40)
	assert.Equal(t, 40, collected)
	assert.Equal(t, 20, a.Money)
	assert.True(t, g.Properties[6].Mortgaged)
	assert.True(t, a.IsActive)
}

func TestVoluntaryBankruptcyRevertsToBank(t *testing.T) {
	e := testEngine()
	g := twoPlayerGame(e)
	giveProperty(g, 1, "a")
	g.Properties[1].Mortgaged = true

	next, err := e.Apply(g, action(models.ActionDeclareBankruptcy, "a"))
	require.NoError(t, err)
	assert.False(t, next.PlayerById("a").IsActive)
	assert.Empty(t, next.Properties[1].Owner)
	assert.False(t, next.Properties[1].Mortgaged)
	assert.Equal(t, "b", next.Winner)
	assert.Equal(t, models.PhaseEnded, next.Phase)
}

func TestEndTurnSkipsInactivePlayers(t *testing.T) {
	e := testEngine()
	g := e.NewGame("g1", []models.PlayerSeed{
		{Id: "a"}, {Id: "b"}, {Id: "c"},
	})
	g.Players[1].IsActive = false
	g.HasRolled = true

	next, err := e.Apply(g, action(models.ActionEndTurn, "a"))
	require.NoError(t, err)
	assert.Equal(t, "c", next.CurrentPlayer().Id)
	assert.False(t, next.HasRolled)
	assert.Zero(t, next.LastRoll)
}

func TestEndTurnRequiresRoll(t *testing.T) {
	e := testEngine()
	g := twoPlayerGame(e)

	_, err := e.Apply(g, action(models.ActionEndTurn, "a"))
	var rule *RuleViolation
	require.ErrorAs(t, err, &rule)
}

func TestUnknownActionType(t *testing.T) {
	e := testEngine()
	g := twoPlayerGame(e)

	_, err := e.Apply(g, action("JUMP_TO_GO", "a"))
	var validation *ValidationError
	require.ErrorAs(t, err, &validation)

	_, err = e.Apply(g, action(models.ActionRollDice, "nobody"))
	require.ErrorAs(t, err, &validation)
}

func TestCardCollectAndPay(t *testing.T) {
	e := testEngine()
	g := twoPlayerGame(e)
	a := g.PlayerById("a")

	require.NoError(t, e.applyCard(g, a, models.Card{Effect: models.CardEffect{Type: models.EffectCollect, Value: 200}}))
	assert.Equal(t, 1700, a.Money)

	require.NoError(t, e.applyCard(g, a, models.Card{Effect: models.CardEffect{Type: models.EffectPay, Value: 50}}))
	assert.Equal(t, 1650, a.Money)
}

func TestCardCollectFromAllPlayers(t *testing.T) {
	e := testEngine()
	g := e.NewGame("g1", []models.PlayerSeed{{Id: "a"}, {Id: "b"}, {Id: "c"}})
	a := g.PlayerById("a")

	card := models.Card{Effect: models.CardEffect{Type: models.EffectCollectFromPlayers, Value: 50}}
	require.NoError(t, e.applyCard(g, a, card))
	assert.Equal(t, 1600, a.Money)
	assert.Equal(t, 1450, g.PlayerById("b").Money)
	assert.Equal(t, 1450, g.PlayerById("c").Money)
}

func TestCardAdvanceToCreditsGoOnWrap(t *testing.T) {
	e := testEngine()
	g := twoPlayerGame(e)
	a := g.PlayerById("a")
	a.Position = 30

	card := models.Card{Effect: models.CardEffect{Type: models.EffectAdvanceTo, Value: 11}}
	require.NoError(t, e.applyCard(g, a, card))
	assert.Equal(t, 11, a.Position)
	assert.Equal(t, 1700, a.Money)
	assert.Equal(t, models.PhaseBuying, g.Phase)
}

func TestCardAdvanceToNearestRailroadDoublesRent(t *testing.T) {
	e := testEngine()
	g := twoPlayerGame(e)
	a := g.PlayerById("a")
	a.Position = 7
	giveProperty(g, 15, "b")

	card := models.Card{Effect: models.CardEffect{Type: models.EffectAdvanceToNearest, Target: models.KindRailroad}}
	require.NoError(t, e.applyCard(g, a, card))
	assert.Equal(t, 15, a.Position)
	// One railroad owned: 25 base, doubled by the card.
	assert.Equal(t, 1450, a.Money)
	assert.Equal(t, 1550, g.PlayerById("b").Money)
}

func TestCardRepairs(t *testing.T) {
	e := testEngine()
	g := twoPlayerGame(e)
	a := g.PlayerById("a")
	giveProperty(g, 1, "a")
	giveProperty(g, 3, "a")
	g.Properties[1].Houses = 2
	g.Properties[3].Hotels = 1

	card := models.Card{Effect: models.CardEffect{Type: models.EffectRepairs, PerHouse: 25, PerHotel: 100}}
	require.NoError(t, e.applyCard(g, a, card))
	assert.Equal(t, 1350, a.Money)
}

func TestCardGetOutOfJailIsHeld(t *testing.T) {
	e := testEngine()
	g := twoPlayerGame(e)
	a := g.PlayerById("a")

	card := models.Card{Effect: models.CardEffect{Type: models.EffectGetOutOfJail}}
	require.NoError(t, e.applyCard(g, a, card))
	assert.Equal(t, 1, a.JailCards)
	assert.False(t, a.InJail)
}

func TestMortgageAndUnmortgageMoveCash(t *testing.T) {
	e := testEngine()
	g := twoPlayerGame(e)
	giveProperty(g, 6, "a")

	g1, err := e.Apply(g, propertyAction(models.ActionMortgageProperty, "a", 6))
	require.NoError(t, err)
	assert.Equal(t, 1550, g1.PlayerById("a").Money)
	assert.True(t, g1.Properties[6].Mortgaged)

	g2, err := e.Apply(g1, propertyAction(models.ActionUnmortgageProperty, "a", 6))
	require.NoError(t, err)
	assert.Equal(t, 1500, g2.PlayerById("a").Money)
	assert.False(t, g2.Properties[6].Mortgaged)

	_, err = e.Apply(g, propertyAction(models.ActionMortgageProperty, "b", 6))
	var rule *RuleViolation
	require.ErrorAs(t, err, &rule)
}

func TestBuildAndSellHouseMoveCash(t *testing.T) {
	e := testEngine()
	g := twoPlayerGame(e)
	giveProperty(g, 1, "a")
	giveProperty(g, 3, "a")

	g1, err := e.Apply(g, propertyAction(models.ActionBuildHouse, "a", 1))
	require.NoError(t, err)
	assert.Equal(t, 1450, g1.PlayerById("a").Money)
	assert.Equal(t, 1, g1.Properties[1].Houses)

	g2, err := e.Apply(g1, propertyAction(models.ActionSellHouse, "a", 1))
	require.NoError(t, err)
	assert.Equal(t, 1475, g2.PlayerById("a").Money)
	assert.Zero(t, g2.Properties[1].Houses)
}

func TestPayRentAction(t *testing.T) {
	e := testEngine()
	g := twoPlayerGame(e)
	giveProperty(g, 1, "b")
	g.LastRoll = 7

	next, err := e.Apply(g, propertyAction(models.ActionPayRent, "a", 1))
	require.NoError(t, err)
	assert.Equal(t, 1498, next.PlayerById("a").Money)
	assert.Equal(t, 1502, next.PlayerById("b").Money)

	_, err = e.Apply(g, propertyAction(models.ActionPayRent, "b", 1))
	var rule *RuleViolation
	require.ErrorAs(t, err, &rule)
}
