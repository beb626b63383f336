package engine

import (
	"math/rand"

	"github.com/boardwalk/monopoly-backend/app/models"
	"github.com/boardwalk/monopoly-backend/platform/board"
)

// Engine advances a game one validated action at a time. It holds no
// per-game state; every transition takes the current GameState and
// returns the next one. A failed transition returns the error and
// leaves the input state untouched.
type Engine struct {
	board  *board.Board
	cfg    Config
	roller Roller
	rng    *rand.Rand
}

// New builds an engine drawing all randomness (dice and deck shuffles)
// from the given source.
func New(b *board.Board, cfg Config, src rand.Source) *Engine {
	rng := rand.New(src)
	return &Engine{board: b, cfg: cfg, roller: &randRoller{rng: rng}, rng: rng}
}

// NewWithRoller substitutes a custom dice roller; shuffles still come
// from src.
func NewWithRoller(b *board.Board, cfg Config, roller Roller, src rand.Source) *Engine {
	return &Engine{board: b, cfg: cfg, roller: roller, rng: rand.New(src)}
}

// Config returns the rule parameters the engine was built with.
func (e *Engine) Config() Config {
	return e.cfg
}

// NewGame seeds a fresh game: players at GO with the configured
// starting cash, all spaces unowned, both decks shuffled.
func (e *Engine) NewGame(id string, seats []models.PlayerSeed) *models.GameState {
	players := make([]models.Player, 0, len(seats))
	for _, s := range seats {
		players = append(players, models.Player{
			Id:       s.Id,
			Name:     s.Name,
			Color:    s.Color,
			Avatar:   s.Avatar,
			Position: 0,
			Money:    e.cfg.StartingMoney,
			IsActive: true,
		})
	}

	props := make([]models.PropertyState, e.board.Size())
	for i := range props {
		props[i].SpaceId = i
	}

	community := CommunityChestCards()
	chance := ChanceCards()
	shuffleCards(community, e.rng)
	shuffleCards(chance, e.rng)

	return &models.GameState{
		Id:             id,
		Players:        players,
		Phase:          models.PhaseWaiting,
		Properties:     props,
		CommunityCards: community,
		ChanceCards:    chance,
		Spectators:     []string{},
	}
}

// Apply validates and executes one action, returning the next state.
// The input state is never mutated: work happens on a structural clone
// that is only returned on success.
func (e *Engine) Apply(g *models.GameState, action models.Action) (*models.GameState, error) {
	if g.Phase == models.PhaseEnded {
		return nil, rulef("game is over")
	}
	p := g.PlayerById(action.PlayerId)
	if p == nil {
		return nil, validationf("unknown player %q", action.PlayerId)
	}
	if !p.IsActive {
		return nil, rulef("player %s is out of the game", action.PlayerId)
	}

	next := g.Clone()
	var err error
	switch action.Type {
	case models.ActionRollDice:
		err = e.applyRollDice(next, action)
	case models.ActionBuyProperty:
		err = e.applyBuyProperty(next, action)
	case models.ActionEndTurn:
		err = e.applyEndTurn(next, action)
	case models.ActionPayRent:
		err = e.applyPayRent(next, action)
	case models.ActionMortgageProperty:
		err = e.applyMortgage(next, action, true)
	case models.ActionUnmortgageProperty:
		err = e.applyMortgage(next, action, false)
	case models.ActionBuildHouse:
		err = e.applyBuild(next, action, false)
	case models.ActionBuildHotel:
		err = e.applyBuild(next, action, true)
	case models.ActionSellHouse:
		err = e.applySell(next, action, false)
	case models.ActionSellHotel:
		err = e.applySell(next, action, true)
	case models.ActionTradeOffer:
		err = e.applyTradeOffer(next, action)
	case models.ActionTradeAccept:
		err = e.applyTradeAccept(next, action)
	case models.ActionTradeReject:
		err = e.applyTradeReject(next, action)
	case models.ActionUseJailCard:
		err = e.applyUseJailCard(next, action)
	case models.ActionPayJailFee:
		err = e.applyPayJailFee(next, action)
	case models.ActionDeclareBankruptcy:
		err = e.declareBankruptcy(next, action.PlayerId, "")
	default:
		err = validationf("unknown action type %q", action.Type)
	}
	if err != nil {
		return nil, err
	}
	return next, nil
}

// requireTurn checks the action comes from the player whose turn it is.
func (e *Engine) requireTurn(g *models.GameState, playerId string) (*models.Player, error) {
	p := g.CurrentPlayer()
	if p.Id != playerId {
		return nil, rulef("not %s's turn", playerId)
	}
	return p, nil
}

func (e *Engine) applyRollDice(g *models.GameState, action models.Action) error {
	p, err := e.requireTurn(g, action.PlayerId)
	if err != nil {
		return err
	}
	if g.HasRolled {
		return rulef("dice already rolled this turn")
	}
	// Rolling while a purchase is open declines it.
	if g.Phase != models.PhaseWaiting && g.Phase != models.PhaseRolling && g.Phase != models.PhaseBuying {
		return rulef("cannot roll during %s", g.Phase)
	}

	d1, d2 := e.roller.Roll()
	g.Dice = [2]int{d1, d2}
	g.LastRoll = d1 + d2
	doubles := d1 == d2

	if p.InJail {
		return e.rollFromJail(g, p, doubles)
	}

	if doubles {
		g.DoubleCount++
		if g.DoubleCount >= e.cfg.MaxDoubles {
			// Third consecutive doubles: straight to jail, no movement.
			SendToJail(g, e.cfg, p.Id)
			g.DoubleCount = 0
			g.HasRolled = true
			g.Phase = models.PhaseRolling
			return nil
		}
	} else {
		g.DoubleCount = 0
		g.HasRolled = true
	}

	e.movePlayer(g, p, g.LastRoll, true)
	return e.resolveLanding(g, p)
}

// rollFromJail handles the in-jail branch of ROLL_DICE: doubles walk
// free, the third failed attempt forces the fee.
func (e *Engine) rollFromJail(g *models.GameState, p *models.Player, doubles bool) error {
	g.HasRolled = true
	g.DoubleCount = 0

	if doubles {
		ReleaseFromJail(g, p.Id)
		e.movePlayer(g, p, g.LastRoll, true)
		return e.resolveLanding(g, p)
	}

	p.JailTurns++
	if p.JailTurns < e.cfg.MaxJailTurns {
		g.Phase = models.PhaseRolling
		return nil
	}

	// Out of attempts: the fee is due whether or not it hurts.
	e.charge(g, p.Id, "", e.cfg.JailFee)
	if !g.PlayerById(p.Id).IsActive {
		return nil
	}
	ReleaseFromJail(g, p.Id)
	e.movePlayer(g, p, g.LastRoll, true)
	return e.resolveLanding(g, p)
}

// movePlayer relocates a player by steps (negative for card move-back)
// and credits the GO salary on a wrap when creditGo is set. Direct
// transfers (jail) and move-back effects never credit GO.
func (e *Engine) movePlayer(g *models.GameState, p *models.Player, steps int, creditGo bool) {
	size := e.board.Size()
	old := p.Position
	p.Position = ((old+steps)%size + size) % size
	if creditGo && p.Position < old {
		p.Money += e.cfg.GoSalary
	}
}

// resolveLanding dispatches on the space the player now occupies. It
// runs immediately after every movement, including card relocations.
func (e *Engine) resolveLanding(g *models.GameState, p *models.Player) error {
	sp := e.board.SpaceAt(p.Position)
	g.Phase = models.PhaseRolling

	if sp.Ownable() {
		ps := g.Properties[sp.Id]
		switch {
		case ps.Owner == "":
			g.Phase = models.PhaseBuying
		case ps.Owner == p.Id:
			// Own space, nothing to do.
		default:
			rent, err := RentDue(e.board, g, sp.Id, g.LastRoll, 1)
			if err != nil {
				return err
			}
			e.charge(g, p.Id, ps.Owner, rent)
		}
		return nil
	}

	switch sp.Special {
	case models.SpecialTax:
		collected := e.charge(g, p.Id, "", sp.TaxAmount)
		if e.cfg.CollectFreeParking {
			g.FreeParking += collected
		}
	case models.SpecialChest:
		return e.applyCard(g, p, e.drawCard(g, models.DeckCommunity))
	case models.SpecialChance:
		return e.applyCard(g, p, e.drawCard(g, models.DeckChance))
	case models.SpecialGoToJail:
		SendToJail(g, e.cfg, p.Id)
		g.DoubleCount = 0
		g.HasRolled = true
	case models.SpecialFreeParking:
		if e.cfg.CollectFreeParking {
			p.Money += g.FreeParking
			g.FreeParking = 0
		}
	}
	return nil
}

// applyCard executes a drawn card's effect against the drawing player.
func (e *Engine) applyCard(g *models.GameState, p *models.Player, card models.Card) error {
	eff := card.Effect
	switch eff.Type {
	case models.EffectCollect:
		p.Money += eff.Value
	case models.EffectPay:
		e.charge(g, p.Id, "", eff.Value)
	case models.EffectCollectFromPlayers:
		for i := range g.Players {
			other := &g.Players[i]
			if other.Id == p.Id || !other.IsActive {
				continue
			}
			e.charge(g, other.Id, p.Id, eff.Value)
		}
	case models.EffectPayToPlayers:
		for i := range g.Players {
			other := &g.Players[i]
			if other.Id == p.Id || !other.IsActive {
				continue
			}
			e.charge(g, p.Id, other.Id, eff.Value)
			if !g.PlayerById(p.Id).IsActive {
				return nil
			}
		}
	case models.EffectMoveBack:
		e.movePlayer(g, p, -eff.Value, false)
		return e.resolveLanding(g, p)
	case models.EffectAdvanceTo:
		steps := ((eff.Value-p.Position)%e.board.Size() + e.board.Size()) % e.board.Size()
		e.movePlayer(g, p, steps, true)
		return e.resolveLanding(g, p)
	case models.EffectAdvanceToNearest:
		return e.advanceToNearest(g, p, eff.Target)
	case models.EffectGoToJail:
		SendToJail(g, e.cfg, p.Id)
		g.DoubleCount = 0
		g.HasRolled = true
	case models.EffectGetOutOfJail:
		p.JailCards++
	case models.EffectRepairs:
		total := 0
		for _, id := range OwnedSpaces(g, p.Id) {
			ps := g.Properties[id]
			total += ps.Houses*eff.PerHouse + ps.Hotels*eff.PerHotel
		}
		e.charge(g, p.Id, "", total)
	default:
		return statef("card %s has unknown effect %q", card.Id, eff.Type)
	}
	return nil
}

// advanceToNearest moves to the next space of the given kind. An owned
// destination charges the card's premium rent (double for railroads,
// 10x dice for utilities); an unowned one opens the normal purchase.
func (e *Engine) advanceToNearest(g *models.GameState, p *models.Player, kind models.SpaceKind) error {
	sp := e.board.NearestOfKindAhead(p.Position, kind)
	steps := ((sp.Id-p.Position)%e.board.Size() + e.board.Size()) % e.board.Size()
	e.movePlayer(g, p, steps, true)

	g.Phase = models.PhaseRolling
	ps := g.Properties[sp.Id]
	switch {
	case ps.Owner == "":
		g.Phase = models.PhaseBuying
	case ps.Owner == p.Id:
		// Nothing owed on a player's own space.
	default:
		rent, err := RentDue(e.board, g, sp.Id, g.LastRoll, 2)
		if err != nil {
			return err
		}
		e.charge(g, p.Id, ps.Owner, rent)
	}
	return nil
}

// charge moves amount from a debtor to a creditor ("" means the bank),
// first liquidating holdings when cash falls short. A debtor who cannot
// cover is forced through bankruptcy; the creditor keeps whatever was
// raised. Returns the amount actually collected.
func (e *Engine) charge(g *models.GameState, debtorId, creditorId string, amount int) int {
	if amount <= 0 {
		return 0
	}
	debtor := g.PlayerById(debtorId)
	if debtor == nil {
		return 0
	}

	if !CanCover(e.board, g, debtorId, amount) {
		liquidate(e.board, g, debtorId, amount)
		collected := debtor.Money
		debtor.Money = 0
		if creditorId != "" {
			if creditor := g.PlayerById(creditorId); creditor != nil {
				creditor.Money += collected
			}
		}
		e.declareBankruptcy(g, debtorId, creditorId)
		return collected
	}

	if debtor.Money < amount {
		liquidate(e.board, g, debtorId, amount)
	}
	debtor.Money -= amount
	if creditorId != "" {
		if creditor := g.PlayerById(creditorId); creditor != nil {
			creditor.Money += amount
		}
	}
	return amount
}

// declareBankruptcy retires a player. Holdings revert to the bank or
// transfer to the creditor with mortgage state preserved; buildings are
// cleared either way. Ends the game when one active player remains.
func (e *Engine) declareBankruptcy(g *models.GameState, playerId, creditorId string) error {
	p := g.PlayerById(playerId)
	if p == nil {
		return validationf("unknown player %q", playerId)
	}
	if !p.IsActive {
		return rulef("player %s is already out", playerId)
	}

	for _, id := range OwnedSpaces(g, playerId) {
		ps := &g.Properties[id]
		ps.Houses = 0
		ps.Hotels = 0
		if creditorId != "" {
			ps.Owner = creditorId
		} else {
			ps.Owner = ""
			ps.Mortgaged = false
		}
	}
	for p.JailCards > 0 {
		p.JailCards--
		returnJailCard(g)
	}
	p.IsActive = false
	if g.Trade != nil && (g.Trade.From == playerId || g.Trade.To == playerId) {
		g.Trade = nil
	}

	if g.ActivePlayers() == 1 {
		for i := range g.Players {
			if g.Players[i].IsActive {
				g.Winner = g.Players[i].Id
				break
			}
		}
		g.Phase = models.PhaseEnded
		return nil
	}

	// A bankrupt current player forfeits the rest of their turn.
	if g.CurrentPlayer().Id == playerId {
		e.advanceTurn(g)
	}
	return nil
}

func (e *Engine) applyBuyProperty(g *models.GameState, action models.Action) error {
	p, err := e.requireTurn(g, action.PlayerId)
	if err != nil {
		return err
	}
	if g.Phase != models.PhaseBuying {
		return rulef("nothing to buy right now")
	}
	if action.Data.PropertyId != 0 && action.Data.PropertyId != p.Position {
		return rulef("can only buy the space currently occupied")
	}
	sp := e.board.SpaceAt(p.Position)
	if !sp.Ownable() {
		return statef("space %d is not ownable", sp.Id)
	}
	if p.Money < sp.Price {
		return rulef("insufficient funds for %s", sp.Name)
	}
	if err := TransferOwnership(e.board, g, sp.Id, p.Id); err != nil {
		return err
	}
	p.Money -= sp.Price
	g.Phase = models.PhaseRolling
	return nil
}

func (e *Engine) applyEndTurn(g *models.GameState, action models.Action) error {
	if _, err := e.requireTurn(g, action.PlayerId); err != nil {
		return err
	}
	if !g.HasRolled {
		return rulef("roll the dice first")
	}
	e.advanceTurn(g)
	return nil
}

// advanceTurn hands the turn to the next active player and resets the
// per-turn roll state. Jail turn counts only advance on that player's
// own roll.
func (e *Engine) advanceTurn(g *models.GameState) {
	for i := 1; i <= len(g.Players); i++ {
		idx := (g.CurrentPlayerIndex + i) % len(g.Players)
		if g.Players[idx].IsActive {
			g.CurrentPlayerIndex = idx
			break
		}
	}
	g.Dice = [2]int{0, 0}
	g.LastRoll = 0
	g.DoubleCount = 0
	g.HasRolled = false
	g.Phase = models.PhaseRolling
}

func (e *Engine) applyPayRent(g *models.GameState, action models.Action) error {
	p := g.PlayerById(action.PlayerId)
	spaceId := action.Data.PropertyId
	ps, err := propertyAt(g, spaceId)
	if err != nil {
		return err
	}
	if ps.Owner == "" || ps.Owner == p.Id {
		return rulef("no rent due on space %d", spaceId)
	}
	rent, err := RentDue(e.board, g, spaceId, g.LastRoll, 1)
	if err != nil {
		return err
	}
	e.charge(g, p.Id, ps.Owner, rent)
	return nil
}

func (e *Engine) applyMortgage(g *models.GameState, action models.Action, mortgage bool) error {
	spaceId := action.Data.PropertyId
	ps, err := propertyAt(g, spaceId)
	if err != nil {
		return err
	}
	if ps.Owner != action.PlayerId {
		return rulef("space %d is not owned by %s", spaceId, action.PlayerId)
	}
	sp := e.board.SpaceAt(spaceId)
	p := g.PlayerById(action.PlayerId)
	if !mortgage && p.Money < sp.MortgageValue {
		return rulef("insufficient funds to unmortgage %s", sp.Name)
	}
	if err := SetMortgaged(g, spaceId, mortgage); err != nil {
		return err
	}
	if mortgage {
		p.Money += sp.MortgageValue
	} else {
		// No interest premium: unmortgaging costs exactly the mortgage value.
		p.Money -= sp.MortgageValue
	}
	return nil
}

func (e *Engine) applyBuild(g *models.GameState, action models.Action, hotel bool) error {
	spaceId := action.Data.PropertyId
	ps, err := propertyAt(g, spaceId)
	if err != nil {
		return err
	}
	if ps.Owner != action.PlayerId {
		return rulef("space %d is not owned by %s", spaceId, action.PlayerId)
	}
	sp := e.board.SpaceAt(spaceId)
	p := g.PlayerById(action.PlayerId)
	cost := sp.HouseCost
	if hotel {
		cost = sp.HotelCost
	}
	if p.Money < cost {
		return rulef("insufficient funds to build on %s", sp.Name)
	}
	if hotel {
		err = BuildHotel(e.board, g, spaceId)
	} else {
		err = BuildHouse(e.board, g, spaceId)
	}
	if err != nil {
		return err
	}
	p.Money -= cost
	return nil
}

func (e *Engine) applySell(g *models.GameState, action models.Action, hotel bool) error {
	spaceId := action.Data.PropertyId
	ps, err := propertyAt(g, spaceId)
	if err != nil {
		return err
	}
	if ps.Owner != action.PlayerId {
		return rulef("space %d is not owned by %s", spaceId, action.PlayerId)
	}
	sp := e.board.SpaceAt(spaceId)
	if hotel {
		err = RemoveHotel(g, spaceId)
	} else {
		err = RemoveHouse(e.board, g, spaceId)
	}
	if err != nil {
		return err
	}
	// Buildings sell back at half their cost.
	p := g.PlayerById(action.PlayerId)
	if hotel {
		p.Money += sp.HotelCost / 2
	} else {
		p.Money += sp.HouseCost / 2
	}
	return nil
}

func (e *Engine) applyUseJailCard(g *models.GameState, action models.Action) error {
	p := g.PlayerById(action.PlayerId)
	if !p.InJail {
		return rulef("player %s is not in jail", p.Id)
	}
	if p.JailCards <= 0 {
		return rulef("no get out of jail card held")
	}
	p.JailCards--
	returnJailCard(g)
	ReleaseFromJail(g, p.Id)
	return nil
}

func (e *Engine) applyPayJailFee(g *models.GameState, action models.Action) error {
	p := g.PlayerById(action.PlayerId)
	if !p.InJail {
		return rulef("player %s is not in jail", p.Id)
	}
	e.charge(g, p.Id, "", e.cfg.JailFee)
	if !g.PlayerById(p.Id).IsActive {
		return nil
	}
	ReleaseFromJail(g, p.Id)
	return nil
}
