package engine

import (
	"github.com/boardwalk/monopoly-backend/app/models"
	"github.com/boardwalk/monopoly-backend/platform/board"
)

// AdjustCash applies a delta to a player's cash. It never blocks;
// transiently negative balances are resolved by the bankruptcy check,
// not here.
func AdjustCash(g *models.GameState, playerId string, delta int) error {
	p := g.PlayerById(playerId)
	if p == nil {
		return validationf("unknown player %q", playerId)
	}
	p.Money += delta
	return nil
}

// NetWorth is cash plus the value of all holdings: price (or mortgage
// value when mortgaged) plus building costs.
func NetWorth(b *board.Board, g *models.GameState, playerId string) int {
	p := g.PlayerById(playerId)
	if p == nil {
		return 0
	}
	worth := p.Money
	for _, id := range OwnedSpaces(g, playerId) {
		ps := g.Properties[id]
		sp := b.SpaceAt(id)
		if ps.Mortgaged {
			worth += sp.MortgageValue
		} else {
			worth += sp.Price
		}
		worth += ps.Houses*sp.HouseCost + ps.Hotels*sp.HotelCost
	}
	return worth
}

// CanCover reports whether a player can raise the given amount from
// cash plus the mortgage value of every currently unmortgaged holding.
func CanCover(b *board.Board, g *models.GameState, playerId string, amount int) bool {
	p := g.PlayerById(playerId)
	if p == nil {
		return false
	}
	if p.Money >= amount {
		return true
	}
	total := p.Money
	for _, id := range OwnedSpaces(g, playerId) {
		if !g.Properties[id].Mortgaged {
			total += b.SpaceAt(id).MortgageValue
		}
	}
	return total >= amount
}

// SendToJail moves a player to the jail space and starts their jail
// clock.
func SendToJail(g *models.GameState, cfg Config, playerId string) {
	p := g.PlayerById(playerId)
	if p == nil {
		return
	}
	p.InJail = true
	p.JailTurns = 0
	p.Position = cfg.JailPosition
}

// ReleaseFromJail clears a player's jail status.
func ReleaseFromJail(g *models.GameState, playerId string) {
	p := g.PlayerById(playerId)
	if p == nil {
		return
	}
	p.InJail = false
	p.JailTurns = 0
}

// liquidate raises cash for a player until their balance reaches the
// target, mortgaging holdings in board order. Buildings on a space are
// sold back at half cost first so the space can legally be mortgaged.
// Returns whether the target was reached.
func liquidate(b *board.Board, g *models.GameState, playerId string, target int) bool {
	p := g.PlayerById(playerId)
	if p == nil {
		return false
	}
	for _, id := range OwnedSpaces(g, playerId) {
		if p.Money >= target {
			return true
		}
		ps := &g.Properties[id]
		if ps.Mortgaged {
			continue
		}
		sp := b.SpaceAt(id)
		if ps.Hotels > 0 {
			p.Money += (sp.HotelCost + 4*sp.HouseCost) / 2
			ps.Hotels = 0
		}
		if ps.Houses > 0 {
			p.Money += ps.Houses * sp.HouseCost / 2
			ps.Houses = 0
		}
		ps.Mortgaged = true
		p.Money += sp.MortgageValue
	}
	return p.Money >= target
}
