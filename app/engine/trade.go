package engine

import (
	"fmt"

	"github.com/boardwalk/monopoly-backend/app/models"
)

// applyTradeOffer stages a trade between the proposer and the named
// recipient. One pending offer per game; staging while another is
// pending is a rule violation.
func (e *Engine) applyTradeOffer(g *models.GameState, action models.Action) error {
	if action.Data.Trade == nil {
		return validationf("trade offer requires terms")
	}
	if g.Trade != nil {
		return rulef("a trade offer is already pending")
	}
	terms := *action.Data.Trade
	from := g.PlayerById(action.PlayerId)
	to := g.PlayerById(action.Data.To)
	if to == nil {
		return validationf("unknown trade recipient %q", action.Data.To)
	}
	if to.Id == from.Id {
		return rulef("cannot trade with yourself")
	}
	if !to.IsActive {
		return rulef("player %s is out of the game", to.Id)
	}
	if terms.OfferCash < 0 || terms.RequestCash < 0 {
		return validationf("trade cash amounts must be non-negative")
	}
	if from.Money < terms.OfferCash {
		return rulef("insufficient funds for offered cash")
	}
	if err := checkTradeSide(g, from.Id, terms.OfferProperties, terms.OfferJailCards); err != nil {
		return err
	}
	if err := checkTradeSide(g, to.Id, terms.RequestProperties, terms.RequestJailCards); err != nil {
		return err
	}

	terms.OfferProperties = append([]int(nil), terms.OfferProperties...)
	terms.RequestProperties = append([]int(nil), terms.RequestProperties...)
	g.Trade = &models.TradeOffer{
		Id:    fmt.Sprintf("%s-%d", g.Id, action.Timestamp),
		From:  from.Id,
		To:    to.Id,
		Terms: terms,
	}
	return nil
}

// checkTradeSide validates that one side actually holds what it puts on
// the table. Spaces carrying buildings stay out of trades.
func checkTradeSide(g *models.GameState, playerId string, spaces []int, jailCards int) error {
	p := g.PlayerById(playerId)
	if jailCards < 0 || p.JailCards < jailCards {
		return rulef("player %s does not hold %d jail cards", playerId, jailCards)
	}
	for _, id := range spaces {
		ps, err := propertyAt(g, id)
		if err != nil {
			return err
		}
		if ps.Owner != playerId {
			return rulef("space %d is not owned by %s", id, playerId)
		}
		if ps.Houses > 0 || ps.Hotels > 0 {
			return rulef("space %d has buildings and cannot be traded", id)
		}
	}
	return nil
}

// applyTradeAccept atomically executes the pending offer. Every listed
// space is re-validated against current ownership so a stale offer
// cannot move someone else's property.
func (e *Engine) applyTradeAccept(g *models.GameState, action models.Action) error {
	offer := g.Trade
	if offer == nil {
		return rulef("no trade offer pending")
	}
	if offer.To != action.PlayerId {
		return rulef("only %s may accept this offer", offer.To)
	}
	from := g.PlayerById(offer.From)
	to := g.PlayerById(offer.To)
	if from == nil || !from.IsActive {
		return rulef("proposer is out of the game")
	}
	if from.Money < offer.Terms.OfferCash {
		return rulef("proposer can no longer cover the offered cash")
	}
	if to.Money < offer.Terms.RequestCash {
		return rulef("insufficient funds for requested cash")
	}
	if err := checkTradeSide(g, from.Id, offer.Terms.OfferProperties, offer.Terms.OfferJailCards); err != nil {
		return err
	}
	if err := checkTradeSide(g, to.Id, offer.Terms.RequestProperties, offer.Terms.RequestJailCards); err != nil {
		return err
	}

	from.Money += offer.Terms.RequestCash - offer.Terms.OfferCash
	to.Money += offer.Terms.OfferCash - offer.Terms.RequestCash
	for _, id := range offer.Terms.OfferProperties {
		g.Properties[id].Owner = to.Id
	}
	for _, id := range offer.Terms.RequestProperties {
		g.Properties[id].Owner = from.Id
	}
	from.JailCards += offer.Terms.RequestJailCards - offer.Terms.OfferJailCards
	to.JailCards += offer.Terms.OfferJailCards - offer.Terms.RequestJailCards
	g.Trade = nil
	return nil
}

// applyTradeReject discards the pending offer. The recipient rejects;
// the proposer may also withdraw.
func (e *Engine) applyTradeReject(g *models.GameState, action models.Action) error {
	offer := g.Trade
	if offer == nil {
		return rulef("no trade offer pending")
	}
	if action.PlayerId != offer.To && action.PlayerId != offer.From {
		return rulef("only the trading players may reject this offer")
	}
	g.Trade = nil
	return nil
}
