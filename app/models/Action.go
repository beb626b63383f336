package models

// Action kinds accepted by the turn engine.
const (
	ActionRollDice           = "ROLL_DICE"
	ActionBuyProperty        = "BUY_PROPERTY"
	ActionEndTurn            = "END_TURN"
	ActionPayRent            = "PAY_RENT"
	ActionMortgageProperty   = "MORTGAGE_PROPERTY"
	ActionUnmortgageProperty = "UNMORTGAGE_PROPERTY"
	ActionBuildHouse         = "BUILD_HOUSE"
	ActionBuildHotel         = "BUILD_HOTEL"
	ActionSellHouse          = "SELL_HOUSE"
	ActionSellHotel          = "SELL_HOTEL"
	ActionTradeOffer         = "TRADE_OFFER"
	ActionTradeAccept        = "TRADE_ACCEPT"
	ActionTradeReject        = "TRADE_REJECT"
	ActionUseJailCard        = "USE_GET_OUT_OF_JAIL_CARD"
	ActionPayJailFee         = "PAY_JAIL_FEE"
	ActionDeclareBankruptcy  = "DECLARE_BANKRUPTCY"
)

// ActionData carries the per-kind payload. PropertyId addresses a board
// space for buy/mortgage/build/rent actions; Trade carries the terms of
// a TRADE_OFFER.
type ActionData struct {
	PropertyId int         `json:"propertyId"`
	To         string      `json:"to,omitempty"`
	Trade      *TradeTerms `json:"trade,omitempty"`
}

type Action struct {
	Type      string     `json:"type"`
	PlayerId  string     `json:"playerId"`
	Data      ActionData `json:"data"`
	Timestamp int64      `json:"timestamp"`
}
