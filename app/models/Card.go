package models

type DeckKind string

const (
	DeckCommunity DeckKind = "community"
	DeckChance    DeckKind = "chance"
)

// Card effect variants.
const (
	EffectCollect             = "COLLECT"
	EffectPay                 = "PAY"
	EffectCollectFromPlayers  = "COLLECT_FROM_PLAYERS"
	EffectPayToPlayers        = "PAY_TO_PLAYERS"
	EffectMoveBack            = "MOVE_BACK"
	EffectAdvanceTo           = "ADVANCE_TO"
	EffectAdvanceToNearest    = "ADVANCE_TO_NEAREST"
	EffectGoToJail            = "GO_TO_JAIL"
	EffectGetOutOfJail        = "GET_OUT_OF_JAIL"
	EffectRepairs             = "REPAIRS"
)

// CardEffect is the parameterized action of a drawn card. Value carries
// the amount or target position, Target the space kind for
// ADVANCE_TO_NEAREST, and PerHouse/PerHotel the repairs tariff.
type CardEffect struct {
	Type     string    `json:"type"`
	Value    int       `json:"value,omitempty"`
	Target   SpaceKind `json:"target,omitempty"`
	PerHouse int       `json:"perHouse,omitempty"`
	PerHotel int       `json:"perHotel,omitempty"`
}

type Card struct {
	Id          string     `json:"id"`
	Deck        DeckKind   `json:"deck"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Effect      CardEffect `json:"effect"`
}
