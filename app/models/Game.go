package models

type Phase string

const (
	PhaseWaiting Phase = "waiting"
	PhaseRolling Phase = "rolling"
	PhaseMoving  Phase = "moving"
	PhaseBuying  Phase = "buying"
	PhaseTrading Phase = "trading"
	PhaseEnded   Phase = "ended"
)

// PropertyState is the mutable side of a board space: who owns it and
// what sits on it. Invariants: houses and hotels are never both
// positive; buildings imply an owner and no mortgage.
type PropertyState struct {
	SpaceId   int    `json:"spaceId"`
	Owner     string `json:"owner,omitempty"`
	Mortgaged bool   `json:"mortgaged"`
	Houses    int    `json:"houses"`
	Hotels    int    `json:"hotels"`
}

// TradeTerms is what each side gives up: cash and space ids from the
// proposer (Offer*) against cash and space ids from the recipient
// (Request*).
type TradeTerms struct {
	OfferCash         int   `json:"offerCash"`
	RequestCash       int   `json:"requestCash"`
	OfferProperties   []int `json:"offerProperties"`
	RequestProperties []int `json:"requestProperties"`
	OfferJailCards    int   `json:"offerJailCards"`
	RequestJailCards  int   `json:"requestJailCards"`
}

// TradeOffer is a staged trade between two named players. At most one
// offer is pending per game.
type TradeOffer struct {
	Id    string     `json:"id"`
	From  string     `json:"from"`
	To    string     `json:"to"`
	Terms TradeTerms `json:"terms"`
}

// GameState is the single unit of persistence and broadcast. It is only
// ever mutated by the turn engine, one action at a time, and is
// internally consistent at rest.
type GameState struct {
	Id                 string          `json:"id"`
	Players            []Player        `json:"players"`
	CurrentPlayerIndex int             `json:"currentPlayerIndex"`
	Phase              Phase           `json:"phase"`
	Dice               [2]int          `json:"dice"`
	LastRoll           int             `json:"lastRoll"`
	DoubleCount        int             `json:"doubleCount"`
	HasRolled          bool            `json:"hasRolled"`
	Properties         []PropertyState `json:"properties"`
	CommunityCards     []Card          `json:"communityChestCards"`
	ChanceCards        []Card          `json:"chanceCards"`
	CommunityJailOut   bool            `json:"communityJailCardOut"`
	ChanceJailOut      bool            `json:"chanceJailCardOut"`
	FreeParking        int             `json:"freeParking"`
	Winner             string          `json:"winner,omitempty"`
	Spectators         []string        `json:"spectators"`
	Trade              *TradeOffer     `json:"trade,omitempty"`
}

// CurrentPlayer returns a pointer into the player list for the player
// whose turn it is.
func (g *GameState) CurrentPlayer() *Player {
	return &g.Players[g.CurrentPlayerIndex]
}

// PlayerById returns the player with the given id, or nil.
func (g *GameState) PlayerById(id string) *Player {
	for i := range g.Players {
		if g.Players[i].Id == id {
			return &g.Players[i]
		}
	}
	return nil
}

// ActivePlayers counts players still in the game.
func (g *GameState) ActivePlayers() int {
	n := 0
	for i := range g.Players {
		if g.Players[i].IsActive {
			n++
		}
	}
	return n
}

// Clone produces a value equal to g sharing no mutable substructure
// with it.
func (g *GameState) Clone() *GameState {
	c := *g
	c.Players = append([]Player(nil), g.Players...)
	c.Properties = append([]PropertyState(nil), g.Properties...)
	c.CommunityCards = append([]Card(nil), g.CommunityCards...)
	c.ChanceCards = append([]Card(nil), g.ChanceCards...)
	c.Spectators = append([]string(nil), g.Spectators...)
	if g.Trade != nil {
		t := *g.Trade
		t.Terms.OfferProperties = append([]int(nil), g.Trade.Terms.OfferProperties...)
		t.Terms.RequestProperties = append([]int(nil), g.Trade.Terms.RequestProperties...)
		c.Trade = &t
	}
	return &c
}
