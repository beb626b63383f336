package models

type SpaceKind string

const (
	KindProperty SpaceKind = "property"
	KindRailroad SpaceKind = "railroad"
	KindUtility  SpaceKind = "utility"
	KindSpecial  SpaceKind = "special"
)

// Actions carried by spaces of KindSpecial.
const (
	SpecialGo          = "go"
	SpecialJail        = "jail"
	SpecialFreeParking = "free-parking"
	SpecialGoToJail    = "go-to-jail"
	SpecialTax         = "tax"
	SpecialChest       = "chest"
	SpecialChance      = "chance"
)

// Space is one static board position. The rent table is indexed by
// improvement level for properties (0 = unimproved, 5 = hotel) and by
// ownedCount-1 for railroads; utilities ignore it.
type Space struct {
	Id            int       `json:"id"`
	Name          string    `json:"name"`
	Kind          SpaceKind `json:"type"`
	Color         string    `json:"color,omitempty"`
	Price         int       `json:"price"`
	Rent          []int     `json:"rent"`
	MortgageValue int       `json:"mortgage"`
	HouseCost     int       `json:"housecost,omitempty"`
	HotelCost     int       `json:"hotelcost,omitempty"`
	Special       string    `json:"special,omitempty"`
	TaxAmount     int       `json:"tax,omitempty"`
}

// Ownable reports whether the space can be bought at all.
func (s Space) Ownable() bool {
	return s.Kind == KindProperty || s.Kind == KindRailroad || s.Kind == KindUtility
}
