package engine

import (
	"github.com/boardwalk/monopoly-backend/app/models"
	"github.com/boardwalk/monopoly-backend/platform/board"
)

// propertyAt returns the mutable state for a board space.
func propertyAt(g *models.GameState, spaceId int) (*models.PropertyState, error) {
	if spaceId < 0 || spaceId >= len(g.Properties) {
		return nil, notFoundf("no space with id %d", spaceId)
	}
	return &g.Properties[spaceId], nil
}

// OwnedOfKind counts spaces of the given kind owned by a player.
func OwnedOfKind(b *board.Board, g *models.GameState, owner string, kind models.SpaceKind) int {
	n := 0
	for _, s := range b.SpacesOfKind(kind) {
		if g.Properties[s.Id].Owner == owner {
			n++
		}
	}
	return n
}

// OwnsColorGroup reports whether a player holds every space of a color
// group.
func OwnsColorGroup(b *board.Board, g *models.GameState, owner, color string) bool {
	members := b.GroupMembers(color)
	if len(members) == 0 {
		return false
	}
	for _, id := range members {
		if g.Properties[id].Owner != owner {
			return false
		}
	}
	return true
}

// OwnedSpaces returns the space ids owned by a player in board order.
func OwnedSpaces(g *models.GameState, owner string) []int {
	var ids []int
	for i := range g.Properties {
		if g.Properties[i].Owner == owner {
			ids = append(ids, i)
		}
	}
	return ids
}

// RentDue computes the rent a visitor owes on a space. diceTotal feeds
// the utility formula; multiplier overrides the card rule for "advance
// to nearest" (2x railroad rent, flat 10x dice for utilities) and is 1
// for a normal landing.
func RentDue(b *board.Board, g *models.GameState, spaceId int, diceTotal int, multiplier int) (int, error) {
	ps, err := propertyAt(g, spaceId)
	if err != nil {
		return 0, err
	}
	sp := b.SpaceAt(spaceId)
	if ps.Owner == "" || ps.Mortgaged {
		return 0, nil
	}

	switch sp.Kind {
	case models.KindProperty:
		if ps.Hotels > 0 {
			return sp.Rent[5], nil
		}
		if ps.Houses > 0 {
			return sp.Rent[ps.Houses], nil
		}
		rent := sp.Rent[0]
		if OwnsColorGroup(b, g, ps.Owner, sp.Color) {
			rent *= 2
		}
		return rent, nil
	case models.KindRailroad:
		owned := OwnedOfKind(b, g, ps.Owner, models.KindRailroad)
		if owned > 4 {
			owned = 4
		}
		return sp.Rent[owned-1] * multiplier, nil
	case models.KindUtility:
		if multiplier > 1 {
			return diceTotal * 10, nil
		}
		owned := OwnedOfKind(b, g, ps.Owner, models.KindUtility)
		if owned == 1 {
			return diceTotal * 4, nil
		}
		return diceTotal * 10, nil
	}
	return 0, nil
}

// TransferOwnership hands an unowned space to a player. Funds are the
// caller's concern; the ledger only asserts it is unowned.
func TransferOwnership(b *board.Board, g *models.GameState, spaceId int, playerId string) error {
	ps, err := propertyAt(g, spaceId)
	if err != nil {
		return err
	}
	if !b.SpaceAt(spaceId).Ownable() {
		return rulef("space %d cannot be owned", spaceId)
	}
	if ps.Owner != "" {
		return rulef("space %d is already owned", spaceId)
	}
	ps.Owner = playerId
	return nil
}

// SetMortgaged toggles the mortgage flag. A space carrying buildings
// cannot be mortgaged, and the toggle must actually change state.
func SetMortgaged(g *models.GameState, spaceId int, mortgaged bool) error {
	ps, err := propertyAt(g, spaceId)
	if err != nil {
		return err
	}
	if ps.Owner == "" {
		return rulef("space %d is not owned", spaceId)
	}
	if mortgaged && (ps.Houses > 0 || ps.Hotels > 0) {
		return rulef("space %d has buildings and cannot be mortgaged", spaceId)
	}
	if ps.Mortgaged == mortgaged {
		if mortgaged {
			return rulef("space %d is already mortgaged", spaceId)
		}
		return rulef("space %d is not mortgaged", spaceId)
	}
	ps.Mortgaged = mortgaged
	return nil
}

// checkBuildable enforces the shared preconditions for building on a
// space: full color group ownership and no mortgage anywhere in the
// group.
func checkBuildable(b *board.Board, g *models.GameState, spaceId int) (*models.PropertyState, models.Space, error) {
	ps, err := propertyAt(g, spaceId)
	if err != nil {
		return nil, models.Space{}, err
	}
	sp := b.SpaceAt(spaceId)
	if sp.Kind != models.KindProperty {
		return nil, models.Space{}, rulef("cannot build on %s", sp.Name)
	}
	if ps.Owner == "" {
		return nil, models.Space{}, rulef("space %d is not owned", spaceId)
	}
	if !OwnsColorGroup(b, g, ps.Owner, sp.Color) {
		return nil, models.Space{}, rulef("owner does not hold the full %s group", sp.Color)
	}
	for _, id := range b.GroupMembers(sp.Color) {
		if g.Properties[id].Mortgaged {
			return nil, models.Space{}, rulef("%s group has a mortgaged member", sp.Color)
		}
	}
	return ps, sp, nil
}

// BuildHouse adds one house, subject to the even-build rule: the target
// must be at the group's current house minimum.
func BuildHouse(b *board.Board, g *models.GameState, spaceId int) error {
	ps, sp, err := checkBuildable(b, g, spaceId)
	if err != nil {
		return err
	}
	if ps.Hotels > 0 {
		return rulef("%s already has a hotel", sp.Name)
	}
	if ps.Houses >= 4 {
		return rulef("%s already has 4 houses", sp.Name)
	}
	for _, id := range b.GroupMembers(sp.Color) {
		other := g.Properties[id]
		if other.Hotels == 0 && other.Houses < ps.Houses {
			return rulef("build evenly: %s group has a member with fewer houses", sp.Color)
		}
	}
	ps.Houses++
	return nil
}

// BuildHotel converts exactly four houses into one hotel.
func BuildHotel(b *board.Board, g *models.GameState, spaceId int) error {
	ps, sp, err := checkBuildable(b, g, spaceId)
	if err != nil {
		return err
	}
	if ps.Hotels > 0 {
		return rulef("%s already has a hotel", sp.Name)
	}
	if ps.Houses != 4 {
		return rulef("%s needs 4 houses before a hotel", sp.Name)
	}
	for _, id := range b.GroupMembers(sp.Color) {
		other := g.Properties[id]
		if other.Houses != 4 && other.Hotels == 0 {
			return rulef("build evenly: %s group must be fully built before hotels", sp.Color)
		}
	}
	ps.Houses = 0
	ps.Hotels = 1
	return nil
}

// RemoveHouse sells one house back, keeping the group even: the target
// must be at the group's current house maximum.
func RemoveHouse(b *board.Board, g *models.GameState, spaceId int) error {
	ps, err := propertyAt(g, spaceId)
	if err != nil {
		return err
	}
	if ps.Houses <= 0 {
		return rulef("space %d has no houses", spaceId)
	}
	sp := b.SpaceAt(spaceId)
	for _, id := range b.GroupMembers(sp.Color) {
		other := g.Properties[id]
		if other.Hotels == 0 && other.Houses > ps.Houses {
			return rulef("sell evenly: %s group has a member with more houses", sp.Color)
		}
	}
	ps.Houses--
	return nil
}

// RemoveHotel sells the hotel back, reverting the space to four houses.
func RemoveHotel(g *models.GameState, spaceId int) error {
	ps, err := propertyAt(g, spaceId)
	if err != nil {
		return err
	}
	if ps.Hotels <= 0 {
		return rulef("space %d has no hotel", spaceId)
	}
	ps.Hotels = 0
	ps.Houses = 4
	return nil
}
