package board

import (
	_ "embed"
	"encoding/json"
	"fmt"

	"github.com/boardwalk/monopoly-backend/app/models"
)

//go:embed board.json
var boardJSON []byte

// Board is the static 40-space board. It is read-only after Load; an
// out-of-range id is a programming error and panics.
type Board struct {
	spaces []models.Space
	byKind map[models.SpaceKind][]int
	groups map[string][]int
}

func Load() (*Board, error) {
	var spaces []models.Space
	if err := json.Unmarshal(boardJSON, &spaces); err != nil {
		return nil, err
	}
	b := &Board{
		spaces: spaces,
		byKind: make(map[models.SpaceKind][]int),
		groups: make(map[string][]int),
	}
	for i, s := range spaces {
		if s.Id != i {
			return nil, fmt.Errorf("board: space %q has id %d at index %d", s.Name, s.Id, i)
		}
		b.byKind[s.Kind] = append(b.byKind[s.Kind], s.Id)
		if s.Color != "" {
			b.groups[s.Color] = append(b.groups[s.Color], s.Id)
		}
	}
	return b, nil
}

func MustLoad() *Board {
	b, err := Load()
	if err != nil {
		panic(err)
	}
	return b
}

func (b *Board) Size() int {
	return len(b.spaces)
}

func (b *Board) SpaceAt(id int) models.Space {
	if id < 0 || id >= len(b.spaces) {
		panic(fmt.Sprintf("board: invalid space id %d", id))
	}
	return b.spaces[id]
}

// SpacesOfKind returns the spaces of the given kind in board order.
func (b *Board) SpacesOfKind(kind models.SpaceKind) []models.Space {
	ids := b.byKind[kind]
	out := make([]models.Space, 0, len(ids))
	for _, id := range ids {
		out = append(out, b.spaces[id])
	}
	return out
}

// NearestOfKindAhead scans forward from the given position, wrapping
// past the last space, and returns the first space of the requested
// kind strictly ahead of it.
func (b *Board) NearestOfKindAhead(from int, kind models.SpaceKind) models.Space {
	for step := 1; step <= len(b.spaces); step++ {
		s := b.spaces[(from+step)%len(b.spaces)]
		if s.Kind == kind {
			return s
		}
	}
	panic(fmt.Sprintf("board: no space of kind %q", kind))
}

// GroupMembers returns the space ids of a color group in board order.
func (b *Board) GroupMembers(color string) []int {
	return b.groups[color]
}
