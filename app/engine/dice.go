package engine

import "math/rand"

// Roller produces one pair of dice. The production implementation draws
// from a rand.Source so tests can substitute a seeded or scripted one.
type Roller interface {
	Roll() (int, int)
}

type randRoller struct {
	rng *rand.Rand
}

func NewRoller(src rand.Source) Roller {
	return &randRoller{rng: rand.New(src)}
}

func (r *randRoller) Roll() (int, int) {
	return r.rng.Intn(6) + 1, r.rng.Intn(6) + 1
}
