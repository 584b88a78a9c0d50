package core

import (
	"math/rand/v2"

	"mad-grid/pkg/array2d"
	"mad-grid/pkg/geom"
)

// RNG is a thin convenience wrapper around math/rand/v2 for deterministic seeding.
type RNG struct {
	r *rand.Rand
}

// NewRNG creates a deterministic RNG using the provided seed.
func NewRNG(seed int64) *RNG {
	return &RNG{r: rand.New(rand.NewPCG(uint64(seed), 0))}
}

// FillBinary fills every cell of g with 0/1 values drawn from r.
func FillBinary[S geom.Space](r *rand.Rand, g array2d.GridMut[uint8, S]) {
	for row := range g.LinesMut() {
		for i := range row {
			row[i] = uint8(r.IntN(2))
		}
	}
}

// FillChance sets each cell of g to on with probability 1/n and to off otherwise.
func FillChance[S geom.Space](r *rand.Rand, g array2d.GridMut[uint8, S], n int, on, off uint8) {
	for row := range g.LinesMut() {
		for i := range row {
			if n > 0 && r.IntN(n) == 0 {
				row[i] = on
				continue
			}
			row[i] = off
		}
	}
}

// Source exposes the underlying rand.Rand for advanced use.
func (r *RNG) Source() *rand.Rand { return r.r }
