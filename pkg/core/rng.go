package core

import "math/rand/v2"

// RNG is a thin convenience wrapper around math/rand/v2 for deterministic seeding.
type RNG struct {
	r *rand.Rand
}

// NewRNG creates a deterministic RNG using the provided seed.
func NewRNG(seed int64) *RNG {
	return &RNG{r: rand.New(rand.NewPCG(uint64(seed), 0))}
}

// Centered returns a float32 uniformly distributed in [-span/2, span/2).
func (r *RNG) Centered(span float64) float32 {
	return float32((r.r.Float64() - 0.5) * span)
}

// FillCentered fills buf with values from Centered(span).
func (r *RNG) FillCentered(buf []float32, span float64) {
	for i := range buf {
		buf[i] = r.Centered(span)
	}
}

// Source exposes the underlying rand.Rand for advanced use.
func (r *RNG) Source() *rand.Rand { return r.r }
