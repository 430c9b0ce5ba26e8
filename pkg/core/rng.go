// Package core holds small shared helpers for the simulation packages.
package core

import "math/rand/v2"

// RNG wraps math/rand/v2 so every caller seeds the same way and reruns stay
// reproducible.
type RNG struct {
	r *rand.Rand
}

// NewRNG creates a deterministic RNG from the provided seed.
func NewRNG(seed int64) *RNG {
	return &RNG{r: rand.New(rand.NewPCG(uint64(seed), 0))}
}

// Bool returns a random boolean value.
func (r *RNG) Bool() bool {
	return r.r.IntN(2) == 1
}

// IntN returns a random int in [0, n).
func (r *RNG) IntN(n int) int {
	return r.r.IntN(n)
}
