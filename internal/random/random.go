// Package random provides the seeded uniform source used to draw coordinates.
package random

import (
	"math/rand"
	"sync"
)

// RNG wraps a seeded math/rand source. It is safe for concurrent use.
type RNG struct {
	rand *rand.Rand
	seed int64
	mu   sync.Mutex
}

// NewRNG creates a new RNG instance with the specified seed.
func NewRNG(seed int64) *RNG {
	return &RNG{
		rand: rand.New(rand.NewSource(seed)),
		seed: seed,
	}
}

// Seed returns the initial seed.
func (r *RNG) Seed() int64 {
	return r.seed
}

// FillUniform fills dst with values drawn uniformly from [lo, hi].
// The upper bound is reachable through floating point rounding of lo + (hi-lo)*u.
// Locks only once per call.
func (r *RNG) FillUniform(dst []float64, lo, hi float64) {
	r.mu.Lock()
	defer r.mu.Unlock()
	span := hi - lo
	for i := range dst {
		dst[i] = lo + span*r.rand.Float64()
	}
}
