// internal/rng/rng.go
//
// Randomness capability shared by the games.
// Responsibilities:
//   - Source: the two operations the games need (uniform int, shuffle).
//   - New: deterministic PCG generator for a given seed.
//   - NewSeed: crypto-random seed for interactive runs.
//
// *rand.Rand from math/rand/v2 satisfies Source directly, so tests can
// pass a seeded generator or a hand-written fake.
package rng

import (
	crand "crypto/rand"
	"encoding/binary"
	"fmt"
	"math/rand/v2"
)

// Source is the random capability consumed by the game engines.
type Source interface {
	// IntN returns a uniform int in [0, n). Panics if n <= 0.
	IntN(n int) int
	// Shuffle pseudo-randomizes the order of n elements via swap.
	Shuffle(n int, swap func(i, j int))
}

// streamSalt separates the second PCG word from the seed.
const streamSalt = 0x9e3779b97f4a7c15

// New returns a deterministic generator for seed.
func New(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed^streamSalt))
}

// NewSeed reads a seed from crypto/rand.
func NewSeed() (uint64, error) {
	var b [8]byte
	if _, err := crand.Read(b[:]); err != nil {
		return 0, fmt.Errorf("read random seed: %w", err)
	}
	return binary.LittleEndian.Uint64(b[:]), nil
}

// Split returns a generator for seed and a second seed drawn from it, so one
// user-facing seed can drive two streams that do not repeat each other.
func Split(seed uint64) (*rand.Rand, uint64) {
	r := New(seed)
	return r, r.Uint64()
}

// FromSeed returns New(seed), or a generator seeded by NewSeed when seed is 0.
// The seed actually used is returned so runs can be reproduced.
func FromSeed(seed uint64) (*rand.Rand, uint64, error) {
	if seed == 0 {
		s, err := NewSeed()
		if err != nil {
			return nil, 0, err
		}
		seed = s
	}
	return New(seed), seed, nil
}
