// Package random
// Author: momentics <momentics@gmail.com>
//
// Seeded random helpers for prototyping and tests.
//
// A process-wide default Source is created on first use from a crypto seed
// and reused by the package-level helpers. SetDefaultSeed replaces it with a
// deterministic one so runs can be reproduced.

package random

import (
	crand "crypto/rand"
	"encoding/binary"
	"math/rand/v2"
	"sync"
)

// Source is a mutex-guarded PCG generator safe for concurrent use.
type Source struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// NewSource returns a generator seeded with seed.
func NewSource(seed uint64) *Source {
	return &Source{rng: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))}
}

var (
	defaultMu  sync.Mutex
	defaultSrc *Source
)

// Default returns the process-wide Source, creating it on the first call.
func Default() *Source {
	defaultMu.Lock()
	defer defaultMu.Unlock()
	if defaultSrc == nil {
		defaultSrc = NewSource(cryptoSeed())
	}
	return defaultSrc
}

// SetDefaultSeed replaces the process-wide Source with one seeded by seed.
// Sources already obtained from Default keep their own state.
func SetDefaultSeed(seed uint64) {
	src := NewSource(seed)
	defaultMu.Lock()
	defaultSrc = src
	defaultMu.Unlock()
}

func cryptoSeed() uint64 {
	var b [8]byte
	if _, err := crand.Read(b[:]); err != nil {
		return rand.Uint64()
	}
	return binary.LittleEndian.Uint64(b[:])
}

// Int returns a uniform value in [lo, hi]. It panics if lo >= hi.
func (s *Source) Int(lo, hi int) int {
	if lo >= hi {
		panic("random: lo must be less than hi")
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return lo + s.rng.IntN(hi-lo+1)
}

// Ints returns n values drawn as by Int. It panics if n <= 0.
func (s *Source) Ints(lo, hi int, n int) []int {
	if n <= 0 {
		panic("random: count must be positive")
	}
	out := make([]int, n)
	for i := range out {
		out[i] = s.Int(lo, hi)
	}
	return out
}

// Bool returns true with probability p, clamped to [0, 1].
func (s *Source) Bool(p float64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rng.Float64() < p
}

// Int returns Default().Int(lo, hi).
func Int(lo, hi int) int { return Default().Int(lo, hi) }

// Ints returns Default().Ints(lo, hi, n).
func Ints(lo, hi int, n int) []int { return Default().Ints(lo, hi, n) }

// Bool returns Default().Bool(p).
func Bool(p float64) bool { return Default().Bool(p) }

// Shuffle permutes s in place with a generator seeded by seed; equal seeds
// give equal permutations.
func Shuffle[S ~[]E, E any](s S, seed uint64) {
	rng := rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
	rng.Shuffle(len(s), func(i, j int) { s[i], s[j] = s[j], s[i] })
}

// Shuffled returns a shuffled copy of s, leaving s untouched.
func Shuffled[S ~[]E, E any](s S, seed uint64) S {
	out := make(S, len(s))
	copy(out, s)
	Shuffle(out, seed)
	return out
}
