// Package perceptron - deterministic random sources.
//
// Goals:
//   - Determinism: same seed ⇒ identical choices across runs and platforms.
//   - Encapsulation: no time-based sources and no process-wide rand state.
//   - Independent streams for concurrent runs via DeriveSource.
//
// Concurrency:
//   - *RandSource wraps math/rand.Rand and is NOT goroutine-safe. Derive one
//     source per goroutine instead of sharing.
package perceptron

import "math/rand"

// RandSource is a seeded uniform Source.
type RandSource struct {
	seed int64
	rng  *rand.Rand
}

// NewSource returns a deterministic uniform Source.
// Policy: seed==0 ⇒ DefaultSeed; otherwise the seed is used verbatim.
//
// Complexity: O(1).
func NewSource(seed int64) *RandSource {
	s := seed
	if s == 0 {
		s = DefaultSeed
	}

	return &RandSource{seed: s, rng: rand.New(rand.NewSource(s))}
}

// Seed reports the effective seed of the source.
func (s *RandSource) Seed() int64 { return s.seed }

// Choose draws one element of indices uniformly at random.
// Exactly one value is consumed from the stream per call.
//
// Complexity: O(1).
func (s *RandSource) Choose(indices []int) int {
	return indices[s.rng.Intn(len(indices))]
}

// deriveSeed mixes a parent seed and a stream identifier into a new 64-bit seed
// with a SplitMix64-style finalizer, so neighbouring stream ids give
// uncorrelated children.
//
// Complexity: O(1).
func deriveSeed(parent int64, stream uint64) int64 {
	var x uint64
	x = uint64(parent) ^ (stream + 0x9e3779b97f4a7c15)
	x += 0x9e3779b97f4a7c15
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb
	x ^= x >> 31

	return int64(x)
}

// DeriveSource creates an independent deterministic stream from base and a
// stream identifier. If base==nil, DefaultSeed is the parent. Otherwise one
// value of base is consumed to decorrelate consecutive derivations.
//
// Usage:
//   - Call during setup (not in hot loops) to create per-worker sources.
//
// Complexity: O(1).
func DeriveSource(base *RandSource, stream uint64) *RandSource {
	var parent int64
	if base == nil {
		parent = DefaultSeed
	} else {
		parent = base.rng.Int63()
	}

	return NewSource(deriveSeed(parent, stream))
}
