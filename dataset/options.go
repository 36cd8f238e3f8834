// SPDX-License-Identifier: MIT
// Package: dataset
//
// options.go — functional options for the generators.
//
// Contract:
//   • Option constructors VALIDATE and PANIC on meaningless inputs.
//     Generators themselves never panic.
//   • Determinism is explicit: seeding is done via WithSeed or WithRand.

package dataset

import "math/rand"

// defaultMaxAttempts bounds rejection sampling at defaultMaxAttempts·m draws.
const defaultMaxAttempts = 1000

// config aggregates the knobs used by generators. Passed by value.
type config struct {
	rng         *rand.Rand // nil means "no randomness available"
	maxAttempts int        // per-sample rejection budget (>0)
}

// Option customizes a generator.
type Option func(*config)

// newConfig applies opts over deterministic defaults (last wins).
func newConfig(opts ...Option) config {
	cfg := config{maxAttempts: defaultMaxAttempts}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// WithSeed creates a new *rand.Rand with the given seed (deterministic).
func WithSeed(seed int64) Option {
	return func(c *config) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithRand provides an explicit RNG. Panics on nil.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("dataset: WithRand(nil)")
	}
	return func(c *config) {
		c.rng = r
	}
}

// WithMaxAttempts sets the per-sample rejection budget. Panics if n < 1.
func WithMaxAttempts(n int) Option {
	if n < 1 {
		panic("dataset: WithMaxAttempts(n<1)")
	}
	return func(c *config) {
		c.maxAttempts = n
	}
}
