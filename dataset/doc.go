// SPDX-License-Identifier: MIT

// Package dataset generates seeded, labeled point sets for linear
// classifiers: separable fixtures with a known margin, fixtures that are
// separable only with a bias term, and classic non-separable ones.
//
// Every generator returns a *Set whose X is d×m (samples are columns) and
// whose Y holds labels in {-1,+1}, the layout perceptron.Train consumes.
//
// Determinism:
//
//	Stochastic generators require an RNG (WithSeed or WithRand) and draw
//	from it in a fixed order, so the same seed always yields the same set.
//
// AI-Hints:
//   - Separable(d, m, γ) gives Novikoff's bound (R/γ)² ≤ d/γ² for free.
//   - XOR and Contradiction are the go-to non-separable fixtures.
package dataset
