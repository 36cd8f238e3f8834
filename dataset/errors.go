// SPDX-License-Identifier: MIT
// Package: dataset
//
// errors.go — sentinel errors for the dataset package.
//
// Error policy:
//   • Only sentinel variables (package-level) are exposed.
//   • Callers use errors.Is(err, ErrX) to branch on semantics.
//   • Generators attach context with %w; they never panic at runtime.
//     Validation panics are confined to option constructors (WithX...).
//
// Priority when several validations fail:
//   ErrBadSize → ErrBadMargin → ErrNeedRandSource → ErrConstructFailed.

package dataset

import (
	"errors"
	"fmt"
)

// ErrBadSize indicates a dimension or sample count below the allowed minimum.
var ErrBadSize = errors.New("dataset: invalid size")

// ErrBadMargin indicates a margin that is negative, non-finite, or too large
// to be achievable inside the unit cube.
var ErrBadMargin = errors.New("dataset: invalid margin")

// ErrNeedRandSource indicates that a stochastic generator was called without
// an RNG (use WithSeed or WithRand).
var ErrNeedRandSource = errors.New("dataset: rng is required")

// ErrConstructFailed indicates that rejection sampling exhausted its attempt
// budget before collecting enough samples.
var ErrConstructFailed = errors.New("dataset: construction failed")

// datasetErrorf prefixes err with the generator name, keeping it matchable.
func datasetErrorf(method string, err error) error {
	return fmt.Errorf("%s: %w", method, err)
}
