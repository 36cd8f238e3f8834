// SPDX-License-Identifier: MIT
// Package: dataset
//
// dataset.go — the Set type and the generators.
//
// Canonical models:
//   - Separable: u ~ N(0, I_d) normalized; x ~ U[-1,1]^d; keep x iff
//     |u·x| ≥ margin and u·x ≠ 0; label sign(u·x).
//   - Affine: same with score u·x − offset; separator (u, −offset).
//   - XOR: sample k lies in quadrant k mod 4, label sign(x₁·x₂).
//   - Contradiction: one point listed twice with opposite labels.
//
// Determinism:
//   - Draw order is fixed: separator first, then candidates in sample order,
//     each candidate drawing its coordinates in ascending order.

package dataset

import (
	"fmt"
	"math"

	"github.com/katalvlaran/perceptron/matrix"
)

const (
	methodSeparable     = "Separable"
	methodAffine        = "Affine"
	methodXOR           = "XOR"
	methodContradiction = "Contradiction"

	minDim       = 1
	minSamples   = 1
	minXORPoints = 4
	xorMinCoord  = 0.1 // keeps XOR points off the axes
)

// Set is a labeled sample set.
type Set struct {
	// X is d×m; column j is sample j.
	X *matrix.Dense
	// Y holds the labels, len(Y) == X.Cols().
	Y []float64
	// Separator is a reference separator when one is known: length d for a
	// homogeneous separator, d+1 (bias last) for an affine one; nil otherwise.
	Separator []float64
	// Bias reports whether Separator carries a bias term.
	Bias bool
}

// Dim returns the feature dimension d.
func (s *Set) Dim() int { return s.X.Rows() }

// Len returns the number of samples m.
func (s *Set) Len() int { return s.X.Cols() }

// Separable returns m samples in [-1,1]^d separable through the origin by a
// random unit vector u with margin at least margin.
//
// Contract:
//   - d ≥ 1, m ≥ 1 (else ErrBadSize).
//   - 0 ≤ margin < 1, finite (else ErrBadMargin).
//   - RNG required (else ErrNeedRandSource).
//
// Complexity: O(d·m) expected draws; bounded by maxAttempts·m candidates.
func Separable(d, m int, margin float64, opts ...Option) (*Set, error) {
	return linear(methodSeparable, d, m, 0, margin, false, opts...)
}

// Affine returns m samples labeled by sign(u·x − offset). With offset ≠ 0
// the data generally needs a bias term to be separated.
// Separator is (u₁..u_d, −offset).
//
// Contract: as Separable; offset must be finite (else ErrBadMargin).
func Affine(d, m int, offset, margin float64, opts ...Option) (*Set, error) {
	if math.IsNaN(offset) || math.IsInf(offset, 0) {
		return nil, datasetErrorf(methodAffine, fmt.Errorf("offset=%g: %w", offset, ErrBadMargin))
	}
	return linear(methodAffine, d, m, offset, margin, true, opts...)
}

// linear implements Separable and Affine.
func linear(method string, d, m int, offset, margin float64, bias bool, opts ...Option) (*Set, error) {
	if d < minDim || m < minSamples {
		return nil, datasetErrorf(method, fmt.Errorf("d=%d, m=%d: %w", d, m, ErrBadSize))
	}
	if math.IsNaN(margin) || margin < 0 || margin >= 1 {
		return nil, datasetErrorf(method, fmt.Errorf("margin=%g not in [0,1): %w", margin, ErrBadMargin))
	}
	cfg := newConfig(opts...)
	if cfg.rng == nil {
		return nil, datasetErrorf(method, ErrNeedRandSource)
	}
	rng := cfg.rng

	// 1) Random unit direction; redraw in the (measure-zero) all-zero case.
	u := make([]float64, d)
	for {
		for i := range u {
			u[i] = rng.NormFloat64()
		}
		if n := matrix.Norm2(u); n > 0 {
			for i := range u {
				u[i] /= n
			}
			break
		}
	}

	// 2) Rejection sampling inside the unit cube.
	var (
		cols     = make([][]float64, 0, m)
		labels   = make([]float64, 0, m)
		budget   = cfg.maxAttempts * m
		attempts int
		score    float64
	)
	for len(cols) < m {
		if attempts >= budget {
			return nil, datasetErrorf(method, fmt.Errorf("%d/%d samples after %d draws: %w",
				len(cols), m, attempts, ErrConstructFailed))
		}
		attempts++

		x := make([]float64, d)
		for i := range x {
			x[i] = 2*rng.Float64() - 1
		}
		score, _ = matrix.Dot(u, x) // equal lengths by construction
		score -= offset
		if score == 0 || math.Abs(score) < margin {
			continue
		}
		cols = append(cols, x)
		labels = append(labels, signLabel(score))
	}

	X, err := matrix.NewDenseFromColumns(cols)
	if err != nil {
		return nil, datasetErrorf(method, err)
	}
	sep := u
	if bias {
		sep = append(u, -offset)
	}

	return &Set{X: X, Y: labels, Separator: sep, Bias: bias}, nil
}

// XOR returns m ≥ 4 points in the plane, sample k in quadrant k mod 4
// (coordinates' magnitudes in [0.1, 1]), labeled by the sign of x₁·x₂.
// Every quadrant is populated, so no affine separator exists.
func XOR(m int, opts ...Option) (*Set, error) {
	if m < minXORPoints {
		return nil, datasetErrorf(methodXOR, fmt.Errorf("m=%d < %d: %w", m, minXORPoints, ErrBadSize))
	}
	cfg := newConfig(opts...)
	if cfg.rng == nil {
		return nil, datasetErrorf(methodXOR, ErrNeedRandSource)
	}

	// quadrant signs in counter-clockwise order
	quadrants := [4][2]float64{{1, 1}, {-1, 1}, {-1, -1}, {1, -1}}
	cols := make([][]float64, m)
	labels := make([]float64, m)
	for k := 0; k < m; k++ {
		q := quadrants[k%4]
		a := xorMinCoord + (1-xorMinCoord)*cfg.rng.Float64()
		b := xorMinCoord + (1-xorMinCoord)*cfg.rng.Float64()
		cols[k] = []float64{q[0] * a, q[1] * b}
		labels[k] = q[0] * q[1]
	}

	X, err := matrix.NewDenseFromColumns(cols)
	if err != nil {
		return nil, datasetErrorf(methodXOR, err)
	}

	return &Set{X: X, Y: labels}, nil
}

// Contradiction returns the point (1,1) listed twice with labels +1 and -1.
// No hypothesis, homogeneous or affine, classifies both copies correctly.
func Contradiction() (*Set, error) {
	X, err := matrix.NewDenseFromColumns([][]float64{{1, 1}, {1, 1}})
	if err != nil {
		return nil, datasetErrorf(methodContradiction, err)
	}

	return &Set{X: X, Y: []float64{1, -1}}, nil
}

// signLabel maps a non-zero score to ±1.
func signLabel(s float64) float64 {
	if s > 0 {
		return 1
	}

	return -1
}
