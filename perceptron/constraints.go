// Package perceptron - constraint evaluation.
//
// A sample i is satisfied by w when its constraint value y_i·(w·xb_i) is
// strictly positive and violated otherwise (≤ 0, so the zero vector violates
// every sample). The empirical risk of w is the violated fraction.
package perceptron

import (
	"fmt"

	"github.com/katalvlaran/perceptron/matrix"
)

const (
	opAugment     = "Augment"
	opConstraints = "Constraints"
)

// Augment returns the feature matrix the learner works on: a copy of X with
// a row of ones appended when useBias is set, or a plain copy otherwise.
// X itself is never modified.
//
// Complexity: Time O(d·m), Space O(d'·m).
func Augment(X *matrix.Dense, useBias bool) (*matrix.Dense, error) {
	if X == nil {
		return nil, perceptronErrorf(opAugment, ErrNilMatrix)
	}
	if !useBias {
		return X.Clone().(*matrix.Dense), nil
	}
	ones := make([]float64, X.Cols())
	for j := range ones {
		ones[j] = 1
	}
	Xb, err := matrix.AppendRow(X, ones)
	if err != nil {
		return nil, perceptronErrorf(opAugment, err)
	}

	return Xb, nil
}

// Constraints returns c[i] = Y[i]·(w·xb_i) for every sample column of Xb.
// All m constraints are evaluated with one VecMat pass.
//
// Errors: ErrDimensionMismatch when len(w) != Xb.Rows() or len(Y) != Xb.Cols().
// Complexity: Time O(d'·m), Space O(m).
func Constraints(Xb *matrix.Dense, Y, w []float64) ([]float64, error) {
	if Xb == nil {
		return nil, perceptronErrorf(opConstraints, ErrNilMatrix)
	}
	if len(Y) != Xb.Cols() || len(w) != Xb.Rows() {
		return nil, perceptronErrorf(opConstraints,
			fmt.Errorf("Xb %dx%d, len(Y)=%d, len(w)=%d: %w", Xb.Rows(), Xb.Cols(), len(Y), len(w), ErrDimensionMismatch))
	}
	scores, err := matrix.VecMat(w, Xb)
	if err != nil {
		return nil, perceptronErrorf(opConstraints, err)
	}
	for i := range scores {
		scores[i] *= Y[i]
	}

	return scores, nil
}

// ViolatedIndices returns, in ascending order, every i with c[i] ≤ 0.
// Complexity: O(m).
func ViolatedIndices(c []float64) []int {
	var out []int
	for i, v := range c {
		if v <= 0 {
			out = append(out, i)
		}
	}

	return out
}

// EmpiricalRisk returns the fraction of constraint values ≤ 0, in [0, 1].
// An empty slice has risk 0.
// Complexity: O(m).
func EmpiricalRisk(c []float64) float64 {
	if len(c) == 0 {
		return 0
	}
	violated := 0
	for _, v := range c {
		if v <= 0 {
			violated++
		}
	}

	return float64(violated) / float64(len(c))
}
