package perceptron

import (
	"fmt"
	"math"

	"github.com/katalvlaran/perceptron/matrix"
)

const (
	opPredict      = "Predict"
	opClassify     = "Classify"
	opMistakeBound = "MistakeBound"
)

// Predict returns the label w assigns to the single sample x: +1 when
// w·x (+ bias) > 0, else -1. A zero score counts as -1, matching the rule
// that a zero constraint value is a violation for either label.
//
// len(w) must be len(x)+1 when useBias is set (bias last), len(x) otherwise.
// Complexity: O(d).
func Predict(w, x []float64, useBias bool) (float64, error) {
	var bias float64
	ww := w
	if useBias {
		if len(w) != len(x)+1 {
			return 0, perceptronErrorf(opPredict, fmt.Errorf("len(w)=%d, len(x)=%d: %w", len(w), len(x), ErrDimensionMismatch))
		}
		bias = w[len(w)-1]
		ww = w[:len(w)-1]
	}
	s, err := matrix.Dot(ww, x)
	if err != nil {
		return 0, perceptronErrorf(opPredict, fmt.Errorf("%w: %w", ErrDimensionMismatch, err))
	}

	return sign(s + bias), nil
}

// Classify labels every sample column of X with w.
// Complexity: O(d·m).
func Classify(X *matrix.Dense, w []float64, useBias bool) ([]float64, error) {
	Xb, err := Augment(X, useBias)
	if err != nil {
		return nil, perceptronErrorf(opClassify, err)
	}
	if len(w) != Xb.Rows() {
		return nil, perceptronErrorf(opClassify, fmt.Errorf("len(w)=%d, features=%d: %w", len(w), Xb.Rows(), ErrDimensionMismatch))
	}
	scores, err := matrix.VecMat(w, Xb)
	if err != nil {
		return nil, perceptronErrorf(opClassify, err)
	}
	for i := range scores {
		scores[i] = sign(scores[i])
	}

	return scores, nil
}

// Margin returns γ = min_i y_i·(u·xb_i)/‖u‖ and R = max_i ‖xb_i‖ for the
// reference separator u over the (augmented) data.
//
// Errors: ErrNotSeparating when γ ≤ 0 (including u = 0), ErrNonFinite for
// NaN/Inf in u, plus the validation errors of Constraints.
// Complexity: O(d'·m).
func Margin(X *matrix.Dense, Y, u []float64, useBias bool) (gamma, radius float64, err error) {
	if err = matrix.ValidateFiniteVec(u); err != nil {
		return 0, 0, perceptronErrorf(opMistakeBound, fmt.Errorf("%w: %w", ErrNonFinite, err))
	}
	Xb, err := Augment(X, useBias)
	if err != nil {
		return 0, 0, perceptronErrorf(opMistakeBound, err)
	}
	c, err := Constraints(Xb, Y, u)
	if err != nil {
		return 0, 0, perceptronErrorf(opMistakeBound, err)
	}
	norm := matrix.Norm2(u)
	if norm == 0 {
		return 0, 0, perceptronErrorf(opMistakeBound, ErrNotSeparating)
	}

	gamma = math.Inf(1)
	for j, v := range c {
		if v/norm < gamma {
			gamma = v / norm
		}
		col, _ := Xb.Col(j) // j < Cols by construction
		if r := matrix.Norm2(col); r > radius {
			radius = r
		}
	}
	if gamma <= 0 {
		return 0, 0, perceptronErrorf(opMistakeBound, fmt.Errorf("margin %g: %w", gamma, ErrNotSeparating))
	}

	return gamma, radius, nil
}

// MistakeBound returns Novikoff's bound (R/γ)² on the number of Perceptron
// updates for data separated by u with margin γ.
// Complexity: O(d'·m).
func MistakeBound(X *matrix.Dense, Y, u []float64, useBias bool) (float64, error) {
	gamma, radius, err := Margin(X, Y, u, useBias)
	if err != nil {
		return 0, err
	}
	ratio := radius / gamma

	return ratio * ratio, nil
}

// sign maps a score to a label; zero maps to -1.
func sign(s float64) float64 {
	if s > 0 {
		return 1
	}

	return -1
}
