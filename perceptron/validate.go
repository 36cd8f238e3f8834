// Package perceptron - input validation.
//
// Policy: validate and fail fast. Train never starts the update loop on
// malformed input; every check returns a sentinel from errors.go.
//
// Order (documented, enforced in tests):
// nil matrix -> empty -> options -> dimension mismatch -> labels -> finite.
package perceptron

import (
	"fmt"

	"github.com/katalvlaran/perceptron/matrix"
)

const opValidate = "validate"

// validateInputs checks X, Y and opts and returns the sample count m.
//
// Complexity: O(d·m) for the finite scan, O(m) for labels.
func validateInputs(X *matrix.Dense, Y []float64, opts Options) (int, error) {
	if X == nil {
		return 0, perceptronErrorf(opValidate, ErrNilMatrix)
	}
	if X.Rows() == 0 || X.Cols() == 0 || len(Y) == 0 {
		return 0, perceptronErrorf(opValidate, ErrEmptyInput)
	}
	if opts.MaxIterations < 0 {
		return 0, perceptronErrorf(opValidate, fmt.Errorf("got %d: %w", opts.MaxIterations, ErrBadMaxIterations))
	}
	if len(Y) != X.Cols() {
		return 0, perceptronErrorf(opValidate,
			fmt.Errorf("len(Y)=%d, samples=%d: %w", len(Y), X.Cols(), ErrDimensionMismatch))
	}
	if err := ValidateLabels(Y); err != nil {
		return 0, perceptronErrorf(opValidate, err)
	}
	if err := matrix.ValidateFinite(X); err != nil {
		return 0, perceptronErrorf(opValidate, fmt.Errorf("%w: %w", ErrNonFinite, err))
	}

	return len(Y), nil
}

// ValidateLabels reports the first label that is not exactly -1 or +1.
// Complexity: O(m).
func ValidateLabels(Y []float64) error {
	for i, y := range Y {
		if y != 1 && y != -1 {
			return fmt.Errorf("Y[%d]=%g: %w", i, y, ErrInvalidLabel)
		}
	}

	return nil
}
