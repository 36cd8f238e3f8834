package perceptron

import (
	"errors"
	"fmt"
)

// Sentinel errors returned by Train and the helpers in this package.
// Callers match them with errors.Is; context is attached with %w.
var (
	// ErrNilMatrix indicates that a nil feature matrix was passed.
	ErrNilMatrix = errors.New("perceptron: feature matrix is nil")

	// ErrEmptyInput indicates that there are no samples or no features.
	ErrEmptyInput = errors.New("perceptron: empty input")

	// ErrDimensionMismatch indicates that len(Y) differs from the number of
	// sample columns, or a weight vector has the wrong length.
	ErrDimensionMismatch = errors.New("perceptron: dimension mismatch")

	// ErrInvalidLabel indicates a label other than exactly -1 or +1.
	ErrInvalidLabel = errors.New("perceptron: label must be -1 or +1")

	// ErrNonFinite indicates a NaN or ±Inf feature or weight.
	ErrNonFinite = errors.New("perceptron: NaN or Inf in input")

	// ErrBadMaxIterations indicates a negative iteration budget.
	ErrBadMaxIterations = errors.New("perceptron: MaxIterations must be >= 0")

	// ErrInvalidChoice indicates that a Source returned an index that is not
	// in the violated set it was offered.
	ErrInvalidChoice = errors.New("perceptron: source chose a non-violated index")

	// ErrNotSeparating indicates that a reference separator misclassifies at
	// least one sample, so no positive margin exists for it.
	ErrNotSeparating = errors.New("perceptron: vector does not separate the data")
)

// perceptronErrorf wraps err with an operation tag, preserving it for errors.Is.
func perceptronErrorf(op string, err error) error {
	return fmt.Errorf("%s: %w", op, err)
}
