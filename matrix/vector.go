// SPDX-License-Identifier: MIT

package matrix

import (
	"fmt"
	"math"
)

const (
	opDot       = "Dot"
	opAddScaled = "AddScaled"
)

// Dot returns Σ a[i]·b[i].
// Errors: ErrDimensionMismatch when lengths differ.
// Complexity: O(n).
func Dot(a, b []float64) (float64, error) {
	if len(a) != len(b) {
		return 0, matrixErrorf(opDot, fmt.Errorf("len %d vs %d: %w", len(a), len(b), ErrDimensionMismatch))
	}
	acc := ZeroSum
	for i := range a {
		acc += a[i] * b[i]
	}

	return acc, nil
}

// AddScaled returns a fresh slice holding a + alpha·b. Neither input is modified.
// Errors: ErrDimensionMismatch when lengths differ.
// Complexity: Time O(n), Space O(n).
func AddScaled(a []float64, alpha float64, b []float64) ([]float64, error) {
	if len(a) != len(b) {
		return nil, matrixErrorf(opAddScaled, fmt.Errorf("len %d vs %d: %w", len(a), len(b), ErrDimensionMismatch))
	}
	out := make([]float64, len(a))
	for i := range a {
		out[i] = a[i] + alpha*b[i]
	}

	return out, nil
}

// Norm2 returns the Euclidean norm of x.
// Complexity: O(n).
func Norm2(x []float64) float64 {
	acc := ZeroSum
	for _, v := range x {
		acc += v * v
	}

	return math.Sqrt(acc)
}
