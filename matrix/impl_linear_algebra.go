// SPDX-License-Identifier: MIT
// Package matrix provides the bulk kernels used by the learners:
// VecMat (one dot product per column), MatVec, Transpose and AppendRow.
// All functions perform fail-fast validation and return clear errors on
// dimension mismatches. Inputs are never mutated.

package matrix

import "fmt"

// ZeroSum is the initial value of every dot-product accumulator.
const ZeroSum = 0.0

// Operation name constants for unified error wrapping.
const (
	opVecMat    = "VecMat"
	opMatVec    = "MatVec"
	opTranspose = "Transpose"
	opAppendRow = "AppendRow"
)

// matrixErrorf wraps err with an operation tag, preserving the original error via %w.
// Use only when err != nil to avoid creating a non-nil wrapper around a nil cause.
// Complexity: O(1).
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// VecMat computes yᵀ = xᵀ·M, i.e. y[j] = Σ_i x[i]·M[i,j], one entry per column.
// With samples stored as columns this evaluates w·x_j for every sample j in a
// single pass.
//
// Contract: m non-nil; x non-nil; len(x) == m.Rows().
// Fast-path: *Dense walks the flat buffer row by row, accumulating into y.
// Determinism: fixed i→j loop order.
// Complexity: Time O(r*c), Space O(c) for y.
func VecMat(x []float64, m Matrix) ([]float64, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opVecMat, err)
	}
	if err := ValidateVecLen(x, m.Rows()); err != nil {
		return nil, matrixErrorf(opVecMat, err)
	}
	rows, cols := m.Rows(), m.Cols()
	y := make([]float64, cols)

	var i, j, base int
	var xv float64
	if d, ok := m.(*Dense); ok {
		for i = 0; i < rows; i++ {
			xv = x[i]
			if xv == 0 { // a zero weight contributes nothing to any column
				continue
			}
			base = i * cols
			for j = 0; j < cols; j++ {
				y[j] += xv * d.data[base+j]
			}
		}

		return y, nil
	}

	// Fallback: interface-based access via At.
	var mv float64
	var err error
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			if mv, err = m.At(i, j); err != nil {
				return nil, matrixErrorf(opVecMat, fmt.Errorf("At(%d,%d): %w", i, j, err))
			}
			y[j] += x[i] * mv
		}
	}

	return y, nil
}

// MatVec computes y = m * x for a column vector x.
//
// Contract: m non-nil; x non-nil; len(x) == m.Cols().
// Determinism: fixed i→j loop order.
// Complexity: Time O(r*c), Space O(r) for y.
func MatVec(m Matrix, x []float64) ([]float64, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opMatVec, err)
	}
	if err := ValidateVecLen(x, m.Cols()); err != nil {
		return nil, matrixErrorf(opMatVec, err)
	}
	rows, cols := m.Rows(), m.Cols()
	y := make([]float64, rows)

	var i, j, base int
	var acc float64
	if d, ok := m.(*Dense); ok {
		for i = 0; i < rows; i++ {
			acc = ZeroSum
			base = i * cols
			for j = 0; j < cols; j++ {
				acc += d.data[base+j] * x[j]
			}
			y[i] = acc
		}

		return y, nil
	}

	var mv float64
	var err error
	for i = 0; i < rows; i++ {
		acc = ZeroSum
		for j = 0; j < cols; j++ {
			if mv, err = m.At(i, j); err != nil {
				return nil, matrixErrorf(opMatVec, fmt.Errorf("At(%d,%d): %w", i, j, err))
			}
			acc += mv * x[j]
		}
		y[i] = acc
	}

	return y, nil
}

// Transpose returns a new Dense holding mᵀ.
// Complexity: Time O(r*c), Space O(r*c).
func Transpose(m Matrix) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}
	rows, cols := m.Rows(), m.Cols()
	res, err := NewDense(cols, rows)
	if err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}

	var i, j int
	if d, ok := m.(*Dense); ok {
		res.validateNaNInf = d.validateNaNInf
		for i = 0; i < rows; i++ {
			for j = 0; j < cols; j++ {
				res.data[j*rows+i] = d.data[i*cols+j]
			}
		}
		return res, nil
	}

	var v float64
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			if v, err = m.At(i, j); err != nil {
				return nil, matrixErrorf(opTranspose, fmt.Errorf("At(%d,%d): %w", i, j, err))
			}
			res.data[j*rows+i] = v
		}
	}

	return res, nil
}

// AppendRow returns a new (r+1)×c Dense: the rows of m followed by row.
// The input matrix is not modified. Appending a row of ones turns a
// homogeneous feature matrix into its bias-augmented form.
//
// Errors: ErrNilMatrix, ErrDimensionMismatch (len(row) != Cols),
// ErrNaNInf (non-finite row under the policy of m).
// Complexity: Time O(r*c), Space O((r+1)*c).
func AppendRow(m *Dense, row []float64) (*Dense, error) {
	if m == nil {
		return nil, matrixErrorf(opAppendRow, ErrNilMatrix)
	}
	if err := ValidateVecLen(row, m.c); err != nil {
		return nil, matrixErrorf(opAppendRow, err)
	}
	if m.validateNaNInf {
		if err := ValidateFiniteVec(row); err != nil {
			return nil, matrixErrorf(opAppendRow, err)
		}
	}

	data := make([]float64, (m.r+1)*m.c)
	copy(data, m.data)
	copy(data[m.r*m.c:], row)

	return &Dense{r: m.r + 1, c: m.c, data: data, validateNaNInf: m.validateNaNInf}, nil
}
