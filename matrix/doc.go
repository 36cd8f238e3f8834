// SPDX-License-Identifier: MIT

// Package matrix provides the dense linear-algebra primitives the perceptron
// trainer is built on.
//
// What & Why:
//
//	Learning algorithms in this module treat a data set as a d×m feature
//	matrix whose columns are samples. Dense stores such a matrix row-major
//	in one flat slice, so the hot kernel of the trainer (one dot product
//	per sample, VecMat) walks contiguous memory.
//
// The matrix package provides:
//
//   - Dense: a safe, row-major float64 matrix (At/Set never panic).
//   - Builders from column or row slices (NewDenseFromColumns/Rows).
//   - Kernels: VecMat (xᵀ·M), MatVec (M·x), Transpose, AppendRow.
//   - Vector helpers: Dot, AddScaled, Norm2.
//   - Central validators returning sentinel errors (errors.go).
//
// Numeric policy:
//
//	By default Set rejects NaN and ±Inf (ErrNaNInf). Use
//	NewDenseWithOptions(r, c, WithNoValidateNaNInf()) for raw ingestion.
//
// Complexity:
//
//	Rows/Cols/At/Set are O(1). Clone, Transpose and AppendRow are O(r·c).
//	VecMat and MatVec are O(r·c) with a single pass over the buffer.
package matrix
