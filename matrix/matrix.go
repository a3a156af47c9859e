// Copyright 2025 The Axon Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package matrix

import (
	"github.com/axon-ml/axon/internal/matrix"
	"github.com/axon-ml/axon/ndarray"
)

// Dense is a dense row-major matrix of float64 values backed by a 2-D
// ndarray.
//
// Example:
//
//	a, _ := matrix.FromSlices([][]float64{{2, 1}, {1, 3}})
//	inv, _ := a.Inverse()
//	p, _ := a.MatMul(inv)  // identity, up to rounding
type Dense = matrix.Dense

// Sentinel errors for the linear-algebra surface; match with errors.Is.
var (
	ErrNilMatrix           = matrix.ErrNilMatrix
	ErrShapeMismatch       = matrix.ErrShapeMismatch
	ErrNotSquare           = matrix.ErrNotSquare
	ErrSingular            = matrix.ErrSingular
	ErrNotPositiveDefinite = matrix.ErrNotPositiveDefinite
)

// NewDense creates a zero-filled rows×cols matrix.
func NewDense(rows, cols int) (*Dense, error) {
	return matrix.NewDense(rows, cols)
}

// FromSlices creates a matrix from rows of values.
//
// Example:
//
//	m, _ := matrix.FromSlices([][]float64{{1, 2}, {3, 4}})
func FromSlices(rows [][]float64) (*Dense, error) {
	return matrix.FromSlices(rows)
}

// FromArray adopts a 2-D array as a matrix, aliasing its storage when it
// is contiguous writable float64 and copying otherwise.
func FromArray(a *ndarray.Array) (*Dense, error) {
	return matrix.FromArray(a)
}

// Identity creates the n×n identity matrix.
func Identity(n int) (*Dense, error) {
	return matrix.Identity(n)
}
