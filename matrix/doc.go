// Copyright 2025 The Axon Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package matrix provides dense 2-D linear algebra for the Axon
// numerical computing library.
//
// # Overview
//
// A Dense matrix is a float64 ndarray specialized to two dimensions,
// with the operations arrays do not offer: matrix products, LU and
// Cholesky factorizations, determinants, inverses and linear solving.
// Element-wise arithmetic is also available but, unlike the array
// engine, never broadcasts.
//
// # Basic Usage
//
//	import "github.com/axon-ml/axon/matrix"
//
//	func main() {
//	    a, _ := matrix.FromSlices([][]float64{{3, 2}, {1, 4}})
//	    x, _ := a.SolveVec([]float64{18, 16})  // [4 3]
//	    d, _ := a.Det()                        // 10
//	    inv, _ := a.Inverse()
//	}
//
// # Array Interop
//
// FromArray adopts a 2-D ndarray: contiguous writable float64 input is
// aliased, so the matrix and the array see each other's writes, while
// anything else is copied into canonical storage. Array exposes the
// backing ndarray for the reverse direction.
//
// # Error Handling
//
// Shape and domain failures wrap the package sentinels (ErrShapeMismatch,
// ErrNotSquare, ErrSingular, ErrNotPositiveDefinite, ErrNilMatrix);
// index errors pass through from the array engine unchanged. Match with
// errors.Is. Det treats a singular input as the value zero rather than
// an error.
package matrix
