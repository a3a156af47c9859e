// Copyright 2025 The Axon Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package ndarray provides dense N-dimensional numeric arrays for the
// Axon numerical computing library.
//
// # Overview
//
// Arrays couple a reference-counted flat buffer with shape, stride and
// offset metadata, giving NumPy-style semantics in pure Go:
//   - Zero-copy views: reshape, transpose, slice
//   - NumPy broadcasting for element-wise arithmetic
//   - Axis and whole-array reductions
//   - Nine fixed-width element types, from float64 down to uint8
//
// # Basic Usage
//
//	import "github.com/axon-ml/axon/ndarray"
//
//	func main() {
//	    a, _ := ndarray.FromNested([][]float64{{1, 2}, {3, 4}})
//	    b, _ := ndarray.Full(ndarray.Shape{2, 2}, 10)
//
//	    sum, _ := a.Add(b)           // element-wise, broadcasting
//	    cols, _ := a.SumAxis(0)      // reduce along an axis
//	    t := a.T()                   // zero-copy transpose
//	}
//
// # Views and Copies
//
// Reshape, Transpose, Slice and View return views: they share the source
// buffer, and writes through any alias are visible to all of them.
// SharesDataWith reports whether two arrays alias. Take, MaskSelect and
// Copy always materialize fresh storage. Reshaping a non-contiguous view
// (a transpose, a strided slice) also copies, because its logical order
// no longer matches the buffer layout.
//
// # Data Types
//
// Every array carries a DataType tag; element access widens to float64
// at the API boundary. Arithmetic on mixed dtypes promotes: float beats
// integer, wider float beats narrower, any other mix widens to Float64.
// Stores into integer dtypes truncate toward zero and clamp to the
// target range. NaN and infinities are rejected wherever values enter
// an array: at construction, Set, Fill, and scalar operands.
//
// # Slicing
//
// Slice takes one spec per dimension, built with S:
//
//	a.Slice(ndarray.S(1))          // index: picks row 1, drops the axis
//	a.Slice(ndarray.S(1, 3))       // range: rows [1, 3)
//	a.Slice(ndarray.S(), ndarray.S(0, 5, 2))  // every other column
//
// Negative indices count from the end; range bounds clamp instead of
// failing.
//
// # Error Handling
//
// All validation is eager: an operation either fully succeeds or returns
// an error before any result is built. Errors wrap one of five sentinel
// values (ErrDimensionMismatch, ErrIndexOutOfBounds, ErrInvalidParameter,
// ErrInvalidState, ErrMathDomain) and are matched with errors.Is.
package ndarray
