// Copyright 2025 The Axon Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package ndarray

import (
	"github.com/axon-ml/axon/internal/ndarray"
)

// Type aliases for the public API

// Shape represents the dimensions of an array.
// Example: Shape{2, 3, 4} is a 3-D array with dimensions 2×3×4.
type Shape = ndarray.Shape

// DataType represents the element kind of an array.
type DataType = ndarray.DataType

// Supported element kinds. Float64 is the default.
const (
	Float64 DataType = ndarray.Float64
	Float32 DataType = ndarray.Float32
	Float16 DataType = ndarray.Float16
	Int32   DataType = ndarray.Int32
	Int16   DataType = ndarray.Int16
	Int8    DataType = ndarray.Int8
	Uint32  DataType = ndarray.Uint32
	Uint16  DataType = ndarray.Uint16
	Uint8   DataType = ndarray.Uint8
)

// Element is the constraint over Go types that can back array elements.
type Element = ndarray.Element

// Array is a dense N-dimensional numeric array backed by reference-counted
// flat storage. Views created by Reshape, Transpose, Slice and View share
// that storage; writes through any alias are visible to all of them.
//
// Example:
//
//	a, _ := ndarray.Arange(0, 6, 1)
//	m, _ := a.Reshape(2, 3)      // zero-copy
//	_ = m.Set(99, 1, 2)          // visible through a as well
type Array = ndarray.Array

// Spec selects elements along one dimension of a Slice call; build it
// with S.
type Spec = ndarray.Spec

// Option configures array construction.
type Option = ndarray.Option

// Sentinel errors. Every error returned by this package wraps exactly
// one of them; match with errors.Is.
var (
	ErrDimensionMismatch = ndarray.ErrDimensionMismatch
	ErrIndexOutOfBounds  = ndarray.ErrIndexOutOfBounds
	ErrInvalidParameter  = ndarray.ErrInvalidParameter
	ErrInvalidState      = ndarray.ErrInvalidState
	ErrMathDomain        = ndarray.ErrMathDomain
)

// Construction options

// WithDType overrides the element kind of a new array.
func WithDType(dt DataType) Option {
	return ndarray.WithDType(dt)
}

// AsReadOnly marks a new array read-only; writes through it fail with
// ErrInvalidState.
func AsReadOnly() Option {
	return ndarray.AsReadOnly()
}

// Creation functions

// NewArray creates a zero-filled array of the given shape.
func NewArray(shape Shape, opts ...Option) (*Array, error) {
	return ndarray.NewArray(shape, opts...)
}

// Zeros creates an array filled with zeros.
//
// Example:
//
//	x, _ := ndarray.Zeros(ndarray.Shape{2, 3})
func Zeros(shape Shape, opts ...Option) (*Array, error) {
	return ndarray.Zeros(shape, opts...)
}

// Ones creates an array filled with ones.
func Ones(shape Shape, opts ...Option) (*Array, error) {
	return ndarray.Ones(shape, opts...)
}

// Full creates an array with every element set to v.
//
// Example:
//
//	x, _ := ndarray.Full(ndarray.Shape{2, 3}, 3.14)
func Full(shape Shape, v float64, opts ...Option) (*Array, error) {
	return ndarray.Full(shape, v, opts...)
}

// Eye creates an n-by-n identity array.
func Eye(n int, opts ...Option) (*Array, error) {
	return ndarray.Eye(n, opts...)
}

// Arange creates a 1-D array from start (inclusive) towards stop
// (exclusive), advancing by step.
//
// Example:
//
//	x, _ := ndarray.Arange(0, 10, 2)  // [0 2 4 6 8]
func Arange(start, stop, step float64, opts ...Option) (*Array, error) {
	return ndarray.Arange(start, stop, step, opts...)
}

// Linspace creates a 1-D array of num evenly spaced values from start to
// stop, inclusive of both endpoints.
func Linspace(start, stop float64, num int, opts ...Option) (*Array, error) {
	return ndarray.Linspace(start, stop, num, opts...)
}

// FromSlice creates an array by copying data into fresh storage; the
// dtype is inferred from the element type unless WithDType overrides it.
//
// Example:
//
//	m, _ := ndarray.FromSlice([]float64{1, 2, 3, 4, 5, 6}, ndarray.Shape{2, 3})
func FromSlice[T Element](data []T, shape Shape, opts ...Option) (*Array, error) {
	return ndarray.FromSlice(data, shape, opts...)
}

// FromNested creates an array from nested Go slices, deriving the shape
// from the nesting structure.
//
// Example:
//
//	m, _ := ndarray.FromNested([][]float64{{1, 2}, {3, 4}})
func FromNested(nested any, opts ...Option) (*Array, error) {
	return ndarray.FromNested(nested, opts...)
}

// Slicing

// S builds a dimension spec for Slice from 0 to 3 arguments:
//
//	S()                  pass the dimension through unchanged
//	S(i)                 pick a single index and drop the dimension
//	S(start, stop)       half-open range [start, stop)
//	S(start, stop, step) strided range; a negative step walks backwards
func S(args ...int) Spec {
	return ndarray.S(args...)
}

// Broadcasting

// BroadcastShapes computes the broadcast result shape of two shapes,
// also reporting whether any stretching is required.
func BroadcastShapes(a, b Shape) (Shape, bool, error) {
	return ndarray.BroadcastShapes(a, b)
}

// CanBroadcast reports whether two shapes are broadcast-compatible.
func CanBroadcast(a, b Shape) bool {
	return ndarray.CanBroadcast(a, b)
}
