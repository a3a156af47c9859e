package ndarray

import (
	"fmt"
	"iter"
	"slices"
)

// Shape represents the dimensions of an array.
// An empty Shape describes a scalar holding exactly one element.
type Shape []int

// NumElements returns the total number of elements for this shape.
// Scalars (empty shape) hold one element; any zero dimension yields zero.
func (s Shape) NumElements() int {
	n := 1
	for _, dim := range s {
		n *= dim
	}
	return n
}

// Validate checks that every dimension is non-negative.
// Zero-size dimensions are well-formed.
func (s Shape) Validate() error {
	for i, dim := range s {
		if dim < 0 {
			return fmt.Errorf("shape: dimension %d is negative: %d: %w", i, dim, ErrInvalidParameter)
		}
	}
	return nil
}

// Equal reports whether two shapes have identical dimensions.
func (s Shape) Equal(other Shape) bool {
	return slices.Equal(s, other)
}

// Clone returns a copy of the shape.
func (s Shape) Clone() Shape {
	return slices.Clone(s)
}

// ComputeStrides returns row-major element strides for the shape:
// the last dimension is contiguous and each outer stride is the product
// of the inner dimensions.
func (s Shape) ComputeStrides() []int {
	if len(s) == 0 {
		return []int{}
	}
	strides := make([]int, len(s))
	strides[len(s)-1] = 1
	for i := len(s) - 2; i >= 0; i-- {
		strides[i] = strides[i+1] * s[i+1]
	}
	return strides
}

// Coords iterates the shape's multi-indices in logical row-major order,
// yielding the flat index alongside the coordinate vector. The yielded
// slice is reused between iterations; clone it to retain a copy.
func (s Shape) Coords() iter.Seq2[int, []int] {
	return func(yield func(int, []int) bool) {
		n := s.NumElements()
		if n == 0 {
			return
		}
		coords := make([]int, len(s))
		for flat := 0; flat < n; flat++ {
			if !yield(flat, coords) {
				return
			}
			for i := len(s) - 1; i >= 0; i-- {
				coords[i]++
				if coords[i] < s[i] {
					break
				}
				coords[i] = 0
			}
		}
	}
}

// BroadcastShapes computes the result shape for broadcasting two shapes
// together. Shapes are aligned at their trailing dimensions; the shorter
// shape is padded with leading 1s; each aligned pair must be equal or
// contain a 1. The boolean reports whether any operand actually needs
// broadcasting, or whether the shapes already match.
func BroadcastShapes(a, b Shape) (Shape, bool, error) {
	ndim := max(len(a), len(b))
	result := make(Shape, ndim)
	needsBroadcast := len(a) != len(b)

	for i := 0; i < ndim; i++ {
		dimA, dimB := 1, 1
		if i >= ndim-len(a) {
			dimA = a[i-(ndim-len(a))]
		}
		if i >= ndim-len(b) {
			dimB = b[i-(ndim-len(b))]
		}

		switch {
		case dimA == dimB:
			result[i] = dimA
		case dimA == 1:
			result[i] = dimB
			needsBroadcast = true
		case dimB == 1:
			result[i] = dimA
			needsBroadcast = true
		default:
			return nil, false, fmt.Errorf("broadcast: incompatible shapes %v and %v at dimension %d: %w",
				a, b, i, ErrDimensionMismatch)
		}
	}

	return result, needsBroadcast, nil
}

// CanBroadcast reports whether two shapes are broadcast-compatible.
func CanBroadcast(a, b Shape) bool {
	_, _, err := BroadcastShapes(a, b)
	return err == nil
}
