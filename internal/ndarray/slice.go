package ndarray

import (
	"fmt"
	"slices"
)

// Spec selects elements along one dimension of a Slice call.
type Spec struct {
	args []int
}

// S builds a dimension spec from 0 to 3 arguments:
//
//	S()                  pass the dimension through unchanged
//	S(i)                 pick a single index and drop the dimension
//	S(start, stop)       half-open range [start, stop)
//	S(start, stop, step) strided range; a negative step walks backwards
//
// Negative indices and bounds resolve relative to the dimension size.
func S(args ...int) Spec {
	return Spec{args: slices.Clone(args)}
}

// Slice returns a zero-copy view selecting elements per dimension.
// Single-index specs are validated strictly and reduce the rank; range
// bounds are clamped into the dimension, so a range never fails on
// bounds, only on a zero step. Dimensions beyond the given specs pass
// through unchanged. The result shares the source buffer: writes through
// either side are visible to both.
func (a *Array) Slice(specs ...Spec) (*Array, error) {
	n := len(a.shape)
	if len(specs) > n {
		return nil, fmt.Errorf("slice: got %d specs for %d dimensions: %w",
			len(specs), n, ErrDimensionMismatch)
	}

	shape := make(Shape, 0, n)
	strides := make([]int, 0, n)
	offset := a.offset

	for d := 0; d < n; d++ {
		dim, stride := a.shape[d], a.strides[d]
		var sp Spec
		if d < len(specs) {
			sp = specs[d]
		}

		switch len(sp.args) {
		case 0:
			shape = append(shape, dim)
			strides = append(strides, stride)
		case 1:
			ix := sp.args[0]
			if ix < 0 {
				ix += dim
			}
			if ix < 0 || ix >= dim {
				return nil, fmt.Errorf("slice: index %d out of range for dimension %d (size %d): %w",
					sp.args[0], d, dim, ErrIndexOutOfBounds)
			}
			offset += ix * stride
		case 2, 3:
			step := 1
			if len(sp.args) == 3 {
				step = sp.args[2]
			}
			start, length, err := resolveRange(sp.args[0], sp.args[1], step, dim)
			if err != nil {
				return nil, fmt.Errorf("slice: dimension %d: %w", d, err)
			}
			offset += start * stride
			shape = append(shape, length)
			strides = append(strides, stride*step)
		default:
			return nil, fmt.Errorf("slice: spec for dimension %d has %d arguments, want 0 to 3: %w",
				d, len(sp.args), ErrInvalidParameter)
		}
	}

	return a.view(shape, strides, offset), nil
}

// resolveRange normalizes a [start, stop, step) selection against a
// dimension of the given size, returning the resolved start index and the
// selection length. Negative bounds count from the end; out-of-range
// bounds clamp rather than fail.
func resolveRange(start, stop, step, dim int) (int, int, error) {
	if step == 0 {
		return 0, 0, fmt.Errorf("step must be non-zero: %w", ErrInvalidParameter)
	}
	if dim == 0 {
		return 0, 0, nil
	}
	if start < 0 {
		start += dim
	}
	if stop < 0 {
		stop += dim
	}
	if step > 0 {
		start = clamp(start, 0, dim)
		stop = clamp(stop, 0, dim)
	} else {
		start = clamp(start, 0, dim-1)
		stop = clamp(stop, -1, dim-1)
	}
	length := ceilDiv(stop-start, step)
	if length < 0 {
		length = 0
	}
	return start, length, nil
}
