package ndarray

import (
	"fmt"
	"slices"
)

// View returns a zero-copy alias of the whole array.
func (a *Array) View() *Array {
	return a.view(a.shape.Clone(), slices.Clone(a.strides), a.offset)
}

// ReadOnlyView returns a zero-copy alias through which writes are
// rejected. The underlying buffer stays writable through the source.
func (a *Array) ReadOnlyView() *Array {
	v := a.View()
	v.readonly = true
	return v
}

// Reshape returns an array with the same elements in a new shape. The
// element count must match; one dimension may be -1 to be inferred.
//
// A canonically laid out source reshapes as a zero-copy view onto the
// same buffer. A non-canonical source (transposed or strided views, where
// logical order diverges from physical order) is first materialized into
// a canonical copy, so the result never misreads permuted storage; it
// also does not alias the source.
func (a *Array) Reshape(dims ...int) (*Array, error) {
	shape, err := resolveReshapeDims(a.Size(), dims)
	if err != nil {
		return nil, fmt.Errorf("reshape: %w", err)
	}
	if !a.isCanonical() {
		c := a.Copy()
		c.shape = shape
		c.strides = shape.ComputeStrides()
		c.readonly = a.readonly
		return c, nil
	}
	return a.view(shape, shape.ComputeStrides(), a.offset), nil
}

// Flatten returns the array reshaped to one dimension.
func (a *Array) Flatten() (*Array, error) {
	return a.Reshape(a.Size())
}

func resolveReshapeDims(size int, dims []int) (Shape, error) {
	shape := Shape(slices.Clone(dims))
	infer := -1
	known := 1
	for i, d := range shape {
		switch {
		case d == -1:
			if infer >= 0 {
				return nil, fmt.Errorf("at most one dimension may be -1: %w", ErrInvalidParameter)
			}
			infer = i
		case d < 0:
			return nil, fmt.Errorf("dimension %d is negative: %d: %w", i, d, ErrInvalidParameter)
		default:
			known *= d
		}
	}
	if infer >= 0 {
		if known == 0 || size%known != 0 {
			return nil, fmt.Errorf("cannot infer dimension %d for %d elements: %w",
				infer, size, ErrDimensionMismatch)
		}
		shape[infer] = size / known
		known *= shape[infer]
	}
	if known != size {
		return nil, fmt.Errorf("new shape %v holds %d elements, array holds %d: %w",
			shape, known, size, ErrDimensionMismatch)
	}
	return shape, nil
}

// Transpose returns a zero-copy view with permuted dimensions. Without
// arguments the dimension order is fully reversed; otherwise axes must be
// a permutation of 0..ndim-1 (negative axes resolve from the end).
func (a *Array) Transpose(axes ...int) (*Array, error) {
	n := len(a.shape)
	if len(axes) == 0 {
		shape := make(Shape, n)
		strides := make([]int, n)
		for i := 0; i < n; i++ {
			shape[i] = a.shape[n-1-i]
			strides[i] = a.strides[n-1-i]
		}
		return a.view(shape, strides, a.offset), nil
	}

	if len(axes) != n {
		return nil, fmt.Errorf("transpose: got %d axes for %d dimensions: %w",
			len(axes), n, ErrDimensionMismatch)
	}
	seen := make([]bool, n)
	shape := make(Shape, n)
	strides := make([]int, n)
	for i, ax := range axes {
		if ax < 0 {
			ax += n
		}
		if ax < 0 || ax >= n {
			return nil, fmt.Errorf("transpose: axis %d out of range for %d dimensions: %w",
				axes[i], n, ErrInvalidParameter)
		}
		if seen[ax] {
			return nil, fmt.Errorf("transpose: duplicate axis %d: %w", ax, ErrInvalidParameter)
		}
		seen[ax] = true
		shape[i] = a.shape[ax]
		strides[i] = a.strides[ax]
	}
	return a.view(shape, strides, a.offset), nil
}

// T returns the full transpose view. Shorthand for Transpose().
func (a *Array) T() *Array {
	t, _ := a.Transpose()
	return t
}

// Squeeze returns a zero-copy view with size-1 dimensions removed.
// Without arguments every size-1 dimension is dropped; otherwise only the
// named axes, each of which must have size 1.
func (a *Array) Squeeze(axes ...int) (*Array, error) {
	n := len(a.shape)
	drop := make([]bool, n)
	if len(axes) == 0 {
		for d, dim := range a.shape {
			if dim == 1 {
				drop[d] = true
			}
		}
	} else {
		for _, ax := range axes {
			orig := ax
			if ax < 0 {
				ax += n
			}
			if ax < 0 || ax >= n {
				return nil, fmt.Errorf("squeeze: axis %d out of range for %d dimensions: %w",
					orig, n, ErrInvalidParameter)
			}
			if a.shape[ax] != 1 {
				return nil, fmt.Errorf("squeeze: axis %d has size %d, want 1: %w",
					orig, a.shape[ax], ErrInvalidParameter)
			}
			drop[ax] = true
		}
	}

	shape := make(Shape, 0, n)
	strides := make([]int, 0, n)
	for d := 0; d < n; d++ {
		if !drop[d] {
			shape = append(shape, a.shape[d])
			strides = append(strides, a.strides[d])
		}
	}
	return a.view(shape, strides, a.offset), nil
}

// Unsqueeze returns a zero-copy view with a size-1 dimension inserted at
// axis, which may range from 0 to ndim inclusive.
func (a *Array) Unsqueeze(axis int) (*Array, error) {
	n := len(a.shape)
	if axis < 0 {
		axis += n + 1
	}
	if axis < 0 || axis > n {
		return nil, fmt.Errorf("unsqueeze: axis %d out of range for %d dimensions: %w",
			axis, n, ErrInvalidParameter)
	}

	shape := make(Shape, 0, n+1)
	strides := make([]int, 0, n+1)
	shape = append(shape, a.shape[:axis]...)
	strides = append(strides, a.strides[:axis]...)
	// stride chosen so canonical arrays stay canonical
	inserted := 1
	if axis < n {
		inserted = a.strides[axis] * a.shape[axis]
	}
	shape = append(shape, 1)
	strides = append(strides, inserted)
	shape = append(shape, a.shape[axis:]...)
	strides = append(strides, a.strides[axis:]...)
	return a.view(shape, strides, a.offset), nil
}
