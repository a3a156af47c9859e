package ndarray

import "fmt"

// Take gathers elements by coordinate lists, one list per leading
// dimension, all of equal length. The k-th result element is the source
// element at (indices[0][k], indices[1][k], ...); dimensions without a
// list are indexed at 0. Indices resolve negatives and are bounds-checked
// before any allocation. The result is a fresh 1-D array; unlike Slice it
// never aliases the source.
func (a *Array) Take(indices ...[]int) (*Array, error) {
	n := len(a.shape)
	if len(indices) == 0 || len(indices) > n {
		return nil, fmt.Errorf("take: got %d index lists for %d dimensions: %w",
			len(indices), n, ErrDimensionMismatch)
	}
	length := len(indices[0])
	for d, list := range indices {
		if len(list) != length {
			return nil, fmt.Errorf("take: index list %d has length %d, want %d: %w",
				d, len(list), length, ErrDimensionMismatch)
		}
	}

	resolved := make([][]int, len(indices))
	for d, list := range indices {
		dim := a.shape[d]
		rs := make([]int, length)
		for k, ix := range list {
			orig := ix
			if ix < 0 {
				ix += dim
			}
			if ix < 0 || ix >= dim {
				return nil, fmt.Errorf("take: index %d out of range for dimension %d (size %d): %w",
					orig, d, dim, ErrIndexOutOfBounds)
			}
			rs[k] = ix
		}
		resolved[d] = rs
	}

	out, err := newDense(Shape{length}, a.dtype)
	if err != nil {
		return nil, fmt.Errorf("take: %w", err)
	}
	for k := 0; k < length; k++ {
		phys := a.offset
		for d := range resolved {
			phys += resolved[d][k] * a.strides[d]
		}
		out.storeAt(k, a.loadAt(phys))
	}
	return out, nil
}

// MaskSelect copies the elements whose logical-order position is true in
// the mask, which must have exactly one entry per element. The result is
// a fresh 1-D array, possibly empty.
func (a *Array) MaskSelect(mask []bool) (*Array, error) {
	if len(mask) != a.Size() {
		return nil, fmt.Errorf("mask select: mask has %d entries, array holds %d elements: %w",
			len(mask), a.Size(), ErrDimensionMismatch)
	}

	count := 0
	for _, m := range mask {
		if m {
			count++
		}
	}
	out, err := newDense(Shape{count}, a.dtype)
	if err != nil {
		return nil, fmt.Errorf("mask select: %w", err)
	}

	k := 0
	for flat, ix := range a.shape.Coords() {
		if mask[flat] {
			out.storeAt(k, a.loadAt(a.offset+offsetOf(ix, a.strides)))
			k++
		}
	}
	return out, nil
}
