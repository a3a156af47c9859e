package ndarray

// offsetOf returns the element offset a multi-index addresses under the
// given strides, relative to an array's base offset.
func offsetOf(indices, strides []int) int {
	off := 0
	for i, ix := range indices {
		off += ix * strides[i]
	}
	return off
}

// flatToCoords decodes a logical flat index into coordinates by dividing
// and taking remainders over the trailing dimension sizes.
func flatToCoords(flat int, shape Shape) []int {
	coords := make([]int, len(shape))
	for i := len(shape) - 1; i >= 0; i-- {
		if shape[i] > 0 {
			coords[i] = flat % shape[i]
			flat /= shape[i]
		}
	}
	return coords
}

// coordsFromStrides decodes a flat offset into coordinates by dividing
// through each stride in order. Valid for canonical row-major strides,
// where strides descend and every offset decomposes uniquely.
func coordsFromStrides(flat int, strides []int) []int {
	coords := make([]int, len(strides))
	for i, st := range strides {
		if st > 0 {
			coords[i] = flat / st
			flat %= st
		}
	}
	return coords
}

// clamp bounds v into [lo, hi].
func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// ceilDiv divides a by b rounding away from zero when the signs agree,
// so positive quotients round up. b must be non-zero.
func ceilDiv(a, b int) int {
	q := a / b
	if a%b != 0 && (a < 0) == (b < 0) {
		q++
	}
	return q
}
