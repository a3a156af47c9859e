package ndarray

import (
	"fmt"
	"math"
)

// resolveAxis normalizes a possibly negative axis against the rank.
func (a *Array) resolveAxis(op string, axis int) (int, error) {
	n := len(a.shape)
	ax := axis
	if ax < 0 {
		ax += n
	}
	if ax < 0 || ax >= n {
		return 0, fmt.Errorf("%s: axis %d out of range for %d dimensions: %w",
			op, axis, n, ErrInvalidParameter)
	}
	return ax, nil
}

// foldedShape is the input shape with one axis removed. It may be empty;
// reductions label that case with shape [1] in their results.
func (a *Array) foldedShape(ax int) Shape {
	out := make(Shape, 0, len(a.shape)-1)
	for d, dim := range a.shape {
		if d != ax {
			out = append(out, dim)
		}
	}
	return out
}

// foldedBase maps folded-coordinate ix back to the physical offset of the
// first element along the reduced axis.
func (a *Array) foldedBase(ix []int, ax int) int {
	base := a.offset
	for d, c := range ix {
		sd := d
		if d >= ax {
			sd = d + 1
		}
		base += c * a.strides[sd]
	}
	return base
}

// reduceAxis folds f along one axis into a fresh Float64 array shaped as
// the input without that axis; reducing away the only axis yields [1].
func (a *Array) reduceAxis(op string, axis int, initial float64, f func(acc, v float64) float64) (*Array, error) {
	ax, err := a.resolveAxis(op, axis)
	if err != nil {
		return nil, err
	}
	folded := a.foldedShape(ax)
	outShape := folded
	if len(outShape) == 0 {
		outShape = Shape{1}
	}
	out, err := newDense(outShape, Float64)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	n := a.shape[ax]
	step := a.strides[ax]
	for flat, ix := range folded.Coords() {
		base := a.foldedBase(ix, ax)
		acc := initial
		for k := 0; k < n; k++ {
			acc = f(acc, a.loadAt(base+k*step))
		}
		out.storeAt(flat, acc)
	}
	return out, nil
}

// ReduceAxis folds f along one axis with the given initial accumulator.
// The axis may be negative; the result drops the axis (a 1-D input
// reduces to shape [1]) and always holds Float64 values. f must return
// finite values.
func (a *Array) ReduceAxis(axis int, initial float64, f func(acc, v float64) float64) (*Array, error) {
	return a.reduceAxis("reduce", axis, initial, f)
}

// fold accumulates f over every logical element.
func (a *Array) fold(initial float64, f func(acc, v float64) float64) float64 {
	acc := initial
	if a.isCanonical() && a.dtype == Float64 {
		for _, v := range a.buf.f64()[a.offset : a.offset+a.Size()] {
			acc = f(acc, v)
		}
		return acc
	}
	for _, ix := range a.shape.Coords() {
		acc = f(acc, a.loadAt(a.offset+offsetOf(ix, a.strides)))
	}
	return acc
}

// Sum returns the sum of all elements; an empty array sums to 0.
func (a *Array) Sum() (float64, error) {
	return a.fold(0, func(acc, v float64) float64 { return acc + v }), nil
}

// Mean returns the arithmetic mean of all elements.
func (a *Array) Mean() (float64, error) {
	n := a.Size()
	if n == 0 {
		return 0, fmt.Errorf("mean: array is empty: %w", ErrInvalidParameter)
	}
	s, _ := a.Sum()
	return s / float64(n), nil
}

// Min returns the smallest element.
func (a *Array) Min() (float64, error) {
	if a.Size() == 0 {
		return 0, fmt.Errorf("min: array is empty: %w", ErrInvalidParameter)
	}
	return a.fold(math.Inf(1), math.Min), nil
}

// Max returns the largest element.
func (a *Array) Max() (float64, error) {
	if a.Size() == 0 {
		return 0, fmt.Errorf("max: array is empty: %w", ErrInvalidParameter)
	}
	return a.fold(math.Inf(-1), math.Max), nil
}

// Var returns the variance of all elements with the given delta degrees
// of freedom: the mean of squared deviations over n - ddof. Computed in
// two passes, mean first. ddof must satisfy 0 <= ddof < n.
func (a *Array) Var(ddof int) (float64, error) {
	n := a.Size()
	if ddof < 0 || ddof >= n {
		return 0, fmt.Errorf("variance: ddof %d out of range for %d elements: %w",
			ddof, n, ErrInvalidParameter)
	}
	m, err := a.Mean()
	if err != nil {
		return 0, fmt.Errorf("variance: %w", err)
	}
	ss := a.fold(0, func(acc, v float64) float64 {
		d := v - m
		return acc + d*d
	})
	return ss / float64(n-ddof), nil
}

// Std returns the standard deviation, the square root of Var.
func (a *Array) Std(ddof int) (float64, error) {
	v, err := a.Var(ddof)
	if err != nil {
		return 0, fmt.Errorf("std: %w", err)
	}
	return math.Sqrt(v), nil
}

// ArgMax returns the logical flat index of the largest element, the first
// occurrence on ties.
func (a *Array) ArgMax() (int, error) {
	return a.argFlat("argmax", true)
}

// ArgMin returns the logical flat index of the smallest element.
func (a *Array) ArgMin() (int, error) {
	return a.argFlat("argmin", false)
}

func (a *Array) argFlat(op string, wantMax bool) (int, error) {
	if a.Size() == 0 {
		return 0, fmt.Errorf("%s: array is empty: %w", op, ErrInvalidParameter)
	}
	vals := a.Values()
	best := 0
	for i, v := range vals[1:] {
		if (wantMax && v > vals[best]) || (!wantMax && v < vals[best]) {
			best = i + 1
		}
	}
	return best, nil
}

// SumAxis sums along one axis.
func (a *Array) SumAxis(axis int) (*Array, error) {
	return a.reduceAxis("sum", axis, 0, func(acc, v float64) float64 { return acc + v })
}

// MeanAxis averages along one axis, which must have non-zero length.
func (a *Array) MeanAxis(axis int) (*Array, error) {
	ax, err := a.resolveAxis("mean", axis)
	if err != nil {
		return nil, err
	}
	n := a.shape[ax]
	if n == 0 {
		return nil, fmt.Errorf("mean: axis %d has length 0: %w", ax, ErrInvalidParameter)
	}
	sums, err := a.reduceAxis("mean", ax, 0, func(acc, v float64) float64 { return acc + v })
	if err != nil {
		return nil, err
	}
	zs := sums.buf.f64()
	for i := range zs {
		zs[i] /= float64(n)
	}
	return sums, nil
}

// MinAxis takes the minimum along one axis, which must have non-zero length.
func (a *Array) MinAxis(axis int) (*Array, error) {
	ax, err := a.resolveAxis("min", axis)
	if err != nil {
		return nil, err
	}
	if a.shape[ax] == 0 {
		return nil, fmt.Errorf("min: axis %d has length 0: %w", ax, ErrInvalidParameter)
	}
	return a.reduceAxis("min", ax, math.Inf(1), math.Min)
}

// MaxAxis takes the maximum along one axis, which must have non-zero length.
func (a *Array) MaxAxis(axis int) (*Array, error) {
	ax, err := a.resolveAxis("max", axis)
	if err != nil {
		return nil, err
	}
	if a.shape[ax] == 0 {
		return nil, fmt.Errorf("max: axis %d has length 0: %w", ax, ErrInvalidParameter)
	}
	return a.reduceAxis("max", ax, math.Inf(-1), math.Max)
}

// VarAxis computes the variance along one axis in two passes: per-slot
// means first, then squared deviations over n - ddof.
func (a *Array) VarAxis(axis, ddof int) (*Array, error) {
	ax, err := a.resolveAxis("variance", axis)
	if err != nil {
		return nil, err
	}
	n := a.shape[ax]
	if ddof < 0 || ddof >= n {
		return nil, fmt.Errorf("variance: ddof %d out of range for axis length %d: %w",
			ddof, n, ErrInvalidParameter)
	}
	means, err := a.MeanAxis(ax)
	if err != nil {
		return nil, fmt.Errorf("variance: %w", err)
	}

	folded := a.foldedShape(ax)
	outShape := folded
	if len(outShape) == 0 {
		outShape = Shape{1}
	}
	out, err := newDense(outShape, Float64)
	if err != nil {
		return nil, fmt.Errorf("variance: %w", err)
	}

	step := a.strides[ax]
	mv := means.buf.f64()
	for flat, ix := range folded.Coords() {
		base := a.foldedBase(ix, ax)
		m := mv[flat]
		ss := 0.0
		for k := 0; k < n; k++ {
			d := a.loadAt(base+k*step) - m
			ss += d * d
		}
		out.storeAt(flat, ss/float64(n-ddof))
	}
	return out, nil
}

// StdAxis computes the standard deviation along one axis.
func (a *Array) StdAxis(axis, ddof int) (*Array, error) {
	v, err := a.VarAxis(axis, ddof)
	if err != nil {
		return nil, fmt.Errorf("std: %w", err)
	}
	zs := v.buf.f64()
	for i := range zs {
		zs[i] = math.Sqrt(zs[i])
	}
	return v, nil
}

// ArgMaxAxis returns the index of the largest element along one axis as
// an Int32 array, the first occurrence on ties.
func (a *Array) ArgMaxAxis(axis int) (*Array, error) {
	return a.argAxis("argmax", axis, true)
}

// ArgMinAxis returns the index of the smallest element along one axis.
func (a *Array) ArgMinAxis(axis int) (*Array, error) {
	return a.argAxis("argmin", axis, false)
}

func (a *Array) argAxis(op string, axis int, wantMax bool) (*Array, error) {
	ax, err := a.resolveAxis(op, axis)
	if err != nil {
		return nil, err
	}
	n := a.shape[ax]
	if n == 0 {
		return nil, fmt.Errorf("%s: axis %d has length 0: %w", op, ax, ErrInvalidParameter)
	}

	folded := a.foldedShape(ax)
	outShape := folded
	if len(outShape) == 0 {
		outShape = Shape{1}
	}
	out, err := newDense(outShape, Int32)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	step := a.strides[ax]
	for flat, ix := range folded.Coords() {
		base := a.foldedBase(ix, ax)
		best := a.loadAt(base)
		bestK := 0
		for k := 1; k < n; k++ {
			v := a.loadAt(base + k*step)
			if (wantMax && v > best) || (!wantMax && v < best) {
				best, bestK = v, k
			}
		}
		out.storeAt(flat, float64(bestK))
	}
	return out, nil
}
