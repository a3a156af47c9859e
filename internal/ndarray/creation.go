package ndarray

import (
	"fmt"
	"math"
)

// NewArray creates a zero-filled array of the given shape.
func NewArray(shape Shape, opts ...Option) (*Array, error) {
	cfg := resolveOptions(opts)
	a, err := newDense(shape, cfg.dtype)
	if err != nil {
		return nil, fmt.Errorf("new array: %w", err)
	}
	a.readonly = cfg.readonly
	return a, nil
}

// Zeros creates an array filled with zeros.
func Zeros(shape Shape, opts ...Option) (*Array, error) {
	a, err := NewArray(shape, opts...)
	if err != nil {
		return nil, fmt.Errorf("zeros: %w", err)
	}
	return a, nil
}

// Ones creates an array filled with ones.
func Ones(shape Shape, opts ...Option) (*Array, error) {
	a, err := Full(shape, 1, opts...)
	if err != nil {
		return nil, fmt.Errorf("ones: %w", err)
	}
	return a, nil
}

// Full creates an array with every element set to v.
// Non-finite fill values are rejected before any allocation.
func Full(shape Shape, v float64, opts ...Option) (*Array, error) {
	cfg := resolveOptions(opts)
	if err := checkFinite("full", v); err != nil {
		return nil, err
	}
	a, err := newDense(shape, cfg.dtype)
	if err != nil {
		return nil, fmt.Errorf("full: %w", err)
	}
	if v != 0 {
		for i := 0; i < a.Size(); i++ {
			a.storeAt(i, v)
		}
	}
	a.readonly = cfg.readonly
	return a, nil
}

// Eye creates an n-by-n identity array.
func Eye(n int, opts ...Option) (*Array, error) {
	cfg := resolveOptions(opts)
	if n < 0 {
		return nil, fmt.Errorf("eye: size is negative: %d: %w", n, ErrInvalidParameter)
	}
	a, err := newDense(Shape{n, n}, cfg.dtype)
	if err != nil {
		return nil, fmt.Errorf("eye: %w", err)
	}
	for i := 0; i < n; i++ {
		a.storeAt(i*n+i, 1)
	}
	a.readonly = cfg.readonly
	return a, nil
}

// Arange creates a 1-D array of values from start (inclusive) towards stop
// (exclusive), advancing by step. The length is max(0, ceil((stop-start)/step)).
func Arange(start, stop, step float64, opts ...Option) (*Array, error) {
	cfg := resolveOptions(opts)
	for _, v := range [...]float64{start, stop, step} {
		if err := checkFinite("arange", v); err != nil {
			return nil, err
		}
	}
	if step == 0 {
		return nil, fmt.Errorf("arange: step must be non-zero: %w", ErrInvalidParameter)
	}
	n := int(math.Ceil((stop - start) / step))
	if n < 0 {
		n = 0
	}
	a, err := newDense(Shape{n}, cfg.dtype)
	if err != nil {
		return nil, fmt.Errorf("arange: %w", err)
	}
	for i := 0; i < n; i++ {
		a.storeAt(i, start+float64(i)*step)
	}
	a.readonly = cfg.readonly
	return a, nil
}

// Linspace creates a 1-D array of num evenly spaced values from start to
// stop, inclusive of both endpoints. num must be positive; num == 1 yields
// just [start].
func Linspace(start, stop float64, num int, opts ...Option) (*Array, error) {
	cfg := resolveOptions(opts)
	for _, v := range [...]float64{start, stop} {
		if err := checkFinite("linspace", v); err != nil {
			return nil, err
		}
	}
	if num <= 0 {
		return nil, fmt.Errorf("linspace: count must be positive, got %d: %w", num, ErrInvalidParameter)
	}
	a, err := newDense(Shape{num}, cfg.dtype)
	if err != nil {
		return nil, fmt.Errorf("linspace: %w", err)
	}
	if num == 1 {
		a.storeAt(0, start)
		a.readonly = cfg.readonly
		return a, nil
	}
	delta := (stop - start) / float64(num-1)
	for i := 0; i < num-1; i++ {
		a.storeAt(i, start+float64(i)*delta)
	}
	// the far endpoint is exact, not accumulated
	a.storeAt(num-1, stop)
	a.readonly = cfg.readonly
	return a, nil
}

// FromSlice creates an array by copying data into fresh storage. The data
// length must fill the shape exactly. The dtype is inferred from T unless
// WithDType overrides it; float inputs must be finite.
func FromSlice[T Element](data []T, shape Shape, opts ...Option) (*Array, error) {
	cfg := resolveOptions(opts)
	dt := cfg.dtype
	if !cfg.dtypeSet {
		var dummy T
		inferred, err := inferDataType(dummy)
		if err != nil {
			return nil, fmt.Errorf("from slice: %w", err)
		}
		dt = inferred
	}
	if err := shape.Validate(); err != nil {
		return nil, fmt.Errorf("from slice: %w", err)
	}
	if len(data) != shape.NumElements() {
		return nil, fmt.Errorf("from slice: data holds %d elements but shape %v needs %d: %w",
			len(data), shape, shape.NumElements(), ErrDimensionMismatch)
	}
	for i, v := range data {
		f := elementToFloat64(v)
		if math.IsNaN(f) || math.IsInf(f, 0) {
			return nil, fmt.Errorf("from slice: non-finite value %v at index %d: %w",
				f, i, ErrInvalidParameter)
		}
	}

	a, err := newDense(shape, dt)
	if err != nil {
		return nil, fmt.Errorf("from slice: %w", err)
	}
	for i, v := range data {
		a.storeAt(i, elementToFloat64(v))
	}
	a.readonly = cfg.readonly
	return a, nil
}
