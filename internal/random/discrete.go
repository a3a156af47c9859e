package random

import (
	"fmt"
	"math"

	"github.com/axon-ml/axon/internal/ndarray"
)

// Intn returns an Int32 array of integers drawn uniformly from [lo, hi).
// The bounds must leave a non-empty range within the int32 domain.
func (s *Source) Intn(shape ndarray.Shape, lo, hi int) (*ndarray.Array, error) {
	if lo >= hi {
		return nil, fmt.Errorf("intn: bounds [%d, %d) are empty: %w", lo, hi, ndarray.ErrInvalidParameter)
	}
	if lo < math.MinInt32 || hi > math.MaxInt32 {
		return nil, fmt.Errorf("intn: bounds [%d, %d) exceed int32: %w", lo, hi, ndarray.ErrInvalidParameter)
	}
	arr, err := ndarray.Zeros(shape, ndarray.WithDType(ndarray.Int32))
	if err != nil {
		return nil, fmt.Errorf("intn: %w", err)
	}

	data := arr.AsInt32()
	width := int64(hi) - int64(lo)
	for i := range data {
		data[i] = int32(int64(lo) + s.rng.Int63n(width))
	}
	return arr, nil
}

// Bernoulli returns a Uint8 array of 0/1 draws with success probability
// p in [0, 1].
func (s *Source) Bernoulli(shape ndarray.Shape, p float64) (*ndarray.Array, error) {
	if math.IsNaN(p) || p < 0 || p > 1 {
		return nil, fmt.Errorf("bernoulli: p %v outside [0, 1]: %w", p, ndarray.ErrInvalidParameter)
	}
	arr, err := ndarray.Zeros(shape, ndarray.WithDType(ndarray.Uint8))
	if err != nil {
		return nil, fmt.Errorf("bernoulli: %w", err)
	}

	data := arr.AsUint8()
	for i := range data {
		if s.rng.Float64() < p {
			data[i] = 1
		}
	}
	return arr, nil
}

// Permutation returns an Int32 array holding a random ordering of the
// integers 0 through n-1.
func (s *Source) Permutation(n int) (*ndarray.Array, error) {
	if n < 0 {
		return nil, fmt.Errorf("permutation: n %d is negative: %w", n, ndarray.ErrInvalidParameter)
	}
	if n > math.MaxInt32 {
		return nil, fmt.Errorf("permutation: n %d exceeds int32: %w", n, ndarray.ErrInvalidParameter)
	}
	arr, err := ndarray.Zeros(ndarray.Shape{n}, ndarray.WithDType(ndarray.Int32))
	if err != nil {
		return nil, fmt.Errorf("permutation: %w", err)
	}

	data := arr.AsInt32()
	for i, v := range s.rng.Perm(n) {
		data[i] = int32(v)
	}
	return arr, nil
}

// Shuffle permutes the elements of a 1-D array in place with a
// Fisher-Yates walk. Element moves go through the engine's Set path, so
// a read-only array is rejected before anything is disturbed, and
// shuffling a view reorders exactly the elements the view covers.
func (s *Source) Shuffle(a *ndarray.Array) error {
	if a == nil {
		return fmt.Errorf("shuffle: nil array: %w", ndarray.ErrInvalidParameter)
	}
	if a.NDim() != 1 {
		return fmt.Errorf("shuffle: got %d dimensions, want 1: %w", a.NDim(), ndarray.ErrDimensionMismatch)
	}
	for i := a.Size() - 1; i > 0; i-- {
		j := s.rng.Intn(i + 1)
		vi, err := a.At(i)
		if err != nil {
			return fmt.Errorf("shuffle: %w", err)
		}
		vj, err := a.At(j)
		if err != nil {
			return fmt.Errorf("shuffle: %w", err)
		}
		if err := a.Set(vj, i); err != nil {
			return fmt.Errorf("shuffle: %w", err)
		}
		if err := a.Set(vi, j); err != nil {
			return fmt.Errorf("shuffle: %w", err)
		}
	}
	return nil
}
