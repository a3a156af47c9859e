package random

import (
	"fmt"
	"math"

	"github.com/axon-ml/axon/internal/ndarray"
)

// Normal returns a Float64 array of draws from N(mean, std²), generated
// in pairs with the Box-Muller transform. std must be positive.
func (s *Source) Normal(shape ndarray.Shape, mean, std float64) (*ndarray.Array, error) {
	if err := requireFinite("normal", "mean", mean); err != nil {
		return nil, err
	}
	if err := requireFinite("normal", "std", std); err != nil {
		return nil, err
	}
	if std <= 0 {
		return nil, fmt.Errorf("normal: std %v must be positive: %w", std, ndarray.ErrInvalidParameter)
	}
	// The Box-Muller radius is at most sqrt(-2·ln 2⁻⁵³) ≈ 8.6, so every
	// draw lands within mean ± 9·std; reject parameters that push that
	// envelope past the float64 range.
	if math.IsInf(mean+9*std, 0) || math.IsInf(mean-9*std, 0) {
		return nil, fmt.Errorf("normal: mean %v and std %v overflow float64 draws: %w",
			mean, std, ndarray.ErrInvalidParameter)
	}
	arr, err := ndarray.Zeros(shape)
	if err != nil {
		return nil, fmt.Errorf("normal: %w", err)
	}

	data := arr.AsFloat64()
	for i := 0; i < len(data); i += 2 {
		// 1-Float64 keeps u1 in (0, 1], so the log stays finite.
		u1 := 1 - s.rng.Float64()
		u2 := s.rng.Float64()
		r := math.Sqrt(-2 * math.Log(u1))
		data[i] = mean + std*r*math.Cos(2*math.Pi*u2)
		if i+1 < len(data) {
			data[i+1] = mean + std*r*math.Sin(2*math.Pi*u2)
		}
	}
	return arr, nil
}

// Uniform returns a Float64 array of draws from [lo, hi). The bounds
// must be finite with lo < hi.
func (s *Source) Uniform(shape ndarray.Shape, lo, hi float64) (*ndarray.Array, error) {
	if err := requireFinite("uniform", "lo", lo); err != nil {
		return nil, err
	}
	if err := requireFinite("uniform", "hi", hi); err != nil {
		return nil, err
	}
	if lo >= hi {
		return nil, fmt.Errorf("uniform: bounds [%v, %v) are empty: %w", lo, hi, ndarray.ErrInvalidParameter)
	}
	width := hi - lo
	if math.IsInf(width, 0) {
		return nil, fmt.Errorf("uniform: range [%v, %v) overflows float64: %w",
			lo, hi, ndarray.ErrInvalidParameter)
	}
	arr, err := ndarray.Zeros(shape)
	if err != nil {
		return nil, fmt.Errorf("uniform: %w", err)
	}

	data := arr.AsFloat64()
	for i := range data {
		data[i] = lo + width*s.rng.Float64()
	}
	return arr, nil
}
