package stats

import (
	"fmt"
	"math"
	"slices"
)

// Percentile returns the p-th percentile of xs for 0 <= p <= 100, using
// linear interpolation between the two nearest order statistics.
func Percentile(xs []float64, p float64) (float64, error) {
	if len(xs) == 0 {
		return 0, fmt.Errorf("percentile: %w", ErrNoData)
	}
	if math.IsNaN(p) || p < 0 || p > 100 {
		return 0, fmt.Errorf("percentile: p %v outside [0, 100]: %w", p, ErrBadParam)
	}
	sorted := slices.Clone(xs)
	slices.Sort(sorted)
	return quantileSorted(sorted, p), nil
}

// Median returns the 50th percentile of xs.
func Median(xs []float64) (float64, error) {
	v, err := Percentile(xs, 50)
	if err != nil {
		return 0, fmt.Errorf("median: %w", err)
	}
	return v, nil
}

// quantileSorted interpolates the p-th percentile of an ascending
// non-empty sequence.
func quantileSorted(sorted []float64, p float64) float64 {
	n := len(sorted)
	if n == 1 {
		return sorted[0]
	}
	rank := p / 100 * float64(n-1)
	lo := int(rank)
	if lo >= n-1 {
		return sorted[n-1]
	}
	frac := rank - float64(lo)
	return sorted[lo] + frac*(sorted[lo+1]-sorted[lo])
}
