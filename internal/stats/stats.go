// Package stats provides descriptive statistics over float64 sequences.
// Inputs are taken as they are: the package validates lengths and
// parameters eagerly but does not screen elements for NaN or infinity,
// so results follow IEEE arithmetic when such values flow in.
package stats

import (
	"fmt"
	"math"
)

// Sum returns the total of xs. The sum of an empty sequence is zero.
func Sum(xs []float64) float64 {
	var s float64
	for _, x := range xs {
		s += x
	}
	return s
}

// Mean returns the arithmetic mean of xs.
func Mean(xs []float64) (float64, error) {
	if len(xs) == 0 {
		return 0, fmt.Errorf("mean: %w", ErrNoData)
	}
	return Sum(xs) / float64(len(xs)), nil
}

// Min returns the smallest value in xs.
func Min(xs []float64) (float64, error) {
	if len(xs) == 0 {
		return 0, fmt.Errorf("min: %w", ErrNoData)
	}
	m := xs[0]
	for _, x := range xs[1:] {
		if x < m {
			m = x
		}
	}
	return m, nil
}

// Max returns the largest value in xs.
func Max(xs []float64) (float64, error) {
	if len(xs) == 0 {
		return 0, fmt.Errorf("max: %w", ErrNoData)
	}
	m := xs[0]
	for _, x := range xs[1:] {
		if x > m {
			m = x
		}
	}
	return m, nil
}

// Variance returns the variance of xs with the given delta degrees of
// freedom: ddof 0 is the population variance, ddof 1 the sample
// variance. The mean is computed in a first pass and squared deviations
// accumulated in a second, which keeps the result stable for large
// offsets.
func Variance(xs []float64, ddof int) (float64, error) {
	if len(xs) == 0 {
		return 0, fmt.Errorf("variance: %w", ErrNoData)
	}
	if ddof < 0 {
		return 0, fmt.Errorf("variance: ddof %d is negative: %w", ddof, ErrBadParam)
	}
	if ddof >= len(xs) {
		return 0, fmt.Errorf("variance: ddof %d with %d observations: %w",
			ddof, len(xs), ErrBadParam)
	}
	m := Sum(xs) / float64(len(xs))
	var ss float64
	for _, x := range xs {
		d := x - m
		ss += d * d
	}
	return ss / float64(len(xs)-ddof), nil
}

// Std returns the standard deviation of xs with the given delta degrees
// of freedom.
func Std(xs []float64, ddof int) (float64, error) {
	v, err := Variance(xs, ddof)
	if err != nil {
		return 0, fmt.Errorf("std: %w", err)
	}
	return math.Sqrt(v), nil
}

// Normalize returns the z-scores of xs: each value shifted by the mean
// and divided by the population standard deviation. A constant sequence
// has no spread to normalize by and is rejected.
func Normalize(xs []float64) ([]float64, error) {
	if len(xs) == 0 {
		return nil, fmt.Errorf("normalize: %w", ErrNoData)
	}
	m := Sum(xs) / float64(len(xs))
	var ss float64
	for _, x := range xs {
		d := x - m
		ss += d * d
	}
	sd := math.Sqrt(ss / float64(len(xs)))
	if sd == 0 {
		return nil, fmt.Errorf("normalize: zero variance: %w", ErrBadParam)
	}
	out := make([]float64, len(xs))
	for i, x := range xs {
		out[i] = (x - m) / sd
	}
	return out, nil
}

// Covariance returns the sample covariance of the paired observations
// xs and ys.
func Covariance(xs, ys []float64) (float64, error) {
	if len(xs) != len(ys) {
		return 0, fmt.Errorf("covariance: %d and %d observations: %w",
			len(xs), len(ys), ErrLengthMismatch)
	}
	if len(xs) < 2 {
		return 0, fmt.Errorf("covariance: fewer than two observations: %w", ErrNoData)
	}
	n := float64(len(xs))
	mx, my := Sum(xs)/n, Sum(ys)/n
	var s float64
	for i := range xs {
		s += (xs[i] - mx) * (ys[i] - my)
	}
	return s / (n - 1), nil
}

// Correlation returns the Pearson correlation coefficient of the paired
// observations xs and ys. Either operand having zero variance leaves
// the coefficient undefined and is rejected.
func Correlation(xs, ys []float64) (float64, error) {
	if len(xs) != len(ys) {
		return 0, fmt.Errorf("correlation: %d and %d observations: %w",
			len(xs), len(ys), ErrLengthMismatch)
	}
	if len(xs) < 2 {
		return 0, fmt.Errorf("correlation: fewer than two observations: %w", ErrNoData)
	}
	n := float64(len(xs))
	mx, my := Sum(xs)/n, Sum(ys)/n
	var sxx, syy, sxy float64
	for i := range xs {
		dx, dy := xs[i]-mx, ys[i]-my
		sxx += dx * dx
		syy += dy * dy
		sxy += dx * dy
	}
	if sxx == 0 || syy == 0 {
		return 0, fmt.Errorf("correlation: zero variance operand: %w", ErrBadParam)
	}
	return sxy / math.Sqrt(sxx*syy), nil
}
