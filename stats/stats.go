// Copyright 2025 The Axon Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package stats

import (
	"github.com/axon-ml/axon/internal/stats"
)

// Summary holds the descriptive statistics computed by Describe.
type Summary = stats.Summary

// Sentinel errors; match with errors.Is.
var (
	ErrNoData         = stats.ErrNoData
	ErrLengthMismatch = stats.ErrLengthMismatch
	ErrBadParam       = stats.ErrBadParam
)

// Sum returns the total of xs. The sum of an empty sequence is zero.
func Sum(xs []float64) float64 {
	return stats.Sum(xs)
}

// Mean returns the arithmetic mean of xs.
func Mean(xs []float64) (float64, error) {
	return stats.Mean(xs)
}

// Min returns the smallest value in xs.
func Min(xs []float64) (float64, error) {
	return stats.Min(xs)
}

// Max returns the largest value in xs.
func Max(xs []float64) (float64, error) {
	return stats.Max(xs)
}

// Variance returns the variance of xs: ddof 0 for the population
// convention, ddof 1 for the sample convention.
func Variance(xs []float64, ddof int) (float64, error) {
	return stats.Variance(xs, ddof)
}

// Std returns the standard deviation of xs with the given delta degrees
// of freedom.
func Std(xs []float64, ddof int) (float64, error) {
	return stats.Std(xs, ddof)
}

// Median returns the 50th percentile of xs.
func Median(xs []float64) (float64, error) {
	return stats.Median(xs)
}

// Percentile returns the p-th percentile of xs for 0 <= p <= 100, using
// linear interpolation between the two nearest order statistics.
//
// Example:
//
//	q3, _ := stats.Percentile(xs, 75)
func Percentile(xs []float64, p float64) (float64, error) {
	return stats.Percentile(xs, p)
}

// Normalize returns the z-scores of xs.
func Normalize(xs []float64) ([]float64, error) {
	return stats.Normalize(xs)
}

// Covariance returns the sample covariance of the paired observations
// xs and ys.
func Covariance(xs, ys []float64) (float64, error) {
	return stats.Covariance(xs, ys)
}

// Correlation returns the Pearson correlation coefficient of the paired
// observations xs and ys.
func Correlation(xs, ys []float64) (float64, error) {
	return stats.Correlation(xs, ys)
}

// Describe computes count, mean, sample deviation, extrema and
// quartiles in one call.
//
// Example:
//
//	s, _ := stats.Describe([]float64{2, 4, 4, 4, 5, 5, 7, 9})
//	fmt.Println(s.Mean, s.Std)  // 5 2.138089935299395
func Describe(xs []float64) (Summary, error) {
	return stats.Describe(xs)
}
