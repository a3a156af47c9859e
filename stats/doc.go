// Copyright 2025 The Axon Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package stats provides descriptive statistics over float64 sequences
// for the Axon numerical computing library.
//
// # Overview
//
// The package covers the usual single-sequence aggregates (Sum, Mean,
// Min, Max, Variance, Std, Median, Percentile), paired-sequence measures
// (Covariance, Correlation), z-score normalization, and a one-call
// Describe summary. Array data flows in through Values:
//
//	xs := arr.Values()
//	summary, _ := stats.Describe(xs)
//
// Variance and Std take an explicit delta degrees of freedom: ddof 0 for
// population statistics, ddof 1 for sample statistics.
//
// # Error Handling
//
// Errors wrap three sentinels matched with errors.Is: ErrNoData for
// inputs with too few observations, ErrLengthMismatch for unpaired
// sequences, and ErrBadParam for out-of-range parameters. Elements are
// not screened for NaN or infinity; sanitize first if that matters.
package stats
