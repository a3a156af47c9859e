// Copyright 2025 The Axon Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package random fills arrays with pseudo-random draws for the Axon
// numerical computing library.
//
// # Overview
//
// A Source owns a deterministic pseudo-random stream. Sources built with
// the same seed reproduce the same arrays draw for draw, which is what
// experiments and tests want; none of the generators here are suitable
// for cryptographic use. The package-level functions draw from Default,
// a shared Source seeded with 1.
//
//	src := random.New(42)
//	weights, _ := src.Normal(ndarray.Shape{64, 64}, 0, 0.1)
//
// # Distributions
//
// Normal draws from a Gaussian with the given mean and standard
// deviation. Uniform draws float64 values from the half-open interval
// [lo, hi). Intn draws Int32 values from [lo, hi), and Bernoulli draws
// Uint8 values that are 1 with probability p. Permutation returns a
// random ordering of 0..n-1, and Shuffle permutes a 1-D array in place.
//
// # Error Handling
//
// Parameter errors wrap the ndarray sentinels: ErrInvalidParameter for
// bad distribution parameters or shapes, ErrDimensionMismatch when
// Shuffle is handed anything but a 1-D array, and ErrInvalidState when
// Shuffle is handed a read-only array.
//
// # Concurrency
//
// A Source is not safe for concurrent use. Give each goroutine its own
// Source rather than sharing one.
package random
