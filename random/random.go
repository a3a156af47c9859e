// Copyright 2025 The Axon Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package random

import (
	"github.com/axon-ml/axon/internal/random"
	"github.com/axon-ml/axon/ndarray"
)

// Source is a seeded stream of pseudo-random draws. It is deterministic
// for a fixed seed and not safe for concurrent use.
type Source = random.Source

// Default is the shared Source behind the package-level functions,
// seeded with 1 so unseeded programs are still reproducible run to run.
var Default = random.Default

// New returns a Source seeded with seed.
func New(seed int64) *Source {
	return random.New(seed)
}

// Normal draws from the normal distribution with the given mean and
// standard deviation, using the Default source.
//
// Example:
//
//	noise, _ := random.Normal(ndarray.Shape{3, 3}, 0, 1)
func Normal(shape ndarray.Shape, mean, std float64) (*ndarray.Array, error) {
	return random.Normal(shape, mean, std)
}

// Uniform draws float64 values from [lo, hi) using the Default source.
func Uniform(shape ndarray.Shape, lo, hi float64) (*ndarray.Array, error) {
	return random.Uniform(shape, lo, hi)
}

// Intn draws Int32 values from [lo, hi) using the Default source.
func Intn(shape ndarray.Shape, lo, hi int) (*ndarray.Array, error) {
	return random.Intn(shape, lo, hi)
}

// Bernoulli draws Uint8 values that are 1 with probability p and 0
// otherwise, using the Default source.
func Bernoulli(shape ndarray.Shape, p float64) (*ndarray.Array, error) {
	return random.Bernoulli(shape, p)
}

// Permutation returns a 1-D Int32 array holding a random ordering of
// the integers 0..n-1, using the Default source.
func Permutation(n int) (*ndarray.Array, error) {
	return random.Permutation(n)
}

// Shuffle permutes the elements of a 1-D array in place using the
// Default source. Views shuffle exactly the elements they cover.
func Shuffle(a *ndarray.Array) error {
	return random.Shuffle(a)
}
