// Package random provides seedable random array generators: normal,
// uniform, integer and Bernoulli draws, plus permutations and in-place
// shuffling. Generators are deterministic for a fixed seed. A Source is
// not safe for concurrent use; create one per goroutine.
package random

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/axon-ml/axon/internal/ndarray"
)

// Source is a seedable generator producing arrays. The zero value is
// not usable; construct with New.
type Source struct {
	rng *rand.Rand
}

// New creates a Source seeded with the given value. Equal seeds yield
// equal draw sequences.
func New(seed int64) *Source {
	return &Source{rng: rand.New(rand.NewSource(seed))} //nolint:gosec // G404: statistical draws want reproducibility, not crypto
}

// Default is the shared package-level Source, seeded with 1 so that
// programs using the package-level functions are reproducible run to
// run.
var Default = New(1)

// requireFinite rejects NaN and infinite distribution parameters.
func requireFinite(op, name string, v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return fmt.Errorf("%s: %s %v is not finite: %w", op, name, v, ndarray.ErrInvalidParameter)
	}
	return nil
}

// Package-level convenience functions drawing from Default.

// Normal draws from the normal distribution with the given mean and
// standard deviation.
func Normal(shape ndarray.Shape, mean, std float64) (*ndarray.Array, error) {
	return Default.Normal(shape, mean, std)
}

// Uniform draws uniformly from [lo, hi).
func Uniform(shape ndarray.Shape, lo, hi float64) (*ndarray.Array, error) {
	return Default.Uniform(shape, lo, hi)
}

// Intn draws integers uniformly from [lo, hi).
func Intn(shape ndarray.Shape, lo, hi int) (*ndarray.Array, error) {
	return Default.Intn(shape, lo, hi)
}

// Bernoulli draws 0/1 values with success probability p.
func Bernoulli(shape ndarray.Shape, p float64) (*ndarray.Array, error) {
	return Default.Bernoulli(shape, p)
}

// Permutation returns a random ordering of 0..n-1.
func Permutation(n int) (*ndarray.Array, error) {
	return Default.Permutation(n)
}

// Shuffle permutes a 1-D array in place.
func Shuffle(a *ndarray.Array) error {
	return Default.Shuffle(a)
}
