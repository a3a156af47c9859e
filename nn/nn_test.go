// Copyright 2025 The Axon Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package nn_test

import (
	"errors"
	"math"
	"testing"

	"github.com/axon-ml/axon/ndarray"
	"github.com/axon-ml/axon/nn"
)

// TestPublicAPI exercises activations, losses and the optimizer
// together on a tiny logistic-regression-shaped problem.
func TestPublicAPI(t *testing.T) {
	logits, err := ndarray.FromSlice([]float64{-2, 0, 2}, ndarray.Shape{3})
	if err != nil {
		t.Fatalf("FromSlice failed: %v", err)
	}

	// Sigmoid squashes into (0, 1).
	probs, err := nn.Sigmoid(logits)
	if err != nil {
		t.Fatalf("Sigmoid failed: %v", err)
	}
	for i, p := range probs.Values() {
		if p <= 0 || p >= 1 {
			t.Errorf("probability %d = %v outside (0, 1)", i, p)
		}
	}

	// Softmax over the same logits sums to 1.
	sm, err := nn.Softmax(logits, 0)
	if err != nil {
		t.Fatalf("Softmax failed: %v", err)
	}
	var total float64
	for _, v := range sm.Values() {
		total += v
	}
	if math.Abs(total-1) > 1e-12 {
		t.Errorf("softmax sum = %v, want 1", total)
	}

	// A loss against hard labels is positive and finite.
	labels, err := ndarray.FromSlice([]float64{0, 0, 1}, ndarray.Shape{3})
	if err != nil {
		t.Fatalf("FromSlice failed: %v", err)
	}
	loss, err := nn.BinaryCrossEntropy(probs, labels)
	if err != nil {
		t.Fatalf("BinaryCrossEntropy failed: %v", err)
	}
	if loss <= 0 || math.IsInf(loss, 0) || math.IsNaN(loss) {
		t.Errorf("loss = %v, want positive and finite", loss)
	}

	// One SGD step moves the parameter against the gradient.
	opt, err := nn.NewSGD(0.5, 0)
	if err != nil {
		t.Fatalf("NewSGD failed: %v", err)
	}
	w, err := ndarray.FromSlice([]float64{1, 1, 1}, ndarray.Shape{3})
	if err != nil {
		t.Fatalf("FromSlice failed: %v", err)
	}
	g, err := ndarray.FromSlice([]float64{1, 0, -1}, ndarray.Shape{3})
	if err != nil {
		t.Fatalf("FromSlice failed: %v", err)
	}
	if err := opt.Step(w, g); err != nil {
		t.Fatalf("Step failed: %v", err)
	}
	want := []float64{0.5, 1, 1.5}
	for i, v := range w.Values() {
		if v != want[i] {
			t.Errorf("weight %d = %v, want %v", i, v, want[i])
		}
	}

	// Adam moves each parameter against its gradient too.
	adam, err := nn.NewAdam(0.1)
	if err != nil {
		t.Fatalf("NewAdam failed: %v", err)
	}
	if err := adam.Step(w, g); err != nil {
		t.Fatalf("Step failed: %v", err)
	}
	after := w.Values()
	if after[0] >= want[0] || after[1] != want[1] || after[2] <= want[2] {
		t.Errorf("adam step moved weights to %v from %v", after, want)
	}
}

// TestErrorSentinels verifies errors.Is matching through the facade.
func TestErrorSentinels(t *testing.T) {
	a, err := ndarray.FromSlice([]float64{1, 2}, ndarray.Shape{2})
	if err != nil {
		t.Fatalf("FromSlice failed: %v", err)
	}
	b, err := ndarray.FromSlice([]float64{1, 2, 3}, ndarray.Shape{3})
	if err != nil {
		t.Fatalf("FromSlice failed: %v", err)
	}

	if _, err := nn.MSE(a, b); !errors.Is(err, ndarray.ErrDimensionMismatch) {
		t.Errorf("MSE error = %v, want ErrDimensionMismatch", err)
	}
	if _, err := nn.Softmax(a, 5); !errors.Is(err, ndarray.ErrInvalidParameter) {
		t.Errorf("Softmax error = %v, want ErrInvalidParameter", err)
	}
	if _, err := nn.NewSGD(-1, 0); !errors.Is(err, ndarray.ErrInvalidParameter) {
		t.Errorf("NewSGD error = %v, want ErrInvalidParameter", err)
	}
	if _, err := nn.NewAdamWith(0.1, 0.9, 1.5, 1e-8); !errors.Is(err, ndarray.ErrInvalidParameter) {
		t.Errorf("NewAdamWith error = %v, want ErrInvalidParameter", err)
	}
}
