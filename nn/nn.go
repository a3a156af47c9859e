// Copyright 2025 The Axon Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package nn

import (
	"github.com/axon-ml/axon/internal/nn"
	"github.com/axon-ml/axon/ndarray"
)

// SGD is a stochastic gradient-descent optimizer with optional
// momentum. Velocity state accumulates per parameter array.
//
// Example:
//
//	opt, _ := nn.NewSGD(0.01, 0.9)
//	_ = opt.Step(weights, grad)
type SGD = nn.SGD

// NewSGD creates an optimizer with the given learning rate and momentum
// factor. The learning rate must be positive and finite; momentum must
// lie in [0, 1), with 0 disabling it.
func NewSGD(lr, momentum float64) (*SGD, error) {
	return nn.NewSGD(lr, momentum)
}

// Adam is an adaptive moment-estimation optimizer. Moment state and the
// bias-correction timestep accumulate per parameter array.
type Adam = nn.Adam

// NewAdam creates an Adam optimizer with the canonical decay rates
// (beta1 0.9, beta2 0.999, eps 1e-8).
func NewAdam(lr float64) (*Adam, error) {
	return nn.NewAdam(lr)
}

// NewAdamWith creates an Adam optimizer with explicit decay rates. Both
// betas must lie in [0, 1) and eps must be positive and finite.
func NewAdamWith(lr, beta1, beta2, eps float64) (*Adam, error) {
	return nn.NewAdamWith(lr, beta1, beta2, eps)
}

// Activations

// ReLU applies the rectified linear unit f(x) = max(0, x) element-wise
// into a fresh array.
func ReLU(a *ndarray.Array) (*ndarray.Array, error) {
	return nn.ReLU(a)
}

// LeakyReLU applies f(x) = x for x >= 0 and alpha·x otherwise.
func LeakyReLU(a *ndarray.Array, alpha float64) (*ndarray.Array, error) {
	return nn.LeakyReLU(a, alpha)
}

// Sigmoid applies the logistic function σ(x) = 1 / (1 + exp(-x))
// element-wise. Outputs lie in (0, 1).
func Sigmoid(a *ndarray.Array) (*ndarray.Array, error) {
	return nn.Sigmoid(a)
}

// Tanh applies the hyperbolic tangent element-wise.
func Tanh(a *ndarray.Array) (*ndarray.Array, error) {
	return nn.Tanh(a)
}

// Softmax normalizes along one axis so each slice sums to 1. The axis
// may be negative. Inputs are shifted by their maximum first, so huge
// logits normalize without overflow.
//
// Example:
//
//	probs, _ := nn.Softmax(logits, -1)
func Softmax(a *ndarray.Array, axis int) (*ndarray.Array, error) {
	return nn.Softmax(a, axis)
}

// Losses

// MSE returns the mean squared error between predictions and targets.
// The shapes must match exactly.
func MSE(pred, target *ndarray.Array) (float64, error) {
	return nn.MSE(pred, target)
}

// MAE returns the mean absolute error between predictions and targets.
// The shapes must match exactly.
func MAE(pred, target *ndarray.Array) (float64, error) {
	return nn.MAE(pred, target)
}

// BinaryCrossEntropy returns the clamped log loss over a pair of
// probability arrays. Predictions and targets must lie in [0, 1];
// targets may be soft labels.
func BinaryCrossEntropy(pred, target *ndarray.Array) (float64, error) {
	return nn.BinaryCrossEntropy(pred, target)
}
