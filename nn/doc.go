// Copyright 2025 The Axon Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package nn provides neural-network building blocks for the Axon
// numerical computing library.
//
// # Overview
//
// This package contains:
//   - Activations: ReLU, LeakyReLU, Sigmoid, Tanh, Softmax
//   - Loss functions: MSE, MAE, BinaryCrossEntropy
//   - Optimizers: SGD with optional momentum, Adam
//
// There is no automatic differentiation. Activations map arrays to
// fresh arrays, losses reduce a prediction/target pair to one float64,
// and the optimizers apply caller-computed gradients to parameters in
// place.
//
// # Basic Usage
//
//	hidden, _ := nn.ReLU(pre)
//	probs, _ := nn.Softmax(logits, -1)
//	loss, _ := nn.BinaryCrossEntropy(probs, labels)
//
// # Training Loop
//
// Optimizers keep their state per parameter array, so one optimizer
// drives a whole model:
//
//	opt, _ := nn.NewSGD(0.01, 0.9)
//	for epoch := 0; epoch < epochs; epoch++ {
//	    grad := computeGradient(w)
//	    if err := opt.Step(w, grad); err != nil {
//	        return err
//	    }
//	}
//
// # Error Handling
//
// Everything reports failures through the ndarray sentinels, matched
// with errors.Is: ErrInvalidParameter for bad hyperparameters or
// out-of-range probabilities, ErrDimensionMismatch for shape
// disagreements (losses and optimizers never broadcast), and
// ErrInvalidState when an optimizer is pointed at a read-only
// parameter.
package nn
