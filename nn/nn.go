// Copyright 2026 Losslab Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package nn

import (
	"github.com/losslab-ml/losslab/internal/nn"
)

// Module interface defines the common interface for trainable models.
type Module = nn.Module

// Grads maps parameter names to gradient values for one backward pass.
type Grads = nn.Grads

// Parameter represents a trainable scalar parameter.
type Parameter = nn.Parameter

// NewParameter creates a new parameter with the given name and value.
//
// Example:
//
//	w1 := nn.NewParameter("w1", 1.2)
func NewParameter(name string, value float64) *Parameter {
	return nn.NewParameter(name, value)
}

// Model

// Perceptron is the minimal ReLU network f(x) = w1 * relu(w2 * x).
type Perceptron = nn.Perceptron

// NewPerceptron creates a perceptron with the given initial weights.
//
// Example:
//
//	model := nn.NewPerceptron(1.2, -2.3)
//	pred := model.Predict(0.5)
func NewPerceptron(w1, w2 float64) *Perceptron {
	return nn.NewPerceptron(w1, w2)
}

// Activation

// ReLU applies the rectified linear unit, max(0, z).
//
// The derivative at the kink z = 0 is taken to be zero, so a sample
// sitting exactly on the kink produces no parameter update.
//
// Example:
//
//	h := nn.ReLU(-1.5) // 0
func ReLU(z float64) float64 {
	return nn.ReLU(z)
}

// Loss Functions

// SquaredError returns the squared error (prediction - target)^2 for a
// single sample.
//
// Example:
//
//	loss := nn.SquaredError(model.Predict(x), y)
func SquaredError(prediction, target float64) float64 {
	return nn.SquaredError(prediction, target)
}

// MeanSquaredError returns the mean squared error over a batch.
// It panics when the slices are empty or differ in length.
//
// Example:
//
//	loss := nn.MeanSquaredError(model.Forward(xs), ys)
func MeanSquaredError(predictions, targets []float64) float64 {
	return nn.MeanSquaredError(predictions, targets)
}
