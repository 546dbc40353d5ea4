// Copyright 2026 Losslab Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package nn provides the two-parameter perceptron and its building blocks.
//
// # Overview
//
// This package contains:
//   - Model: Perceptron, the scalar model f(x) = w1 * relu(w2 * x)
//   - Activation: ReLU with the derivative-zero convention at the kink
//   - Loss functions: SquaredError, MeanSquaredError
//   - Utilities: Module interface, Parameter, Grads
//
// # Basic Usage
//
//	import "github.com/losslab-ml/losslab/nn"
//
//	func main() {
//	    model := nn.NewPerceptron(1.2, -2.3)
//
//	    // Forward pass on a single input
//	    pred := model.Predict(0.5)
//
//	    // Analytic gradients for one sample
//	    grads := model.Backward(0.5, 1.0)
//	}
//
// # The Perceptron
//
// Perceptron is the only model: one input, one hidden ReLU unit, one
// output, no biases. Its two weights are the coordinates of every loss
// landscape the rest of the project draws.
//
//	model := nn.NewPerceptron(w1, w2)
//	w1, w2 := model.ParameterValues()
//
// # Gradients
//
// Backward computes closed-form gradients of the squared error for a
// single sample and stores them on the parameters:
//
//	grads := model.Backward(x, y)
//	// grads["w1"], grads["w2"]
//
// When the hidden unit is inactive (w2*x <= 0) both gradients are zero
// and an optimizer step leaves the weights unchanged.
//
// # Loss Functions
//
// SquaredError: single-sample regression loss
//
//	loss := nn.SquaredError(model.Predict(x), y)
//
// MeanSquaredError: mean over a batch of predictions
//
//	loss := nn.MeanSquaredError(preds, targets)
//
// # Parameter Management
//
// Access model parameters for optimization:
//
//	params := model.Parameters()
//	for _, param := range params {
//	    fmt.Println(param.Name(), param.Value())
//	}
package nn
