// Copyright 2026 Losslab Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package optim provides optimization algorithms for training the perceptron.
//
// # Overview
//
// This package contains:
//   - SGD: Stochastic Gradient Descent with optional momentum
//   - Adam: Adaptive Moment Estimation with bias correction
//   - Optimizer interface for custom optimizers
//
// # Basic Usage
//
//	import (
//	    "github.com/losslab-ml/losslab/nn"
//	    "github.com/losslab-ml/losslab/optim"
//	)
//
//	func main() {
//	    model := nn.NewPerceptron(1.2, -2.3)
//
//	    // Create optimizer
//	    optimizer := optim.NewSGD(
//	        model.Parameters(),
//	        optim.SGDConfig{LR: 0.05},
//	    )
//
//	    // One pass over the data, one step per sample
//	    for k := 0; k < data.Len(); k++ {
//	        x, y := data.Sample(k)
//	        grads := model.Backward(x, y)
//	        optimizer.Step(grads)
//	        optimizer.ZeroGrad()
//	    }
//	}
//
// # Optimizers
//
// SGD (Stochastic Gradient Descent):
//
//	optimizer := optim.NewSGD(
//	    model.Parameters(),
//	    optim.SGDConfig{
//	        LR:       0.05,
//	        Momentum: 0.9,
//	    },
//	)
//
// Adam (Adaptive Moment Estimation):
//
//	optimizer := optim.NewAdam(
//	    model.Parameters(),
//	    optim.AdamConfig{
//	        LR:    0.001,
//	        Betas: [2]float64{0.9, 0.999},
//	        Eps:   1e-8,
//	    },
//	)
//
// # Training Loop Pattern
//
//	for epoch := 0; epoch < numEpochs; epoch++ {
//	    for k := 0; k < data.Len(); k++ {
//	        x, y := data.Sample(k)
//
//	        // 1. Backward pass (closed-form gradients)
//	        grads := model.Backward(x, y)
//
//	        // 2. Update parameters
//	        optimizer.Step(grads)
//
//	        // 3. Zero gradients
//	        optimizer.ZeroGrad()
//	    }
//	}
package optim
