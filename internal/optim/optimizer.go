// Package optim implements optimization algorithms for training the
// perceptron.
//
// This package provides:
//   - Optimizer interface: base interface for all optimizers
//   - SGD: per-sample stochastic gradient descent with optional momentum
//   - Adam: adaptive moment estimation with bias correction
//
// Example usage:
//
//	// Create optimizer
//	optimizer := optim.NewSGD(model.Parameters(), optim.SGDConfig{
//	    LR: 0.05,
//	})
//
//	// Training loop
//	for k := 0; k < data.Len(); k++ {
//	    x, y := data.Sample(k)
//	    grads := model.Backward(x, y)
//	    optimizer.Step(grads)
//	    optimizer.ZeroGrad()
//	}
package optim

import (
	"github.com/losslab-ml/losslab/internal/nn"
)

// Optimizer is the base interface for all optimization algorithms.
//
// Optimizers update model parameters based on computed gradients to
// minimize the loss function during training.
//
// All optimizers must implement:
//   - Step: apply gradient updates to parameters
//   - ZeroGrad: clear gradients before the next iteration
//   - GetLR: get the current learning rate
type Optimizer interface {
	// Step applies gradient updates to all parameters.
	//
	// Takes a gradient map from Backward() and updates parameters
	// in-place. The map is keyed by parameter name.
	//
	// Example:
	//   grads := model.Backward(x, y)
	//   optimizer.Step(grads)
	Step(grads nn.Grads)

	// ZeroGrad clears all parameter gradients.
	//
	// This should be called after each step to prevent stale gradients
	// from leaking into the next iteration.
	ZeroGrad()

	// GetLR returns the current learning rate.
	GetLR() float64
}

// Config is the base configuration for all optimizers.
type Config struct {
	LR float64 // Learning rate
}

// gradientFor retrieves the gradient for a parameter from a gradient map.
//
// The second return is false if the map has no entry for the parameter
// (it did not participate in the backward pass).
func gradientFor(param *nn.Parameter, grads nn.Grads) (float64, bool) {
	if param == nil {
		return 0, false
	}
	g, ok := grads[param.Name()]
	return g, ok
}
