package optim

import (
	"github.com/losslab-ml/losslab/internal/nn"
)

// SGD implements stochastic gradient descent with optional momentum.
//
// Update rule without momentum:
//
//	param = param - lr * gradient
//
// Update rule with momentum:
//
//	velocity = momentum * velocity + gradient
//	param = param - lr * velocity
//
// The training loop feeds one sample at a time, so every Step is a
// per-sample update and the parameter trajectory zig-zags across the
// loss surface rather than following the mean gradient.
//
// Example:
//
//	optimizer := optim.NewSGD(model.Parameters(), optim.SGDConfig{
//	    LR:       0.05,
//	    Momentum: 0.9,
//	})
//
//	for k := 0; k < data.Len(); k++ {
//	    x, y := data.Sample(k)
//	    grads := model.Backward(x, y)
//	    optimizer.Step(grads)
//	    optimizer.ZeroGrad()
//	}
type SGD struct {
	params     []*nn.Parameter
	lr         float64
	momentum   float64
	velocities map[*nn.Parameter]float64
}

// SGDConfig holds configuration for the SGD optimizer.
type SGDConfig struct {
	LR       float64 // Learning rate (default: 0.01)
	Momentum float64 // Momentum factor (default: 0.0, range: [0, 1))
}

// NewSGD creates a new SGD optimizer.
//
// Parameters:
//   - params: model parameters to optimize
//   - config: SGD configuration (LR, Momentum)
//
// Returns a new SGD optimizer.
//
// Example:
//
//	sgd := optim.NewSGD(model.Parameters(), optim.SGDConfig{
//	    LR: 0.05,
//	})
func NewSGD(params []*nn.Parameter, config SGDConfig) *SGD {
	// Set defaults
	if config.LR == 0 {
		config.LR = 0.01
	}

	return &SGD{
		params:     params,
		lr:         config.LR,
		momentum:   config.Momentum,
		velocities: make(map[*nn.Parameter]float64),
	}
}

// Step performs a single optimization step.
//
// Applies the gradient descent update to all parameters:
//   - Without momentum: param -= lr * grad
//   - With momentum: velocity = momentum * velocity + grad, param -= lr * velocity
//
// Parameters with no entry in the gradient map are skipped.
func (s *SGD) Step(grads nn.Grads) {
	for _, param := range s.params {
		grad, ok := gradientFor(param, grads)
		if !ok {
			// Parameter didn't participate in the backward pass, skip
			continue
		}

		if s.momentum == 0 {
			param.Set(param.Value() - s.lr*grad)
			continue
		}

		velocity := s.momentum*s.velocities[param] + grad
		s.velocities[param] = velocity
		param.Set(param.Value() - s.lr*velocity)
	}
}

// ZeroGrad clears gradients for all parameters.
func (s *SGD) ZeroGrad() {
	for _, param := range s.params {
		param.ZeroGrad()
	}
}

// GetLR returns the current learning rate.
func (s *SGD) GetLR() float64 {
	return s.lr
}

// SetLR updates the learning rate.
//
// Useful for learning rate scheduling during training.
func (s *SGD) SetLR(lr float64) {
	s.lr = lr
}
