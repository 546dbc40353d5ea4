// Package nn implements the two-parameter perceptron under study.
//
// The model is deliberately tiny: f(x) = w1 * relu(w2 * x), a single
// input feeding a single hidden ReLU unit with no biases. Both weights
// are scalars, so parameters, forward passes, and gradients all work on
// plain float64 values. There is no tensor machinery here; the point of
// the model is that its full loss landscape over (w1, w2) can be drawn
// on a screen.
//
//   - Module interface: base interface for trainable models
//   - Parameter: a named scalar weight with gradient tracking
//   - Perceptron: the f(x) = w1 * relu(w2 * x) model
//   - SquaredError, MeanSquaredError: loss functions
package nn

// Module is the base interface for trainable models.
//
// Implementations hold their weights as Parameters so optimizers can
// update them generically.
type Module interface {
	// Forward computes predictions for a batch of inputs.
	Forward(xs []float64) []float64

	// Parameters returns all trainable parameters of the module.
	Parameters() []*Parameter
}

// Grads maps parameter names to gradient values, as produced by a
// backward pass and consumed by an optimizer step.
type Grads map[string]float64
