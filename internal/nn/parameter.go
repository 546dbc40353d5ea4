package nn

// Parameter represents a trainable scalar weight.
//
// Parameters carry their most recent gradient so optimizers can update
// them without knowing anything about the model they belong to.
//
// Example:
//
//	// Create a weight parameter
//	w1 := nn.NewParameter("w1", 1.2)
//
//	// Read the current value
//	v := w1.Value()
//
//	// Get gradient after backward pass
//	g := w1.Grad()
type Parameter struct {
	name  string  // Parameter name (e.g., "w1", "w2")
	value float64 // Current weight value
	grad  float64 // Gradient from the most recent backward pass
}

// NewParameter creates a new trainable parameter with an initial value.
//
// Parameters:
//   - name: Descriptive name for this parameter (e.g., "w1")
//   - value: Initial weight value
//
// Returns a new Parameter with a zero gradient.
func NewParameter(name string, value float64) *Parameter {
	return &Parameter{
		name:  name,
		value: value,
	}
}

// Name returns the parameter name.
func (p *Parameter) Name() string {
	return p.name
}

// Value returns the current weight value.
func (p *Parameter) Value() float64 {
	return p.value
}

// Set replaces the weight value.
//
// This is typically called by the optimizer after a step, or when
// resetting a model to a chosen starting point.
func (p *Parameter) Set(value float64) {
	p.value = value
}

// Grad returns the gradient from the most recent backward pass.
//
// Returns 0 if no gradient has been computed yet.
func (p *Parameter) Grad() float64 {
	return p.grad
}

// SetGrad sets the gradient value.
//
// This is typically called during the backward pass.
func (p *Parameter) SetGrad(grad float64) {
	p.grad = grad
}

// ZeroGrad clears the gradient.
//
// This should be called before each training iteration to avoid
// reusing gradients from previous iterations.
func (p *Parameter) ZeroGrad() {
	p.grad = 0
}
