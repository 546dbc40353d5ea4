package nn

// Perceptron is the two-parameter model f(x) = w1 * relu(w2 * x).
//
// w2 scales the input before the ReLU and w1 scales the activation.
// The parameter pair (w1, w2) is a point on the landscape plots, and
// training moves that point around the surface.
//
// Example:
//
//	model := nn.NewPerceptron(1.2, -2.3)
//	yhat := model.Predict(0.5)
//	grads := model.Backward(0.5, 1.0)
type Perceptron struct {
	w1 *Parameter
	w2 *Parameter
}

// NewPerceptron creates a perceptron with the given initial weights.
func NewPerceptron(w1, w2 float64) *Perceptron {
	return &Perceptron{
		w1: NewParameter("w1", w1),
		w2: NewParameter("w2", w2),
	}
}

// Predict computes f(x) = w1 * relu(w2 * x) for a single input.
func (p *Perceptron) Predict(x float64) float64 {
	return p.w1.Value() * ReLU(p.w2.Value()*x)
}

// Forward computes predictions for a batch of inputs.
func (p *Perceptron) Forward(xs []float64) []float64 {
	out := make([]float64, len(xs))
	for i, x := range xs {
		out[i] = p.Predict(x)
	}
	return out
}

// Backward computes the gradient of the squared error (f(x) - y)² with
// respect to both weights, stores it on the parameters, and returns it.
//
// With z = w2 * x the analytic gradients on the active branch (z > 0)
// are
//
//	dL/dw1 = 2 * (w1*z - y) * z
//	dL/dw2 = 2 * (w1*z - y) * w1 * x
//
// On the inactive branch (z <= 0) the prediction is constant 0, so both
// gradients are 0. The kink z = 0 falls in the inactive branch; see
// ReLU for the subgradient convention.
func (p *Perceptron) Backward(x, y float64) Grads {
	var g1, g2 float64
	if z := p.w2.Value() * x; z > 0 {
		residual := p.w1.Value()*z - y
		g1 = 2 * residual * z
		g2 = 2 * residual * p.w1.Value() * x
	}

	p.w1.SetGrad(g1)
	p.w2.SetGrad(g2)

	return Grads{
		p.w1.Name(): g1,
		p.w2.Name(): g2,
	}
}

// Parameters returns the trainable parameters in (w1, w2) order.
func (p *Perceptron) Parameters() []*Parameter {
	return []*Parameter{p.w1, p.w2}
}

// ParameterValues returns the current (w1, w2) values.
func (p *Perceptron) ParameterValues() (w1, w2 float64) {
	return p.w1.Value(), p.w2.Value()
}

// SetParameters moves the model to the given point in weight space.
func (p *Perceptron) SetParameters(w1, w2 float64) {
	p.w1.Set(w1)
	p.w2.Set(w2)
}
