package nn

// ReLU applies the Rectified Linear Unit: f(z) = max(0, z).
//
// The kink at z = 0 makes the perceptron's loss surface non-smooth,
// which is exactly what the landscape plots are meant to show. At the
// kink itself the derivative is taken to be 0 (the subgradient
// convention used throughout this module), so the inactive branch
// covers z <= 0.
func ReLU(z float64) float64 {
	if z > 0 {
		return z
	}
	return 0
}
