package nn

// SquaredError computes the squared error for a single prediction.
//
// Loss = (prediction - target)²
//
// Per-sample losses are the raw material of the landscape plots: each
// training sample contributes its own loss surface over (w1, w2), and
// the empirical risk is their mean.
func SquaredError(prediction, target float64) float64 {
	diff := prediction - target
	return diff * diff
}

// MeanSquaredError computes the mean squared error over a batch.
//
// Loss = mean((predictions - targets)²)
//
// Panics if the slices have different lengths or are empty.
func MeanSquaredError(predictions, targets []float64) float64 {
	if len(predictions) != len(targets) {
		panic("MeanSquaredError: predictions and targets must have the same length")
	}
	if len(predictions) == 0 {
		panic("MeanSquaredError: empty batch")
	}

	var sum float64
	for i, p := range predictions {
		sum += SquaredError(p, targets[i])
	}
	return sum / float64(len(predictions))
}
