// Package trainer runs per-sample gradient descent epochs and records
// the parameter trajectory.
//
// One epoch visits every training sample once, in dataset order, and
// performs one optimizer step per sample. Each step is recorded before
// the update is applied, so step k holds the exact weights and
// gradients the arrow on the landscape plot starts from.
package trainer

import (
	"fmt"
	"log"
	"math"

	"github.com/losslab-ml/losslab/internal/dataset"
	"github.com/losslab-ml/losslab/internal/nn"
	"github.com/losslab-ml/losslab/internal/optim"
)

// Step records the state of one per-sample update.
//
// W1 and W2 are the weights before the update, GradW1 and GradW2 the
// gradients of this sample's loss at those weights, and Loss the
// sample's loss there. The weights after the update are the next
// step's W1 and W2 (or the trajectory's final point for the last
// step).
type Step struct {
	Index  int     // Sample index within the epoch
	X, Y   float64 // The training sample
	W1, W2 float64 // Weights before the update
	GradW1 float64 // d loss / d w1 at (W1, W2)
	GradW2 float64 // d loss / d w2 at (W1, W2)
	Loss   float64 // Per-sample loss at (W1, W2)
}

// Trajectory is the recorded history of one epoch.
type Trajectory struct {
	Steps []Step

	// FinalW1 and FinalW2 are the weights after the last update.
	FinalW1, FinalW2 float64
}

// RunConfig configures one training epoch.
type RunConfig struct {
	Model     *nn.Perceptron
	Data      *dataset.Dataset
	Optimizer optim.Optimizer

	// LogEvery logs progress every N steps. 0 disables logging.
	LogEvery int
}

// RunEpoch performs one pass over the dataset, one optimizer step per
// sample, and returns the recorded trajectory.
//
// The model is updated in place, so calling RunEpoch again continues
// training from where the previous epoch left off.
func RunEpoch(cfg RunConfig) (*Trajectory, error) {
	if cfg.Model == nil {
		return nil, fmt.Errorf("trainer: nil model")
	}
	if cfg.Data == nil || cfg.Data.Len() == 0 {
		return nil, fmt.Errorf("trainer: empty dataset")
	}
	if len(cfg.Data.X) != len(cfg.Data.Y) {
		return nil, fmt.Errorf("trainer: dataset has %d x values but %d y values", len(cfg.Data.X), len(cfg.Data.Y))
	}
	if cfg.Optimizer == nil {
		return nil, fmt.Errorf("trainer: nil optimizer")
	}

	n := cfg.Data.Len()
	traj := &Trajectory{Steps: make([]Step, 0, n)}

	for k := 0; k < n; k++ {
		x, y := cfg.Data.Sample(k)
		w1, w2 := cfg.Model.ParameterValues()
		loss := nn.SquaredError(cfg.Model.Predict(x), y)
		grads := cfg.Model.Backward(x, y)

		traj.Steps = append(traj.Steps, Step{
			Index:  k,
			X:      x,
			Y:      y,
			W1:     w1,
			W2:     w2,
			GradW1: grads["w1"],
			GradW2: grads["w2"],
			Loss:   loss,
		})

		cfg.Optimizer.Step(grads)
		cfg.Optimizer.ZeroGrad()

		if cfg.LogEvery > 0 && (k+1)%cfg.LogEvery == 0 {
			log.Printf("step=%d/%d loss=%.6f w1=%.4f w2=%.4f grad_w1=%.4f grad_w2=%.4f",
				k+1, n, loss, w1, w2, grads["w1"], grads["w2"])
		}
	}

	traj.FinalW1, traj.FinalW2 = cfg.Model.ParameterValues()
	return traj, nil
}

// MeanLoss returns the mean per-sample loss recorded over the epoch.
func (t *Trajectory) MeanLoss() float64 {
	if len(t.Steps) == 0 {
		return 0
	}
	var sum float64
	for _, s := range t.Steps {
		sum += s.Loss
	}
	return sum / float64(len(t.Steps))
}

// Path returns the weight-space points visited during the epoch: the
// pre-update weights of every step followed by the final weights.
// The result has len(Steps)+1 points of the form [w1, w2].
func (t *Trajectory) Path() [][2]float64 {
	path := make([][2]float64, 0, len(t.Steps)+1)
	for _, s := range t.Steps {
		path = append(path, [2]float64{s.W1, s.W2})
	}
	path = append(path, [2]float64{t.FinalW1, t.FinalW2})
	return path
}

// HasNonFinite reports whether any recorded weight, gradient, or loss
// is NaN or infinite.
func (t *Trajectory) HasNonFinite() bool {
	bad := func(v float64) bool {
		return math.IsNaN(v) || math.IsInf(v, 0)
	}
	for _, s := range t.Steps {
		if bad(s.W1) || bad(s.W2) || bad(s.GradW1) || bad(s.GradW2) || bad(s.Loss) {
			return true
		}
	}
	return bad(t.FinalW1) || bad(t.FinalW2)
}
