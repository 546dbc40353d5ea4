// Package trainer runs per-sample SGD epochs and records the trajectory.
//
// This package wraps the internal trainer implementation and provides
// a clean public API for running the training loop.
//
// An epoch visits the samples in order and takes one optimizer step per
// sample. Each recorded step holds the parameters and gradients as they
// were before the update, so step k of the trajectory is the point the
// visualization draws for frame k.
//
// Example usage:
//
//	import (
//	    "github.com/losslab-ml/losslab/dataset"
//	    "github.com/losslab-ml/losslab/nn"
//	    "github.com/losslab-ml/losslab/optim"
//	    "github.com/losslab-ml/losslab/trainer"
//	)
//
//	data, _ := dataset.Generate(dataset.Config{Seed: 42})
//	model := nn.NewPerceptron(1.2, -2.3)
//	opt := optim.NewSGD(model.Parameters(), optim.SGDConfig{LR: 0.05})
//
//	traj, err := trainer.RunEpoch(trainer.RunConfig{
//	    Model:     model,
//	    Data:      data,
//	    Optimizer: opt,
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Printf("mean loss: %.4f\n", traj.MeanLoss())
package trainer

import (
	"github.com/losslab-ml/losslab/internal/trainer"
)

// Step records one sample visit: the parameters, gradients and loss
// before the optimizer update.
type Step = trainer.Step

// Trajectory is the full record of one epoch plus the final parameters.
type Trajectory = trainer.Trajectory

// RunConfig bundles the model, data and optimizer for one epoch.
type RunConfig = trainer.RunConfig

// RunEpoch performs one pass over the dataset, one optimizer step per
// sample, and returns the recorded trajectory.
//
// Calling RunEpoch again with the same config continues training from
// the parameters the previous epoch left behind.
func RunEpoch(cfg RunConfig) (*Trajectory, error) {
	return trainer.RunEpoch(cfg)
}
