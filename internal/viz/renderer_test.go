package viz

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/losslab-ml/losslab/internal/dataset"
	"github.com/losslab-ml/losslab/internal/landscape"
	"github.com/losslab-ml/losslab/internal/nn"
	"github.com/losslab-ml/losslab/internal/optim"
	"github.com/losslab-ml/losslab/internal/trainer"
)

// testRun builds a small but complete experiment: dataset, loss grid,
// and one recorded epoch.
func testRun(t *testing.T, samples, resolution int) (*Renderer, *trainer.Trajectory) {
	t.Helper()

	ds, err := dataset.Generate(dataset.Config{Samples: samples, Seed: 42})
	require.NoError(t, err)

	grid, err := landscape.Build(ds, landscape.GridConfig{Resolution: resolution, Min: -3, Max: 3})
	require.NoError(t, err)

	model := nn.NewPerceptron(1.2, -2.3)
	traj, err := trainer.RunEpoch(trainer.RunConfig{
		Model:     model,
		Data:      ds,
		Optimizer: optim.NewSGD(model.Parameters(), optim.SGDConfig{LR: 0.05}),
	})
	require.NoError(t, err)

	meta := Meta{
		Samples:      samples,
		Seed:         42,
		Slope:        2.0,
		NoiseStd:     0.1,
		Resolution:   resolution,
		GridMin:      -3,
		GridMax:      3,
		InitW1:       1.2,
		InitW2:       -2.3,
		Optimizer:    "sgd",
		LearningRate: 0.05,
	}
	r, err := NewRenderer(ds, grid, traj, meta)
	require.NoError(t, err)
	return r, traj
}

func TestNewRenderer_Validation(t *testing.T) {
	ds, err := dataset.Generate(dataset.Config{Samples: 4, Seed: 1})
	require.NoError(t, err)
	grid, err := landscape.Build(ds, landscape.GridConfig{Resolution: 8, Min: -3, Max: 3})
	require.NoError(t, err)

	model := nn.NewPerceptron(1, 1)
	traj, err := trainer.RunEpoch(trainer.RunConfig{
		Model:     model,
		Data:      ds,
		Optimizer: optim.NewSGD(model.Parameters(), optim.SGDConfig{LR: 0.05}),
	})
	require.NoError(t, err)

	t.Run("nil inputs", func(t *testing.T) {
		_, err := NewRenderer(nil, grid, traj, Meta{})
		assert.Error(t, err)
	})

	t.Run("mismatched trajectory", func(t *testing.T) {
		short := &trainer.Trajectory{Steps: traj.Steps[:2]}
		_, err := NewRenderer(ds, grid, short, Meta{})
		assert.Error(t, err)
	})

	t.Run("mismatched grid", func(t *testing.T) {
		other, err := dataset.Generate(dataset.Config{Samples: 9, Seed: 1})
		require.NoError(t, err)
		wrongGrid, err := landscape.Build(other, landscape.GridConfig{Resolution: 8, Min: -3, Max: 3})
		require.NoError(t, err)
		_, err = NewRenderer(ds, wrongGrid, traj, Meta{})
		assert.Error(t, err)
	})
}

func TestRenderer_Experiment(t *testing.T) {
	r, traj := testRun(t, 6, 16)

	exp, err := r.Experiment()
	require.NoError(t, err)

	assert.Equal(t, 6, exp.FrameCount)
	assert.Equal(t, 6, exp.Meta.Samples)
	assert.Len(t, exp.W1Axis, 16)
	assert.Len(t, exp.W2Axis, 16)
	assert.Len(t, exp.Samples, 6)
	assert.Len(t, exp.Path, 7)
	assert.InDelta(t, traj.MeanLoss(), exp.MeanLoss, 1e-12)

	assert.True(t, strings.HasPrefix(exp.Mean.Image, "data:image/png;base64,"))
	assert.Len(t, exp.Mean.Contours, contourCount)
	assert.LessOrEqual(t, exp.Mean.MinLoss, exp.Mean.MaxLoss)

	// Path points match the trajectory up to coordinate rounding.
	for i, p := range traj.Path() {
		assert.InDelta(t, p[0], exp.Path[i][0], 1e-4)
		assert.InDelta(t, p[1], exp.Path[i][1], 1e-4)
	}
}

func TestRenderer_Frame(t *testing.T) {
	r, traj := testRun(t, 6, 16)

	for k := 0; k < r.FrameCount(); k++ {
		f, err := r.Frame(k)
		require.NoError(t, err)

		s := traj.Steps[k]
		assert.Equal(t, k, f.Index)
		assert.Equal(t, s.X, f.X)
		assert.Equal(t, s.Y, f.Y)
		assert.Equal(t, s.W1, f.W1)
		assert.Equal(t, s.W2, f.W2)
		assert.Equal(t, s.GradW1, f.GradW1)
		assert.Equal(t, s.GradW2, f.GradW2)
		assert.Equal(t, s.Loss, f.Loss)
		assert.True(t, strings.HasPrefix(f.Panel.Image, "data:image/png;base64,"))

		// The arrow tip is the next trajectory point.
		if k+1 < len(traj.Steps) {
			assert.Equal(t, traj.Steps[k+1].W1, f.NextW1)
			assert.Equal(t, traj.Steps[k+1].W2, f.NextW2)
		} else {
			assert.Equal(t, traj.FinalW1, f.NextW1)
			assert.Equal(t, traj.FinalW2, f.NextW2)
		}
	}
}

func TestRenderer_FrameOutOfRange(t *testing.T) {
	r, _ := testRun(t, 3, 8)

	_, err := r.Frame(-1)
	assert.Error(t, err)
	_, err = r.Frame(3)
	assert.Error(t, err)
}

func TestRenderer_Frames(t *testing.T) {
	r, _ := testRun(t, 4, 8)

	frames, err := r.Frames()
	require.NoError(t, err)
	require.Len(t, frames, 4)
	for k, f := range frames {
		assert.Equal(t, k, f.Index)
	}
}
