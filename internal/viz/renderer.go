// Package viz turns a finished experiment into pictures.
//
// The interactive page shows two panels side by side: the loss surface
// of one selected training sample and the mean (empirical risk)
// surface, both as log-scaled viridis heatmaps with contour lines over
// the (w1, w2) plane. A slider walks through the epoch sample by
// sample; the left panel swaps to that sample's surface and draws the
// SGD step taken on it, while the right panel accumulates the
// trajectory.
//
// All drawing data is prepared server side: heatmaps are PNG data
// URIs, contours are line segments in weight coordinates. The browser
// only maps coordinates to pixels, so the page works identically
// whether it is served live or exported as a standalone HTML file.
package viz

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/losslab-ml/losslab/internal/dataset"
	"github.com/losslab-ml/losslab/internal/landscape"
	"github.com/losslab-ml/losslab/internal/parallel"
	"github.com/losslab-ml/losslab/internal/trainer"
)

// Meta echoes the experiment settings into the payload so the page can
// display them.
type Meta struct {
	Samples      int     `json:"samples"`
	Seed         int64   `json:"seed"`
	Slope        float64 `json:"slope"`
	NoiseStd     float64 `json:"noise_std"`
	Resolution   int     `json:"resolution"`
	GridMin      float64 `json:"grid_min"`
	GridMax      float64 `json:"grid_max"`
	InitW1       float64 `json:"init_w1"`
	InitW2       float64 `json:"init_w2"`
	Optimizer    string  `json:"optimizer"`
	LearningRate float64 `json:"learning_rate"`
	Momentum     float64 `json:"momentum"`
}

// Panel is one drawable loss surface: heatmap image, contour lines,
// and the raw loss range behind the color scale.
type Panel struct {
	Image    string         `json:"image"`
	Contours []ContourLevel `json:"contours"`
	MinLoss  float64        `json:"min_loss"`
	MaxLoss  float64        `json:"max_loss"`
}

// SamplePoint is one training point, shown in the data strip under the
// panels.
type SamplePoint struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Experiment is the frame-independent part of the payload: axes, the
// dataset, the mean surface, and the full trajectory.
type Experiment struct {
	Meta       Meta          `json:"meta"`
	W1Axis     []float64     `json:"w1_axis"`
	W2Axis     []float64     `json:"w2_axis"`
	Samples    []SamplePoint `json:"samples"`
	Mean       Panel         `json:"mean"`
	Path       [][2]float64  `json:"path"`
	MeanLoss   float64       `json:"mean_loss"`
	FrameCount int           `json:"frame_count"`
}

// Frame is the per-slider-position payload: the selected sample's
// surface and the SGD step taken on it. W1 and W2 are the weights the
// step started from, NextW1 and NextW2 where it landed, so the arrow
// between them is the actual parameter update.
type Frame struct {
	Index  int     `json:"index"`
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	W1     float64 `json:"w1"`
	W2     float64 `json:"w2"`
	GradW1 float64 `json:"grad_w1"`
	GradW2 float64 `json:"grad_w2"`
	Loss   float64 `json:"loss"`
	NextW1 float64 `json:"next_w1"`
	NextW2 float64 `json:"next_w2"`
	Panel  Panel   `json:"panel"`
}

// Renderer builds Experiment and Frame payloads from a finished run.
type Renderer struct {
	ds   *dataset.Dataset
	grid *landscape.Grid
	traj *trainer.Trajectory
	meta Meta
}

// NewRenderer wires a dataset, its loss grid, and the recorded
// trajectory together. The three must describe the same run: one
// surface and one trajectory step per sample.
func NewRenderer(ds *dataset.Dataset, grid *landscape.Grid, traj *trainer.Trajectory, meta Meta) (*Renderer, error) {
	if ds == nil || grid == nil || traj == nil {
		return nil, fmt.Errorf("viz: dataset, grid, and trajectory are all required")
	}
	if ds.Len() != grid.Samples() {
		return nil, fmt.Errorf("viz: dataset has %d samples but grid has %d surfaces", ds.Len(), grid.Samples())
	}
	if len(traj.Steps) != ds.Len() {
		return nil, fmt.Errorf("viz: trajectory has %d steps but dataset has %d samples", len(traj.Steps), ds.Len())
	}
	return &Renderer{ds: ds, grid: grid, traj: traj, meta: meta}, nil
}

// FrameCount returns the number of slider positions, one per sample.
func (r *Renderer) FrameCount() int {
	return len(r.traj.Steps)
}

// Experiment builds the frame-independent payload.
func (r *Renderer) Experiment() (*Experiment, error) {
	mean, err := r.buildPanel(r.grid.MeanSurface())
	if err != nil {
		return nil, err
	}

	w1s, w2s := r.grid.Axes()
	samples := make([]SamplePoint, r.ds.Len())
	for k := range samples {
		x, y := r.ds.Sample(k)
		samples[k] = SamplePoint{X: x, Y: y}
	}

	path := r.traj.Path()
	for i := range path {
		path[i][0] = roundCoord(path[i][0])
		path[i][1] = roundCoord(path[i][1])
	}

	return &Experiment{
		Meta:       r.meta,
		W1Axis:     roundCoords(w1s),
		W2Axis:     roundCoords(w2s),
		Samples:    samples,
		Mean:       mean,
		Path:       path,
		MeanLoss:   r.traj.MeanLoss(),
		FrameCount: r.FrameCount(),
	}, nil
}

// Frame builds the payload for slider position k.
func (r *Renderer) Frame(k int) (*Frame, error) {
	if k < 0 || k >= len(r.traj.Steps) {
		return nil, fmt.Errorf("viz: frame index %d out of range [0, %d)", k, len(r.traj.Steps))
	}

	panel, err := r.buildPanel(r.grid.SampleSurface(k))
	if err != nil {
		return nil, err
	}

	s := r.traj.Steps[k]
	nextW1, nextW2 := r.traj.FinalW1, r.traj.FinalW2
	if k+1 < len(r.traj.Steps) {
		nextW1, nextW2 = r.traj.Steps[k+1].W1, r.traj.Steps[k+1].W2
	}

	return &Frame{
		Index:  k,
		X:      s.X,
		Y:      s.Y,
		W1:     s.W1,
		W2:     s.W2,
		GradW1: s.GradW1,
		GradW2: s.GradW2,
		Loss:   s.Loss,
		NextW1: nextW1,
		NextW2: nextW2,
		Panel:  panel,
	}, nil
}

// Frames builds every frame payload, as embedded by the HTML export.
// Frames are independent, so their panels render in parallel.
func (r *Renderer) Frames() ([]Frame, error) {
	frames := make([]Frame, r.FrameCount())
	errs := make([]error, len(frames))
	parallel.For(len(frames), func(k int) {
		f, err := r.Frame(k)
		if err != nil {
			errs[k] = err
			return
		}
		frames[k] = *f
	}, parallel.DefaultConfig())
	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}
	return frames, nil
}

func (r *Renderer) buildPanel(s *mat.Dense) (Panel, error) {
	img, err := heatmapDataURI(s)
	if err != nil {
		return Panel{}, err
	}
	w1s, w2s := r.grid.Axes()
	return Panel{
		Image:    img,
		Contours: contourLevels(s, w1s, w2s, contourCount),
		MinLoss:  mat.Min(s),
		MaxLoss:  mat.Max(s),
	}, nil
}

func roundCoords(vs []float64) []float64 {
	out := make([]float64, len(vs))
	for i, v := range vs {
		out[i] = roundCoord(v)
	}
	return out
}
