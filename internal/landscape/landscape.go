// Package landscape computes loss surfaces over the (w1, w2) plane.
//
// For every training sample k the package evaluates the squared error
// of the perceptron f(x) = w1 * relu(w2 * x) on a regular grid of
// weight values, producing one surface per sample plus their mean, the
// empirical risk surface. Per-sample surfaces are what an SGD step
// actually descends, so seeing them next to the mean surface is the
// whole point of the exercise.
//
// Surfaces are dense matrices with rows indexed by w1 and columns by
// w2: Surface.At(i, j) is the loss at (w1s[i], w2s[j]).
package landscape

import (
	"fmt"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"

	"github.com/losslab-ml/losslab/internal/dataset"
	"github.com/losslab-ml/losslab/internal/nn"
	"github.com/losslab-ml/losslab/internal/parallel"
)

// Default grid geometry.
const (
	DefaultResolution = 100
	DefaultMin        = -3.0
	DefaultMax        = 3.0
)

// GridConfig describes the weight-space grid.
//
// Zero values select the defaults: a 100x100 grid over [-3, 3] on both
// axes.
type GridConfig struct {
	Resolution int     // Points per axis
	Min, Max   float64 // Weight range, shared by both axes
}

// Grid holds the per-sample loss surfaces and their mean over a fixed
// weight-space grid.
type Grid struct {
	w1s, w2s     []float64
	mesh1, mesh2 *mat.Dense
	perSample    []*mat.Dense
	mean         *mat.Dense
	cfg          GridConfig
}

// Build evaluates the loss surfaces for every sample in the dataset.
//
// The grid is cfg.Resolution points per axis spanning [cfg.Min,
// cfg.Max] inclusive on both axes. Returns an error if the dataset is
// empty, if its x and y lengths differ, or if the grid geometry is
// degenerate.
func Build(ds *dataset.Dataset, cfg GridConfig) (*Grid, error) {
	if ds == nil || ds.Len() == 0 {
		return nil, fmt.Errorf("landscape: empty dataset")
	}
	if len(ds.X) != len(ds.Y) {
		return nil, fmt.Errorf("landscape: dataset has %d x values but %d y values", len(ds.X), len(ds.Y))
	}
	if cfg.Resolution == 0 {
		cfg.Resolution = DefaultResolution
	}
	if cfg.Min == 0 && cfg.Max == 0 {
		cfg.Min, cfg.Max = DefaultMin, DefaultMax
	}
	if cfg.Resolution < 2 {
		return nil, fmt.Errorf("landscape: resolution %d too small, need at least 2", cfg.Resolution)
	}
	if cfg.Min >= cfg.Max {
		return nil, fmt.Errorf("landscape: invalid weight range [%v, %v]", cfg.Min, cfg.Max)
	}

	res := cfg.Resolution
	g := &Grid{
		w1s: floats.Span(make([]float64, res), cfg.Min, cfg.Max),
		w2s: floats.Span(make([]float64, res), cfg.Min, cfg.Max),
		cfg: cfg,
	}

	// Meshes mirror the axes: mesh1 varies along rows, mesh2 along
	// columns.
	g.mesh1 = mat.NewDense(res, res, nil)
	g.mesh2 = mat.NewDense(res, res, nil)
	for i := 0; i < res; i++ {
		for j := 0; j < res; j++ {
			g.mesh1.Set(i, j, g.w1s[i])
			g.mesh2.Set(i, j, g.w2s[j])
		}
	}

	// Each sample owns its surface, so the evaluation is safe to run
	// one goroutine per sample chunk.
	n := ds.Len()
	g.perSample = make([]*mat.Dense, n)
	parallel.For(n, func(k int) {
		x, y := ds.Sample(k)
		surface := mat.NewDense(res, res, nil)
		for i := 0; i < res; i++ {
			w1 := g.w1s[i]
			for j := 0; j < res; j++ {
				loss := nn.SquaredError(w1*nn.ReLU(g.w2s[j]*x), y)
				surface.Set(i, j, loss)
			}
		}
		g.perSample[k] = surface
	}, parallel.DefaultConfig())

	g.mean = mat.NewDense(res, res, nil)
	for k := 0; k < n; k++ {
		g.mean.Add(g.mean, g.perSample[k])
	}
	g.mean.Scale(1/float64(n), g.mean)

	return g, nil
}

// Axes returns the w1 (rows) and w2 (columns) grid values.
func (g *Grid) Axes() (w1s, w2s []float64) {
	return g.w1s, g.w2s
}

// Meshes returns the row and column coordinate matrices: the first
// holds w1s[i] in every cell of row i, the second w2s[j] in every cell
// of column j.
func (g *Grid) Meshes() (w1, w2 *mat.Dense) {
	return g.mesh1, g.mesh2
}

// SampleSurface returns the loss surface of sample k.
//
// Panics if k is out of range.
func (g *Grid) SampleSurface(k int) *mat.Dense {
	return g.perSample[k]
}

// MeanSurface returns the empirical risk surface, the elementwise mean
// of all per-sample surfaces.
func (g *Grid) MeanSurface() *mat.Dense {
	return g.mean
}

// At returns the loss of sample k at grid cell (i, j), that is at the
// weight point (w1s[i], w2s[j]).
func (g *Grid) At(k, i, j int) float64 {
	return g.perSample[k].At(i, j)
}

// Samples returns the number of per-sample surfaces.
func (g *Grid) Samples() int {
	return len(g.perSample)
}

// Resolution returns the number of grid points per axis.
func (g *Grid) Resolution() int {
	return g.cfg.Resolution
}

// Bounds returns the weight range shared by both axes.
func (g *Grid) Bounds() (min, max float64) {
	return g.cfg.Min, g.cfg.Max
}
