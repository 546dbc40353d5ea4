// Copyright 2026 Losslab Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package landscape computes per-sample loss surfaces over the weight plane.
//
// # Overview
//
// For each sample (x_k, y_k) the package evaluates the squared error of
// the perceptron f(x) = w1 * relu(w2 * x) on a dense (w1, w2) grid,
// producing one surface per sample plus their mean. The surfaces are
// what the visualization renders and what the SGD trajectory is drawn
// on top of.
//
// # Basic Usage
//
//	import (
//	    "github.com/losslab-ml/losslab/dataset"
//	    "github.com/losslab-ml/losslab/landscape"
//	)
//
//	data, _ := dataset.Generate(dataset.Config{Seed: 42})
//	grid, err := landscape.Build(data, landscape.GridConfig{
//	    Resolution: 100,
//	    Min:        -3,
//	    Max:        3,
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	surface := grid.SampleSurface(0) // loss surface of sample 0
//	mean := grid.MeanSurface()       // mean over all samples
package landscape

import (
	"github.com/losslab-ml/losslab/internal/dataset"
	"github.com/losslab-ml/losslab/internal/landscape"
)

// Default grid covering both weights.
const (
	DefaultResolution = landscape.DefaultResolution
	DefaultMin        = landscape.DefaultMin
	DefaultMax        = landscape.DefaultMax
)

// GridConfig controls the evaluation grid. Zero values fall back to a
// 100x100 grid over [-3, 3] in both weights.
type GridConfig = landscape.GridConfig

// Grid holds the per-sample loss surfaces and their mean.
type Grid = landscape.Grid

// Build evaluates the loss surfaces of every sample in the dataset.
//
// Example:
//
//	grid, err := landscape.Build(data, landscape.GridConfig{})
func Build(data *dataset.Dataset, cfg GridConfig) (*Grid, error) {
	return landscape.Build(data, cfg)
}
