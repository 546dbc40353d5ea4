// Copyright 2026 Losslab Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package dataset provides the synthetic linear regression data under study.
//
// # Overview
//
// Every experiment starts from the same toy problem: inputs drawn
// uniformly from [-1, 1] and targets y = slope*x + noise with Gaussian
// noise. The generator is seeded, so a run is reproducible end to end.
//
// # Basic Usage
//
//	import "github.com/losslab-ml/losslab/dataset"
//
//	data, err := dataset.Generate(dataset.Config{
//	    Samples:  100,
//	    Slope:    2.0,
//	    NoiseStd: 0.1,
//	    Seed:     42,
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	for k := 0; k < data.Len(); k++ {
//	    x, y := data.Sample(k)
//	    // ...
//	}
package dataset

import (
	"github.com/losslab-ml/losslab/internal/dataset"
)

// Config controls dataset generation. Zero values fall back to the
// standard experiment: 100 samples, slope 2.0, noise std 0.1.
type Config = dataset.Config

// Dataset holds one generated set of (x, y) samples in draw order.
type Dataset = dataset.Dataset

// Generate draws a dataset from the given configuration.
//
// Example:
//
//	data, err := dataset.Generate(dataset.Config{Samples: 100, Seed: 42})
func Generate(cfg Config) (*Dataset, error) {
	return dataset.Generate(cfg)
}
