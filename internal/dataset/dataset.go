// Package dataset generates the synthetic regression data that the landscape
// builder and the trainer consume.
//
// Samples follow a known linear-plus-noise model:
//
//	x ~ Uniform[-1, 1]
//	y = slope·x + ε,  ε ~ Normal(0, noiseStd)
//
// Generation is deterministic for a fixed seed, which keeps every downstream
// artifact (loss grids, trajectories, rendered pages) reproducible.
package dataset

import (
	"fmt"
	"math/rand"
)

// Default generation parameters for the teaching scenario.
const (
	DefaultSamples  = 100
	DefaultSlope    = 2.0
	DefaultNoiseStd = 0.1
)

// Config controls synthetic data generation.
//
// Zero values for Samples, Slope, and NoiseStd fall back to the defaults
// above, so Config{} describes the standard teaching dataset. Seed has no
// fallback: seed 0 is a valid seed and is used as-is.
type Config struct {
	Samples  int     // Number of (x, y) pairs (default: 100)
	Slope    float64 // Slope of the underlying line (default: 2.0)
	NoiseStd float64 // Standard deviation of the additive noise (default: 0.1)
	Seed     int64   // PRNG seed
}

// Dataset holds an ordered set of (x, y) samples.
//
// X and Y always have equal length; index k addresses one sample in both.
// The generation parameters are kept alongside the data so downstream
// consumers (experiment metadata, tests) can report them.
type Dataset struct {
	X []float64 // [samples]
	Y []float64 // [samples]

	slope    float64
	noiseStd float64
	seed     int64
}

// Generate draws cfg.Samples points from the generative model.
//
// Returns an error for a negative sample count or a negative noise standard
// deviation. The returned Dataset satisfies Len() == cfg.Samples and
// len(X) == len(Y).
func Generate(cfg Config) (*Dataset, error) {
	if cfg.Samples == 0 {
		cfg.Samples = DefaultSamples
	}
	if cfg.Slope == 0 {
		cfg.Slope = DefaultSlope
	}
	if cfg.NoiseStd == 0 {
		cfg.NoiseStd = DefaultNoiseStd
	}
	if cfg.Samples < 0 {
		return nil, fmt.Errorf("dataset: samples must be > 0, got %d", cfg.Samples)
	}
	if cfg.NoiseStd < 0 {
		return nil, fmt.Errorf("dataset: noise std must be >= 0, got %g", cfg.NoiseStd)
	}

	rng := rand.New(rand.NewSource(cfg.Seed))

	ds := &Dataset{
		X:        make([]float64, cfg.Samples),
		Y:        make([]float64, cfg.Samples),
		slope:    cfg.Slope,
		noiseStd: cfg.NoiseStd,
		seed:     cfg.Seed,
	}
	for k := range ds.X {
		x := 2*rng.Float64() - 1 // uniform in [-1, 1]
		ds.X[k] = x
		ds.Y[k] = cfg.Slope*x + rng.NormFloat64()*cfg.NoiseStd
	}
	return ds, nil
}

// Len returns the number of samples.
func (d *Dataset) Len() int { return len(d.X) }

// Sample returns the k-th (x, y) pair.
// Panics if k is out of range.
func (d *Dataset) Sample(k int) (x, y float64) { return d.X[k], d.Y[k] }

// Slope returns the slope of the generating line.
func (d *Dataset) Slope() float64 { return d.slope }

// NoiseStd returns the standard deviation of the additive noise.
func (d *Dataset) NoiseStd() float64 { return d.noiseStd }

// Seed returns the PRNG seed the data was drawn with.
func (d *Dataset) Seed() int64 { return d.seed }
