// Package config loads and validates experiment configuration.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Optimizer names accepted in configuration.
const (
	OptimizerSGD  = "sgd"
	OptimizerAdam = "adam"
)

// Grid describes the weight-space grid the loss surfaces are sampled on.
type Grid struct {
	Resolution int     `yaml:"resolution"`
	Min        float64 `yaml:"min"`
	Max        float64 `yaml:"max"`
}

// Config captures the runtime knobs for an experiment run.
type Config struct {
	Samples  int     `yaml:"samples"`
	Seed     int64   `yaml:"seed"`
	Slope    float64 `yaml:"slope"`
	NoiseStd float64 `yaml:"noise_std"`

	Grid Grid `yaml:"grid"`

	InitW1       float64 `yaml:"init_w1"`
	InitW2       float64 `yaml:"init_w2"`
	Optimizer    string  `yaml:"optimizer"`
	LearningRate float64 `yaml:"learning_rate"`
	Momentum     float64 `yaml:"momentum"`
	LogEvery     int     `yaml:"log_every"`

	Addr string `yaml:"addr"`
	Out  string `yaml:"out"`
}

// Overrides captures CLI supplied values.
type Overrides struct {
	Samples      int
	Seed         int64
	Optimizer    string
	LearningRate float64
	Momentum     float64
	LogEvery     int
	Addr         string
	Out          string
}

// Default returns the teaching configuration: the linear dataset
// y = 2x + noise, a 100x100 grid over [-3, 3], and one SGD epoch from
// (w1, w2) = (1.2, -2.3) with learning rate 0.05.
func Default() *Config {
	return &Config{
		Samples:  100,
		Seed:     42,
		Slope:    2.0,
		NoiseStd: 0.1,
		Grid: Grid{
			Resolution: 100,
			Min:        -3.0,
			Max:        3.0,
		},
		InitW1:       1.2,
		InitW2:       -2.3,
		Optimizer:    OptimizerSGD,
		LearningRate: 0.05,
		Momentum:     0.0,
		LogEvery:     10,
		Addr:         ":8080",
		Out:          "losslab.html",
	}
}

// Load reads a YAML config file. Keys absent from the file keep their
// default values.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("open config: %w", err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// ApplyOverrides updates cfg using any non-zero override.
func (c *Config) ApplyOverrides(o Overrides) {
	if o.Samples > 0 {
		c.Samples = o.Samples
	}
	if o.Seed != 0 {
		c.Seed = o.Seed
	}
	if o.Optimizer != "" {
		c.Optimizer = o.Optimizer
	}
	if o.LearningRate > 0 {
		c.LearningRate = o.LearningRate
	}
	if o.Momentum > 0 {
		c.Momentum = o.Momentum
	}
	if o.LogEvery > 0 {
		c.LogEvery = o.LogEvery
	}
	if o.Addr != "" {
		c.Addr = o.Addr
	}
	if o.Out != "" {
		c.Out = o.Out
	}
}

// Validate verifies the config is runnable.
func (c *Config) Validate() error {
	if c == nil {
		return fmt.Errorf("config is nil")
	}
	if c.Samples <= 0 {
		return fmt.Errorf("samples must be > 0 (got %d)", c.Samples)
	}
	if c.NoiseStd < 0 {
		return fmt.Errorf("noise_std must be >= 0 (got %g)", c.NoiseStd)
	}
	if c.Grid.Resolution < 2 {
		return fmt.Errorf("grid.resolution must be >= 2 (got %d)", c.Grid.Resolution)
	}
	if c.Grid.Min >= c.Grid.Max {
		return fmt.Errorf("grid range [%g, %g] is empty", c.Grid.Min, c.Grid.Max)
	}
	if c.Optimizer != OptimizerSGD && c.Optimizer != OptimizerAdam {
		return fmt.Errorf("optimizer must be %q or %q (got %q)", OptimizerSGD, OptimizerAdam, c.Optimizer)
	}
	if c.LearningRate <= 0 {
		return fmt.Errorf("learning_rate must be > 0 (got %g)", c.LearningRate)
	}
	if c.Momentum < 0 || c.Momentum >= 1 {
		return fmt.Errorf("momentum must be in [0, 1) (got %g)", c.Momentum)
	}
	if c.LogEvery < 0 {
		return fmt.Errorf("log_every must be >= 0 (got %d)", c.LogEvery)
	}
	return nil
}
