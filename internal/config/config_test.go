package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestDefault(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())

	assert.Equal(t, 100, cfg.Samples)
	assert.Equal(t, int64(42), cfg.Seed)
	assert.Equal(t, 2.0, cfg.Slope)
	assert.Equal(t, 0.1, cfg.NoiseStd)
	assert.Equal(t, 100, cfg.Grid.Resolution)
	assert.Equal(t, -3.0, cfg.Grid.Min)
	assert.Equal(t, 3.0, cfg.Grid.Max)
	assert.Equal(t, 1.2, cfg.InitW1)
	assert.Equal(t, -2.3, cfg.InitW2)
	assert.Equal(t, OptimizerSGD, cfg.Optimizer)
	assert.Equal(t, 0.05, cfg.LearningRate)
}

func TestLoad(t *testing.T) {
	path := writeConfig(t, `
samples: 50
seed: 7
slope: -1.5
noise_std: 0.05
grid:
  resolution: 64
  min: -2
  max: 2
init_w1: 0.5
init_w2: 0.5
optimizer: adam
learning_rate: 0.01
momentum: 0.9
log_every: 5
addr: ":9000"
out: "run.html"
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 50, cfg.Samples)
	assert.Equal(t, int64(7), cfg.Seed)
	assert.Equal(t, -1.5, cfg.Slope)
	assert.Equal(t, 0.05, cfg.NoiseStd)
	assert.Equal(t, 64, cfg.Grid.Resolution)
	assert.Equal(t, -2.0, cfg.Grid.Min)
	assert.Equal(t, 2.0, cfg.Grid.Max)
	assert.Equal(t, OptimizerAdam, cfg.Optimizer)
	assert.Equal(t, 0.01, cfg.LearningRate)
	assert.Equal(t, 0.9, cfg.Momentum)
	assert.Equal(t, 5, cfg.LogEvery)
	assert.Equal(t, ":9000", cfg.Addr)
	assert.Equal(t, "run.html", cfg.Out)
}

// TestLoad_PartialKeepsDefaults checks that keys absent from the file
// keep their default values.
func TestLoad_PartialKeepsDefaults(t *testing.T) {
	path := writeConfig(t, "samples: 25\nlearning_rate: 0.1\n")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 25, cfg.Samples)
	assert.Equal(t, 0.1, cfg.LearningRate)

	def := Default()
	assert.Equal(t, def.Seed, cfg.Seed)
	assert.Equal(t, def.Grid, cfg.Grid)
	assert.Equal(t, def.InitW1, cfg.InitW1)
	assert.Equal(t, def.InitW2, cfg.InitW2)
	assert.Equal(t, def.Out, cfg.Out)
}

func TestLoad_Errors(t *testing.T) {
	t.Run("missing file", func(t *testing.T) {
		_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
		assert.Error(t, err)
	})

	t.Run("malformed yaml", func(t *testing.T) {
		_, err := Load(writeConfig(t, "samples: [not a number\n"))
		assert.Error(t, err)
	})

	t.Run("invalid values", func(t *testing.T) {
		_, err := Load(writeConfig(t, "samples: -5\n"))
		assert.Error(t, err)
	})
}

func TestApplyOverrides(t *testing.T) {
	cfg := Default()
	cfg.ApplyOverrides(Overrides{
		Samples:      10,
		Seed:         99,
		Optimizer:    OptimizerAdam,
		LearningRate: 0.2,
		Out:          "custom.html",
	})

	assert.Equal(t, 10, cfg.Samples)
	assert.Equal(t, int64(99), cfg.Seed)
	assert.Equal(t, OptimizerAdam, cfg.Optimizer)
	assert.Equal(t, 0.2, cfg.LearningRate)
	assert.Equal(t, "custom.html", cfg.Out)

	// Zero overrides leave the config untouched.
	assert.Equal(t, Default().Momentum, cfg.Momentum)
	assert.Equal(t, Default().Addr, cfg.Addr)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"zero samples", func(c *Config) { c.Samples = 0 }},
		{"negative noise", func(c *Config) { c.NoiseStd = -0.1 }},
		{"tiny grid", func(c *Config) { c.Grid.Resolution = 1 }},
		{"empty grid range", func(c *Config) { c.Grid.Min, c.Grid.Max = 3, -3 }},
		{"unknown optimizer", func(c *Config) { c.Optimizer = "lbfgs" }},
		{"zero learning rate", func(c *Config) { c.LearningRate = 0 }},
		{"momentum too large", func(c *Config) { c.Momentum = 1.0 }},
		{"negative log every", func(c *Config) { c.LogEvery = -1 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			assert.Error(t, cfg.Validate())
		})
	}
}
