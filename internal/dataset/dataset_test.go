package dataset

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/stat"
)

func TestGenerate_Defaults(t *testing.T) {
	ds, err := Generate(Config{Seed: 42})
	require.NoError(t, err)

	assert.Equal(t, DefaultSamples, ds.Len())
	assert.Len(t, ds.X, DefaultSamples)
	assert.Len(t, ds.Y, DefaultSamples)
	assert.Equal(t, DefaultSlope, ds.Slope())
	assert.Equal(t, DefaultNoiseStd, ds.NoiseStd())
	assert.Equal(t, int64(42), ds.Seed())
}

func TestGenerate_Reproducible(t *testing.T) {
	a, err := Generate(Config{Samples: 50, Seed: 7})
	require.NoError(t, err)
	b, err := Generate(Config{Samples: 50, Seed: 7})
	require.NoError(t, err)

	assert.Equal(t, a.X, b.X, "same seed must produce identical x")
	assert.Equal(t, a.Y, b.Y, "same seed must produce identical y")

	c, err := Generate(Config{Samples: 50, Seed: 8})
	require.NoError(t, err)
	assert.NotEqual(t, a.X, c.X, "different seeds must produce different draws")
}

func TestGenerate_InputRange(t *testing.T) {
	ds, err := Generate(Config{Samples: 1000, Seed: 3})
	require.NoError(t, err)

	for k, x := range ds.X {
		if x < -1 || x > 1 {
			t.Fatalf("x[%d] = %v outside [-1, 1]", k, x)
		}
	}
}

// TestGenerate_NoiseStatistics checks the generative model: the residual
// y - slope*x must look like Normal(0, noiseStd) over many samples.
func TestGenerate_NoiseStatistics(t *testing.T) {
	const n = 20000
	ds, err := Generate(Config{Samples: n, Seed: 11})
	require.NoError(t, err)

	residuals := make([]float64, n)
	for k := range residuals {
		residuals[k] = ds.Y[k] - ds.Slope()*ds.X[k]
	}

	mean := stat.Mean(residuals, nil)
	std := stat.StdDev(residuals, nil)

	assert.InDelta(t, 0.0, mean, 5e-3, "residual mean should be ~0")
	assert.InDelta(t, DefaultNoiseStd, std, 5e-3, "residual std should be ~noise std")
}

func TestGenerate_Validation(t *testing.T) {
	tests := []struct {
		name string
		cfg  Config
	}{
		{name: "negative samples", cfg: Config{Samples: -5}},
		{name: "negative noise", cfg: Config{NoiseStd: -0.1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Generate(tt.cfg)
			assert.Error(t, err)
		})
	}
}

func TestSample(t *testing.T) {
	ds, err := Generate(Config{Samples: 10, Seed: 1})
	require.NoError(t, err)

	x, y := ds.Sample(4)
	assert.Equal(t, ds.X[4], x)
	assert.Equal(t, ds.Y[4], y)

	assert.Panics(t, func() { ds.Sample(10) })
}

func TestGenerate_CustomModel(t *testing.T) {
	ds, err := Generate(Config{Samples: 5000, Slope: -1.5, NoiseStd: 0.01, Seed: 9})
	require.NoError(t, err)

	// With tiny noise the data should hug the line y = -1.5x.
	for k := range ds.X {
		if math.Abs(ds.Y[k]-(-1.5)*ds.X[k]) > 0.1 {
			t.Fatalf("sample %d too far from the generating line", k)
		}
	}
}
