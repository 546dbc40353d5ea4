package landscape

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/losslab-ml/losslab/internal/dataset"
)

func TestBuild_Dimensions(t *testing.T) {
	ds, err := dataset.Generate(dataset.Config{Samples: 7, Seed: 1})
	require.NoError(t, err)

	g, err := Build(ds, GridConfig{Resolution: 25, Min: -3, Max: 3})
	require.NoError(t, err)

	assert.Equal(t, 7, g.Samples())
	assert.Equal(t, 25, g.Resolution())

	w1s, w2s := g.Axes()
	assert.Len(t, w1s, 25)
	assert.Len(t, w2s, 25)
	assert.Equal(t, -3.0, w1s[0])
	assert.Equal(t, 3.0, w1s[len(w1s)-1])

	r, c := g.MeanSurface().Dims()
	assert.Equal(t, 25, r)
	assert.Equal(t, 25, c)

	for k := 0; k < g.Samples(); k++ {
		r, c := g.SampleSurface(k).Dims()
		assert.Equal(t, 25, r)
		assert.Equal(t, 25, c)
	}
}

func TestBuild_Defaults(t *testing.T) {
	ds, err := dataset.Generate(dataset.Config{Samples: 3, Seed: 1})
	require.NoError(t, err)

	g, err := Build(ds, GridConfig{})
	require.NoError(t, err)

	assert.Equal(t, DefaultResolution, g.Resolution())
	min, max := g.Bounds()
	assert.Equal(t, DefaultMin, min)
	assert.Equal(t, DefaultMax, max)
}

// TestBuild_ClosedForm checks grid cells against hand-computed losses.
func TestBuild_ClosedForm(t *testing.T) {
	// Single sample (x=1, y=0) on a 3x3 grid over [-1, 1]:
	// axes are [-1, 0, 1] and loss(i,j) = (w1s[i] * relu(w2s[j]))².
	ds := &dataset.Dataset{X: []float64{1}, Y: []float64{0}}

	g, err := Build(ds, GridConfig{Resolution: 3, Min: -1, Max: 1})
	require.NoError(t, err)

	w1s, w2s := g.Axes()
	assert.Equal(t, []float64{-1, 0, 1}, w1s)
	assert.Equal(t, []float64{-1, 0, 1}, w2s)

	// Columns j=0 (w2=-1) and j=1 (w2=0) are inactive: loss 0 everywhere.
	for i := 0; i < 3; i++ {
		assert.Equal(t, 0.0, g.At(0, i, 0))
		assert.Equal(t, 0.0, g.At(0, i, 1))
	}

	// Column j=2 (w2=1) is active: loss = w1².
	assert.Equal(t, 1.0, g.At(0, 0, 2)) // w1=-1
	assert.Equal(t, 0.0, g.At(0, 1, 2)) // w1=0
	assert.Equal(t, 1.0, g.At(0, 2, 2)) // w1=1
}

func TestBuild_MeanSurface(t *testing.T) {
	ds := &dataset.Dataset{X: []float64{0.5, -0.8}, Y: []float64{1.0, -1.6}}

	g, err := Build(ds, GridConfig{Resolution: 10, Min: -3, Max: 3})
	require.NoError(t, err)

	// Mean surface is the elementwise average of the per-sample surfaces.
	for i := 0; i < 10; i++ {
		for j := 0; j < 10; j++ {
			want := (g.At(0, i, j) + g.At(1, i, j)) / 2
			assert.InDelta(t, want, g.MeanSurface().At(i, j), 1e-12)
		}
	}
}

func TestBuild_NonNegative(t *testing.T) {
	ds, err := dataset.Generate(dataset.Config{Samples: 5, Seed: 3})
	require.NoError(t, err)

	g, err := Build(ds, GridConfig{Resolution: 20, Min: -3, Max: 3})
	require.NoError(t, err)

	for k := 0; k < g.Samples(); k++ {
		s := g.SampleSurface(k)
		for i := 0; i < 20; i++ {
			for j := 0; j < 20; j++ {
				assert.GreaterOrEqual(t, s.At(i, j), 0.0)
			}
		}
	}
}

func TestMeshes(t *testing.T) {
	ds := &dataset.Dataset{X: []float64{1}, Y: []float64{0}}

	g, err := Build(ds, GridConfig{Resolution: 4, Min: -3, Max: 3})
	require.NoError(t, err)

	w1s, w2s := g.Axes()
	m1, m2 := g.Meshes()
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			assert.Equal(t, w1s[i], m1.At(i, j))
			assert.Equal(t, w2s[j], m2.At(i, j))
		}
	}
}

func TestBuild_Validation(t *testing.T) {
	ds, err := dataset.Generate(dataset.Config{Samples: 2, Seed: 1})
	require.NoError(t, err)

	tests := []struct {
		name string
		ds   *dataset.Dataset
		cfg  GridConfig
	}{
		{"nil dataset", nil, GridConfig{}},
		{"empty dataset", &dataset.Dataset{}, GridConfig{}},
		{"mismatched lengths", &dataset.Dataset{X: []float64{0.5, -0.5}, Y: []float64{1.0}}, GridConfig{Resolution: 4, Min: -3, Max: 3}},
		{"resolution too small", ds, GridConfig{Resolution: 1, Min: -3, Max: 3}},
		{"inverted range", ds, GridConfig{Resolution: 10, Min: 3, Max: -3}},
		{"degenerate range", ds, GridConfig{Resolution: 10, Min: 2, Max: 2}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Build(tt.ds, tt.cfg)
			assert.Error(t, err)
		})
	}
}
