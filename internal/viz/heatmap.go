package viz

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image"
	"image/png"
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/losslab-ml/losslab/internal/parallel"
)

// logEps keeps zero losses finite under the log display transform.
const logEps = 1e-12

// displayValue maps a raw loss to display space. Squared-error
// surfaces span several orders of magnitude, so panels are drawn in
// log10.
func displayValue(loss float64) float64 {
	return math.Log10(loss + logEps)
}

// surfaceRange returns the display-space range of a surface. The
// transform is monotonic, so the raw extrema carry over.
func surfaceRange(s *mat.Dense) (lo, hi float64) {
	return displayValue(mat.Min(s)), displayValue(mat.Max(s))
}

// renderHeatmap draws a loss surface as a viridis heatmap.
//
// Plot orientation: x axis is w1 (surface rows), y axis is w2 (surface
// columns) increasing upward, so pixel (px, py) shows the loss at
// (w1s[px], w2s[cols-1-py]). Each surface is normalized to its own
// display range; a flat surface maps to the middle of the colormap.
func renderHeatmap(s *mat.Dense) *image.NRGBA {
	rows, cols := s.Dims()
	lo, hi := surfaceRange(s)
	span := hi - lo

	// Pixels write to disjoint offsets, safe to rasterize in parallel.
	img := image.NewNRGBA(image.Rect(0, 0, rows, cols))
	parallel.ForGrid(rows, cols, func(px, py int) {
		v := displayValue(s.At(px, cols-1-py))
		t := 0.5
		if span > 0 {
			t = (v - lo) / span
		}
		img.SetNRGBA(px, py, viridis(t))
	}, parallel.DefaultConfig())
	return img
}

// heatmapDataURI encodes a surface heatmap as a PNG data URI for
// direct embedding in HTML and JSON payloads.
func heatmapDataURI(s *mat.Dense) (string, error) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, renderHeatmap(s)); err != nil {
		return "", fmt.Errorf("viz: encode heatmap: %w", err)
	}
	return "data:image/png;base64," + base64.StdEncoding.EncodeToString(buf.Bytes()), nil
}
