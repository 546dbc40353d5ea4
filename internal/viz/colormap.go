package viz

import "image/color"

// viridisAnchors samples the viridis colormap at nine evenly spaced
// positions. Intermediate values are linearly interpolated, which is
// close enough to the full table for a 100x100 heatmap.
var viridisAnchors = [][3]uint8{
	{68, 1, 84},
	{72, 40, 120},
	{62, 74, 137},
	{49, 104, 142},
	{38, 130, 142},
	{31, 158, 137},
	{53, 183, 121},
	{109, 205, 89},
	{253, 231, 37},
}

// viridis maps t in [0, 1] to a color. Values outside the range are
// clamped.
func viridis(t float64) color.NRGBA {
	if t <= 0 {
		a := viridisAnchors[0]
		return color.NRGBA{R: a[0], G: a[1], B: a[2], A: 255}
	}
	if t >= 1 {
		a := viridisAnchors[len(viridisAnchors)-1]
		return color.NRGBA{R: a[0], G: a[1], B: a[2], A: 255}
	}

	pos := t * float64(len(viridisAnchors)-1)
	lo := int(pos)
	frac := pos - float64(lo)
	a, b := viridisAnchors[lo], viridisAnchors[lo+1]

	lerp := func(x, y uint8) uint8 {
		return uint8(float64(x) + frac*(float64(y)-float64(x)) + 0.5)
	}
	return color.NRGBA{
		R: lerp(a[0], b[0]),
		G: lerp(a[1], b[1]),
		B: lerp(a[2], b[2]),
		A: 255,
	}
}
