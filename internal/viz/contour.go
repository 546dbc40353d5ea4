package viz

import (
	"math"

	"gonum.org/v1/gonum/mat"
)

// contourCount is the number of interior iso-levels drawn per panel.
const contourCount = 9

// ContourLevel holds the line segments of one iso-level of a surface.
//
// Levels live in display space (log10 loss). Segment endpoints are
// weight coordinates [x1, y1, x2, y2] with x = w1 and y = w2, rounded
// to 1e-4 to keep payloads small.
type ContourLevel struct {
	Value    float64      `json:"value"`
	Segments [][4]float64 `json:"segments"`
}

// contourLevels traces count evenly spaced interior iso-levels of the
// surface in display space using marching squares. A flat surface has
// no levels to trace and yields an empty slice.
func contourLevels(s *mat.Dense, w1s, w2s []float64, count int) []ContourLevel {
	lo, hi := surfaceRange(s)
	if hi-lo == 0 {
		return []ContourLevel{}
	}

	rows, cols := s.Dims()
	vals := make([][]float64, rows)
	for i := range vals {
		vals[i] = make([]float64, cols)
		for j := 0; j < cols; j++ {
			vals[i][j] = displayValue(s.At(i, j))
		}
	}

	levels := make([]ContourLevel, 0, count)
	for m := 1; m <= count; m++ {
		lvl := lo + float64(m)*(hi-lo)/float64(count+1)
		levels = append(levels, ContourLevel{
			Value:    roundCoord(lvl),
			Segments: traceLevel(vals, w1s, w2s, lvl),
		})
	}
	return levels
}

// traceLevel runs marching squares over every grid cell for one level.
func traceLevel(vals [][]float64, w1s, w2s []float64, lvl float64) [][4]float64 {
	segments := [][4]float64{}

	for i := 0; i < len(w1s)-1; i++ {
		for j := 0; j < len(w2s)-1; j++ {
			// Cell corners in plot coordinates (x = w1, y = w2):
			// bl = (i, j), br = (i+1, j), tr = (i+1, j+1), tl = (i, j+1).
			bl, br := vals[i][j], vals[i+1][j]
			tr, tl := vals[i+1][j+1], vals[i][j+1]

			idx := 0
			if bl >= lvl {
				idx |= 1
			}
			if br >= lvl {
				idx |= 2
			}
			if tr >= lvl {
				idx |= 4
			}
			if tl >= lvl {
				idx |= 8
			}
			if idx == 0 || idx == 15 {
				continue
			}

			bottom := func() [2]float64 {
				return [2]float64{crossing(w1s[i], w1s[i+1], bl, br, lvl), w2s[j]}
			}
			top := func() [2]float64 {
				return [2]float64{crossing(w1s[i], w1s[i+1], tl, tr, lvl), w2s[j+1]}
			}
			left := func() [2]float64 {
				return [2]float64{w1s[i], crossing(w2s[j], w2s[j+1], bl, tl, lvl)}
			}
			right := func() [2]float64 {
				return [2]float64{w1s[i+1], crossing(w2s[j], w2s[j+1], br, tr, lvl)}
			}

			add := func(a, b [2]float64) {
				segments = append(segments, [4]float64{
					roundCoord(a[0]), roundCoord(a[1]),
					roundCoord(b[0]), roundCoord(b[1]),
				})
			}

			switch idx {
			case 1, 14:
				add(left(), bottom())
			case 2, 13:
				add(bottom(), right())
			case 3, 12:
				add(left(), right())
			case 4, 11:
				add(right(), top())
			case 6, 9:
				add(bottom(), top())
			case 7, 8:
				add(left(), top())
			case 5:
				// Saddle: bl and tr are above the level. The cell
				// center decides whether the two blobs connect.
				if (bl+br+tr+tl)/4 >= lvl {
					add(left(), top())
					add(bottom(), right())
				} else {
					add(left(), bottom())
					add(right(), top())
				}
			case 10:
				// Saddle: br and tl are above the level.
				if (bl+br+tr+tl)/4 >= lvl {
					add(bottom(), left())
					add(right(), top())
				} else {
					add(bottom(), right())
					add(left(), top())
				}
			}
		}
	}
	return segments
}

// crossing interpolates where the level crosses an edge with endpoint
// coordinates ca, cb and values va, vb.
func crossing(ca, cb, va, vb, lvl float64) float64 {
	if math.Abs(vb-va) < 1e-300 {
		return (ca + cb) / 2
	}
	t := (lvl - va) / (vb - va)
	if t < 0 {
		t = 0
	}
	if t > 1 {
		t = 1
	}
	return ca + t*(cb-ca)
}

func roundCoord(v float64) float64 {
	return math.Round(v*1e4) / 1e4
}
