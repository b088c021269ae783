package sim

import "math"

// Gradient is the finite-difference slope of the landscape at one point.
// It is derived on demand and never persisted.
type Gradient struct {
	DX        float64 `json:"dx"`
	DY        float64 `json:"dy"`
	Magnitude float64 `json:"magnitude"`
}

// FieldSample is one gradient of the sparse vector-field overlay together
// with the lattice point it was sampled at.
type FieldSample struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	Gradient
}

// Contour holds the raw marching-squares edge crossings for one level
// threshold. Points come in segment pairs; consumers draw them pairwise
// rather than stitching closed polylines.
type Contour struct {
	Level  float64 `json:"level"`
	Points []Point `json:"points"`
}

// GradientAt estimates the landscape gradient at (x, y) by central
// differences. The sample point is clamped one cell in from the border so
// both neighbors exist. When noiseLevel > 0 each component is perturbed
// proportionally to its own magnitude, modeling a stochastic gradient
// estimate. ns may be nil when noiseLevel is zero.
func GradientAt(g *Grid, x, y, noiseLevel float64, ns NoiseSource) Gradient {
	col := clampInt(int(math.Round(x)), 1, g.Cols-2)
	row := clampInt(int(math.Round(y)), 1, g.Rows-2)

	dx := (g.At(row, col+1) - g.At(row, col-1)) / 2
	dy := (g.At(row+1, col) - g.At(row-1, col)) / 2
	if noiseLevel > 0 {
		dx += ns.StandardNormal() * noiseLevel * math.Abs(dx)
		dy += ns.StandardNormal() * noiseLevel * math.Abs(dy)
	}
	return Gradient{DX: dx, DY: dy, Magnitude: math.Hypot(dx, dy)}
}

// minFieldMagnitudeSq filters out visually insignificant vectors in flat
// regions of the field overlay.
const minFieldMagnitudeSq = 1e-4

// GradientField samples noise-free gradients on a regular lattice with the
// given spacing, in row-major scan order. Deterministic for a fixed grid.
func GradientField(g *Grid, spacing int) []FieldSample {
	if spacing <= 0 {
		spacing = 1
	}
	var samples []FieldSample
	for y := spacing; y < g.Rows-1; y += spacing {
		for x := spacing; x < g.Cols-1; x += spacing {
			grad := GradientAt(g, float64(x), float64(y), 0, nil)
			if grad.DX*grad.DX+grad.DY*grad.DY <= minFieldMagnitudeSq {
				continue
			}
			samples = append(samples, FieldSample{X: float64(x), Y: float64(y), Gradient: grad})
		}
	}
	return samples
}

// Contours extracts level-set crossings for `levels` equally spaced
// thresholds k/levels, k=1..levels. Every unit cell is scanned and each of
// its four edges emits a linearly interpolated crossing point when the
// threshold separates the edge endpoints. A value exactly equal to the
// threshold counts as above it.
func Contours(g *Grid, levels int) []Contour {
	if levels <= 0 {
		return nil
	}
	out := make([]Contour, 0, levels)
	for k := 1; k <= levels; k++ {
		threshold := float64(k) / float64(levels)
		c := Contour{Level: threshold}
		for row := 0; row < g.Rows-1; row++ {
			for col := 0; col < g.Cols-1; col++ {
				c.Points = appendCellCrossings(c.Points, g, row, col, threshold)
			}
		}
		out = append(out, c)
	}
	return out
}

// appendCellCrossings walks the four edges of the unit cell anchored at
// (row, col) in the order 0-1, 1-2, 2-3, 3-0 and appends each crossing.
// Corner 0 is the cell anchor, numbering proceeds clockwise.
func appendCellCrossings(points []Point, g *Grid, row, col int, threshold float64) []Point {
	x := float64(col)
	y := float64(row)
	corners := [4]struct {
		v float64
		p Point
	}{
		{g.At(row, col), Point{X: x, Y: y}},
		{g.At(row, col+1), Point{X: x + 1, Y: y}},
		{g.At(row+1, col+1), Point{X: x + 1, Y: y + 1}},
		{g.At(row+1, col), Point{X: x, Y: y + 1}},
	}
	for i := 0; i < 4; i++ {
		a := corners[i]
		b := corners[(i+1)%4]
		aAbove := a.v >= threshold
		bAbove := b.v >= threshold
		if aAbove == bAbove {
			continue
		}
		t := (threshold - a.v) / (b.v - a.v)
		points = append(points, Point{
			X: a.p.X + t*(b.p.X-a.p.X),
			Y: a.p.Y + t*(b.p.Y-a.p.Y),
		})
	}
	return points
}
