package sim

import (
	"errors"
	"math"
)

// NoiseSource supplies the random deviates the engine consumes. One source
// drives one world, so replaying a seed replays the whole run.
type NoiseSource interface {
	// StandardNormal returns one N(0,1) deviate.
	StandardNormal() float64
	// Uniform returns a deviate uniformly distributed in [0, 1).
	Uniform() float64
}

// ErrInvalidDimension reports a requested landscape too small to smooth.
var ErrInvalidDimension = errors.New("landscape: grid must be at least 3x3 cells")

// gaussianPeak is a radial bump in grid-fraction coordinates, so the
// landscape shape is independent of canvas resolution.
type gaussianPeak struct {
	cx, cy float64
	height float64
	spread float64
}

// saddleSource is a hyperbolic paraboloid contribution, again in
// grid-fraction coordinates.
type saddleSource struct {
	cx, cy   float64
	strength float64
	spreadX  float64
	spreadY  float64
}

var landscapePeaks = [5]gaussianPeak{
	{cx: 0.25, cy: 0.30, height: 0.85, spread: 0.16},
	{cx: 0.70, cy: 0.20, height: 0.65, spread: 0.12},
	{cx: 0.80, cy: 0.75, height: 0.90, spread: 0.18},
	{cx: 0.40, cy: 0.70, height: 0.55, spread: 0.10},
	{cx: 0.55, cy: 0.45, height: 0.45, spread: 0.22},
}

var landscapeSaddles = [2]saddleSource{
	{cx: 0.50, cy: 0.50, strength: 0.60, spreadX: 0.35, spreadY: 0.30},
	{cx: 0.20, cy: 0.80, strength: 0.40, spreadX: 0.25, spreadY: 0.40},
}

const (
	saddleWeight       = 0.2
	gaussianNoiseScale = 0.08
	uniformNoiseScale  = 0.02
	smoothTemperature  = 0.2
)

// GenerateLandscape synthesizes the static loss surface for a canvas of
// width x height pixels at the given cell resolution. The surface is a
// superposition of fixed peaks and saddles plus stochastic perturbation,
// clamped to [0,1] per cell and relaxed by smoothIters smoothing passes.
func GenerateLandscape(width, height, resolution, smoothIters int, ns NoiseSource) (*Grid, error) {
	if resolution <= 0 {
		resolution = 1
	}
	cols := width / resolution
	rows := height / resolution
	if cols < 3 || rows < 3 {
		return nil, ErrInvalidDimension
	}

	g := NewGrid(rows, cols)
	normSq := float64(cols*cols + rows*rows)
	for row := 0; row < rows; row++ {
		for col := 0; col < cols; col++ {
			v := 0.0
			for _, p := range landscapePeaks {
				dx := float64(col) - p.cx*float64(cols)
				dy := float64(row) - p.cy*float64(rows)
				distSq := (dx*dx + dy*dy) / normSq
				v += p.height * math.Exp(-distSq/(2*p.spread*p.spread))
			}
			for _, s := range landscapeSaddles {
				dx := float64(col)/float64(cols) - s.cx
				dy := float64(row)/float64(rows) - s.cy
				sx := dx / s.spreadX
				sy := dy / s.spreadY
				v += saddleWeight * s.strength * (sx*sx - sy*sy)
			}
			v += gaussianNoiseScale * ns.StandardNormal()
			v += uniformNoiseScale * ns.Uniform()
			g.set(row, col, clamp01(v))
		}
	}

	for i := 0; i < smoothIters; i++ {
		g = smoothPass(g)
	}
	return g, nil
}

// smoothPass applies one Gibbs-style relaxation sweep over the interior
// cells. All reads come from the pre-pass grid and writes go to a fresh
// buffer, so traversal order cannot affect the result. The outermost ring
// is copied through untouched.
func smoothPass(src *Grid) *Grid {
	dst := NewGrid(src.Rows, src.Cols)
	copy(dst.data, src.data)
	for row := 1; row < src.Rows-1; row++ {
		for col := 1; col < src.Cols-1; col++ {
			cell := src.At(row, col)
			neighborAvg := (src.At(row-1, col) + src.At(row+1, col) +
				src.At(row, col-1) + src.At(row, col+1)) / 4
			weight := math.Exp(-math.Abs(cell-neighborAvg) / smoothTemperature)
			dst.set(row, col, weight*neighborAvg+(1-weight)*cell)
		}
	}
	return dst
}
