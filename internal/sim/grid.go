package sim

// Grid stores the static loss landscape as row-major float64 cells in [0,1].
// A grid is never mutated after construction; regeneration replaces it
// wholesale so readers never observe a half-built field.
type Grid struct {
	Rows, Cols int
	data       []float64
}

// NewGrid allocates a zeroed grid with the given dimensions.
func NewGrid(rows, cols int) *Grid {
	if rows <= 0 {
		rows = 1
	}
	if cols <= 0 {
		cols = 1
	}
	return &Grid{Rows: rows, Cols: cols, data: make([]float64, rows*cols)}
}

// Cells exposes the backing slice in row-major order. Callers treat it as
// read-only; the renderer reads it directly to avoid a copy per frame.
func (g *Grid) Cells() []float64 { return g.data }

// At returns the cell value at (row, col). Out-of-range indices are clamped
// to the nearest valid cell.
func (g *Grid) At(row, col int) float64 {
	return g.data[g.index(row, col)]
}

func (g *Grid) index(row, col int) int {
	row = clampInt(row, 0, g.Rows-1)
	col = clampInt(col, 0, g.Cols-1)
	return row*g.Cols + col
}

func (g *Grid) set(row, col int, v float64) {
	g.data[g.index(row, col)] = v
}

// Point is a real-valued position in grid-cell units: X maps to columns,
// Y to rows.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// ClampToGrid bounds p to [0, cols-1] x [0, rows-1].
func (p Point) ClampToGrid(g *Grid) Point {
	return Point{
		X: clamp(p.X, 0, float64(g.Cols-1)),
		Y: clamp(p.Y, 0, float64(g.Rows-1)),
	}
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func clamp01(v float64) float64 { return clamp(v, 0, 1) }

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
