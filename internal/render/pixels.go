package render

import "image/color"

// fillScalarRGBA maps scalar cells through colorFor into RGBA pixels in buf.
// Cells and buf are row-major; buf must hold 4 bytes per cell.
func fillScalarRGBA(buf []byte, cells []float64, colorFor func(float64) color.RGBA) {
	for i, v := range cells {
		base := i * 4
		col := colorFor(v)
		buf[base+0] = col.R
		buf[base+1] = col.G
		buf[base+2] = col.B
		buf[base+3] = col.A
	}
}
