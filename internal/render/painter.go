//go:build ebiten

package render

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
)

// FieldPainter owns the RGBA image for the landscape heatmap. The pixel
// buffer is refilled only when the grid changes; drawing reuses the cached
// image every frame.
type FieldPainter struct {
	w, h int
	img  *ebiten.Image
	buf  []byte
}

// NewFieldPainter allocates a painter for a grid of w*h cells.
func NewFieldPainter(w, h int) *FieldPainter {
	fp := &FieldPainter{w: w, h: h, buf: make([]byte, 4*w*h)}
	fp.img = ebiten.NewImage(w, h)
	return fp
}

// Fill rebuilds the heatmap pixels from the given cells, resizing the
// backing image if the grid dimensions changed.
func (fp *FieldPainter) Fill(cells []float64, w, h int, colorFor func(float64) color.RGBA) {
	if len(cells) != w*h {
		return
	}
	if w != fp.w || h != fp.h {
		fp.w, fp.h = w, h
		fp.buf = make([]byte, 4*w*h)
		fp.img = ebiten.NewImage(w, h)
	}
	fillScalarRGBA(fp.buf, cells, colorFor)
	fp.img.ReplacePixels(fp.buf)
}

// Draw blits the cached heatmap scaled up to screen pixels.
func (fp *FieldPainter) Draw(dst *ebiten.Image, scale int) {
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(scale), float64(scale))
	dst.DrawImage(fp.img, op)
}

// Size returns the dimensions of the underlying image.
func (fp *FieldPainter) Size() (int, int) { return fp.w, fp.h }
