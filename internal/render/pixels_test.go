package render

import (
	"image/color"
	"testing"
)

func TestFillScalarRGBA(t *testing.T) {
	cells := []float64{0, 0.5, 1}
	buf := make([]byte, 12)
	colorFor := func(v float64) color.RGBA {
		return color.RGBA{R: uint8(v * 255), G: 10, B: 20, A: 255}
	}

	fillScalarRGBA(buf, cells, colorFor)

	want := []byte{
		0, 10, 20, 255,
		127, 10, 20, 255,
		255, 10, 20, 255,
	}
	for i := range want {
		if buf[i] != want[i] {
			t.Fatalf("buf[%d] = %d, want %d", i, buf[i], want[i])
		}
	}
}
