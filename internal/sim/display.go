package sim

import (
	"image/color"
	"math"
)

// heatStops are the four fixed color stops of the landscape heatmap,
// low loss to high: cold blue, teal, amber, crimson.
var heatStops = [4]color.RGBA{
	{R: 30, G: 60, B: 140, A: 255},
	{R: 40, G: 170, B: 160, A: 255},
	{R: 235, G: 170, B: 60, A: 255},
	{R: 200, G: 40, B: 50, A: 255},
}

// ColorFor maps a scalar in [0,1] to a display color by channel-wise linear
// interpolation across the four fixed stops. Pure and deterministic; values
// outside [0,1] are clamped.
func ColorFor(value float64) color.RGBA {
	position := clamp01(value) * 3
	index := clampInt(int(position), 0, 2)
	frac := position - float64(index)
	return lerpRGBA(heatStops[index], heatStops[index+1], frac)
}

func lerpRGBA(a, b color.RGBA, t float64) color.RGBA {
	return color.RGBA{
		R: lerpComponent(a.R, b.R, t),
		G: lerpComponent(a.G, b.G, t),
		B: lerpComponent(a.B, b.B, t),
		A: lerpComponent(a.A, b.A, t),
	}
}

func lerpComponent(a, b uint8, t float64) uint8 {
	return uint8(math.Round(float64(a) + (float64(b)-float64(a))*t))
}
