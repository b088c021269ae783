//go:build ebiten

package ui

import (
	"image/color"
	"math"

	"github.com/nudro/adversarial-mini-max-game/internal/sim"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Overlay draws the analysis layers on top of the landscape heatmap:
// contour segments, the sparse gradient field, agent markers with trails,
// and the loss strip chart.
type Overlay struct {
	world *sim.World
	scale int

	showContours bool
	showField    bool
	showChart    bool
}

var (
	defenderColor  = color.RGBA{R: 70, G: 190, B: 255, A: 255}
	adversaryColor = color.RGBA{R: 255, G: 90, B: 70, A: 255}
	contourColor   = color.RGBA{R: 255, G: 255, B: 255, A: 70}
	arrowColor     = color.RGBA{R: 240, G: 240, B: 240, A: 130}
)

// NewOverlay constructs an overlay bound to one world. Contours start
// enabled; the other layers are toggled at runtime.
func NewOverlay(world *sim.World, scale int) *Overlay {
	return &Overlay{world: world, scale: scale, showContours: true, showChart: true}
}

// Update handles the overlay toggle keys.
func (o *Overlay) Update() {
	if inpututil.IsKeyJustPressed(ebiten.KeyDigit1) {
		o.showContours = !o.showContours
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyDigit2) {
		o.showField = !o.showField
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyDigit3) {
		o.showChart = !o.showChart
	}
}

// Draw renders the enabled layers onto the provided screen.
func (o *Overlay) Draw(screen *ebiten.Image) {
	scale := float64(o.scale)
	if scale <= 0 {
		scale = 1
	}

	if o.showContours {
		o.drawContours(screen, scale)
	}
	if o.showField {
		o.drawField(screen, scale)
	}

	st := o.world.Snapshot()
	o.drawTrail(screen, st.DefenderHistory, defenderColor, scale)
	o.drawTrail(screen, st.AdversaryHistory, adversaryColor, scale)
	o.drawAgent(screen, st.Defender, defenderColor, scale)
	o.drawAgent(screen, st.Adversary, adversaryColor, scale)

	if o.showChart {
		o.drawLossChart(screen, st.LossHistory)
	}
}

// drawContours renders each level's crossing points as pairwise segments.
func (o *Overlay) drawContours(screen *ebiten.Image, scale float64) {
	for _, c := range o.world.Contours() {
		pts := c.Points
		for i := 0; i+1 < len(pts); i += 2 {
			vector.StrokeLine(screen,
				float32(pts[i].X*scale), float32(pts[i].Y*scale),
				float32(pts[i+1].X*scale), float32(pts[i+1].Y*scale),
				1, contourColor, false)
		}
	}
}

// drawField renders the sparse gradient field as short arrows pointing
// uphill, scaled by magnitude.
func (o *Overlay) drawField(screen *ebiten.Image, scale float64) {
	const (
		arrowScale = 18.0
		headAngle  = math.Pi / 6
	)
	for _, s := range o.world.FieldVectors() {
		if s.Magnitude == 0 {
			continue
		}
		length := math.Min(s.Magnitude*arrowScale, 2.5) * scale
		nx := s.DX / s.Magnitude
		ny := s.DY / s.Magnitude
		x0 := s.X * scale
		y0 := s.Y * scale
		x1 := x0 + nx*length
		y1 := y0 + ny*length
		vector.StrokeLine(screen, float32(x0), float32(y0), float32(x1), float32(y1), 1, arrowColor, true)

		head := length * 0.35
		angle := math.Atan2(ny, nx)
		for _, da := range []float64{headAngle, -headAngle} {
			hx := x1 - math.Cos(angle+da)*head
			hy := y1 - math.Sin(angle+da)*head
			vector.StrokeLine(screen, float32(x1), float32(y1), float32(hx), float32(hy), 1, arrowColor, true)
		}
	}
}

// drawTrail fades older history entries out toward transparency.
func (o *Overlay) drawTrail(screen *ebiten.Image, trail []sim.Point, col color.RGBA, scale float64) {
	n := len(trail)
	for i := 1; i < n; i++ {
		t := float64(i) / float64(n)
		faded := col
		faded.A = uint8(30 + 150*t)
		vector.StrokeLine(screen,
			float32(trail[i-1].X*scale), float32(trail[i-1].Y*scale),
			float32(trail[i].X*scale), float32(trail[i].Y*scale),
			float32(1+t), faded, true)
	}
}

func (o *Overlay) drawAgent(screen *ebiten.Image, p sim.Point, col color.RGBA, scale float64) {
	x := float32(p.X * scale)
	y := float32(p.Y * scale)
	r := float32(math.Max(3, scale*0.8))
	vector.DrawFilledCircle(screen, x, y, r+1.5, color.RGBA{A: 180}, true)
	vector.DrawFilledCircle(screen, x, y, r, col, true)
}

// drawLossChart plots both loss histories in a strip anchored to the
// bottom-left corner of the view.
func (o *Overlay) drawLossChart(screen *ebiten.Image, history sim.LossHistory) {
	const (
		chartW  = 220.0
		chartH  = 80.0
		margin  = 10.0
		padding = 4.0
	)
	bounds := screen.Bounds()
	x0 := margin
	y0 := float64(bounds.Dy()) - margin - chartH

	vector.DrawFilledRect(screen, float32(x0), float32(y0), chartW, chartH,
		color.RGBA{R: 10, G: 10, B: 14, A: 190}, false)

	o.drawLossLine(screen, history.Defender, defenderColor, x0+padding, y0+padding, chartW-2*padding, chartH-2*padding)
	o.drawLossLine(screen, history.Adversary, adversaryColor, x0+padding, y0+padding, chartW-2*padding, chartH-2*padding)
}

func (o *Overlay) drawLossLine(screen *ebiten.Image, losses []float64, col color.RGBA, x, y, w, h float64) {
	n := len(losses)
	if n < 2 {
		return
	}
	step := w / float64(n-1)
	for i := 1; i < n; i++ {
		x0 := x + float64(i-1)*step
		x1 := x + float64(i)*step
		// Loss 1 sits at the top of the strip.
		y0 := y + h*(1-losses[i-1])
		y1 := y + h*(1-losses[i])
		vector.StrokeLine(screen, float32(x0), float32(y0), float32(x1), float32(y1), 1, col, true)
	}
}
