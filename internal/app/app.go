//go:build ebiten

package app

import (
	"strconv"

	"github.com/nudro/adversarial-mini-max-game/internal/core"
	"github.com/nudro/adversarial-mini-max-game/internal/render"
	"github.com/nudro/adversarial-mini-max-game/internal/sim"
	"github.com/nudro/adversarial-mini-max-game/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Game adapts a simulation world to the ebiten.Game interface. Steps are
// gated to the configured rate; frames that arrive early render the
// previous state rather than queueing extra steps.
type Game struct {
	world   *sim.World
	cfg     *Config
	painter *render.FieldPainter
	hud     *ui.HUD
	overlay *ui.Overlay
	gate    *core.RateGate

	speed    int
	paused   bool
	tickOnce bool
	lastGen  int
}

// New constructs a Game around the provided world.
func New(world *sim.World, cfg *Config) *Game {
	g := world.Grid()
	game := &Game{
		world:   world,
		cfg:     cfg,
		painter: render.NewFieldPainter(g.Cols, g.Rows),
		overlay: ui.NewOverlay(world, cfg.Scale),
		gate:    core.NewRateGate(cfg.Speed),
		speed:   cfg.Speed,
		lastGen: -1,
	}
	game.hud = ui.NewHUD(&hudTarget{game: game}, cfg.HUDWidth)
	return game
}

// Update handles per-frame input and advances the simulation when the rate
// gate admits a step.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.paused = !g.paused
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		g.tickOnce = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		// Rebuild the landscape from the advanced noise stream; a failure
		// leaves the current session running.
		_ = g.world.Regenerate(g.cfg.Width, g.cfg.Height)
	}

	g.overlay.Update()
	g.hud.Update(g.world.Grid().Cols * g.cfg.Scale)

	if (!g.paused && g.gate.Allow()) || g.tickOnce {
		g.world.Step()
		g.tickOnce = false
	}
	return nil
}

// Draw renders the heatmap, overlays, and HUD.
func (g *Game) Draw(screen *ebiten.Image) {
	grid := g.world.Grid()
	if gen := g.world.Generation(); gen != g.lastGen {
		g.painter.Fill(grid.Cells(), grid.Cols, grid.Rows, sim.ColorFor)
		g.lastGen = gen
	}
	g.painter.Draw(screen, g.cfg.Scale)
	g.overlay.Draw(screen)
	g.hud.Draw(screen, grid.Cols*g.cfg.Scale, grid.Rows*g.cfg.Scale)
}

// Layout returns the logical screen size: the scaled landscape plus the
// HUD panel.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	grid := g.world.Grid()
	return grid.Cols*g.cfg.Scale + g.cfg.HUDWidth, grid.Rows * g.cfg.Scale
}

// hudTarget extends the world's tunables with the app-owned speed setting
// so the HUD can adjust it alongside the strengths.
type hudTarget struct {
	game *Game
}

func (t *hudTarget) Parameters() core.ParameterSnapshot {
	snapshot := t.game.world.Parameters()
	snapshot.Groups = append(snapshot.Groups, core.ParameterGroup{
		Name: "Playback",
		Params: []core.Parameter{{
			Key:   "speed",
			Label: "Speed",
			Type:  core.ParamTypeInt,
			Value: strconv.Itoa(t.game.speed),
		}},
	})
	return snapshot
}

func (t *hudTarget) ParameterControls() []core.ParameterControl {
	controls := t.game.world.ParameterControls()
	return append(controls, core.ParameterControl{
		Key: "speed", Label: "Steps per second", Type: core.ParamTypeInt,
		Step: 5, Min: 5, Max: 60, HasMin: true, HasMax: true,
	})
}

func (t *hudTarget) SetIntParameter(key string, value int) bool {
	if key == "speed" {
		if value <= 0 {
			return false
		}
		t.game.speed = value
		t.game.gate.SetRate(value)
		return true
	}
	return t.game.world.SetIntParameter(key, value)
}
