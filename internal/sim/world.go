package sim

import (
	"github.com/nudro/adversarial-mini-max-game/pkg/noise"
)

// StepStats counts the rare dynamics events observed since the last
// regeneration, for the headless tooling.
type StepStats struct {
	BudgetClamps  int
	TargetedJumps int
}

// World owns one simulation session: the landscape, both agents, their
// histories, and the derived overlays. A World is not safe for concurrent
// use; confine it to one goroutine.
type World struct {
	cfg   Config
	noise NoiseSource

	grid  *Grid
	state State
	stats StepStats

	// Overlay caches, recomputed only when the grid changes.
	contours []Contour
	field    []FieldSample

	generation int
}

// NewWorld builds a world from cfg, generating its landscape and seeding
// the agents in opposing quarters of the board.
func NewWorld(cfg Config) (*World, error) {
	return newWorld(cfg, noise.NewSource(cfg.Seed))
}

func newWorld(cfg Config, ns NoiseSource) (*World, error) {
	w := &World{cfg: cfg, noise: ns}
	if err := w.Regenerate(cfg.Width, cfg.Height); err != nil {
		return nil, err
	}
	return w, nil
}

// Regenerate replaces the landscape for a new canvas size and resets the
// session: positions, losses, histories, iteration, and overlay caches all
// swap together. On error the previous state is left untouched.
func (w *World) Regenerate(width, height int) error {
	grid, err := GenerateLandscape(width, height, w.cfg.Resolution, w.cfg.Params.SmoothingIterations, w.noise)
	if err != nil {
		return err
	}
	w.cfg.Width = width
	w.cfg.Height = height
	w.grid = grid
	w.state = State{
		Grid:      grid,
		Defender:  Point{X: 0.25 * float64(grid.Cols-1), Y: 0.75 * float64(grid.Rows-1)},
		Adversary: Point{X: 0.75 * float64(grid.Cols-1), Y: 0.25 * float64(grid.Rows-1)},
	}
	w.stats = StepStats{}
	w.contours = Contours(grid, w.cfg.Params.ContourLevels)
	w.field = GradientField(grid, w.cfg.Params.FieldSpacing)
	w.generation++
	return nil
}

// Step runs one accepted simulation step: both agents move, the loss pair
// is sampled, histories append under their caps, and the iteration counter
// advances.
func (w *World) Step() {
	p := w.cfg.Params
	out := stepAgents(w.state.Defender, w.state.Adversary, w.grid, p.DefenseStrength, p.AttackStrength, w.noise)
	if out.budgetClamped {
		w.stats.BudgetClamps++
	}
	if out.targetedJump {
		w.stats.TargetedJumps++
	}

	st := &w.state
	st.Defender = out.defender
	st.Adversary = out.adversary
	st.DefenderLoss, st.AdversaryLoss = DynamicLoss(
		w.grid, st.Defender, st.Adversary, st.Iteration, p.DefenseStrength, p.AttackStrength, w.noise)

	st.DefenderHistory = appendPointCapped(st.DefenderHistory, st.Defender, positionHistoryCap)
	st.AdversaryHistory = appendPointCapped(st.AdversaryHistory, st.Adversary, positionHistoryCap)
	st.LossHistory.Defender = appendLossCapped(st.LossHistory.Defender, st.DefenderLoss, lossHistoryCap)
	st.LossHistory.Adversary = appendLossCapped(st.LossHistory.Adversary, st.AdversaryLoss, lossHistoryCap)
	st.Iteration++
}

// Snapshot returns a copy of the current state safe to hand to consumers.
// Histories are copied; the grid is shared because it never mutates.
func (w *World) Snapshot() State {
	st := w.state
	st.DefenderHistory = append([]Point(nil), w.state.DefenderHistory...)
	st.AdversaryHistory = append([]Point(nil), w.state.AdversaryHistory...)
	st.LossHistory.Defender = append([]float64(nil), w.state.LossHistory.Defender...)
	st.LossHistory.Adversary = append([]float64(nil), w.state.LossHistory.Adversary...)
	return st
}

// Config returns the active configuration.
func (w *World) Config() Config { return w.cfg }

// Grid exposes the current landscape.
func (w *World) Grid() *Grid { return w.grid }

// Contours returns the cached level-set overlay for the current grid.
func (w *World) Contours() []Contour { return w.contours }

// FieldVectors returns the cached sparse gradient field for the current grid.
func (w *World) FieldVectors() []FieldSample { return w.field }

// Generation increments every time the landscape is regenerated, letting
// renderers invalidate grid-derived caches cheaply.
func (w *World) Generation() int { return w.generation }

// Stats reports the dynamics event counters since the last regeneration.
func (w *World) Stats() StepStats { return w.stats }
