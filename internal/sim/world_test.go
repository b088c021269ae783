package sim

import (
	"math"
	"testing"

	"github.com/nudro/adversarial-mini-max-game/pkg/noise"
)

func testWorld(t *testing.T) *World {
	t.Helper()
	cfg := DefaultConfig()
	cfg.Width = 400
	cfg.Height = 300
	w, err := NewWorld(cfg)
	if err != nil {
		t.Fatalf("NewWorld: %v", err)
	}
	return w
}

func TestNewWorldSeedsAgentsInOpposingQuarters(t *testing.T) {
	w := testWorld(t)
	st := w.Snapshot()
	g := w.Grid()

	if st.Defender.X >= float64(g.Cols)/2 || st.Defender.Y <= float64(g.Rows)/2 {
		t.Fatalf("defender not in lower-left quarter: %+v", st.Defender)
	}
	if st.Adversary.X <= float64(g.Cols)/2 || st.Adversary.Y >= float64(g.Rows)/2 {
		t.Fatalf("adversary not in upper-right quarter: %+v", st.Adversary)
	}
	if st.Iteration != 0 {
		t.Fatalf("fresh world iteration = %d, want 0", st.Iteration)
	}
}

func TestNewWorldPropagatesInvalidDimension(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Width = 10
	if _, err := NewWorld(cfg); err == nil {
		t.Fatal("expected error for a 2-column canvas")
	}
}

func TestWorldStepAdvancesIterationOnce(t *testing.T) {
	w := testWorld(t)
	for i := 0; i < 25; i++ {
		if got := w.Snapshot().Iteration; got != i {
			t.Fatalf("iteration = %d before step %d", got, i)
		}
		w.Step()
	}
}

func TestWorldHistoryCaps(t *testing.T) {
	w := testWorld(t)
	for i := 0; i < 120; i++ {
		w.Step()
	}
	st := w.Snapshot()
	if len(st.DefenderHistory) != positionHistoryCap || len(st.AdversaryHistory) != positionHistoryCap {
		t.Fatalf("position histories = %d/%d, want %d each",
			len(st.DefenderHistory), len(st.AdversaryHistory), positionHistoryCap)
	}
	if len(st.LossHistory.Defender) != lossHistoryCap || len(st.LossHistory.Adversary) != lossHistoryCap {
		t.Fatalf("loss histories = %d/%d, want %d each",
			len(st.LossHistory.Defender), len(st.LossHistory.Adversary), lossHistoryCap)
	}
	// Most-recent-last: the final entries mirror the live state.
	if st.DefenderHistory[positionHistoryCap-1] != st.Defender {
		t.Fatal("newest defender history entry does not match current position")
	}
	if st.LossHistory.Defender[lossHistoryCap-1] != st.DefenderLoss {
		t.Fatal("newest loss entry does not match current loss")
	}
}

func TestWorldHistoryEvictsOldestFirst(t *testing.T) {
	w := testWorld(t)
	var positions []Point
	var losses []float64
	for i := 0; i < 130; i++ {
		w.Step()
		st := w.Snapshot()
		positions = append(positions, st.Defender)
		losses = append(losses, st.DefenderLoss)
	}
	st := w.Snapshot()
	for i, p := range st.DefenderHistory {
		if want := positions[len(positions)-positionHistoryCap+i]; p != want {
			t.Fatalf("history entry %d = %+v, want %+v (FIFO eviction broken)", i, p, want)
		}
	}
	for i, l := range st.LossHistory.Defender {
		if want := losses[len(losses)-lossHistoryCap+i]; l != want {
			t.Fatalf("loss entry %d = %v, want %v (FIFO eviction broken)", i, l, want)
		}
	}
}

func TestWorldStepKeepsStateBounded(t *testing.T) {
	w := testWorld(t)
	g := w.Grid()
	for i := 0; i < 500; i++ {
		w.Step()
		st := w.Snapshot()
		for _, p := range []Point{st.Defender, st.Adversary} {
			if p.X < 0 || p.X > float64(g.Cols-1) || p.Y < 0 || p.Y > float64(g.Rows-1) {
				t.Fatalf("step %d: position off board: %+v", i, p)
			}
		}
		if st.DefenderLoss < 0 || st.DefenderLoss > 1 || st.AdversaryLoss < 0 || st.AdversaryLoss > 1 {
			t.Fatalf("step %d: losses out of range: %v, %v", i, st.DefenderLoss, st.AdversaryLoss)
		}
	}
}

func TestWorldRegenerateResetsSession(t *testing.T) {
	w := testWorld(t)
	for i := 0; i < 40; i++ {
		w.Step()
	}
	gen := w.Generation()
	if err := w.Regenerate(500, 400); err != nil {
		t.Fatalf("regenerate: %v", err)
	}
	st := w.Snapshot()
	if st.Iteration != 0 {
		t.Fatalf("iteration = %d after regenerate, want 0", st.Iteration)
	}
	if len(st.DefenderHistory) != 0 || len(st.LossHistory.Defender) != 0 {
		t.Fatal("histories survived regeneration")
	}
	if w.Generation() != gen+1 {
		t.Fatalf("generation = %d, want %d", w.Generation(), gen+1)
	}
	if w.Grid().Cols != 100 || w.Grid().Rows != 80 {
		t.Fatalf("new grid is %dx%d cells, want 100x80", w.Grid().Cols, w.Grid().Rows)
	}
}

func TestWorldRegenerateFailureKeepsState(t *testing.T) {
	w := testWorld(t)
	for i := 0; i < 10; i++ {
		w.Step()
	}
	before := w.Snapshot()
	grid := w.Grid()

	if err := w.Regenerate(5, 5); err == nil {
		t.Fatal("expected invalid-dimension error")
	}
	after := w.Snapshot()
	if w.Grid() != grid {
		t.Fatal("failed regeneration replaced the grid")
	}
	if after.Iteration != before.Iteration || after.Defender != before.Defender {
		t.Fatal("failed regeneration disturbed the session state")
	}
}

func TestWorldSnapshotIsIsolated(t *testing.T) {
	w := testWorld(t)
	for i := 0; i < 5; i++ {
		w.Step()
	}
	st := w.Snapshot()
	st.DefenderHistory[0] = Point{X: -99, Y: -99}
	st.LossHistory.Defender[0] = -99

	fresh := w.Snapshot()
	if fresh.DefenderHistory[0].X == -99 || fresh.LossHistory.Defender[0] == -99 {
		t.Fatal("snapshot shares history storage with the world")
	}
}

func TestWorldSetIntParameter(t *testing.T) {
	w := testWorld(t)
	if !w.SetIntParameter("attack_strength", 25) {
		t.Fatal("attack strength rejected")
	}
	if got := w.Config().Params.AttackStrength; got != 10 {
		t.Fatalf("attack strength = %d, want clamp to 10", got)
	}
	if !w.SetIntParameter("defense_strength", -4) {
		t.Fatal("defense strength rejected")
	}
	if got := w.Config().Params.DefenseStrength; got != 1 {
		t.Fatalf("defense strength = %d, want clamp to 1", got)
	}
	if w.SetIntParameter("unknown_key", 1) {
		t.Fatal("unknown key accepted")
	}
	if !w.SetIntParameter("contour_levels", 6) {
		t.Fatal("contour levels rejected")
	}
	if got := len(w.Contours()); got != 6 {
		t.Fatalf("contour cache has %d levels, want 6", got)
	}
}

func TestWorldDeterministicForFixedSeed(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Width = 400
	cfg.Height = 300

	run := func() (State, *Grid) {
		w, err := newWorld(cfg, noise.NewSource(cfg.Seed))
		if err != nil {
			t.Fatalf("newWorld: %v", err)
		}
		for i := 0; i < 100; i++ {
			w.Step()
		}
		return w.Snapshot(), w.Grid()
	}

	a, ga := run()
	b, gb := run()
	if a.Defender != b.Defender || a.Adversary != b.Adversary {
		t.Fatalf("positions diverged across identical seeds: %+v vs %+v", a.Defender, b.Defender)
	}
	if a.DefenderLoss != b.DefenderLoss || a.AdversaryLoss != b.AdversaryLoss {
		t.Fatal("losses diverged across identical seeds")
	}
	for i := range ga.Cells() {
		if ga.Cells()[i] != gb.Cells()[i] {
			t.Fatalf("grid cell %d diverged across identical seeds", i)
		}
	}
	if math.IsNaN(a.DefenderLoss) {
		t.Fatal("loss is NaN")
	}
}
