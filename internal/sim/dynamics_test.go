package sim

import (
	"math"
	"testing"

	"github.com/nudro/adversarial-mini-max-game/pkg/noise"
)

// rampGrid has a steep uniform slope along x so every gradient step wants
// to move far.
func rampGrid(rows, cols int) *Grid {
	g := NewGrid(rows, cols)
	for row := 0; row < rows; row++ {
		for col := 0; col < cols; col++ {
			g.set(row, col, clamp01(float64(col)/float64(cols-1)))
		}
	}
	return g
}

func TestStepAgentsFlatFieldDefenderHolds(t *testing.T) {
	g := flatGrid(20, 20, 0.5)
	def := Point{X: 5, Y: 14}
	adv := Point{X: 14, Y: 5}

	out := stepAgents(def, adv, g, 5, 5, quietNoise)
	if out.defender != def {
		t.Fatalf("defender moved on a flat field: %+v", out.defender)
	}
	if out.adversary != adv {
		t.Fatalf("adversary moved on a flat field: %+v", out.adversary)
	}
}

func TestStepAgentsDirections(t *testing.T) {
	g := rampGrid(20, 20)
	def := Point{X: 10, Y: 10}
	adv := Point{X: 8, Y: 8}

	out := stepAgents(def, adv, g, 5, 5, quietNoise)
	if out.defender.X >= def.X {
		t.Fatalf("defender did not descend: x %v -> %v", def.X, out.defender.X)
	}
	if out.adversary.X <= adv.X {
		t.Fatalf("adversary did not ascend: x %v -> %v", adv.X, out.adversary.X)
	}
}

func TestStepAgentsPerturbationBudget(t *testing.T) {
	g := rampGrid(20, 20)
	for attack := 1; attack <= 10; attack++ {
		for defense := 1; defense <= 10; defense++ {
			out := stepAgents(Point{X: 10, Y: 10}, Point{X: 8, Y: 8}, g, defense, attack, quietNoise)
			budget := maxPerturbation(defense, attack)
			if out.adversaryDisplacement > budget+1e-12 {
				t.Fatalf("attack=%d defense=%d: displacement %v exceeds budget %v",
					attack, defense, out.adversaryDisplacement, budget)
			}
		}
	}
}

func TestStepAgentsBudgetWithTargetedJump(t *testing.T) {
	g := rampGrid(30, 30)
	// uniform: 0 always fires the jump gate while ratio > 1.
	ns := stubNoise{normal: 0, uniform: 0}
	def := Point{X: 5, Y: 25}
	adv := Point{X: 25, Y: 5}

	out := stepAgents(def, adv, g, 1, 10, ns)
	if !out.targetedJump {
		t.Fatal("jump gate at probability floor did not fire")
	}
	budget := maxPerturbation(1, 10)
	if limit := budget * (1 + targetedJumpScale); out.adversaryDisplacement > limit+1e-12 {
		t.Fatalf("displacement %v exceeds budget plus jump allowance %v", out.adversaryDisplacement, limit)
	}
}

func TestStepAgentsTargetedJumpRequiresAdvantage(t *testing.T) {
	g := rampGrid(30, 30)
	ns := stubNoise{normal: 0, uniform: 0}

	out := stepAgents(Point{X: 5, Y: 25}, Point{X: 25, Y: 5}, g, 5, 5, ns)
	if out.targetedJump {
		t.Fatal("jump fired without a strength advantage")
	}
}

func TestStepAgentsTargetedJumpSkipsCoincidentAgents(t *testing.T) {
	g := flatGrid(30, 30, 0.5)
	ns := stubNoise{normal: 0, uniform: 0}
	p := Point{X: 15, Y: 15}

	out := stepAgents(p, p, g, 1, 10, ns)
	if out.targetedJump {
		t.Fatal("jump fired with a degenerate direction")
	}
	if out.adversary != p {
		t.Fatalf("coincident adversary moved on a flat field: %+v", out.adversary)
	}
}

func TestStepAgentsTargetedJumpAimsAtDefender(t *testing.T) {
	g := flatGrid(30, 30, 0.5)
	ns := stubNoise{normal: 0, uniform: 0}
	def := Point{X: 5, Y: 15}
	adv := Point{X: 25, Y: 15}

	// Flat field: the only displacement is the jump itself.
	out := stepAgents(def, adv, g, 1, 10, ns)
	if !out.targetedJump {
		t.Fatal("jump did not fire")
	}
	if out.adversary.X >= adv.X || out.adversary.Y != adv.Y {
		t.Fatalf("jump not aimed at defender: %+v -> %+v", adv, out.adversary)
	}
	want := targetedJumpScale * maxPerturbation(1, 10)
	if got := adv.X - out.adversary.X; math.Abs(got-want) > 1e-12 {
		t.Fatalf("jump magnitude = %v, want %v", got, want)
	}
}

func TestStepAgentsPositionsStayOnBoard(t *testing.T) {
	g, err := GenerateLandscape(300, 300, 5, 1, noise.NewSource(21))
	if err != nil {
		t.Fatal(err)
	}
	ns := noise.NewSource(22)
	def := Point{X: 1, Y: 1}
	adv := Point{X: float64(g.Cols - 2), Y: float64(g.Rows - 2)}
	for i := 0; i < 2000; i++ {
		def, adv = StepAgents(def, adv, g, 1, 10, ns)
		for _, p := range []Point{def, adv} {
			if p.X < 0 || p.X > float64(g.Cols-1) || p.Y < 0 || p.Y > float64(g.Rows-1) {
				t.Fatalf("step %d: position off board: %+v", i, p)
			}
			if math.IsNaN(p.X) || math.IsNaN(p.Y) {
				t.Fatalf("step %d: position is NaN", i)
			}
		}
	}
}
