package sim

import "math"

const (
	// Per-step probability of the adversary lunging straight at the
	// defender while it holds the strength advantage.
	targetedJumpChance = 0.08
	targetedJumpScale  = 0.15
)

// stepOutcome records what one agent update actually did, for the headless
// tools and the package tests. Displacements are measured before the final
// board clamp.
type stepOutcome struct {
	defender  Point
	adversary Point

	adversaryDisplacement float64
	budgetClamped         bool
	targetedJump          bool
}

// StepAgents advances both agents one discrete step: the defender descends
// its noisy gradient estimate, the adversary ascends its own under a
// per-step perturbation budget. Stateless between calls; no velocity is
// carried.
func StepAgents(defender, adversary Point, g *Grid, defenseStrength, attackStrength int, ns NoiseSource) (Point, Point) {
	out := stepAgents(defender, adversary, g, defenseStrength, attackStrength, ns)
	return out.defender, out.adversary
}

func stepAgents(defender, adversary Point, g *Grid, defenseStrength, attackStrength int, ns NoiseSource) stepOutcome {
	ratio := float64(attackStrength) / float64(defenseStrength)

	// A dominant adversary behaves as a lower-variance optimizer while
	// the disadvantaged defender gets noisier.
	advNoise := 0.08
	defNoise := 0.05
	if ratio > 1 {
		advNoise = 0.04
		defNoise = 0.08
	}

	defGrad := GradientAt(g, defender.X, defender.Y, defNoise, ns)
	advGrad := GradientAt(g, adversary.X, adversary.Y, advNoise, ns)

	// Adaptive step scale: larger steps in flatter regions. The dominant
	// adversary also gets a structurally more aggressive divisor.
	defScale := 0.02 * float64(defenseStrength) / (0.1 + defGrad.Magnitude)
	advScale := 0.02 * float64(attackStrength) / (0.1 + advGrad.Magnitude)
	if ratio > 1 {
		advScale = 0.025 * float64(attackStrength) / (0.05 + advGrad.Magnitude)
	}

	defDX := -defGrad.DX * defScale
	defDY := -defGrad.DY * defScale
	advDX := advGrad.DX * advScale
	advDY := advGrad.DY * advScale

	out := stepOutcome{}
	budget := maxPerturbation(defenseStrength, attackStrength)
	if norm := math.Hypot(advDX, advDY); norm > budget {
		rescale := budget / norm
		advDX *= rescale
		advDY *= rescale
		out.budgetClamped = true
	}

	if ratio > 1 && ns.Uniform() < targetedJumpChance {
		// Lunge toward the defender's pre-step position; skipped when
		// the direction would be degenerate.
		toDefX := defender.X - adversary.X
		toDefY := defender.Y - adversary.Y
		if d := math.Hypot(toDefX, toDefY); d > 0 {
			jump := targetedJumpScale * budget
			advDX += toDefX / d * jump
			advDY += toDefY / d * jump
			out.targetedJump = true
		}
	}

	out.adversaryDisplacement = math.Hypot(advDX, advDY)
	out.defender = Point{X: defender.X + defDX, Y: defender.Y + defDY}.ClampToGrid(g)
	out.adversary = Point{X: adversary.X + advDX, Y: adversary.Y + advDY}.ClampToGrid(g)
	return out
}

// maxPerturbation is the adversary's per-step displacement budget. A
// dominant adversary earns a 20% larger allowance.
func maxPerturbation(defenseStrength, attackStrength int) float64 {
	budget := 0.2 * float64(attackStrength)
	if float64(attackStrength)/float64(defenseStrength) > 1 {
		budget *= 1.2
	}
	return budget
}
