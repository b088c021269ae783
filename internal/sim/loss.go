package sim

import "math"

const (
	learningDecaySteps = 500.0
	learningFloor      = 0.1
	influenceRange     = 0.3
	oscillationScale   = 0.1
	advantagePerRatio  = 0.15
	gapOnsetIteration  = 50
	gapCeiling         = 0.3
)

// DynamicLoss computes the loss pair observed at one iteration. Both values
// are clamped to [0,1]. The defender reads mostly its own cell; the
// adversary blends its cell with the defender's, so closing distance raises
// the stakes for both through the influence term.
func DynamicLoss(g *Grid, defender, adversary Point, iteration, defenseStrength, attackStrength int, ns NoiseSource) (defenderLoss, adversaryLoss float64) {
	baseLoss := g.At(int(defender.Y), int(defender.X))
	advCellLoss := g.At(int(adversary.Y), int(adversary.X))

	ndx := (defender.X - adversary.X) / float64(g.Cols)
	ndy := (defender.Y - adversary.Y) / float64(g.Rows)
	distance := math.Hypot(ndx, ndy)

	learningFactor := math.Max(learningFloor, 1-float64(iteration)/learningDecaySteps)
	influence := math.Max(0, 1-distance/influenceRange)
	oscillation := oscillationScale * math.Sin(float64(iteration)/10)

	defenderLoss = learningFactor * (0.7*baseLoss + 0.2*influence + oscillation + 0.03*ns.StandardNormal())
	adversaryLoss = learningFactor * (0.3*advCellLoss + 0.4*baseLoss + 0.2*influence + oscillation + 0.05*ns.StandardNormal())

	ratio := float64(attackStrength) / float64(defenseStrength)
	if ratio > 1 {
		advantage := (ratio - 1) * advantagePerRatio
		defenderLoss = math.Min(defenderLoss*(1+advantage), 1)
		adversaryLoss = math.Max(adversaryLoss*(1-advantage), 0)
		if iteration > gapOnsetIteration {
			gap := math.Min(gapCeiling, float64(iteration-gapOnsetIteration)/learningDecaySteps)
			defenderLoss = math.Min(defenderLoss+gap*math.Sin(float64(iteration)/30), 1)
		}
	}

	return clamp01(defenderLoss), clamp01(adversaryLoss)
}
