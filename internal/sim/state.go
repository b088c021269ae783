package sim

const (
	positionHistoryCap = 50
	lossHistoryCap     = 100
)

// LossHistory keeps the most recent loss samples for each agent,
// oldest first.
type LossHistory struct {
	Defender  []float64 `json:"defender"`
	Adversary []float64 `json:"adversary"`
}

// State is the full observable simulation state at one instant. Snapshots
// hand consumers their own copies of the histories; the grid pointer is
// shared because a grid never mutates after construction.
type State struct {
	Grid *Grid `json:"-"`

	Iteration int `json:"iteration"`

	Defender  Point `json:"defender"`
	Adversary Point `json:"adversary"`

	DefenderLoss  float64 `json:"defenderLoss"`
	AdversaryLoss float64 `json:"adversaryLoss"`

	DefenderHistory  []Point `json:"defenderHistory"`
	AdversaryHistory []Point `json:"adversaryHistory"`

	LossHistory LossHistory `json:"lossHistory"`
}

// appendPointCapped appends p and evicts the oldest entries beyond limit.
func appendPointCapped(history []Point, p Point, limit int) []Point {
	history = append(history, p)
	if excess := len(history) - limit; excess > 0 {
		history = append(history[:0], history[excess:]...)
	}
	return history
}

func appendLossCapped(history []float64, v float64, limit int) []float64 {
	history = append(history, v)
	if excess := len(history) - limit; excess > 0 {
		history = append(history[:0], history[excess:]...)
	}
	return history
}
