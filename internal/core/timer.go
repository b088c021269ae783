package core

import "time"

// RateGate admits simulation steps at a target steps-per-second rate.
// A step fires only once the full interval has elapsed since the last
// accepted step; early frames are rejected and late frames never bank
// credit, so a stalled frame loop cannot trigger a burst of catch-up
// steps afterwards.
type RateGate struct {
	interval time.Duration
	last     time.Time
	now      func() time.Time
}

// NewRateGate constructs a gate targeting the given steps per second.
func NewRateGate(sps int) *RateGate {
	g := &RateGate{now: time.Now}
	g.SetRate(sps)
	return g
}

// SetRate changes the target rate. It is safe to call from the main loop.
func (g *RateGate) SetRate(sps int) {
	if sps <= 0 {
		sps = 60
	}
	g.interval = time.Second / time.Duration(sps)
}

// Allow reports whether a step should run now. The first call always fires.
func (g *RateGate) Allow() bool {
	now := g.now()
	if !g.last.IsZero() && now.Sub(g.last) < g.interval {
		return false
	}
	g.last = now
	return true
}
