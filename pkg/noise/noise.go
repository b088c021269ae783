// Package noise provides the deterministic random deviates consumed by the
// simulation engine. One Source drives one session, so replaying a seed
// replays the whole run.
package noise

import (
	"math"
	"math/rand/v2"
)

// Source draws gaussian and uniform deviates from a seeded PCG generator.
type Source struct {
	r *rand.Rand
}

// NewSource creates a deterministic Source using the provided seed.
func NewSource(seed int64) *Source {
	return &Source{r: rand.New(rand.NewPCG(uint64(seed), 0))}
}

// Uniform returns a value uniformly distributed in [0, 1).
func (s *Source) Uniform() float64 {
	return s.r.Float64()
}

// StandardNormal returns one N(0,1) deviate via the Box-Muller transform.
// The first uniform is redrawn until strictly positive so the logarithm is
// always defined. Both uniforms are consumed fresh on every call; the
// second transform value is never cached.
func (s *Source) StandardNormal() float64 {
	u1 := s.r.Float64()
	for u1 == 0 {
		u1 = s.r.Float64()
	}
	u2 := s.r.Float64()
	return math.Sqrt(-2*math.Log(u1)) * math.Cos(2*math.Pi*u2)
}
