package sim

// stubNoise returns fixed deviates so tests can script the stochastic
// terms exactly.
type stubNoise struct {
	normal  float64
	uniform float64
}

func (s stubNoise) StandardNormal() float64 { return s.normal }
func (s stubNoise) Uniform() float64        { return s.uniform }

// quietNoise never fires probability gates and adds no perturbation.
var quietNoise = stubNoise{normal: 0, uniform: 1}

// flatGrid builds a uniform landscape for scenarios that need zero slope.
func flatGrid(rows, cols int, value float64) *Grid {
	g := NewGrid(rows, cols)
	for i := range g.data {
		g.data[i] = value
	}
	return g
}
