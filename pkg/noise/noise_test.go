package noise

import (
	"math"
	"testing"
)

func TestSourceDeterminism(t *testing.T) {
	a := NewSource(1234)
	b := NewSource(1234)

	for i := 0; i < 1000; i++ {
		if ga, gb := a.StandardNormal(), b.StandardNormal(); ga != gb {
			t.Fatalf("gaussian draw %d diverged: %v vs %v", i, ga, gb)
		}
		if ua, ub := a.Uniform(), b.Uniform(); ua != ub {
			t.Fatalf("uniform draw %d diverged: %v vs %v", i, ua, ub)
		}
	}
}

func TestSourceSeedsDiffer(t *testing.T) {
	a := NewSource(1)
	b := NewSource(2)

	same := 0
	for i := 0; i < 100; i++ {
		if a.Uniform() == b.Uniform() {
			same++
		}
	}
	if same == 100 {
		t.Fatal("different seeds produced identical streams")
	}
}

func TestUniformRange(t *testing.T) {
	src := NewSource(99)
	for i := 0; i < 10000; i++ {
		u := src.Uniform()
		if u < 0 || u >= 1 {
			t.Fatalf("uniform draw %d out of [0,1): %v", i, u)
		}
	}
}

func TestStandardNormalMoments(t *testing.T) {
	const n = 200000
	src := NewSource(7)

	var sum, sumSq float64
	for i := 0; i < n; i++ {
		g := src.StandardNormal()
		if math.IsNaN(g) || math.IsInf(g, 0) {
			t.Fatalf("draw %d is not finite: %v", i, g)
		}
		sum += g
		sumSq += g * g
	}

	mean := sum / n
	variance := sumSq/n - mean*mean
	if math.Abs(mean) > 0.02 {
		t.Errorf("sample mean too far from 0: %v", mean)
	}
	if math.Abs(variance-1) > 0.05 {
		t.Errorf("sample variance too far from 1: %v", variance)
	}
}
