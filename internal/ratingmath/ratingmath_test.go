package ratingmath

import (
	"math"
	"testing"
)

func TestLogistic400Complementary(t *testing.T) {
	cases := [][2]float64{{1500, 1500}, {400, 500}, {2100, 1200}}
	for _, c := range cases {
		eAB := Logistic400(c[0], c[1])
		eBA := Logistic400(c[1], c[0])
		if math.Abs(eAB+eBA-1) > 1e-9 {
			t.Fatalf("Logistic400(%v,%v)+Logistic400(%v,%v) = %v, want 1", c[0], c[1], c[1], c[0], eAB+eBA)
		}
	}
}

func TestGFunctionDecreasesWithRD(t *testing.T) {
	if GFunction(0) != 1 {
		t.Fatalf("GFunction(0) = %v, want 1", GFunction(0))
	}
	if GFunction(350) >= GFunction(50) {
		t.Fatalf("expected GFunction to shrink as RD grows: g(350)=%v g(50)=%v", GFunction(350), GFunction(50))
	}
}

func TestECFLinearClampsToUnitInterval(t *testing.T) {
	if got := ECFLinear(1000, 0, 120); got != 1 {
		t.Fatalf("ECFLinear should clamp to 1 for large rating gaps, got %v", got)
	}
	if got := ECFLinear(0, 1000, 120); got != 0 {
		t.Fatalf("ECFLinear should clamp to 0 for large rating gaps, got %v", got)
	}
	if got := ECFLinear(100, 100, 120); got != 0.5 {
		t.Fatalf("ECFLinear(equal ratings) = %v, want 0.5", got)
	}
}

func TestDWZDevelopmentCoefficientBounds(t *testing.T) {
	for _, rating := range []float64{100, 900, 1300, 1600, 2200} {
		for _, n := range []int{0, 1, 10, 100} {
			e := DWZDevelopmentCoefficient(rating, n, 10)
			if e < 5 || e > 150 {
				t.Fatalf("DWZDevelopmentCoefficient(%v,%v) = %v, out of [5,150]", rating, n, e)
			}
		}
	}
}

func TestClamp(t *testing.T) {
	if Clamp(5, 0, 10) != 5 {
		t.Fatalf("Clamp(5,0,10) should be a no-op")
	}
	if Clamp(-1, 0, 10) != 0 {
		t.Fatalf("Clamp(-1,0,10) should floor to 0")
	}
	if Clamp(11, 0, 10) != 10 {
		t.Fatalf("Clamp(11,0,10) should ceil to 10")
	}
}
