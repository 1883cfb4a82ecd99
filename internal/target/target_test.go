package target

import (
	"math"
	"testing"
)

func TestClampLowerBound(t *testing.T) {
	if got := ClampToEvaluationInterval(-0.5); got != EvalIntervalLow {
		t.Fatalf("expected %v, got %v", EvalIntervalLow, got)
	}
	if got := ClampToEvaluationInterval(0); got != EvalIntervalLow {
		t.Fatalf("expected %v, got %v", EvalIntervalLow, got)
	}
}

func TestClampUpperBound(t *testing.T) {
	if got := ClampToEvaluationInterval(1.5); got != EvalIntervalHigh {
		t.Fatalf("expected %v, got %v", EvalIntervalHigh, got)
	}
	if got := ClampToEvaluationInterval(1); got != EvalIntervalHigh {
		t.Fatalf("expected %v, got %v", EvalIntervalHigh, got)
	}
}

func TestClampPassThrough(t *testing.T) {
	for _, x := range []float64{EvalIntervalLow, 0.25, 0.5, 0.75, EvalIntervalHigh} {
		if got := ClampToEvaluationInterval(x); got != x {
			t.Fatalf("in-range value %v changed to %v", x, got)
		}
	}
}

func TestDensityPositiveInsideInterval(t *testing.T) {
	bb := NewBetaBinomial(4, 10)
	for _, p := range []float64{EvalIntervalLow, 0.1, 0.4, 0.9, EvalIntervalHigh} {
		d := bb.Density(p)
		if d <= 0 || math.IsNaN(d) || math.IsInf(d, 0) {
			t.Fatalf("density at %v not finite positive: %v", p, d)
		}
	}
}

func TestDensityPeaksAtMLE(t *testing.T) {
	// For 4/10 the likelihood peaks at p=0.4 under the flat prior.
	bb := NewBetaBinomial(4, 10)
	peak := bb.Density(0.4)
	for _, p := range []float64{0.1, 0.2, 0.6, 0.9} {
		if bb.Density(p) >= peak {
			t.Fatalf("density at %v not below peak at 0.4", p)
		}
	}
}

func TestUniformPriorReducesToLikelihood(t *testing.T) {
	// Beta(1,1) has constant density 1 on (0,1), so the target is exactly
	// the binomial pmf.
	bb := NewBetaBinomial(4, 10)
	// Binomial(10, 0.5) pmf at 4: C(10,4) * 0.5^10 = 210/1024.
	want := 210.0 / 1024.0
	got := bb.Density(0.5)
	if math.Abs(got-want) > 1e-12 {
		t.Fatalf("expected %v, got %v", want, got)
	}
}

func TestInformativePriorShiftsDensity(t *testing.T) {
	flat := NewBetaBinomial(4, 10)
	skewedHigh := NewBetaBinomialWithPrior(4, 10, 8, 2)

	// A Beta(8,2) prior concentrates mass near 1, so relative to the flat
	// prior the ratio density(0.8)/density(0.2) must grow.
	flatRatio := flat.Density(0.8) / flat.Density(0.2)
	skewedRatio := skewedHigh.Density(0.8) / skewedHigh.Density(0.2)
	if skewedRatio <= flatRatio {
		t.Fatalf("informative prior did not shift density: flat=%v skewed=%v", flatRatio, skewedRatio)
	}
}
