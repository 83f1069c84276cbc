package dist

import (
	"math"
	"testing"
)

const smallDiff = 1e-5

/*** Tests if a and b are approximately equal ***/
func appreq(a, b float64) bool {
	return math.Abs(a-b) <= smallDiff
}

func TestQuantileNormal(t *testing.T) {
	if !appreq(QuantileNormal(0.975), 1.959964) {
		t.Errorf("QuantileNormal(0.975)=%v, expected 1.959964", QuantileNormal(0.975))
	}
	if !appreq(QuantileNormal(0.5), 0) {
		t.Errorf("QuantileNormal(0.5)=%v, expected 0", QuantileNormal(0.5))
	}
}

func TestQuantileBeta(t *testing.T) {
	for _, prob := range []float64{0.1, 0.3, 0.5, 0.9} {
		x := QuantileBeta(prob, 15, 7)
		if !appreq(CDFBeta(x, 15, 7), prob) {
			t.Errorf("CDFBeta(QuantileBeta(%v))=%v", prob, CDFBeta(x, 15, 7))
		}
	}
}

func TestCDFBetaBounds(t *testing.T) {
	if CDFBeta(-0.1, 2, 3) != 0 {
		t.Error("CDF below the support should be 0")
	}
	if CDFBeta(1.1, 2, 3) != 1 {
		t.Error("CDF above the support should be 1")
	}
}

func TestCDFGamma(t *testing.T) {
	// shape 1 is the exponential distribution
	if !appreq(CDFGamma(5, 1, 5), 1-math.Exp(-1)) {
		t.Errorf("CDFGamma(5, 1, 5)=%v", CDFGamma(5, 1, 5))
	}
	if CDFGamma(-1, 2, 5) != 0 {
		t.Error("CDF below the support should be 0")
	}
}

func TestNormalPDF(t *testing.T) {
	if !appreq(NormalPDF(0, 0, 1), 1/math.Sqrt(2*math.Pi)) {
		t.Errorf("NormalPDF(0)=%v", NormalPDF(0, 0, 1))
	}
	if !appreq(NormalPDF(1, 1, 2), 1/(2*math.Sqrt(2*math.Pi))) {
		t.Errorf("NormalPDF(1, 1, 2)=%v", NormalPDF(1, 1, 2))
	}
}

func TestGammaPDF(t *testing.T) {
	// shape 1 is the exponential density
	for _, x := range []float64{0.1, 1, 10} {
		if !appreq(GammaPDF(x, 1, 5), math.Exp(-x/5)/5) {
			t.Errorf("GammaPDF(%v, 1, 5)=%v", x, GammaPDF(x, 1, 5))
		}
	}
	if GammaPDF(-1, 2, 5) != 0 {
		t.Error("density below the support should be 0")
	}
}

func TestBetaPDFNormalization(t *testing.T) {
	// trapezoid rule over the support
	const n = 10000
	sum := 0.0
	for i := 0; i <= n; i++ {
		x := float64(i) / n
		w := 1.0
		if i == 0 || i == n {
			w = 0.5
		}
		sum += w * BetaPDF(x, 15, 7) / n
	}
	if math.Abs(sum-1) > 1e-3 {
		t.Errorf("beta density integrates to %v", sum)
	}

	if BetaPDF(-0.5, 15, 7) != 0 || BetaPDF(1.5, 15, 7) != 0 {
		t.Error("density outside the support should be 0")
	}
}

func TestBetaPDFEndpoints(t *testing.T) {
	// Beta(1, q) at 0 is q, Beta(p, 1) at 1 is p.
	if !appreq(BetaPDF(0, 1, 2), 2) {
		t.Errorf("BetaPDF(0, 1, 2)=%v, expected 2", BetaPDF(0, 1, 2))
	}
	if !appreq(BetaPDF(1, 2, 1), 2) {
		t.Errorf("BetaPDF(1, 2, 1)=%v, expected 2", BetaPDF(1, 2, 1))
	}
	if !appreq(BetaPDF(0, 1, 1), 1) || !appreq(BetaPDF(1, 1, 1), 1) {
		t.Error("uniform case should be 1 at both endpoints")
	}
	if BetaPDF(0, 2, 2) != 0 || BetaPDF(1, 2, 2) != 0 {
		t.Error("density should vanish at the endpoints for p, q > 1")
	}
	if !math.IsInf(BetaPDF(0, 0.5, 2), +1) {
		t.Error("density should diverge at 0 for p < 1")
	}
	if !math.IsInf(BetaPDF(1, 2, 0.5), +1) {
		t.Error("density should diverge at 1 for q < 1")
	}
}

func TestLnBeta(t *testing.T) {
	// B(1, 1) = 1, B(2, 3) = 1/12
	if !appreq(LnBeta(1, 1), 0) {
		t.Errorf("LnBeta(1, 1)=%v", LnBeta(1, 1))
	}
	if !appreq(LnBeta(2, 3), math.Log(1.0/12)) {
		t.Errorf("LnBeta(2, 3)=%v", LnBeta(2, 3))
	}
}

func TestUniformPDF(t *testing.T) {
	if UniformPDF(0.5, 0, 2) != 0.5 {
		t.Errorf("UniformPDF(0.5, 0, 2)=%v", UniformPDF(0.5, 0, 2))
	}
	if UniformPDF(3, 0, 2) != 0 {
		t.Error("density outside the support should be 0")
	}
}
