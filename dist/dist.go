// Package dist implements density, distribution and quantile
// functions for the continuous distributions used as sampling
// targets.
package dist

import (
	"math"

	"github.com/gonum/mathext"
)

// LnBeta returns log of the Beta function.
func LnBeta(p, q float64) float64 {
	lgp, _ := math.Lgamma(p)
	lgq, _ := math.Lgamma(q)
	lgpq, _ := math.Lgamma(p + q)
	return lgp + lgq - lgpq
}

// NormalPDF returns the density of the normal distribution with the
// given mean and standard deviation.
func NormalPDF(x, mean, sd float64) float64 {
	z := (x - mean) / sd
	return math.Exp(-z*z/2) / (sd * math.Sqrt(2*math.Pi))
}

// GammaPDF returns the density of the gamma distribution with the
// given shape and scale; zero outside the support.
func GammaPDF(x, shape, scale float64) float64 {
	if shape <= 0 || scale <= 0 {
		panic("shape and scale of gamma distribution must be > 0")
	}
	if x < 0 {
		return 0
	}
	if x == 0 {
		if shape < 1 {
			return math.Inf(+1)
		}
		if shape > 1 {
			return 0
		}
		return 1 / scale
	}
	g, _ := math.Lgamma(shape)
	return math.Exp((shape-1)*math.Log(x) - x/scale - shape*math.Log(scale) - g)
}

// BetaPDF returns the density of the beta distribution with
// parameters p and q; zero outside [0, 1].
func BetaPDF(x, p, q float64) float64 {
	if p <= 0 || q <= 0 {
		panic("p and q of beta distribution must be > 0")
	}
	if x < 0 || x > 1 {
		return 0
	}
	if x == 0 {
		if p < 1 {
			return math.Inf(+1)
		}
		if p > 1 {
			return 0
		}
		// 1/B(1, q) = q
		return q
	}
	if x == 1 {
		if q < 1 {
			return math.Inf(+1)
		}
		if q > 1 {
			return 0
		}
		// 1/B(p, 1) = p
		return p
	}
	return math.Exp((p-1)*math.Log(x) + (q-1)*math.Log(1-x) - LnBeta(p, q))
}

// UniformPDF returns the density of the uniform distribution on
// [min, max].
func UniformPDF(x, min, max float64) float64 {
	if max <= min {
		panic("max <= min")
	}
	if x < min || x > max {
		return 0
	}
	return 1 / (max - min)
}

/*

IncompleteGamma returns the incomplete gamma ratio I(x,alpha) where x
is the upper limit of the integration and alpha is the shape
parameter.

*/
func IncompleteGamma(x, alpha float64) float64 {
	return mathext.GammaInc(alpha, x)
}

// CDFGamma returns the distribution function of the gamma
// distribution with the given shape and scale.
func CDFGamma(x, shape, scale float64) float64 {
	if x <= 0 {
		return 0
	}
	return IncompleteGamma(x/scale, shape)
}

// CDFBeta returns the distribution function of the standard form of
// the beta distribution, that is, the incomplete beta ratio I_x(p,q).
func CDFBeta(x, pin, qin float64) float64 {
	if x <= 0 {
		return 0
	}
	if x >= 1 {
		return 1
	}
	return mathext.RegIncBeta(pin, qin, x)
}

// QuantileBeta calculates the quantile of the beta distribution.
func QuantileBeta(prob, p, q float64) float64 {
	return mathext.InvRegIncBeta(p, q, prob)
}

// QuantileNormal returns the quantile of the standard normal
// distribution.
func QuantileNormal(prob float64) float64 {
	return mathext.NormalQuantile(prob)
}
