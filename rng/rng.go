// Package rng provides seeded random sources for the samplers. A
// Source wraps math/rand and adds the draws the samplers need:
// uniform and normal variates and multivariate normal vectors.
package rng

import (
	"errors"
	"math/rand"
	"time"

	"github.com/gonum/matrix"
	"github.com/gonum/matrix/mat64"
)

// TimeSeed requests a time-based (non-reproducible) seed.
const TimeSeed = -1

// Knuth MMIX LCG constants, used to derive sub-stream seeds.
const (
	lcgMult = 6364136223846793005
	lcgInc  = 1442695040888963407
)

// Source is a deterministic random source. Two sources created with
// the same seed produce identical draw sequences for identical call
// sequences. A Source is not safe for concurrent use.
type Source struct {
	rng  *rand.Rand
	seed int64
}

// New creates a new source. If seed is TimeSeed, the source is seeded
// from the current time and draws are not reproducible.
func New(seed int64) *Source {
	if seed == TimeSeed {
		seed = time.Now().UnixNano()
	}
	return &Source{
		rng:  rand.New(rand.NewSource(seed)),
		seed: seed,
	}
}

// Seed returns the effective seed of the source.
func (s *Source) Seed() int64 {
	return s.seed
}

// Derive returns an independent sub-stream source deterministically
// derived from the seed of s and a label. Sub-streams with different
// labels are independent; deriving with the same label twice gives
// identical sources.
func (s *Source) Derive(label uint64) *Source {
	x := uint64(s.seed) + label
	x = x*lcgMult + lcgInc
	x = x*lcgMult + lcgInc
	return New(int64(x >> 1))
}

// Float64 returns a uniform variate from [0, 1).
func (s *Source) Float64() float64 {
	return s.rng.Float64()
}

// NormFloat64 returns a standard normal variate.
func (s *Source) NormFloat64() float64 {
	return s.rng.NormFloat64()
}

// Normal returns a normal variate with the given mean and standard
// deviation.
func (s *Source) Normal(mean, sd float64) float64 {
	return s.rng.NormFloat64()*sd + mean
}

// NormVec fills dst with standard normal variates and returns it.
func (s *Source) NormVec(dst []float64) []float64 {
	for i := range dst {
		dst[i] = s.rng.NormFloat64()
	}
	return dst
}

// MultiNormal returns a draw from the multivariate normal
// distribution with the given mean and covariance. The covariance
// matrix must be positive definite.
func (s *Source) MultiNormal(mean []float64, cov *mat64.SymDense) ([]float64, error) {
	d := len(mean)
	if cov.Symmetric() != d {
		return nil, errors.New("mean and covariance dimensions disagree")
	}
	var chol mat64.Cholesky
	if ok := chol.Factorize(cov); !ok {
		return nil, errors.New("covariance matrix is not positive definite")
	}
	l := mat64.NewTriDense(d, matrix.Lower, nil)
	l.LFromCholesky(&chol)

	z := s.NormVec(make([]float64, d))
	x := make([]float64, d)
	for i := 0; i < d; i++ {
		x[i] = mean[i]
		for j := 0; j <= i; j++ {
			x[i] += l.At(i, j) * z[j]
		}
	}
	return x, nil
}
