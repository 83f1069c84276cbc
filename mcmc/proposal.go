package mcmc

import (
	"github.com/zang-langyan/Markov-Chain-Monte-Carlo-MCMC/rng"
)

// Proposal draws a jump increment from a proposal distribution using
// an external random source. Proposals are assumed symmetric: the
// acceptance test uses the density ratio only.
type Proposal func(s *rng.Source) float64

// NormalJump returns a normal proposal function.
func NormalJump(sd float64) Proposal {
	if sd <= 0 {
		panic("sd should be > 0")
	}
	return func(s *rng.Source) float64 {
		return s.NormFloat64() * sd
	}
}

// UniformJump returns a uniform proposal function centered at zero.
func UniformJump(width float64) Proposal {
	if width <= 0 {
		panic("width should be > 0")
	}
	return func(s *rng.Source) float64 {
		return s.Float64()*width - width/2
	}
}
