package mcmc

import (
	"math"

	"github.com/zang-langyan/Markov-Chain-Monte-Carlo-MCMC/checkpoint"
	"github.com/zang-langyan/Markov-Chain-Monte-Carlo-MCMC/rng"
)

// Density evaluates the unnormalized target density at theta. It must
// be defined over the whole declared space and return a non-negative
// value; it may return 0.
type Density func(theta float64) float64

// Config holds the full configuration of a Metropolis run. A Config
// is a plain value; Metropolis never modifies it, so a single Config
// can be reused or adjusted between runs.
type Config struct {
	// Density is the target density, known up to normalization.
	Density Density
	// Chain is the length of the chain to generate, including the
	// initial value and the burn-in.
	Chain int
	// ThetaInit is the starting value of the chain.
	ThetaInit float64
	// Jump draws the proposed increment. Nil means the default
	// normal proposal with sd 0.2.
	Jump Proposal
	// Space is the accepted span of theta.
	Space Space
	// Burnin is the number of leading chain entries to drop from
	// the result.
	Burnin int
	// Seed seeds the random source; rng.TimeSeed gives a
	// non-reproducible run.
	Seed int64
	// AccPeriod is the acceptance rate reporting period in
	// iterations, 0 disables reporting.
	AccPeriod int
	// Checkpoint enables periodic saving of the chain state.
	Checkpoint *checkpoint.IO
}

// NewConfig returns a Config with the default chain length, starting
// point, proposal and space.
func NewConfig(density Density) Config {
	return Config{
		Density:   density,
		Chain:     5000,
		ThetaInit: 0.5,
		Jump:      NormalJump(0.2),
		Space:     Unbounded(),
		Seed:      rng.TimeSeed,
	}
}

func (c *Config) validate() error {
	if c.Density == nil {
		return ConfigError("density must be a function")
	}
	if c.Chain < 1 {
		return ConfigError("chain length must be at least 1")
	}
	if c.Burnin < 0 || c.Burnin >= c.Chain {
		return ConfigError("burnin must be non-negative and less than the chain length")
	}
	if c.Space.Min > c.Space.Max {
		return ConfigError("space min exceeds max")
	}
	return nil
}

// Metropolis runs a random-walk Metropolis chain and returns the
// chain with the first Burnin entries removed. The chain starts at
// ThetaInit; every retained value lies within the configured space.
func Metropolis(c Config) ([]float64, error) {
	if err := c.validate(); err != nil {
		return nil, err
	}
	if c.Jump == nil {
		c.Jump = NormalJump(0.2)
	}

	src := rng.New(c.Seed)
	// The final length is known upfront.
	chain := make([]float64, c.Chain)
	cur := c.ThetaInit
	chain[0] = cur

	accepted := 0
	for i := 1; i < c.Chain; i++ {
		if c.AccPeriod > 0 && i%c.AccPeriod == 0 {
			log.Infof("Acceptance rate %.2f%%", 100*float64(accepted)/float64(c.AccPeriod))
			accepted = 0
		}

		pro := cur + c.Jump(src)

		// A proposal outside the space gets zero acceptance
		// probability; the density is not evaluated there.
		// A zero density at the current point forces a move,
		// the ratio would be undefined.
		var a float64
		switch {
		case !c.Space.Contains(pro):
			a = 0
		case c.Density(cur) == 0:
			a = 1
		default:
			a = math.Min(1, c.Density(pro)/c.Density(cur))
		}

		if a > 0 && src.Float64() <= a {
			cur = pro
			accepted++
		}
		chain[i] = cur

		if c.Checkpoint != nil && c.Checkpoint.Old() {
			c.Checkpoint.Save(&checkpoint.Data{
				Theta: cur,
				Iter:  i,
				Seed:  src.Seed(),
			})
		}
	}

	if c.Checkpoint != nil {
		c.Checkpoint.Save(&checkpoint.Data{
			Theta: cur,
			Iter:  c.Chain - 1,
			Seed:  src.Seed(),
			Final: true,
		})
	}

	return chain[c.Burnin:], nil
}
