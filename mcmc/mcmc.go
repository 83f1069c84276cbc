/*

Package mcmc implements two Markov chain Monte Carlo samplers: a
scalar Metropolis random-walk sampler and a multivariate Hamiltonian
Monte Carlo sampler with leapfrog integration. Both draw approximate
samples from a target distribution known up to normalization.

The Metropolis sampler produces a full chain from an explicit
configuration value:

	cfg := mcmc.NewConfig(density)
	cfg.Chain = 10000
	cfg.Space = mcmc.Space{Min: 0, Max: 1}
	cfg.Seed = 42
	chain, err := mcmc.Metropolis(cfg)

The Hamiltonian sampler advances the chain one transition at a time;
the chain loop belongs to the caller:

	h := mcmc.Hamiltonian{U: u, Eps: 0.1, Steps: 10}
	q, err := h.Step(q, seed)

*/
package mcmc

import (
	"math"

	"github.com/op/go-logging"
)

// log is the package logging variable.
var log = logging.MustGetLogger("mcmc")

// ConfigError indicates an invalid sampler configuration. It is
// returned before any chain iteration runs and is never retried.
type ConfigError string

func (e ConfigError) Error() string {
	return "mcmc: invalid configuration: " + string(e)
}

// Space is the accepted span of the sampled parameter. Proposals
// outside the space get zero acceptance probability; the density is
// never evaluated there.
type Space struct {
	Min float64
	Max float64
}

// Unbounded returns a space covering the whole real line.
func Unbounded() Space {
	return Space{Min: math.Inf(-1), Max: math.Inf(+1)}
}

// Contains reports whether theta lies within the space.
func (s Space) Contains(theta float64) bool {
	return theta >= s.Min && theta <= s.Max
}
