package mcmc

import (
	"math"

	"github.com/zang-langyan/Markov-Chain-Monte-Carlo-MCMC/rng"
)

// Potential evaluates the potential energy at position q, i.e. the
// negative log of the unnormalized target density, up to a constant.
type Potential func(q []float64) float64

// Gradient evaluates the gradient of the potential energy at q.
type Gradient func(q []float64) []float64

// Hamiltonian configures a Hamiltonian Monte Carlo sampler. A single
// Step call advances the chain by one transition; the chain loop is
// the caller's responsibility. Hamiltonian holds no mutable state, so
// concurrent Step calls with separate seeds are safe.
type Hamiltonian struct {
	// U is the potential energy of the target.
	U Potential
	// Grad is the gradient oracle for U. Nil means central-
	// difference differentiation of U.
	Grad Gradient
	// Eps is the leapfrog step size.
	Eps float64
	// Steps is the number of leapfrog steps per trajectory.
	Steps int
}

// Step performs one Hamiltonian Monte Carlo transition from current
// and returns the next position: the end of the leapfrog trajectory
// if the proposal is accepted, a copy of current otherwise. The
// momentum refresh and the acceptance draw use independent
// sub-streams derived from the seed, so a single seed fully
// determines the transition. The current slice is never modified.
func (h Hamiltonian) Step(current []float64, seed int64) ([]float64, error) {
	if h.U == nil {
		return nil, ConfigError("potential energy must be a function")
	}
	if h.Eps <= 0 {
		return nil, ConfigError("step size must be positive")
	}
	if h.Steps < 1 {
		return nil, ConfigError("at least one leapfrog step is required")
	}
	if len(current) == 0 {
		return nil, ConfigError("empty position")
	}
	grad := h.Grad
	if grad == nil {
		grad = NumGradient(h.U)
	}

	src := rng.New(seed)

	// Momentum refresh: p ~ N(0, I).
	p := src.Derive(0).NormVec(make([]float64, len(current)))
	currentP := append([]float64(nil), p...)

	q := append([]float64(nil), current...)
	leapfrog(grad, h.Eps, h.Steps, q, p)

	currentH := h.U(current) + kinetic(currentP)
	proposedH := h.U(q) + kinetic(p)
	log.Debugf("H=%f, proposed H=%f", currentH, proposedH)

	// The acceptance ratio is an exponential of the energy
	// difference; only differences of H enter the test.
	if src.Derive(1).Float64() < math.Exp(currentH-proposedH) {
		return q, nil
	}
	return append([]float64(nil), current...), nil
}

// leapfrog integrates Hamilton's equations in place: a half-step
// momentum kick, steps-1 alternating full position and momentum
// updates, a final full position update and half kick. The momentum
// is negated at the end, making the map an involution and the
// proposal reversible and volume preserving.
func leapfrog(grad Gradient, eps float64, steps int, q, p []float64) {
	g := grad(q)
	for i := range p {
		p[i] -= eps * g[i] / 2
	}
	for s := 0; s < steps-1; s++ {
		for i := range q {
			q[i] += eps * p[i]
		}
		g = grad(q)
		for i := range p {
			p[i] -= eps * g[i]
		}
	}
	for i := range q {
		q[i] += eps * p[i]
	}
	g = grad(q)
	for i := range p {
		p[i] -= eps * g[i] / 2
	}
	for i := range p {
		p[i] = -p[i]
	}
}

// kinetic returns |p|^2/2.
func kinetic(p []float64) (k float64) {
	for _, v := range p {
		k += v * v
	}
	return k / 2
}
