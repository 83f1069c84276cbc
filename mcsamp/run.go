package main

import (
	"bufio"
	"fmt"
	"os"

	"github.com/zang-langyan/Markov-Chain-Monte-Carlo-MCMC/checkpoint"
	"github.com/zang-langyan/Markov-Chain-Monte-Carlo-MCMC/dist"
	"github.com/zang-langyan/Markov-Chain-Monte-Carlo-MCMC/mcmc"
	"github.com/zang-langyan/Markov-Chain-Monte-Carlo-MCMC/rng"
)

// getDensityFromString returns a target density from the command-line
// parameters (global variables).
func getDensityFromString(target string) (mcmc.Density, error) {
	switch target {
	case "normal":
		log.Infof("Using normal target, mean=%v, sd=%v", *mean, *sd)
		return func(x float64) float64 {
			return dist.NormalPDF(x, *mean, *sd)
		}, nil
	case "gamma":
		log.Infof("Using gamma target, shape=%v, scale=%v", *shape, *scale)
		return func(x float64) float64 {
			return dist.GammaPDF(x, *shape, *scale)
		}, nil
	case "beta":
		log.Infof("Using beta target, p=%v, q=%v", *pPar, *qPar)
		return func(x float64) float64 {
			return dist.BetaPDF(x, *pPar, *qPar)
		}, nil
	case "uniform":
		log.Infof("Using uniform target on [%v, %v]", *spaceMin, *spaceMax)
		return func(x float64) float64 {
			return dist.UniformPDF(x, *spaceMin, *spaceMax)
		}, nil
	}
	return nil, fmt.Errorf("unknown target distribution: %s", target)
}

// runMetropolis runs a Metropolis chain from the command-line
// parameters and returns the run summary.
func runMetropolis(cp *checkpoint.IO) (*RunSummary, error) {
	density, err := getDensityFromString(*target)
	if err != nil {
		return nil, err
	}

	cfg := mcmc.NewConfig(density)
	cfg.Chain = *iterations
	cfg.Burnin = *burnin
	cfg.ThetaInit = *thetaInit
	cfg.Space = mcmc.Space{Min: *spaceMin, Max: *spaceMax}
	cfg.Seed = *seed
	cfg.AccPeriod = *accept
	cfg.Checkpoint = cp
	if *jumpWidth > 0 {
		cfg.Jump = mcmc.UniformJump(*jumpWidth)
	} else {
		cfg.Jump = mcmc.NormalJump(*jumpSD)
	}

	if cp != nil {
		data, err := cp.Load()
		if err != nil {
			return nil, err
		}
		if data != nil && !data.Final && data.Iter < cfg.Chain-1 {
			log.Noticef("Resuming chain from iteration %v", data.Iter)
			cfg.ThetaInit = data.Theta
			cfg.Chain -= data.Iter
			cfg.Burnin -= data.Iter
			if cfg.Burnin < 0 {
				cfg.Burnin = 0
			}
			// A fresh sub-stream for the new segment; reusing
			// the run seed would replay the pre-interruption
			// draws and correlate the two segments.
			cfg.Seed = resumeSeed(*seed, data.Iter)
		}
	}

	chain, err := mcmc.Metropolis(cfg)
	if err != nil {
		return nil, err
	}

	if *outF != "" {
		if err := writeTrajectory(*outF, chain); err != nil {
			return nil, err
		}
	}
	if *plotF != "" {
		if err := tracePlot(chain, *plotF); err != nil {
			return nil, err
		}
	}

	summary := newRunSummary("metropolis", chain)
	summary.Burnin = cfg.Burnin
	return summary, nil
}

// runHMC runs a Hamiltonian Monte Carlo chain from the command-line
// parameters and returns the run summary of the first position
// coordinate.
func runHMC() (*RunSummary, error) {
	if *target != "normal" {
		return nil, fmt.Errorf("hmc supports the normal target only, got %s", *target)
	}
	log.Infof("Using normal target, mean=%v, sd=%v, dim=%v", *mean, *sd, *dim)
	v := *sd * *sd
	u := func(q []float64) (e float64) {
		for _, x := range q {
			e += (x - *mean) * (x - *mean) / (2 * v)
		}
		return
	}
	grad := func(q []float64) []float64 {
		g := make([]float64, len(q))
		for i, x := range q {
			g[i] = (x - *mean) / v
		}
		return g
	}

	h := mcmc.Hamiltonian{U: u, Grad: grad, Eps: *eps, Steps: *steps}

	q := make([]float64, *dim)
	for i := range q {
		q[i] = *thetaInit
	}

	// one seed per transition, derived from the run seed
	base := rng.New(*seed)
	chain := make([]float64, *iterations)
	accepted := 0
	for i := 0; i < *iterations; i++ {
		if *accept > 0 && i > 0 && i%*accept == 0 {
			log.Infof("Acceptance rate %.2f%%", 100*float64(accepted)/float64(*accept))
			accepted = 0
		}
		next, err := h.Step(q, base.Derive(uint64(i)).Seed())
		if err != nil {
			return nil, err
		}
		if next[0] != q[0] {
			accepted++
		}
		q = next
		chain[i] = q[0]
	}

	if *burnin > 0 && *burnin < len(chain) {
		chain = chain[*burnin:]
	}

	if *outF != "" {
		if err := writeTrajectory(*outF, chain); err != nil {
			return nil, err
		}
	}
	if *plotF != "" {
		if err := tracePlot(chain, *plotF); err != nil {
			return nil, err
		}
	}

	summary := newRunSummary("hmc", chain)
	summary.Burnin = *burnin
	return summary, nil
}

// resumeSeed derives the seed of a resumed chain segment from the run
// seed and the checkpoint iteration.
func resumeSeed(seed int64, iter int) int64 {
	return rng.New(seed).Derive(uint64(iter)).Seed()
}

// writeTrajectory writes tab-separated iteration and value pairs to a
// file.
func writeTrajectory(fn string, chain []float64) error {
	f, err := os.Create(fn)
	if err != nil {
		return err
	}
	defer f.Close()
	w := bufio.NewWriter(f)
	defer w.Flush()
	fmt.Fprintf(w, "iteration\tvalue\n")
	for i, v := range chain {
		fmt.Fprintf(w, "%d\t%f\n", i, v)
	}
	return nil
}
