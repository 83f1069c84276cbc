package main

import (
	"math"
	"sort"
)

// RunSummary stores mcsamp run summary information.
type RunSummary struct {
	// Version stores mcsamp version.
	Version string `json:"version"`
	// CommandLine is an array storing binary name and all command-line parameters.
	CommandLine []string `json:"commandLine"`
	// Seed is the seed used for random number generation initialization.
	Seed int64 `json:"seed"`
	// Sampler is the sampling method used.
	Sampler string `json:"sampler"`
	// Length is the number of returned chain entries.
	Length int `json:"length"`
	// Burnin is the number of dropped leading entries.
	Burnin int `json:"burnin"`
	// AcceptanceRate is the fraction of iterations that moved.
	AcceptanceRate float64 `json:"acceptanceRate"`
	// Mean is the chain mean.
	Mean float64 `json:"mean"`
	// SD is the chain standard deviation.
	SD float64 `json:"sd"`
	// Q025, Median and Q975 are empirical chain quantiles.
	Q025   float64 `json:"q025"`
	Median float64 `json:"median"`
	Q975   float64 `json:"q975"`
	// Time is the computations time in seconds.
	Time float64 `json:"time"`
}

// newRunSummary computes chain statistics for the summary.
func newRunSummary(sampler string, chain []float64) *RunSummary {
	s := &RunSummary{
		Sampler: sampler,
		Length:  len(chain),
	}
	if len(chain) == 0 {
		return s
	}

	moves := 0
	for i, v := range chain {
		s.Mean += v
		if i > 0 && v != chain[i-1] {
			moves++
		}
	}
	s.Mean /= float64(len(chain))
	if len(chain) > 1 {
		for _, v := range chain {
			s.SD += (v - s.Mean) * (v - s.Mean)
		}
		s.SD = math.Sqrt(s.SD / float64(len(chain)-1))
		s.AcceptanceRate = float64(moves) / float64(len(chain)-1)
	}

	sorted := append([]float64(nil), chain...)
	sort.Float64s(sorted)
	s.Q025 = quantile(sorted, 0.025)
	s.Median = quantile(sorted, 0.5)
	s.Q975 = quantile(sorted, 0.975)
	return s
}

// quantile returns an empirical quantile of sorted values.
func quantile(sorted []float64, p float64) float64 {
	i := int(p * float64(len(sorted)-1))
	return sorted[i]
}
