package mcmc

// dH is the step used for numerical differentiation.
const dH = 1e-6

// NumGradient returns a central-difference gradient oracle for u. It
// is the default oracle when no analytic gradient is supplied; for
// expensive or ill-conditioned potentials the caller should inject an
// analytic gradient instead.
func NumGradient(u Potential) Gradient {
	return func(q []float64) []float64 {
		grad := make([]float64, len(q))
		for i := range q {
			x := q[i]
			q[i] = x - dH
			l1 := u(q)
			q[i] = x + dH
			l2 := u(q)
			q[i] = x
			grad[i] = (l2 - l1) / 2 / dH
		}
		return grad
	}
}
