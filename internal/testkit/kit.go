// Package testkit builds deterministic synthetic samples for exercising
// the engine in tests. Samples are quantile lattices rather than random
// draws, so every test outcome is reproducible without seeding.
package testkit

import (
	"hzero/domain/core"
	"hzero/internal/dist"
)

// NormalLattice returns n observations placed at the (i+0.5)/n quantiles
// of a normal(mu, sigma) law. The lattice is symmetric, so its mean is
// exactly mu and its empirical CDF tracks the parent to within 1/(2n).
func NormalLattice(n int, mu, sigma float64) ([]float64, error) {
	if n < 1 {
		return nil, core.NewInsufficientDataError("lattice", 1, n)
	}
	norm, err := dist.NewNormal(mu, sigma)
	if err != nil {
		return nil, err
	}

	samples := make([]float64, n)
	for i := range samples {
		p := (float64(i) + 0.5) / float64(n)
		x, err := norm.Quantile(p)
		if err != nil {
			return nil, err
		}
		samples[i] = x
	}
	return samples, nil
}
