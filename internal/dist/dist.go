// Package dist implements the continuous reference distributions used to
// score test statistics: normal, Student's t, chi-square, F, and the
// limiting Kolmogorov distribution. Evaluation is delegated to
// gonum/stat/distuv; quantiles without a closed inverse are found by
// bounded bisection on the CDF.
package dist

import (
	"math"

	"hzero/domain/core"
)

const (
	// invertTol is the absolute x-tolerance for bisection quantiles.
	invertTol = 1e-12

	// invertMaxIter bounds the bisection loop. 200 halvings narrow any
	// bracket this code produces far below invertTol; hitting the bound
	// means the CDF is not behaving like a CDF.
	invertMaxIter = 200

	// bracketMaxDoublings bounds the search for an upper bracket.
	bracketMaxDoublings = 1024
)

// checkProbability validates a quantile argument.
func checkProbability(p float64) error {
	if math.IsNaN(p) || p <= 0 || p >= 1 {
		return core.NewDomainError("quantile probability", p)
	}
	return nil
}

// invertCDF solves cdf(x) = p for x in [lo, hi] by bisection. The caller
// guarantees cdf is nondecreasing and that the bracket straddles p.
func invertCDF(cdf func(float64) float64, lo, hi, p, tol float64, maxIter int) (float64, error) {
	for i := 0; i < maxIter; i++ {
		mid := lo + (hi-lo)/2
		if hi-lo <= tol || mid == lo || mid == hi {
			return mid, nil
		}
		if cdf(mid) < p {
			lo = mid
		} else {
			hi = mid
		}
	}
	return 0, core.NewConvergenceError("quantile bisection", maxIter)
}

// bracketUpper doubles hi from start until cdf(hi) >= p.
func bracketUpper(cdf func(float64) float64, start, p float64) (float64, error) {
	hi := start
	for i := 0; i < bracketMaxDoublings; i++ {
		if cdf(hi) >= p {
			return hi, nil
		}
		hi *= 2
	}
	return 0, core.NewConvergenceError("quantile bracketing", bracketMaxDoublings)
}
