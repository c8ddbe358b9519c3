package engine

import (
	"math"
	"sort"

	"hzero/domain/core"
	"hzero/domain/hypo"
	"hzero/internal/dist"
	"hzero/ports"
)

// minExpectedCount is the floor on expected cell counts for the Pearson
// chi-square approximation; adjacent cells below it are merged first.
const minExpectedCount = 5

// GoodnessOfFit computes the Pearson chi-square statistic for observed
// category counts against claimed cell probabilities. Cells whose
// expected count falls below minExpectedCount are merged into their
// neighbor before the statistic is formed, and each distribution
// parameter estimated from the data costs one degree of freedom.
func GoodnessOfFit(spec hypo.GoodnessOfFitSpec) (Computation, error) {
	if len(spec.Observed) < 2 {
		return Computation{}, core.NewInsufficientDataError("goodness-of-fit", 2, len(spec.Observed))
	}
	if len(spec.Observed) != len(spec.Probabilities) {
		return Computation{}, core.NewInvalidParameterError("probabilities length", float64(len(spec.Probabilities)))
	}

	var total, probSum float64
	for i, o := range spec.Observed {
		if o < 0 {
			return Computation{}, core.NewInvalidParameterError("observed count", o)
		}
		if spec.Probabilities[i] <= 0 {
			return Computation{}, core.NewInvalidParameterError("cell probability", spec.Probabilities[i])
		}
		total += o
		probSum += spec.Probabilities[i]
	}
	if total == 0 {
		return Computation{}, core.NewInsufficientDataError("goodness-of-fit", 1, 0)
	}
	if math.Abs(probSum-1) > 1e-9 {
		return Computation{}, core.NewInvalidParameterError("probability sum", probSum)
	}

	observed, probs := mergeSparseCells(spec.Observed, spec.Probabilities, total)

	df := float64(len(observed) - 1 - spec.EstimatedParams)
	if df < 1 {
		return Computation{}, core.NewInsufficientDataError("goodness-of-fit cells",
			spec.EstimatedParams+2, len(observed))
	}
	chiDist, err := dist.NewChiSquared(df)
	if err != nil {
		return Computation{}, err
	}

	var statistic float64
	for i, o := range observed {
		expected := total * probs[i]
		d := o - expected
		statistic += d * d / expected
	}

	return Computation{
		Statistic:        statistic,
		Distribution:     chiDist,
		DegreesOfFreedom: []float64{df},
	}, nil
}

// mergeSparseCells folds cells with expected count below the floor into
// an adjacent cell: the first cell merges rightward, the last leftward,
// interior cells into their right neighbor.
func mergeSparseCells(observed, probs []float64, total float64) ([]float64, []float64) {
	obs := append([]float64(nil), observed...)
	prb := append([]float64(nil), probs...)

	i := 0
	for i < len(prb) {
		if total*prb[i] >= minExpectedCount {
			i++
			continue
		}
		if len(prb) == 1 {
			break
		}
		switch i {
		case 0:
			obs[1] += obs[0]
			prb[1] += prb[0]
			obs, prb = obs[1:], prb[1:]
		case len(prb) - 1:
			obs[i-1] += obs[i]
			prb[i-1] += prb[i]
			return obs[:i], prb[:i]
		default:
			obs[i+1] += obs[i]
			prb[i+1] += prb[i]
			obs = append(obs[:i], obs[i+1:]...)
			prb = append(prb[:i], prb[i+1:]...)
		}
	}
	return obs, prb
}

// KolmogorovSmirnov computes the one-sample KS statistic: the supremum
// distance between the empirical CDF of the sample and the reference
// distribution, scaled by sqrt(n) and scored against the limiting
// Kolmogorov distribution.
func KolmogorovSmirnov(samples []float64, ref ports.Distribution) (Computation, error) {
	n := len(samples)
	if n == 0 {
		return Computation{}, core.NewInsufficientDataError("kolmogorov-smirnov", 1, 0)
	}

	sorted := append([]float64(nil), samples...)
	sort.Float64s(sorted)

	var supDistance float64
	nf := float64(n)
	for i, x := range sorted {
		fx := ref.CDF(x)
		below := fx - float64(i)/nf
		above := float64(i+1)/nf - fx
		supDistance = math.Max(supDistance, math.Max(below, above))
	}

	return Computation{
		Statistic:    math.Sqrt(nf) * supDistance,
		Distribution: dist.NewKolmogorov(),
	}, nil
}
