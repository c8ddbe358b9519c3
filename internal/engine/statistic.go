// Package engine computes standardized test statistics, scores them
// against their reference distributions, and turns the scores into
// accept/reject decisions. Every function is pure: no state survives a
// call, so the package is safe under any amount of concurrency.
package engine

import (
	"math"

	"hzero/domain/core"
	"hzero/domain/hypo"
	"hzero/internal/dist"
	"hzero/ports"
)

// Computation pairs a standardized test statistic with the distribution
// that governs it under the null hypothesis.
type Computation struct {
	Statistic        float64
	Distribution     ports.Distribution
	DegreesOfFreedom []float64
}

// ComputeStatistic dispatches to the parametric family of the spec. The
// caller has already validated the spec and matched the sample arity.
func ComputeStatistic(spec hypo.TestSpec, summaries ...hypo.SampleSummary) (Computation, error) {
	switch spec.Family {
	case hypo.FamilyMean:
		return meanStatistic(spec, summaries[0])
	case hypo.FamilyVariance:
		return varianceStatistic(spec, summaries[0])
	case hypo.FamilyMeanDifference:
		return meanDifferenceStatistic(spec, summaries[0], summaries[1])
	case hypo.FamilyVarianceRatio:
		return varianceRatioStatistic(spec, summaries[0], summaries[1])
	}
	return Computation{}, core.NewArityMismatchError(string(spec.Family), 0, len(summaries))
}

// meanStatistic standardizes the sample mean against the claimed mean:
// a z-statistic when the population standard deviation is declared, a
// t-statistic on n-1 degrees of freedom otherwise.
func meanStatistic(spec hypo.TestSpec, s hypo.SampleSummary) (Computation, error) {
	sqrtN := math.Sqrt(float64(s.N))

	if spec.PopulationStdDev > 0 {
		se := spec.PopulationStdDev / sqrtN
		return Computation{
			Statistic:    (s.Mean - spec.ClaimedValue) / se,
			Distribution: dist.StandardNormal(),
		}, nil
	}

	if err := s.RequireVariance(); err != nil {
		return Computation{}, err
	}
	df := s.VarianceDF()
	tDist, err := dist.NewStudentsT(df)
	if err != nil {
		return Computation{}, err
	}
	se := math.Sqrt(s.Variance) / sqrtN
	return Computation{
		Statistic:        (s.Mean - spec.ClaimedValue) / se,
		Distribution:     tDist,
		DegreesOfFreedom: []float64{df},
	}, nil
}

// varianceStatistic scales the dispersion estimate by the claimed
// variance: (n-1)s^2/sigma0^2 on n-1 degrees of freedom, or n degrees
// when the dispersion was measured about a known population mean.
func varianceStatistic(spec hypo.TestSpec, s hypo.SampleSummary) (Computation, error) {
	if err := s.RequireVariance(); err != nil {
		return Computation{}, err
	}
	df := s.VarianceDF()
	chiDist, err := dist.NewChiSquared(df)
	if err != nil {
		return Computation{}, err
	}
	return Computation{
		Statistic:        df * s.Variance / spec.ClaimedValue,
		Distribution:     chiDist,
		DegreesOfFreedom: []float64{df},
	}, nil
}

// meanDifferenceStatistic standardizes the difference of two sample
// means against the claimed difference. The variance assumption selects
// the standard error and the degrees of freedom: pooled assumes equal
// population variances, welch uses the Welch-Satterthwaite correction.
func meanDifferenceStatistic(spec hypo.TestSpec, s1, s2 hypo.SampleSummary) (Computation, error) {
	if err := s1.RequireVariance(); err != nil {
		return Computation{}, err
	}
	if err := s2.RequireVariance(); err != nil {
		return Computation{}, err
	}

	n1, n2 := float64(s1.N), float64(s2.N)
	diff := s1.Mean - s2.Mean - spec.ClaimedValue

	var se, df float64
	switch spec.Variances {
	case hypo.VariancesPooled:
		df1, df2 := s1.VarianceDF(), s2.VarianceDF()
		pooled := (df1*s1.Variance + df2*s2.Variance) / (df1 + df2)
		se = math.Sqrt(pooled * (1/n1 + 1/n2))
		df = df1 + df2
	case hypo.VariancesWelch:
		v1, v2 := s1.Variance/n1, s2.Variance/n2
		se = math.Sqrt(v1 + v2)
		df = (v1 + v2) * (v1 + v2) /
			(v1*v1/s1.VarianceDF() + v2*v2/s2.VarianceDF())
	default:
		return Computation{}, core.NewInvalidParameterError("variances assumption", 0)
	}

	tDist, err := dist.NewStudentsT(df)
	if err != nil {
		return Computation{}, err
	}
	return Computation{
		Statistic:        diff / se,
		Distribution:     tDist,
		DegreesOfFreedom: []float64{df},
	}, nil
}

// varianceRatioStatistic scores s1^2/s2^2 against the claimed ratio on
// an F distribution with (n1-1, n2-1) degrees of freedom.
func varianceRatioStatistic(spec hypo.TestSpec, s1, s2 hypo.SampleSummary) (Computation, error) {
	if err := s1.RequireVariance(); err != nil {
		return Computation{}, err
	}
	if err := s2.RequireVariance(); err != nil {
		return Computation{}, err
	}
	if s2.Variance == 0 {
		return Computation{}, core.NewInvalidParameterError("denominator variance", 0)
	}

	df1, df2 := s1.VarianceDF(), s2.VarianceDF()
	fDist, err := dist.NewF(df1, df2)
	if err != nil {
		return Computation{}, err
	}
	return Computation{
		Statistic:        (s1.Variance / s2.Variance) / spec.ClaimedValue,
		Distribution:     fDist,
		DegreesOfFreedom: []float64{df1, df2},
	}, nil
}
