package engine

import (
	"math"

	"hzero/domain/hypo"
)

// Confidence inverts the test statistic at the complementary quantiles
// to bound the tested parameter at level 1 - alpha, on the same scale as
// the claim. One-sided tests yield one-sided bounds; the open side is
// +/-Inf for location parameters and 0 for scale parameters.
func Confidence(spec hypo.TestSpec, comp Computation, summaries []hypo.SampleSummary) (*hypo.ConfidenceInterval, error) {
	switch spec.Family {
	case hypo.FamilyMean:
		s := summaries[0]
		se := math.Sqrt(s.Variance) / math.Sqrt(float64(s.N))
		if spec.PopulationStdDev > 0 {
			se = spec.PopulationStdDev / math.Sqrt(float64(s.N))
		}
		return locationInterval(spec, comp, s.Mean, se)

	case hypo.FamilyMeanDifference:
		s1, s2 := summaries[0], summaries[1]
		// The standard error already standardized the statistic; recover
		// it rather than recomputing the assumption-specific form.
		point := s1.Mean - s2.Mean
		se := (point - spec.ClaimedValue) / comp.Statistic
		if comp.Statistic == 0 {
			se = welchPooledSE(spec, s1, s2)
		}
		return locationInterval(spec, comp, point, se)

	case hypo.FamilyVariance:
		s := summaries[0]
		scaled := s.VarianceDF() * s.Variance
		return scaleInterval(spec, comp, scaled)

	case hypo.FamilyVarianceRatio:
		s1, s2 := summaries[0], summaries[1]
		return scaleInterval(spec, comp, s1.Variance/s2.Variance)
	}

	// Non-parametric families invert no parameter.
	return nil, nil
}

// locationInterval builds point +/- quantile*se bounds for mean-scale
// parameters.
func locationInterval(spec hypo.TestSpec, comp Computation, point, se float64) (*hypo.ConfidenceInterval, error) {
	level := 1 - spec.Alpha
	switch spec.Tail {
	case hypo.TailTwoSided:
		q, err := comp.Distribution.Quantile(1 - spec.Alpha/2)
		if err != nil {
			return nil, err
		}
		return &hypo.ConfidenceInterval{Lower: point - q*se, Upper: point + q*se, Level: level}, nil
	case hypo.TailRight:
		q, err := comp.Distribution.Quantile(1 - spec.Alpha)
		if err != nil {
			return nil, err
		}
		return &hypo.ConfidenceInterval{Lower: point - q*se, Upper: math.Inf(1), Level: level}, nil
	default: // left
		q, err := comp.Distribution.Quantile(1 - spec.Alpha)
		if err != nil {
			return nil, err
		}
		return &hypo.ConfidenceInterval{Lower: math.Inf(-1), Upper: point + q*se, Level: level}, nil
	}
}

// scaleInterval builds scaled/quantile bounds for variance-scale
// parameters, which are bounded below by zero.
func scaleInterval(spec hypo.TestSpec, comp Computation, scaled float64) (*hypo.ConfidenceInterval, error) {
	level := 1 - spec.Alpha
	switch spec.Tail {
	case hypo.TailTwoSided:
		qLo, err := comp.Distribution.Quantile(spec.Alpha / 2)
		if err != nil {
			return nil, err
		}
		qHi, err := comp.Distribution.Quantile(1 - spec.Alpha/2)
		if err != nil {
			return nil, err
		}
		return &hypo.ConfidenceInterval{Lower: scaled / qHi, Upper: scaled / qLo, Level: level}, nil
	case hypo.TailRight:
		q, err := comp.Distribution.Quantile(1 - spec.Alpha)
		if err != nil {
			return nil, err
		}
		return &hypo.ConfidenceInterval{Lower: scaled / q, Upper: math.Inf(1), Level: level}, nil
	default: // left
		q, err := comp.Distribution.Quantile(spec.Alpha)
		if err != nil {
			return nil, err
		}
		return &hypo.ConfidenceInterval{Lower: 0, Upper: scaled / q, Level: level}, nil
	}
}

// welchPooledSE recomputes the mean-difference standard error for the
// degenerate zero-statistic case where it cannot be recovered by division.
func welchPooledSE(spec hypo.TestSpec, s1, s2 hypo.SampleSummary) float64 {
	n1, n2 := float64(s1.N), float64(s2.N)
	if spec.Variances == hypo.VariancesPooled {
		df1, df2 := s1.VarianceDF(), s2.VarianceDF()
		pooled := (df1*s1.Variance + df2*s2.Variance) / (df1 + df2)
		return math.Sqrt(pooled * (1/n1 + 1/n2))
	}
	return math.Sqrt(s1.Variance/n1 + s2.Variance/n2)
}
