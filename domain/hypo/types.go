package hypo

import (
	"hzero/domain/core"
	"hzero/ports"
)

// ============================================================================
// TEST SPECIFICATION
// ============================================================================

// Family identifies the parameter a test makes a claim about.
type Family string

const (
	FamilyMean              Family = "mean"
	FamilyVariance          Family = "variance"
	FamilyMeanDifference    Family = "mean_difference"
	FamilyVarianceRatio     Family = "variance_ratio"
	FamilyGoodnessOfFit     Family = "goodness_of_fit"
	FamilyKolmogorovSmirnov Family = "kolmogorov_smirnov"
)

// Arity returns how many samples the family compares, or 0 for an
// unknown family.
func (f Family) Arity() int {
	switch f {
	case FamilyMean, FamilyVariance:
		return 1
	case FamilyMeanDifference, FamilyVarianceRatio:
		return 2
	}
	return 0
}

// Tail selects which direction of deviation counts as evidence against
// the null hypothesis.
type Tail string

const (
	TailLeft     Tail = "left"
	TailRight    Tail = "right"
	TailTwoSided Tail = "two_sided"
)

func (t Tail) valid() bool {
	return t == TailLeft || t == TailRight || t == TailTwoSided
}

// VarianceAssumption selects the standard error and degrees of freedom
// for the mean-difference family. There is no default: pooled and Welch
// forms give different numbers, so the caller must choose.
type VarianceAssumption string

const (
	VariancesPooled VarianceAssumption = "pooled"
	VariancesWelch  VarianceAssumption = "welch"
)

// TestSpec describes one hypothesis test: the family, the claimed
// parameter under the null, the tail, and the significance level.
//
// INVARIANTS:
// - Alpha in (0, 1)
// - Tail is one of left/right/two_sided
// - Variances set for the mean_difference family
// - claimed variance / ratio strictly positive
type TestSpec struct {
	Family       Family  `json:"family"`
	ClaimedValue float64 `json:"claimed_value"`
	Tail         Tail    `json:"tail"`
	Alpha        float64 `json:"alpha"`

	// PopulationStdDev, when positive, declares the population standard
	// deviation known for the mean family (normal statistic instead of t).
	PopulationStdDev float64 `json:"population_std_dev,omitempty"`

	// Variances is required for mean_difference.
	Variances VarianceAssumption `json:"variances,omitempty"`
}

// Validate checks the spec against its invariants. It does not look at
// samples; arity is checked by the service that receives them.
func (s TestSpec) Validate() error {
	if s.Family.Arity() == 0 {
		return core.NewArityMismatchError(string(s.Family), 0, 0)
	}
	if !(s.Alpha > 0 && s.Alpha < 1) {
		return core.NewDomainError("alpha", s.Alpha)
	}
	if !s.Tail.valid() {
		return core.NewDomainError("tail", 0)
	}
	switch s.Family {
	case FamilyMean:
		if s.PopulationStdDev < 0 {
			return core.NewInvalidParameterError("population_std_dev", s.PopulationStdDev)
		}
	case FamilyVariance:
		if s.ClaimedValue <= 0 {
			return core.NewInvalidParameterError("claimed variance", s.ClaimedValue)
		}
	case FamilyVarianceRatio:
		if s.ClaimedValue <= 0 {
			return core.NewInvalidParameterError("claimed variance ratio", s.ClaimedValue)
		}
	case FamilyMeanDifference:
		if s.Variances != VariancesPooled && s.Variances != VariancesWelch {
			return core.NewInvalidParameterError("variances assumption", 0)
		}
	}
	return nil
}

// GoodnessOfFitSpec describes a Pearson chi-square goodness-of-fit test
// of observed category counts against claimed cell probabilities.
type GoodnessOfFitSpec struct {
	Observed      []float64 `json:"observed"`      // category counts
	Probabilities []float64 `json:"probabilities"` // claimed cell probabilities, sum to 1
	// EstimatedParams is the number of distribution parameters that were
	// estimated from the data; each one costs a degree of freedom.
	EstimatedParams int     `json:"estimated_params"`
	Alpha           float64 `json:"alpha"`
}

// ============================================================================
// TEST RESULT
// ============================================================================

// Decision is the outcome of comparing the statistic to its critical
// region at the chosen significance level.
type Decision string

const (
	DecisionReject       Decision = "reject"
	DecisionFailToReject Decision = "fail_to_reject"
)

// ConfidenceInterval bounds the tested parameter at level 1 - alpha, on
// the same scale as the claim. One-sided tests produce one-sided bounds;
// the open side is +/-Inf (or 0 for scale parameters).
type ConfidenceInterval struct {
	Lower float64 `json:"lower"`
	Upper float64 `json:"upper"`
	Level float64 `json:"level"`
}

// TestResult is the immutable product of one test invocation.
//
// INVARIANTS:
// - PValue in [0, 1]
// - CriticalValues sorted ascending: one value for one-sided tests, two
//   for two-sided
// - Distribution references (does not own) the law the statistic was
//   scored against, for downstream rendering
type TestResult struct {
	Family           Family              `json:"family"`
	Tail             Tail                `json:"tail"`
	Alpha            float64             `json:"alpha"`
	Statistic        float64             `json:"statistic"`
	DistributionName string              `json:"distribution"`
	DegreesOfFreedom []float64           `json:"degrees_of_freedom,omitempty"`
	PValue           float64             `json:"p_value"`
	CriticalValues   []float64           `json:"critical_values"`
	Decision         Decision            `json:"decision"`
	Confidence       *ConfidenceInterval `json:"confidence,omitempty"`

	Distribution ports.Distribution `json:"-"`
}
