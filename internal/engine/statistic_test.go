package engine

import (
	"math"
	"testing"

	"hzero/domain/core"
	"hzero/domain/hypo"
)

func approx(a, b, tol float64) bool {
	return math.Abs(a-b) <= tol
}

func TestMeanStatisticKnownSigma(t *testing.T) {
	spec := hypo.TestSpec{
		Family:           hypo.FamilyMean,
		ClaimedValue:     100,
		Tail:             hypo.TailTwoSided,
		Alpha:            0.05,
		PopulationStdDev: 15,
	}
	comp, err := ComputeStatistic(spec, hypo.SampleSummary{N: 36, Mean: 105})
	if err != nil {
		t.Fatalf("compute: %v", err)
	}
	if comp.Statistic != 2.0 {
		t.Fatalf("statistic = %v, want exactly 2", comp.Statistic)
	}
	if comp.Distribution.Name() != "normal" {
		t.Fatalf("distribution = %s", comp.Distribution.Name())
	}
	if len(comp.DegreesOfFreedom) != 0 {
		t.Fatalf("z-statistic carries no df, got %v", comp.DegreesOfFreedom)
	}
}

func TestMeanStatisticUnknownSigma(t *testing.T) {
	sum, err := hypo.Summarize([]float64{42, 39, 41, 38, 40, 43, 39, 37, 44, 41})
	if err != nil {
		t.Fatalf("summarize: %v", err)
	}
	spec := hypo.TestSpec{Family: hypo.FamilyMean, ClaimedValue: 40, Tail: hypo.TailTwoSided, Alpha: 0.05}
	comp, err := ComputeStatistic(spec, sum)
	if err != nil {
		t.Fatalf("compute: %v", err)
	}
	// t = 0.4 / (s/sqrt(10)) with s^2 = 44.4/9.
	if !approx(comp.Statistic, 0.56949, 1e-4) {
		t.Fatalf("statistic = %v", comp.Statistic)
	}
	if comp.Distribution.Name() != "t" || comp.DegreesOfFreedom[0] != 9 {
		t.Fatalf("distribution = %s df = %v", comp.Distribution.Name(), comp.DegreesOfFreedom)
	}
}

func TestMeanStatisticNeedsVariance(t *testing.T) {
	spec := hypo.TestSpec{Family: hypo.FamilyMean, ClaimedValue: 1, Tail: hypo.TailLeft, Alpha: 0.05}
	_, err := ComputeStatistic(spec, hypo.SampleSummary{N: 1, Mean: 3})
	if !core.IsInputError(err) {
		t.Fatalf("expected insufficient data error, got %v", err)
	}
}

func TestVarianceStatistic(t *testing.T) {
	spec := hypo.TestSpec{Family: hypo.FamilyVariance, ClaimedValue: 10, Tail: hypo.TailRight, Alpha: 0.05}
	comp, err := ComputeStatistic(spec, hypo.SampleSummary{N: 20, Mean: 0, Variance: 12})
	if err != nil {
		t.Fatalf("compute: %v", err)
	}
	if !approx(comp.Statistic, 22.8, 1e-12) {
		t.Fatalf("statistic = %v, want 19*12/10", comp.Statistic)
	}
	if comp.Distribution.Name() != "chi_square" || comp.DegreesOfFreedom[0] != 19 {
		t.Fatalf("distribution = %s df = %v", comp.Distribution.Name(), comp.DegreesOfFreedom)
	}
}

func TestVarianceStatisticKnownMean(t *testing.T) {
	sum, err := hypo.SummarizeAboutMean([]float64{1, 2, 3}, 2)
	if err != nil {
		t.Fatalf("summarize: %v", err)
	}
	spec := hypo.TestSpec{Family: hypo.FamilyVariance, ClaimedValue: 1, Tail: hypo.TailRight, Alpha: 0.05}
	comp, err := ComputeStatistic(spec, sum)
	if err != nil {
		t.Fatalf("compute: %v", err)
	}
	// sum((x-mu)^2)/sigma0^2 = 2, on n (not n-1) degrees of freedom.
	if !approx(comp.Statistic, 2, 1e-12) {
		t.Fatalf("statistic = %v", comp.Statistic)
	}
	if comp.DegreesOfFreedom[0] != 3 {
		t.Fatalf("df = %v", comp.DegreesOfFreedom)
	}
}

func TestMeanDifferencePooledEqualsWelchForBalancedEqualVariances(t *testing.T) {
	s1 := hypo.SampleSummary{N: 10, Mean: 5, Variance: 4}
	s2 := hypo.SampleSummary{N: 10, Mean: 3, Variance: 4}

	pooledSpec := hypo.TestSpec{
		Family: hypo.FamilyMeanDifference, Tail: hypo.TailTwoSided,
		Alpha: 0.05, Variances: hypo.VariancesPooled,
	}
	welchSpec := pooledSpec
	welchSpec.Variances = hypo.VariancesWelch

	pooled, err := ComputeStatistic(pooledSpec, s1, s2)
	if err != nil {
		t.Fatalf("pooled: %v", err)
	}
	welch, err := ComputeStatistic(welchSpec, s1, s2)
	if err != nil {
		t.Fatalf("welch: %v", err)
	}

	if !approx(pooled.Statistic, 2/math.Sqrt(4*0.2), 1e-12) {
		t.Fatalf("pooled statistic = %v", pooled.Statistic)
	}
	if !approx(pooled.Statistic, welch.Statistic, 1e-12) {
		t.Fatalf("balanced equal-variance case: pooled %v != welch %v", pooled.Statistic, welch.Statistic)
	}
	if pooled.DegreesOfFreedom[0] != 18 || !approx(welch.DegreesOfFreedom[0], 18, 1e-9) {
		t.Fatalf("df pooled=%v welch=%v", pooled.DegreesOfFreedom, welch.DegreesOfFreedom)
	}
}

func TestMeanDifferenceWelchDF(t *testing.T) {
	s1 := hypo.SampleSummary{N: 10, Mean: 0, Variance: 1}
	s2 := hypo.SampleSummary{N: 20, Mean: 0, Variance: 16}
	spec := hypo.TestSpec{
		Family: hypo.FamilyMeanDifference, Tail: hypo.TailTwoSided,
		Alpha: 0.05, Variances: hypo.VariancesWelch,
	}
	comp, err := ComputeStatistic(spec, s1, s2)
	if err != nil {
		t.Fatalf("compute: %v", err)
	}
	df := comp.DegreesOfFreedom[0]
	if df < 23 || df > 24 {
		t.Fatalf("welch df = %v, want Welch-Satterthwaite near 23.3", df)
	}
	// Welch df never exceeds the pooled n1+n2-2.
	if df > 28 {
		t.Fatalf("welch df %v exceeds pooled bound", df)
	}
}

func TestVarianceRatioStatistic(t *testing.T) {
	s1 := hypo.SampleSummary{N: 16, Mean: 0, Variance: 25}
	s2 := hypo.SampleSummary{N: 21, Mean: 0, Variance: 10}
	spec := hypo.TestSpec{
		Family: hypo.FamilyVarianceRatio, ClaimedValue: 1,
		Tail: hypo.TailTwoSided, Alpha: 0.05,
	}
	comp, err := ComputeStatistic(spec, s1, s2)
	if err != nil {
		t.Fatalf("compute: %v", err)
	}
	if !approx(comp.Statistic, 2.5, 1e-12) {
		t.Fatalf("statistic = %v", comp.Statistic)
	}
	if comp.Distribution.Name() != "f" {
		t.Fatalf("distribution = %s", comp.Distribution.Name())
	}
	if comp.DegreesOfFreedom[0] != 15 || comp.DegreesOfFreedom[1] != 20 {
		t.Fatalf("df = %v", comp.DegreesOfFreedom)
	}
}

func TestVarianceRatioClaimedScaling(t *testing.T) {
	s1 := hypo.SampleSummary{N: 10, Mean: 0, Variance: 8}
	s2 := hypo.SampleSummary{N: 10, Mean: 0, Variance: 2}
	spec := hypo.TestSpec{
		Family: hypo.FamilyVarianceRatio, ClaimedValue: 4,
		Tail: hypo.TailTwoSided, Alpha: 0.05,
	}
	comp, err := ComputeStatistic(spec, s1, s2)
	if err != nil {
		t.Fatalf("compute: %v", err)
	}
	// Sample ratio 4 equals the claimed ratio, so the scaled statistic
	// sits at the F distribution's null center.
	if !approx(comp.Statistic, 1, 1e-12) {
		t.Fatalf("statistic = %v", comp.Statistic)
	}
}
