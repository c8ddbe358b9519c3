package app

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"hzero/domain/hypo"
)

func batteryFixture() []NamedTest {
	return []NamedTest{
		{
			Name: "mean_shift",
			Spec: hypo.TestSpec{
				Family: hypo.FamilyMean, ClaimedValue: 100,
				Tail: hypo.TailTwoSided, Alpha: 0.05, PopulationStdDev: 15,
			},
			Summaries: []hypo.SampleSummary{{N: 36, Mean: 105}},
		},
		{
			Name: "variance_inflation",
			Spec: hypo.TestSpec{
				Family: hypo.FamilyVariance, ClaimedValue: 10,
				Tail: hypo.TailRight, Alpha: 0.05,
			},
			Summaries: []hypo.SampleSummary{{N: 20, Mean: 0, Variance: 12}},
		},
		{
			Name: "group_spread_ratio",
			Spec: hypo.TestSpec{
				Family: hypo.FamilyVarianceRatio, ClaimedValue: 1,
				Tail: hypo.TailTwoSided, Alpha: 0.05,
			},
			Summaries: []hypo.SampleSummary{
				{N: 16, Mean: 0, Variance: 25},
				{N: 21, Mean: 0, Variance: 10},
			},
		},
	}
}

func TestBatteryRunAll(t *testing.T) {
	battery := NewBatteryService(NewHypothesisService())

	report, err := battery.RunAll(context.Background(), batteryFixture())
	require.NoError(t, err)
	require.NotEmpty(t, report.RunID)
	require.Len(t, report.Results, 3)

	require.Equal(t, hypo.DecisionReject, report.Results["mean_shift"].Decision)
	require.Equal(t, hypo.DecisionFailToReject, report.Results["variance_inflation"].Decision)
	require.Equal(t, hypo.DecisionFailToReject, report.Results["group_spread_ratio"].Decision)
}

func TestBatteryFailsFastOnBadInput(t *testing.T) {
	battery := NewBatteryService(NewHypothesisService())

	tests := batteryFixture()
	tests = append(tests, NamedTest{
		Name: "broken",
		Spec: hypo.TestSpec{
			Family: hypo.FamilyVariance, ClaimedValue: -1,
			Tail: hypo.TailRight, Alpha: 0.05,
		},
		Summaries: []hypo.SampleSummary{{N: 10, Mean: 0, Variance: 1}},
	})

	_, err := battery.RunAll(context.Background(), tests)
	require.Error(t, err)
	require.Contains(t, err.Error(), "broken")
}

func TestBatteryRejectsDuplicateNames(t *testing.T) {
	battery := NewBatteryService(NewHypothesisService())

	tests := batteryFixture()
	tests = append(tests, tests[0])

	_, err := battery.RunAll(context.Background(), tests)
	require.Error(t, err)
}

func TestBatteryHonorsContextCancellation(t *testing.T) {
	battery := NewBatteryService(NewHypothesisService())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := battery.RunAll(ctx, batteryFixture())
	require.Error(t, err)
}
