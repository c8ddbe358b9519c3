package engine

import (
	"hzero/domain/hypo"
	"hzero/ports"
)

// Outcome is the decision-engine output for one statistic: its p-value,
// the critical value(s) at the significance level, and the decision.
//
// INVARIANTS:
// - PValue in [0, 1]
// - the decision by p-value comparison (p < alpha) and by critical-value
//   comparison agree for every input; the boundary case (statistic equal
//   to a critical value) fails to reject
type Outcome struct {
	PValue         float64
	CriticalValues []float64
	Decision       hypo.Decision
}

// Decide scores a statistic against its reference distribution at the
// given tail and significance level.
func Decide(statistic float64, d ports.Distribution, tail hypo.Tail, alpha float64) (Outcome, error) {
	switch tail {
	case hypo.TailRight:
		critical, err := d.Quantile(1 - alpha)
		if err != nil {
			return Outcome{}, err
		}
		return Outcome{
			PValue:         d.Survival(statistic),
			CriticalValues: []float64{critical},
			Decision:       decide(statistic > critical),
		}, nil

	case hypo.TailLeft:
		critical, err := d.Quantile(alpha)
		if err != nil {
			return Outcome{}, err
		}
		return Outcome{
			PValue:         d.CDF(statistic),
			CriticalValues: []float64{critical},
			Decision:       decide(statistic < critical),
		}, nil

	default: // two_sided, validated upstream
		lower, err := d.Quantile(alpha / 2)
		if err != nil {
			return Outcome{}, err
		}
		upper, err := d.Quantile(1 - alpha/2)
		if err != nil {
			return Outcome{}, err
		}
		p := 2 * min(d.CDF(statistic), d.Survival(statistic))
		// Doubling near the median can push past 1.
		if p > 1 {
			p = 1
		}
		return Outcome{
			PValue:         p,
			CriticalValues: []float64{lower, upper},
			Decision:       decide(statistic < lower || statistic > upper),
		}, nil
	}
}

func decide(reject bool) hypo.Decision {
	if reject {
		return hypo.DecisionReject
	}
	return hypo.DecisionFailToReject
}
