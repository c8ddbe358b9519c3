package hypo

import (
	"github.com/montanaflynn/stats"

	"hzero/domain/core"
)

// SampleSummary carries the sufficient statistics of one sample. It is
// either computed from raw observations or supplied directly when only
// summary statistics are known.
//
// INVARIANTS:
// - N >= 1
// - Variance >= 0, and meaningful only when N >= 2 (unless MeanKnown)
type SampleSummary struct {
	N        int     `json:"n"`
	Mean     float64 `json:"mean"`
	Variance float64 `json:"variance"`

	// MeanKnown marks a summary built about a known population mean, in
	// which case Variance is the mean squared deviation about that mean
	// and contributes N (not N-1) degrees of freedom.
	MeanKnown bool `json:"mean_known,omitempty"`
}

// Validate checks the summary invariants for direct-supplied summaries.
func (s SampleSummary) Validate() error {
	if s.N < 1 {
		return core.NewInsufficientDataError("summary", 1, s.N)
	}
	if s.Variance < 0 {
		return core.NewInvalidParameterError("variance", s.Variance)
	}
	return nil
}

// RequireVariance fails unless the summary carries a usable dispersion
// estimate: two observations for the n-1 sample variance, one when the
// dispersion was measured about a known mean.
func (s SampleSummary) RequireVariance() error {
	need := 2
	if s.MeanKnown {
		need = 1
	}
	if s.N < need {
		return core.NewInsufficientDataError("variance", need, s.N)
	}
	return nil
}

// VarianceDF returns the degrees of freedom the summary's dispersion
// estimate contributes to chi-square and t statistics.
func (s SampleSummary) VarianceDF() float64 {
	if s.MeanKnown {
		return float64(s.N)
	}
	return float64(s.N - 1)
}

// Summarize computes the sufficient statistics of a raw sample: the
// arithmetic mean and the unbiased (n-1 denominator) sample variance,
// both two-pass. A single observation yields a mean-only summary whose
// variance is unusable; RequireVariance guards the families that need it.
func Summarize(observations []float64) (SampleSummary, error) {
	if len(observations) == 0 {
		return SampleSummary{}, core.NewInsufficientDataError("mean", 1, 0)
	}

	mean, err := stats.Mean(observations)
	if err != nil {
		return SampleSummary{}, core.NewInsufficientDataError("mean", 1, len(observations))
	}
	if len(observations) < 2 {
		return SampleSummary{N: 1, Mean: mean}, nil
	}

	variance, err := stats.SampleVariance(observations)
	if err != nil {
		return SampleSummary{}, core.NewInsufficientDataError("variance", 2, len(observations))
	}

	return SampleSummary{
		N:        len(observations),
		Mean:     mean,
		Variance: variance,
	}, nil
}

// SummarizeAboutMean computes dispersion about a known population mean.
// The resulting summary's variance is sum((x-mu)^2)/n and is valid from
// a single observation, with n degrees of freedom.
func SummarizeAboutMean(observations []float64, mu float64) (SampleSummary, error) {
	if len(observations) == 0 {
		return SampleSummary{}, core.NewInsufficientDataError("variance", 1, 0)
	}

	var sumSq float64
	for _, x := range observations {
		d := x - mu
		sumSq += d * d
	}

	return SampleSummary{
		N:         len(observations),
		Mean:      mu,
		Variance:  sumSq / float64(len(observations)),
		MeanKnown: true,
	}, nil
}
