package app

import (
	"hzero/domain/core"
	"hzero/domain/hypo"
	"hzero/internal"
	"hzero/internal/config"
	"hzero/internal/engine"
	"hzero/ports"
)

// HypothesisService binds a test family to its inputs and orchestrates
// statistic computation, the accept/reject decision, and the confidence
// interval. It holds no mutable state; one instance may serve any number
// of concurrent callers.
type HypothesisService struct {
	cfg config.Engine
	log *internal.Logger
}

// NewHypothesisService creates a service with environment-driven tuning.
func NewHypothesisService() *HypothesisService {
	return &HypothesisService{
		cfg: config.LoadEngine(),
		log: internal.DefaultLogger,
	}
}

// Run executes one parametric hypothesis test over pre-summarized
// samples and returns its immutable result. A spec with Alpha left zero
// picks up the configured default significance level. Any failure is a
// caller input error; there is no partial result.
func (s *HypothesisService) Run(spec hypo.TestSpec, summaries ...hypo.SampleSummary) (*hypo.TestResult, error) {
	if spec.Alpha == 0 {
		spec.Alpha = s.cfg.DefaultAlpha
	}
	if err := spec.Validate(); err != nil {
		return nil, err
	}
	if want := spec.Family.Arity(); want != len(summaries) {
		return nil, core.NewArityMismatchError(string(spec.Family), want, len(summaries))
	}
	for _, sum := range summaries {
		if err := sum.Validate(); err != nil {
			return nil, err
		}
	}

	comp, err := engine.ComputeStatistic(spec, summaries...)
	if err != nil {
		return nil, err
	}
	outcome, err := engine.Decide(comp.Statistic, comp.Distribution, spec.Tail, spec.Alpha)
	if err != nil {
		return nil, err
	}
	ci, err := engine.Confidence(spec, comp, summaries)
	if err != nil {
		return nil, err
	}

	result := &hypo.TestResult{
		Family:           spec.Family,
		Tail:             spec.Tail,
		Alpha:            spec.Alpha,
		Statistic:        comp.Statistic,
		DistributionName: comp.Distribution.Name(),
		DegreesOfFreedom: comp.DegreesOfFreedom,
		PValue:           outcome.PValue,
		CriticalValues:   outcome.CriticalValues,
		Decision:         outcome.Decision,
		Confidence:       ci,
		Distribution:     comp.Distribution,
	}

	s.log.Debug("test family=%s tail=%s statistic=%.6g p=%.6g decision=%s",
		spec.Family, spec.Tail, result.Statistic, result.PValue, result.Decision)
	return result, nil
}

// RunObserved summarizes raw samples and runs the test over them. It is
// the entry point for callers that hold observations rather than summary
// statistics.
func (s *HypothesisService) RunObserved(spec hypo.TestSpec, samples ...[]float64) (*hypo.TestResult, error) {
	summaries := make([]hypo.SampleSummary, len(samples))
	for i, obs := range samples {
		sum, err := hypo.Summarize(obs)
		if err != nil {
			return nil, err
		}
		summaries[i] = sum
	}
	return s.Run(spec, summaries...)
}

// RunGoodnessOfFit executes a Pearson chi-square goodness-of-fit test.
// The family is inherently right-tailed: only large deviations between
// observed and expected counts discredit the claimed distribution.
func (s *HypothesisService) RunGoodnessOfFit(spec hypo.GoodnessOfFitSpec) (*hypo.TestResult, error) {
	if spec.Alpha == 0 {
		spec.Alpha = s.cfg.DefaultAlpha
	}
	if !(spec.Alpha > 0 && spec.Alpha < 1) {
		return nil, core.NewDomainError("alpha", spec.Alpha)
	}

	comp, err := engine.GoodnessOfFit(spec)
	if err != nil {
		return nil, err
	}
	return s.finishNonParametric(hypo.FamilyGoodnessOfFit, spec.Alpha, comp)
}

// RunKolmogorovSmirnov executes a one-sample KS test of raw observations
// against a reference distribution. Right-tailed, like goodness-of-fit.
func (s *HypothesisService) RunKolmogorovSmirnov(samples []float64, ref ports.Distribution, alpha float64) (*hypo.TestResult, error) {
	if alpha == 0 {
		alpha = s.cfg.DefaultAlpha
	}
	if !(alpha > 0 && alpha < 1) {
		return nil, core.NewDomainError("alpha", alpha)
	}

	comp, err := engine.KolmogorovSmirnov(samples, ref)
	if err != nil {
		return nil, err
	}
	return s.finishNonParametric(hypo.FamilyKolmogorovSmirnov, alpha, comp)
}

func (s *HypothesisService) finishNonParametric(family hypo.Family, alpha float64, comp engine.Computation) (*hypo.TestResult, error) {
	outcome, err := engine.Decide(comp.Statistic, comp.Distribution, hypo.TailRight, alpha)
	if err != nil {
		return nil, err
	}

	result := &hypo.TestResult{
		Family:           family,
		Tail:             hypo.TailRight,
		Alpha:            alpha,
		Statistic:        comp.Statistic,
		DistributionName: comp.Distribution.Name(),
		DegreesOfFreedom: comp.DegreesOfFreedom,
		PValue:           outcome.PValue,
		CriticalValues:   outcome.CriticalValues,
		Decision:         outcome.Decision,
		Distribution:     comp.Distribution,
	}

	s.log.Debug("test family=%s statistic=%.6g p=%.6g decision=%s",
		family, result.Statistic, result.PValue, result.Decision)
	return result, nil
}
