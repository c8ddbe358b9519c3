package app

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"hzero/domain/hypo"
	"hzero/internal"
	"hzero/internal/config"
)

// NamedTest pairs a label with one hypothesis test invocation.
type NamedTest struct {
	Name      string               `json:"name"`
	Spec      hypo.TestSpec        `json:"spec"`
	Summaries []hypo.SampleSummary `json:"summaries"`
}

// BatteryReport collects the results of one battery run keyed by test
// name, stamped with a unique run ID for traceability.
type BatteryReport struct {
	RunID   string                      `json:"run_id"`
	Results map[string]*hypo.TestResult `json:"results"`
	Elapsed time.Duration               `json:"elapsed"`
}

// BatteryService runs independent hypothesis tests concurrently. Tests
// share nothing but immutable inputs, so no coordination beyond the
// concurrency cap is needed.
type BatteryService struct {
	svc *HypothesisService
	cfg config.Engine
	log *internal.Logger
}

// NewBatteryService creates a battery runner over the given service.
func NewBatteryService(svc *HypothesisService) *BatteryService {
	return &BatteryService{
		svc: svc,
		cfg: config.LoadEngine(),
		log: internal.DefaultLogger,
	}
}

// RunAll executes every named test, failing fast on the first input
// error. Test names must be unique within one battery.
func (b *BatteryService) RunAll(ctx context.Context, tests []NamedTest) (*BatteryReport, error) {
	start := time.Now()
	seen := make(map[string]bool, len(tests))
	for _, tc := range tests {
		if seen[tc.Name] {
			return nil, fmt.Errorf("duplicate test name %q", tc.Name)
		}
		seen[tc.Name] = true
	}

	results := make([]*hypo.TestResult, len(tests))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(b.cfg.MaxConcurrent)

	for i, tc := range tests {
		i, tc := i, tc
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			res, err := b.svc.Run(tc.Spec, tc.Summaries...)
			if err != nil {
				return fmt.Errorf("test %q: %w", tc.Name, err)
			}
			results[i] = res
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	report := &BatteryReport{
		RunID:   uuid.NewString(),
		Results: make(map[string]*hypo.TestResult, len(tests)),
		Elapsed: time.Since(start),
	}
	for i, tc := range tests {
		report.Results[tc.Name] = results[i]
	}

	b.log.Debug("battery %s: %d tests in %s", report.RunID, len(tests), report.Elapsed)
	return report, nil
}
