// Package config loads engine tuning from environment variables. Every
// setting has a working default; the engine never requires a config file.
package config

import (
	"os"
	"runtime"
	"strconv"
)

// Engine holds numeric tuning for the hypothesis-testing services.
type Engine struct {
	// DefaultAlpha is the significance level applied when a spec leaves
	// it unset.
	DefaultAlpha float64

	// MaxConcurrent caps how many tests a battery runs at once.
	MaxConcurrent int
}

// LoadEngine reads engine settings from the environment. Out-of-range
// values fall back to the defaults rather than failing: tuning is never
// a reason to refuse a computation.
func LoadEngine() Engine {
	cfg := Engine{
		DefaultAlpha:  0.05,
		MaxConcurrent: runtime.NumCPU(),
	}

	if v := os.Getenv("HZERO_DEFAULT_ALPHA"); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil && f > 0 && f < 1 {
			cfg.DefaultAlpha = f
		}
	}
	if v := os.Getenv("HZERO_MAX_CONCURRENT"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 1 {
			cfg.MaxConcurrent = n
		}
	}
	return cfg
}
