package core

import (
	"errors"
	"fmt"
)

// Domain errors - centralized error definitions
var (
	// ErrDomain reports an argument outside a function's mathematical
	// domain: a quantile probability outside (0,1) or a distribution
	// parameter that is not a positive real.
	ErrDomain = errors.New("argument outside domain")

	// ErrInsufficientData reports a sample too small for the requested
	// statistic (empty for a mean, fewer than two observations for a
	// variance estimate).
	ErrInsufficientData = errors.New("insufficient data for statistic")

	// ErrInvalidParameter reports a claimed parameter that cannot index a
	// valid null hypothesis, such as a non-positive variance or ratio.
	ErrInvalidParameter = errors.New("invalid claimed parameter")

	// ErrArityMismatch reports a sample count that does not match the test
	// family (one-sample family given two samples, or vice versa).
	ErrArityMismatch = errors.New("sample arity does not match test family")

	// ErrConvergence reports a bounded iterative numeric routine that
	// exhausted its iteration budget before reaching tolerance.
	ErrConvergence = errors.New("numeric routine failed to converge")
)

// Error constructors with context

func NewDomainError(what string, got float64) error {
	return fmt.Errorf("%w: %s = %v", ErrDomain, what, got)
}

func NewInsufficientDataError(statistic string, need, got int) error {
	return fmt.Errorf("%w: %s needs at least %d observations, got %d",
		ErrInsufficientData, statistic, need, got)
}

func NewInvalidParameterError(name string, got float64) error {
	return fmt.Errorf("%w: %s = %v", ErrInvalidParameter, name, got)
}

func NewArityMismatchError(family string, want, got int) error {
	return fmt.Errorf("%w: family %s takes %d sample(s), got %d",
		ErrArityMismatch, family, want, got)
}

func NewConvergenceError(routine string, iterations int) error {
	return fmt.Errorf("%w: %s after %d iterations", ErrConvergence, routine, iterations)
}

// Error checking helpers

func IsDomainError(err error) bool {
	return errors.Is(err, ErrDomain)
}

func IsInputError(err error) bool {
	return errors.Is(err, ErrDomain) ||
		errors.Is(err, ErrInsufficientData) ||
		errors.Is(err, ErrInvalidParameter) ||
		errors.Is(err, ErrArityMismatch)
}

func IsConvergenceError(err error) bool {
	return errors.Is(err, ErrConvergence)
}
