package ports

// Distribution is a continuous probability law used as the reference
// distribution of a test statistic. Implementations are immutable value
// types; every method is a pure function, so a single instance may be
// shared across concurrent tests.
type Distribution interface {
	// Name returns the family tag ("normal", "t", "chi_square", "f", ...).
	Name() string

	// CDF returns P(X <= x).
	CDF(x float64) float64

	// Survival returns P(X > x), evaluated directly rather than as
	// 1 - CDF(x) so that deep right tails do not cancel to zero.
	Survival(x float64) float64

	// Quantile returns the x with CDF(x) = p. It fails with a domain
	// error for p outside the open interval (0, 1), and with a
	// convergence error if an iterative inversion exhausts its budget.
	Quantile(p float64) (float64, error)

	// Params exposes the distribution parameters for downstream
	// consumers (renderers plot the curve from these).
	Params() map[string]float64
}
