package dist

import (
	"math"
)

// Kolmogorov is the limiting distribution of sqrt(n) times the
// Kolmogorov-Smirnov supremum statistic. gonum does not ship it, so the
// CDF is evaluated from its two series forms and the quantile by bounded
// bisection.
type Kolmogorov struct{}

// NewKolmogorov returns the parameter-free Kolmogorov law.
func NewKolmogorov() Kolmogorov { return Kolmogorov{} }

// seriesSplit is the crossover between the theta-function form (accurate
// for small x) and the alternating tail series (accurate for large x).
const seriesSplit = 1.18

func (Kolmogorov) Name() string { return "kolmogorov" }

func (k Kolmogorov) CDF(x float64) float64 {
	if x <= 0 {
		return 0
	}
	if x < seriesSplit {
		// K(x) = sqrt(2*pi)/x * sum_{j>=1} exp(-(2j-1)^2 pi^2 / (8x^2))
		factor := math.Sqrt(2*math.Pi) / x
		w := math.Pi * math.Pi / (8 * x * x)
		var sum float64
		for j := 1; j <= 20; j++ {
			m := float64(2*j - 1)
			term := math.Exp(-m * m * w)
			sum += term
			if term < 1e-17 {
				break
			}
		}
		return factor * sum
	}
	return 1 - k.tailSeries(x)
}

func (k Kolmogorov) Survival(x float64) float64 {
	if x <= 0 {
		return 1
	}
	if x < seriesSplit {
		// The CDF is small here; the subtraction loses nothing.
		return 1 - k.CDF(x)
	}
	return k.tailSeries(x)
}

// tailSeries evaluates P(K > x) = 2 sum_{j>=1} (-1)^{j-1} exp(-2 j^2 x^2),
// the direct tail form used for x past the crossover.
func (Kolmogorov) tailSeries(x float64) float64 {
	var sum float64
	sign := 1.0
	for j := 1; j <= 100; j++ {
		jf := float64(j)
		term := math.Exp(-2 * jf * jf * x * x)
		sum += sign * term
		if term < 1e-17 {
			break
		}
		sign = -sign
	}
	p := 2 * sum
	if p < 0 {
		return 0
	}
	if p > 1 {
		return 1
	}
	return p
}

func (k Kolmogorov) Quantile(p float64) (float64, error) {
	if err := checkProbability(p); err != nil {
		return 0, err
	}
	hi, err := bracketUpper(k.CDF, 1, p)
	if err != nil {
		return 0, err
	}
	return invertCDF(k.CDF, 0, hi, p, invertTol, invertMaxIter)
}

func (Kolmogorov) Params() map[string]float64 {
	return map[string]float64{}
}
