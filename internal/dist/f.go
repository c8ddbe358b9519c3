package dist

import (
	"gonum.org/v1/gonum/stat/distuv"

	"hzero/domain/core"
)

// F is an F (Fisher-Snedecor) distribution with d1 numerator and d2
// denominator degrees of freedom. Its quantile has no closed inverse
// here, so it is found by bounded bisection on the CDF.
type F struct {
	dist distuv.F
}

// NewF creates an F distribution, failing unless both degrees of freedom
// are positive.
func NewF(d1, d2 float64) (F, error) {
	if !(d1 > 0) {
		return F{}, core.NewDomainError("f numerator degrees of freedom", d1)
	}
	if !(d2 > 0) {
		return F{}, core.NewDomainError("f denominator degrees of freedom", d2)
	}
	return F{dist: distuv.F{D1: d1, D2: d2}}, nil
}

func (f F) Name() string { return "f" }

func (f F) CDF(x float64) float64 { return f.dist.CDF(x) }

func (f F) Survival(x float64) float64 { return f.dist.Survival(x) }

func (f F) Quantile(p float64) (float64, error) {
	if err := checkProbability(p); err != nil {
		return 0, err
	}
	hi, err := bracketUpper(f.dist.CDF, 1, p)
	if err != nil {
		return 0, err
	}
	return invertCDF(f.dist.CDF, 0, hi, p, invertTol, invertMaxIter)
}

func (f F) Params() map[string]float64 {
	return map[string]float64{"d1": f.dist.D1, "d2": f.dist.D2}
}
