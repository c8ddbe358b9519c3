package dist

import (
	"gonum.org/v1/gonum/stat/distuv"

	"hzero/domain/core"
)

// ChiSquared is a chi-square distribution with k degrees of freedom.
type ChiSquared struct {
	dist distuv.ChiSquared
}

// NewChiSquared creates a chi-square distribution, failing for
// non-positive degrees of freedom.
func NewChiSquared(k float64) (ChiSquared, error) {
	if !(k > 0) {
		return ChiSquared{}, core.NewDomainError("chi-square degrees of freedom", k)
	}
	return ChiSquared{dist: distuv.ChiSquared{K: k}}, nil
}

func (c ChiSquared) Name() string { return "chi_square" }

func (c ChiSquared) CDF(x float64) float64 { return c.dist.CDF(x) }

func (c ChiSquared) Survival(x float64) float64 { return c.dist.Survival(x) }

func (c ChiSquared) Quantile(p float64) (float64, error) {
	if err := checkProbability(p); err != nil {
		return 0, err
	}
	return c.dist.Quantile(p), nil
}

func (c ChiSquared) Params() map[string]float64 {
	return map[string]float64{"k": c.dist.K}
}
