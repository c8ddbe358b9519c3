package dist

import (
	"gonum.org/v1/gonum/stat/distuv"

	"hzero/domain/core"
)

// Normal is a normal distribution with mean mu and standard deviation
// sigma. Immutable once constructed.
type Normal struct {
	dist distuv.Normal
}

// NewNormal creates a normal distribution, failing for non-positive sigma.
func NewNormal(mu, sigma float64) (Normal, error) {
	if !(sigma > 0) {
		return Normal{}, core.NewDomainError("normal sigma", sigma)
	}
	return Normal{dist: distuv.Normal{Mu: mu, Sigma: sigma}}, nil
}

// StandardNormal returns the normal(0,1) law governing z-statistics.
func StandardNormal() Normal {
	return Normal{dist: distuv.UnitNormal}
}

func (n Normal) Name() string { return "normal" }

func (n Normal) CDF(x float64) float64 { return n.dist.CDF(x) }

func (n Normal) Survival(x float64) float64 { return n.dist.Survival(x) }

func (n Normal) Quantile(p float64) (float64, error) {
	if err := checkProbability(p); err != nil {
		return 0, err
	}
	return n.dist.Quantile(p), nil
}

func (n Normal) Params() map[string]float64 {
	return map[string]float64{"mu": n.dist.Mu, "sigma": n.dist.Sigma}
}
