package dist

import (
	"gonum.org/v1/gonum/stat/distuv"

	"hzero/domain/core"
)

// StudentsT is a standardized Student's t-distribution with nu degrees of
// freedom. As nu grows the law converges to the standard normal; there is
// no large-nu special case, the CDF itself carries the limit.
type StudentsT struct {
	dist distuv.StudentsT
}

// NewStudentsT creates a t-distribution, failing for non-positive degrees
// of freedom.
func NewStudentsT(nu float64) (StudentsT, error) {
	if !(nu > 0) {
		return StudentsT{}, core.NewDomainError("t degrees of freedom", nu)
	}
	return StudentsT{dist: distuv.StudentsT{Mu: 0, Sigma: 1, Nu: nu}}, nil
}

func (t StudentsT) Name() string { return "t" }

func (t StudentsT) CDF(x float64) float64 { return t.dist.CDF(x) }

func (t StudentsT) Survival(x float64) float64 { return t.dist.Survival(x) }

func (t StudentsT) Quantile(p float64) (float64, error) {
	if err := checkProbability(p); err != nil {
		return 0, err
	}
	return t.dist.Quantile(p), nil
}

func (t StudentsT) Params() map[string]float64 {
	return map[string]float64{"nu": t.dist.Nu}
}
