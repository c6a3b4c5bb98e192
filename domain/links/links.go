package links

import (
	"math"

	"gonum.org/v1/gonum/stat/distuv"
)

// Kind identifies a link-function variant. Closed-form dispatch in the
// likelihoods switches on this tag rather than on concrete types.
type Kind int

const (
	Probit Kind = iota
	Heaviside
	Logit
)

// String returns the lowercase variant name
func (k Kind) String() string {
	switch k {
	case Probit:
		return "probit"
	case Heaviside:
		return "heaviside"
	case Logit:
		return "logit"
	default:
		return "unknown"
	}
}

// Link maps an unconstrained latent function value to a probability.
// Transf must land in [0, 1] for every real input.
type Link interface {
	Kind() Kind
	Name() string
	Transf(f float64) float64
}

// Differentiable is implemented by links whose squashing function has
// closed-form derivatives. Heaviside does not implement it: the step
// has no derivative at the boundary.
type Differentiable interface {
	Link
	DTransf(f float64) float64
	D2Transf(f float64) float64
	D3Transf(f float64) float64
}

// ProbitLink squashes through the standard normal CDF.
type ProbitLink struct{}

// NewProbit creates a probit link
func NewProbit() *ProbitLink {
	return &ProbitLink{}
}

// Kind returns the variant tag
func (*ProbitLink) Kind() Kind { return Probit }

// Name returns the link name
func (*ProbitLink) Name() string { return Probit.String() }

// Transf maps f to Phi(f)
func (*ProbitLink) Transf(f float64) float64 {
	return distuv.UnitNormal.CDF(f)
}

// DTransf is the standard normal density phi(f)
func (*ProbitLink) DTransf(f float64) float64 {
	return distuv.UnitNormal.Prob(f)
}

// D2Transf is -f*phi(f)
func (*ProbitLink) D2Transf(f float64) float64 {
	return -f * distuv.UnitNormal.Prob(f)
}

// D3Transf is (f^2 - 1)*phi(f)
func (*ProbitLink) D3Transf(f float64) float64 {
	return (f*f - 1) * distuv.UnitNormal.Prob(f)
}

// HeavisideLink is the deterministic step link: class 1 exactly when
// the latent value is positive.
type HeavisideLink struct{}

// NewHeaviside creates a Heaviside step link
func NewHeaviside() *HeavisideLink {
	return &HeavisideLink{}
}

// Kind returns the variant tag
func (*HeavisideLink) Kind() Kind { return Heaviside }

// Name returns the link name
func (*HeavisideLink) Name() string { return Heaviside.String() }

// Transf maps f to 1 when f > 0, else 0
func (*HeavisideLink) Transf(f float64) float64 {
	if f > 0 {
		return 1
	}
	return 0
}

// LogitLink squashes through the logistic sigmoid. It is the general
// variant: no closed-form EP moment matching exists for it, so it
// exercises every quadrature-fallback path in callers.
type LogitLink struct{}

// NewLogit creates a logit link
func NewLogit() *LogitLink {
	return &LogitLink{}
}

// Kind returns the variant tag
func (*LogitLink) Kind() Kind { return Logit }

// Name returns the link name
func (*LogitLink) Name() string { return Logit.String() }

// Transf maps f to 1/(1+exp(-f))
func (*LogitLink) Transf(f float64) float64 {
	return sigmoid(f)
}

// DTransf is p(1-p)
func (*LogitLink) DTransf(f float64) float64 {
	p := sigmoid(f)
	return p * (1 - p)
}

// D2Transf is p(1-p)(1-2p)
func (*LogitLink) D2Transf(f float64) float64 {
	p := sigmoid(f)
	return p * (1 - p) * (1 - 2*p)
}

// D3Transf is p(1-p)(1-6p+6p^2)
func (*LogitLink) D3Transf(f float64) float64 {
	p := sigmoid(f)
	return p * (1 - p) * (1 - 6*p + 6*p*p)
}

func sigmoid(f float64) float64 {
	// Split on sign to avoid overflow in exp for large |f|.
	if f >= 0 {
		return 1 / (1 + math.Exp(-f))
	}
	e := math.Exp(f)
	return e / (1 + e)
}
