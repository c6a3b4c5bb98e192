package likelihood

import (
	"math"
	"math/rand"

	"gonum.org/v1/gonum/stat/distuv"

	"gogp/domain/core"
	"gogp/domain/links"
)

// Bernoulli is the binary-classification observation model
//
//	p(y_i | lambda(f_i)) = lambda(f_i)^y_i * (1 - lambda(f_i))^(1-y_i)
//
// where lambda is the configured link function. Labels are {0,1} on
// the public surface; NormalizeLabels remaps to {-1,1} for algorithms
// that prefer the sign convention.
//
// All methods are pure functions of their arguments. Divide-prone
// formulas run on raw IEEE-754 arithmetic: link values of exactly 0 or
// 1 yield signed infinities that propagate mathematically rather than
// trapping, so concurrent callers share no numeric-error state.
type Bernoulli struct {
	link       links.Link
	logConcave bool
}

// New creates a Bernoulli likelihood around the given link function,
// defaulting to probit when link is nil. The likelihood is log-concave
// exactly for the probit and Heaviside variants.
func New(link links.Link) *Bernoulli {
	if link == nil {
		link = links.NewProbit()
	}
	b := &Bernoulli{link: link}
	switch link.Kind() {
	case links.Probit, links.Heaviside:
		b.logConcave = true
	}
	return b
}

// Name returns the likelihood name
func (b *Bernoulli) Name() string { return "bernoulli" }

// Link returns the configured link function
func (b *Bernoulli) Link() links.Link { return b.link }

// LogConcave reports whether the log-likelihood is concave in the
// latent function value
func (b *Bernoulli) LogConcave() bool { return b.logConcave }

// NormalizeLabels validates that every label is exactly 0 or 1 and
// returns a copy with 0 remapped to -1. Binary classification
// algorithms work better with classes {-1, 1}.
func (b *Bernoulli) NormalizeLabels(y []float64) ([]float64, error) {
	out := make([]float64, len(y))
	for i, v := range y {
		switch v {
		case 0:
			out[i] = -1
		case 1:
			out[i] = 1
		default:
			return nil, core.NewLabelDomainError(i, v)
		}
	}
	return out, nil
}

// Likelihood evaluates the joint probability of the whole batch: the
// product over elements of linkF_i where y_i is nonzero, else
// 1-linkF_i. Computed in log space and exponentiated back for
// stability. Unlike the derivative methods this aggregates to a single
// scalar.
func (b *Bernoulli) Likelihood(linkF, y []float64) (float64, error) {
	if err := checkShapes(linkF, y); err != nil {
		return 0, err
	}
	sum := 0.0
	for i, p := range linkF {
		if y[i] != 0 {
			sum += math.Log(p)
		} else {
			sum += math.Log(1 - p)
		}
	}
	return math.Exp(sum), nil
}

// LogLikelihood evaluates the summed log-probability of the batch:
// log(linkF_i) where y_i == 1, log(1-linkF_i) where y_i == 0.
// Link values of exactly 0 or 1 contribute -Inf.
func (b *Bernoulli) LogLikelihood(linkF, y []float64) (float64, error) {
	if err := checkShapes(linkF, y); err != nil {
		return 0, err
	}
	sum := 0.0
	for i, p := range linkF {
		if y[i] == 1 {
			sum += math.Log(p)
		} else {
			sum += math.Log(1 - p)
		}
	}
	return sum, nil
}

// DLogPDFDLink is the elementwise gradient of the log-density with
// respect to the link value: 1/linkF_i where y_i is nonzero, else
// -1/(1-linkF_i).
func (b *Bernoulli) DLogPDFDLink(linkF, y []float64) ([]float64, error) {
	if err := checkShapes(linkF, y); err != nil {
		return nil, err
	}
	grad := make([]float64, len(linkF))
	for i, p := range linkF {
		if y[i] != 0 {
			grad[i] = 1 / p
		} else {
			grad[i] = -1 / (1 - p)
		}
	}
	return grad, nil
}

// D2LogPDFDLink2 is the elementwise second derivative of the
// log-density: -1/linkF_i^2 where y_i is nonzero, else
// -1/(1-linkF_i)^2.
//
// The full Hessian over the batch is diagonal since the likelihood
// factorizes over cases (y_i depends only on linkF_i), so only the
// diagonal is ever materialized.
func (b *Bernoulli) D2LogPDFDLink2(linkF, y []float64) ([]float64, error) {
	if err := checkShapes(linkF, y); err != nil {
		return nil, err
	}
	hess := make([]float64, len(linkF))
	for i, p := range linkF {
		if y[i] != 0 {
			hess[i] = -1 / (p * p)
		} else {
			q := 1 - p
			hess[i] = -1 / (q * q)
		}
	}
	return hess, nil
}

// D3LogPDFDLink3 is the elementwise third derivative of the
// log-density: 2/linkF_i^3 where y_i is nonzero, else
// -2/(1-linkF_i)^3.
func (b *Bernoulli) D3LogPDFDLink3(linkF, y []float64) ([]float64, error) {
	if err := checkShapes(linkF, y); err != nil {
		return nil, err
	}
	d3 := make([]float64, len(linkF))
	for i, p := range linkF {
		if y[i] != 0 {
			d3[i] = 2 / (p * p * p)
		} else {
			q := 1 - p
			d3[i] = -2 / (q * q * q)
		}
	}
	return d3, nil
}

// MomentsMatchEP computes the zeroth, first and second moments of the
// tilted distribution (cavity times exact likelihood) for one
// observation in the EP algorithm. tauI is the precision and vI the
// scaled mean of the cavity distribution. The label must be exactly
// 0 or 1.
//
// Closed forms exist for the probit and Heaviside links only; any
// other variant returns core.ErrLinkNotSupported rather than silently
// approximating.
func (b *Bernoulli) MomentsMatchEP(label, tauI, vI float64) (zHat, muHat, sigma2Hat float64, err error) {
	var sign float64
	switch label {
	case 1:
		sign = 1
	case 0:
		sign = -1
	default:
		return 0, 0, 0, core.NewBadObservationError(label)
	}

	switch b.link.Kind() {
	case links.Probit:
		c := math.Sqrt(tauI*tauI + tauI)
		z := sign * vI / c
		zHat = distuv.UnitNormal.CDF(z)
		phi := distuv.UnitNormal.Prob(z)
		muHat = vI/tauI + sign*phi/(zHat*c)
		sigma2Hat = 1/tauI - (phi/((tauI*tauI+tauI)*zHat))*(z+phi/zHat)
		return zHat, muHat, sigma2Hat, nil

	case links.Heaviside:
		a := sign * vI / math.Sqrt(tauI)
		zHat = distuv.UnitNormal.CDF(a)
		n := distuv.UnitNormal.Prob(a)
		r := n / zHat
		muHat = vI/tauI + sign*r/math.Sqrt(tauI)
		sigma2Hat = (1 - a*r - r*r) / tauI
		return zHat, muHat, sigma2Hat, nil

	default:
		return 0, 0, 0, core.NewLinkNotSupportedError("EP moment matching", b.link.Name())
	}
}

// PredictiveMean computes the closed-form predictive class probability
// for a Gaussian posterior over the latent value with the given mean
// and variance. Only the probit and Heaviside links have a closed
// form.
func (b *Bernoulli) PredictiveMean(mu, variance float64) (float64, error) {
	switch b.link.Kind() {
	case links.Probit:
		return distuv.UnitNormal.CDF(mu / math.Sqrt(1+variance)), nil
	case links.Heaviside:
		return distuv.UnitNormal.CDF(mu / math.Sqrt(variance)), nil
	default:
		return 0, core.NewLinkNotSupportedError("predictive mean", b.link.Name())
	}
}

// PredictiveVariance computes the closed-form predictive variance.
// The Heaviside link is a deterministic class boundary, so its
// predictive variance is exactly 0. Every other variant returns NaN:
// an "undefined" sentinel, not an error, which callers must check for.
func (b *Bernoulli) PredictiveVariance(mu, variance, predMean float64) (float64, error) {
	if b.link.Kind() == links.Heaviside {
		return 0, nil
	}
	return math.NaN(), nil
}

// Sample draws one Bernoulli observation per latent value: each
// element of latentF is squashed through the link to a success
// probability and one trial is drawn from the given stream. The output
// has the same shape as the input and contains only 0s and 1s.
func (b *Bernoulli) Sample(rng *rand.Rand, latentF []float64) []float64 {
	out := make([]float64, len(latentF))
	for i, f := range latentF {
		if rng.Float64() < b.link.Transf(f) {
			out[i] = 1
		}
	}
	return out
}
