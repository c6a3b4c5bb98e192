package likelihood

import (
	"math/rand"

	"gogp/domain/core"
	"gogp/domain/links"
)

// Likelihood is the exponential-family observation model seam that GP
// inference drivers (Laplace, EP, variational) code against. Methods
// returning core.ErrLinkNotSupported have no closed form for the
// configured link; callers fall back to quadrature at a higher layer.
type Likelihood interface {
	Name() string
	Link() links.Link
	LogConcave() bool

	NormalizeLabels(y []float64) ([]float64, error)
	Likelihood(linkF, y []float64) (float64, error)
	LogLikelihood(linkF, y []float64) (float64, error)
	DLogPDFDLink(linkF, y []float64) ([]float64, error)
	D2LogPDFDLink2(linkF, y []float64) ([]float64, error)
	D3LogPDFDLink3(linkF, y []float64) ([]float64, error)

	MomentsMatchEP(label, tauI, vI float64) (zHat, muHat, sigma2Hat float64, err error)
	PredictiveMean(mu, variance float64) (float64, error)
	PredictiveVariance(mu, variance, predMean float64) (float64, error)

	Sample(rng *rand.Rand, latentF []float64) []float64
}

// checkShapes rejects length mismatches up front; nothing here
// broadcasts silently.
func checkShapes(linkF, y []float64) error {
	if len(linkF) != len(y) {
		return core.NewShapeMismatchError(len(linkF), len(y))
	}
	return nil
}
