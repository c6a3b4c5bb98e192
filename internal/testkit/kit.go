package testkit

import (
	"math/rand"

	"github.com/montanaflynn/stats"
)

// Sampler draws one binary observation per latent value. Satisfied by
// the likelihood implementations; declared here to keep the kit free
// of domain imports.
type Sampler interface {
	Sample(rng *rand.Rand, latentF []float64) []float64
}

// Kit synthesizes binary-classification fixtures and computes
// empirical summaries of sampled observations.
type Kit struct {
	rng *rand.Rand
}

// New creates a test kit drawing from the given stream
func New(rng *rand.Rand) *Kit {
	return &Kit{rng: rng}
}

// LatentGrid returns n evenly spaced latent values over [min, max]
func (k *Kit) LatentGrid(min, max float64, n int) []float64 {
	if n <= 1 {
		return []float64{min}
	}
	out := make([]float64, n)
	step := (max - min) / float64(n-1)
	for i := range out {
		out[i] = min + float64(i)*step
	}
	return out
}

// LatentDraws returns n normal draws with the given standard deviation
func (k *Kit) LatentDraws(n int, scale float64) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = scale * k.rng.NormFloat64()
	}
	return out
}

// Labels samples one observation per latent value through s
func (k *Kit) Labels(s Sampler, latentF []float64) []float64 {
	return s.Sample(k.rng, latentF)
}

// EmpiricalFrequency returns the fraction of 1s in a label vector
func (k *Kit) EmpiricalFrequency(labels []float64) float64 {
	freq, err := stats.Mean(labels)
	if err != nil {
		return 0
	}
	return freq
}

// Summary returns the mean and standard deviation of data
func (k *Kit) Summary(data []float64) (mean, sd float64, err error) {
	mean, err = stats.Mean(data)
	if err != nil {
		return 0, 0, err
	}
	sd, err = stats.StandardDeviation(data)
	if err != nil {
		return 0, 0, err
	}
	return mean, sd, nil
}
