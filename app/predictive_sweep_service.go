package app

import (
	"context"
	"math"

	"golang.org/x/sync/errgroup"

	"gogp/domain/core"
	"gogp/domain/likelihood"
	"gogp/internal"
	"gogp/internal/errors"
)

// PosteriorCell is one Gaussian posterior over the latent value at a
// prediction point.
type PosteriorCell struct {
	Mu       float64 `json:"mu"`
	Variance float64 `json:"variance"`
}

// CellResult holds the predictive class probability for one cell.
// VarClass1 is nil when the configured link has no closed-form
// predictive variance (the likelihood's NaN sentinel).
type CellResult struct {
	PosteriorCell
	ProbClass1 float64  `json:"prob_class1"`
	VarClass1  *float64 `json:"var_class1,omitempty"`
}

// SweepManifest captures one predictive sweep: which link produced it
// and the per-cell results in input order.
type SweepManifest struct {
	RunID core.RunID   `json:"run_id"`
	Link  string       `json:"link"`
	Cells []CellResult `json:"cells"`
}

// PredictiveSweepService evaluates predictive class probabilities over
// a grid of posterior cells. Cells are independent, so they are
// evaluated concurrently under a bounded errgroup.
type PredictiveSweepService struct {
	lik         likelihood.Likelihood
	concurrency int
	logger      *internal.Logger
}

// NewPredictiveSweepService creates a sweep service over the given
// likelihood. Concurrency below 1 is treated as 1.
func NewPredictiveSweepService(lik likelihood.Likelihood, concurrency int) *PredictiveSweepService {
	if concurrency < 1 {
		concurrency = 1
	}
	return &PredictiveSweepService{
		lik:         lik,
		concurrency: concurrency,
		logger:      internal.DefaultLogger,
	}
}

// Run computes predictive means (and variances where a closed form
// exists) for every cell. A capability error from the likelihood
// aborts the sweep; no result is silently approximated.
func (s *PredictiveSweepService) Run(ctx context.Context, cells []PosteriorCell) (*SweepManifest, error) {
	results := make([]CellResult, len(cells))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(s.concurrency)
	for i, cell := range cells {
		i, cell := i, cell
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			pm, err := s.lik.PredictiveMean(cell.Mu, cell.Variance)
			if err != nil {
				return err
			}
			res := CellResult{PosteriorCell: cell, ProbClass1: pm}
			pv, err := s.lik.PredictiveVariance(cell.Mu, cell.Variance, pm)
			if err != nil {
				return err
			}
			if !math.IsNaN(pv) {
				res.VarClass1 = &pv
			}
			results[i] = res
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, errors.Wrapf(err, "predictive sweep failed for %s link", s.lik.Link().Name())
	}

	manifest := &SweepManifest{
		RunID: core.NewRunID(),
		Link:  s.lik.Link().Name(),
		Cells: results,
	}
	s.logger.Debug("sweep %s: %d cells through %s link", manifest.RunID, len(cells), manifest.Link)
	return manifest, nil
}

// GridCells builds a one-dimensional sweep grid: steps evenly spaced
// posterior means over [muMin, muMax], all at the same variance.
func GridCells(muMin, muMax float64, steps int, variance float64) []PosteriorCell {
	if steps <= 1 {
		return []PosteriorCell{{Mu: muMin, Variance: variance}}
	}
	cells := make([]PosteriorCell, steps)
	width := (muMax - muMin) / float64(steps-1)
	for i := range cells {
		cells[i] = PosteriorCell{Mu: muMin + float64(i)*width, Variance: variance}
	}
	return cells
}
