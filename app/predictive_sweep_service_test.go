package app

import (
	"context"
	"errors"
	"math"
	"testing"

	"gogp/domain/core"
	"gogp/domain/likelihood"
	"gogp/domain/links"
)

func TestPredictiveSweepProbit(t *testing.T) {
	lik := likelihood.New(links.NewProbit())
	svc := NewPredictiveSweepService(lik, 4)

	cells := GridCells(-3, 3, 13, 1.0)
	manifest, err := svc.Run(context.Background(), cells)
	if err != nil {
		t.Fatalf("sweep failed: %v", err)
	}

	if manifest.RunID.IsEmpty() {
		t.Error("manifest should carry a run ID")
	}
	if manifest.Link != "probit" {
		t.Errorf("manifest link = %q, want probit", manifest.Link)
	}
	if len(manifest.Cells) != 13 {
		t.Fatalf("expected 13 cells, got %d", len(manifest.Cells))
	}

	// Probabilities must increase with the posterior mean and stay in (0,1)
	prev := -1.0
	for i, cell := range manifest.Cells {
		if cell.ProbClass1 <= 0 || cell.ProbClass1 >= 1 {
			t.Errorf("cell %d probability %v outside (0,1)", i, cell.ProbClass1)
		}
		if cell.ProbClass1 <= prev {
			t.Errorf("cell %d probability not increasing", i)
		}
		prev = cell.ProbClass1

		// Probit has no closed-form predictive variance
		if cell.VarClass1 != nil {
			t.Errorf("cell %d should have no closed-form variance", i)
		}
	}

	// Symmetric grid: the middle cell sits at mu=0
	mid := manifest.Cells[6]
	if math.Abs(mid.ProbClass1-0.5) > 1e-9 {
		t.Errorf("probability at mu=0 is %v, want 0.5", mid.ProbClass1)
	}
}

func TestPredictiveSweepHeavisideVariance(t *testing.T) {
	lik := likelihood.New(links.NewHeaviside())
	svc := NewPredictiveSweepService(lik, 2)

	manifest, err := svc.Run(context.Background(), GridCells(-1, 1, 5, 0.5))
	if err != nil {
		t.Fatalf("sweep failed: %v", err)
	}
	for i, cell := range manifest.Cells {
		if cell.VarClass1 == nil {
			t.Fatalf("cell %d missing Heaviside predictive variance", i)
		}
		if *cell.VarClass1 != 0 {
			t.Errorf("cell %d variance %v, want 0", i, *cell.VarClass1)
		}
	}
}

func TestPredictiveSweepUnsupportedLink(t *testing.T) {
	lik := likelihood.New(links.NewLogit())
	svc := NewPredictiveSweepService(lik, 2)

	_, err := svc.Run(context.Background(), GridCells(-1, 1, 3, 1.0))
	if err == nil {
		t.Fatal("expected capability error for logit link")
	}
	if !errors.Is(err, core.ErrLinkNotSupported) {
		t.Errorf("error should wrap ErrLinkNotSupported, got %v", err)
	}
}

func TestGridCells(t *testing.T) {
	cells := GridCells(-2, 2, 5, 0.7)
	if len(cells) != 5 {
		t.Fatalf("expected 5 cells, got %d", len(cells))
	}
	wantMus := []float64{-2, -1, 0, 1, 2}
	for i, cell := range cells {
		if math.Abs(cell.Mu-wantMus[i]) > 1e-12 {
			t.Errorf("cell %d mu = %v, want %v", i, cell.Mu, wantMus[i])
		}
		if cell.Variance != 0.7 {
			t.Errorf("cell %d variance = %v, want 0.7", i, cell.Variance)
		}
	}

	single := GridCells(1, 9, 1, 0.5)
	if len(single) != 1 || single[0].Mu != 1 {
		t.Errorf("degenerate grid should collapse to muMin, got %+v", single)
	}
}
