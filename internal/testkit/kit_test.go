package testkit

import (
	"math"
	"math/rand"
	"testing"
)

type stepSampler struct{}

func (stepSampler) Sample(rng *rand.Rand, latentF []float64) []float64 {
	out := make([]float64, len(latentF))
	for i, f := range latentF {
		if f > 0 {
			out[i] = 1
		}
	}
	return out
}

func TestLatentGrid(t *testing.T) {
	kit := New(rand.New(rand.NewSource(1)))

	grid := kit.LatentGrid(-1, 1, 5)
	want := []float64{-1, -0.5, 0, 0.5, 1}
	if len(grid) != len(want) {
		t.Fatalf("expected %d points, got %d", len(want), len(grid))
	}
	for i := range want {
		if math.Abs(grid[i]-want[i]) > 1e-12 {
			t.Errorf("point %d = %v, want %v", i, grid[i], want[i])
		}
	}
}

func TestLabelsAndEmpiricalFrequency(t *testing.T) {
	kit := New(rand.New(rand.NewSource(2)))

	latent := []float64{-1, -1, 1, 1}
	labels := kit.Labels(stepSampler{}, latent)
	if got := kit.EmpiricalFrequency(labels); got != 0.5 {
		t.Errorf("frequency = %v, want 0.5", got)
	}
}

func TestLatentDrawsSummary(t *testing.T) {
	kit := New(rand.New(rand.NewSource(3)))

	draws := kit.LatentDraws(50000, 2.0)
	mean, sd, err := kit.Summary(draws)
	if err != nil {
		t.Fatalf("summary failed: %v", err)
	}
	if math.Abs(mean) > 0.05 {
		t.Errorf("mean = %v, want ~0", mean)
	}
	if math.Abs(sd-2.0) > 0.05 {
		t.Errorf("sd = %v, want ~2", sd)
	}
}
