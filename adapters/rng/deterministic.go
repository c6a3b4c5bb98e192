package rng

import (
	"hash/fnv"
	"math/rand"

	"gogp/domain/core"
)

// Deterministic implements ports.RNG. Stream names are mixed into the
// base seed with FNV-1a so distinct stages of the same run get
// independent but reproducible streams.
type Deterministic struct{}

// NewDeterministic creates a deterministic RNG provider
func NewDeterministic() *Deterministic {
	return &Deterministic{}
}

// SeededStream creates a reproducible stream for a named operation
func (d *Deterministic) SeededStream(name string, seed int64) *rand.Rand {
	return rand.New(rand.NewSource(mixSeed(name, seed)))
}

// Stream creates a reproducible stream scoped to one run and stage
func (d *Deterministic) Stream(runID core.RunID, stage string, baseSeed int64) *rand.Rand {
	return d.SeededStream(runID.String()+"/"+stage, baseSeed)
}

func mixSeed(name string, seed int64) int64 {
	h := fnv.New64a()
	h.Write([]byte(name))
	return seed ^ int64(h.Sum64())
}
