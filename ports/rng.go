package ports

import (
	"math/rand"

	"gogp/domain/core"
)

// RNG provides seeded random number generation for deterministic operations
type RNG interface {
	// SeededStream creates a deterministic random number generator for a named operation
	SeededStream(name string, seed int64) *rand.Rand

	// Stream creates a deterministic RNG stream for a specific run/stage
	// This ensures sampling stages produce identical results for the same run
	Stream(runID core.RunID, stage string, baseSeed int64) *rand.Rand
}
