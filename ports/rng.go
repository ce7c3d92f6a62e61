package ports

import (
	"math/rand"
)

// RNGPort provides seeded random number generation for simulation runs.
// Implementations must hand out an independent source per call so concurrent
// runs never share generator state.
type RNGPort interface {
	// SeededStream creates a deterministic random number generator for a
	// named operation.
	SeededStream(name string, seed int64) *rand.Rand

	// RunStream derives a generator for a specific run. The same runID and
	// base seed always produce the same stream.
	RunStream(runID string, baseSeed int64) *rand.Rand
}
