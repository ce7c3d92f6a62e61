package rng

import (
	"math/rand"
	"time"
)

// Adapter implements the RNGPort interface over math/rand sources.
type Adapter struct{}

// New creates a new RNG adapter.
func New() *Adapter {
	return &Adapter{}
}

// SeededStream creates a deterministic random number generator for a named operation
func (a *Adapter) SeededStream(name string, seed int64) *rand.Rand {
	return rand.New(rand.NewSource(int64(hashString(name)) + seed))
}

// RunStream derives a generator for a specific run by mixing the run ID into
// the base seed, so distinct runs draw from distinct streams.
func (a *Adapter) RunStream(runID string, baseSeed int64) *rand.Rand {
	seed := baseSeed
	if runID != "" {
		seed += int64(hashString(runID))
	}
	return rand.New(rand.NewSource(seed))
}

// ProcessSeed returns a per-process seed for callers that did not configure
// a fixed one.
func ProcessSeed() int64 {
	return time.Now().UnixNano()
}

// hashString creates a simple hash for deterministic seeding
func hashString(s string) uint32 {
	var hash uint32 = 5381
	for _, c := range s {
		hash = ((hash << 5) + hash) + uint32(c) // djb2 algorithm
	}
	return hash
}
