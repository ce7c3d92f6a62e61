package sampling

import (
	"math/rand"

	"simlab/domain/core"
)

// GenerateGroups draws two independent i.i.d. normal samples of length n,
// one per group. The random source is passed explicitly so runs can be
// seeded deterministically; each call draws fresh values, nothing is cached
// across trials.
func GenerateGroups(rng *rand.Rand, mean1, std1, mean2, std2 float64, n int) ([]float64, []float64, error) {
	if std1 <= 0 || std2 <= 0 {
		return nil, nil, core.NewParameterError("standard deviations", "must be positive")
	}
	if n <= 0 {
		return nil, nil, core.NewParameterError("sample size", "must be positive")
	}

	group1 := make([]float64, n)
	for i := range group1 {
		group1[i] = mean1 + std1*rng.NormFloat64()
	}

	group2 := make([]float64, n)
	for i := range group2 {
		group2[i] = mean2 + std2*rng.NormFloat64()
	}

	return group1, group2, nil
}
