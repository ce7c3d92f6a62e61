package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPValueHistogramPartition(t *testing.T) {
	pValues := []float64{0, 0.01, 0.049, 0.05, 0.5, 0.951, 0.999, 1.0}

	for _, numBins := range []int{1, 2, 20, 33} {
		bins := PValueHistogram(pValues, 0.05, numBins)
		require.Len(t, bins, numBins)

		total := 0
		for i, bin := range bins {
			total += bin.Count
			assert.InDelta(t, float64(i)/float64(numBins), bin.BinStart, 1e-12)
			assert.InDelta(t, float64(i+1)/float64(numBins), bin.BinEnd, 1e-12)
		}
		// Every p-value lands in exactly one bin, 1.0 included.
		assert.Equal(t, len(pValues), total, "numBins=%d", numBins)
	}
}

func TestPValueHistogramSignificanceMarking(t *testing.T) {
	bins := PValueHistogram([]float64{0.2}, 0.05, 20)
	require.Len(t, bins, 20)

	// Only the first bin has its right edge at or below alpha = 0.05.
	assert.True(t, bins[0].Significant)
	for _, bin := range bins[1:] {
		assert.False(t, bin.Significant)
	}
}

func TestPValueHistogramBoundaries(t *testing.T) {
	bins := PValueHistogram([]float64{0.05}, 0.05, 20)

	// Bins are closed-open, so 0.05 lands in [0.05, 0.10), not [0, 0.05).
	assert.Equal(t, 0, bins[0].Count)
	assert.Equal(t, 1, bins[1].Count)

	bins = PValueHistogram([]float64{1.0}, 0.05, 20)
	assert.Equal(t, 1, bins[19].Count, "1.0 belongs to the final closed bin")
}

func TestPValueHistogramDeterministic(t *testing.T) {
	pValues := []float64{0.9, 0.1, 0.5, 0.1, 0.3}
	reversed := []float64{0.3, 0.1, 0.5, 0.1, 0.9}

	assert.Equal(t, PValueHistogram(pValues, 0.05, 10), PValueHistogram(reversed, 0.05, 10))
}

func TestPValueHistogramEmptyInput(t *testing.T) {
	bins := PValueHistogram(nil, 0.05, 20)
	require.Len(t, bins, 20)
	for _, bin := range bins {
		assert.Zero(t, bin.Count)
	}
}
