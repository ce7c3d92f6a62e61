package engine

import (
	"simlab/domain/simulation"
)

// PValueHistogram partitions [0,1] into numBins equal-width bins and counts
// p-value membership per bin. The final bin includes 1.0 so the bins cover
// the closed interval. A bin is significant iff its right edge <= alpha.
// Output is ordered by bin start ascending.
func PValueHistogram(pValues []float64, alpha float64, numBins int) []simulation.HistogramBin {
	binWidth := 1.0 / float64(numBins)
	histogram := make([]simulation.HistogramBin, 0, numBins)

	for i := 0; i < numBins; i++ {
		binStart := float64(i) * binWidth
		binEnd := float64(i+1) * binWidth
		lastBin := i == numBins-1

		count := 0
		for _, p := range pValues {
			if p < binStart {
				continue
			}
			if p < binEnd || (lastBin && p <= binEnd) {
				count++
			}
		}

		histogram = append(histogram, simulation.HistogramBin{
			BinStart:    binStart,
			BinEnd:      binEnd,
			Count:       count,
			Significant: binEnd <= alpha,
		})
	}

	return histogram
}
