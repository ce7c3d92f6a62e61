package engine

import "math"

// SValue converts a p-value to Shannon information (bits of evidence against
// the null hypothesis). The t-test never produces exactly 0 or 1, but both
// edges are handled: p <= 0 maps to +Inf, p >= 1 maps to 0.
func SValue(pValue float64) float64 {
	if pValue <= 0 {
		return math.Inf(1)
	}
	if pValue >= 1 {
		return 0
	}
	return -math.Log2(pValue)
}
