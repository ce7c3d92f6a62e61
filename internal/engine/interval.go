package engine

import (
	"math"

	"simlab/domain/core"
)

// EffectSizeInterval computes an approximate confidence interval around an
// observed Cohen's d for two groups of sizes n1 and n2.
//
// The standard error is the large-sample approximation
// sqrt((n1+n2)/(n1*n2) + d^2/(2*(n1+n2))), not an exact noncentral-t
// interval. Downstream coverage numbers are calibrated against this form.
func EffectSizeInterval(effectSize float64, n1, n2 int, confidenceLevel float64) (lower, upper float64, err error) {
	if confidenceLevel <= 0 || confidenceLevel >= 1 {
		return 0, 0, core.NewParameterError("confidence_level", "must be between 0 and 1")
	}

	df := float64(n1 + n2 - 2)
	alpha := 1 - confidenceLevel

	n1f := float64(n1)
	n2f := float64(n2)
	se := math.Sqrt((n1f+n2f)/(n1f*n2f) + effectSize*effectSize/(2*(n1f+n2f)))

	tCrit, err := TCritical(df, alpha)
	if err != nil {
		return 0, 0, err
	}

	margin := tCrit * se
	return effectSize - margin, effectSize + margin, nil
}
