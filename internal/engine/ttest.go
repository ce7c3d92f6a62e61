package engine

import (
	"math"

	"github.com/montanaflynn/stats"

	"simlab/domain/core"
)

// TTestResult holds the outcome of one two-sample t-test.
type TTestResult struct {
	TStat      float64
	PValue     float64
	EffectSize float64
}

// TTest performs a two-sample t-test assuming equal variances.
//
// The t-statistic uses the pooled standard error sqrt(v1/n1 + v2/n2) while
// Cohen's d uses the unpooled average of variances sqrt((v1+v2)/2). The two
// denominators differ on purpose; callers depend on these exact numbers.
func TTest(group1, group2 []float64) (TTestResult, error) {
	if len(group1) == 0 || len(group2) == 0 {
		return TTestResult{}, core.NewEmptyInputError("groups cannot be empty")
	}

	n1 := float64(len(group1))
	n2 := float64(len(group2))

	mean1, _ := stats.Mean(group1)
	mean2, _ := stats.Mean(group2)

	var1 := sampleVariance(group1, mean1)
	var2 := sampleVariance(group2, mean2)

	pooledSE := math.Sqrt(var1/n1 + var2/n2)
	if pooledSE == 0 {
		return TTestResult{}, core.NewDegenerateError("pooled standard error is zero")
	}

	tStat := (mean1 - mean2) / pooledSE

	// Simplified equal-n degrees of freedom, not Welch-Satterthwaite.
	df := n1 + n2 - 2

	pValue, err := TwoTailedPValue(tStat, df)
	if err != nil {
		return TTestResult{}, err
	}

	pooledStd := math.Sqrt((var1 + var2) / 2)
	effectSize := (mean1 - mean2) / pooledStd

	return TTestResult{
		TStat:      tStat,
		PValue:     pValue,
		EffectSize: effectSize,
	}, nil
}

// sampleVariance computes the Bessel-corrected variance around a known mean.
func sampleVariance(data []float64, mean float64) float64 {
	sumSq := 0.0
	for _, v := range data {
		diff := v - mean
		sumSq += diff * diff
	}
	return sumSq / float64(len(data)-1)
}
