package engine

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/stat/distuv"

	"simlab/domain/core"
)

// studentsT builds the Student's t distribution shared by p-value and
// critical-value lookups.
func studentsT(df float64) (distuv.StudentsT, error) {
	if df <= 0 || math.IsNaN(df) {
		return distuv.StudentsT{}, core.NewDistributionError("students-t",
			fmt.Errorf("degrees of freedom must be positive, got %v", df))
	}
	return distuv.StudentsT{Mu: 0, Sigma: 1, Nu: df}, nil
}

// TwoTailedPValue computes the two-tailed p-value for a t-statistic.
func TwoTailedPValue(tStat, df float64) (float64, error) {
	tDist, err := studentsT(df)
	if err != nil {
		return 0, err
	}
	return 2 * (1 - tDist.CDF(math.Abs(tStat))), nil
}

// TCritical returns the two-tailed critical value at 1 - alpha/2.
func TCritical(df, alpha float64) (float64, error) {
	tDist, err := studentsT(df)
	if err != nil {
		return 0, err
	}
	return tDist.Quantile(1 - alpha/2), nil
}
