package simulation

import (
	"math"

	"simlab/domain/core"
)

// ============================================================================
// RUN CONFIGURATION
// ============================================================================

// Params specifies a complete simulation run. Immutable once a run starts.
type Params struct {
	Group1Mean         float64 `json:"group1_mean"`
	Group1Std          float64 `json:"group1_std"`
	Group2Mean         float64 `json:"group2_mean"`
	Group2Std          float64 `json:"group2_std"`
	SampleSizePerGroup int     `json:"sample_size_per_group"`
	NumSimulations     int     `json:"num_simulations"`
	// HypothesizedEffectSize is accepted for interface compatibility but is
	// not consumed by any computation.
	HypothesizedEffectSize float64 `json:"hypothesized_effect_size"`
	AlphaLevel             float64 `json:"alpha_level"`
}

// Validate checks the run configuration before any sampling happens.
func (p Params) Validate() error {
	if p.Group1Std <= 0 || p.Group2Std <= 0 {
		return core.NewParameterError("standard deviations", "must be positive")
	}
	if p.SampleSizePerGroup <= 0 {
		return core.NewParameterError("sample_size_per_group", "must be positive")
	}
	if p.NumSimulations <= 0 {
		return core.NewParameterError("num_simulations", "must be positive")
	}
	if p.AlphaLevel <= 0 || p.AlphaLevel >= 1 {
		return core.NewParameterError("alpha_level", "must be between 0 and 1")
	}
	return nil
}

// TrueEffectSize returns the population Cohen's d implied by the parameters.
// Used once per run as the reference value for interval coverage.
func (p Params) TrueEffectSize() float64 {
	return (p.Group1Mean - p.Group2Mean) /
		math.Sqrt((p.Group1Std*p.Group1Std+p.Group2Std*p.Group2Std)/2)
}

// ============================================================================
// PER-TRIAL OUTPUT
// ============================================================================

// Interval is a two-sided confidence interval with Lower <= Upper.
type Interval struct {
	Lower float64 `json:"lower"`
	Upper float64 `json:"upper"`
}

// Width returns the interval width.
func (i Interval) Width() float64 {
	return i.Upper - i.Lower
}

// Contains reports whether v lies inside the interval, endpoints included.
func (i Interval) Contains(v float64) bool {
	return v >= i.Lower && v <= i.Upper
}

// Result captures the statistics of a single trial. Immutable once produced.
type Result struct {
	PValue             float64  `json:"p_value"`
	EffectSize         float64  `json:"effect_size"`
	ConfidenceInterval Interval `json:"confidence_interval"`
	SValue             float64  `json:"s_value"`
	Significant        bool     `json:"significant"`
}

// ============================================================================
// AGGREGATE OUTPUT
// ============================================================================

// HistogramBin is one equal-width slice of the p-value distribution.
// Bins partition [0,1]; the final bin is closed on both ends, all others
// closed-open, so every p-value falls in exactly one bin.
type HistogramBin struct {
	BinStart    float64 `json:"bin_start"`
	BinEnd      float64 `json:"bin_end"`
	Count       int     `json:"count"`
	Significant bool    `json:"significant"`
}

// AggregatedResults folds all trial outputs into one summary. Created once,
// at the end of a run, and read-only afterward.
type AggregatedResults struct {
	IndividualResults []Result       `json:"individual_results"`
	PValueHistogram   []HistogramBin `json:"p_value_histogram"`
	SignificantCount  int            `json:"significant_count"`
	TotalCount        int            `json:"total_count"`
	MeanEffectSize    float64        `json:"mean_effect_size"`
	EffectSizeCI      Interval       `json:"effect_size_ci"`
	CICoverage        float64        `json:"ci_coverage"`
	MeanCIWidth       float64        `json:"mean_ci_width"`
}
