package app

import (
	"math/rand"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/montanaflynn/stats"

	"simlab/domain/simulation"
	"simlab/internal"
	"simlab/internal/engine"
	"simlab/internal/sampling"
	"simlab/ports"
)

const (
	// Per-trial effect size intervals are always computed at 95%,
	// independent of the run's alpha level.
	trialConfidenceLevel = 0.95

	defaultHistogramBins = 20
)

// Capabilities describes the engine for informational endpoints.
type Capabilities struct {
	Version                string   `json:"version"`
	Capabilities           []string `json:"capabilities"`
	MaxSimulations         int      `json:"max_simulations"`
	SupportedDistributions []string `json:"supported_distributions"`
}

// RunManifest records identity and timing for one completed run.
type RunManifest struct {
	RunID     string    `json:"run_id"`
	Seed      int64     `json:"seed"`
	Trials    int       `json:"trials"`
	RuntimeMs int64     `json:"runtime_ms"`
	CreatedAt time.Time `json:"created_at"`
}

// SimulationService orchestrates Monte Carlo two-sample testing runs.
// The engine itself is synchronous: a run is one blocking call with no
// internal goroutines and no shared state between trials, so any number of
// runs may execute concurrently as long as each uses its own stream.
type SimulationService struct {
	rng           ports.RNGPort
	seed          int64
	histogramBins int
	logger        *internal.Logger
}

// NewSimulationService creates a simulation service. A histogramBins value
// below 1 falls back to the default of 20.
func NewSimulationService(rngPort ports.RNGPort, seed int64, histogramBins int, logger *internal.Logger) *SimulationService {
	if histogramBins < 1 {
		histogramBins = defaultHistogramBins
	}
	if logger == nil {
		logger = internal.DefaultLogger
	}
	return &SimulationService{
		rng:           rngPort,
		seed:          seed,
		histogramBins: histogramBins,
		logger:        logger,
	}
}

// Run executes a complete simulation against a fresh run-scoped stream.
func (s *SimulationService) Run(params simulation.Params) (*simulation.AggregatedResults, error) {
	results, _, err := s.RunTracked(params)
	return results, err
}

// RunTracked executes a complete simulation and returns a manifest
// identifying the run alongside the aggregate.
func (s *SimulationService) RunTracked(params simulation.Params) (*simulation.AggregatedResults, *RunManifest, error) {
	runID := uuid.NewString()
	stream := s.rng.RunStream(runID, s.seed)

	start := time.Now()
	results, err := s.RunWithStream(params, stream)
	if err != nil {
		return nil, nil, err
	}

	elapsed := time.Since(start)
	s.logger.Debug("run %s: %d trials in %dms", runID, params.NumSimulations, elapsed.Milliseconds())

	return results, &RunManifest{
		RunID:     runID,
		Seed:      s.seed,
		Trials:    params.NumSimulations,
		RuntimeMs: elapsed.Milliseconds(),
		CreatedAt: start.UTC(),
	}, nil
}

// RunWithStream executes a complete simulation against a caller-supplied
// random source, which pins the entire run for reproducibility.
//
// Each trial runs generate -> t-test -> interval -> s-value; any trial
// failure aborts the whole run, and no partial aggregate is ever returned.
func (s *SimulationService) RunWithStream(params simulation.Params, stream *rand.Rand) (*simulation.AggregatedResults, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}

	trueEffectSize := params.TrueEffectSize()

	results := make([]simulation.Result, 0, params.NumSimulations)
	pValues := make([]float64, 0, params.NumSimulations)
	effectSizes := make([]float64, 0, params.NumSimulations)
	ciWidths := make([]float64, 0, params.NumSimulations)
	coverageHits := 0

	for i := 0; i < params.NumSimulations; i++ {
		group1, group2, err := sampling.GenerateGroups(stream,
			params.Group1Mean, params.Group1Std,
			params.Group2Mean, params.Group2Std,
			params.SampleSizePerGroup)
		if err != nil {
			return nil, err
		}

		test, err := engine.TTest(group1, group2)
		if err != nil {
			return nil, err
		}

		lower, upper, err := engine.EffectSizeInterval(test.EffectSize,
			params.SampleSizePerGroup, params.SampleSizePerGroup, trialConfidenceLevel)
		if err != nil {
			return nil, err
		}
		ci := simulation.Interval{Lower: lower, Upper: upper}

		if ci.Contains(trueEffectSize) {
			coverageHits++
		}

		results = append(results, simulation.Result{
			PValue:             test.PValue,
			EffectSize:         test.EffectSize,
			ConfidenceInterval: ci,
			SValue:             engine.SValue(test.PValue),
			Significant:        test.PValue < params.AlphaLevel,
		})

		pValues = append(pValues, test.PValue)
		effectSizes = append(effectSizes, test.EffectSize)
		ciWidths = append(ciWidths, ci.Width())
	}

	significantCount := 0
	for _, r := range results {
		if r.Significant {
			significantCount++
		}
	}

	// NumSimulations > 0 past validation, so the means cannot fail.
	meanEffectSize, _ := stats.Mean(effectSizes)
	meanCIWidth, _ := stats.Mean(ciWidths)

	return &simulation.AggregatedResults{
		IndividualResults: results,
		PValueHistogram:   engine.PValueHistogram(pValues, params.AlphaLevel, s.histogramBins),
		SignificantCount:  significantCount,
		TotalCount:        params.NumSimulations,
		MeanEffectSize:    meanEffectSize,
		EffectSizeCI:      empiricalEffectSizeCI(effectSizes),
		CICoverage:        float64(coverageHits) / float64(params.NumSimulations),
		MeanCIWidth:       meanCIWidth,
	}, nil
}

// empiricalEffectSizeCI takes the 2.5th and 97.5th percentiles of the
// observed effect sizes by direct index: floor(percentile * n), upper bound
// clipped to the last element. The truncating index is deliberate; it keeps
// the aggregate numerically identical across ports of this engine.
func empiricalEffectSizeCI(effectSizes []float64) simulation.Interval {
	sorted := make([]float64, len(effectSizes))
	copy(sorted, effectSizes)
	sort.Float64s(sorted)

	lowerIdx := int(0.025 * float64(len(sorted)))
	upperIdx := int(0.975 * float64(len(sorted)))
	if upperIdx > len(sorted)-1 {
		upperIdx = len(sorted) - 1
	}

	return simulation.Interval{Lower: sorted[lowerIdx], Upper: sorted[upperIdx]}
}

// Info returns the engine's static capability descriptor.
func (s *SimulationService) Info() Capabilities {
	return Capabilities{
		Version: "1.0.0",
		Capabilities: []string{
			"statistical_simulations",
			"p_value_analysis",
			"confidence_intervals",
			"s_value_computation",
			"csv_export",
		},
		MaxSimulations:         100000,
		SupportedDistributions: []string{"normal"},
	}
}
