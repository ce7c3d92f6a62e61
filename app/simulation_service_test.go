package app

import (
	"math/rand"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"simlab/adapters/rng"
	"simlab/domain/core"
	"simlab/domain/simulation"
)

func newTestService() *SimulationService {
	return NewSimulationService(rng.New(), 42, 20, nil)
}

func nullParams(simulations int) simulation.Params {
	return simulation.Params{
		Group1Mean:         0,
		Group1Std:          1,
		Group2Mean:         0,
		Group2Std:          1,
		SampleSizePerGroup: 30,
		NumSimulations:     simulations,
		AlphaLevel:         0.05,
	}
}

func TestRunProducesAllTrials(t *testing.T) {
	service := newTestService()

	results, err := service.Run(nullParams(200))
	require.NoError(t, err)

	assert.Len(t, results.IndividualResults, 200)
	assert.Equal(t, 200, results.TotalCount)
	assert.LessOrEqual(t, results.SignificantCount, results.TotalCount)
	assert.GreaterOrEqual(t, results.CICoverage, 0.0)
	assert.LessOrEqual(t, results.CICoverage, 1.0)
	assert.LessOrEqual(t, results.EffectSizeCI.Lower, results.EffectSizeCI.Upper)

	require.Len(t, results.PValueHistogram, 20)
	total := 0
	for _, bin := range results.PValueHistogram {
		total += bin.Count
	}
	assert.Equal(t, 200, total, "histogram bins partition all p-values")

	for _, r := range results.IndividualResults {
		assert.GreaterOrEqual(t, r.PValue, 0.0)
		assert.LessOrEqual(t, r.PValue, 1.0)
		assert.LessOrEqual(t, r.ConfidenceInterval.Lower, r.ConfidenceInterval.Upper)
		assert.GreaterOrEqual(t, r.SValue, 0.0)
		assert.Equal(t, r.PValue < 0.05, r.Significant)
	}
}

func TestRunWithStreamDeterministic(t *testing.T) {
	service := newTestService()
	params := nullParams(50)

	first, err := service.RunWithStream(params, rand.New(rand.NewSource(99)))
	require.NoError(t, err)
	second, err := service.RunWithStream(params, rand.New(rand.NewSource(99)))
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestRunRejectsInvalidParams(t *testing.T) {
	service := newTestService()

	cases := []struct {
		name   string
		mutate func(*simulation.Params)
	}{
		{"zero std", func(p *simulation.Params) { p.Group1Std = 0 }},
		{"zero sample size", func(p *simulation.Params) { p.SampleSizePerGroup = 0 }},
		{"alpha out of range", func(p *simulation.Params) { p.AlphaLevel = 1.5 }},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			params := nullParams(10)
			tc.mutate(&params)
			results, err := service.Run(params)
			require.Error(t, err)
			assert.Nil(t, results, "no partial aggregate on failure")
			assert.True(t, core.IsInvalidParameter(err))
		})
	}
}

func TestNullScenarioErrorRates(t *testing.T) {
	service := newTestService()

	// No true effect: the rejection rate should sit near alpha and the
	// per-trial intervals should cover zero near the nominal 95%.
	results, err := service.RunWithStream(nullParams(1000), rand.New(rand.NewSource(2024)))
	require.NoError(t, err)

	typeIRate := float64(results.SignificantCount) / float64(results.TotalCount)
	assert.InDelta(t, 0.05, typeIRate, 0.03)
	assert.InDelta(t, 0.95, results.CICoverage, 0.03)
	assert.InDelta(t, 0.0, results.MeanEffectSize, 0.05)
}

func TestLargeEffectScenario(t *testing.T) {
	service := newTestService()

	params := nullParams(500)
	params.Group1Mean = 0.8 // true d = 0.8, power ~0.85 at n=30

	results, err := service.RunWithStream(params, rand.New(rand.NewSource(7)))
	require.NoError(t, err)

	power := float64(results.SignificantCount) / float64(results.TotalCount)
	assert.Greater(t, power, 0.6)
	assert.InDelta(t, 0.8, results.MeanEffectSize, 0.1)
	assert.Greater(t, results.MeanCIWidth, 0.0)
}

func TestRunTrackedManifest(t *testing.T) {
	service := newTestService()

	results, manifest, err := service.RunTracked(nullParams(20))
	require.NoError(t, err)
	require.NotNil(t, manifest)

	_, err = uuid.Parse(manifest.RunID)
	assert.NoError(t, err)
	assert.Equal(t, int64(42), manifest.Seed)
	assert.Equal(t, 20, manifest.Trials)
	assert.Equal(t, 20, results.TotalCount)
	assert.False(t, manifest.CreatedAt.IsZero())
}

func TestInfo(t *testing.T) {
	info := newTestService().Info()

	assert.Equal(t, "1.0.0", info.Version)
	assert.Contains(t, info.Capabilities, "statistical_simulations")
	assert.Contains(t, info.Capabilities, "csv_export")
	assert.Equal(t, 100000, info.MaxSimulations)
	assert.Equal(t, []string{"normal"}, info.SupportedDistributions)
}
