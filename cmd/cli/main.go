package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/joho/godotenv"

	"simlab/adapters/export"
	"simlab/adapters/rng"
	"simlab/app"
	"simlab/domain/simulation"
	"simlab/internal"
)

// One-shot runner: execute a simulation from flags and emit the CSV export.
func main() {
	_ = godotenv.Load()

	var params simulation.Params
	flag.Float64Var(&params.Group1Mean, "group1-mean", 0, "mean of group 1")
	flag.Float64Var(&params.Group1Std, "group1-std", 1, "standard deviation of group 1")
	flag.Float64Var(&params.Group2Mean, "group2-mean", 0, "mean of group 2")
	flag.Float64Var(&params.Group2Std, "group2-std", 1, "standard deviation of group 2")
	flag.IntVar(&params.SampleSizePerGroup, "n", 30, "sample size per group")
	flag.IntVar(&params.NumSimulations, "simulations", 1000, "number of trials")
	flag.Float64Var(&params.HypothesizedEffectSize, "hypothesized-effect", 0, "hypothesized effect size (informational)")
	flag.Float64Var(&params.AlphaLevel, "alpha", 0.05, "significance level")
	seed := flag.Int64("seed", 0, "random seed (0 picks a per-process seed)")
	bins := flag.Int("bins", 20, "p-value histogram bins")
	out := flag.String("out", "", "output file for the CSV export (default stdout)")
	flag.Parse()

	logger := internal.NewDefaultLogger()

	if *seed == 0 {
		*seed = rng.ProcessSeed()
	}

	service := app.NewSimulationService(rng.New(), *seed, *bins, logger)

	results, manifest, err := service.RunTracked(params)
	if err != nil {
		logger.Error("simulation failed: %v", err)
		os.Exit(1)
	}

	logger.Info("run %s: %d/%d significant, coverage %.3f, mean d %.4f",
		manifest.RunID, results.SignificantCount, results.TotalCount,
		results.CICoverage, results.MeanEffectSize)

	csv := export.CSV(results)
	if *out == "" {
		fmt.Print(csv)
		return
	}

	if err := os.WriteFile(*out, []byte(csv), 0o644); err != nil {
		logger.Error("failed to write %s: %v", *out, err)
		os.Exit(1)
	}
	logger.Info("wrote %d trials to %s", results.TotalCount, *out)
}
