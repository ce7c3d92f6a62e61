package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"golang.org/x/sync/errgroup"

	"simlab/adapters/api"
	"simlab/adapters/rng"
	"simlab/app"
	"simlab/internal"
	"simlab/internal/config"
)

func main() {
	_ = godotenv.Load()

	logger := internal.NewDefaultLogger()

	cfg, err := config.Load()
	if err != nil {
		logger.Error("failed to load configuration: %v", err)
		os.Exit(1)
	}

	seed := cfg.Engine.Seed
	if seed == 0 {
		seed = rng.ProcessSeed()
	}

	service := app.NewSimulationService(rng.New(), seed, cfg.Engine.HistogramBins, logger)
	server := api.NewServer(cfg, service, logger)

	httpServer := &http.Server{
		Addr:    ":" + cfg.Server.Port,
		Handler: server.Handler(),
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		logger.Info("simulation API listening on :%s", cfg.Server.Port)
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			return err
		}
		return nil
	})

	g.Go(func() error {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return httpServer.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		logger.Error("server exited: %v", err)
		os.Exit(1)
	}
}
