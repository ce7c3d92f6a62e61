package config

import (
	"os"
	"strconv"

	"simlab/internal/errors"
)

// Config represents the complete application configuration
type Config struct {
	Server ServerConfig
	Engine EngineConfig
}

// ServerConfig holds HTTP server settings
type ServerConfig struct {
	Port    string
	GinMode string
}

// EngineConfig holds simulation engine settings
type EngineConfig struct {
	// Seed pins every run's random stream; 0 selects a per-process seed.
	Seed int64
	// HistogramBins controls p-value histogram resolution.
	HistogramBins int
	// MaxSimulations caps a single request's trial count at the API boundary.
	MaxSimulations int
}

// Load reads configuration from environment variables and validates it
func Load() (*Config, error) {
	serverConfig, err := loadServerConfig()
	if err != nil {
		return nil, errors.Wrap(err, "failed to load server configuration")
	}

	engineConfig, err := loadEngineConfig()
	if err != nil {
		return nil, errors.Wrap(err, "failed to load engine configuration")
	}

	return &Config{
		Server: *serverConfig,
		Engine: *engineConfig,
	}, nil
}

func loadServerConfig() (*ServerConfig, error) {
	return &ServerConfig{
		Port:    getEnv("PORT", "8080"),
		GinMode: getEnv("GIN_MODE", "release"),
	}, nil
}

func loadEngineConfig() (*EngineConfig, error) {
	seed, err := getEnvInt64("SIM_SEED", 0)
	if err != nil {
		return nil, errors.ConfigInvalid("SIM_SEED must be an integer")
	}

	bins, err := getEnvInt("SIM_HISTOGRAM_BINS", 20)
	if err != nil {
		return nil, errors.ConfigInvalid("SIM_HISTOGRAM_BINS must be an integer")
	}
	if bins < 1 {
		return nil, errors.ConfigInvalid("SIM_HISTOGRAM_BINS must be at least 1")
	}

	maxSims, err := getEnvInt("SIM_MAX_SIMULATIONS", 100000)
	if err != nil {
		return nil, errors.ConfigInvalid("SIM_MAX_SIMULATIONS must be an integer")
	}
	if maxSims < 1 {
		return nil, errors.ConfigInvalid("SIM_MAX_SIMULATIONS must be at least 1")
	}

	return &EngineConfig{
		Seed:           seed,
		HistogramBins:  bins,
		MaxSimulations: maxSims,
	}, nil
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) (int, error) {
	value := os.Getenv(key)
	if value == "" {
		return fallback, nil
	}
	return strconv.Atoi(value)
}

func getEnvInt64(key string, fallback int64) (int64, error) {
	value := os.Getenv(key)
	if value == "" {
		return fallback, nil
	}
	return strconv.ParseInt(value, 10, 64)
}
