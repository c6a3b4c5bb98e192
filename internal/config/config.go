package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"

	"gogp/internal/errors"
)

// Config represents the complete application configuration
type Config struct {
	Seed     int64
	Samples  int
	LogLevel string
	Sweep    SweepConfig
}

// SweepConfig holds predictive-sweep grid settings
type SweepConfig struct {
	MuMin       float64
	MuMax       float64
	MuSteps     int
	Variance    float64
	Concurrency int
}

// Load reads configuration from the environment, loading a .env file
// first if one is present.
func Load() (*Config, error) {
	// .env is optional; real env vars win either way
	_ = godotenv.Load()

	cfg := &Config{
		Seed:     12345,
		Samples:  10000,
		LogLevel: os.Getenv("LOG_LEVEL"),
		Sweep: SweepConfig{
			MuMin:       -3,
			MuMax:       3,
			MuSteps:     25,
			Variance:    1,
			Concurrency: 4,
		},
	}

	if v := os.Getenv("GOGP_SEED"); v != "" {
		seed, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return nil, errors.Wrap(err, "invalid GOGP_SEED")
		}
		cfg.Seed = seed
	}
	if v := os.Getenv("GOGP_SAMPLES"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n <= 0 {
			return nil, errors.New("CONFIG_INVALID", "GOGP_SAMPLES must be a positive integer")
		}
		cfg.Samples = n
	}
	if v := os.Getenv("GOGP_SWEEP_STEPS"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n <= 0 {
			return nil, errors.New("CONFIG_INVALID", "GOGP_SWEEP_STEPS must be a positive integer")
		}
		cfg.Sweep.MuSteps = n
	}
	if v := os.Getenv("GOGP_SWEEP_CONCURRENCY"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n <= 0 {
			return nil, errors.New("CONFIG_INVALID", "GOGP_SWEEP_CONCURRENCY must be a positive integer")
		}
		cfg.Sweep.Concurrency = n
	}

	return cfg, nil
}
