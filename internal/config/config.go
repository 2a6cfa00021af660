package config

import (
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
)

// Gating modes
const (
	GatingSequential = "sequential"
	GatingPoints     = "points"
)

// Config holds runtime settings for the onboard CLI.
type Config struct {
	DBPath     string
	GatingMode string
}

// Load reads configuration from the environment, loading a .env file
// first when one is present in the working directory.
func Load() (*Config, error) {
	// Best effort: a missing .env file is fine
	_ = godotenv.Load()

	cfg := &Config{
		DBPath:     os.Getenv("ONBOARD_DB_PATH"),
		GatingMode: os.Getenv("ONBOARD_GATING_MODE"),
	}

	if cfg.DBPath == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, err
		}
		cfg.DBPath = filepath.Join(home, ".onboardpath", "onboardpath.db")
	}

	switch cfg.GatingMode {
	case GatingSequential, GatingPoints:
	default:
		cfg.GatingMode = GatingSequential
	}

	return cfg, nil
}
