package game

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Config holds game configuration options, read from the environment.
type Config struct {
	// Seed for random number generation. Used for reproducible sessions.
	// A seed of 0 means a random seed will be generated.
	Seed int64 `env:"MAGEDUEL_SEED" envDefault:"0"`

	// Color enables colored narration when stdout is a terminal.
	Color bool `env:"MAGEDUEL_COLOR" envDefault:"true"`

	// Debug writes encounter diagnostics to stderr.
	Debug bool `env:"MAGEDUEL_DEBUG" envDefault:"false"`

	// Telemetry exports traces over OTLP/HTTP to Honeycomb.
	Telemetry        bool   `env:"MAGEDUEL_TELEMETRY" envDefault:"false"`
	HoneycombAPIKey  string `env:"HONEYCOMB_MAGEDUEL_API_KEY"`
	HoneycombDataset string `env:"HONEYCOMB_MAGEDUEL_DATASET" envDefault:"mageduel"`
}

// LoadConfig reads Config from environment variables.
func LoadConfig() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}
