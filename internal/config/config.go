// Package config loads slicecube settings from the environment.
package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"

	"github.com/SeamusWaldron/slicecube"
	"github.com/SeamusWaldron/slicecube/internal/recorder"
	"github.com/SeamusWaldron/slicecube/internal/storage"
)

// Config holds settings shared by every command. Command-line flags
// override these values.
type Config struct {
	DBPath        string `env:"SLICECUBE_DB"`
	StatePath     string `env:"SLICECUBE_STATE"`
	ScrambleMoves int    `env:"SLICECUBE_SCRAMBLE_MOVES" envDefault:"100"`
	NoColor       bool   `env:"SLICECUBE_NO_COLOR"`
}

// ParseEnv loads configuration from environment variables.
func ParseEnv(target any) error {
	if err := env.Parse(target); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

// Load parses the environment, validates it and fills in default paths
// under ~/.slicecube.
func Load() (Config, error) {
	var cfg Config
	if err := ParseEnv(&cfg); err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	if cfg.DBPath == "" {
		path, err := storage.DefaultDBPath()
		if err != nil {
			return Config{}, err
		}
		cfg.DBPath = path
	}
	if cfg.StatePath == "" {
		path, err := recorder.DefaultStatePath()
		if err != nil {
			return Config{}, err
		}
		cfg.StatePath = path
	}
	return cfg, nil
}

// Validate reports settings that cannot be used.
func (c Config) Validate() error {
	if c.ScrambleMoves <= 0 {
		return fmt.Errorf("SLICECUBE_SCRAMBLE_MOVES must be positive, got %d", c.ScrambleMoves)
	}
	return nil
}

// ScrambleOptions returns the scrambler options implied by the config.
func (c Config) ScrambleOptions() []slicecube.ScrambleOption {
	return []slicecube.ScrambleOption{slicecube.WithMoveCount(c.ScrambleMoves)}
}
