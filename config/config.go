// Package config loads the runner configuration from YAML.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"gopkg.in/yaml.v3"
)

// ErrInvalidConfig indicates a configuration value out of range.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Config holds every tunable of the gridwalk runner.
type Config struct {
	LogLevel  string `yaml:"log_level"`
	LogFormat string `yaml:"log_format"`

	// Workers and ChunkSize bound the data-parallel range scan.
	Workers   int   `yaml:"workers"`
	ChunkSize int64 `yaml:"chunk_size"`

	// CycleMinOccurrences is the cycle detector's confirmation threshold.
	CycleMinOccurrences int `yaml:"cycle_min_occurrences"`

	TiltSpins   int `yaml:"tilt_spins"`
	GardenSteps int `yaml:"garden_steps"`
}

// Default returns the configuration used when no file is given.
func Default() Config {
	return Config{
		LogLevel:            "info",
		LogFormat:           "text",
		Workers:             4,
		ChunkSize:           100_000,
		CycleMinOccurrences: 2,
		TiltSpins:           1_000_000_000,
		GardenSteps:         64,
	}
}

// Load reads path and overlays it on Default. Keys absent from the file
// keep their default values.
func Load(path string) (Config, error) {
	c := Default()
	raw, err := os.ReadFile(path)
	if err != nil {
		return c, err
	}
	if err := yaml.Unmarshal(raw, &c); err != nil {
		return c, fmt.Errorf("config: %s: %w", path, err)
	}
	return c, c.Validate()
}

// Validate checks every field.
func (c Config) Validate() error {
	if _, err := c.Level(); err != nil {
		return err
	}
	switch {
	case c.LogFormat != "text" && c.LogFormat != "json":
		return fmt.Errorf("%w: log_format %q (want text or json)", ErrInvalidConfig, c.LogFormat)
	case c.Workers < 1:
		return fmt.Errorf("%w: workers must be >= 1 (%d)", ErrInvalidConfig, c.Workers)
	case c.ChunkSize < 1:
		return fmt.Errorf("%w: chunk_size must be >= 1 (%d)", ErrInvalidConfig, c.ChunkSize)
	case c.CycleMinOccurrences < 2:
		return fmt.Errorf("%w: cycle_min_occurrences must be >= 2 (%d)", ErrInvalidConfig, c.CycleMinOccurrences)
	case c.TiltSpins < 0:
		return fmt.Errorf("%w: tilt_spins cannot be negative (%d)", ErrInvalidConfig, c.TiltSpins)
	case c.GardenSteps < 0:
		return fmt.Errorf("%w: garden_steps cannot be negative (%d)", ErrInvalidConfig, c.GardenSteps)
	}
	return nil
}

// Level parses LogLevel into a slog.Level.
func (c Config) Level() (slog.Level, error) {
	var l slog.Level
	if err := l.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return l, fmt.Errorf("%w: log_level %q", ErrInvalidConfig, c.LogLevel)
	}
	return l, nil
}
