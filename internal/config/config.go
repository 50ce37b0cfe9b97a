// Package config loads the hillclimb CLI configuration from YAML.
package config

import (
	"errors"
	"fmt"
	"os"
	"unicode/utf8"

	"gopkg.in/yaml.v3"
)

// Config is the CLI configuration. Every key is optional.
type Config struct {
	StartMarker string        `yaml:"start_marker"`
	EndMarker   string        `yaml:"end_marker"`
	MaxClimb    int           `yaml:"max_climb"`
	Workers     int           `yaml:"workers"` // 0 means one per CPU
	Reverse     bool          `yaml:"reverse"`
	Logging     LoggingConfig `yaml:"logging"`
}

// LoggingConfig configures logging.
type LoggingConfig struct {
	Level string `yaml:"level"` // debug, info, warn, error
}

// DefaultConfig returns the configuration for the puzzle input.
func DefaultConfig() *Config {
	return &Config{
		StartMarker: "S",
		EndMarker:   "E",
		MaxClimb:    1,
		Workers:     0,
		Reverse:     false,
		Logging:     LoggingConfig{Level: "info"},
	}
}

// Load reads path over the defaults. An empty path or a missing file yields the defaults.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to read config: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks markers, limits and the log level.
func (c *Config) Validate() error {
	start, err := markerRune("start_marker", c.StartMarker)
	if err != nil {
		return err
	}
	end, err := markerRune("end_marker", c.EndMarker)
	if err != nil {
		return err
	}
	if start == end {
		return fmt.Errorf("start_marker and end_marker must differ, both are %q", c.StartMarker)
	}
	if c.MaxClimb < 0 {
		return fmt.Errorf("max_climb must be >= 0, got %d", c.MaxClimb)
	}
	if c.Workers < 0 {
		return fmt.Errorf("workers must be >= 0, got %d", c.Workers)
	}
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("unknown logging.level %q", c.Logging.Level)
	}
	return nil
}

// Markers returns the start and end markers as runes. Call Validate first.
func (c *Config) Markers() (rune, rune) {
	start, _ := utf8.DecodeRuneInString(c.StartMarker)
	end, _ := utf8.DecodeRuneInString(c.EndMarker)
	return start, end
}

func markerRune(key, value string) (rune, error) {
	if utf8.RuneCountInString(value) != 1 {
		return 0, fmt.Errorf("%s must be a single character, got %q", key, value)
	}
	r, _ := utf8.DecodeRuneInString(value)
	if r >= 'a' && r <= 'z' {
		return 0, fmt.Errorf("%s %q collides with an elevation letter", key, value)
	}
	return r, nil
}
