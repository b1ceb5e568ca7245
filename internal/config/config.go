// Package config loads runtime configuration for a surfer run.
package config

import (
	"fmt"

	"github.com/spf13/viper"
)

// Config holds all runtime configuration for a surfer run.
// Values are populated from .surfer.yaml, SURFER_* env vars, and CLI flags.
type Config struct {
	Damping       float64 `mapstructure:"damping"`
	Samples       int     `mapstructure:"samples"`
	Tolerance     float64 `mapstructure:"tolerance"`
	MaxIterations int     `mapstructure:"max_iterations"`
	Telemetry     string  `mapstructure:"telemetry"`
	Verbose       bool    `mapstructure:"verbose"`
}

// Load reads configuration from viper, applying built-in defaults for
// any values not set by config file, environment, or flags, and
// validates parameter ranges before anything downstream runs.
func Load() (Config, error) {
	viper.SetDefault("damping", 0.85)
	viper.SetDefault("samples", 10000)
	viper.SetDefault("tolerance", 0.001)
	viper.SetDefault("max_iterations", 10000)
	viper.SetDefault("telemetry", "")
	viper.SetDefault("verbose", false)

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("failed to parse config: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) validate() error {
	if c.Damping <= 0 || c.Damping >= 1 {
		return fmt.Errorf("damping must be in (0, 1), got %v", c.Damping)
	}
	if c.Samples <= 0 {
		return fmt.Errorf("samples must be positive, got %d", c.Samples)
	}
	if c.Tolerance <= 0 {
		return fmt.Errorf("tolerance must be positive, got %v", c.Tolerance)
	}
	if c.MaxIterations <= 0 {
		return fmt.Errorf("max_iterations must be positive, got %d", c.MaxIterations)
	}
	return nil
}
