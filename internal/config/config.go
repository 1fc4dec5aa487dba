// Package config loads and validates sensorkit configuration from file,
// environment and defaults.
package config

import (
	"fmt"
	"time"

	"github.com/tisense/sensorkit/internal/models"
)

// Config represents the complete application configuration.
type Config struct {
	Pipeline PipelineConfig `mapstructure:"pipeline"`
	Logging  LoggingConfig  `mapstructure:"logging"`
}

// PipelineConfig controls the cleaning and analysis pipeline.
type PipelineConfig struct {
	Interval    time.Duration `mapstructure:"interval"`    // Expected sampling cadence for gap filling
	ZThreshold  float64       `mapstructure:"z_threshold"` // Z-score threshold for anomaly detection
	Temperature models.Range  `mapstructure:"temperature"` // Valid temperature range (Celsius)
	Pressure    models.Range  `mapstructure:"pressure"`    // Valid pressure range (hPa)
	Humidity    models.Range  `mapstructure:"humidity"`    // Valid humidity range (percent)
}

// LoggingConfig represents logging configuration.
type LoggingConfig struct {
	Level      string `mapstructure:"level"`       // debug, info, warn, error
	Format     string `mapstructure:"format"`      // json, console
	OutputPath string `mapstructure:"output_path"` // stdout, stderr, file path
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	if err := c.Pipeline.Validate(); err != nil {
		return fmt.Errorf("pipeline config: %w", err)
	}

	if err := c.Logging.Validate(); err != nil {
		return fmt.Errorf("logging config: %w", err)
	}

	return nil
}

// Validate validates pipeline configuration.
func (c *PipelineConfig) Validate() error {
	if c.Interval <= 0 {
		return fmt.Errorf("pipeline.interval must be positive")
	}

	if c.ZThreshold <= 0 {
		return fmt.Errorf("pipeline.z_threshold must be positive")
	}

	ranges := []struct {
		name string
		rng  models.Range
	}{
		{"temperature", c.Temperature},
		{"pressure", c.Pressure},
		{"humidity", c.Humidity},
	}

	for _, r := range ranges {
		if r.rng.Min > r.rng.Max {
			return fmt.Errorf("pipeline.%s: min %v exceeds max %v", r.name, r.rng.Min, r.rng.Max)
		}
	}

	return nil
}

// Validate validates logging configuration.
func (c *LoggingConfig) Validate() error {
	validLevels := map[string]bool{
		"debug": true,
		"info":  true,
		"warn":  true,
		"error": true,
	}

	if !validLevels[c.Level] {
		return fmt.Errorf("logging.level must be one of: debug, info, warn, error")
	}

	validFormats := map[string]bool{
		"json":    true,
		"console": true,
	}

	if !validFormats[c.Format] {
		return fmt.Errorf("logging.format must be 'json' or 'console'")
	}

	return nil
}
