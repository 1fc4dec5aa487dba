package config

import (
	"fmt"
	"time"

	"github.com/spf13/viper"

	"github.com/tisense/sensorkit/internal/models"
)

// Load loads configuration from file with environment variable overrides.
// An empty configPath falls back to the default search locations; a missing
// config file is not an error and yields the defaults.
func Load(configPath string) (*Config, error) {
	v := viper.New()

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("./configs")
		v.AddConfigPath("/etc/sensorkit")
	}

	setDefaults(v)

	v.SetEnvPrefix("SENSORKIT")
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			return parseConfig(v)
		}
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	return parseConfig(v)
}

// setDefaults sets default configuration values.
func setDefaults(v *viper.Viper) {
	// Pipeline defaults
	v.SetDefault("pipeline.interval", "60s")
	v.SetDefault("pipeline.z_threshold", 2.0)
	v.SetDefault("pipeline.temperature.min", -40.0)
	v.SetDefault("pipeline.temperature.max", 150.0)
	v.SetDefault("pipeline.pressure.min", 0.0)
	v.SetDefault("pipeline.pressure.max", 1000.0)
	v.SetDefault("pipeline.humidity.min", 0.0)
	v.SetDefault("pipeline.humidity.max", 100.0)

	// Logging defaults
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "console")
	v.SetDefault("logging.output_path", "stderr")
}

// parseConfig parses viper config into Config struct.
func parseConfig(v *viper.Viper) (*Config, error) {
	var cfg Config

	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &cfg, nil
}

// LoadOrDefault loads configuration from file or returns the default config.
func LoadOrDefault(configPath string) *Config {
	cfg, err := Load(configPath)
	if err != nil {
		return DefaultConfig()
	}
	return cfg
}

// DefaultConfig returns default configuration.
func DefaultConfig() *Config {
	return &Config{
		Pipeline: PipelineConfig{
			Interval:    60 * time.Second,
			ZThreshold:  2.0,
			Temperature: models.DefaultTemperatureRange,
			Pressure:    models.DefaultPressureRange,
			Humidity:    models.DefaultHumidityRange,
		},
		Logging: LoggingConfig{
			Level:      "info",
			Format:     "console",
			OutputPath: "stderr",
		},
	}
}
