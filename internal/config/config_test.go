package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	require.NoError(t, cfg.Validate())
	assert.Equal(t, 60*time.Second, cfg.Pipeline.Interval)
	assert.Equal(t, 2.0, cfg.Pipeline.ZThreshold)
	assert.Equal(t, -40.0, cfg.Pipeline.Temperature.Min)
	assert.Equal(t, 150.0, cfg.Pipeline.Temperature.Max)
	assert.Equal(t, "info", cfg.Logging.Level)
}

func TestLoad_ExplicitMissingFile(t *testing.T) {
	// An explicitly named file that does not exist is an error; only the
	// default search locations may fall through to defaults.
	_, err := Load(filepath.Join(t.TempDir(), "config.yaml"))

	assert.Error(t, err)
}

func TestLoadOrDefault_FallsBack(t *testing.T) {
	cfg := LoadOrDefault(filepath.Join(t.TempDir(), "config.yaml"))

	assert.Equal(t, DefaultConfig(), cfg)
}

func TestLoad_FromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := `pipeline:
  interval: 30s
  z_threshold: 3.5
logging:
  level: debug
  format: json
  output_path: stdout
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 30*time.Second, cfg.Pipeline.Interval)
	assert.Equal(t, 3.5, cfg.Pipeline.ZThreshold)
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, "json", cfg.Logging.Format)
	// Unset sections keep their defaults.
	assert.Equal(t, -40.0, cfg.Pipeline.Temperature.Min)
}

func TestLoad_InvalidConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := `pipeline:
  z_threshold: -1
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	_, err := Load(path)
	assert.Error(t, err)
}

func TestPipelineConfig_Validate(t *testing.T) {
	tests := []struct {
		name     string
		mutate   func(*Config)
		expected string
	}{
		{
			name:     "non-positive interval",
			mutate:   func(c *Config) { c.Pipeline.Interval = 0 },
			expected: "interval",
		},
		{
			name:     "non-positive threshold",
			mutate:   func(c *Config) { c.Pipeline.ZThreshold = 0 },
			expected: "z_threshold",
		},
		{
			name:     "inverted range",
			mutate:   func(c *Config) { c.Pipeline.Humidity.Min = 200 },
			expected: "humidity",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)
			err := cfg.Validate()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.expected)
		})
	}
}

func TestLoggingConfig_Validate(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Logging.Level = "verbose"
	assert.Error(t, cfg.Validate())

	cfg = DefaultConfig()
	cfg.Logging.Format = "xml"
	assert.Error(t, cfg.Validate())
}
