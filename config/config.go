// SPDX-License-Identifier: MIT

// Package config loads the YAML configuration of the xaimat tool: the
// inversion policy (attempt budget, zero threshold, jitter scale, seed),
// logging and metrics settings.
//
// Loading sequence: read file, parse YAML, apply defaults, validate.
package config

import (
	"fmt"
	"math/rand/v2"
	"os"

	"github.com/katalvlaran/xailinalg/matrix"
	"gopkg.in/yaml.v3"
)

// Config is the root configuration document.
type Config struct {
	// Inversion controls Invert and JitterInvert.
	Inversion InversionConfig `yaml:"inversion"`

	// Logging controls the slog handler.
	Logging LoggingConfig `yaml:"logging"`

	// Metrics controls the Prometheus collectors.
	Metrics MetricsConfig `yaml:"metrics"`
}

// InversionConfig is the retry policy of the jitter wrapper.
type InversionConfig struct {
	// MaxAttempts is the total number of inversion attempts.
	// Default: matrix.DefaultMaxAttempts
	MaxAttempts int `yaml:"max_attempts"`

	// ZeroThreshold marks pivots with smaller magnitude as zero. A zero
	// value is indistinguishable from "unset" and gets the default.
	// Default: matrix.DefaultZeroThreshold
	ZeroThreshold float64 `yaml:"zero_threshold"`

	// JitterDelta scales the uniform perturbation between attempts.
	// Default: matrix.DefaultJitterDelta
	JitterDelta float64 `yaml:"jitter_delta"`

	// Seed makes the perturbation reproducible. Unset means a secure source.
	Seed *uint64 `yaml:"seed,omitempty"`
}

// LoggingConfig mirrors logging.Config.
type LoggingConfig struct {
	// Level: "debug", "info", "warn", "error". Default: "info"
	Level string `yaml:"level"`

	// Format: "json", "text". Default: "json"
	Format string `yaml:"format"`

	// AddSource includes file and line number in log entries.
	AddSource bool `yaml:"add_source"`
}

// MetricsConfig names and shapes the Prometheus collectors.
type MetricsConfig struct {
	// Namespace is the metric name prefix. Default: "xailinalg"
	Namespace string `yaml:"namespace"`

	// DurationBuckets are the inversion duration histogram buckets (seconds).
	// Default: DefaultDurationBuckets
	DurationBuckets []float64 `yaml:"duration_buckets"`
}

// Default values for configuration fields.
const (
	DefaultLoggingLevel     = "info"
	DefaultLoggingFormat    = "json"
	DefaultMetricsNamespace = "xailinalg"
)

// DefaultDurationBuckets covers microsecond inversions of small systems up to
// retried inversions of a few hundred features.
var DefaultDurationBuckets = []float64{1e-5, 1e-4, 1e-3, 1e-2, 0.1, 1}

// Default returns a configuration with every default applied.
func Default() *Config {
	cfg := &Config{}
	ApplyDefaults(cfg)

	return cfg
}

// ApplyDefaults fills zero-valued fields with their defaults.
func ApplyDefaults(cfg *Config) {
	if cfg.Inversion.MaxAttempts == 0 {
		cfg.Inversion.MaxAttempts = matrix.DefaultMaxAttempts
	}
	if cfg.Inversion.ZeroThreshold == 0 {
		cfg.Inversion.ZeroThreshold = matrix.DefaultZeroThreshold
	}
	if cfg.Inversion.JitterDelta == 0 {
		cfg.Inversion.JitterDelta = matrix.DefaultJitterDelta
	}
	if cfg.Logging.Level == "" {
		cfg.Logging.Level = DefaultLoggingLevel
	}
	if cfg.Logging.Format == "" {
		cfg.Logging.Format = DefaultLoggingFormat
	}
	if cfg.Metrics.Namespace == "" {
		cfg.Metrics.Namespace = DefaultMetricsNamespace
	}
	if len(cfg.Metrics.DurationBuckets) == 0 {
		cfg.Metrics.DurationBuckets = append([]float64(nil), DefaultDurationBuckets...)
	}
}

// Load reads, parses, defaults and validates the YAML file at path.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read configuration file %q: %w", path, err)
	}
	cfg, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("configuration file %q: %w", path, err)
	}

	return cfg, nil
}

// Parse is Load without the file read.
func Parse(data []byte) (*Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse configuration: %w", err)
	}
	ApplyDefaults(&cfg)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Source returns the random source for JitterInvert: a PCG generator seeded
// with Seed when set, otherwise matrix.NewSecureSource.
func (c InversionConfig) Source() (matrix.RandSource, error) {
	if c.Seed != nil {
		return rand.New(rand.NewPCG(*c.Seed, 0)), nil
	}

	return matrix.NewSecureSource()
}

// Options returns the matrix options implied by the configuration.
func (c InversionConfig) Options() []matrix.Option {
	return []matrix.Option{matrix.WithJitterDelta(c.JitterDelta)}
}
