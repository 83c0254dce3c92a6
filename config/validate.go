// SPDX-License-Identifier: MIT

package config

import (
	"fmt"
	"math"
	"strings"

	"github.com/katalvlaran/xailinalg/telemetry/logging"
)

// FieldError is a validation failure of one configuration field.
type FieldError struct {
	// Field is the dotted YAML path, e.g. "inversion.max_attempts".
	Field string

	// Message is a human-readable error message.
	Message string
}

func (e FieldError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidationError collects every FieldError found in one pass.
type ValidationError struct {
	Errors []FieldError
}

func (e ValidationError) Error() string {
	if len(e.Errors) == 0 {
		return "configuration validation failed"
	}
	if len(e.Errors) == 1 {
		return fmt.Sprintf("configuration validation failed: %s", e.Errors[0].Error())
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("configuration validation failed with %d errors:\n", len(e.Errors)))
	for _, err := range e.Errors {
		sb.WriteString(fmt.Sprintf("  - %s\n", err.Error()))
	}

	return sb.String()
}

// Validate checks every section and returns a ValidationError listing all
// failures, or nil.
func (c *Config) Validate() error {
	var errs []FieldError
	errs = append(errs, validateInversion(&c.Inversion)...)
	errs = append(errs, validateLogging(&c.Logging)...)
	errs = append(errs, validateMetrics(&c.Metrics)...)
	if len(errs) > 0 {
		return ValidationError{Errors: errs}
	}

	return nil
}

func validateInversion(c *InversionConfig) []FieldError {
	var errs []FieldError
	if c.MaxAttempts < 1 {
		errs = append(errs, FieldError{Field: "inversion.max_attempts", Message: "must be >= 1"})
	}
	if !finiteNonNegative(c.ZeroThreshold) {
		errs = append(errs, FieldError{Field: "inversion.zero_threshold", Message: "must be finite and >= 0"})
	}
	if !finiteNonNegative(c.JitterDelta) || c.JitterDelta == 0 {
		errs = append(errs, FieldError{Field: "inversion.jitter_delta", Message: "must be finite and > 0"})
	}

	return errs
}

func validateLogging(c *LoggingConfig) []FieldError {
	var errs []FieldError
	if _, err := logging.ParseLevel(c.Level); err != nil {
		errs = append(errs, FieldError{Field: "logging.level", Message: err.Error()})
	}
	if _, err := logging.ParseFormat(c.Format); err != nil {
		errs = append(errs, FieldError{Field: "logging.format", Message: err.Error()})
	}

	return errs
}

func validateMetrics(c *MetricsConfig) []FieldError {
	var errs []FieldError
	if strings.ContainsAny(c.Namespace, " -.") {
		errs = append(errs, FieldError{Field: "metrics.namespace", Message: "must be a valid Prometheus name prefix"})
	}
	for i := 1; i < len(c.DurationBuckets); i++ {
		if c.DurationBuckets[i] <= c.DurationBuckets[i-1] {
			errs = append(errs, FieldError{Field: "metrics.duration_buckets", Message: "must be strictly increasing"})
			break
		}
	}

	return errs
}

func finiteNonNegative(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0) && v >= 0
}
