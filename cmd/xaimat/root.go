// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/katalvlaran/xailinalg/config"
	"github.com/katalvlaran/xailinalg/telemetry/logging"
	"github.com/katalvlaran/xailinalg/telemetry/metrics"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
)

// app is the state shared by every subcommand of one invocation.
type app struct {
	// Global flags
	cfgFile    string
	logLevel   string
	logFormat  string
	metricsOut string

	cfg      *config.Config
	logger   *slog.Logger
	registry *prometheus.Registry
	observer *metrics.Inversion
	runID    string
}

func newRootCmd() *cobra.Command {
	a := &app{}
	root := &cobra.Command{
		Use:   "xaimat",
		Short: "xaimat - dense matrix engine for local surrogate explainers",
		Long: `xaimat exposes the linear-algebra core used to fit weighted
least-squares surrogate models: products, reductions and a diagonal-pivot
Gauss-Jordan inverse that recovers from singular systems by jittering.

Matrices are read from YAML or JSON documents of the form {rows: [[...], ...]}.`,
		Version:            Version,
		SilenceUsage:       true,
		SilenceErrors:      true,
		PersistentPreRunE:  a.setup,
		PersistentPostRunE: a.flushMetrics,
	}

	root.PersistentFlags().StringVarP(&a.cfgFile, "config", "c", "", "config file path (defaults apply when empty)")
	root.PersistentFlags().StringVar(&a.logLevel, "log-level", "", "override logging.level (debug, info, warn, error)")
	root.PersistentFlags().StringVar(&a.logFormat, "log-format", "", "override logging.format (json, text)")
	root.PersistentFlags().StringVar(&a.metricsOut, "metrics-out", "", "write Prometheus metrics to this text file on exit")

	root.AddCommand(newInvertCmd(a), newMultiplyCmd(a), newStatsCmd(a), newVersionCmd())

	return root
}

// setup loads configuration and builds the logger and metrics registry.
func (a *app) setup(cmd *cobra.Command, _ []string) error {
	var err error
	if a.cfgFile != "" {
		if a.cfg, err = config.Load(a.cfgFile); err != nil {
			return err
		}
	} else {
		a.cfg = config.Default()
	}
	if a.logLevel != "" {
		a.cfg.Logging.Level = a.logLevel
	}
	if a.logFormat != "" {
		a.cfg.Logging.Format = a.logFormat
	}

	logger, err := logging.New(logging.Config{
		Level:     a.cfg.Logging.Level,
		Format:    a.cfg.Logging.Format,
		AddSource: a.cfg.Logging.AddSource,
	}, cmd.ErrOrStderr())
	if err != nil {
		return err
	}
	a.runID = uuid.NewString()
	a.logger = logger.With(slog.String("run_id", a.runID), slog.String("command", cmd.Name()))

	a.registry = prometheus.NewRegistry()
	a.observer = metrics.NewInversion(a.registry, a.cfg.Metrics.Namespace, a.cfg.Metrics.DurationBuckets)

	return nil
}

// flushMetrics writes the registry to --metrics-out, if set.
func (a *app) flushMetrics(_ *cobra.Command, _ []string) error {
	if a.metricsOut == "" || a.registry == nil {
		return nil
	}
	if err := prometheus.WriteToTextfile(a.metricsOut, a.registry); err != nil {
		return fmt.Errorf("write metrics: %w", err)
	}
	a.logger.Debug("metrics written", slog.String("path", a.metricsOut))

	return nil
}
