// SPDX-License-Identifier: MIT

package main

import (
	"log/slog"
	"time"

	"github.com/katalvlaran/xailinalg/matrix"
	"github.com/katalvlaran/xailinalg/matrixio"
	"github.com/spf13/cobra"
)

func newInvertCmd(a *app) *cobra.Command {
	var (
		attempts int
		noRetry  bool
		format   string
	)
	cmd := &cobra.Command{
		Use:   "invert FILE",
		Short: "Invert a square matrix",
		Long: `Invert reads a square matrix and prints its inverse.

On a singular pivot the matrix is perturbed by jitter_delta * U(0,1) per entry
and the inversion is retried, up to max_attempts attempts in total. Set
inversion.seed in the config file for a reproducible perturbation.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := matrixio.ReadFile(args[0])
			if err != nil {
				return err
			}
			if !cmd.Flags().Changed("attempts") {
				attempts = a.cfg.Inversion.MaxAttempts
			}
			inv, err := a.invert(m, attempts, noRetry)
			if err != nil {
				// Post-run hooks are skipped on error; keep the failure metrics.
				_ = a.flushMetrics(cmd, args)
				return err
			}

			return matrixio.Encode(cmd.OutOrStdout(), inv, matrixio.Format(format))
		},
	}
	cmd.Flags().IntVar(&attempts, "attempts", 0, "override inversion.max_attempts (>= 1)")
	cmd.Flags().BoolVar(&noRetry, "no-retry", false, "fail on the first singular pivot instead of jittering")
	cmd.Flags().StringVar(&format, "format", string(matrixio.FormatYAML), "output format (yaml, json)")

	return cmd
}

// invert runs Invert, or JitterInvert with an attempt budget of attempts.
// A budget below 1 is passed through and rejected as ErrInvalidAttempts.
func (a *app) invert(m *matrix.Dense, attempts int, noRetry bool) (*matrix.Dense, error) {
	pol := a.cfg.Inversion
	pol.MaxAttempts = attempts
	n := m.Rows()

	if noRetry {
		start := time.Now()
		inv, err := matrix.Invert(m, pol.ZeroThreshold)
		a.observer.ObserveAttempt(n, 1, err)
		a.observer.ObserveResult(n, 1, time.Since(start), err)
		if err != nil {
			a.logger.Error("inversion failed", slog.Int("size", n), slog.String("error", err.Error()))
			return nil, err
		}
		return inv, nil
	}

	src, err := pol.Source()
	if err != nil {
		return nil, err
	}
	opts := append(pol.Options(), matrix.WithLogger(a.logger), matrix.WithObserver(a.observer))
	inv, err := matrix.JitterInvert(m, pol.MaxAttempts, pol.ZeroThreshold, src, opts...)
	if err != nil {
		a.logger.Error("inversion failed",
			slog.Int("size", n),
			slog.Int("max_attempts", pol.MaxAttempts),
			slog.String("error", err.Error()))
		return nil, err
	}
	a.logger.Info("matrix inverted", slog.Int("size", n))

	return inv, nil
}
