// SPDX-License-Identifier: MIT

// Package matrix: functional configuration for the jitter recovery wrapper.
// This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions helper (internal).
//
// Design goals:
//   - Deterministic behavior: no global state, no implicit randomness.
//   - Safe by construction: panic only on invalid parameters (programmer error).
//   - Options fields are unexported; public APIs consume ...Option.
package matrix

import (
	"io"
	"log/slog"
	"math"
	"time"
)

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultJitterDelta scales the uniform(0,1) perturbation added to every
	// entry after a singular attempt.
	DefaultJitterDelta = 1e-8

	// DefaultMaxAttempts is the inversion attempt budget used by callers that
	// have no better value (config defaults, CLI flags).
	DefaultMaxAttempts = 3

	// DefaultZeroThreshold treats pivots with |p| below it as numerically zero.
	DefaultZeroThreshold = 1e-12
)

// ---------- Internal panic messages (no magic strings) ----------

const (
	panicJitterDeltaInvalid = "matrix: WithJitterDelta: delta must be finite and > 0"
	panicLoggerNil          = "matrix: WithLogger: logger must not be nil"
	panicObserverNil        = "matrix: WithObserver: observer must not be nil"
)

// Observer receives inversion telemetry from JitterInvert.
// Implementations must be cheap; they run inline on the caller's goroutine.
type Observer interface {
	// ObserveAttempt is called after every inversion attempt; err is nil on
	// success and a *SingularError otherwise.
	ObserveAttempt(size, attempt int, err error)

	// ObserveResult is called once per JitterInvert call with the number of
	// attempts performed, the elapsed time and the final error (nil on success).
	// Calls rejected before the first attempt report zero attempts.
	ObserveResult(size, attempts int, elapsed time.Duration, err error)
}

// Option mutates internal options. Safe to apply repeatedly (last writer wins).
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
type Options struct {
	jitterDelta float64      // > 0; DefaultJitterDelta
	logger      *slog.Logger // never nil after gatherOptions
	observer    Observer     // may be nil (no telemetry)
}

// WithJitterDelta sets the perturbation scale used between attempts.
// Panics when delta is NaN, infinite or not strictly positive.
func WithJitterDelta(delta float64) Option {
	if math.IsNaN(delta) || math.IsInf(delta, 0) || delta <= 0 {
		panic(panicJitterDeltaInvalid)
	}

	return func(o *Options) { o.jitterDelta = delta }
}

// WithLogger routes retry diagnostics (debug per singular attempt, warn on
// exhaustion) to l. Without it the wrapper is silent.
func WithLogger(l *slog.Logger) Option {
	if l == nil {
		panic(panicLoggerNil)
	}

	return func(o *Options) { o.logger = l }
}

// WithObserver attaches a telemetry sink (see telemetry/metrics).
func WithObserver(obs Observer) Option {
	if obs == nil {
		panic(panicObserverNil)
	}

	return func(o *Options) { o.observer = obs }
}

// NewOptions resolves opts on top of the defaults. Exposed for callers that
// want to inspect the effective configuration.
func NewOptions(opts ...Option) Options { return gatherOptions(opts...) }

// JitterDelta reports the effective perturbation scale.
func (o Options) JitterDelta() float64 { return o.jitterDelta }

// gatherOptions applies user-provided Option setters on top of defaults.
// Complexity: Time O(k), Space O(1) for k=len(user).
func gatherOptions(user ...Option) Options {
	o := Options{
		jitterDelta: DefaultJitterDelta,
		logger:      discardLogger,
	}
	for _, set := range user {
		set(&o) // apply in order; last-writer-wins semantics
	}

	return o
}

// discardLogger swallows everything; shared because it holds no state.
var discardLogger = slog.New(slog.NewTextHandler(io.Discard, nil))
