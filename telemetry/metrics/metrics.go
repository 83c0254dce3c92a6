// SPDX-License-Identifier: MIT

// Package metrics exposes Prometheus collectors for the inversion engine.
// Inversion implements matrix.Observer and is attached with
// matrix.WithObserver.
package metrics

import (
	"errors"
	"time"

	"github.com/katalvlaran/xailinalg/matrix"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Attempt results and failure reasons used as label values.
const (
	ResultSuccess  = "success"
	ResultSingular = "singular"
	ResultError    = "error"

	ReasonUninvertible = "uninvertible"
	ReasonSingular     = "singular"
	ReasonInvalid      = "invalid"
)

// Inversion holds the collectors of one registry.
type Inversion struct {
	attempts *prometheus.CounterVec
	jitter   prometheus.Counter
	failures *prometheus.CounterVec
	duration prometheus.Histogram
}

var _ matrix.Observer = (*Inversion)(nil)

// NewInversion registers the inversion collectors on reg under namespace.
// A nil buckets slice selects prometheus.DefBuckets. Registration panics on
// duplicate names, like promauto.
func NewInversion(reg prometheus.Registerer, namespace string, buckets []float64) *Inversion {
	if buckets == nil {
		buckets = prometheus.DefBuckets
	}
	f := promauto.With(reg)

	return &Inversion{
		attempts: f.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "inversion_attempts_total",
				Help:      "Total number of inversion attempts by result",
			},
			[]string{"result"},
		),
		jitter: f.NewCounter(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "inversion_jitter_total",
				Help:      "Total number of jitter perturbations applied before a retry",
			},
		),
		failures: f.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "inversion_failures_total",
				Help:      "Total number of inversion requests that returned an error",
			},
			[]string{"reason"},
		),
		duration: f.NewHistogram(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "inversion_duration_seconds",
				Help:      "Wall time of an inversion request including retries",
				Buckets:   buckets,
			},
		),
	}
}

// ObserveAttempt counts one attempt. Every attempt after the first was
// preceded by a jitter step.
func (m *Inversion) ObserveAttempt(_ int, attempt int, err error) {
	if attempt > 1 {
		m.jitter.Inc()
	}
	m.attempts.WithLabelValues(attemptResult(err)).Inc()
}

// ObserveResult records the request duration and, on failure, its reason.
func (m *Inversion) ObserveResult(_ int, _ int, elapsed time.Duration, err error) {
	m.duration.Observe(elapsed.Seconds())
	if err == nil {
		return
	}
	reason := ReasonInvalid
	switch {
	case errors.Is(err, matrix.ErrUninvertible):
		reason = ReasonUninvertible
	case errors.Is(err, matrix.ErrSingular):
		// Invert without retries.
		reason = ReasonSingular
	}
	m.failures.WithLabelValues(reason).Inc()
}

func attemptResult(err error) string {
	switch {
	case err == nil:
		return ResultSuccess
	case errors.Is(err, matrix.ErrSingular):
		return ResultSingular
	default:
		return ResultError
	}
}
