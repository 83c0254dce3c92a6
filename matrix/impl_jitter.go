// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Recover from singular inversions caused by degenerate sampling
//     (duplicate or collinear perturbed samples) by adding a tiny random
//     perturbation and retrying, a bounded number of times.
//
// Policy:
//   - Only *SingularError triggers a retry; argument and shape errors are
//     returned at once.
//   - Each attempt starts from a fresh working copy and fresh pivot markers.
//   - The perturbation accumulates on the jitter target across attempts:
//     attempt k inverts target + Σ_{t<k} delta·U_t, U_t ~ uniform[0,1)^(n×n).
//   - Exhaustion returns *UninvertibleError; no partial result is ever returned.

package matrix

import (
	crand "crypto/rand"
	"errors"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"time"
)

const (
	opJitterInvert        = "JitterInvert"
	opJitterInvertInPlace = "JitterInvertInPlace"
	opJitter              = "Jitter"
)

// RandSource yields uniform values in [0, 1). *math/rand.Rand and
// *math/rand/v2.Rand both satisfy it; pass a seeded one for reproducible retries.
type RandSource interface {
	Float64() float64
}

// NewSecureSource returns a ChaCha8 generator seeded from crypto/rand, the
// counterpart of drawing jitter from a secure default generator.
func NewSecureSource() (RandSource, error) {
	var seed [32]byte
	if _, err := crand.Read(seed[:]); err != nil {
		return nil, fmt.Errorf("matrix: seed secure source: %w", err)
	}

	return rand.New(rand.NewChaCha8(seed)), nil
}

// JitterInvert inverts m, retrying on singularity with a jittered copy.
//
// Implementation:
//   - Stage 1: validate m (non-nil, square), threshold, attempt budget, source.
//   - Stage 2: clone m once into the jitter target; the caller's matrix is
//     never touched.
//   - Stage 3: up to maxAttempts times, invert a fresh copy of the target; on
//     *SingularError add delta·uniform[0,1) to every target entry and retry.
//
// Inputs:
//   - m: square matrix, typically XᵀWX.
//   - maxAttempts: total inversion attempts (>= 1).
//   - zeroThreshold: see Invert.
//   - src: random source for the perturbation (seeded for reproducibility).
//   - opts: WithJitterDelta, WithLogger, WithObserver.
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare, ErrInvalidThreshold, ErrInvalidAttempts, ErrNilSource.
//   - *UninvertibleError (matches ErrUninvertible and ErrSingular) on exhaustion.
//
// Complexity:
//   - Time O(maxAttempts · n^3), Space O(n^2).
func JitterInvert(m Matrix, maxAttempts int, zeroThreshold float64, src RandSource, opts ...Option) (*Dense, error) {
	o, start := gatherOptions(opts...), time.Now()
	if err := validateJitterArgs(m, maxAttempts, zeroThreshold, src); err != nil {
		o.observeFailure(orderOf(m), 0, start, err)
		return nil, matrixErrorf(opJitterInvert, err)
	}
	target, err := workingCopy(m)
	if err != nil {
		o.observeFailure(m.Rows(), 0, start, err)
		return nil, matrixErrorf(opJitterInvert, err)
	}
	inv, err := jitterLoop(target, maxAttempts, zeroThreshold, src, o)
	if err != nil {
		return nil, matrixErrorf(opJitterInvert, err)
	}

	return inv, nil
}

// JitterInvertInPlace is JitterInvert with the caller's matrix as the jitter
// target: after a singular attempt m itself is perturbed, so on return m holds
// the (possibly jittered) matrix that was finally inverted. Callers that need
// the original must pass a copy.
//
// Errors: same as JitterInvert.
func JitterInvertInPlace(m Matrix, maxAttempts int, zeroThreshold float64, src RandSource, opts ...Option) (*Dense, error) {
	o := gatherOptions(opts...)
	if err := validateJitterArgs(m, maxAttempts, zeroThreshold, src); err != nil {
		o.observeFailure(orderOf(m), 0, time.Now(), err)
		return nil, matrixErrorf(opJitterInvertInPlace, err)
	}
	inv, err := jitterLoop(m, maxAttempts, zeroThreshold, src, o)
	if err != nil {
		return nil, matrixErrorf(opJitterInvertInPlace, err)
	}

	return inv, nil
}

// JitterInvertSecure is JitterInvert drawing the perturbation from NewSecureSource.
func JitterInvertSecure(m Matrix, maxAttempts int, zeroThreshold float64, opts ...Option) (*Dense, error) {
	src, err := NewSecureSource()
	if err != nil {
		return nil, matrixErrorf(opJitterInvert, err)
	}

	return JitterInvert(m, maxAttempts, zeroThreshold, src, opts...)
}

// Jitter adds delta·src.Float64() to every entry of m in place, in row-major
// order (one draw per entry).
//
// Errors: ErrNilMatrix, ErrNilSource, wrapped Set errors for foreign implementations.
func Jitter(m Matrix, delta float64, src RandSource) error {
	if err := ValidateNotNil(m); err != nil {
		return matrixErrorf(opJitter, err)
	}
	if src == nil {
		return matrixErrorf(opJitter, ErrNilSource)
	}

	if d, ok := m.(*Dense); ok {
		for idx := range d.data {
			d.data[idx] += delta * src.Float64()
		}

		return nil
	}

	r, c := m.Rows(), m.Cols()
	var v float64
	var err error
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			if v, err = m.At(i, j); err != nil {
				return readErrorf(opJitter, i, j, err)
			}
			if err = m.Set(i, j, v+delta*src.Float64()); err != nil {
				return matrixErrorf(opJitter, fmt.Errorf("Set(%d,%d): %w", i, j, err))
			}
		}
	}

	return nil
}

// validateJitterArgs checks arguments in the documented priority order.
func validateJitterArgs(m Matrix, maxAttempts int, zeroThreshold float64, src RandSource) error {
	if err := ValidateSquare(m); err != nil {
		return err
	}
	if err := ValidateThreshold(zeroThreshold); err != nil {
		return err
	}
	if maxAttempts < 1 {
		return fmt.Errorf("got %d: %w", maxAttempts, ErrInvalidAttempts)
	}
	if src == nil {
		return ErrNilSource
	}

	return nil
}

// jitterLoop runs the bounded retry loop against target.
// The target is perturbed only when another attempt follows.
func jitterLoop(target Matrix, maxAttempts int, zeroThreshold float64, src RandSource, o Options) (*Dense, error) {
	n := target.Rows()
	start := time.Now()
	var last error
	for attempt := 1; attempt <= maxAttempts; attempt++ {
		w, err := workingCopy(target)
		if err != nil {
			o.observeFailure(n, attempt, start, err)
			return nil, err
		}
		err = invertInPlace(w, zeroThreshold)
		if o.observer != nil {
			o.observer.ObserveAttempt(n, attempt, err)
		}
		if err == nil {
			if attempt > 1 {
				o.logger.Debug("matrix inverted after jitter",
					slog.Int("size", n), slog.Int("attempt", attempt))
			}
			if o.observer != nil {
				o.observer.ObserveResult(n, attempt, time.Since(start), nil)
			}

			return w, nil
		}
		if !errors.Is(err, ErrSingular) {
			o.observeFailure(n, attempt, start, err)
			return nil, err
		}
		last = err
		o.logger.Debug("singular attempt",
			slog.Int("size", n),
			slog.Int("attempt", attempt),
			slog.Int("max_attempts", maxAttempts),
			slog.String("error", err.Error()))
		if attempt == maxAttempts {
			break
		}
		if err = Jitter(target, o.jitterDelta, src); err != nil {
			o.observeFailure(n, attempt, start, err)
			return nil, err
		}
	}

	uerr := &UninvertibleError{Attempts: maxAttempts, Last: last}
	o.logger.Warn("matrix could not be inverted via jittering",
		slog.Int("size", n),
		slog.Int("attempts", maxAttempts),
		slog.Float64("jitter_delta", o.jitterDelta))
	o.observeFailure(n, maxAttempts, start, uerr)

	return nil, uerr
}

// observeFailure closes a failed request on the observer, if any.
// Requests rejected before the first attempt report zero attempts.
func (o Options) observeFailure(n, attempts int, start time.Time, err error) {
	if o.observer != nil {
		o.observer.ObserveResult(n, attempts, time.Since(start), err)
	}
}

// orderOf is m.Rows(), or 0 for a nil m.
func orderOf(m Matrix) int {
	if m == nil {
		return 0
	}

	return m.Rows()
}
