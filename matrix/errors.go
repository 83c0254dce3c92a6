// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set (unified, consistent).
// This file defines the package-level sentinel errors and the few typed
// errors that carry a payload. All kernels MUST return these sentinels and
// tests MUST check them via errors.Is / errors.As. No kernel panics on
// user-triggered error conditions.

package matrix

import (
	"errors"
	"fmt"
)

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "matrix: ..." for consistency and to allow
// easy grepping across logs. Kernels wrap sentinels with the operation tag
// through matrixErrorf; callers still match with errors.Is.
//
// ERROR PRIORITY (documented, enforced in tests):
// nil -> shape/index -> argument policy (threshold, attempts, source)
// -> numerical (singular -> uninvertible).

var (
	// ErrInvalidDimensions indicates that requested matrix dimensions are non-positive,
	// e.g. building a vector from an empty slice.
	ErrInvalidDimensions = errors.New("matrix: dimensions must be > 0")

	// ErrOutOfRange indicates that an index (row or column) is outside valid bounds.
	// Public indexers (At/Set, Col/Cols) MUST return this, not panic.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrDimensionMismatch indicates incompatible shapes between operands,
	// e.g. Add/Sub different shapes, or Mul where a.Cols != b.Rows.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrNonSquare signals that a square matrix was required but the input wasn't.
	ErrNonSquare = errors.New("matrix: matrix is not square")

	// ErrNilMatrix indicates that a nil Matrix (receiver or argument) was used.
	ErrNilMatrix = errors.New("matrix: nil matrix")

	// ErrEmptyIndexSet is returned by Cols when no column index was requested.
	ErrEmptyIndexSet = errors.New("matrix: empty column index set")

	// ErrSingular is returned when the selected pivot falls below the zero
	// threshold during one inversion attempt. JitterInvert recovers from it.
	ErrSingular = errors.New("matrix: singular matrix")

	// ErrUninvertible is returned when every jitter attempt stayed singular.
	ErrUninvertible = errors.New("matrix: matrix could not be inverted via jittering")

	// ErrInvalidThreshold rejects a NaN, infinite or negative zero threshold.
	ErrInvalidThreshold = errors.New("matrix: zero threshold must be finite and >= 0")

	// ErrInvalidAttempts rejects a jitter attempt budget below one.
	ErrInvalidAttempts = errors.New("matrix: attempt budget must be >= 1")

	// ErrUnknownAxis rejects an Axis value other than AxisRow or AxisColumn.
	ErrUnknownAxis = errors.New("matrix: unknown axis")

	// ErrNilSource indicates that no random source was supplied for jittering.
	ErrNilSource = errors.New("matrix: nil random source")
)

// IndexError reports an index outside [0, Bound) passed to Op.
// It matches ErrOutOfRange through errors.Is. Kernels return it unwrapped
// since the message already starts with Op.
type IndexError struct {
	Op    string // operation tag, e.g. "Col"
	Index int    // offending index as supplied by the caller
	Bound int    // exclusive upper bound (number of columns or rows)
}

func (e *IndexError) Error() string {
	return fmt.Sprintf("%s: index %d out of bounds [0, %d): %v",
		e.Op, e.Index, e.Bound, ErrOutOfRange)
}

// Unwrap exposes ErrOutOfRange.
func (e *IndexError) Unwrap() error { return ErrOutOfRange }

// SingularError describes the pivot that stopped an inversion attempt.
// It matches ErrSingular through errors.Is.
type SingularError struct {
	Step  int     // elimination step (0-based) at which the pivot was chosen
	Pivot int     // diagonal index of the chosen pivot
	Value float64 // pivot value, |Value| < threshold
}

func (e *SingularError) Error() string {
	return fmt.Sprintf("%v: pivot W[%d][%d]=%g below threshold at step %d",
		ErrSingular, e.Pivot, e.Pivot, e.Value, e.Step)
}

// Unwrap exposes ErrSingular.
func (e *SingularError) Unwrap() error { return ErrSingular }

// UninvertibleError is the permanent failure of JitterInvert.
// errors.Is(err, ErrUninvertible) and errors.Is(err, ErrSingular) both hold.
type UninvertibleError struct {
	Attempts int   // number of inversion attempts performed
	Last     error // last singular failure observed
}

func (e *UninvertibleError) Error() string {
	return fmt.Sprintf("%v after %d attempt(s): %v", ErrUninvertible, e.Attempts, e.Last)
}

// Is reports ErrUninvertible as a match.
func (e *UninvertibleError) Is(target error) bool { return target == ErrUninvertible }

// Unwrap exposes the last singular failure.
func (e *UninvertibleError) Unwrap() error { return e.Last }

// shapeErrorf attaches both operand shapes to ErrDimensionMismatch.
func shapeErrorf(a, b Matrix) error {
	return fmt.Errorf("A %dx%d, B %dx%d: %w", a.Rows(), a.Cols(), b.Rows(), b.Cols(), ErrDimensionMismatch)
}
