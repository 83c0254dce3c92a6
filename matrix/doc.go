// SPDX-License-Identifier: MIT

// Package matrix is the dense linear-algebra backbone of the explainability
// pipeline: it builds the design matrices a local linear surrogate is fitted
// on, composes them into normal equations and inverts the result.
//
// The package provides:
//
//   - Dense, a row-major float64 matrix behind the small Matrix interface.
//   - Construction from flat vectors and from per-sample value collections
//     (RowVector, ColumnVector, FromSample, FromSamples).
//   - Shape-checked operators: Add, Sub, Scale, Mul, MatVec, Transpose,
//     AddRow/SubRow broadcasts, SumAxis reductions and Col/Cols selection.
//   - Invert, an in-place Gauss-Jordan elimination with pivots restricted
//     to the diagonal, and JitterInvert, which retries a singular inversion
//     on a slightly perturbed copy a bounded number of times.
//   - Small vector statistics (MinPos, Variance, RowSum, RowSquareSum).
//
// Every operation validates its operands before touching data and returns
// a fresh *Dense; inputs are never mutated except by JitterInvertInPlace.
// Failures are sentinel errors (ErrDimensionMismatch, ErrOutOfRange,
// ErrEmptyIndexSet, ErrSingular, ErrUninvertible, ...) wrapped with the
// operation name, so callers match them with errors.Is / errors.As.
//
// Nothing in the package holds global state. Randomness used for jitter is
// always supplied by the caller through RandSource.
package matrix
