// SPDX-License-Identifier: MIT
// Shared argument checks. Kernels call these first and wrap the result with
// their own op tag, so a failure reads "Op: ValidateX: cause". Shape checks
// name both operand shapes. Everything here is O(1) except ValidateIndices,
// which is O(k) in the number of indices.

package matrix

import (
	"fmt"
	"math"
)

// validatorErrorf prefixes err with the validator name.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateNotNil returns ErrNilMatrix for a nil m.
func ValidateNotNil(m Matrix) error {
	if m == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}

	return nil
}

// ValidateSameShape reports ErrDimensionMismatch unless a and b have the
// same rows and columns. Both must be non-nil; see ValidateBinarySameShape.
func ValidateSameShape(a, b Matrix) error {
	if a.Rows() != b.Rows() || a.Cols() != b.Cols() {
		return validatorErrorf("ValidateSameShape", shapeErrorf(a, b))
	}

	return nil
}

// ValidateSquare accepts only a non-nil m with Rows() == Cols().
func ValidateSquare(m Matrix) error {
	if err := ValidateNotNil(m); err != nil {
		return validatorErrorf("ValidateSquare", err)
	}
	if m.Rows() != m.Cols() {
		return validatorErrorf("ValidateSquare",
			fmt.Errorf("shape %dx%d: %w", m.Rows(), m.Cols(), ErrNonSquare))
	}

	return nil
}

// ValidateVecLen requires len(x) == n.
// Time: O(1). Space: O(1).
func ValidateVecLen(x []float64, n int) error {
	// A nil slice is only acceptable when nothing is expected, which never
	// happens for matrices with cols >= 1.
	if len(x) != n {
		return validatorErrorf("ValidateVecLen",
			fmt.Errorf("vector length %d, want %d: %w", len(x), n, ErrDimensionMismatch))
	}

	return nil
}

// ValidateBinarySameShape is the composite NotNil(a) → NotNil(b) → SameShape.
//
// Errors: ErrNilMatrix, ErrDimensionMismatch.
// Complexity: O(1).
func ValidateBinarySameShape(a, b Matrix) error {
	if err := ValidateNotNil(a); err != nil {
		return validatorErrorf("ValidateBinarySameShape", err)
	}
	if err := ValidateNotNil(b); err != nil {
		return validatorErrorf("ValidateBinarySameShape", err)
	}
	if err := ValidateSameShape(a, b); err != nil {
		return validatorErrorf("ValidateBinarySameShape", err)
	}

	return nil
}

// ValidateMulCompatible ensures a.Cols == b.Rows, inputs non-nil.
//
// Errors: ErrNilMatrix, ErrDimensionMismatch (with both shapes).
// Complexity: O(1).
func ValidateMulCompatible(a, b Matrix) error {
	if err := ValidateNotNil(a); err != nil {
		return validatorErrorf("ValidateMulCompatible", err)
	}
	if err := ValidateNotNil(b); err != nil {
		return validatorErrorf("ValidateMulCompatible", err)
	}
	if a.Cols() != b.Rows() {
		return validatorErrorf("ValidateMulCompatible", shapeErrorf(a, b))
	}

	return nil
}

// ValidateColIndex ensures 0 <= i < m.Cols().
//
// Errors: *IndexError (matches ErrOutOfRange).
// Complexity: O(1).
func ValidateColIndex(op string, m Matrix, i int) error {
	if i < 0 || i >= m.Cols() {
		return &IndexError{Op: op, Index: i, Bound: m.Cols()}
	}

	return nil
}

// ValidateIndices ensures idxs is non-empty and every entry addresses a column of m.
// The first offending index (in slice order) is reported.
//
// Errors: ErrEmptyIndexSet, *IndexError.
// Complexity: O(len(idxs)).
func ValidateIndices(op string, m Matrix, idxs []int) error {
	if len(idxs) == 0 {
		return validatorErrorf("ValidateIndices", ErrEmptyIndexSet)
	}
	for _, idx := range idxs {
		if err := ValidateColIndex(op, m, idx); err != nil {
			return err
		}
	}

	return nil
}

// ValidateThreshold ensures the zero threshold is finite and non-negative.
//
// Errors: ErrInvalidThreshold.
// Complexity: O(1).
func ValidateThreshold(t float64) error {
	if math.IsNaN(t) || math.IsInf(t, 0) || t < 0 {
		return validatorErrorf("ValidateThreshold", fmt.Errorf("got %g: %w", t, ErrInvalidThreshold))
	}

	return nil
}
