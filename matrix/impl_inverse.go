// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Invert square matrices with an in-place Gauss-Jordan elimination whose
//     pivots are restricted to the diagonal (DasGupta's modified algorithm).
//   - Report numerically zero pivots as *SingularError so JitterInvert can
//     recover from them.
//
// Algorithm (n×n, one pivot per step, n steps):
//  1. Pivot selection: among unused diagonal entries pick the largest |W[d][d]|;
//     ties go to the lowest index (strict '>' while scanning ascending).
//  2. Singularity check: |pivot| < zeroThreshold (or pivot == 0, or NaN) aborts.
//  3. Normalize: W[p][p] = 1 ("virtualized" pivot), then W[p][:] /= pivot.
//  4. Eliminate: for i != p, f = W[i][p]; W[i][p] = 0; W[i][:] -= W[p][:] * f.
//  5. Mark p used.
//
// After n steps W holds X⁻¹ without an explicit identity block: writing 1 into
// the pivot slot before normalizing, and 0 into the eliminated slot before
// subtracting, performs the identity-augmented column updates in place.
//
// Determinism & Performance:
//   - Fixed loop orders; diagonal-only pivot search is O(n) per step.
//   - Works on the flat row-major buffer of a private copy; O(n^3) time, O(n^2) space.

package matrix

import "math"

const opInvert = "Invert"

// Invert returns the inverse of the square matrix m. m is never mutated.
//
// Inputs:
//   - m: square matrix (n×n).
//   - zeroThreshold: pivots with |p| < zeroThreshold count as zero; finite and >= 0.
//
// Returns:
//   - *Dense: a new n×n matrix holding m⁻¹.
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare, ErrInvalidThreshold.
//   - *SingularError (matches ErrSingular) when a pivot is numerically zero.
//
// Complexity:
//   - Time O(n^3), Space O(n^2).
//
// Notes:
//   - Diagonal-only pivoting trades robustness for simplicity; it suits the
//     symmetric, near diagonally dominant XᵀWX matrices of a surrogate fit.
//     Use JitterInvert when degenerate samples may make the system singular.
func Invert(m Matrix, zeroThreshold float64) (*Dense, error) {
	if err := ValidateSquare(m); err != nil {
		return nil, matrixErrorf(opInvert, err)
	}
	if err := ValidateThreshold(zeroThreshold); err != nil {
		return nil, matrixErrorf(opInvert, err)
	}
	w, err := workingCopy(m)
	if err != nil {
		return nil, matrixErrorf(opInvert, err)
	}
	if err = invertInPlace(w, zeroThreshold); err != nil {
		return nil, matrixErrorf(opInvert, err)
	}

	return w, nil
}

// workingCopy returns an exclusively owned *Dense copy of m.
func workingCopy(m Matrix) (*Dense, error) {
	if d, ok := m.(*Dense); ok {
		return d.clone(), nil
	}

	return asDense(m) // already a fresh copy for foreign implementations
}

// findPivot returns the unused diagonal index with the largest absolute value.
// When every unused candidate is zero (or NaN) the first unused index is
// returned so the singularity check sees a real candidate.
func findPivot(w *Dense, used []bool) int {
	n := w.r
	pivot, maxAbs := -1, 0.0
	for d := 0; d < n; d++ {
		if used[d] {
			continue
		}
		if pivot < 0 {
			pivot = d // first unused: fallback candidate
		}
		if abs := math.Abs(w.data[d*n+d]); abs > maxAbs {
			pivot, maxAbs = d, abs
		}
	}

	return pivot
}

// invertInPlace runs the n pivot steps on w. On error w holds a partially
// reduced matrix and must be discarded.
func invertInPlace(w *Dense, zeroThreshold float64) error {
	n := w.r
	used := make([]bool, n) // pivot-used markers; live for this attempt only

	var (
		step, p, i, j int
		pivotVal, f   float64
		pivotRow, row []float64
	)
	for step = 0; step < n; step++ {
		// Operation 1: choose and check the pivot.
		p = findPivot(w, used)
		pivotVal = w.data[p*n+p]
		if !(math.Abs(pivotVal) >= zeroThreshold) || pivotVal == 0 {
			return &SingularError{Step: step, Pivot: p, Value: pivotVal}
		}

		// Virtualize the pivot, mark it used, normalize its row.
		pivotRow = w.data[p*n : (p+1)*n]
		pivotRow[p] = 1.0
		used[p] = true
		for j = 0; j < n; j++ {
			pivotRow[j] /= pivotVal
		}

		// Operation 2: eliminate column p from every other row.
		for i = 0; i < n; i++ {
			if i == p {
				continue
			}
			row = w.data[i*n : (i+1)*n]
			f = row[p]
			row[p] = 0.0
			for j = 0; j < n; j++ {
				row[j] -= pivotRow[j] * f
			}
		}
	}

	return nil
}
