// SPDX-License-Identifier: MIT
// Row-broadcast operators (AddRow, SubRow) and the AllClose comparison.
// The *Dense path runs one gonum/floats call per row; other Matrix values
// are read through At in row order.

package matrix

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
)

const (
	opAddRow   = "AddRow"
	opSubRow   = "SubRow"
	opAllClose = "AllClose"
)

// ewBroadcastRow returns out[i,j] = X[i,j] + sign*v[j]; len(v) must be
// X.Cols().
func ewBroadcastRow(X Matrix, v []float64, sign float64, opTag string) (*Dense, error) {
	if err := ValidateNotNil(X); err != nil {
		return nil, matrixErrorf(opTag, err)
	}
	r, c := X.Rows(), X.Cols()
	// The broadcast row must match the column count exactly.
	if err := ValidateVecLen(v, c); err != nil {
		return nil, matrixErrorf(opTag, fmt.Errorf("matrix %dx%d: %w", r, c, err))
	}
	out, err := NewDense(r, c)
	if err != nil {
		return nil, matrixErrorf(opTag, err)
	}

	// Dense fast-path: one AddScaledTo per row over the flat buffer.
	if d, ok := X.(*Dense); ok {
		for i := 0; i < r; i++ {
			base := i * c // cache the base offset for row i
			floats.AddScaledTo(out.data[base:base+c], d.data[base:base+c], sign, v)
		}

		return out, nil
	}

	// Generic fallback via At (still deterministic).
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			x, e := X.At(i, j)
			if e != nil {
				return nil, matrixErrorf(opTag, e)
			}
			out.data[i*c+j] = x + sign*v[j]
		}
	}

	return out, nil
}

// AddRow returns X with v added to every row (out[i,j] = X[i,j] + v[j]).
// len(v) must equal X.Cols(); otherwise ErrDimensionMismatch.
// Time: O(r*c). Space: O(r*c).
func AddRow(X Matrix, v []float64) (*Dense, error) { return ewBroadcastRow(X, v, +1, opAddRow) }

// SubRow returns X with v subtracted from every row (out[i,j] = X[i,j] - v[j]).
// len(v) must equal X.Cols(); otherwise ErrDimensionMismatch.
// Time: O(r*c). Space: O(r*c).
func SubRow(X Matrix, v []float64) (*Dense, error) { return ewBroadcastRow(X, v, -1, opSubRow) }

// AllClose reports whether |a[i,j]-b[i,j]| <= atol + rtol*|b[i,j]| holds for
// every entry of two same-shaped matrices. NaN never compares close, and an
// infinity only matches the same infinity. Negative tolerances are used by
// absolute value; NaN or infinite tolerances give ErrInvalidThreshold.
func AllClose(a, b Matrix, rtol, atol float64) (bool, error) {
	if math.IsNaN(rtol) || math.IsNaN(atol) || math.IsInf(rtol, 0) || math.IsInf(atol, 0) {
		return false, matrixErrorf(opAllClose, ErrInvalidThreshold)
	}
	rtol, atol = math.Abs(rtol), math.Abs(atol)
	if err := ValidateBinarySameShape(a, b); err != nil {
		return false, matrixErrorf(opAllClose, err)
	}
	da, err := asDense(a)
	if err != nil {
		return false, matrixErrorf(opAllClose, err)
	}
	db, err := asDense(b)
	if err != nil {
		return false, matrixErrorf(opAllClose, err)
	}
	for idx, av := range da.data {
		if !closeEnough(av, db.data[idx], rtol, atol) {
			return false, nil
		}
	}

	return true, nil
}

// closeEnough implements the AllClose relation for a single pair.
func closeEnough(a, b, rtol, atol float64) bool {
	switch {
	case math.IsNaN(a) || math.IsNaN(b):
		return false
	case math.IsInf(a, 0) || math.IsInf(b, 0):
		return a == b // same-signed infinities only
	default:
		return math.Abs(a-b) <= atol+rtol*math.Abs(b)
	}
}
