// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Provide the axis reductions and small vector statistics used around a
//     surrogate fit: SumAxis, RowSum, RowSquareSum, MinPos, Variance.
//
// Determinism & Performance:
//   - Reductions accumulate one row (or column) vector at a time, in index order.
//   - Dense fast-paths avoid At and operate on row-major flat buffers.

package matrix

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Operation name constants for unified error wrapping and reducing magic strings.
const (
	opSumAxis      = "SumAxis"
	opRowSum       = "RowSum"
	opRowSquareSum = "RowSquareSum"
)

// NoPositive is the MinPos result for a vector without strictly positive
// entries. Downstream code branches on this exact value.
const NoPositive = math.MaxFloat64

// SumAxis reduces X along one axis.
// Implementation:
//   - AxisRow: start from a zero vector of length Cols and add every row to it
//     (result[j] = Σ_i X[i,j]).
//   - AxisColumn: start from a zero vector of length Rows and add every column
//     to it (result[i] = Σ_j X[i,j]).
//
// Errors:
//   - ErrNilMatrix, ErrUnknownAxis.
//
// Complexity:
//   - Time O(r*c), Space O(c) or O(r) for the result.
func SumAxis(X Matrix, axis Axis) ([]float64, error) {
	if err := ValidateNotNil(X); err != nil {
		return nil, matrixErrorf(opSumAxis, err)
	}
	r, c := X.Rows(), X.Cols()
	switch axis {
	case AxisRow:
		out := make([]float64, c)
		for i := 0; i < r; i++ {
			row, err := rowOf(X, i)
			if err != nil {
				return nil, matrixErrorf(opSumAxis, err)
			}
			floats.Add(out, row)
		}

		return out, nil
	case AxisColumn:
		out := make([]float64, r)
		for j := 0; j < c; j++ {
			col, err := Col(X, j)
			if err != nil {
				return nil, matrixErrorf(opSumAxis, err)
			}
			floats.Add(out, col)
		}

		return out, nil
	default:
		return nil, matrixErrorf(opSumAxis, fmt.Errorf("axis %d: %w", int(axis), ErrUnknownAxis))
	}
}

// RowSum adds all rows of m together; the result has length m.Cols().
// Equivalent to SumAxis(m, AxisRow).
func RowSum(m Matrix) ([]float64, error) {
	out, err := SumAxis(m, AxisRow)
	if err != nil {
		return nil, matrixErrorf(opRowSum, err)
	}

	return out, nil
}

// RowSquareSum adds the element-wise squares of all rows together:
// result[j] = Σ_i m[i,j]². The result has length m.Cols().
// Complexity: Time O(r*c), Space O(c).
func RowSquareSum(m Matrix) ([]float64, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opRowSquareSum, err)
	}
	r, c := m.Rows(), m.Cols()
	out := make([]float64, c)
	sq := make([]float64, c) // scratch for the squared row
	for i := 0; i < r; i++ {
		row, err := rowOf(m, i)
		if err != nil {
			return nil, matrixErrorf(opRowSquareSum, err)
		}
		floats.MulTo(sq, row, row)
		floats.Add(out, sq)
	}

	return out, nil
}

// MinPos returns the smallest strictly positive entry of v, or NoPositive
// (math.MaxFloat64) when there is none. NaN entries are ignored.
// This mirrors scikit-learn's arrayfuncs.min_pos.
// Complexity: O(n).
func MinPos(v []float64) float64 {
	minPos := NoPositive
	for _, x := range v {
		if x > 0 && x < minPos {
			minPos = x
		}
	}

	return minPos
}

// Variance returns the population variance of v: the mean of squared
// deviations from the mean, divisor N. An empty v yields NaN.
// Complexity: O(n).
func Variance(v []float64) float64 {
	if len(v) == 0 {
		return math.NaN()
	}
	_, variance := stat.PopMeanVariance(v, nil)

	return variance
}

// rowOf returns row i of m. For *Dense the returned slice aliases the
// backing buffer and must be treated as read-only.
func rowOf(m Matrix, i int) ([]float64, error) {
	c := m.Cols()
	if d, ok := m.(*Dense); ok {
		return d.data[i*c : (i+1)*c], nil
	}
	row := make([]float64, c)
	var err error
	for j := 0; j < c; j++ {
		if row[j], err = m.At(i, j); err != nil {
			return nil, fmt.Errorf("At(%d,%d): %w", i, j, err)
		}
	}

	return row, nil
}
