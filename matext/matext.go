// SPDX-License-Identifier: MIT

// Package matext adds the small row/column helpers a surrogate fit needs on
// top of gonum's mat types, and converts between gonum matrices and
// matrix.Dense.
//
// Policy:
//   - Inputs are never mutated except by the Swap* helpers, which work in place.
//   - Shape and index failures return the matrix package sentinels
//     (ErrDimensionMismatch, ErrOutOfRange) wrapped with the operation name,
//     instead of the panics gonum raises for the same conditions.
package matext

import (
	"fmt"

	"github.com/katalvlaran/xailinalg/matrix"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// RowSum adds all rows of m together; the result has length c.
// Complexity: O(r*c).
func RowSum(m mat.Matrix) *mat.VecDense {
	r, c := m.Dims()
	out := make([]float64, c)
	row := make([]float64, c)
	for i := 0; i < r; i++ {
		mat.Row(row, i, m)
		floats.Add(out, row)
	}

	return mat.NewVecDense(c, out)
}

// RowSquareSum adds the element-wise squares of all rows together.
// Complexity: O(r*c).
func RowSquareSum(m mat.Matrix) *mat.VecDense {
	r, c := m.Dims()
	out := make([]float64, c)
	row := make([]float64, c)
	for i := 0; i < r; i++ {
		mat.Row(row, i, m)
		floats.Mul(row, row)
		floats.Add(out, row)
	}

	return mat.NewVecDense(c, out)
}

// RowDifference subtracts v from every row of m. len(v) must equal c.
func RowDifference(m mat.Matrix, v mat.Vector) (*mat.Dense, error) {
	r, c := m.Dims()
	if v.Len() != c {
		return nil, fmt.Errorf("RowDifference: matrix %dx%d, vector length %d: %w",
			r, c, v.Len(), matrix.ErrDimensionMismatch)
	}
	out := mat.DenseCopyOf(m)
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			out.Set(i, j, out.At(i, j)-v.AtVec(j))
		}
	}

	return out, nil
}

// ColDifference subtracts v from every column of m. len(v) must equal r.
func ColDifference(m mat.Matrix, v mat.Vector) (*mat.Dense, error) {
	r, c := m.Dims()
	if v.Len() != r {
		return nil, fmt.Errorf("ColDifference: matrix %dx%d, vector length %d: %w",
			r, c, v.Len(), matrix.ErrDimensionMismatch)
	}
	out := mat.DenseCopyOf(m)
	for i := 0; i < r; i++ {
		vi := v.AtVec(i)
		for j := 0; j < c; j++ {
			out.Set(i, j, out.At(i, j)-vi)
		}
	}

	return out, nil
}

// SwapRows exchanges rows i and j of m in place.
func SwapRows(m *mat.Dense, i, j int) error {
	r, _ := m.Dims()
	if i < 0 || i >= r || j < 0 || j >= r {
		return fmt.Errorf("SwapRows(%d,%d): %d row(s): %w", i, j, r, matrix.ErrOutOfRange)
	}
	tmp := mat.Row(nil, i, m)
	m.SetRow(i, mat.Row(nil, j, m))
	m.SetRow(j, tmp)

	return nil
}

// SwapVec exchanges entries i and j of v in place.
func SwapVec(v *mat.VecDense, i, j int) error {
	n := v.Len()
	if i < 0 || i >= n || j < 0 || j >= n {
		return fmt.Errorf("SwapVec(%d,%d): length %d: %w", i, j, n, matrix.ErrOutOfRange)
	}
	vi := v.AtVec(i)
	v.SetVec(i, v.AtVec(j))
	v.SetVec(j, vi)

	return nil
}

// SwapInts exchanges x[i] and x[j] in place; used to keep index permutations
// in step with SwapRows.
func SwapInts(x []int, i, j int) error {
	if i < 0 || i >= len(x) || j < 0 || j >= len(x) {
		return fmt.Errorf("SwapInts(%d,%d): length %d: %w", i, j, len(x), matrix.ErrOutOfRange)
	}
	x[i], x[j] = x[j], x[i]

	return nil
}

// RowMatrix returns v as a 1×n matrix.
func RowMatrix(v mat.Vector) *mat.Dense {
	n := v.Len()
	out := mat.NewDense(1, n, nil)
	for j := 0; j < n; j++ {
		out.Set(0, j, v.AtVec(j))
	}

	return out
}

// Dot returns the x×z matrix whose (i,j) entry is the dot product of row i
// of a (x×y) and column j of b (y×z).
// Complexity: O(x*y*z).
func Dot(a, b mat.Matrix) (*mat.Dense, error) {
	ar, ac := a.Dims()
	br, bc := b.Dims()
	if ac != br {
		return nil, fmt.Errorf("Dot: A %dx%d, B %dx%d: %w", ar, ac, br, bc, matrix.ErrDimensionMismatch)
	}
	out := mat.NewDense(ar, bc, nil)
	cols := make([][]float64, bc)
	for j := range cols {
		cols[j] = mat.Col(nil, j, b)
	}
	row := make([]float64, ac)
	for i := 0; i < ar; i++ {
		mat.Row(row, i, a)
		for j := 0; j < bc; j++ {
			out.Set(i, j, floats.Dot(row, cols[j]))
		}
	}

	return out, nil
}

// MinPos is matrix.MinPos over a gonum vector.
func MinPos(v mat.Vector) float64 { return matrix.MinPos(vecData(v)) }

// Variance is matrix.Variance (population) over a gonum vector.
func Variance(v mat.Vector) float64 { return matrix.Variance(vecData(v)) }

func vecData(v mat.Vector) []float64 {
	out := make([]float64, v.Len())
	for i := range out {
		out[i] = v.AtVec(i)
	}

	return out
}

// ToGonum copies m into a new gonum *mat.Dense.
func ToGonum(m matrix.Matrix) (*mat.Dense, error) {
	if err := matrix.ValidateNotNil(m); err != nil {
		return nil, fmt.Errorf("ToGonum: %w", err)
	}
	r, c := m.Rows(), m.Cols()
	data := make([]float64, 0, r*c)
	if d, ok := m.(*matrix.Dense); ok {
		for _, row := range d.ToRows() {
			data = append(data, row...)
		}

		return mat.NewDense(r, c, data), nil
	}
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			v, err := m.At(i, j)
			if err != nil {
				return nil, fmt.Errorf("ToGonum: At(%d,%d): %w", i, j, err)
			}
			data = append(data, v)
		}
	}

	return mat.NewDense(r, c, data), nil
}

// FromGonum copies a gonum matrix into a new *matrix.Dense.
// Errors: matrix.ErrInvalidDimensions for an empty gonum matrix.
func FromGonum(m mat.Matrix) (*matrix.Dense, error) {
	r, c := m.Dims()
	out, err := matrix.NewDense(r, c)
	if err != nil {
		return nil, fmt.Errorf("FromGonum: %w", err)
	}
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			if err = out.Set(i, j, m.At(i, j)); err != nil {
				return nil, fmt.Errorf("FromGonum: %w", err)
			}
		}
	}

	return out, nil
}
