// SPDX-License-Identifier: MIT
// Algebraic kernels: Add, Sub, Mul, Transpose, Scale and MatVec.
//
// Every kernel checks shapes through the validators before it reads a single
// entry, and always returns a freshly allocated *Dense. When the operands are
// *Dense the inner loops run on the flat buffers through gonum/floats; other
// Matrix implementations are read entry by entry through At.

package matrix

import (
	"fmt"

	"gonum.org/v1/gonum/floats"
)

// ZeroSum is the initial accumulator value for dot products and reductions.
const ZeroSum = 0.0

// Op tags used as error prefixes.
const (
	opAdd       = "Add"
	opSub       = "Sub"
	opMul       = "Mul"
	opTranspose = "Transpose"
	opScale     = "Scale"
	opMatVec    = "MatVec"
)

// matrixErrorf prefixes err with the op tag. err must be non-nil.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// readErrorf reports a failed At(i,j) on a foreign Matrix.
func readErrorf(tag string, i, j int, err error) error {
	return matrixErrorf(tag, fmt.Errorf("At(%d,%d): %w", i, j, err))
}

// addSub returns a + sign*b, sign being +1 or -1.
func addSub(a, b Matrix, sign float64, opTag string) (*Dense, error) {
	if err := ValidateBinarySameShape(a, b); err != nil {
		return nil, matrixErrorf(opTag, err)
	}

	rows, cols := a.Rows(), a.Cols()
	res, err := NewDense(rows, cols)
	if err != nil {
		return nil, matrixErrorf(opTag, err)
	}

	if da, okA := a.(*Dense); okA {
		if db, okB := b.(*Dense); okB {
			floats.AddScaledTo(res.data, da.data, sign, db.data)

			return res, nil
		}
	}

	var (
		i, j   int
		av, bv float64
	)
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			if av, err = a.At(i, j); err != nil {
				return nil, readErrorf(opTag, i, j, err)
			}
			if bv, err = b.At(i, j); err != nil {
				return nil, readErrorf(opTag, i, j, err)
			}
			res.data[i*cols+j] = av + sign*bv
		}
	}

	return res, nil
}

// Add returns A + B. Both operands must have the same shape; otherwise the
// error wraps ErrDimensionMismatch and names both shapes.
func Add(a, b Matrix) (*Dense, error) { return addSub(a, b, +1, opAdd) }

// Sub returns A - B under the same shape rule as Add.
func Sub(a, b Matrix) (*Dense, error) { return addSub(a, b, -1, opSub) }

// Mul returns the product A × B of an r×n and an n×c matrix as a new r×c
// matrix. A.Cols() != B.Rows() is reported as ErrDimensionMismatch with both
// shapes in the message.
//
// Each C[i,j] is accumulated in plain float64 arithmetic in ascending k, with
// no compensated summation. The *Dense path builds row i of C as
// Σ_k A[i,k]·B[k,:] so both operands are read sequentially.
//
// Complexity: O(r*n*c) time, O(r*c) space.
func Mul(a, b Matrix) (*Dense, error) {
	if err := ValidateMulCompatible(a, b); err != nil {
		return nil, matrixErrorf(opMul, err)
	}

	aRows, aCols, bCols := a.Rows(), a.Cols(), b.Cols()
	res, err := NewDense(aRows, bCols)
	if err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	var (
		i, j, k     int
		av, bv, acc float64
	)
	if da, okA := a.(*Dense); okA {
		if db, okB := b.(*Dense); okB {
			var rowR []float64
			for i = 0; i < aRows; i++ {
				rowR = res.data[i*bCols : (i+1)*bCols]
				for k = 0; k < aCols; k++ {
					av = da.data[i*aCols+k]
					floats.AddScaled(rowR, av, db.data[k*bCols:(k+1)*bCols])
				}
			}

			return res, nil
		}
	}

	for i = 0; i < aRows; i++ {
		for j = 0; j < bCols; j++ {
			acc = ZeroSum
			for k = 0; k < aCols; k++ {
				if av, err = a.At(i, k); err != nil {
					return nil, readErrorf(opMul, i, k, err)
				}
				if bv, err = b.At(k, j); err != nil {
					return nil, readErrorf(opMul, k, j, err)
				}
				acc += av * bv
			}
			res.data[i*bCols+j] = acc
		}
	}

	return res, nil
}

// Transpose returns mᵀ, a new c×r matrix with out[j,i] = m[i,j].
func Transpose(m Matrix) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}

	rows, cols := m.Rows(), m.Cols()
	res, err := NewDense(cols, rows)
	if err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}

	var i, j int
	if dm, ok := m.(*Dense); ok {
		for i = 0; i < rows; i++ {
			src := dm.data[i*cols : (i+1)*cols]
			for j, v := range src {
				res.data[j*rows+i] = v
			}
		}

		return res, nil
	}

	var v float64
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			if v, err = m.At(i, j); err != nil {
				return nil, readErrorf(opTranspose, i, j, err)
			}
			res.data[j*rows+i] = v
		}
	}

	return res, nil
}

// Scale returns alpha·m. Any shape is accepted; alpha = 0 gives a zero
// matrix of the same shape.
func Scale(m Matrix, alpha float64) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opScale, err)
	}

	rows, cols := m.Rows(), m.Cols()
	res, err := NewDense(rows, cols)
	if err != nil {
		return nil, matrixErrorf(opScale, err)
	}

	if dm, ok := m.(*Dense); ok {
		floats.ScaleTo(res.data, alpha, dm.data)

		return res, nil
	}

	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			v, err := m.At(i, j)
			if err != nil {
				return nil, readErrorf(opScale, i, j, err)
			}
			res.data[i*cols+j] = v * alpha
		}
	}

	return res, nil
}

// MatVec returns y = m·x. len(x) must equal m.Cols().
func MatVec(m Matrix, x []float64) ([]float64, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opMatVec, err)
	}
	if err := ValidateVecLen(x, m.Cols()); err != nil {
		return nil, matrixErrorf(opMatVec, fmt.Errorf("matrix %dx%d: %w", m.Rows(), m.Cols(), err))
	}
	rows, cols := m.Rows(), m.Cols()
	y := make([]float64, rows)

	if d, ok := m.(*Dense); ok {
		for i := 0; i < rows; i++ {
			y[i] = floats.Dot(d.data[i*cols:(i+1)*cols], x)
		}

		return y, nil
	}

	var (
		i, j int
		mv   float64
		err  error
	)
	for i = 0; i < rows; i++ {
		y[i] = ZeroSum
		for j = 0; j < cols; j++ {
			if mv, err = m.At(i, j); err != nil {
				return nil, readErrorf(opMatVec, i, j, err)
			}
			y[i] += mv * x[j]
		}
	}

	return y, nil
}
