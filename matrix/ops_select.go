// SPDX-License-Identifier: MIT
// Package matrix: column selection.

package matrix

import "errors"

const (
	opCol  = "Col"
	opCols = "Cols"
)

// Col returns column i of m as a fresh vector of length m.Rows().
//
// Errors:
//   - ErrNilMatrix.
//   - *IndexError (matches ErrOutOfRange) when i < 0 or i >= m.Cols(); the
//     error carries the offending index and the column count.
//
// Complexity: Time O(r), Space O(r).
func Col(m Matrix, i int) ([]float64, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opCol, err)
	}
	if err := ValidateColIndex(opCol, m, i); err != nil {
		return nil, err
	}
	rows, cols := m.Rows(), m.Cols()
	out := make([]float64, rows)

	if d, ok := m.(*Dense); ok {
		for r := 0; r < rows; r++ {
			out[r] = d.data[r*cols+i] // strided read down column i
		}

		return out, nil
	}

	var err error
	for r := 0; r < rows; r++ {
		if out[r], err = m.At(r, i); err != nil {
			return nil, readErrorf(opCol, r, i, err)
		}
	}

	return out, nil
}

// Cols returns an r×k matrix whose column c is column idxs[c] of m.
// Indices may repeat and appear in any order; the output follows idxs.
//
// Implementation:
//   - Stage 1: validate m and every index up front, so nothing is copied for
//     a rejected request.
//   - Stage 2: gather row by row.
//
// Errors:
//   - ErrNilMatrix, ErrEmptyIndexSet, *IndexError (matches ErrOutOfRange).
//
// Complexity: Time O(r*k), Space O(r*k).
func Cols(m Matrix, idxs []int) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opCols, err)
	}
	if err := ValidateIndices(opCols, m, idxs); err != nil {
		var ie *IndexError
		if errors.As(err, &ie) {
			return nil, err
		}
		return nil, matrixErrorf(opCols, err)
	}
	rows, cols, k := m.Rows(), m.Cols(), len(idxs)
	out, err := NewDense(rows, k)
	if err != nil {
		return nil, matrixErrorf(opCols, err)
	}

	d, fast := m.(*Dense)
	var v float64
	for r := 0; r < rows; r++ {
		for c, idx := range idxs {
			if fast {
				out.data[r*k+c] = d.data[r*cols+idx]
				continue
			}
			if v, err = m.At(r, idx); err != nil {
				return nil, readErrorf(opCols, r, idx, err)
			}
			out.data[r*k+c] = v
		}
	}

	return out, nil
}
