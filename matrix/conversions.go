// SPDX-License-Identifier: MIT
// Package matrix: converters from flat sequences and sample collections
// into Dense matrices. Every converter copies its input, so the result can
// be mutated independently of the source.

package matrix

import "fmt"

const (
	opRowVector    = "RowVector"
	opColumnVector = "ColumnVector"
	opFromSample   = "FromSample"
	opFromSamples  = "FromSamples"
)

// RowVector wraps a length-N sequence as a 1×N matrix.
// Errors: ErrInvalidDimensions for an empty sequence.
// Complexity: O(N).
func RowVector(v []float64) (*Dense, error) {
	out, err := NewDense(1, len(v))
	if err != nil {
		return nil, matrixErrorf(opRowVector, err)
	}
	copy(out.data, v)

	return out, nil
}

// ColumnVector reshapes a length-N sequence into an N×1 matrix, one entry per row.
// Row-major storage makes this the same flat copy as RowVector.
// Errors: ErrInvalidDimensions for an empty sequence.
// Complexity: O(N).
func ColumnVector(v []float64) (*Dense, error) {
	out, err := NewDense(len(v), 1)
	if err != nil {
		return nil, matrixErrorf(opColumnVector, err)
	}
	copy(out.data, v)

	return out, nil
}

// FromSample converts one sample into a 1×K row vector, K = len(s.Values()).
// Errors: ErrNilMatrix for a nil sample, ErrInvalidDimensions when it has no values.
func FromSample(s Sample) (*Dense, error) {
	if s == nil {
		return nil, matrixErrorf(opFromSample, ErrNilMatrix)
	}
	out, err := RowVector(s.Values())
	if err != nil {
		return nil, matrixErrorf(opFromSample, err)
	}

	return out, nil
}

// FromSamples converts M samples into an M×K matrix: sample order becomes row
// order and value order becomes column order.
//
// Implementation:
//   - Stage 1: require at least one sample with at least one value.
//   - Stage 2: collect every sample's values once and check all lengths
//     against the first sample before allocating the result.
//   - Stage 3: copy row by row.
//
// Errors:
//   - ErrInvalidDimensions: no samples, or the first sample is empty.
//   - ErrDimensionMismatch: a sample's value count differs from the first one
//     (message names the sample index and both counts).
//
// Complexity:
//   - Time O(M*K), Space O(M*K).
func FromSamples[S Sample](ss []S) (*Dense, error) {
	if len(ss) == 0 {
		return nil, matrixErrorf(opFromSamples, ErrInvalidDimensions)
	}
	// Values() may build a fresh slice per call; read each sample exactly once.
	rows := make([][]float64, len(ss))
	for i, s := range ss {
		if any(s) == nil {
			return nil, matrixErrorf(opFromSamples, fmt.Errorf("sample %d: %w", i, ErrNilMatrix))
		}
		rows[i] = s.Values()
	}
	k := len(rows[0])
	if k == 0 {
		return nil, matrixErrorf(opFromSamples, ErrInvalidDimensions)
	}
	for i := 1; i < len(rows); i++ {
		if len(rows[i]) != k {
			return nil, matrixErrorf(opFromSamples,
				fmt.Errorf("sample %d has %d value(s), want %d: %w", i, len(rows[i]), k, ErrDimensionMismatch))
		}
	}
	out, err := NewDense(len(rows), k)
	if err != nil {
		return nil, matrixErrorf(opFromSamples, err)
	}
	for i, row := range rows {
		copy(out.data[i*k:(i+1)*k], row)
	}

	return out, nil
}
