// SPDX-License-Identifier: MIT

// Package matrix: domain types shared by the kernels.
package matrix

// Matrix represents a two-dimensional mutable array of float64 values.
// Every implementation must keep Rows() >= 1 and Cols() >= 1.
//
// Complexity notes: all methods are expected O(1) except Clone (O(r*c)).
type Matrix interface {
	// Rows returns the number of rows in the matrix.
	Rows() int

	// Cols returns the number of columns in the matrix.
	Cols() int

	// At retrieves the element at position (i, j).
	// Returns ErrOutOfRange if i<0, i>=Rows(), j<0 or j>=Cols().
	At(i, j int) (float64, error)

	// Set assigns the value v at position (i, j).
	// Returns ErrOutOfRange if indices are invalid.
	Set(i, j int, v float64) error

	// Clone returns a deep copy of the matrix.
	// The returned Matrix is independent of the original.
	Clone() Matrix
}

// Sample is anything that exposes an ordered sequence of numeric values,
// e.g. the features of a prediction input or the outputs of a prediction.
// The slice order defines the column order of the converted matrix.
type Sample interface {
	Values() []float64
}

// Axis selects the direction of a reduction.
type Axis int

const (
	// AxisRow adds all rows together: the result has one entry per column.
	AxisRow Axis = iota

	// AxisColumn adds all columns together: the result has one entry per row.
	AxisColumn
)

// String returns "row" or "column".
func (a Axis) String() string {
	switch a {
	case AxisRow:
		return "row"
	case AxisColumn:
		return "column"
	default:
		return "unknown"
	}
}

// Shape returns (rows, cols) of m in O(1). The shape is always read from the
// matrix itself and never cached by callers.
func Shape(m Matrix) (rows, cols int) { return m.Rows(), m.Cols() }
