// SPDX-License-Identifier: MIT
package matrix_test

import (
	"errors"
	"fmt"
	"math/rand/v2"

	"github.com/katalvlaran/xailinalg/matrix"
)

// ExampleMul multiplies two 2×2 matrices.
func ExampleMul() {
	a, _ := matrix.NewFromRows([][]float64{{1, 2}, {3, 4}})
	b, _ := matrix.NewFromRows([][]float64{{5, 6}, {7, 8}})
	c, _ := matrix.Mul(a, b)
	fmt.Print(c)
	// Output:
	// [19, 22]
	// [43, 50]
}

// ExampleInvert inverts a 2×2 matrix with the default zero threshold.
func ExampleInvert() {
	a, _ := matrix.NewFromRows([][]float64{{4, 7}, {2, 6}})
	inv, _ := matrix.Invert(a, matrix.DefaultZeroThreshold)
	for _, row := range inv.ToRows() {
		fmt.Printf("%.1f %.1f\n", row[0], row[1])
	}
	// Output:
	// 0.6 -0.7
	// -0.2 0.4
}

// ExampleJitterInvert shows the recovery wrapper giving up on a matrix that
// stays singular under a constant perturbation.
func ExampleJitterInvert() {
	a, _ := matrix.NewFromRows([][]float64{{0, 0}, {0, 0}})
	_, err := matrix.JitterInvert(a, 3, matrix.DefaultZeroThreshold, rand.New(rand.NewPCG(1, 2)),
		matrix.WithJitterDelta(1e-20))
	var ue *matrix.UninvertibleError
	fmt.Println(errors.As(err, &ue), ue.Attempts)
	// Output:
	// true 3
}

// ExampleMinPos prints the smallest strictly positive entry.
func ExampleMinPos() {
	fmt.Println(matrix.MinPos([]float64{-3, 2, 5, -1}))
	fmt.Println(matrix.MinPos([]float64{-1, 0}) == matrix.NoPositive)
	// Output:
	// 2
	// true
}
