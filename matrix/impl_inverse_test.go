// SPDX-License-Identifier: MIT
// Package matrix_test contains unit tests for the diagonal-pivot Gauss-Jordan inverse.
package matrix_test

import (
	"errors"
	"fmt"
	"math"
	"testing"

	"github.com/katalvlaran/xailinalg/matrix"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
)

func TestInvertKnown2x2(t *testing.T) {
	t.Parallel()
	A := MustFromRows(t, [][]float64{{4, 7}, {2, 6}})
	want := MustFromRows(t, [][]float64{{0.6, -0.7}, {-0.2, 0.4}})

	for _, src := range []matrix.Matrix{A, hide{A}} {
		inv, err := matrix.Invert(src, matrix.DefaultZeroThreshold)
		require.NoError(t, err)
		CompareClose(t, inv, want, 0, 1e-9)
	}

	// input untouched
	CompareExact(t, [][]float64{{4, 7}, {2, 6}}, A)
}

func TestInvertIdentityAndDiagonal(t *testing.T) {
	t.Parallel()
	I, err := matrix.NewIdentity(4)
	require.NoError(t, err)
	inv, err := matrix.InverseOf(I)
	require.NoError(t, err)
	CompareExact(t, I.ToRows(), inv)

	D := MustFromRows(t, [][]float64{{2, 0, 0}, {0, -4, 0}, {0, 0, 0.5}})
	inv, err = matrix.Invert(D, 0)
	require.NoError(t, err)
	CompareExact(t, [][]float64{{0.5, 0, 0}, {0, -0.25, 0}, {0, 0, 2}}, inv)
}

// TestInvertRoundTrip checks A·A⁻¹ ≈ I and agreement with gonum's inverse.
func TestInvertRoundTrip(t *testing.T) {
	t.Parallel()
	for n := 1; n <= 12; n++ {
		n := n
		t.Run(fmt.Sprintf("n=%d", n), func(t *testing.T) {
			t.Parallel()
			A := DiagDominant(t, n, uint64(n))

			inv, err := matrix.Invert(A, matrix.DefaultZeroThreshold)
			require.NoError(t, err)

			prod, err := matrix.Mul(A, inv)
			require.NoError(t, err)
			I, err := matrix.NewIdentity(n)
			require.NoError(t, err)
			CompareClose(t, prod, I, 0, 1e-9)

			var ref mat.Dense
			require.NoError(t, ref.Inverse(toGonum(A)))
			for i := 0; i < n; i++ {
				for j := 0; j < n; j++ {
					require.InDelta(t, ref.At(i, j), MustAt(t, inv, i, j), 1e-9)
				}
			}
		})
	}
}

// TestInvertSymmetricNormalMatrix runs the typical XᵀWX input of a weighted fit.
func TestInvertSymmetricNormalMatrix(t *testing.T) {
	t.Parallel()
	X := RandFilledDense(t, 40, 5, 7)
	w := make([]float64, 40)
	for i := range w {
		w[i] = 0.1 + float64(i%5)/5
	}
	xtwx, err := matrix.WeightedGram(X, w)
	require.NoError(t, err)

	inv, err := matrix.Invert(xtwx, matrix.DefaultZeroThreshold)
	require.NoError(t, err)
	prod, err := matrix.Mul(inv, xtwx)
	require.NoError(t, err)
	I, _ := matrix.NewIdentity(5)
	CompareClose(t, prod, I, 0, 1e-9)
}

func TestInvertSingular(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name      string
		rows      [][]float64
		threshold float64
		step      int
		pivot     int
	}{
		{"zero row", [][]float64{{1, 2}, {0, 0}}, matrix.DefaultZeroThreshold, 1, 1},
		{"all zero", [][]float64{{0, 0}, {0, 0}}, 0, 0, 0},
		// Equal diagonal: the lower index is pivoted first.
		{"rank one tie", [][]float64{{1, 1}, {1, 1}}, 0, 1, 1},
		{"below threshold", [][]float64{{1e-13, 0}, {0, 1}}, 1e-12, 1, 0},
		{"nan pivot", [][]float64{{math.NaN()}}, 0, 0, 0},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			inv, err := matrix.Invert(MustFromRows(t, tc.rows), tc.threshold)
			require.Nil(t, inv)
			require.ErrorIs(t, err, matrix.ErrSingular)

			var se *matrix.SingularError
			require.True(t, errors.As(err, &se))
			require.Equal(t, tc.step, se.Step)
			require.Equal(t, tc.pivot, se.Pivot)
		})
	}
}

func TestInvertThresholdZeroAcceptsTinyPivot(t *testing.T) {
	t.Parallel()
	inv, err := matrix.Invert(MustFromRows(t, [][]float64{{1e-13, 0}, {0, 1}}), 0)
	require.NoError(t, err)
	require.InDelta(t, 1e13, MustAt(t, inv, 0, 0), 1)
}

func TestInvertArgumentErrors(t *testing.T) {
	t.Parallel()
	sq := MustDense(t, 2, 2)

	_, err := matrix.Invert(nil, 0)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)

	_, err = matrix.Invert(MustDense(t, 2, 3), 0)
	require.ErrorIs(t, err, matrix.ErrNonSquare)
	require.Contains(t, err.Error(), "shape 2x3")

	for _, thr := range []float64{-1, math.NaN(), math.Inf(1)} {
		_, err = matrix.Invert(sq, thr)
		require.ErrorIs(t, err, matrix.ErrInvalidThreshold)
	}

	// non-square wins over a bad threshold
	_, err = matrix.Invert(MustDense(t, 1, 2), -1)
	require.ErrorIs(t, err, matrix.ErrNonSquare)
}
