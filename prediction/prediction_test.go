// SPDX-License-Identifier: MIT
package prediction_test

import (
	"testing"

	"github.com/katalvlaran/xailinalg/matrix"
	"github.com/katalvlaran/xailinalg/prediction"
	"github.com/stretchr/testify/require"
)

func input(vals ...float64) prediction.Input {
	in := prediction.Input{}
	for i, v := range vals {
		in.Features = append(in.Features, prediction.Feature{Name: string(rune('a' + i)), Value: v})
	}

	return in
}

func TestInputValuesAndNames(t *testing.T) {
	t.Parallel()
	in := input(1.5, -2)
	require.Equal(t, []float64{1.5, -2}, in.Values())
	require.Equal(t, []string{"a", "b"}, in.Names())
}

func TestInputsMatrix(t *testing.T) {
	t.Parallel()
	X, err := prediction.InputsMatrix([]prediction.Input{input(1, 2, 3), input(4, 5, 6)})
	require.NoError(t, err)
	require.Equal(t, [][]float64{{1, 2, 3}, {4, 5, 6}}, X.ToRows())

	_, err = prediction.InputsMatrix([]prediction.Input{input(1, 2), input(3)})
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)

	_, err = prediction.InputsMatrix(nil)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)

	row, err := prediction.InputMatrix(input(7, 8))
	require.NoError(t, err)
	require.Equal(t, [][]float64{{7, 8}}, row.ToRows())
}

func TestOutputsMatrixUsesValuesNotScores(t *testing.T) {
	t.Parallel()
	preds := []prediction.Prediction{
		{Input: input(1), Output: prediction.Output{Outcomes: []prediction.Outcome{{Name: "y", Value: 0.25, Score: 0.9}}}},
		{Input: input(2), Output: prediction.Output{Outcomes: []prediction.Outcome{{Name: "y", Value: 0.75, Score: 0.1}}}},
	}
	ins, outs := prediction.Split(preds)
	require.Len(t, ins, 2)

	Y, err := prediction.OutputsMatrix(outs)
	require.NoError(t, err)
	require.Equal(t, [][]float64{{0.25}, {0.75}}, Y.ToRows())

	y, err := prediction.OutputMatrix(outs[1])
	require.NoError(t, err)
	require.Equal(t, [][]float64{{0.75}}, y.ToRows())

	_, err = prediction.OutputMatrix(prediction.Output{})
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)
}
