// SPDX-License-Identifier: MIT
package matrix_test

import (
	"log/slog"
	"math"
	"testing"

	"github.com/katalvlaran/xailinalg/matrix"
	"github.com/stretchr/testify/require"
)

// TestDefaultOptions_Documented verifies that NewOptions() equals documented defaults.
func TestDefaultOptions_Documented(t *testing.T) {
	t.Parallel()
	o := matrix.NewOptions()
	require.Equal(t, matrix.DefaultJitterDelta, o.JitterDelta())
	require.Equal(t, 1e-8, matrix.DefaultJitterDelta)
	require.Equal(t, 3, matrix.DefaultMaxAttempts)
}

// TestOptions_LastWriterWins checks that repeated setters keep the last value.
func TestOptions_LastWriterWins(t *testing.T) {
	t.Parallel()
	o := matrix.NewOptions(matrix.WithJitterDelta(1e-3), matrix.WithJitterDelta(1e-5))
	require.Equal(t, 1e-5, o.JitterDelta())
}

// TestOptions_Panics guards the constructor contracts.
func TestOptions_Panics(t *testing.T) {
	t.Parallel()
	for _, d := range []float64{0, -1e-8, math.NaN(), math.Inf(1)} {
		d := d
		require.Panicsf(t, func() { matrix.WithJitterDelta(d) }, "delta=%v", d)
	}
	require.PanicsWithValue(t, "matrix: WithLogger: logger must not be nil",
		func() { matrix.WithLogger((*slog.Logger)(nil)) })
	require.PanicsWithValue(t, "matrix: WithObserver: observer must not be nil",
		func() { matrix.WithObserver(nil) })
}
