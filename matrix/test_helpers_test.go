// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers
//
// Purpose:
//   • Provide small, deterministic fixtures for the kernels and the inversion engine.
//   • Keep all data finite and well-formed unless a test is about NaN/Inf policy.

package matrix_test

import (
	"errors"
	"math/rand/v2"
	"testing"
	"time"

	"github.com/katalvlaran/xailinalg/matrix"
	"github.com/stretchr/testify/require"
)

// hide WRAPS any Matrix to hide its concrete type from type assertions.
// Use hide{X} in tests to force the non-*Dense (fallback) paths.
type hide struct{ matrix.Matrix }

// errBackend is the storage failure reported by faulty.
var errBackend = errors.New("backend unavailable")

// faulty is a foreign Matrix over a Dense whose reads (failAt) or writes
// (failSet) always fail with errBackend.
type faulty struct {
	*matrix.Dense
	failAt, failSet bool
}

func (f faulty) At(i, j int) (float64, error) {
	if f.failAt {
		return 0, errBackend
	}

	return f.Dense.At(i, j)
}

func (f faulty) Set(i, j int, v float64) error {
	if f.failSet {
		return errBackend
	}

	return f.Dense.Set(i, j, v)
}

// MustDense ALLOCATES an r×c *Dense or fails the test.
func MustDense(t testing.TB, r, c int) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewDense(r, c)
	require.NoErrorf(t, err, "NewDense(%d,%d)", r, c)

	return m
}

// MustFromRows BUILDS a *Dense from a 2D literal or fails the test.
func MustFromRows(t *testing.T, rows [][]float64) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewFromRows(rows)
	require.NoError(t, err)

	return m
}

// MustAt READS m[i,j] or fails the test.
func MustAt(t testing.TB, m matrix.Matrix, i, j int) float64 {
	t.Helper()
	v, err := m.At(i, j)
	require.NoErrorf(t, err, "At(%d,%d)", i, j)

	return v
}

// MustSet WRITES v to m[i,j] or fails the test.
func MustSet(t testing.TB, m matrix.Matrix, i, j int, v float64) {
	t.Helper()
	require.NoErrorf(t, m.Set(i, j, v), "Set(%d,%d,%v)", i, j, v)
}

// CompareExact ASSERTS strict equality between matrix and 2D literal.
// Use only for integer-like or carefully crafted small matrices.
func CompareExact(t *testing.T, want [][]float64, m matrix.Matrix) {
	t.Helper()
	require.Equal(t, len(want), m.Rows(), "rows")
	for i := range want {
		require.Equalf(t, len(want[i]), m.Cols(), "cols of row %d", i)
		for j := range want[i] {
			require.Equalf(t, want[i][j], MustAt(t, m, i, j), "m[%d,%d]", i, j)
		}
	}
}

// CompareClose ASSERTS AllClose(a,b) under (rtol, atol).
func CompareClose(t *testing.T, a, b matrix.Matrix, rtol, atol float64) {
	t.Helper()
	ok, err := matrix.AllClose(a, b, rtol, atol)
	require.NoError(t, err)
	require.Truef(t, ok, "AllClose=false (rtol=%g, atol=%g)\n got:\n%v\nwant:\n%v", rtol, atol, a, b)
}

// RandFilledDense RETURNS a new r×c Dense filled with deterministic U(-1,1).
func RandFilledDense(t testing.TB, r, c int, seed uint64) *matrix.Dense {
	t.Helper()
	m := MustDense(t, r, c)
	rng := rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			MustSet(t, m, i, j, rng.Float64()*2-1)
		}
	}

	return m
}

// DiagDominant RETURNS an n×n random matrix with n added to the diagonal,
// which keeps every diagonal pivot comfortably away from zero.
func DiagDominant(t testing.TB, n int, seed uint64) *matrix.Dense {
	t.Helper()
	m := RandFilledDense(t, n, n, seed)
	for i := 0; i < n; i++ {
		MustSet(t, m, i, i, MustAt(t, m, i, i)+float64(n))
	}

	return m
}

// seeded returns a reproducible random source for jitter tests.
func seeded(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, 0))
}

// sample is a minimal matrix.Sample.
type sample []float64

func (s sample) Values() []float64 { return s }

// constSource always yields v; handy for exact jitter arithmetic.
type constSource float64

func (c constSource) Float64() float64 { return float64(c) }

// recordingObserver counts the telemetry callbacks of the jitter wrapper.
type recordingObserver struct {
	attempts    []int
	attemptErrs []error
	results     int
	lastTotal   int
	lastErr     error
}

func (r *recordingObserver) ObserveAttempt(_ int, attempt int, err error) {
	r.attempts = append(r.attempts, attempt)
	r.attemptErrs = append(r.attemptErrs, err)
}

func (r *recordingObserver) ObserveResult(_ int, attempts int, _ time.Duration, err error) {
	r.results++
	r.lastTotal = attempts
	r.lastErr = err
}
