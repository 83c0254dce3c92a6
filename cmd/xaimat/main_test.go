// SPDX-License-Identifier: MIT

package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/katalvlaran/xailinalg/matrix"
	"github.com/katalvlaran/xailinalg/matrixio"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

// run executes a fresh command tree and returns stdout and stderr.
func run(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err := cmd.Execute()

	return out.String(), errOut.String(), err
}

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	return path
}

func TestInvertCommand(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	in := writeFile(t, dir, "a.yaml", "rows:\n  - [4, 7]\n  - [2, 6]\n")
	prom := filepath.Join(dir, "inv.prom")

	out, _, err := run(t, "invert", in, "--metrics-out", prom)
	require.NoError(t, err)

	inv, err := matrixio.Decode(strings.NewReader(out))
	require.NoError(t, err)
	want, _ := matrix.NewFromRows([][]float64{{0.6, -0.7}, {-0.2, 0.4}})
	ok, err := matrix.AllClose(inv, want, 0, 1e-9)
	require.NoError(t, err)
	require.True(t, ok)

	text, err := os.ReadFile(prom)
	require.NoError(t, err)
	require.Contains(t, string(text), `xailinalg_inversion_attempts_total{result="success"} 1`)
	require.Contains(t, string(text), "xailinalg_inversion_duration_seconds_count 1")
}

func TestInvertCommandSeededRecovery(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	cfg := writeFile(t, dir, "xaimat.yaml", "inversion:\n  max_attempts: 5\n  jitter_delta: 1.0e-3\n  seed: 42\nlogging:\n  level: debug\n")
	in := writeFile(t, dir, "a.yaml", "rows: [[1, 1], [1, 1]]\n")

	out, logs, err := run(t, "invert", in, "--config", cfg, "--format", "json")
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(out, `{"rows":`))
	require.Contains(t, logs, `"msg":"singular attempt"`)
	require.Contains(t, logs, `"run_id":`)
}

func TestInvertCommandFailure(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	// Jitter of 1e-8 never lifts the second pivot above 0.5.
	cfg := writeFile(t, dir, "strict.yaml", "inversion:\n  zero_threshold: 0.5\n")
	in := writeFile(t, dir, "ones.yaml", "rows: [[1, 1], [1, 1]]\n")
	prom := filepath.Join(dir, "fail.prom")

	_, _, err := run(t, "invert", in, "--no-retry", "--metrics-out", prom)
	require.ErrorIs(t, err, matrix.ErrSingular)
	require.NotErrorIs(t, err, matrix.ErrUninvertible)
	text, readErr := os.ReadFile(prom)
	require.NoError(t, readErr)
	require.Contains(t, string(text), `xailinalg_inversion_failures_total{reason="singular"} 1`)

	_, logs, err := run(t, "invert", in, "--config", cfg, "--attempts", "2", "--metrics-out", prom)
	require.ErrorIs(t, err, matrix.ErrUninvertible)
	require.Contains(t, logs, "matrix could not be inverted via jittering")
	text, readErr = os.ReadFile(prom)
	require.NoError(t, readErr)
	require.Contains(t, string(text), `xailinalg_inversion_attempts_total{result="singular"} 2`)
	require.Contains(t, string(text), "xailinalg_inversion_jitter_total 1")
	require.Contains(t, string(text), `xailinalg_inversion_failures_total{reason="uninvertible"} 1`)

	_, _, err = run(t, "invert", writeFile(t, dir, "r.yaml", "rows: [[1, 2]]\n"), "--metrics-out", prom)
	require.ErrorIs(t, err, matrix.ErrNonSquare)
	text, readErr = os.ReadFile(prom)
	require.NoError(t, readErr)
	require.Contains(t, string(text), `xailinalg_inversion_failures_total{reason="invalid"} 1`)
}

func TestInvertCommandAttemptsFlag(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	in := writeFile(t, dir, "a.yaml", "rows: [[4, 7], [2, 6]]\n")

	for _, bad := range []string{"0", "-2"} {
		_, _, err := run(t, "invert", in, "--attempts", bad)
		require.ErrorIs(t, err, matrix.ErrInvalidAttempts, "--attempts %s", bad)
	}

	_, _, err := run(t, "invert", in, "--attempts", "1")
	require.NoError(t, err)
}

func TestMultiplyCommand(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	a := writeFile(t, dir, "a.yaml", "rows: [[1, 2], [3, 4]]\n")
	b := writeFile(t, dir, "b.yaml", "rows: [[5, 6], [7, 8]]\n")

	out, _, err := run(t, "multiply", a, b)
	require.NoError(t, err)
	m, err := matrixio.Decode(strings.NewReader(out))
	require.NoError(t, err)
	require.Equal(t, [][]float64{{19, 22}, {43, 50}}, m.ToRows())

	out, _, err = run(t, "multiply", "-t", a, b)
	require.NoError(t, err)
	m, err = matrixio.Decode(strings.NewReader(out))
	require.NoError(t, err)
	require.Equal(t, [][]float64{{26, 30}, {38, 44}}, m.ToRows())

	c := writeFile(t, dir, "c.yaml", "rows: [[1, 2, 3]]\n")
	_, _, err = run(t, "multiply", a, c)
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}

func TestStatsCommand(t *testing.T) {
	t.Parallel()
	in := writeFile(t, t.TempDir(), "s.yaml", "rows: [[1, -2], [3, -4]]\n")

	out, _, err := run(t, "stats", in)
	require.NoError(t, err)

	var s summary
	require.NoError(t, yaml.Unmarshal([]byte(out), &s))
	require.Equal(t, 2, s.Rows)
	require.Equal(t, []float64{4, -6}, s.RowSum)
	require.Equal(t, []float64{10, 20}, s.RowSquareSum)
	require.Equal(t, []float64{-1, -1}, s.ColumnSum)
	require.Equal(t, 1.0, s.MinPositive)
	require.True(t, s.HasPositive)
	require.Equal(t, []float64{1, 1}, s.Variance)
}

func TestVersionCommand(t *testing.T) {
	t.Parallel()
	out, _, err := run(t, "version")
	require.NoError(t, err)
	require.Contains(t, out, "xaimat "+Version)
	require.Contains(t, out, "Go Version:")
}

func TestBadConfig(t *testing.T) {
	t.Parallel()
	cfg := writeFile(t, t.TempDir(), "bad.yaml", "inversion:\n  max_attempts: -3\n")
	_, _, err := run(t, "version", "--config", cfg)
	require.ErrorContains(t, err, "inversion.max_attempts")
}
