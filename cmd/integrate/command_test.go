// SPDX-License-Identifier: MIT

package main

import (
	"bytes"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// run executes the root command on stdin and returns stdout.
func run(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCommand()
	var out, errOut bytes.Buffer
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	if args == nil {
		args = []string{} // nil would make cobra fall back to os.Args
	}
	cmd.SetArgs(args)

	err := cmd.Execute()

	return out.String(), err
}

func TestRun_1D(t *testing.T) {
	data := "# x y\n0 1\n0.5 1.5\n2 3\n"

	out, err := run(t, data, "-m", "trapezoid")
	require.NoError(t, err)
	assert.Equal(t, "4\n", out)

	out, err = run(t, data, "-m", "trap") // prefix match
	require.NoError(t, err)
	assert.Equal(t, "4\n", out)

	out, err = run(t, "1\n2\n3\n") // single column, default riemann
	require.NoError(t, err)
	assert.Equal(t, "3\n", out)
}

func TestRun_Indefinite(t *testing.T) {
	out, err := run(t, "0 1\n1 2\n2 3\n", "-i", "-m", "riemann")
	require.NoError(t, err)
	assert.Equal(t, "1 1\n2 3\n", out)
}

func TestRun_GaussLegendre(t *testing.T) {
	var sb strings.Builder
	for i := 0; i <= 40; i++ {
		x := math.Pi * float64(i) / 40
		fmt.Fprintf(&sb, "%v %v\n", x, math.Sin(x))
	}

	out, err := run(t, sb.String(), "-m", "g")
	require.NoError(t, err)
	v, err := strconv.ParseFloat(strings.TrimSpace(out), 64)
	require.NoError(t, err)
	assert.InDelta(t, 2.0, v, 1e-4)
}

func TestRun_2D(t *testing.T) {
	// z = 2 + i + j on x = 0..2, y = 0..3 (unit spacing, so i = x, j = y).
	var sb strings.Builder
	for x := 0; x < 3; x++ {
		for y := 0; y < 4; y++ {
			fmt.Fprintf(&sb, "%d %d %d\n", x, y, 2+x+y)
		}
		sb.WriteString("\n")
	}

	out, err := run(t, sb.String(), "-d", "2", "--workers", "2")
	require.NoError(t, err)
	assert.Equal(t, "21\n", out)

	_, err = run(t, sb.String(), "-d", "2", "-m", "gauss")
	assert.ErrorIs(t, err, errUnsupported2D)

	_, err = run(t, sb.String(), "-d", "2", "-i")
	assert.ErrorIs(t, err, errIndefinite2D)
}

// TestRun_2DVerboseGrid checks --verbose dumps the extracted grid to stderr.
func TestRun_2DVerboseGrid(t *testing.T) {
	t.Cleanup(func() { logrus.SetLevel(logrus.InfoLevel) })

	cmd := newRootCommand()
	var out, errOut bytes.Buffer
	cmd.SetIn(strings.NewReader("0 0 1\n0 1 2\n1 0 3\n1 1 4\n"))
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs([]string{"-d", "2", "-m", "t", "-v"})

	require.NoError(t, cmd.Execute())
	assert.Equal(t, "2.5\n", out.String())
	assert.Contains(t, errOut.String(), "grid extracted")
	assert.Contains(t, errOut.String(), `[1, 2]\n[3, 4]\n`) // logrus quotes the multi-line message
}

func TestRun_Errors(t *testing.T) {
	_, err := run(t, "0 1\n1 2\n", "-m", "romberg")
	assert.ErrorIs(t, err, errUnknownMethod)

	_, err = run(t, "0 1\n1 2\n", "-d", "3")
	assert.ErrorIs(t, err, errDimensions)

	_, err = run(t, "0 1\n1 2\n", filepath.Join(t.TempDir(), "missing.txt"))
	assert.ErrorIs(t, err, os.ErrNotExist)

	_, err = run(t, "0 0 1\n0 1 1\n1 0 1\n1 1 1\n", "-d", "2", "--workers", "-1")
	assert.ErrorIs(t, err, errWorkers) // rejected, not a panic

	_, err = run(t, "", "a", "b")
	assert.Error(t, err) // at most one file
}

func TestRun_FileAndList(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data.txt")
	require.NoError(t, os.WriteFile(path, []byte("0 0\n1 1\n2 2\n"), 0o600))

	out, err := run(t, "", "-m", "simpson", path)
	require.NoError(t, err)
	assert.Equal(t, "2\n", out)

	out, err = run(t, "", "--list")
	require.NoError(t, err)
	for _, m := range methods {
		assert.Contains(t, out, m.name)
	}
}

func TestMatchMethod(t *testing.T) {
	cases := map[string]string{
		"":  "riemann",
		"r": "riemann",
		"t": "trapezoid",
		"s": "simpson",
		"g": "gauss-legendre",
	}
	for prefix, want := range cases {
		got, err := matchMethod(prefix)
		require.NoError(t, err)
		assert.Equal(t, want, got, "prefix=%q", prefix)
	}

	_, err := matchMethod("riemannx")
	assert.ErrorIs(t, err, errUnknownMethod)
}
