package main

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

// writeInstance writes a zero demand matrix for n nodes with the given
// overrides (key "k,i") and returns its path.
func writeInstance(t *testing.T, dir string, n int, demand map[[2]int]int) string {
	t.Helper()
	var sb strings.Builder
	sb.WriteString("|    |")
	for j := 1; j <= n; j++ {
		fmt.Fprintf(&sb, " %d,", j)
	}
	sb.WriteString("\n")
	for k := 1; k <= n; k++ {
		vals := make([]string, n)
		for i := 1; i <= n; i++ {
			vals[i-1] = fmt.Sprint(demand[[2]int{k, i}])
		}
		fmt.Fprintf(&sb, "|%-4d| %s\n", k, strings.Join(vals, ", "))
	}
	path := filepath.Join(dir, "demand.txt")
	require.NoError(t, os.WriteFile(path, []byte(sb.String()), 0o600))
	return path
}

// writeSolution writes arcs i→i+1 and i→i+2 (mod n) plus extra lines.
func writeSolution(t *testing.T, dir string, n int, extra ...string) string {
	t.Helper()
	lines := []string{"# Solution for model netflow"}
	for i := 1; i <= n; i++ {
		lines = append(lines,
			fmt.Sprintf("x#%d#%d 1", i, i%n+1),
			fmt.Sprintf("x#%d#%d 1", i, (i+1)%n+1),
		)
	}
	lines = append(lines, extra...)
	path := filepath.Join(dir, "solution.sol")
	require.NoError(t, os.WriteFile(path, []byte(strings.Join(lines, "\n")+"\n"), 0o600))
	return path
}

func run(t *testing.T, args ...string) (code int, stdout, stderr string) {
	t.Helper()
	var out, errOut bytes.Buffer
	code = execute(args, &out, &errOut)
	return code, out.String(), errOut.String()
}

func TestValidSolution(t *testing.T) {
	dir := t.TempDir()
	demand := writeInstance(t, dir, 5, nil)
	sol := writeSolution(t, dir, 5, "z 0")

	code, out, errOut := run(t, "5", demand, sol)
	require.Equal(t, exitValid, code, errOut)
	require.Equal(t,
		"Computed maximum flow: 0\n"+
			"Solution objective value: 0\n"+
			"VALID: Solution successfully verified\n", out)
}

func TestObjectiveWarningStaysValid(t *testing.T) {
	dir := t.TempDir()
	demand := writeInstance(t, dir, 6, map[[2]int]int{{1, 2}: 3})
	sol := writeSolution(t, dir, 6, "f#1#1#2 3000", "z 2000")

	code, out, _ := run(t, "6", demand, sol)
	require.Equal(t, exitValid, code)
	require.Contains(t, out, "WARNING: Computed objective (3000) doesn't match solution objective (2000)\n")
	require.True(t, strings.HasSuffix(out, "VALID: Solution successfully verified\n"))
}

func TestInvalidSolution(t *testing.T) {
	dir := t.TempDir()
	demand := writeInstance(t, dir, 5, nil)
	sol := writeSolution(t, dir, 5, "x#3#4 0")

	code, out, _ := run(t, "5", demand, sol)
	require.Equal(t, exitInvalid, code)
	require.Equal(t,
		"INVALID: Node 3 has out-degree 1 (expected 2)\n"+
			"INVALID: Solution verification failed\n", out)

	// Same files, same bytes.
	code2, out2, _ := run(t, "5", demand, sol)
	require.Equal(t, code, code2)
	require.Equal(t, out, out2)
}

func TestYAMLFormat(t *testing.T) {
	dir := t.TempDir()
	demand := writeInstance(t, dir, 5, nil)
	sol := writeSolution(t, dir, 5, "f#2#3#1 40")

	code, out, _ := run(t, "--format", "yaml", "5", demand, sol)
	require.Equal(t, exitInvalid, code)

	var doc map[string]any
	require.NoError(t, yaml.Unmarshal([]byte(out), &doc))
	assert.Equal(t, "INVALID", doc["verdict"])
	assert.Equal(t, "flow", doc["violation"].(map[string]any)["kind"])
}

func TestUsageErrors(t *testing.T) {
	dir := t.TempDir()
	missing := filepath.Join(dir, "missing.txt")

	for _, args := range [][]string{
		{"5", missing},
		{"4", missing, missing},
		{"25", missing, missing},
		{"five", missing, missing},
	} {
		code, out, errOut := run(t, args...)
		require.Equal(t, exitError, code, args)
		require.Empty(t, out)
		require.Contains(t, errOut, "ERROR: ")
		require.Contains(t, errOut, "Usage:")
		require.NotContains(t, errOut, "cannot open file", "files must not be read on usage errors")
	}
}

func TestBoundarySizesAccepted(t *testing.T) {
	for _, n := range []int{5, 24} {
		dir := t.TempDir()
		code, _, errOut := run(t, fmt.Sprint(n), writeInstance(t, dir, n, nil), writeSolution(t, dir, n))
		require.Equal(t, exitValid, code, errOut)
	}
}

func TestInputErrors(t *testing.T) {
	dir := t.TempDir()
	demand := writeInstance(t, dir, 5, nil)
	sol := writeSolution(t, dir, 5)

	code, out, errOut := run(t, "5", filepath.Join(dir, "nope.txt"), sol)
	require.Equal(t, exitError, code)
	require.Empty(t, out)
	require.Contains(t, errOut, "ERROR: cannot open file")

	// Demand written for 5 nodes cannot serve 6.
	code, _, errOut = run(t, "6", demand, sol)
	require.Equal(t, exitError, code)
	require.Contains(t, errOut, "ERROR: instance: demand row 1: has 5 values (after taking first 6), expected 6")

	bad := filepath.Join(dir, "bad.sol")
	require.NoError(t, os.WriteFile(bad, []byte("x#1#9 1\n"), 0o600))
	code, _, errOut = run(t, "5", demand, bad)
	require.Equal(t, exitError, code)
	require.Contains(t, errOut, "x#1#9")
}

// TestHugeDemandRejected: 2^61 × 1000 wraps to 0 in int64, so the value is
// refused while reading instead of letting zero flow satisfy it.
func TestHugeDemandRejected(t *testing.T) {
	dir := t.TempDir()
	demand := writeInstance(t, dir, 5, map[[2]int]int{{1, 2}: 1 << 61})
	sol := writeSolution(t, dir, 5, "z 0")

	code, out, errOut := run(t, "5", demand, sol)
	require.Equal(t, exitError, code)
	require.Empty(t, out)
	require.Contains(t, errOut, "ERROR: instance: demand row 1: column 2: value 2305843009213693952 exceeds 2147483647")
}

func TestConfigFile(t *testing.T) {
	dir := t.TempDir()
	cfg := filepath.Join(dir, "netcheck.toml")
	require.NoError(t, os.WriteFile(cfg, []byte("scale = 10\nformat = \"yaml\"\n"), 0o600))

	demand := writeInstance(t, dir, 5, map[[2]int]int{{1, 2}: 3})
	sol := writeSolution(t, dir, 5, "f#1#1#2 30", "z 30")

	code, out, errOut := run(t, "--config", cfg, "5", demand, sol)
	require.Equal(t, exitValid, code, errOut)
	require.Contains(t, out, "verdict: VALID")

	code, out, _ = run(t, "--config", cfg, "--format", "text", "5", demand, sol)
	require.Equal(t, exitValid, code)
	require.Contains(t, out, "Computed maximum flow: 30\n")
}
