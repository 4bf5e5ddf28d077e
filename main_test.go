package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	cmd := newRootCommand(strings.NewReader(stdin), &out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestRunOptimal(t *testing.T) {
	out, err := run(t, "4 2\n-2 10\n-5 -1 6\n10 5 18\n19 0 2\n5 -3 0")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 4)
	assert.Equal(t, "0.0 3.6", lines[2])
	assert.Equal(t, "0.0 2.0 0.0 0.0", lines[3])
}

func TestRunOptimalValueFromFile(t *testing.T) {
	file := filepath.Join(t.TempDir(), "lp.txt")
	require.NoError(t, os.WriteFile(file, []byte("3 3\n2 4 8 \n1 0 0 1\n0 1 0 1\n0 0 1 1"), 0o600))

	out, err := run(t, "", file)
	require.NoError(t, err)
	assert.Equal(t, "optimal\n14.0\n1.0 1.0 1.0\n2.0 4.0 8.0\n", out)
}

func TestRunInfeasibleYAML(t *testing.T) {
	out, err := run(t, "2 1\n1\n1 1\n-1 -2", "-o", "yaml")
	require.NoError(t, err)
	assert.Contains(t, out, "status: infeasible")
}

func TestRunRejectsBadInput(t *testing.T) {
	_, err := run(t, "2 1\n1\n1")
	assert.Error(t, err)

	_, err = run(t, "", "--input-format", "mps")
	assert.Error(t, err)
}
