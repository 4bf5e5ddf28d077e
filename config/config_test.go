package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"q.log/tableau-simplex/report"
	"q.log/tableau-simplex/tableau"
)

func newFlags(t *testing.T, args ...string) *pflag.FlagSet {
	t.Helper()
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	AddFlags(fs)
	require.NoError(t, fs.Parse(args))
	return fs
}

func TestDefaults(t *testing.T) {
	v, err := New(newFlags(t), "")
	require.NoError(t, err)

	c, err := Load(v)
	require.NoError(t, err)
	assert.Equal(t, tableau.Epsilon, c.Epsilon)
	assert.Equal(t, 0, c.MaxIterations)
	assert.Equal(t, InputText, c.InputFormat)
	assert.Equal(t, report.Text, c.Output)
	assert.Equal(t, logrus.WarnLevel, c.LogLevel)
}

func TestFlagsOverrideEnvironment(t *testing.T) {
	t.Setenv("SIMPLEX_MAX_ITERATIONS", "7")
	t.Setenv("SIMPLEX_OUTPUT", "json")

	v, err := New(newFlags(t, "--output", "yaml"), "")
	require.NoError(t, err)

	c, err := Load(v)
	require.NoError(t, err)
	assert.Equal(t, 7, c.MaxIterations)
	assert.Equal(t, report.YAML, c.Output)
}

func TestConfigFile(t *testing.T) {
	file := filepath.Join(t.TempDir(), "simplex.yaml")
	require.NoError(t, os.WriteFile(file, []byte("epsilon: 0.001\ninput-format: mps\nlog-level: debug\n"), 0o600))

	v, err := New(newFlags(t), file)
	require.NoError(t, err)

	c, err := Load(v)
	require.NoError(t, err)
	assert.Equal(t, 0.001, c.Epsilon)
	assert.Equal(t, InputMPS, c.InputFormat)
	assert.Equal(t, logrus.DebugLevel, c.LogLevel)
}

func TestLoadRejectsBadValues(t *testing.T) {
	cases := [][]string{
		{"--epsilon", "0"},
		{"--max-iterations", "-1"},
		{"--input-format", "lp"},
		{"--output", "xml"},
		{"--log-level", "loud"},
	}
	for _, args := range cases {
		v, err := New(newFlags(t, args...), "")
		require.NoError(t, err)

		_, err = Load(v)
		assert.Error(t, err, "%v", args)
	}
}

func TestMissingConfigFile(t *testing.T) {
	_, err := New(nil, filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}
