// SPDX-License-Identifier: MIT
package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/katalvlaran/llmc/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	cmd := newRootCmd(&out, &errOut)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), errOut.String(), err
}

func TestRoot_Run(t *testing.T) {
	out, _, err := execute(t, "4", "6", "0.5", "0", "-n", "2", "--seed", "3")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "llmc: Size: 6, Steps: 4, T*: 0.500: Order: "), out)
	assert.Contains(t, out, "Processes: 2")
}

func TestRoot_SerialBackend(t *testing.T) {
	out, _, err := execute(t, "3", "5", "0.8", "2", "-n", "1", "--backend", "serial", "--init", "ramp")
	require.NoError(t, err)
	assert.Contains(t, out, "Processes: 1")
}

func TestRoot_WrongArgCount(t *testing.T) {
	out, errOut, err := execute(t, "4", "6")
	require.Error(t, err)
	assert.Contains(t, errOut, "accepts 4 arg(s)")
	assert.Contains(t, out+errOut, "Usage:")
}

func TestRoot_InvalidArguments(t *testing.T) {
	cases := []struct {
		args []string
		want error
	}{
		{[]string{"x", "6", "0.5", "0"}, config.ErrSteps},
		{[]string{"0", "6", "0.5", "0"}, config.ErrSteps},
		{[]string{"4", "1", "0.5", "0"}, config.ErrSize},
		{[]string{"4", "6", "0", "0"}, config.ErrTemperature},
		{[]string{"4", "6", "hot", "0"}, config.ErrTemperature},
		{[]string{"4", "6", "0.5", "7"}, config.ErrPlotFlag},
		{[]string{"4", "6", "0.5", "0", "-n", "0"}, config.ErrWorkers},
		{[]string{"4", "6", "0.5", "0", "--backend", "quantum"}, config.ErrBackend},
		{[]string{"4", "6", "0.5", "0", "--backend", "serial", "-n", "3"}, config.ErrWorkers},
	}
	for _, tc := range cases {
		_, _, err := execute(t, tc.args...)
		require.ErrorIs(t, err, tc.want, "%v", tc.args)
	}
}

func TestRoot_YAMLRecord(t *testing.T) {
	path := filepath.Join(t.TempDir(), "run.yaml")
	_, _, err := execute(t, "2", "4", "0.5", "1", "-n", "2", "--yaml", path)
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "rows:")
	assert.Contains(t, string(data), "plot_flag: 1")
}

func TestRoot_ConfigFileAndVerbose(t *testing.T) {
	path := filepath.Join(t.TempDir(), "llmc.yaml")
	require.NoError(t, os.WriteFile(path, []byte("workers: 3\nseed: 11\n"), 0o600))

	out, errOut, err := execute(t, "2", "6", "0.5", "0", "--config", path, "-v")
	require.NoError(t, err)
	assert.Contains(t, out, "Processes: 3")
	assert.Contains(t, errOut, "level=debug")
}
