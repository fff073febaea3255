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

func execute(t *testing.T, input string, args ...string) (string, string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	cmd := newRootCmd(strings.NewReader(input), &out, &errOut)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), errOut.String(), err
}

func TestVersionCommand(t *testing.T) {
	out, _, err := execute(t, "", "version")

	require.NoError(t, err)
	assert.Equal(t, "coffeevan v"+version+"\n", out)
}

func TestRootCommand_FlagsOverrideEnv(t *testing.T) {
	t.Setenv("VAN_MAX_VOLUME", "-1")
	t.Setenv("LOG_FORMAT", "json")

	out, errOut, err := execute(t, "7\n11\n",
		"--max-volume", "320.5",
		"--data-file", filepath.Join(t.TempDir(), "cargo.txt"))

	require.NoError(t, err)
	assert.Contains(t, out, "Remaining volume is 320.5")
	assert.Contains(t, errOut, `"message":"starting coffee van"`)
}

func TestRootCommand_InvalidConfig(t *testing.T) {
	tests := []struct {
		name     string
		args     []string
		errorMsg string
	}{
		{name: "Negative budget", args: []string{"--max-budget", "-5"}, errorMsg: "invalid van max budget"},
		{name: "Bad log level", args: []string{"--log-level", "chatty"}, errorMsg: "invalid log level"},
		{name: "Empty data file", args: []string{"--data-file", ""}, errorMsg: "data file is required"},
		{name: "Unexpected argument", args: []string{"extra"}, errorMsg: "unknown command"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := execute(t, "11\n", tt.args...)

			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errorMsg)
		})
	}
}

func TestRootCommand_LoadsDataFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "coffee_data.txt")
	data := "BEAN;t1;Arabica;250.0;15.99;8.0;9.0;7.0;Paper;250.0;Brazil;MEDIUM\n" +
		"not a product\n" +
		"GROUND;t2;Robusta;100.0;5.99;7.0;6.0;8.0;Plastic;100.0;COARSE\n"
	require.NoError(t, os.WriteFile(path, []byte(data), 0o644))

	out, errOut, err := execute(t, "9\n7\n11\n", "--data-file", path, "--log-format", "json")

	require.NoError(t, err)
	assert.Contains(t, out, "Successfully received 2 items!")
	assert.Contains(t, out, "Remaining volume is 150.0")
	assert.Contains(t, errOut, "failed to parse product line")
	assert.Contains(t, errOut, "not a product")
}
