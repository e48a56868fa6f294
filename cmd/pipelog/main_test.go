package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/philipp01105/pipelog/core"
)

func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	cmd := rootCmd()
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func TestEmit_Console(t *testing.T) {
	out, _, err := execute(t, "emit", "--metadata", "user=alice", "-m", "attempt=3", "hello")
	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(out, "INFO]: hello user=alice attempt=3\n"), out)
}

func TestEmit_LevelGate(t *testing.T) {
	out, _, err := execute(t, "--level", "error", "emit", "--severity", "warning", "quiet")
	require.NoError(t, err)
	assert.Empty(t, out)

	out, _, err = execute(t, "-v", "error", "emit", "-s", "critical", "loud")
	require.NoError(t, err)
	assert.Contains(t, out, "CRITICAL]: loud")
}

func TestEmit_Errors(t *testing.T) {
	_, _, err := execute(t, "emit", "--severity", "LOUD", "x")
	assert.ErrorIs(t, err, core.ErrValidation)

	_, _, err = execute(t, "emit", "--metadata", "novalue", "x")
	assert.ErrorIs(t, err, core.ErrValidation)

	_, _, err = execute(t, "emit")
	assert.Error(t, err)

	_, _, err = execute(t, "--level", "LOUD", "emit", "x")
	assert.ErrorIs(t, err, core.ErrValidation)
}

func TestEmit_WithConfig(t *testing.T) {
	dir := t.TempDir()
	logPath := filepath.Join(dir, "cli.log")
	cfgPath := filepath.Join(dir, "logger.json")
	require.NoError(t, os.WriteFile(cfgPath, []byte(`{
		"name": "cli",
		"formatter": {"type": "json"},
		"appenders": [{"type": "file", "file_path": "`+filepath.ToSlash(logPath)+`"}]
	}`), 0644))

	out, _, err := execute(t, "-c", cfgPath, "emit", "-m", "k=v", "from config")
	require.NoError(t, err)
	assert.Empty(t, out)

	data, err := os.ReadFile(logPath)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"message":"from config"`)
	assert.Contains(t, string(data), `"logger":"cli"`)
	assert.Contains(t, string(data), `"k":"v"`)
}

func TestCheck(t *testing.T) {
	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "logger.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte(heredocYAML(filepath.Join(dir, "app.log"))), 0644))

	out, _, err := execute(t, "check", "--config", cfgPath)
	require.NoError(t, err)
	assert.Contains(t, out, `logger "checked": level WARNING, 2 appender(s)`)
	assert.Contains(t, out, "  - console\n")
	assert.Contains(t, out, "  - composite\n")
	assert.Contains(t, out, "    - file:")

	_, _, err = execute(t, "check")
	assert.ErrorIs(t, err, core.ErrConfiguration)
}

func heredocYAML(logPath string) string {
	return "name: checked\n" +
		"level: WARNING\n" +
		"appenders:\n" +
		"  - type: console\n" +
		"  - type: composite\n" +
		"    appenders:\n" +
		"      - type: file\n" +
		"        file_path: " + logPath + "\n"
}

func TestLevels(t *testing.T) {
	out, _, err := execute(t, "levels")
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 5)
	assert.Equal(t, "DEBUG    10", lines[0])
	assert.Equal(t, "CRITICAL 50", lines[4])
}

func TestVersion(t *testing.T) {
	out, _, err := execute(t, "version")
	require.NoError(t, err)
	assert.Equal(t, "pipelog dev\n", out)
}
