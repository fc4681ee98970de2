// Package testutil holds helpers shared by package tests.
package testutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/grovetools/tzclock/logging"
	"github.com/stretchr/testify/require"
)

// IsolatedHome points TZCLOCK_HOME at a fresh temporary directory so that
// config, store and log files never touch the real user directories. It
// also points every logger at the isolated home.
func IsolatedHome(t *testing.T) string {
	t.Helper()

	home := t.TempDir()
	t.Setenv("TZCLOCK_HOME", home)
	t.Setenv("XDG_CONFIG_HOME", "")
	t.Setenv("XDG_STATE_HOME", "")
	t.Setenv("TZCLOCK_LOG_LEVEL", "")

	logging.ResetLoggers()
	t.Cleanup(logging.ResetLoggers)

	return home
}

// WriteFile writes content to path, creating parent directories.
func WriteFile(t *testing.T, path, content string) string {
	t.Helper()

	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

// ReadFile returns the content of path.
func ReadFile(t *testing.T, path string) string {
	t.Helper()

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	return string(data)
}
