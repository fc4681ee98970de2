package paths

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPortableHome(t *testing.T) {
	root := t.TempDir()
	t.Setenv("TZCLOCK_HOME", root)

	assert.Equal(t, filepath.Join(root, "config"), ConfigDir())
	assert.Equal(t, filepath.Join(root, "state"), StateDir())
	assert.Equal(t, filepath.Join(root, "config", "config.toml"), ConfigFile())
	assert.Equal(t, filepath.Join(root, "config", "storage.json"), StoreFile())
	assert.Equal(t, filepath.Join(root, "state", "logs"), LogDir())
}

func TestXDGHomes(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("APPDATA takes precedence on windows")
	}
	cfg := t.TempDir()
	state := t.TempDir()
	t.Setenv("TZCLOCK_HOME", "")
	t.Setenv("XDG_CONFIG_HOME", cfg)
	t.Setenv("XDG_STATE_HOME", state)

	assert.Equal(t, filepath.Join(cfg, "tzclock"), ConfigDir())
	assert.Equal(t, filepath.Join(state, "tzclock"), StateDir())
}

func TestEnsureDirs(t *testing.T) {
	root := t.TempDir()
	t.Setenv("TZCLOCK_HOME", root)

	require.NoError(t, EnsureDirs())

	for _, dir := range []string{ConfigDir(), StateDir(), LogDir()} {
		info, err := os.Stat(dir)
		require.NoError(t, err)
		assert.True(t, info.IsDir(), "%s should be a directory", dir)
	}
}
