package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/grovetools/tzclock/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadFromBytesDefaults(t *testing.T) {
	t.Setenv("TZCLOCK_HOME", t.TempDir())

	cfg, err := LoadFromBytes([]byte(""))
	require.NoError(t, err)

	assert.Nil(t, cfg.Terminal.TimezoneOffset)
	assert.Equal(t, DefaultTickRateMillis, cfg.Terminal.TickRateMillis)
	assert.Equal(t, DefaultTimeFormat, cfg.Frontend.TimeFormat)
	assert.Equal(t, DefaultAlignment, cfg.Frontend.Alignment)
	assert.Equal(t, DefaultPadding, cfg.Frontend.Padding)
	assert.Equal(t, DefaultTheme, cfg.Frontend.Theme)
	assert.Equal(t, "storage.json", filepath.Base(cfg.Storage.Path))
}

func TestLoadFromBytesOverrides(t *testing.T) {
	data := `
[terminal]
timezone_offset = -5
tick_rate_ms = 250

[frontend]
time_format = "%I:%M %p"
alignment = "center"
padding = 0

[storage]
path = "/tmp/zones.yaml"

[keys]
quit = ["ctrl+c"]
`
	cfg, err := LoadFromBytes([]byte(data))
	require.NoError(t, err)

	require.NotNil(t, cfg.Terminal.TimezoneOffset)
	assert.Equal(t, int64(-5), *cfg.Terminal.TimezoneOffset)
	assert.Equal(t, 250, cfg.Terminal.TickRateMillis)
	assert.Equal(t, "%I:%M %p", cfg.Frontend.TimeFormat)
	assert.Equal(t, "center", cfg.Frontend.Alignment)
	assert.Equal(t, 0, cfg.Frontend.Padding)
	assert.Equal(t, "/tmp/zones.yaml", cfg.Storage.Path)
	assert.Equal(t, []string{"ctrl+c"}, cfg.Keys["quit"])
}

func TestEnvExpansion(t *testing.T) {
	t.Setenv("TZCLOCK_TEST_DIR", "/srv/tz")

	data := `
[storage]
path = "${TZCLOCK_TEST_DIR}/zones.json"

[frontend]
theme = "${TZCLOCK_TEST_UNSET:-gruvbox}"
`
	cfg, err := LoadFromBytes([]byte(data))
	require.NoError(t, err)
	assert.Equal(t, "/srv/tz/zones.json", cfg.Storage.Path)
	assert.Equal(t, "gruvbox", cfg.Frontend.Theme)
}

func TestExtensions(t *testing.T) {
	data := `
[logging]
level = "debug"
file = false
`
	cfg, err := LoadFromBytes([]byte(data))
	require.NoError(t, err)

	var logging struct {
		Level string `toml:"level"`
		File  bool   `toml:"file"`
	}
	require.NoError(t, cfg.UnmarshalExtension("logging", &logging))
	assert.Equal(t, "debug", logging.Level)
	assert.False(t, logging.File)

	var missing struct {
		Value string `toml:"value"`
	}
	require.NoError(t, cfg.UnmarshalExtension("nonexistent", &missing))
	assert.Empty(t, missing.Value)
}

func TestSchemaRejectsInvalidFiles(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"unknown key", "[frontend]\nalignement = \"left\"\n"},
		{"unknown section", "[plugins]\nenabled = true\n"},
		{"bad alignment", "[frontend]\nalignment = \"justify\"\n"},
		{"bad theme", "[frontend]\ntheme = \"solarized\"\n"},
		{"wrong type", "[terminal]\ntick_rate_ms = \"fast\"\n"},
		{"negative padding", "[frontend]\npadding = -1\n"},
		{"zero tick rate", "[terminal]\ntick_rate_ms = 0\n"},
		{"key list of numbers", "[keys]\nquit = [1, 2]\n"},
		{"malformed toml", "[terminal\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadFromBytes([]byte(tt.data))
			require.Error(t, err)
			assert.True(t, errors.Is(err, errors.ErrCodeConfigInvalid), "got %v", err)
		})
	}
}

func TestValidateRejectsEmptyKeyList(t *testing.T) {
	cfg := Default()
	cfg.Keys = KeybindingsConfig{"quit": {}}

	err := cfg.Validate()
	require.Error(t, err)
	assert.Equal(t, errors.ErrCodeConfigInvalid, errors.GetCode(err))
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "config.toml"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrCodeConfigNotFound))
}

func TestEnsureDefault(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.toml")

	created, err := EnsureDefault(path)
	require.NoError(t, err)
	assert.True(t, created)

	// The written template must load cleanly.
	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, DefaultAlignment, cfg.Frontend.Alignment)
	assert.Equal(t, DefaultTickRateMillis, cfg.Terminal.TickRateMillis)

	require.NoError(t, os.WriteFile(path, []byte("[frontend]\nalignment = \"left\"\n"), 0o644))
	created, err = EnsureDefault(path)
	require.NoError(t, err)
	assert.False(t, created)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `alignment = "left"`)
}

func TestToTOML(t *testing.T) {
	cfg, err := LoadFromBytes([]byte("[frontend]\nalignment = \"left\"\n"))
	require.NoError(t, err)

	out, err := cfg.ToTOML()
	require.NoError(t, err)
	assert.True(t, strings.Contains(string(out), "alignment = 'left'") || strings.Contains(string(out), `alignment = "left"`))

	reloaded, err := LoadFromBytes(out)
	require.NoError(t, err)
	assert.Equal(t, "left", reloaded.Frontend.Alignment)
}

func TestGenerateSchema(t *testing.T) {
	data, err := GenerateSchema()
	require.NoError(t, err)
	assert.Contains(t, string(data), "tick_rate_ms")
	assert.Contains(t, string(data), "time_format")
}
