package config

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/grovetools/tzclock/errors"
	"github.com/grovetools/tzclock/pkg/paths"
	"github.com/mitchellh/mapstructure"
	"github.com/pelletier/go-toml/v2"
)

var envVarRegex = regexp.MustCompile(`\$\{([^}]+)\}`)

// knownSections are decoded into Config; every other top-level table lands
// in Extensions.
var knownSections = map[string]bool{
	"terminal": true,
	"frontend": true,
	"storage":  true,
	"keys":     true,
}

// Load reads and parses a tzclock configuration file
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.ConfigNotFound(path)
		}
		return nil, errors.Wrap(err, errors.ErrCodeConfigInvalid, "failed to read config file").
			WithDetail("path", path)
	}

	cfg, err := LoadFromBytes(data)
	if err != nil {
		if e, ok := errors.As(err); ok {
			return nil, e.WithDetail("path", path)
		}
		return nil, err
	}
	return cfg, nil
}

// LoadDefault loads the configuration from the standard location.
func LoadDefault() (*Config, error) {
	return Load(paths.ConfigFile())
}

// LoadFromBytes parses configuration from byte array
func LoadFromBytes(data []byte) (*Config, error) {
	// Expand environment variables
	expanded := expandEnvVars(string(data))

	var raw map[string]interface{}
	if err := toml.Unmarshal([]byte(expanded), &raw); err != nil {
		return nil, errors.Wrap(err, errors.ErrCodeConfigInvalid, "failed to parse TOML configuration")
	}
	if raw == nil {
		raw = make(map[string]interface{})
	}

	// Validate against schema
	validator, err := NewSchemaValidator()
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrCodeConfigInvalid, "failed to create validator")
	}

	if err := validator.Validate(raw); err != nil {
		return nil, errors.Wrap(err, errors.ErrCodeConfigInvalid, "schema validation failed")
	}

	config := Default()
	known := make(map[string]interface{}, len(knownSections))
	for key, value := range raw {
		if knownSections[key] {
			known[key] = value
		} else {
			config.Extensions[key] = value
		}
	}

	if err := decode(known, config); err != nil {
		return nil, errors.Wrap(err, errors.ErrCodeConfigInvalid, "failed to decode configuration")
	}

	// Set defaults
	config.SetDefaults()

	// Validate configuration
	if err := config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

// UnmarshalExtension decodes a top-level table that Config does not model
// into target. A missing key leaves target untouched.
func (c *Config) UnmarshalExtension(key string, target interface{}) error {
	extensionConfig, ok := c.Extensions[key]
	if !ok {
		return nil
	}

	if err := decode(extensionConfig, target); err != nil {
		return fmt.Errorf("failed to decode extension config for '%s': %w", key, err)
	}

	return nil
}

func decode(input interface{}, target interface{}) error {
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:  target,
		TagName: "toml",
	})
	if err != nil {
		return fmt.Errorf("failed to create mapstructure decoder: %w", err)
	}
	return decoder.Decode(input)
}

// EnsureDefault writes the commented default configuration to path unless a
// file already exists there. It reports whether the file was created.
func EnsureDefault(path string) (bool, error) {
	if _, err := os.Stat(path); err == nil {
		return false, nil
	} else if !os.IsNotExist(err) {
		return false, errors.Wrap(err, errors.ErrCodeConfigInvalid, "failed to stat config file").
			WithDetail("path", path)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return false, errors.Wrap(err, errors.ErrCodeConfigInvalid, "failed to create config directory").
			WithDetail("path", path)
	}
	if err := os.WriteFile(path, []byte(DefaultTOML), 0o644); err != nil {
		return false, errors.Wrap(err, errors.ErrCodeConfigInvalid, "failed to write default config").
			WithDetail("path", path)
	}
	return true, nil
}

// ToTOML renders the effective configuration.
func (c *Config) ToTOML() ([]byte, error) {
	var buf bytes.Buffer
	enc := toml.NewEncoder(&buf)
	enc.SetIndentTables(true)
	if err := enc.Encode(c); err != nil {
		return nil, err
	}
	if len(c.Extensions) > 0 {
		if err := enc.Encode(c.Extensions); err != nil {
			return nil, err
		}
	}
	return buf.Bytes(), nil
}

// expandEnvVars replaces ${VAR} with environment variable values
func expandEnvVars(content string) string {
	return envVarRegex.ReplaceAllStringFunc(content, func(match string) string {
		varName := envVarRegex.FindStringSubmatch(match)[1]

		// Handle default values: ${VAR:-default}
		parts := strings.SplitN(varName, ":-", 2)
		varName = parts[0]
		defaultValue := ""
		if len(parts) > 1 {
			defaultValue = parts[1]
		}

		if value := os.Getenv(varName); value != "" {
			return value
		}

		return defaultValue
	})
}

// DefaultTOML is written on first run.
const DefaultTOML = `# tzclock configuration

[terminal]
# Local offset from UTC in hours. Leave unset to use the system time zone;
# only set it if the local time in the title bar is wrong.
# timezone_offset = 0

# Redraw interval in milliseconds.
tick_rate_ms = 100

[frontend]
# strftime format of the time columns.
time_format = "%H:%M:%S"

# Column alignment: "left", "right" or "center".
alignment = "right"

# Blank cells around the table.
padding = 1

# Color theme: "terminal", "kanagawa" or "gruvbox".
theme = "terminal"

[storage]
# Store file. The extension picks the format: .json, .yaml/.yml or .db/.sqlite.
# Environment variables such as ${HOME} are expanded.
# path = "${HOME}/.local/state/tzclock/storage.json"

[keys]
# Override keybindings by action name, for example:
# quit = ["q", "esc"]
# edit = ["i"]

[logging]
# level = "info"
# file = true
# stderr = "auto"
`
