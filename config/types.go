package config

import (
	"time"

	"github.com/grovetools/tzclock/pkg/paths"
)

// Config is the root of config.toml.
type Config struct {
	Terminal TerminalConfig    `toml:"terminal,omitempty"`
	Frontend FrontendConfig    `toml:"frontend,omitempty"`
	Storage  StorageConfig     `toml:"storage,omitempty"`
	Keys     KeybindingsConfig `toml:"keys,omitempty"`

	// Extensions holds every other top-level table (e.g. [logging]) so that
	// packages can decode their own section with UnmarshalExtension.
	Extensions map[string]interface{} `toml:"-"`
}

// TerminalConfig controls the event loop and the local clock.
type TerminalConfig struct {
	// TimezoneOffset is the local offset from UTC in hours. Only set it if
	// the local time shown in the title is wrong; nil uses the system zone.
	TimezoneOffset *int64 `toml:"timezone_offset,omitempty" jsonschema:"description=Local offset from UTC in hours (unset uses the system zone)"`
	// TickRateMillis is the redraw interval.
	TickRateMillis int `toml:"tick_rate_ms,omitempty" jsonschema:"minimum=1,description=Redraw interval in milliseconds"`
}

// TickRate returns the redraw interval as a duration.
func (t TerminalConfig) TickRate() time.Duration {
	return time.Duration(t.TickRateMillis) * time.Millisecond
}

// FrontendConfig controls how the table is drawn.
type FrontendConfig struct {
	TimeFormat string `toml:"time_format,omitempty" jsonschema:"description=strftime format of the time columns"`
	Alignment  string `toml:"alignment,omitempty" jsonschema:"enum=left,enum=right,enum=center,description=Column alignment"`
	Padding    int    `toml:"padding,omitempty" jsonschema:"minimum=0,description=Blank cells around the table"`
	Theme      string `toml:"theme,omitempty" jsonschema:"enum=terminal,enum=kanagawa,enum=gruvbox,description=Color theme"`
}

// StorageConfig controls where entries are persisted.
type StorageConfig struct {
	// Path of the store file. The extension selects the backend.
	Path string `toml:"path,omitempty" jsonschema:"description=Store file; .json or .yaml or .yml or .db or .sqlite"`
}

// KeybindingsConfig maps an action name (snake_case) to the keys bound to it.
type KeybindingsConfig map[string][]string

const (
	DefaultTickRateMillis = 100
	DefaultTimeFormat     = "%H:%M:%S"
	DefaultAlignment      = "right"
	DefaultPadding        = 1
	DefaultTheme          = "terminal"
)

// SetDefaults sets default values for configuration
func (c *Config) SetDefaults() {
	if c.Terminal.TickRateMillis == 0 {
		c.Terminal.TickRateMillis = DefaultTickRateMillis
	}
	if c.Frontend.TimeFormat == "" {
		c.Frontend.TimeFormat = DefaultTimeFormat
	}
	if c.Frontend.Alignment == "" {
		c.Frontend.Alignment = DefaultAlignment
	}
	if c.Frontend.Theme == "" {
		c.Frontend.Theme = DefaultTheme
	}
	if c.Storage.Path == "" {
		c.Storage.Path = paths.StoreFile()
	}
	if c.Extensions == nil {
		c.Extensions = make(map[string]interface{})
	}
}

// Default returns a configuration with every default applied. Files are
// decoded on top of it, so keys missing from a file keep these values.
func Default() *Config {
	cfg := &Config{}
	cfg.Frontend.Padding = DefaultPadding
	cfg.SetDefaults()
	return cfg
}
