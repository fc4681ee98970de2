package logging

// Config defines the [logging] table of config.toml.
type Config struct {
	// Level is the minimum log level to output (e.g., "debug", "info", "warn", "error").
	// Can be overridden by the TZCLOCK_LOG_LEVEL environment variable.
	Level string `toml:"level"`

	// ReportCaller, if true, includes the file, line, and function name in the log output.
	// Can be enabled with the TZCLOCK_LOG_CALLER=true environment variable.
	ReportCaller bool `toml:"report_caller"`

	// File enables the file sink. Defaults to true.
	File *bool `toml:"file"`

	// Path overrides the log file location. Defaults to
	// <state>/logs/<component>-<date>.log.
	Path string `toml:"path"`

	// Format can be "text" (default), "simple" or "json".
	Format string `toml:"format"`

	// Stderr controls when log lines are also written to stderr.
	// Can be "auto" (default), "always", or "never".
	Stderr string `toml:"stderr"`
}

func (c Config) fileEnabled() bool {
	return c.File == nil || *c.File
}
