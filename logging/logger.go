package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/grovetools/tzclock/config"
	"github.com/grovetools/tzclock/pkg/paths"
	"github.com/mattn/go-isatty"
	"github.com/sirupsen/logrus"
)

var (
	loggers   = make(map[string]*logrus.Entry)
	logFiles  = make(map[string]*os.File)
	applied   *Config
	loggersMu sync.Mutex
)

// NewLogger creates and returns a pre-configured logger for a specific component.
// Loggers are cached per component.
func NewLogger(component string) *logrus.Entry {
	loggersMu.Lock()
	defer loggersMu.Unlock()

	if logger, exists := loggers[component]; exists {
		return logger
	}

	logCfg := defaultConfig()
	if applied != nil {
		logCfg = *applied
	}

	entry := newLogger(component, logCfg, time.Now())
	loggers[component] = entry
	return entry
}

// ApplyConfig reconfigures every logger, existing and future, from the
// [logging] table of cfg. Commands call it once the config named by
// --config is loaded.
func ApplyConfig(cfg *config.Config) error {
	var logCfg Config
	if cfg != nil {
		if err := cfg.UnmarshalExtension("logging", &logCfg); err != nil {
			return err
		}
	}

	loggersMu.Lock()
	defer loggersMu.Unlock()

	applied = &logCfg
	now := time.Now()
	for component, entry := range loggers {
		configure(entry.Logger, component, logCfg, now)
	}
	return nil
}

// ResetLoggers forgets any applied configuration and reconfigures every
// cached logger from the default config file, as resolved now.
func ResetLoggers() {
	loggersMu.Lock()
	defer loggersMu.Unlock()

	applied = nil
	logCfg := defaultConfig()
	now := time.Now()
	for component, entry := range loggers {
		configure(entry.Logger, component, logCfg, now)
	}
}

func defaultConfig() Config {
	var logCfg Config
	if cfg, err := config.LoadDefault(); err == nil {
		if err := cfg.UnmarshalExtension("logging", &logCfg); err != nil {
			logrus.Warnf("Failed to parse 'logging' config: %v", err)
		}
	}
	return logCfg
}

func newLogger(component string, logCfg Config, now time.Time) *logrus.Entry {
	logger := logrus.New()
	configure(logger, component, logCfg, now)
	return logger.WithField("component", component)
}

// configure sets level, caller reporting, formatter and outputs of logger.
// It must be called with loggersMu held.
func configure(logger *logrus.Logger, component string, logCfg Config, now time.Time) {
	levelStr := "info"
	if env := os.Getenv("TZCLOCK_LOG_LEVEL"); env != "" {
		levelStr = env
	} else if logCfg.Level != "" {
		levelStr = logCfg.Level
	}
	level, err := logrus.ParseLevel(levelStr)
	if err != nil {
		level = logrus.InfoLevel
	}
	logger.SetLevel(level)

	logger.SetReportCaller(os.Getenv("TZCLOCK_LOG_CALLER") == "true" || logCfg.ReportCaller)

	switch logCfg.Format {
	case "json":
		logger.SetFormatter(&logrus.JSONFormatter{})
	case "simple":
		logger.SetFormatter(&TextFormatter{DisableTimestamp: true, DisableComponent: true})
	default:
		logger.SetFormatter(&TextFormatter{})
	}

	prev, hadFile := logFiles[component]
	delete(logFiles, component)

	var writers []io.Writer

	if logCfg.fileEnabled() {
		logFilePath := logCfg.FilePath(component, now)
		if file, err := openLogFile(logFilePath); err == nil {
			logFiles[component] = file
			writers = append(writers, file)
		} else if logCfg.Path != "" {
			// Only warn if explicitly configured
			logger.Warnf("Failed to open log file %s: %v", logFilePath, err)
		}
	}

	if shouldLogToStderr(logCfg.Stderr, level) {
		writers = append(writers, GetGlobalOutput())
	}

	switch len(writers) {
	case 0:
		logger.SetOutput(io.Discard)
	case 1:
		logger.SetOutput(writers[0])
	default:
		logger.SetOutput(io.MultiWriter(writers...))
	}

	if hadFile {
		prev.Close()
	}
}

// LogFilePath is where a component logs on the given day by default.
func LogFilePath(component string, day time.Time) string {
	return filepath.Join(paths.LogDir(), fmt.Sprintf("%s-%s.log", component, day.Format("2006-01-02")))
}

// FilePath is where component logs on day under this configuration.
func (c Config) FilePath(component string, day time.Time) string {
	if c.Path != "" {
		return expandPath(c.Path)
	}
	return LogFilePath(component, day)
}

func openLogFile(path string) (*os.File, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, err
	}
	return os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
}

// shouldLogToStderr resolves the stderr mode. In "auto" mode log lines reach
// stderr only when debugging or when stderr is not an interactive terminal.
func shouldLogToStderr(mode string, level logrus.Level) bool {
	switch mode {
	case "always":
		return true
	case "never":
		return false
	default:
		isDebug := os.Getenv("TZCLOCK_DEBUG") == "1" || level >= logrus.DebugLevel
		isInteractive := isatty.IsTerminal(os.Stderr.Fd()) || isatty.IsCygwinTerminal(os.Stderr.Fd())
		return isDebug || !isInteractive
	}
}

// expandPath expands tilde in file paths
func expandPath(path string) string {
	if len(path) > 0 && path[0] == '~' {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, path[1:])
		}
	}
	return path
}
