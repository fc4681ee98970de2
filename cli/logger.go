package cli

import (
	"io"
	"os"

	"github.com/sirupsen/logrus"
)

// LoggerOption adjusts a logger built by NewLogger.
type LoggerOption func(*logrus.Logger)

// WithOutput sends log lines to w instead of stderr.
func WithOutput(w io.Writer) LoggerOption {
	return func(l *logrus.Logger) {
		l.SetOutput(w)
	}
}

// WithLevel sets the minimum level.
func WithLevel(level logrus.Level) LoggerOption {
	return func(l *logrus.Logger) {
		l.SetLevel(level)
	}
}

// WithFormatter replaces the formatter. A nil formatter is ignored.
func WithFormatter(formatter logrus.Formatter) LoggerOption {
	return func(l *logrus.Logger) {
		if formatter != nil {
			l.SetFormatter(formatter)
		}
	}
}

// NewLogger creates a standalone logger writing to stderr. Options apply in
// order, so later ones win.
func NewLogger(opts ...LoggerOption) *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(os.Stderr)
	for _, opt := range opts {
		opt(logger)
	}
	return logger
}
