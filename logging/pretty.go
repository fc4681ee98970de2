package logging

import (
	"fmt"
	"io"
	"os"

	"github.com/grovetools/tzclock/tui/theme"
)

// PrettyLogger writes styled, human-facing CLI output.
type PrettyLogger struct {
	writer io.Writer
	theme  *theme.Theme
}

// NewPrettyLogger creates a pretty logger writing to stderr.
func NewPrettyLogger() *PrettyLogger {
	return &PrettyLogger{
		writer: os.Stderr,
		theme:  theme.DefaultTheme,
	}
}

// WithWriter sets a custom writer for pretty output
func (p *PrettyLogger) WithWriter(w io.Writer) *PrettyLogger {
	p.writer = w
	return p
}

// Success prints a message with a checkmark.
func (p *PrettyLogger) Success(message string) {
	fmt.Fprintf(p.writer, "%s %s\n", p.theme.Success.Render("✓"), p.theme.Success.Render(message))
}

// InfoPretty prints an informational message.
func (p *PrettyLogger) InfoPretty(message string) {
	fmt.Fprintln(p.writer, p.theme.Info.Render(message))
}

// WarnPretty prints a warning.
func (p *PrettyLogger) WarnPretty(message string) {
	fmt.Fprintf(p.writer, "%s %s\n", p.theme.Warning.Render("⚠"), p.theme.Warning.Render(message))
}

// ErrorPretty prints an error, optionally followed by its cause.
func (p *PrettyLogger) ErrorPretty(message string, err error) {
	fmt.Fprintf(p.writer, "%s %s", p.theme.Error.Render("✗"), p.theme.Error.Render(message))
	if err != nil {
		fmt.Fprintf(p.writer, ": %s", p.theme.Error.Render(err.Error()))
	}
	fmt.Fprintln(p.writer)
}

// Field prints a key-value pair.
func (p *PrettyLogger) Field(key string, value interface{}) {
	fmt.Fprintf(p.writer, "%s: %s\n", p.theme.Key.Render(key), p.theme.Bold.Render(fmt.Sprint(value)))
}

// Path prints a labelled file path.
func (p *PrettyLogger) Path(label string, path string) {
	fmt.Fprintf(p.writer, "%s: %s\n", p.theme.Key.Render(label), p.theme.Path.Render(path))
}
