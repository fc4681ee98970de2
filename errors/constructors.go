package errors

import (
	"fmt"
)

// ConfigNotFound creates a configuration not found error
func ConfigNotFound(path string) *Error {
	return New(ErrCodeConfigNotFound, fmt.Sprintf("configuration file not found: %s", path)).
		WithDetail("path", path)
}

// ConfigCreated reports that a default configuration was written and must be
// reviewed before the application can start.
func ConfigCreated(path string) *Error {
	return New(ErrCodeConfigCreated,
		fmt.Sprintf("a default configuration was created at %s; review it and run again", path)).
		WithDetail("path", path)
}

// ConfigInvalid creates an invalid configuration error
func ConfigInvalid(reason string) *Error {
	return New(ErrCodeConfigInvalid, fmt.Sprintf("invalid configuration: %s", reason))
}

// StoreCorrupt creates an error for a store file that exists but cannot be decoded
func StoreCorrupt(path string, err error) *Error {
	return Wrap(err, ErrCodeStoreCorrupt, fmt.Sprintf("store file is corrupt: %s", path)).
		WithDetail("path", path)
}

// StoreWrite creates an error for a failed store flush
func StoreWrite(path string, err error) *Error {
	return Wrap(err, ErrCodeStoreWrite, fmt.Sprintf("failed to write store file: %s", path)).
		WithDetail("path", path)
}

// TerminalUnavailable creates an error for a missing or unusable terminal
func TerminalUnavailable(reason string) *Error {
	return New(ErrCodeTerminalUnavailable, fmt.Sprintf("terminal unavailable: %s", reason))
}

// EventSourceClosed creates an error for a stopped event source
func EventSourceClosed(cause error) *Error {
	return Wrap(cause, ErrCodeEventSourceClosed, "event source stopped")
}

// InvalidInput creates a recoverable input validation error
func InvalidInput(input, reason string) *Error {
	return New(ErrCodeInvalidInput, reason).
		WithDetail("input", input)
}

// OffsetParse creates an error for an offset that matched the grammar but
// did not convert to an integer
func OffsetParse(offset string, err error) *Error {
	return Wrap(err, ErrCodeOffsetParse,
		fmt.Sprintf("unable to convert %s to a valid integer offset", offset)).
		WithDetail("offset", offset)
}

// FormatConfig creates an error for a column layout that cannot be produced
func FormatConfig(reason string) *Error {
	return New(ErrCodeFormatConfig, fmt.Sprintf("invalid column layout: %s", reason))
}

// Internal creates an internal error
func Internal(message string, cause error) *Error {
	return Wrap(cause, ErrCodeInternal, message)
}
