package errors

import (
	"encoding/json"
	"fmt"
)

// ErrorCode represents a specific error condition
type ErrorCode string

const (
	// Configuration errors
	ErrCodeConfigNotFound ErrorCode = "CONFIG_NOT_FOUND"
	ErrCodeConfigCreated  ErrorCode = "CONFIG_CREATED"
	ErrCodeConfigInvalid  ErrorCode = "CONFIG_INVALID"

	// Persistence errors
	ErrCodeStoreCorrupt ErrorCode = "STORE_CORRUPT"
	ErrCodeStoreWrite   ErrorCode = "STORE_WRITE"

	// Terminal and event loop errors
	ErrCodeTerminalUnavailable ErrorCode = "TERMINAL_UNAVAILABLE"
	ErrCodeEventSourceClosed   ErrorCode = "EVENT_SOURCE_CLOSED"

	// Input errors. These never leave the interactive loop.
	ErrCodeInvalidInput ErrorCode = "INVALID_INPUT"
	ErrCodeOffsetParse  ErrorCode = "OFFSET_PARSE"

	// Rendering errors
	ErrCodeFormatConfig ErrorCode = "FORMAT_CONFIG"

	// General errors
	ErrCodeInternal ErrorCode = "INTERNAL_ERROR"
)

// Error represents a structured error with context
type Error struct {
	Code    ErrorCode              `json:"code"`
	Message string                 `json:"message"`
	Details map[string]interface{} `json:"details,omitempty"`
	Cause   error                  `json:"-"`
}

// Error implements the error interface
func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (caused by: %v)", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap implements the errors.Unwrap interface
func (e *Error) Unwrap() error {
	return e.Cause
}

// WithDetail adds a detail to the error
func (e *Error) WithDetail(key string, value interface{}) *Error {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// ToJSON converts the error to JSON
func (e *Error) ToJSON() string {
	data, _ := json.MarshalIndent(e, "", "  ")
	return string(data)
}

// New creates a new Error
func New(code ErrorCode, message string) *Error {
	return &Error{
		Code:    code,
		Message: message,
	}
}

// Wrap wraps an existing error with an Error
func Wrap(err error, code ErrorCode, message string) *Error {
	return &Error{
		Code:    code,
		Message: message,
		Cause:   err,
	}
}

// Is checks if an error is a specific Error code
func Is(err error, code ErrorCode) bool {
	if err == nil {
		return false
	}

	tzErr, ok := err.(*Error)
	if !ok {
		// Try to unwrap
		if unwrapper, ok := err.(interface{ Unwrap() error }); ok {
			return Is(unwrapper.Unwrap(), code)
		}
		return false
	}

	if tzErr.Code == code {
		return true
	}
	// Structured errors can wrap other structured errors (e.g. a store
	// failure surfacing through the event loop), so keep looking.
	return tzErr.Cause != nil && Is(tzErr.Cause, code)
}

// GetCode extracts the outermost error code from an error
func GetCode(err error) ErrorCode {
	if err == nil {
		return ""
	}

	tzErr, ok := err.(*Error)
	if !ok {
		// Try to unwrap
		if unwrapper, ok := err.(interface{ Unwrap() error }); ok {
			return GetCode(unwrapper.Unwrap())
		}
		return ""
	}

	return tzErr.Code
}

// As returns the outermost *Error in err's chain.
func As(err error) (*Error, bool) {
	for err != nil {
		if tzErr, ok := err.(*Error); ok {
			return tzErr, true
		}
		unwrapper, ok := err.(interface{ Unwrap() error })
		if !ok {
			return nil, false
		}
		err = unwrapper.Unwrap()
	}
	return nil, false
}

// IsFatal reports whether an error must abort the process. Input errors are
// the only recoverable kinds.
func IsFatal(err error) bool {
	switch GetCode(err) {
	case ErrCodeInvalidInput, ErrCodeOffsetParse:
		return false
	}
	return err != nil
}
