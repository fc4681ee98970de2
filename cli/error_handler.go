package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/grovetools/tzclock/errors"
)

// ErrorHandler provides user-friendly error messages
type ErrorHandler struct {
	Verbose bool
	Out     io.Writer
}

// NewErrorHandler creates a new error handler writing to stderr
func NewErrorHandler(verbose bool) *ErrorHandler {
	return &ErrorHandler{
		Verbose: verbose,
		Out:     os.Stderr,
	}
}

// Handle prints a diagnostic for err and returns it unchanged.
func (h *ErrorHandler) Handle(err error) error {
	if err == nil {
		return nil
	}
	w := h.Out
	if w == nil {
		w = os.Stderr
	}

	tzErr, isStructured := errors.As(err)
	detail := func(key string) interface{} {
		if !isStructured {
			return nil
		}
		return tzErr.Details[key]
	}

	switch errors.GetCode(err) {
	case errors.ErrCodeConfigCreated:
		fmt.Fprintf(w, "A default configuration was written to %v\n", detail("path"))
		fmt.Fprintf(w, "Review it, then run tzclock again.\n")
		return err

	case errors.ErrCodeConfigNotFound:
		fmt.Fprintf(w, "❌ Configuration not found at %v. Run 'tzclock config init' to create one.\n", detail("path"))
		return err

	case errors.ErrCodeConfigInvalid:
		fmt.Fprintf(w, "❌ %v\n", err)
		if field := detail("field"); field != nil {
			if path := detail("path"); path != nil {
				fmt.Fprintf(w, "Check the '%v' setting in %v\n", field, path)
			} else {
				fmt.Fprintf(w, "Check the '%v' setting\n", field)
			}
		}
		return err

	case errors.ErrCodeStoreCorrupt:
		fmt.Fprintf(w, "❌ The store at %v could not be read.\n", detail("path"))
		fmt.Fprintf(w, "Fix or move the file away; a new empty store is created on the next start.\n")
		return err

	case errors.ErrCodeStoreWrite:
		fmt.Fprintf(w, "❌ Changes could not be saved to %v\n", detail("path"))
		return err

	case errors.ErrCodeTerminalUnavailable:
		fmt.Fprintf(w, "❌ tzclock needs an interactive terminal. Use 'tzclock list' for plain output.\n")
		return err

	default:
		fmt.Fprintf(w, "❌ Error: %v\n", err)

		if h.Verbose && isStructured {
			fmt.Fprintf(w, "\nError details:\n%s\n", tzErr.ToJSON())
		}
		return err
	}
}
