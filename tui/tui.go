// Package tui holds the terminal setup shared by the interactive commands.
package tui

import (
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// InitializeTUI forces a true-color profile when CLICOLOR_FORCE=1 or
// COLORTERM=truecolor, for terminals and recorders that hide their
// capabilities. Otherwise lipgloss detection is left alone.
func InitializeTUI() {
	if os.Getenv("CLICOLOR_FORCE") == "1" || os.Getenv("COLORTERM") == "truecolor" {
		lipgloss.SetColorProfile(termenv.TrueColor)
	}
}
