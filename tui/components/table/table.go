// Package table draws an aligned grid as a styled lipgloss table.
package table

import (
	"github.com/charmbracelet/lipgloss"
	ltable "github.com/charmbracelet/lipgloss/table"
	"github.com/grovetools/tzclock/format"
	"github.com/grovetools/tzclock/tui/theme"
)

// Options configures how a grid is drawn.
type Options struct {
	Theme    *theme.Theme
	Bordered bool
	// Highlight is the data row drawn with the theme's LocalRow style, or -1.
	Highlight int
	// Width stretches the table to a total width when positive.
	Width int
}

// DefaultOptions returns a bordered table in the active theme.
func DefaultOptions() Options {
	return Options{
		Theme:     theme.DefaultTheme,
		Bordered:  true,
		Highlight: -1,
	}
}

// NewStyledTable creates an empty lipgloss table with the theme's styling.
func NewStyledTable(opts Options) *ltable.Table {
	t := opts.Theme
	if t == nil {
		t = theme.DefaultTheme
	}

	table := ltable.New()
	if opts.Bordered {
		table = table.
			Border(lipgloss.RoundedBorder()).
			BorderStyle(t.TableBorder)
	} else {
		table = table.
			Border(lipgloss.HiddenBorder())
	}

	// With Headers set, StyleFunc sees the header as HeaderRow and data rows
	// from 0.
	table = table.StyleFunc(func(row, col int) lipgloss.Style {
		if row == ltable.HeaderRow {
			return t.TableHeader.Padding(0, 1)
		}
		style := t.TableRow.Padding(0, 1)
		if row == opts.Highlight {
			style = style.Inherit(t.LocalRow)
		}
		return style
	})

	if opts.Width > 0 {
		table = table.Width(opts.Width)
	}
	return table
}

// Render draws grid. The cells are used as they are, so alignment has
// already happened in format.Align.
func Render(grid format.Grid, opts Options) string {
	table := NewStyledTable(opts).Headers(grid.Header...)
	for _, row := range grid.Rows {
		table = table.Row(row...)
	}
	return table.String()
}
