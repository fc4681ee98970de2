package app

import (
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/lipgloss"
	"github.com/grovetools/tzclock/editor"
	"github.com/grovetools/tzclock/tui/components/table"
	"github.com/grovetools/tzclock/tui/keymap"
	"github.com/grovetools/tzclock/tui/theme"
	"github.com/rivo/uniseg"
)

const (
	inputTitle = "[ Input ]"
	// defaultWidth is used before the first WindowSizeMsg.
	defaultWidth = 60
)

// ViewOptions carries what View needs besides the frame.
type ViewOptions struct {
	Width int
	Theme *theme.Theme
	Keys  keymap.KeyMap
	Help  help.Model
}

// View draws a frame: title, table, the input box in ModeInput and a key
// hint footer, all inside a margin of frame.Padding cells.
func View(f Frame, opts ViewOptions) string {
	th := opts.Theme
	if th == nil {
		th = theme.DefaultTheme
	}

	width := opts.Width
	if width <= 0 {
		width = defaultWidth
	}
	inner := width - 2*f.Padding
	if inner < 4 {
		inner = 4
	}

	tableOpts := table.DefaultOptions()
	tableOpts.Theme = th
	tableOpts.Highlight = f.Highlight
	parts := []string{
		th.Title.Render(f.Title),
		table.Render(f.Grid, tableOpts),
	}

	hints := opts.Keys.NormalHelp()
	if f.Mode == ModeInput {
		parts = append(parts, inputBox(f, inner, th))
		hints = opts.Keys.InputHelp()
	}
	footer := opts.Help
	footer.Width = inner
	if hint := footer.View(hints); hint != "" {
		parts = append(parts, hint)
	}

	return lipgloss.NewStyle().
		Margin(f.Padding).
		Render(lipgloss.JoinVertical(lipgloss.Left, parts...))
}

func inputBox(f Frame, boxWidth int, th *theme.Theme) string {
	textWidth := boxWidth - 2
	scroll := ScrollOffset(f.DisplayColumn, boxWidth)
	line := VisibleInput(f.Input, f.Cursor, scroll, textWidth, th.Cursor)

	label := th.Muted.Render(inputTitle)
	if f.Validity != ValidityEmpty {
		label += " " + validityStyle(f.Validity, th).Render(f.Validity.String())
	}

	box := th.Input.
		BorderForeground(borderColor(f.Validity, th)).
		Width(textWidth).
		Render(line)
	return lipgloss.JoinVertical(lipgloss.Left, label, box)
}

// ScrollOffset is the number of cells hidden on the left of an input box
// boxWidth cells wide (borders included) so that the caret stays visible.
func ScrollOffset(displayColumn, boxWidth int) int {
	if s := displayColumn + 3 - boxWidth; s > 0 {
		return s
	}
	return 0
}

// VisibleInput returns the part of text starting scroll cells in and at
// most width cells wide, with the cluster at byte offset cursor drawn in
// the caret style. A cursor at the end draws the caret on a blank cell.
func VisibleInput(text string, cursor, scroll, width int, caret lipgloss.Style) string {
	var b strings.Builder
	col, used, offset := 0, 0, 0
	drawn := false

	g := uniseg.NewGraphemes(text)
	for g.Next() {
		cluster := g.Str()
		w := editor.ClusterWidth(cluster)
		start, pos := col, offset
		col += w
		offset += len(cluster)

		if start < scroll {
			// A wide cluster cut by the left edge leaves blanks.
			if col > scroll {
				b.WriteString(strings.Repeat(" ", col-scroll))
				used += col - scroll
			}
			continue
		}
		if used+w > width {
			break
		}
		if pos == cursor {
			b.WriteString(caret.Render(cluster))
			drawn = true
		} else {
			b.WriteString(cluster)
		}
		used += w
	}

	if !drawn && cursor >= len(text) && used < width {
		b.WriteString(caret.Render(" "))
	}
	return b.String()
}

func borderColor(v Validity, th *theme.Theme) lipgloss.TerminalColor {
	switch v {
	case ValidityValid:
		return th.Colors.Green
	case ValidityExists:
		return th.Colors.Yellow
	case ValidityInvalid:
		return th.Colors.Red
	default:
		return th.Colors.Border
	}
}

func validityStyle(v Validity, th *theme.Theme) lipgloss.Style {
	switch v {
	case ValidityValid:
		return th.Success
	case ValidityExists:
		return th.Warning
	default:
		return th.Error
	}
}
