// Package help renders key binding sections as side-by-side boxes, for
// `tzclock keys` and anywhere else the full reference is wanted.
package help

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"
	ltable "github.com/charmbracelet/lipgloss/table"
	"github.com/grovetools/tzclock/tui/keymap"
	"github.com/grovetools/tzclock/tui/theme"
)

const gutterWidth = 4

// Model is the full key reference.
type Model struct {
	Sections []keymap.Section
	Width    int
	Theme    *theme.Theme
	Title    string
}

// New creates a reference for the given key map.
func New(km keymap.KeyMap) Model {
	return Model{
		Sections: km.Sections(),
		Theme:    theme.DefaultTheme,
		Title:    "Keys",
	}
}

// View renders the sections. Boxes sit side by side when Width allows,
// otherwise they stack.
func (m Model) View() string {
	if m.Theme == nil {
		m.Theme = theme.DefaultTheme
	}

	blocks := m.blocks()
	if len(blocks) == 0 {
		return ""
	}

	titleStyle := m.Theme.Title.MarginBottom(1)

	body := lipgloss.JoinVertical(lipgloss.Left, blocks...)
	if m.Width > 0 {
		for cols := len(blocks); cols > 1; cols-- {
			layout := columns(blocks, cols)
			if lipgloss.Width(layout) <= m.Width {
				body = layout
				break
			}
		}
	}

	if m.Title == "" {
		return body
	}
	return lipgloss.JoinVertical(lipgloss.Left, titleStyle.Render(m.Title), body)
}

func (m Model) blocks() []string {
	var blocks []string
	for _, section := range m.Sections {
		rows := m.rows(section.FilterEnabled())
		if len(rows) == 0 {
			continue
		}
		blocks = append(blocks, m.box(section.Name, rows))
	}
	return blocks
}

func (m Model) rows(bindings []key.Binding) [][]string {
	var rows [][]string
	for _, b := range bindings {
		h := b.Help()
		if h.Key == "" || h.Desc == "" {
			continue
		}
		rows = append(rows, []string{m.Theme.Accent.Render(h.Key), m.Theme.Muted.Render(h.Desc)})
	}
	return rows
}

func (m Model) box(name string, rows [][]string) string {
	t := ltable.New().
		Border(lipgloss.HiddenBorder()).
		StyleFunc(func(row, col int) lipgloss.Style {
			return lipgloss.NewStyle().Padding(0, 1)
		}).
		Rows(rows...)

	header := m.Theme.TableHeader.Render(name)
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(m.Theme.Colors.Border).
		Padding(0, 1).
		Render(lipgloss.JoinVertical(lipgloss.Left, header, t.String()))
}

// columns distributes blocks over n columns, each block going to the
// currently shortest column.
func columns(blocks []string, n int) string {
	cols := make([][]string, n)
	heights := make([]int, n)
	for _, block := range blocks {
		shortest := 0
		for i := 1; i < n; i++ {
			if heights[i] < heights[shortest] {
				shortest = i
			}
		}
		cols[shortest] = append(cols[shortest], block)
		heights[shortest] += lipgloss.Height(block)
	}

	gutter := strings.Repeat(" ", gutterWidth)
	var parts []string
	for i, col := range cols {
		if len(col) == 0 {
			continue
		}
		if i > 0 {
			parts = append(parts, gutter)
		}
		parts = append(parts, lipgloss.JoinVertical(lipgloss.Left, col...))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, parts...)
}
