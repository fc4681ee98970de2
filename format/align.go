// Package format pads table cells into aligned columns.
package format

import (
	"fmt"
	"strings"

	"github.com/grovetools/tzclock/errors"
	"github.com/mattn/go-runewidth"
)

// Alignment selects how a cell is padded to its column width.
type Alignment int

const (
	Left Alignment = iota
	Right
	Center
)

func (a Alignment) String() string {
	switch a {
	case Left:
		return "left"
	case Right:
		return "right"
	case Center:
		return "center"
	default:
		return fmt.Sprintf("Alignment(%d)", int(a))
	}
}

// ParseAlignment maps "left", "right" or "center" to an Alignment.
func ParseAlignment(s string) (Alignment, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "left":
		return Left, nil
	case "right":
		return Right, nil
	case "center":
		return Center, nil
	}
	return Left, errors.FormatConfig(fmt.Sprintf("unknown alignment %q", s)).WithDetail("alignment", s)
}

// Grid is an aligned header and rows plus the width of every column.
type Grid struct {
	Header []string
	Rows   [][]string
	Widths []int
}

// Align pads every cell of rows and headers to its column width. A column's
// width is the widest display width among its header and data cells. Left
// leaves text unchanged. Right pads on the left. Center pads both sides
// with width/2 - len/2 spaces, which may leave the cell one short of the
// column width.
func Align(rows [][]string, headers []string, a Alignment) (Grid, error) {
	if a != Left && a != Right && a != Center {
		return Grid{}, errors.FormatConfig(fmt.Sprintf("unknown alignment %s", a))
	}

	cols := len(headers)
	for i, row := range rows {
		if len(row) != cols {
			return Grid{}, errors.FormatConfig(fmt.Sprintf("row %d has %d columns, header has %d", i, len(row), cols)).
				WithDetail("row", i)
		}
	}

	widths := make([]int, cols)
	for c := 0; c < cols; c++ {
		widths[c] = runewidth.StringWidth(headers[c])
		for _, row := range rows {
			if w := runewidth.StringWidth(row[c]); w > widths[c] {
				widths[c] = w
			}
		}
		if widths[c] < 1 {
			return Grid{}, errors.FormatConfig(fmt.Sprintf("column %d has width %d", c, widths[c])).
				WithDetail("column", c)
		}
	}

	grid := Grid{
		Header: padRow(headers, widths, a),
		Rows:   make([][]string, len(rows)),
		Widths: widths,
	}
	for i, row := range rows {
		grid.Rows[i] = padRow(row, widths, a)
	}
	return grid, nil
}

func padRow(row []string, widths []int, a Alignment) []string {
	out := make([]string, len(row))
	for c, cell := range row {
		out[c] = pad(cell, widths[c], a)
	}
	return out
}

func pad(text string, width int, a Alignment) string {
	length := runewidth.StringWidth(text)
	switch a {
	case Right:
		return strings.Repeat(" ", width-length) + text
	case Center:
		n := width/2 - length/2
		return strings.Repeat(" ", n) + text + strings.Repeat(" ", n)
	default:
		return text
	}
}

// Lines renders the grid as plain text, one line per row with the header
// first, cells joined by sep and trailing blanks trimmed.
func (g Grid) Lines(sep string) []string {
	lines := make([]string, 0, len(g.Rows)+1)
	lines = append(lines, strings.TrimRight(strings.Join(g.Header, sep), " "))
	for _, row := range g.Rows {
		lines = append(lines, strings.TrimRight(strings.Join(row, sep), " "))
	}
	return lines
}
