package app

import (
	"fmt"

	"github.com/grovetools/tzclock/format"
	"github.com/grovetools/tzclock/store"
	"github.com/grovetools/tzclock/timezone"
)

// Headers are the table column titles.
var Headers = []string{"User", "Offset", "Time"}

// Frame is everything the terminal needs to draw one screen.
type Frame struct {
	Mode  Mode
	Title string
	Grid  format.Grid
	// Highlight is the first data row sharing the local offset, or -1.
	Highlight int

	// Input state, meaningful in ModeInput.
	Input         string
	Cursor        int
	DisplayColumn int
	Validity      Validity

	Padding int
}

// Title renders the title bar text.
func Title(localOffset int64, localTime string) string {
	return fmt.Sprintf("[ Local offset: %d ] [ Local time: %s ]", localOffset, localTime)
}

// Rows turns entries into unpadded table rows: name, offset and the
// current time at that offset.
func Rows(entries []store.Entry, clock *timezone.Clock) [][]string {
	rows := make([][]string, 0, len(entries))
	for _, e := range entries {
		rows = append(rows, []string{e.Name, timezone.FormatOffset(e.Offset), clock.Format(e.Offset)})
	}
	return rows
}

// LocalRow returns the index of the first entry at the given offset, or -1.
func LocalRow(entries []store.Entry, offset int64) int {
	for i, e := range entries {
		if e.Offset == offset {
			return i
		}
	}
	return -1
}

// BuildFrame snapshots the controller state into a Frame.
func (c *Controller) BuildFrame() (Frame, error) {
	entries := c.store.Snapshot()
	localOffset := c.clock.LocalOffset()

	grid, err := format.Align(Rows(entries, c.clock), Headers, c.alignment)
	if err != nil {
		return Frame{}, err
	}

	f := Frame{
		Mode:      c.mode,
		Title:     Title(localOffset, c.clock.LocalTime()),
		Grid:      grid,
		Highlight: LocalRow(entries, localOffset),
		Padding:   c.padding,
	}
	if c.mode == ModeInput {
		f.Input = c.buffer.Text()
		f.Cursor = c.buffer.Cursor()
		f.DisplayColumn = c.buffer.DisplayColumn()
		f.Validity = c.validity()
	}
	return f, nil
}

func (c *Controller) validity() Validity {
	if c.buffer.IsEmpty() {
		return ValidityEmpty
	}
	entry, err := timezone.Parse(c.buffer.Text())
	if err != nil {
		return ValidityInvalid
	}
	if c.store.Contains(entry.Name) {
		return ValidityExists
	}
	return ValidityValid
}
