package table

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/grovetools/tzclock/format"
	"github.com/grovetools/tzclock/tui/theme"
	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	lipgloss.SetColorProfile(termenv.Ascii)
}

func testGrid(t *testing.T) format.Grid {
	grid, err := format.Align(
		[][]string{{"alice", "2", "14:05:07"}, {"bob", "-5", "07:05:07"}},
		[]string{"User", "Offset", "Time"},
		format.Right,
	)
	require.NoError(t, err)
	return grid
}

func TestRenderBordered(t *testing.T) {
	out := Render(testGrid(t), DefaultOptions())
	lines := strings.Split(out, "\n")

	// top border, header, header separator, two rows, bottom border
	require.Len(t, lines, 6)
	assert.True(t, strings.HasPrefix(lines[0], "╭"))
	assert.Contains(t, lines[1], "Offset")
	assert.Contains(t, lines[3], "alice")
	assert.Contains(t, lines[4], "  bob")
	assert.Contains(t, lines[4], "-5")
	assert.True(t, strings.HasPrefix(lines[5], "╰"))

	for _, line := range lines[1:] {
		assert.Equal(t, lipgloss.Width(lines[0]), lipgloss.Width(line))
	}
}

func TestRenderBorderless(t *testing.T) {
	opts := DefaultOptions()
	opts.Bordered = false
	opts.Theme = theme.NewThemeWithName("terminal")

	out := Render(testGrid(t), opts)
	assert.NotContains(t, out, "╭")
	assert.Contains(t, out, "alice")
	assert.Contains(t, out, "Time")
	assert.Contains(t, out, "bob", "last row is drawn")
	assert.Contains(t, out, "07:05:07")
}

func TestRenderEmptyGrid(t *testing.T) {
	grid, err := format.Align(nil, []string{"User", "Offset", "Time"}, format.Left)
	require.NoError(t, err)

	out := Render(grid, DefaultOptions())
	assert.Contains(t, out, "User")
	assert.NotContains(t, out, "alice")
}
