package theme

import (
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

const defaultThemeName = "terminal"

// Colors is the palette a theme is built from. lipgloss.TerminalColor allows
// a mix of adaptive and static colors.
type Colors struct {
	Green              lipgloss.TerminalColor
	Yellow             lipgloss.TerminalColor
	Red                lipgloss.TerminalColor
	Orange             lipgloss.TerminalColor
	Cyan               lipgloss.TerminalColor
	Violet             lipgloss.TerminalColor
	LightText          lipgloss.TerminalColor
	MutedText          lipgloss.TerminalColor
	Border             lipgloss.TerminalColor
	SelectedBackground lipgloss.TerminalColor
}

// Theme holds the pre-configured styles used by the clock and the CLI.
type Theme struct {
	Name   string
	Colors Colors

	Title lipgloss.Style

	// Status indicators. The input box border uses these to report whether
	// the current line would add, update or be rejected.
	Success lipgloss.Style
	Warning lipgloss.Style
	Error   lipgloss.Style
	Info    lipgloss.Style

	Bold   lipgloss.Style
	Normal lipgloss.Style
	Muted  lipgloss.Style

	// Table styles
	TableHeader lipgloss.Style
	TableRow    lipgloss.Style
	TableBorder lipgloss.Style
	LocalRow    lipgloss.Style

	// Interactive elements
	Input  lipgloss.Style
	Cursor lipgloss.Style

	Accent lipgloss.Style
	Key    lipgloss.Style
	Path   lipgloss.Style
}

var themeRegistry = map[string]func() Colors{
	"terminal": terminalColors,
	"kanagawa": kanagawaColors,
	"gruvbox":  gruvboxColors,
}

// DefaultTheme is the active theme. It follows TZCLOCK_THEME until Use is called.
var DefaultTheme = NewThemeWithName(os.Getenv("TZCLOCK_THEME"))

// Use replaces DefaultTheme with the named theme. Unknown names fall back
// to the terminal palette.
func Use(name string) *Theme {
	DefaultTheme = NewThemeWithName(name)
	return DefaultTheme
}

// Names lists the registered theme names.
func Names() []string {
	return []string{"terminal", "kanagawa", "gruvbox"}
}

// NewThemeWithName constructs a theme from a palette name.
func NewThemeWithName(name string) *Theme {
	key := normalizeThemeName(name)
	builder, ok := themeRegistry[key]
	if !ok {
		key = defaultThemeName
		builder = themeRegistry[key]
	}
	return newThemeFromColors(key, builder())
}

func newThemeFromColors(name string, colors Colors) *Theme {
	return &Theme{
		Name:   name,
		Colors: colors,

		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(colors.LightText),

		Success: lipgloss.NewStyle().Foreground(colors.Green).Bold(true),
		Warning: lipgloss.NewStyle().Foreground(colors.Yellow).Bold(true),
		Error:   lipgloss.NewStyle().Foreground(colors.Red).Bold(true),
		Info:    lipgloss.NewStyle().Foreground(colors.Cyan).Bold(true),

		Bold:   lipgloss.NewStyle().Bold(true),
		Normal: lipgloss.NewStyle(),
		Muted:  lipgloss.NewStyle().Faint(true),

		TableHeader: lipgloss.NewStyle().
			Bold(true).
			Foreground(colors.Cyan),

		TableRow: lipgloss.NewStyle(),

		TableBorder: lipgloss.NewStyle().
			Foreground(colors.Border),

		LocalRow: lipgloss.NewStyle().
			Foreground(colors.Orange),

		Input: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colors.Border).
			Foreground(colors.LightText),

		Cursor: lipgloss.NewStyle().Reverse(true),

		Accent: lipgloss.NewStyle().
			Foreground(colors.Violet).
			Bold(true),

		Key:  lipgloss.NewStyle().Foreground(colors.MutedText),
		Path: lipgloss.NewStyle().Foreground(colors.Cyan).Italic(true),
	}
}

func normalizeThemeName(name string) string {
	normalized := strings.ToLower(strings.TrimSpace(name))
	normalized = strings.ReplaceAll(normalized, " ", "-")
	normalized = strings.ReplaceAll(normalized, "_", "-")
	if i := strings.IndexByte(normalized, '-'); i > 0 {
		// "kanagawa-dragon", "gruvbox-dark" and friends share a palette.
		normalized = normalized[:i]
	}
	return normalized
}

func terminalColors() Colors {
	return Colors{
		Green:              lipgloss.Color("2"),
		Yellow:             lipgloss.Color("3"),
		Red:                lipgloss.Color("1"),
		Orange:             lipgloss.Color("208"),
		Cyan:               lipgloss.Color("6"),
		Violet:             lipgloss.Color("5"),
		LightText:          lipgloss.Color("7"),
		MutedText:          lipgloss.Color("8"),
		Border:             lipgloss.Color("8"),
		SelectedBackground: lipgloss.Color("8"),
	}
}

func kanagawaColors() Colors {
	return Colors{
		Green:              lipgloss.AdaptiveColor{Light: "#4E7C5A", Dark: "#98BB6C"},
		Yellow:             lipgloss.AdaptiveColor{Light: "#A68A64", Dark: "#FF9E3B"},
		Red:                lipgloss.AdaptiveColor{Light: "#C34043", Dark: "#FF5D62"},
		Orange:             lipgloss.AdaptiveColor{Light: "#CC6B4E", Dark: "#FFA066"},
		Cyan:               lipgloss.AdaptiveColor{Light: "#5B8BBE", Dark: "#7E9CD8"},
		Violet:             lipgloss.AdaptiveColor{Light: "#674D7A", Dark: "#957FB8"},
		LightText:          lipgloss.AdaptiveColor{Light: "#2B2F42", Dark: "#DCD7BA"},
		MutedText:          lipgloss.AdaptiveColor{Light: "#6C7086", Dark: "#727169"},
		Border:             lipgloss.AdaptiveColor{Light: "#B5BDC5", Dark: "#363646"},
		SelectedBackground: lipgloss.AdaptiveColor{Light: "#E2E6F3", Dark: "#223249"},
	}
}

func gruvboxColors() Colors {
	return Colors{
		Green:              lipgloss.AdaptiveColor{Light: "#98971A", Dark: "#B8BB26"},
		Yellow:             lipgloss.AdaptiveColor{Light: "#D79921", Dark: "#FABD2F"},
		Red:                lipgloss.AdaptiveColor{Light: "#CC241D", Dark: "#FB4934"},
		Orange:             lipgloss.AdaptiveColor{Light: "#D65D0E", Dark: "#FE8019"},
		Cyan:               lipgloss.AdaptiveColor{Light: "#458588", Dark: "#83A598"},
		Violet:             lipgloss.AdaptiveColor{Light: "#8F3F71", Dark: "#B16286"},
		LightText:          lipgloss.AdaptiveColor{Light: "#3C3836", Dark: "#EBDBB2"},
		MutedText:          lipgloss.AdaptiveColor{Light: "#928374", Dark: "#BDAE93"},
		Border:             lipgloss.AdaptiveColor{Light: "#D5C4A1", Dark: "#504945"},
		SelectedBackground: lipgloss.AdaptiveColor{Light: "#F2E5BC", Dark: "#32302F"},
	}
}
