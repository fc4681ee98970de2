// Package keymap defines the clock's key bindings and applies overrides
// from the [keys] table of config.toml.
package keymap

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/grovetools/tzclock/config"
)

// Modes switches between browsing the table and editing a line. Interrupt
// quits from either mode, since ctrl+c arrives as a key in raw mode.
type Modes struct {
	Quit      key.Binding
	Edit      key.Binding
	Cancel    key.Binding
	Commit    key.Binding
	Interrupt key.Binding
}

// Motion moves the cursor in the input line.
type Motion struct {
	Forward      key.Binding
	Backward     key.Binding
	Home         key.Binding
	End          key.Binding
	WordForward  key.Binding
	WordBackward key.Binding
}

// Editing changes the input line.
type Editing struct {
	TransposeChars key.Binding
	TransposeWords key.Binding
	DiscardLine    key.Binding
	KillLine       key.Binding
	DeletePrevWord key.Binding
	DeleteChar     key.Binding
	Backspace      key.Binding
}

// KeyMap is every binding the clock reacts to. Keys not bound here insert
// themselves in input mode.
type KeyMap struct {
	Modes
	Motion
	Editing
}

// Default returns the emacs-style defaults.
func Default() KeyMap {
	return KeyMap{
		Modes: Modes{
			Quit: key.NewBinding(
				key.WithKeys("q", "esc"),
				key.WithHelp("q", "quit"),
			),
			Interrupt: key.NewBinding(
				key.WithKeys("ctrl+c"),
				key.WithHelp("C-c", "quit from any mode"),
			),
			Edit: key.NewBinding(
				key.WithKeys("i"),
				key.WithHelp("i", "add entry"),
			),
			Cancel: key.NewBinding(
				key.WithKeys("esc"),
				key.WithHelp("esc", "cancel"),
			),
			Commit: key.NewBinding(
				key.WithKeys("enter"),
				key.WithHelp("enter", "save"),
			),
		},
		Motion: Motion{
			Forward: key.NewBinding(
				key.WithKeys("ctrl+f", "right"),
				key.WithHelp("C-f", "forward"),
			),
			Backward: key.NewBinding(
				key.WithKeys("ctrl+b", "left"),
				key.WithHelp("C-b", "backward"),
			),
			Home: key.NewBinding(
				key.WithKeys("ctrl+a", "home"),
				key.WithHelp("C-a", "start of line"),
			),
			End: key.NewBinding(
				key.WithKeys("ctrl+e", "end"),
				key.WithHelp("C-e", "end of line"),
			),
			WordForward: key.NewBinding(
				key.WithKeys("alt+f"),
				key.WithHelp("M-f", "next word"),
			),
			WordBackward: key.NewBinding(
				key.WithKeys("alt+b"),
				key.WithHelp("M-b", "previous word"),
			),
		},
		Editing: Editing{
			TransposeChars: key.NewBinding(
				key.WithKeys("ctrl+t"),
				key.WithHelp("C-t", "transpose chars"),
			),
			TransposeWords: key.NewBinding(
				key.WithKeys("alt+t"),
				key.WithHelp("M-t", "transpose words"),
			),
			DiscardLine: key.NewBinding(
				key.WithKeys("ctrl+u"),
				key.WithHelp("C-u", "delete to start"),
			),
			KillLine: key.NewBinding(
				key.WithKeys("ctrl+k"),
				key.WithHelp("C-k", "delete to end"),
			),
			DeletePrevWord: key.NewBinding(
				key.WithKeys("ctrl+w"),
				key.WithHelp("C-w", "delete word"),
			),
			DeleteChar: key.NewBinding(
				key.WithKeys("ctrl+d", "delete"),
				key.WithHelp("C-d", "delete char"),
			),
			Backspace: key.NewBinding(
				key.WithKeys("backspace"),
				key.WithHelp("bksp", "delete back"),
			),
		},
	}
}

// Load returns the defaults with the overrides from cfg applied.
func Load(cfg *config.Config) KeyMap {
	km := Default()
	if cfg != nil {
		ApplyOverrides(&km, cfg.Keys)
	}
	return km
}

// Sections groups the bindings for the full help view and `tzclock keys`.
func (k KeyMap) Sections() []Section {
	return []Section{
		NewSection(SectionModes, k.Edit, k.Commit, k.Cancel, k.Quit, k.Interrupt),
		NewSection(SectionMotion, k.Forward, k.Backward, k.Home, k.End, k.WordForward, k.WordBackward),
		NewSection(SectionEditing, k.TransposeChars, k.TransposeWords, k.DiscardLine, k.KillLine,
			k.DeletePrevWord, k.DeleteChar, k.Backspace),
	}
}

// NormalHelp is the footer for the table view.
func (k KeyMap) NormalHelp() Help {
	return Help{
		Short: []key.Binding{k.Edit, k.Quit},
		Full:  [][]key.Binding{{k.Edit, k.Quit}},
	}
}

// InputHelp is the footer while editing.
func (k KeyMap) InputHelp() Help {
	return Help{
		Short: []key.Binding{k.Commit, k.Cancel, k.Home, k.End, k.DeletePrevWord},
		Full: [][]key.Binding{
			{k.Commit, k.Cancel, k.Interrupt},
			{k.Forward, k.Backward, k.Home, k.End, k.WordForward, k.WordBackward},
			{k.TransposeChars, k.TransposeWords, k.DiscardLine, k.KillLine, k.DeletePrevWord, k.DeleteChar, k.Backspace},
		},
	}
}

// Help adapts a set of bindings to bubbles/help.
type Help struct {
	Short []key.Binding
	Full  [][]key.Binding
}

func (h Help) ShortHelp() []key.Binding  { return h.Short }
func (h Help) FullHelp() [][]key.Binding { return h.Full }
