package keymap

import (
	"testing"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/grovetools/tzclock/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCamelToSnake(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"Quit", "quit"},
		{"WordForward", "word_forward"},
		{"DeletePrevWord", "delete_prev_word"},
		{"A", "a"},
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, camelToSnake(tt.input))
		})
	}
}

func TestDefaultBindings(t *testing.T) {
	km := Default()

	tests := []struct {
		binding key.Binding
		msg     tea.KeyMsg
	}{
		{km.Quit, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}}},
		{km.Quit, tea.KeyMsg{Type: tea.KeyEsc}},
		{km.Interrupt, tea.KeyMsg{Type: tea.KeyCtrlC}},
		{km.Edit, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'i'}}},
		{km.Commit, tea.KeyMsg{Type: tea.KeyEnter}},
		{km.Forward, tea.KeyMsg{Type: tea.KeyCtrlF}},
		{km.Forward, tea.KeyMsg{Type: tea.KeyRight}},
		{km.Backward, tea.KeyMsg{Type: tea.KeyCtrlB}},
		{km.Home, tea.KeyMsg{Type: tea.KeyCtrlA}},
		{km.End, tea.KeyMsg{Type: tea.KeyEnd}},
		{km.WordForward, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'f'}, Alt: true}},
		{km.TransposeChars, tea.KeyMsg{Type: tea.KeyCtrlT}},
		{km.TransposeWords, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'t'}, Alt: true}},
		{km.DiscardLine, tea.KeyMsg{Type: tea.KeyCtrlU}},
		{km.KillLine, tea.KeyMsg{Type: tea.KeyCtrlK}},
		{km.DeletePrevWord, tea.KeyMsg{Type: tea.KeyCtrlW}},
		{km.DeleteChar, tea.KeyMsg{Type: tea.KeyDelete}},
		{km.Backspace, tea.KeyMsg{Type: tea.KeyBackspace}},
	}

	for _, tt := range tests {
		t.Run(tt.msg.String(), func(t *testing.T) {
			assert.True(t, key.Matches(tt.msg, tt.binding), "%s should match %v", tt.msg, tt.binding.Keys())
		})
	}
}

func TestApplyOverrides(t *testing.T) {
	km := Default()
	ApplyOverrides(&km, config.KeybindingsConfig{
		"quit":         {"ctrl+c"},
		"word_forward": {"ctrl+right", "alt+f"},
	})

	assert.Equal(t, []string{"ctrl+c"}, km.Quit.Keys())
	assert.Equal(t, "quit", km.Quit.Help().Desc)
	assert.Equal(t, "ctrl+c", km.Quit.Help().Key)
	assert.Equal(t, []string{"ctrl+right", "alt+f"}, km.WordForward.Keys())
	assert.Equal(t, Default().Edit.Keys(), km.Edit.Keys())
}

func TestApplyOverridesIgnoresBadInput(t *testing.T) {
	km := Default()
	ApplyOverrides(&km, nil)
	ApplyOverrides(km, config.KeybindingsConfig{"quit": {"x"}})
	ApplyOverrides(&km, config.KeybindingsConfig{"quit": {}})

	assert.Equal(t, Default().Quit.Keys(), km.Quit.Keys())
}

func TestLoad(t *testing.T) {
	cfg := config.Default()
	cfg.Keys = config.KeybindingsConfig{"edit": {"a"}}

	km := Load(cfg)
	assert.Equal(t, []string{"a"}, km.Edit.Keys())
	assert.Equal(t, Default().Quit.Keys(), Load(nil).Quit.Keys())
}

func TestActionsAndUnknown(t *testing.T) {
	actions := Actions(Default())
	assert.Len(t, actions, 18)
	assert.Contains(t, actions, "interrupt")
	assert.Contains(t, actions, "transpose_words")
	assert.Contains(t, actions, "delete_char")

	unknown := UnknownActions(Default(), config.KeybindingsConfig{
		"quit":   {"q"},
		"zoom":   {"z"},
		"delete": {"x"},
	})
	assert.Equal(t, []string{"delete", "zoom"}, unknown)
}

func TestDescribe(t *testing.T) {
	infos := Describe(Default())
	require.Len(t, infos, 18)

	assert.Equal(t, BindingInfo{
		Section:     SectionModes,
		Action:      "edit",
		Keys:        []string{"i"},
		Description: "add entry",
	}, infos[0])

	last := infos[len(infos)-1]
	assert.Equal(t, SectionEditing, last.Section)
	assert.Equal(t, "backspace", last.Action)
}

func TestHelpViews(t *testing.T) {
	km := Default()
	assert.Len(t, km.NormalHelp().ShortHelp(), 2)
	assert.Len(t, km.InputHelp().FullHelp(), 3)
}
