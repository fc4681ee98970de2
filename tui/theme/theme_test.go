package theme

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewThemeWithName(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"terminal", "terminal"},
		{"Kanagawa", "kanagawa"},
		{"kanagawa-dragon", "kanagawa"},
		{"gruvbox_light", "gruvbox"},
		{"", "terminal"},
		{"solarized", "terminal"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.want, NewThemeWithName(tt.input).Name)
		})
	}
}

func TestUseReplacesDefault(t *testing.T) {
	prev := DefaultTheme
	defer func() { DefaultTheme = prev }()

	th := Use("gruvbox")
	assert.Same(t, th, DefaultTheme)
	assert.Equal(t, "gruvbox", DefaultTheme.Name)
}

func TestEveryNamedThemeIsRegistered(t *testing.T) {
	for _, name := range Names() {
		_, ok := themeRegistry[name]
		assert.True(t, ok, name)
	}
}
