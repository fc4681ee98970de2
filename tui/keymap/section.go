package keymap

import "github.com/charmbracelet/bubbles/key"

const (
	SectionModes   = "Modes"
	SectionMotion  = "Motion"
	SectionEditing = "Editing"
)

// Section is a named group of bindings.
type Section struct {
	Name     string
	Bindings []key.Binding
}

// NewSection creates a section.
func NewSection(name string, bindings ...key.Binding) Section {
	return Section{Name: name, Bindings: bindings}
}

// FilterEnabled returns the enabled bindings of the section.
func (s Section) FilterEnabled() []key.Binding {
	var result []key.Binding
	for _, b := range s.Bindings {
		if b.Enabled() {
			result = append(result, b)
		}
	}
	return result
}
