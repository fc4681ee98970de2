package keymap

import (
	"reflect"
	"sort"
	"strings"
	"unicode"

	"github.com/charmbracelet/bubbles/key"
	"github.com/grovetools/tzclock/config"
)

var bindingType = reflect.TypeOf(key.Binding{})

// ApplyOverrides replaces the keys of every key.Binding field of km whose
// snake_case name appears in overrides. Embedded structs are walked too,
// and help descriptions are kept.
//
//	ApplyOverrides(&km, config.KeybindingsConfig{"word_forward": {"ctrl+right"}})
func ApplyOverrides(km interface{}, overrides config.KeybindingsConfig) {
	if overrides == nil {
		return
	}
	v := reflect.ValueOf(km)
	if v.Kind() != reflect.Ptr || v.Elem().Kind() != reflect.Struct {
		return
	}

	walkBindings(v.Elem(), func(action string, field reflect.Value) {
		keys, ok := overrides[action]
		if !ok || len(keys) == 0 {
			return
		}
		current := field.Interface().(key.Binding)
		field.Set(reflect.ValueOf(key.NewBinding(
			key.WithKeys(keys...),
			key.WithHelp(keys[0], current.Help().Desc),
		)))
	})
}

// Actions lists the snake_case action names km accepts as overrides.
func Actions(km interface{}) []string {
	v := reflect.ValueOf(km)
	if v.Kind() == reflect.Ptr {
		v = v.Elem()
	}
	if v.Kind() != reflect.Struct {
		return nil
	}
	var out []string
	walkBindings(v, func(action string, _ reflect.Value) {
		out = append(out, action)
	})
	return out
}

// UnknownActions returns the override names that match no binding, sorted.
func UnknownActions(km interface{}, overrides config.KeybindingsConfig) []string {
	known := make(map[string]bool)
	for _, a := range Actions(km) {
		known[a] = true
	}
	var unknown []string
	for action := range overrides {
		if !known[action] {
			unknown = append(unknown, action)
		}
	}
	sort.Strings(unknown)
	return unknown
}

// BindingInfo describes one binding for `tzclock keys`.
type BindingInfo struct {
	Section     string   `json:"section"`
	Action      string   `json:"action"`
	Keys        []string `json:"keys"`
	Description string   `json:"description"`
}

// Describe lists every binding with its action name, grouped by section.
func Describe(km KeyMap) []BindingInfo {
	byDesc := make(map[string]string)
	walkBindings(reflect.ValueOf(km), func(action string, field reflect.Value) {
		byDesc[field.Interface().(key.Binding).Help().Desc] = action
	})

	var out []BindingInfo
	for _, s := range km.Sections() {
		for _, b := range s.FilterEnabled() {
			out = append(out, BindingInfo{
				Section:     s.Name,
				Action:      byDesc[b.Help().Desc],
				Keys:        b.Keys(),
				Description: b.Help().Desc,
			})
		}
	}
	return out
}

func walkBindings(v reflect.Value, fn func(action string, field reflect.Value)) {
	t := v.Type()
	for i := 0; i < v.NumField(); i++ {
		field := v.Field(i)
		fieldType := t.Field(i)

		if !fieldType.IsExported() {
			continue
		}
		if fieldType.Anonymous && field.Kind() == reflect.Struct {
			walkBindings(field, fn)
			continue
		}
		if fieldType.Type != bindingType {
			continue
		}
		fn(camelToSnake(fieldType.Name), field)
	}
}

// camelToSnake converts a CamelCase string to snake_case.
// Examples: WordForward -> word_forward, DeletePrevWord -> delete_prev_word
func camelToSnake(s string) string {
	var result strings.Builder
	for i, r := range s {
		if unicode.IsUpper(r) {
			if i > 0 {
				result.WriteRune('_')
			}
			result.WriteRune(unicode.ToLower(r))
		} else {
			result.WriteRune(r)
		}
	}
	return result.String()
}
