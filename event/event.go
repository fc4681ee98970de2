// Package event merges keyboard input and a redraw tick into one ordered
// stream.
package event

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// Kind tells a tick from a key press.
type Kind int

const (
	KindTick Kind = iota
	KindInput
)

func (k Kind) String() string {
	if k == KindInput {
		return "input"
	}
	return "tick"
}

// Event is one item of the stream. Key is set only for KindInput.
type Event struct {
	Kind Kind
	Key  tea.KeyMsg
}

// Tick returns a tick event.
func Tick() Event { return Event{Kind: KindTick} }

// Input returns a key event.
func Input(key tea.KeyMsg) Event { return Event{Kind: KindInput, Key: key} }

// KeyPoller reads keys from the terminal. Poll waits at most timeout and
// reports ok=false if no key arrived. An error means the device is gone.
type KeyPoller interface {
	Poll(ctx context.Context, timeout time.Duration) (key tea.KeyMsg, ok bool, err error)
}
