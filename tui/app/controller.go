// Package app is the interactive clock: a controller owning the store and
// the input line, driven by an event.Source and drawing through a Terminal.
package app

import (
	"context"
	"fmt"
	"runtime/debug"
	"sync"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/grovetools/tzclock/editor"
	"github.com/grovetools/tzclock/errors"
	"github.com/grovetools/tzclock/event"
	"github.com/grovetools/tzclock/format"
	"github.com/grovetools/tzclock/logging"
	"github.com/grovetools/tzclock/store"
	"github.com/grovetools/tzclock/timezone"
	"github.com/grovetools/tzclock/tui/keymap"
)

var log = logging.NewLogger("tzclock")

// Source yields events. *event.Source implements it.
type Source interface {
	Next(ctx context.Context) (event.Event, error)
}

// Terminal draws frames. Release restores the terminal and must be safe to
// call once the program has already exited.
type Terminal interface {
	Render(Frame) error
	Release() error
}

// Options configures a Controller.
type Options struct {
	Store     *store.Store
	Source    Source
	Terminal  Terminal
	Keys      keymap.KeyMap
	Clock     *timezone.Clock
	Alignment format.Alignment
	Padding   int
}

// Controller is the single owner of the store and the input buffer. All
// state changes happen on the goroutine calling Run.
type Controller struct {
	store     *store.Store
	source    Source
	terminal  Terminal
	keys      keymap.KeyMap
	clock     *timezone.Clock
	alignment format.Alignment
	padding   int

	mode   Mode
	buffer *editor.Buffer

	releaseOnce sync.Once
	releaseErr  error
}

// NewController returns a controller in ModeNormal with an empty buffer.
func NewController(opts Options) *Controller {
	clock := opts.Clock
	if clock == nil {
		clock = timezone.NewClock("%H:%M:%S", nil)
	}
	return &Controller{
		store:     opts.Store,
		source:    opts.Source,
		terminal:  opts.Terminal,
		keys:      opts.Keys,
		clock:     clock,
		alignment: opts.Alignment,
		padding:   opts.Padding,
		mode:      ModeNormal,
		buffer:    &editor.Buffer{},
	}
}

// Mode returns the current state.
func (c *Controller) Mode() Mode { return c.mode }

// Buffer returns the input line.
func (c *Controller) Buffer() *editor.Buffer { return c.buffer }

// Run draws the first frame and then handles events until the user quits,
// ctx is cancelled or the source fails. Every exit flushes the store and
// releases the terminal; a panic releases the terminal and is returned as
// an INTERNAL_ERROR.
func (c *Controller) Run(ctx context.Context) (err error) {
	defer func() {
		if r := recover(); r != nil {
			c.release()
			log.WithField("stack", string(debug.Stack())).Errorf("Controller panic: %v", r)
			err = errors.Internal(fmt.Sprintf("controller panic: %v", r), nil)
		}
	}()

	if err := c.render(); err != nil {
		return c.shutdown(err)
	}

	for {
		ev, err := c.source.Next(ctx)
		if err != nil {
			if ctx.Err() != nil {
				log.WithError(ctx.Err()).Info("Shutting down")
				return c.shutdown(nil)
			}
			return c.shutdown(err)
		}

		if c.Handle(ev) {
			return c.shutdown(nil)
		}

		if err := c.render(); err != nil {
			return c.shutdown(err)
		}
	}
}

// Handle applies one event and reports whether the user asked to quit.
func (c *Controller) Handle(ev event.Event) (quit bool) {
	if ev.Kind != event.KindInput {
		return false
	}
	if key.Matches(ev.Key, c.keys.Interrupt) {
		return true
	}

	switch c.mode {
	case ModeNormal:
		return c.handleNormal(ev.Key)
	case ModeInput:
		c.handleInput(ev.Key)
	}
	return false
}

func (c *Controller) handleNormal(msg tea.KeyMsg) bool {
	switch {
	case key.Matches(msg, c.keys.Quit):
		return true
	case key.Matches(msg, c.keys.Edit):
		c.mode = ModeInput
	}
	return false
}

func (c *Controller) handleInput(msg tea.KeyMsg) {
	b := c.buffer
	k := c.keys

	switch {
	case key.Matches(msg, k.Cancel):
		b.Reset()
		c.mode = ModeNormal
	case key.Matches(msg, k.Commit):
		c.commit()
	case key.Matches(msg, k.Forward):
		b.MoveForward(1)
	case key.Matches(msg, k.Backward):
		b.MoveBackward(1)
	case key.Matches(msg, k.Home):
		b.MoveHome()
	case key.Matches(msg, k.End):
		b.MoveEnd()
	case key.Matches(msg, k.WordForward):
		b.MoveWordForward(1)
	case key.Matches(msg, k.WordBackward):
		b.MoveWordBackward(1)
	case key.Matches(msg, k.TransposeChars):
		b.TransposeChars()
	case key.Matches(msg, k.TransposeWords):
		b.TransposeWords(1)
	case key.Matches(msg, k.DiscardLine):
		b.DiscardLine()
	case key.Matches(msg, k.KillLine):
		b.KillLine()
	case key.Matches(msg, k.DeletePrevWord):
		b.DeletePrevWord(1)
	case key.Matches(msg, k.DeleteChar):
		b.Delete(1)
	case key.Matches(msg, k.Backspace):
		b.Backspace(1)
	case msg.Type == tea.KeyRunes && !msg.Alt:
		b.InsertString(string(msg.Runes))
	case msg.Type == tea.KeySpace && !msg.Alt:
		b.Insert(' ', 1)
	}
}

func (c *Controller) commit() {
	if c.buffer.IsEmpty() {
		return
	}
	entry, err := timezone.Parse(c.buffer.Text())
	if err != nil {
		log.WithError(err).Debug("Rejected input")
		return
	}
	c.store.Add(entry.Name, entry.Offset)
	c.buffer.Reset()
	log.WithField("name", entry.Name).WithField("offset", entry.Offset).Debug("Stored entry")
}

func (c *Controller) render() error {
	frame, err := c.BuildFrame()
	if err != nil {
		return err
	}
	return c.terminal.Render(frame)
}

// shutdown flushes the store and releases the terminal. cause wins over
// flush and release errors, which are logged.
func (c *Controller) shutdown(cause error) error {
	flushErr := c.store.Flush()
	releaseErr := c.release()

	if cause != nil {
		if flushErr != nil {
			log.WithError(flushErr).Error("Failed to flush store during shutdown")
		}
		return cause
	}
	if flushErr != nil {
		return flushErr
	}
	return releaseErr
}

func (c *Controller) release() error {
	c.releaseOnce.Do(func() {
		c.releaseErr = c.terminal.Release()
	})
	return c.releaseErr
}
