package app

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/grovetools/tzclock/config"
	"github.com/grovetools/tzclock/event"
	"github.com/grovetools/tzclock/format"
	"github.com/grovetools/tzclock/store"
	"github.com/grovetools/tzclock/timezone"
	"github.com/grovetools/tzclock/tui/keymap"
	"github.com/grovetools/tzclock/tui/theme"
)

// Run takes over the terminal and shows the clock until the user quits or
// ctx is cancelled. The store is flushed before Run returns.
func Run(ctx context.Context, cfg *config.Config, st *store.Store, opts ...tea.ProgramOption) error {
	alignment, err := format.ParseAlignment(cfg.Frontend.Alignment)
	if err != nil {
		return err
	}

	th := theme.Use(cfg.Frontend.Theme)
	keys := keymap.Load(cfg)

	program := NewProgram(th, keys, opts...)
	program.Start()

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	source := event.NewSource(ctx, program.Poller(), cfg.Terminal.TickRate())
	defer source.Close()

	log.WithField("store", st.Path()).
		WithField("tick_rate", cfg.Terminal.TickRate()).
		Debug("Starting clock")

	controller := NewController(Options{
		Store:     st,
		Source:    source,
		Terminal:  program,
		Keys:      keys,
		Clock:     timezone.NewClock(cfg.Frontend.TimeFormat, cfg.Terminal.TimezoneOffset),
		Alignment: alignment,
		Padding:   cfg.Frontend.Padding,
	})
	return controller.Run(ctx)
}
