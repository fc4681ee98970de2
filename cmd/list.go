package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/grovetools/tzclock/cli"
	"github.com/grovetools/tzclock/errors"
	"github.com/grovetools/tzclock/format"
	"github.com/grovetools/tzclock/logging"
	"github.com/grovetools/tzclock/store"
	"github.com/grovetools/tzclock/timezone"
	"github.com/grovetools/tzclock/tui/app"
	"github.com/grovetools/tzclock/tui/components/table"
	"github.com/grovetools/tzclock/tui/theme"
	"github.com/spf13/cobra"
)

// ListEntry is one row of `tzclock list --json`.
type ListEntry struct {
	Name   string `json:"name"`
	Offset int64  `json:"offset"`
	Time   string `json:"time"`
}

func NewListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "Print the table once and exit",
		Long: `Print everyone in the store with their current time, in the same
layout as the full-screen clock. Works without a terminal.

Examples:
  tzclock list
  tzclock list --plain --align left
  tzclock list --json`,
		Args: cobra.NoArgs,
		RunE: runList,
	}
	cmd.Flags().Bool("plain", false, "Print space-separated columns without borders or color")
	cmd.Flags().String("store", "", "Store file, overriding [storage] path")
	cmd.Flags().String("align", "", "Column alignment: left, right, or center")
	return cmd
}

func runList(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	st, err := store.LoadContext(cmd.Context(), cfg.Storage.Path)
	if err != nil {
		return err
	}
	defer st.Close()

	clock := timezone.NewClock(cfg.Frontend.TimeFormat, cfg.Terminal.TimezoneOffset)
	entries := st.Snapshot()
	out := cmd.OutOrStdout()

	if cli.GetOptions(cmd).JSONOutput {
		list := make([]ListEntry, 0, len(entries))
		for _, e := range entries {
			list = append(list, ListEntry{Name: e.Name, Offset: e.Offset, Time: clock.Format(e.Offset)})
		}
		data, err := json.MarshalIndent(list, "", "  ")
		if err != nil {
			return err
		}
		fmt.Fprintln(out, string(data))
		return nil
	}

	alignment, err := format.ParseAlignment(cfg.Frontend.Alignment)
	if err != nil {
		return err
	}
	grid, err := format.Align(app.Rows(entries, clock), app.Headers, alignment)
	if err != nil {
		return err
	}

	if plain, _ := cmd.Flags().GetBool("plain"); plain {
		for _, line := range grid.Lines("  ") {
			fmt.Fprintln(out, line)
		}
		return nil
	}

	th := theme.Use(cfg.Frontend.Theme)
	fmt.Fprintln(out, th.Title.Render(app.Title(clock.LocalOffset(), clock.LocalTime())))
	opts := table.DefaultOptions()
	opts.Theme = th
	opts.Highlight = app.LocalRow(entries, clock.LocalOffset())
	fmt.Fprintln(out, table.Render(grid, opts))
	return nil
}

func NewAddCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add NAME,OFFSET",
		Short: "Add or update an entry without opening the clock",
		Long: `Add or update an entry. The argument uses the same grammar as the input
line: a name, a comma and an hour offset with an optional UTC prefix.

Examples:
  tzclock add alice,UTC+2
  tzclock add "Bob Smith,-5"`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			entry, err := timezone.Parse(args[0])
			if err != nil {
				return err
			}
			return withStore(cmd, func(st *store.Store) error {
				_, existed := st.Get(entry.Name)
				st.Add(entry.Name, entry.Offset)
				if err := st.FlushContext(cmd.Context()); err != nil {
					return err
				}

				verb := "Added"
				if existed {
					verb = "Updated"
				}
				logging.NewPrettyLogger().WithWriter(cmd.OutOrStdout()).
					Success(fmt.Sprintf("%s %s (%s)", verb, entry.Name, timezone.FormatOffset(entry.Offset)))
				return nil
			})
		},
	}
	cmd.Flags().String("store", "", "Store file, overriding [storage] path")
	return cmd
}

func NewRemoveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "remove NAME",
		Aliases: []string{"rm"},
		Short:   "Remove an entry",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := args[0]
			return withStore(cmd, func(st *store.Store) error {
				if !st.Contains(name) {
					return errors.InvalidInput(name, fmt.Sprintf("no entry named %q", name))
				}
				st.Remove(name)
				if err := st.FlushContext(cmd.Context()); err != nil {
					return err
				}
				logging.NewPrettyLogger().WithWriter(cmd.OutOrStdout()).Success("Removed " + name)
				return nil
			})
		},
	}
	cmd.Flags().String("store", "", "Store file, overriding [storage] path")
	return cmd
}

func withStore(cmd *cobra.Command, fn func(*store.Store) error) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	st, err := store.LoadContext(cmd.Context(), cfg.Storage.Path)
	if err != nil {
		return err
	}
	defer st.Close()
	return fn(st)
}
