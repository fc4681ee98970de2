// Package cmd holds the tzclock cobra commands.
package cmd

import (
	"context"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/grovetools/tzclock/cli"
	"github.com/grovetools/tzclock/config"
	"github.com/grovetools/tzclock/errors"
	"github.com/grovetools/tzclock/logging"
	"github.com/grovetools/tzclock/store"
	"github.com/grovetools/tzclock/tui"
	"github.com/grovetools/tzclock/tui/app"
	"github.com/grovetools/tzclock/tui/keymap"
	"github.com/grovetools/tzclock/version"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

var log = logging.NewLogger("tzclock-cmd")

// NewRootCmd builds the tzclock command tree.
func NewRootCmd() *cobra.Command {
	root := cli.NewStandardCommand(
		"tzclock",
		"Show the local time of the people you work with",
	)
	root.Long = `Show the local time of the people you work with.

Run without arguments for the full-screen clock. Press i to add someone as
"name,offset" (for example "alice,UTC+2" or "bob,-5"), enter to save, esc to
leave the input line and q to quit. Entries are saved on exit.

Examples:
  # Start the clock
  tzclock

  # Use a YAML store for this session
  tzclock --store ~/people.yaml

  # Print the table without the full-screen view
  tzclock list --plain`
	root.Args = cobra.NoArgs
	root.RunE = runClock

	root.Flags().String("store", "", "Store file, overriding [storage] path (.json, .yaml or .db)")
	root.Flags().String("theme", "", "Color theme: terminal, kanagawa, or gruvbox")
	root.Flags().String("align", "", "Column alignment: left, right, or center")

	cli.SetVersionTemplate(root, version.GetInfo())

	root.AddCommand(
		NewVersionCmd(),
		NewPathsCmd(),
		NewConfigCmd(),
		NewListCmd(),
		NewAddCmd(),
		NewRemoveCmd(),
		NewKeysCmd(),
		NewLogsCmd(),
	)
	return root
}

// Execute runs the root command and returns the process exit code.
func Execute(ctx context.Context) int {
	return execute(ctx, NewRootCmd())
}

// execute reports input errors with a usage hint and exit code 2. Every
// other error goes through the CLI error handler and exits with 1.
func execute(ctx context.Context, root *cobra.Command) int {
	cmd, err := root.ExecuteContextC(ctx)
	if err == nil {
		return 0
	}
	if !errors.IsFatal(err) {
		cli.PrintError(cmd, err)
		return 2
	}
	verbose, _ := root.PersistentFlags().GetBool("verbose")
	h := cli.NewErrorHandler(verbose)
	h.Out = root.ErrOrStderr()
	h.Handle(err)
	return 1
}

// loadConfig resolves the config for commands that need one, applying the
// root-level overrides when the flags exist on cmd.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg, err := cli.LoadConfig(cmd)
	if err != nil {
		return nil, err
	}
	if err := applyOverrides(cmd, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func applyOverrides(cmd *cobra.Command, cfg *config.Config) error {
	if f := cmd.Flags().Lookup("store"); f != nil && f.Value.String() != "" {
		cfg.Storage.Path = f.Value.String()
	}
	if f := cmd.Flags().Lookup("theme"); f != nil && f.Value.String() != "" {
		cfg.Frontend.Theme = f.Value.String()
	}
	if f := cmd.Flags().Lookup("align"); f != nil && f.Value.String() != "" {
		cfg.Frontend.Alignment = strings.ToLower(f.Value.String())
	}
	return cfg.Validate()
}

func runClock(cmd *cobra.Command, args []string) error {
	opts := cli.GetOptions(cmd)
	path := opts.ConfigPath()

	created, err := config.EnsureDefault(path)
	if err != nil {
		return err
	}
	if created {
		log.WithField("path", path).Info("Wrote default configuration")
		return errors.ConfigCreated(path)
	}

	cfg, err := config.Load(path)
	if err != nil {
		return err
	}
	if err := cli.ApplyLogging(cfg, path); err != nil {
		return err
	}
	if err := applyOverrides(cmd, cfg); err != nil {
		return err
	}

	if !term.IsTerminal(int(os.Stdin.Fd())) || !term.IsTerminal(int(os.Stdout.Fd())) {
		return errors.TerminalUnavailable("stdin and stdout must be a terminal")
	}

	if unknown := keymap.UnknownActions(keymap.Default(), cfg.Keys); len(unknown) > 0 {
		log.WithField("actions", unknown).Warn("Ignoring unknown actions in [keys]")
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM, syscall.SIGHUP)
	defer stop()

	st, err := store.LoadContext(ctx, cfg.Storage.Path)
	if err != nil {
		return err
	}
	defer st.Close()

	// Log lines on stderr would tear the alternate screen.
	restore := logging.SetGlobalOutput(io.Discard)
	defer restore()

	tui.InitializeTUI()
	return app.Run(ctx, cfg, st)
}
