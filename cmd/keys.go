package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/grovetools/tzclock/cli"
	"github.com/grovetools/tzclock/logging"
	"github.com/grovetools/tzclock/tui/components/help"
	"github.com/grovetools/tzclock/tui/keymap"
	"github.com/grovetools/tzclock/tui/theme"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

func NewKeysCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "keys",
		Short: "List the key bindings, including overrides from [keys]",
		Long: `List every key binding of the clock. Bindings are overridden in the [keys]
table of config.toml with the action names shown by --json, for example:

  [keys]
  word_forward = ["alt+f", "ctrl+right"]`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := cli.LoadConfig(cmd)
			if err != nil {
				return err
			}
			km := keymap.Load(cfg)
			out := cmd.OutOrStdout()

			if cli.GetOptions(cmd).JSONOutput {
				data, err := json.MarshalIndent(keymap.Describe(km), "", "  ")
				if err != nil {
					return err
				}
				fmt.Fprintln(out, string(data))
				return nil
			}

			ref := help.New(km)
			ref.Theme = theme.Use(cfg.Frontend.Theme)
			if width, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
				ref.Width = width
			}
			fmt.Fprintln(out, ref.View())

			if unknown := keymap.UnknownActions(km, cfg.Keys); len(unknown) > 0 {
				pretty := logging.NewPrettyLogger().WithWriter(cmd.ErrOrStderr())
				for _, action := range unknown {
					pretty.WarnPretty(fmt.Sprintf("Unknown action %q in [keys]", action))
				}
			}
			return nil
		},
	}
}
