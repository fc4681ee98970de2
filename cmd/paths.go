package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/grovetools/tzclock/cli"
	"github.com/grovetools/tzclock/logging"
	"github.com/grovetools/tzclock/pkg/paths"
	"github.com/spf13/cobra"
)

// PathsOutput lists the files and directories tzclock uses.
type PathsOutput struct {
	ConfigDir  string `json:"config_dir"`
	StateDir   string `json:"state_dir"`
	ConfigFile string `json:"config_file"`
	StoreFile  string `json:"store_file"`
	LogDir     string `json:"log_dir"`
}

func NewPathsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "paths",
		Short: "Print the directories and files used by tzclock",
		Long: `Print the directories and files used by tzclock.

TZCLOCK_HOME moves everything under a single directory. Otherwise the XDG
variables are honoured, falling back to ~/.config/tzclock and
~/.local/state/tzclock (%APPDATA% on Windows).`,
		RunE: func(cmd *cobra.Command, args []string) error {
			output := PathsOutput{
				ConfigDir:  paths.ConfigDir(),
				StateDir:   paths.StateDir(),
				ConfigFile: paths.ConfigFile(),
				StoreFile:  paths.StoreFile(),
				LogDir:     paths.LogDir(),
			}

			if cli.GetOptions(cmd).JSONOutput {
				jsonData, err := json.MarshalIndent(output, "", "  ")
				if err != nil {
					return fmt.Errorf("failed to marshal paths to JSON: %w", err)
				}
				fmt.Fprintln(cmd.OutOrStdout(), string(jsonData))
				return nil
			}

			pretty := logging.NewPrettyLogger().WithWriter(cmd.OutOrStdout())
			pretty.Path("config dir", output.ConfigDir)
			pretty.Path("state dir", output.StateDir)
			pretty.Path("config file", output.ConfigFile)
			pretty.Path("store file", output.StoreFile)
			pretty.Path("log dir", output.LogDir)
			return nil
		},
	}

	return cmd
}
