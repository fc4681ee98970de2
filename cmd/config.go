package cmd

import (
	"fmt"
	"os"

	"github.com/grovetools/tzclock/cli"
	"github.com/grovetools/tzclock/config"
	"github.com/grovetools/tzclock/logging"
	"github.com/grovetools/tzclock/pkg/paths"
	"github.com/spf13/cobra"
)

func NewConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Create, inspect and validate config.toml",
	}
	cmd.AddCommand(newConfigInitCmd(), newConfigShowCmd(), newConfigSchemaCmd())
	return cmd
}

func newConfigInitCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write the default config.toml",
		Long: `Write the commented default configuration. An existing file is left
alone unless --force is given.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			path := cli.GetOptions(cmd).ConfigPath()
			force, _ := cmd.Flags().GetBool("force")
			pretty := logging.NewPrettyLogger().WithWriter(cmd.OutOrStdout())

			if err := paths.EnsureDirs(); err != nil {
				return err
			}
			if force {
				if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
					return err
				}
			}

			created, err := config.EnsureDefault(path)
			if err != nil {
				return err
			}
			if !created {
				pretty.WarnPretty("Configuration already exists, use --force to overwrite")
				pretty.Path("config", path)
				return nil
			}
			pretty.Success("Configuration created")
			pretty.Path("config", path)
			return nil
		},
	}
	cmd.Flags().Bool("force", false, "Overwrite an existing file")
	return cmd
}

func newConfigShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Print the effective configuration with defaults applied",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := cli.LoadConfig(cmd)
			if err != nil {
				return err
			}
			data, err := cfg.ToTOML()
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "# Source: %s\n%s", cli.GetOptions(cmd).ConfigPath(), data)
			return nil
		},
	}
}

func newConfigSchemaCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "schema",
		Short: "Print the JSON Schema config.toml is validated against",
		RunE: func(cmd *cobra.Command, args []string) error {
			schema, err := config.GenerateSchema()
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), string(schema))
			return nil
		},
	}
}
