package cli

import (
	"github.com/grovetools/tzclock/config"
	"github.com/grovetools/tzclock/errors"
	"github.com/grovetools/tzclock/logging"
	"github.com/grovetools/tzclock/pkg/paths"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// CommandOptions holds the standard persistent flags.
type CommandOptions struct {
	ConfigFile string
	Verbose    bool
	JSONOutput bool
}

// NewStandardCommand creates a command with the standard flags and styled
// help.
func NewStandardCommand(use, short string) *cobra.Command {
	cmd := &cobra.Command{
		Use:           use,
		Short:         short,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose logging")
	cmd.PersistentFlags().Bool("json", false, "Output in JSON format")
	cmd.PersistentFlags().StringP("config", "c", "", "Path to config.toml")

	SetStyledHelp(cmd)

	return cmd
}

// GetLogger returns a CLI logger writing to the command's stderr. It starts
// from the level and formatter of the shared CLI component logger and is
// adjusted for --verbose and --json.
func GetLogger(cmd *cobra.Command) *logrus.Logger {
	base := logging.NewLogger("tzclock-cli").Logger

	opts := []LoggerOption{
		WithOutput(cmd.ErrOrStderr()),
		WithLevel(base.GetLevel()),
		WithFormatter(base.Formatter),
	}
	if verbose, _ := cmd.Flags().GetBool("verbose"); verbose {
		opts = append(opts, WithLevel(logrus.DebugLevel))
	}
	if jsonOutput, _ := cmd.Flags().GetBool("json"); jsonOutput {
		opts = append(opts, WithFormatter(&logrus.JSONFormatter{}))
	}
	return NewLogger(opts...)
}

// GetOptions extracts the standard flags from a command.
func GetOptions(cmd *cobra.Command) CommandOptions {
	configFile, _ := cmd.Flags().GetString("config")
	verbose, _ := cmd.Flags().GetBool("verbose")
	jsonOutput, _ := cmd.Flags().GetBool("json")

	return CommandOptions{
		ConfigFile: configFile,
		Verbose:    verbose,
		JSONOutput: jsonOutput,
	}
}

// ConfigPath is the --config flag, or the default config file.
func (o CommandOptions) ConfigPath() string {
	if o.ConfigFile != "" {
		return o.ConfigFile
	}
	return paths.ConfigFile()
}

// LoadConfig loads the config named by --config, or the default one. A
// missing file yields the defaults. The [logging] table of a loaded file is
// applied to every logger.
func LoadConfig(cmd *cobra.Command) (*config.Config, error) {
	path := GetOptions(cmd).ConfigPath()
	cfg, err := config.Load(path)
	if err != nil {
		if errors.Is(err, errors.ErrCodeConfigNotFound) {
			return config.Default(), nil
		}
		return nil, err
	}
	if err := ApplyLogging(cfg, path); err != nil {
		return nil, err
	}
	return cfg, nil
}

// ApplyLogging reconfigures the loggers from the [logging] table of cfg,
// which was read from path.
func ApplyLogging(cfg *config.Config, path string) error {
	if err := logging.ApplyConfig(cfg); err != nil {
		return errors.Wrap(err, errors.ErrCodeConfigInvalid, "invalid [logging] table").
			WithDetail("path", path).
			WithDetail("field", "logging")
	}
	return nil
}
