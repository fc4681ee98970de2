package cmd

import (
	"github.com/grovetools/tzclock/cli"
	"github.com/grovetools/tzclock/version"
	"github.com/spf13/cobra"
)

// NewVersionCmd prints the build metadata.
func NewVersionCmd() *cobra.Command {
	return cli.NewVersionCommand("tzclock", version.GetInfo())
}
