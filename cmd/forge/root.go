package main

import (
	"github.com/spf13/cobra"

	"github.com/conn-castle/forge/internal/messages"
)

// newRootCmd builds the root command with all subcommands attached.
func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           messages.RootUse,
		Short:         messages.RootShort,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.AddCommand(newNewCmd())
	cmd.AddCommand(newConfigCmd())
	return cmd
}
