// Package commands defines the CLI command structure and flag bindings.
//
// This package contains cobra command definitions that handle argument
// parsing and flag binding. Command execution is delegated to handler
// functions in the handlers package.
package commands

import (
	"github.com/spf13/cobra"

	"github.com/imamik/devsetup/cmd/devsetup/handlers"
)

// Root returns the root command for the devsetup CLI.
//
// Running the root command with no subcommand starts the interactive
// installer, so `devsetup` alone remains the single entry point.
func Root() *cobra.Command {
	cmd := &cobra.Command{
		Use:          "devsetup",
		Short:        "Provision a macOS development environment",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return handlers.Install(cmd.Context(), handlers.InstallOptions{})
		},
	}

	cmd.AddCommand(Install())
	cmd.AddCommand(Doctor())
	cmd.AddCommand(Keygen())
	cmd.AddCommand(Version())
	cmd.AddCommand(Completion())

	return cmd
}
