package commands

import (
	"github.com/spf13/cobra"

	"github.com/imamik/devsetup/cmd/devsetup/handlers"
)

// Doctor returns the doctor command.
func Doctor() *cobra.Command {
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "doctor",
		Short: "Report which development tools are installed",
		Long: `Report which development tools are installed.

The report is read-only: it probes the host for each known tool and prints
what it found, with install hints for anything missing. Nothing is changed.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return handlers.Doctor(cmd.Context(), jsonOutput)
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "print the report as JSON")

	return cmd
}
