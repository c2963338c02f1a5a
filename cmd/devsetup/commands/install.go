package commands

import (
	"github.com/spf13/cobra"

	"github.com/imamik/devsetup/cmd/devsetup/handlers"
)

// Install returns the install command. It is the same flow the bare root
// command runs; the flags only exist here, and their defaults reproduce the
// bare invocation exactly.
func Install() *cobra.Command {
	var opts handlers.InstallOptions

	cmd := &cobra.Command{
		Use:   "install",
		Short: "Run the interactive environment installer",
		Long: `Run the interactive environment installer.

The installer confirms the machine is on power, makes sure the Xcode command
line tools and Homebrew are available, then installs the stack you pick from
the menu. Every step checks whether its work is already done, so the command
can be re-run safely after a failure.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return handlers.Install(cmd.Context(), opts)
		},
	}

	cmd.Flags().StringVar(&opts.CatalogPath, "catalog", "", "YAML catalog file replacing the built-in stacks")
	cmd.Flags().StringVar(&opts.ProfilePath, "profile", "", "shell profile file for hook lines (default: derived from $SHELL)")
	cmd.Flags().BoolVar(&opts.Plain, "plain", false, "disable the progress TUI and form prompts")
	cmd.Flags().StringVar(&opts.LogLevel, "log-level", "none", "diagnostic log level: none, info, or debug")
	cmd.Flags().StringVar(&opts.MetricsFile, "metrics-file", "", "write run metrics to this file in Prometheus textfile format")

	return cmd
}
