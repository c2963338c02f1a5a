package commands

import (
	"github.com/spf13/cobra"

	"github.com/imamik/devsetup/cmd/devsetup/handlers"
)

// Keygen returns the keygen command.
func Keygen() *cobra.Command {
	var (
		output string
		bits   int
	)

	cmd := &cobra.Command{
		Use:   "keygen",
		Short: "Generate an SSH key pair for Git hosting access",
		RunE: func(_ *cobra.Command, _ []string) error {
			return handlers.Keygen(output, bits)
		},
	}

	cmd.Flags().StringVar(&output, "output", "", "private key path (default: ~/.ssh/id_rsa)")
	cmd.Flags().IntVar(&bits, "bits", 4096, "RSA key size in bits")

	return cmd
}
