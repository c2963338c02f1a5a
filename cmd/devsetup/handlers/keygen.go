package handlers

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/imamik/devsetup/internal/keygen"
	"github.com/imamik/devsetup/internal/ui"
)

// generateKeyPair - replaced in tests.
var generateKeyPair = keygen.GenerateRSAKeyPair

// minKeyBits is the smallest RSA size still considered safe for SSH.
const minKeyBits = 2048

// Keygen generates an RSA SSH key pair for Git hosting access. An existing
// key at the target path is never overwritten.
func Keygen(output string, bits int) error {
	if bits < minKeyBits {
		return fmt.Errorf("key size %d is too small, use at least %d bits", bits, minKeyBits)
	}

	if output == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("failed to resolve home directory: %w", err)
		}
		output = filepath.Join(home, ".ssh", "id_rsa")
	}

	kp, err := generateKeyPair(bits)
	if err != nil {
		return err
	}

	if err := kp.Write(output); err != nil {
		return err
	}

	ui.Info("wrote %s and %s.pub\n", output, output)
	ui.Note("add the public key to your Git hosting account:\n  cat %s.pub | pbcopy\n", output)
	return nil
}
