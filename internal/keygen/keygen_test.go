package keygen

import (
	"encoding/pem"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/ssh"
)

func TestGenerateRSAKeyPair(t *testing.T) {
	kp, err := GenerateRSAKeyPair(2048)
	require.NoError(t, err)

	t.Run("private key is valid PEM PKCS#1", func(t *testing.T) {
		block, rest := pem.Decode(kp.PrivateKey)
		require.NotNil(t, block)
		assert.Equal(t, "RSA PRIVATE KEY", block.Type)
		assert.Empty(t, rest)
	})

	t.Run("public key parses as authorized_keys line", func(t *testing.T) {
		pub, _, _, _, err := ssh.ParseAuthorizedKey(kp.PublicKey)
		require.NoError(t, err)
		assert.Equal(t, "ssh-rsa", pub.Type())
	})
}

func TestKeyPairWrite(t *testing.T) {
	t.Run("writes both files with tight permissions", func(t *testing.T) {
		kp, err := GenerateRSAKeyPair(2048)
		require.NoError(t, err)

		path := filepath.Join(t.TempDir(), ".ssh", "id_rsa")
		require.NoError(t, kp.Write(path))

		info, err := os.Stat(path)
		require.NoError(t, err)
		assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())

		info, err = os.Stat(path + ".pub")
		require.NoError(t, err)
		assert.Equal(t, os.FileMode(0o644), info.Mode().Perm())
	})

	t.Run("refuses to overwrite", func(t *testing.T) {
		kp, err := GenerateRSAKeyPair(2048)
		require.NoError(t, err)

		path := filepath.Join(t.TempDir(), "id_rsa")
		require.NoError(t, kp.Write(path))

		err = kp.Write(path)
		require.Error(t, err)
		assert.True(t, strings.Contains(err.Error(), "refusing to overwrite"))
	})
}
