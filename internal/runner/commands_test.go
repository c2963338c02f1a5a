package runner

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHomebrewBootstrap(t *testing.T) {
	t.Run("pipes the fetched script into bash", func(t *testing.T) {
		cmd := HomebrewBootstrap()

		require.Equal(t, "/bin/bash", cmd.Path)
		require.Len(t, cmd.Args, 2)
		assert.Equal(t, "-c", cmd.Args[0])
		assert.Contains(t, cmd.Args[1], "install.sh | /bin/bash")
		// A $(...) argument is expanded by the child shell, which word-splits
		// the script body into a bogus command name and exits 127.
		assert.NotContains(t, cmd.Args[1], "$(")
	})

	t.Run("piped script body executes", func(t *testing.T) {
		r := NewExecRunner(nil).WithOutput(&bytes.Buffer{}, &bytes.Buffer{})

		cmd := Command{Path: "/bin/bash", Args: []string{"-c", `printf '#!/bin/bash\necho ran\nexit 0\n' | /bin/bash`}}
		err := r.Run(context.Background(), cmd)

		assert.NoError(t, err)
	})
}
