package probe_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/imamik/devsetup/internal/probe"
	"github.com/imamik/devsetup/internal/runner"
	devtesting "github.com/imamik/devsetup/internal/testing"
)

const condaListCmd = "/bin/bash -lc conda env list"

func TestCommandExists(t *testing.T) {
	assert.True(t, probe.CommandExists("sh"), "sh is on PATH everywhere")
	assert.False(t, probe.CommandExists("definitely-not-a-real-binary"))
}

func TestCommandSucceeds(t *testing.T) {
	cmd := runner.XcodeToolchainQuery()

	t.Run("zero exit reads as satisfied", func(t *testing.T) {
		r := devtesting.NewFakeRunner()
		assert.True(t, probe.CommandSucceeds(context.Background(), r, cmd))
	})

	t.Run("failure reads as not satisfied", func(t *testing.T) {
		r := devtesting.NewFakeRunner().WithOutputError(cmd.String(), errors.New("exit status 2"))
		assert.False(t, probe.CommandSucceeds(context.Background(), r, cmd))
	})
}

func TestProfileContains(t *testing.T) {
	profile := filepath.Join(t.TempDir(), ".zprofile")
	require.NoError(t, os.WriteFile(profile, []byte("export NVM_DIR=\"$HOME/.nvm\"\n"), 0o644))

	assert.True(t, probe.ProfileContains(profile, "NVM_DIR"))
	assert.False(t, probe.ProfileContains(profile, "PYENV_ROOT"))
	assert.False(t, probe.ProfileContains(filepath.Join(t.TempDir(), "missing"), "NVM_DIR"),
		"a missing profile satisfies nothing")
}

func TestCondaEnvExists(t *testing.T) {
	listing := `# conda environments:
#
base                  *  /opt/homebrew/Caskroom/miniconda/base
datasci                  /opt/homebrew/Caskroom/miniconda/base/envs/datasci
`

	t.Run("named environment is found", func(t *testing.T) {
		r := devtesting.NewFakeRunner().WithOutput(condaListCmd, listing)
		assert.True(t, probe.CondaEnvExists(context.Background(), r, "datasci"))
	})

	t.Run("prefix of an environment name does not match", func(t *testing.T) {
		r := devtesting.NewFakeRunner().WithOutput(condaListCmd, listing)
		assert.False(t, probe.CondaEnvExists(context.Background(), r, "data"))
	})

	t.Run("comment lines are ignored", func(t *testing.T) {
		r := devtesting.NewFakeRunner().WithOutput(condaListCmd, "# datasci is mentioned here\n")
		assert.False(t, probe.CondaEnvExists(context.Background(), r, "datasci"))
	})

	t.Run("a broken listing reads as no environments", func(t *testing.T) {
		r := devtesting.NewFakeRunner().WithOutputError(condaListCmd, errors.New("conda: command not found"))
		assert.False(t, probe.CondaEnvExists(context.Background(), r, "datasci"))
	})
}

func TestCheck(t *testing.T) {
	keyFile := filepath.Join(t.TempDir(), "id_rsa")
	require.NoError(t, os.WriteFile(keyFile, []byte("key"), 0o600))

	tools := []probe.Tool{
		{Name: "sh", Required: true},
		{Name: "no-such-tool", Required: true, InstallHint: "install it"},
		{Name: "ssh key", File: keyFile},
		{Name: "missing file", File: filepath.Join(t.TempDir(), "absent")},
	}

	results := probe.Check(tools)

	require.Len(t, results.Results, 4)
	assert.True(t, results.Results[0].Found)
	assert.NotEmpty(t, results.Results[0].Path)
	assert.False(t, results.Results[1].Found)
	assert.True(t, results.Results[2].Found)
	assert.Equal(t, keyFile, results.Results[2].Path)
	assert.False(t, results.Results[3].Found)

	assert.True(t, results.HasErrors())
	require.Error(t, results.Error())
	assert.Contains(t, results.Error().Error(), "no-such-tool (install it)")
}

func TestCheckResults_NoRequiredMissing(t *testing.T) {
	results := probe.Check([]probe.Tool{
		{Name: "sh", Required: true},
		{Name: "no-such-tool"},
	})

	assert.False(t, results.HasErrors())
	assert.NoError(t, results.Error())
}
