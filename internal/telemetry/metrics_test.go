package telemetry

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecorder(t *testing.T) {
	t.Run("nil recorder is a no-op", func(t *testing.T) {
		var r *Recorder
		r.RecordStage("homebrew", "success", time.Second)
		r.RecordCommand("brew", "success")
		r.RecordProfileAppend("NVM_DIR")
		assert.NoError(t, r.WriteTextfile(filepath.Join(t.TempDir(), "metrics.prom")))
	})

	t.Run("records reach the registry", func(t *testing.T) {
		r := NewRecorder()
		r.RecordStage("power check", "success", 2*time.Second)
		r.RecordStage("Academic Writing", "failure", 30*time.Second)
		r.RecordCommand("cask", "success")
		r.RecordCommand("extension", "best_effort_failure")
		r.RecordProfileAppend("pyenv init")

		families, err := r.registry.Gather()
		require.NoError(t, err)

		names := make(map[string]bool, len(families))
		for _, mf := range families {
			names[mf.GetName()] = true
		}
		assert.True(t, names["devsetup_run_stage_total"])
		assert.True(t, names["devsetup_run_stage_duration_seconds"])
		assert.True(t, names["devsetup_command_total"])
		assert.True(t, names["devsetup_run_profile_appends_total"])
	})
}

func TestWriteTextfile(t *testing.T) {
	r := NewRecorder()
	r.RecordStage("homebrew", "success", 5*time.Second)
	r.RecordCommand("brew", "success")

	path := filepath.Join(t.TempDir(), "devsetup.prom")
	require.NoError(t, r.WriteTextfile(path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	text := string(data)
	assert.Contains(t, text, "devsetup_run_stage_total")
	assert.Contains(t, text, `stage="homebrew"`)
	assert.Contains(t, text, `result="success"`)
	assert.Contains(t, text, "# HELP")
}
