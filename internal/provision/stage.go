package provision

import (
	"fmt"
	"time"

	"go.uber.org/zap"
)

// Stage is one named, idempotent unit of provisioning. Running a stage twice
// leaves the host in the same state as running it once; each stage carries
// its own probes to detect work that is already done.
type Stage interface {
	// Name returns the human-readable name of the stage.
	Name() string

	// Provision executes the stage.
	Provision(ctx *Context) error
}

// RunStages executes stages sequentially. The first failure moves the run to
// Aborted and is returned; later stages do not run. There is no retry and no
// rollback.
func RunStages(ctx *Context, stages []Stage) error {
	for i, stage := range stages {
		stageStart := time.Now()
		name := stage.Name()

		LogStageStart(ctx.Observer, name)
		ctx.Log.Debug("stage starting",
			zap.String("stage", name),
			zap.String("position", fmt.Sprintf("%d/%d", i+1, len(stages))))

		if err := stage.Provision(ctx); err != nil {
			ctx.State.Run = StateAborted
			ctx.Metrics.RecordStage(name, "failure", time.Since(stageStart))
			LogStageFailed(ctx.Observer, name, err)
			return fmt.Errorf("%s stage failed: %w", name, err)
		}

		ctx.Metrics.RecordStage(name, "success", time.Since(stageStart))
		LogStageComplete(ctx.Observer, name, time.Since(stageStart))
	}
	return nil
}
