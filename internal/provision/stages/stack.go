package stages

import (
	"fmt"

	"github.com/imamik/devsetup/internal/catalog"
	"github.com/imamik/devsetup/internal/probe"
	"github.com/imamik/devsetup/internal/provision"
	"github.com/imamik/devsetup/internal/runner"
	"github.com/imamik/devsetup/internal/shellrc"
)

// StackStage provisions one catalog stack: the ordered tool installs, the
// guarded profile hooks, and the post-install notes. One implementation
// serves every stack; the differences live entirely in the catalog.
type StackStage struct {
	spec catalog.Stack
}

// NewStack creates the stage for a catalog stack.
func NewStack(spec catalog.Stack) *StackStage {
	return &StackStage{spec: spec}
}

// Name implements provision.Stage.
func (s *StackStage) Name() string { return s.spec.Name }

// Provision implements provision.Stage.
func (s *StackStage) Provision(ctx *provision.Context) error {
	if err := s.installTools(ctx); err != nil {
		return err
	}
	if err := s.applyProfileLines(ctx); err != nil {
		return err
	}

	for _, note := range s.spec.Notes {
		provision.LogNote(ctx.Observer, s.spec.Name, note)
	}

	ctx.State.Run = provision.StateStackProvisioned
	return nil
}

// installTools runs the stack's tool specs in order. Conda specs are gated on
// the named environment: when it already exists the whole conda section is
// skipped, which is what keeps a re-run of the stage from re-provisioning it.
func (s *StackStage) installTools(ctx *provision.Context) error {
	condaSatisfied := s.spec.CondaEnv != "" && probe.CondaEnvExists(ctx, ctx.Runner, s.spec.CondaEnv)
	if condaSatisfied {
		provision.LogToolSkipped(ctx.Observer, s.spec.Name, "conda",
			fmt.Sprintf("environment %q already exists", s.spec.CondaEnv))
	}
	condaEnvReady := condaSatisfied

	total := len(s.spec.Tools)
	for i, tool := range s.spec.Tools {
		ctx.Observer.Progress(s.spec.Name, i+1, total)

		if tool.Method == catalog.MethodConda {
			if condaSatisfied {
				provision.LogToolSkipped(ctx.Observer, s.spec.Name, tool.Name, "conda environment already provisioned")
				continue
			}
			if !condaEnvReady {
				if err := ctx.Runner.Run(ctx, runner.CondaCreateEnv(s.spec.CondaEnv)); err != nil {
					return fmt.Errorf("failed to create conda environment %q: %w", s.spec.CondaEnv, err)
				}
				condaEnvReady = true
			}
		}

		if err := s.installTool(ctx, tool); err != nil {
			return err
		}
	}
	return nil
}

// installTool runs one tool spec through its method dialect. Best-effort
// failures are reported and swallowed; anything else aborts the stage.
func (s *StackStage) installTool(ctx *provision.Context, tool catalog.ToolSpec) error {
	cmd, err := commandFor(tool, s.spec.CondaEnv)
	if err != nil {
		return err
	}

	provision.LogToolInstalling(ctx.Observer, s.spec.Name, tool.Name, string(tool.Method))

	if err := ctx.Runner.Run(ctx, cmd); err != nil {
		if tool.BestEffort || cmd.BestEffort {
			ctx.Metrics.RecordCommand(string(tool.Method), "best_effort_failure")
			provision.LogBestEffortFailed(ctx.Observer, s.spec.Name, tool.Name, err)
			return nil
		}
		ctx.Metrics.RecordCommand(string(tool.Method), "failure")
		return fmt.Errorf("failed to install %s: %w", tool.Name, err)
	}

	ctx.Metrics.RecordCommand(string(tool.Method), "success")
	provision.LogToolInstalled(ctx.Observer, s.spec.Name, tool.Name)
	return nil
}

// applyProfileLines writes the stack's guarded shell-profile hooks.
func (s *StackStage) applyProfileLines(ctx *provision.Context) error {
	for _, line := range s.spec.ProfileLines {
		changed, err := shellrc.Apply(ctx.Profile, line.Marker, line.Line)
		if err != nil {
			return fmt.Errorf("failed to update shell profile: %w", err)
		}
		if changed {
			ctx.State.HooksApplied = append(ctx.State.HooksApplied, line.Marker)
			ctx.Metrics.RecordProfileAppend(line.Marker)
			provision.LogHookApplied(ctx.Observer, s.spec.Name, line.Marker)
		} else {
			provision.LogHookPresent(ctx.Observer, s.spec.Name, line.Marker)
		}
	}
	return nil
}

// commandFor maps a tool spec to its install command.
func commandFor(tool catalog.ToolSpec, condaEnv string) (runner.Command, error) {
	switch tool.Method {
	case catalog.MethodBrew:
		return runner.BrewInstall(tool.Name), nil
	case catalog.MethodCask:
		return runner.CaskInstall(tool.Name), nil
	case catalog.MethodConda:
		return runner.CondaInstall(condaEnv, tool.Name), nil
	case catalog.MethodPip:
		return runner.PipInstall(tool.Name), nil
	case catalog.MethodNpm:
		return runner.NpmInstall(tool.Name), nil
	case catalog.MethodNvm:
		return runner.NvmInstall(tool.Name), nil
	case catalog.MethodExtension:
		return runner.ExtensionInstall(tool.Name), nil
	default:
		return runner.Command{}, fmt.Errorf("unknown install method %q for %s", tool.Method, tool.Name)
	}
}
