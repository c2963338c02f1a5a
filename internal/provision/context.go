package provision

import (
	"context"

	"go.uber.org/zap"

	"github.com/imamik/devsetup/internal/catalog"
	"github.com/imamik/devsetup/internal/runner"
	"github.com/imamik/devsetup/internal/telemetry"
	"github.com/imamik/devsetup/internal/wizard"
)

// RunState is the position of a run in the workflow state machine.
type RunState string

// The workflow states, in order. Aborted is terminal and reached from any
// state on failure or a declined confirmation.
const (
	StateStart               RunState = "start"
	StatePowerConfirmed      RunState = "power-confirmed"
	StateToolchainReady      RunState = "toolchain-ready"
	StatePackageManagerReady RunState = "package-manager-ready"
	StateStackSelected       RunState = "stack-selected"
	StateStackProvisioned    RunState = "stack-provisioned"
	StateDone                RunState = "done"
	StateAborted             RunState = "aborted"
)

// State holds the mutable results of a run. The host itself is never modeled
// here; installed tools are only ever discovered through probes.
type State struct {
	// Run is the current workflow state.
	Run RunState

	// Stack is the user's selection, set once the menu resolves.
	Stack catalog.StackID

	// HooksApplied lists the profile markers written during this run.
	HooksApplied []string
}

// NewState creates the initial run state.
func NewState() *State {
	return &State{Run: StateStart}
}

// Context wraps the dependencies and state shared by all stages of a run.
type Context struct {
	context.Context

	// Catalog defines the installable stacks.
	Catalog *catalog.Catalog

	// Profile is the path of the user's shell profile file.
	Profile string

	Runner   runner.Runner
	Prompter wizard.Prompter
	Observer Observer

	// Metrics may be nil; a nil recorder records nothing.
	Metrics *telemetry.Recorder

	// Log is the diagnostic logger, never nil.
	Log *zap.Logger

	State *State
}

// NewContext creates a provisioning context with a console observer and a
// fresh state.
func NewContext(ctx context.Context, cat *catalog.Catalog, profile string, r runner.Runner, p wizard.Prompter) *Context {
	return &Context{
		Context:  ctx,
		Catalog:  cat,
		Profile:  profile,
		Runner:   r,
		Prompter: p,
		Observer: NewConsoleObserver(),
		Log:      zap.NewNop(),
		State:    NewState(),
	}
}
