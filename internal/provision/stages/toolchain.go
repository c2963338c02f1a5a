package stages

import (
	"fmt"

	"github.com/imamik/devsetup/internal/probe"
	"github.com/imamik/devsetup/internal/provision"
	"github.com/imamik/devsetup/internal/runner"
)

// Toolchain ensures the Xcode command-line tools are installed. The OS
// installer is GUI-driven and asynchronous, so when it has to run, the stage
// blocks on the user confirming that it finished. The confirmation is
// accepted unverified; a wrong answer surfaces later as a compile-tool
// failure in the selected stack.
type Toolchain struct{}

// Name implements provision.Stage.
func (Toolchain) Name() string { return "command line tools" }

// Provision implements provision.Stage.
func (Toolchain) Provision(ctx *provision.Context) error {
	if probe.CommandSucceeds(ctx, ctx.Runner, runner.XcodeToolchainQuery()) {
		provision.LogToolSkipped(ctx.Observer, "command line tools", "xcode-select", "already installed")
		ctx.State.Run = provision.StateToolchainReady
		return nil
	}

	if err := ctx.Runner.Run(ctx, runner.XcodeToolchainInstall()); err != nil {
		return fmt.Errorf("failed to launch the command line tools installer: %w", err)
	}

	ok, err := ctx.Prompter.Confirm(ctx, "The Command Line Tools installer has opened. Confirm here once it has finished. Continue?")
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("%w: the command line tools are required before anything can be installed", provision.ErrUserDeclined)
	}

	ctx.State.Run = provision.StateToolchainReady
	return nil
}
