package stages

import (
	"fmt"
	"os"
	"runtime"

	"github.com/imamik/devsetup/internal/probe"
	"github.com/imamik/devsetup/internal/provision"
	"github.com/imamik/devsetup/internal/runner"
	"github.com/imamik/devsetup/internal/shellrc"
)

// brewPrefix is where the Homebrew installer puts the tree on this
// architecture.
func brewPrefix() string {
	if runtime.GOARCH == "arm64" {
		return "/opt/homebrew"
	}
	return "/usr/local"
}

// Homebrew bootstraps the package manager. When brew is already on PATH the
// stage only refreshes the index; otherwise it runs the official install
// script, makes brew reachable for the rest of this process, and adds the
// shellenv hook to the profile for future shells.
type Homebrew struct {
	// LookPath reports whether a binary is on PATH. Nil uses the real
	// probe; tests inject their own.
	LookPath func(name string) bool

	// Setenv mutates the process environment. Nil uses os.Setenv.
	Setenv func(key, value string) error
}

// Name implements provision.Stage.
func (Homebrew) Name() string { return "homebrew" }

// Provision implements provision.Stage.
func (h Homebrew) Provision(ctx *provision.Context) error {
	lookPath := h.LookPath
	if lookPath == nil {
		lookPath = probe.CommandExists
	}
	setenv := h.Setenv
	if setenv == nil {
		setenv = os.Setenv
	}

	if lookPath("brew") {
		provision.LogToolSkipped(ctx.Observer, "homebrew", "brew", "already installed, refreshing index")
		if err := ctx.Runner.Run(ctx, runner.BrewUpdate()); err != nil {
			return fmt.Errorf("failed to update homebrew: %w", err)
		}
		ctx.State.Run = provision.StatePackageManagerReady
		return nil
	}

	if err := ctx.Runner.Run(ctx, runner.HomebrewBootstrap()); err != nil {
		return fmt.Errorf("failed to install homebrew: %w", err)
	}

	prefix := brewPrefix()

	// Later stages in this same process need brew on PATH right away; the
	// profile hook only helps future shells.
	if err := setenv("PATH", prefix+"/bin:"+os.Getenv("PATH")); err != nil {
		return fmt.Errorf("failed to extend PATH: %w", err)
	}

	marker := "brew shellenv"
	line := fmt.Sprintf(`eval "$(%s/bin/brew shellenv)"`, prefix)
	changed, err := shellrc.Apply(ctx.Profile, marker, line)
	if err != nil {
		return fmt.Errorf("failed to add shellenv hook: %w", err)
	}
	if changed {
		ctx.State.HooksApplied = append(ctx.State.HooksApplied, marker)
		ctx.Metrics.RecordProfileAppend(marker)
		provision.LogHookApplied(ctx.Observer, "homebrew", marker)
	} else {
		provision.LogHookPresent(ctx.Observer, "homebrew", marker)
	}

	ctx.State.Run = provision.StatePackageManagerReady
	return nil
}
