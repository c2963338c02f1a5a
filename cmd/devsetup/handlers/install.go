// Package handlers implements the business logic for CLI commands.
//
// This package contains handler functions that are called by command
// definitions in the commands package. Handlers are framework-agnostic and
// can be tested independently of the CLI framework.
package handlers

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/mattn/go-isatty"
	"go.uber.org/zap"

	"github.com/imamik/devsetup/internal/catalog"
	"github.com/imamik/devsetup/internal/logging"
	"github.com/imamik/devsetup/internal/provision"
	"github.com/imamik/devsetup/internal/provision/stages"
	"github.com/imamik/devsetup/internal/runner"
	"github.com/imamik/devsetup/internal/shellrc"
	"github.com/imamik/devsetup/internal/telemetry"
	"github.com/imamik/devsetup/internal/ui"
	"github.com/imamik/devsetup/internal/ui/tui"
	"github.com/imamik/devsetup/internal/wizard"
)

// InstallOptions configures one installer run. The zero value reproduces the
// bare `devsetup` invocation.
type InstallOptions struct {
	// CatalogPath optionally replaces the built-in stacks with a YAML file.
	CatalogPath string

	// ProfilePath overrides the shell profile derived from $SHELL.
	ProfilePath string

	// Plain disables the form prompts and the progress TUI.
	Plain bool

	// LogLevel selects the diagnostic log level (none, info, debug).
	LogLevel string

	// MetricsFile, when set, receives the run metrics in Prometheus
	// textfile format.
	MetricsFile string
}

// Factory function variables - can be replaced in tests for dependency injection.
var (
	// newRunner creates the external command runner.
	newRunner = func(log *zap.Logger) runner.Runner {
		return runner.NewExecRunner(log)
	}

	// loadCatalogFile loads a catalog from a YAML file.
	loadCatalogFile = catalog.LoadFile

	// defaultProfilePath resolves the user's shell profile.
	defaultProfilePath = shellrc.ProfilePath

	// getLogger builds the diagnostic logger.
	getLogger = logging.GetLogger

	// runInstallTUI wraps the stack install with the progress view.
	runInstallTUI = tui.RunInstallTUI

	// isInteractiveTTY reports whether stdout is a terminal.
	isInteractiveTTY = func() bool {
		return isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd())
	}

	// newFormPrompter creates the huh-based prompter for interactive runs.
	newFormPrompter = func() wizard.Prompter { return wizard.NewFormPrompter() }

	// newLinePrompter creates the line-based prompter for plain runs.
	newLinePrompter = func() wizard.Prompter { return wizard.NewLinePrompter(os.Stdin, os.Stdout) }

	// prerequisiteStages builds the fixed stages that run before stack
	// selection.
	prerequisiteStages = func() []provision.Stage {
		return []provision.Stage{
			stages.PowerCheck{},
			stages.Toolchain{},
			stages.Homebrew{},
		}
	}
)

// Install runs the staged provisioning workflow: power check, command-line
// toolchain, Homebrew bootstrap, stack selection, then the selected stack.
//
// The run exits nonzero on a declined power check, an invalid menu choice,
// or any fatal installer failure; re-running is the recovery mechanism,
// since every stage is idempotent.
func Install(ctx context.Context, opts InstallOptions) error {
	log, err := getLogger(opts.LogLevel)
	if err != nil {
		return fmt.Errorf("invalid log level %q: %w", opts.LogLevel, err)
	}
	defer log.Sync() //nolint:errcheck

	cat, err := loadCatalog(opts.CatalogPath)
	if err != nil {
		return err
	}

	profile := opts.ProfilePath
	if profile == "" {
		profile = defaultProfilePath()
	}

	interactive := !opts.Plain && isInteractiveTTY()
	var prompter wizard.Prompter
	if interactive {
		prompter = newFormPrompter()
	} else {
		prompter = newLinePrompter()
	}

	rec := telemetry.NewRecorder()

	pctx := provision.NewContext(ctx, cat, profile, newRunner(log), prompter)
	pctx.Log = log
	pctx.Metrics = rec

	runErr := runWorkflow(pctx, interactive)

	if opts.MetricsFile != "" {
		if werr := rec.WriteTextfile(opts.MetricsFile); werr != nil {
			ui.Warn("could not write metrics file: %v\n", werr)
		}
	}

	return runErr
}

// runWorkflow executes the fixed stage sequence, then the menu-selected
// stack.
func runWorkflow(pctx *provision.Context, interactive bool) error {
	if err := provision.RunStages(pctx, prerequisiteStages()); err != nil {
		return err
	}

	stackID, err := wizard.SelectStack(pctx, pctx.Prompter)
	if err != nil {
		pctx.State.Run = provision.StateAborted
		return err
	}
	pctx.State.Stack = stackID
	pctx.State.Run = provision.StateStackSelected

	spec, ok := pctx.Catalog.Stack(stackID)
	if !ok {
		pctx.State.Run = provision.StateAborted
		return fmt.Errorf("stack %q is not defined in the catalog", stackID)
	}

	stack := stages.NewStack(*spec)

	if interactive {
		// The TUI owns the terminal; raw installer output would corrupt it.
		if execRunner, isExec := pctx.Runner.(*runner.ExecRunner); isExec {
			execRunner.WithOutput(io.Discard, io.Discard)
		}
		err = runInstallTUI(pctx, *spec, func(obs provision.Observer) error {
			pctx.Observer = obs
			return provision.RunStages(pctx, []provision.Stage{stack})
		})
	} else {
		err = provision.RunStages(pctx, []provision.Stage{stack})
	}
	if err != nil {
		return err
	}

	pctx.State.Run = provision.StateDone
	ui.Info("%s is set up. Open a new shell so the profile hooks take effect.\n", spec.Name)
	return nil
}

// loadCatalog returns the built-in catalog, or the user's file when given.
func loadCatalog(path string) (*catalog.Catalog, error) {
	if path == "" {
		return catalog.Default(), nil
	}
	cat, err := loadCatalogFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load catalog: %w", err)
	}
	return cat, nil
}
