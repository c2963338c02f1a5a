// Package runner executes external provisioning commands.
//
// Every install action in the workflow is a synchronous invocation of a
// third-party tool (Homebrew, conda, pip, npm, the Xcode installer). The
// runner blocks until the command completes and reports nonzero exits as
// *CommandError so the failing command line and exit status reach the user.
// Commands are never retried; re-running the workflow is the recovery path.
package runner

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"

	"go.uber.org/zap"
)

// Command describes a single external command invocation.
type Command struct {
	Path string
	Args []string

	// BestEffort marks steps whose failure is reported but must not abort
	// the run (editor extension installs).
	BestEffort bool
}

// String returns the command in shell-like form for display and errors.
func (c Command) String() string {
	if len(c.Args) == 0 {
		return c.Path
	}
	return c.Path + " " + strings.Join(c.Args, " ")
}

// CommandError reports an external command that exited nonzero or failed to
// start. ExitCode is -1 when the process could not be started.
type CommandError struct {
	Command  string
	ExitCode int
	Output   string
}

// Error implements the error interface.
func (e *CommandError) Error() string {
	return fmt.Sprintf("command %q failed with exit status %d", e.Command, e.ExitCode)
}

// Runner executes external commands with the current process's privileges.
type Runner interface {
	// Run executes the command, streaming its output to the runner's
	// configured writers, and returns a *CommandError on nonzero exit.
	Run(ctx context.Context, cmd Command) error

	// Output executes the command and returns its combined output. Used for
	// read-only query commands (environment listings, toolchain checks).
	Output(ctx context.Context, cmd Command) (string, error)
}

// ExecRunner runs commands on the host via os/exec.
type ExecRunner struct {
	log    *zap.Logger
	stdout io.Writer
	stderr io.Writer
	stdin  io.Reader
}

// NewExecRunner returns a runner that streams command output to the process
// stdout/stderr and forwards stdin so interactive installers keep working.
func NewExecRunner(log *zap.Logger) *ExecRunner {
	if log == nil {
		log = zap.NewNop()
	}
	return &ExecRunner{
		log:    log,
		stdout: os.Stdout,
		stderr: os.Stderr,
		stdin:  os.Stdin,
	}
}

// WithOutput redirects streamed command output, e.g. while a TUI owns the
// terminal.
func (r *ExecRunner) WithOutput(stdout, stderr io.Writer) *ExecRunner {
	r.stdout = stdout
	r.stderr = stderr
	return r
}

// Run executes the command and blocks until it completes.
func (r *ExecRunner) Run(ctx context.Context, cmd Command) error {
	r.log.Debug("running command", zap.String("command", cmd.String()))

	// #nosec G204 - commands are assembled from the static catalog, not user input
	c := exec.CommandContext(ctx, cmd.Path, cmd.Args...)
	c.Stdout = r.stdout
	c.Stderr = r.stderr
	c.Stdin = r.stdin

	if err := c.Run(); err != nil {
		cmdErr := &CommandError{Command: cmd.String(), ExitCode: exitCode(err)}
		r.log.Debug("command failed",
			zap.String("command", cmd.String()),
			zap.Int("exit_code", cmdErr.ExitCode))
		return cmdErr
	}
	return nil
}

// Output executes the command and captures combined stdout and stderr.
func (r *ExecRunner) Output(ctx context.Context, cmd Command) (string, error) {
	r.log.Debug("querying command", zap.String("command", cmd.String()))

	// #nosec G204 - commands are assembled from the static catalog, not user input
	c := exec.CommandContext(ctx, cmd.Path, cmd.Args...)
	out, err := c.CombinedOutput()
	if err != nil {
		return string(out), &CommandError{
			Command:  cmd.String(),
			ExitCode: exitCode(err),
			Output:   string(out),
		}
	}
	return string(out), nil
}

// exitCode extracts the process exit status, or -1 when the command never
// started.
func exitCode(err error) int {
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return exitErr.ExitCode()
	}
	return -1
}
