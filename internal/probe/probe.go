// Package probe implements read-only checks against the host environment.
//
// A probe answers one question: is this prerequisite already satisfied? Probes
// never mutate the host. When the underlying query cannot be completed (the
// package manager is not installed yet, the command fails), the probe reports
// "not satisfied" instead of an error; the caller then proceeds with its
// idempotent install.
package probe

import (
	"context"
	"os/exec"
	"strings"

	"github.com/imamik/devsetup/internal/runner"
	"github.com/imamik/devsetup/internal/shellrc"
)

// CommandExists reports whether a binary with the given name is on PATH.
func CommandExists(name string) bool {
	_, err := exec.LookPath(name)
	return err == nil
}

// CommandSucceeds runs a read-only query command and reports whether it
// exited zero. Used for checks that have no PATH presence to test, like
// `xcode-select -p` for the command-line toolchain.
func CommandSucceeds(ctx context.Context, r runner.Runner, cmd runner.Command) bool {
	_, err := r.Output(ctx, cmd)
	return err == nil
}

// ProfileContains reports whether the shell profile at path already carries
// the marker substring. A missing profile satisfies nothing.
func ProfileContains(path, marker string) bool {
	present, err := shellrc.Contains(path, marker)
	if err != nil {
		return false
	}
	return present
}

// CondaEnvExists reports whether a conda environment with the given name
// exists, by parsing `conda env list`. Any failure to run or parse the
// listing reports false, so a missing conda installation reads as "no
// environments yet".
func CondaEnvExists(ctx context.Context, r runner.Runner, env string) bool {
	out, err := r.Output(ctx, runner.CondaEnvList())
	if err != nil {
		return false
	}

	for _, line := range strings.Split(out, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) > 0 && fields[0] == env {
			return true
		}
	}
	return false
}
