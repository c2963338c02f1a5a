// Package main is the entry point for the devsetup CLI.
//
// devsetup is an interactive installer that provisions a macOS development
// environment by orchestrating Homebrew, conda, pyenv, and nvm. Run with no
// arguments it asks a few questions and installs the selected stack; every
// step is idempotent, so re-running after a failure or interruption is safe.
//
// Commands: install (default), doctor, keygen, version, completion.
//
// For detailed usage information, run:
//
//	devsetup --help
package main

import (
	"fmt"
	"os"

	"github.com/imamik/devsetup/cmd/devsetup/commands"
)

// Version information set by goreleaser at build time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	commands.SetVersionInfo(version, commit, date)
	if err := commands.Root().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
