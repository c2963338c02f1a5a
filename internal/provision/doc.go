// Package provision runs the staged environment-provisioning workflow.
//
// A run is a fixed, sequential pipeline of stages: power check, command-line
// toolchain, Homebrew bootstrap, then the user-selected stack. Every stage is
// idempotent, so the recovery path for any failure or interruption is simply
// re-running the binary. Stages share a Context carrying the catalog, the
// command runner, the prompter, and the observer; the Context's State tracks
// the run through its state machine.
package provision
