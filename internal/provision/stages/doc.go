// Package stages defines the concrete provisioning stages: the power-check
// confirmation gate, the command-line toolchain prerequisite, the Homebrew
// bootstrap, and the generic catalog-driven stack stage.
package stages
