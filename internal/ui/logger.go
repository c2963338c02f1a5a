// Package ui provides the user-facing console logger.
//
// Install progress, warnings, and errors are printed with color so the
// relevant lines stand out between the raw output of the external installers.
package ui

import "github.com/fatih/color"

// Info prints informational messages in green.
var Info = color.New(color.FgGreen).PrintfFunc()

// Warn prints warnings (best-effort step failures, skipped work) in yellow.
var Warn = color.New(color.FgYellow).PrintfFunc()

// Error prints errors in red.
var Error = color.New(color.FgRed).PrintfFunc()

// Note prints post-install notes in cyan.
var Note = color.New(color.FgCyan).PrintfFunc()

// Plain prints without color.
var Plain = color.New().PrintfFunc()
