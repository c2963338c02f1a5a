// Package logging exposes a simple zap logger, with log levels.
//
// The diagnostic log is separate from the user-facing console output: it
// records every external command the runner executes and is silent by
// default.
package logging

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const (
	// LogLevelInfo sets the log level to info.
	LogLevelInfo = "info"

	// LogLevelDebug sets the log level to debug.
	LogLevelDebug = "debug"

	// LogLevelNone disables diagnostic logging. This is the default.
	LogLevelNone = "none"
)

// GetLogger returns a zap logger with the specified level. Output goes to
// stderr so it never interleaves with installer output on stdout.
func GetLogger(logLevel string) (*zap.Logger, error) {
	if logLevel == "" || logLevel == LogLevelNone {
		return zap.NewNop(), nil
	}
	zapConfig := zap.NewProductionConfig()
	zapConfig.OutputPaths = []string{"stderr"}
	var lvl zapcore.Level
	if err := lvl.UnmarshalText([]byte(logLevel)); err != nil {
		return nil, err
	}
	zapConfig.Level = zap.NewAtomicLevelAt(lvl)
	return zapConfig.Build()
}
