// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package logging builds the zap logger used for diagnostics. Diagnostics
// always go to stderr so stdout carries only extracted values.
package logging

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// New returns a development console logger at debug level when verbose is
// set, and a no-op logger otherwise.
func New(verbose bool) (*zap.Logger, error) {
	if !verbose {
		return zap.NewNop(), nil
	}

	config := zap.NewDevelopmentConfig()
	config.OutputPaths = []string{"stderr"}
	config.ErrorOutputPaths = []string{"stderr"}
	config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	config.DisableStacktrace = true
	config.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	return config.Build()
}

// Sync flushes log, ignoring the error returned when stderr is a terminal
// or pipe that does not support fsync.
func Sync(log *zap.Logger) {
	if log != nil {
		_ = log.Sync()
	}
}
