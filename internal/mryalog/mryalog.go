/*
Package mryalog provides the interpreter's internal diagnostic logger,
separate from Mrya's user-facing output() builtin. It wraps zap the way a
CLI-shaped service would: human-readable console output by default, with a
level that can be raised for debugging the module loader or host modules.
*/
package mryalog

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// New builds a sugared logger writing level-colored, human-readable lines.
// debug enables zap.DebugLevel; otherwise the logger only emits Info+.
func New(debug bool) *zap.SugaredLogger {
	level := zap.InfoLevel
	if debug {
		level = zap.DebugLevel
	}
	cfg := zap.Config{
		Level:            zap.NewAtomicLevelAt(level),
		Development:      false,
		Encoding:         "console",
		EncoderConfig:    consoleEncoderConfig(),
		OutputPaths:      []string{"stderr"},
		ErrorOutputPaths: []string{"stderr"},
	}
	logger, err := cfg.Build()
	if err != nil {
		// Logger construction failing means stderr itself is unusable;
		// fall back to a no-op rather than aborting interpreter startup.
		return zap.NewNop().Sugar()
	}
	return logger.Sugar()
}

func consoleEncoderConfig() zapcore.EncoderConfig {
	cfg := zap.NewProductionEncoderConfig()
	cfg.TimeKey = "" // the REPL and CLI don't need timestamps on every line
	cfg.EncodeLevel = zapcore.CapitalColorLevelEncoder
	return cfg
}

// Nop returns a logger that discards everything, used by callers (like unit
// tests) that don't want diagnostic noise.
func Nop() *zap.SugaredLogger { return zap.NewNop().Sugar() }
