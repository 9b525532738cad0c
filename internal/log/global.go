// Copyright 2021 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package log

var globalLogger = New()

// NewFromGlobal creates a child logger from the global logger.
func NewFromGlobal(options ...Option) *Logger {
	return globalLogger.New(options...)
}

// Patch patches the global package logger and all loggers
// created with NewFromGlobal.
func Patch(options ...Option) {
	globalLogger.Patch(options...)
}

// PatchLevel patches the global package logger level.
func PatchLevel(level Level) {
	globalLogger.PatchLevel(level)
}
