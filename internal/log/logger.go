// Copyright 2021 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package log

import (
	"fmt"
	"io"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog"
)

func init() {
	// filtering is done by each Logger, zerolog must let everything through.
	zerolog.SetGlobalLevel(zerolog.TraceLevel)
}

// LeveledLogger is the logger interface used by the packages of this module.
type LeveledLogger interface {
	Trace(s string)
	Debug(s string)
	Info(s string)
	Warn(s string)
	Error(s string)
	Critical(s string)
	Tracef(format string, args ...interface{})
	Debugf(format string, args ...interface{})
	Infof(format string, args ...interface{})
	Warnf(format string, args ...interface{})
	Errorf(format string, args ...interface{})
	Criticalf(format string, args ...interface{})
}

var _ LeveledLogger = (*Logger)(nil)

// Logger is the logger implementation structure.
// It is thread safe to use.
type Logger struct {
	settings settings
	backend  zerolog.Logger
	childs   []*Logger
	mutex    *sync.Mutex // pointer shared with child loggers
}

// New creates a new logger.
// It can only be called once per writer.
// If you want to create more loggers with different settings for the
// same writer, child loggers can be created using the New(options) method,
// to ensure thread safety on the same writer.
func New(options ...Option) *Logger {
	s := newSettings(options)
	s.setDefaults()

	return &Logger{
		settings: s,
		backend:  s.backend(),
		mutex:    new(sync.Mutex),
	}
}

// New creates a new thread safe child logger.
// The child inherits the settings of its parent, and the options
// given override them. Context key values are appended to the
// parent ones.
func (l *Logger) New(options ...Option) *Logger {
	l.mutex.Lock()
	defer l.mutex.Unlock()

	var s settings
	s.mergeWith(l.settings)
	s.mergeWith(newSettings(options))
	s.setDefaults()

	child := &Logger{
		settings: s,
		backend:  s.backend(),
		mutex:    l.mutex,
	}
	l.childs = append(l.childs, child)
	return child
}

// Patch patches the existing settings with any option given.
// This is thread safe and propagates to all child loggers.
func (l *Logger) Patch(options ...Option) {
	l.mutex.Lock()
	defer l.mutex.Unlock()

	l.patchWithoutLocking(options)
}

// PatchLevel patches the level of the logger and its children.
func (l *Logger) PatchLevel(level Level) {
	l.Patch(SetLevel(level))
}

func (l *Logger) patchWithoutLocking(options []Option) {
	l.settings.mergeWith(newSettings(options))
	l.backend = l.settings.backend()
	for _, child := range l.childs {
		child.patchWithoutLocking(options)
	}
}

func (l *Logger) log(level Level, s string) {
	l.mutex.Lock()
	defer l.mutex.Unlock()

	if *l.settings.level > level {
		return
	}

	l.backend.WithLevel(level.zerolog()).Msg(s)
}

// Trace logs with the trce level.
func (l *Logger) Trace(s string) { l.log(Trace, s) }

// Debug logs with the dbug level.
func (l *Logger) Debug(s string) { l.log(Debug, s) }

// Info logs with the info level.
func (l *Logger) Info(s string) { l.log(Info, s) }

// Warn logs with the warn level.
func (l *Logger) Warn(s string) { l.log(Warn, s) }

// Error logs with the eror level.
func (l *Logger) Error(s string) { l.log(Error, s) }

// Critical logs with the crit level.
func (l *Logger) Critical(s string) { l.log(Critical, s) }

// Tracef formats and logs at the trce level.
func (l *Logger) Tracef(format string, args ...interface{}) {
	l.log(Trace, fmt.Sprintf(format, args...))
}

// Debugf formats and logs at the dbug level.
func (l *Logger) Debugf(format string, args ...interface{}) {
	l.log(Debug, fmt.Sprintf(format, args...))
}

// Infof formats and logs at the info level.
func (l *Logger) Infof(format string, args ...interface{}) {
	l.log(Info, fmt.Sprintf(format, args...))
}

// Warnf formats and logs at the warn level.
func (l *Logger) Warnf(format string, args ...interface{}) {
	l.log(Warn, fmt.Sprintf(format, args...))
}

// Errorf formats and logs at the eror level.
func (l *Logger) Errorf(format string, args ...interface{}) {
	l.log(Error, fmt.Sprintf(format, args...))
}

// Criticalf formats and logs at the crit level.
func (l *Logger) Criticalf(format string, args ...interface{}) {
	l.log(Critical, fmt.Sprintf(format, args...))
}

func (s settings) backend() zerolog.Logger {
	var writer io.Writer = s.writer
	if *s.format == FormatConsole {
		colour := *s.colour
		writer = zerolog.ConsoleWriter{
			Out:        s.writer,
			NoColor:    !colour,
			TimeFormat: time.RFC3339,
			FormatLevel: func(i interface{}) string {
				name, _ := i.(string)
				level, ok := levelFromZerolog(name)
				if !ok {
					return "???"
				}
				if colour {
					return level.ColouredString()
				}
				return level.String()
			},
		}
	}

	ctx := zerolog.New(writer).With().Timestamp()
	for _, kv := range s.context {
		ctx = ctx.Str(kv.key, strings.Join(kv.values, ","))
	}
	return ctx.Logger()
}
