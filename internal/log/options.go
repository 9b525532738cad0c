// Copyright 2021 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package log

import (
	"io"
	"os"
)

// Format is the output format of the logger.
type Format uint8

const (
	// FormatConsole is the human readable console format.
	FormatConsole Format = iota
	// FormatJSON writes one JSON object per line.
	FormatJSON
)

// Option is the type to specify settings modifier
// for the logger operation.
type Option func(s *settings)

// SetLevel sets the level for the logger.
// The level defaults to info.
func SetLevel(level Level) Option {
	return func(s *settings) {
		s.level = &level
	}
}

// SetFormat set the format for the logger.
// The format defaults to FormatConsole.
func SetFormat(format Format) Option {
	return func(s *settings) {
		s.format = &format
	}
}

// SetWriter set the writer for the logger.
// The writer defaults to os.Stdout.
func SetWriter(writer io.Writer) Option {
	return func(s *settings) {
		s.writer = writer
	}
}

// SetColour enables or disables level colouring in the console format.
// Colours are disabled by default.
func SetColour(enabled bool) Option {
	return func(s *settings) {
		s.colour = &enabled
	}
}

// AddContext adds the context for the logger as a key values pair.
// It adds them in order. If a key already exists, the value is added to the
// existing values.
func AddContext(key, value string) Option {
	return func(s *settings) {
		for i := range s.context {
			if s.context[i].key == key {
				s.context[i].values = append(s.context[i].values, value)
				return
			}
		}
		newKV := contextKeyValues{key: key, values: []string{value}}
		s.context = append(s.context, newKV)
	}
}

type contextKeyValues struct {
	key    string
	values []string
}

type settings struct {
	level   *Level
	format  *Format
	colour  *bool
	writer  io.Writer
	context []contextKeyValues
}

func newSettings(options []Option) (s settings) {
	for _, option := range options {
		option(&s)
	}
	return s
}

// mergeWith sets values of other in s when they are set,
// and appends the context of other to the context of s.
func (s *settings) mergeWith(other settings) {
	if other.level != nil {
		level := *other.level
		s.level = &level
	}

	if other.format != nil {
		format := *other.format
		s.format = &format
	}

	if other.colour != nil {
		colour := *other.colour
		s.colour = &colour
	}

	if other.writer != nil {
		s.writer = other.writer
	}

	for _, kv := range other.context {
		values := make([]string, len(kv.values))
		copy(values, kv.values)
		s.context = append(s.context, contextKeyValues{key: kv.key, values: values})
	}
}

func (s *settings) setDefaults() {
	if s.level == nil {
		level := Info
		s.level = &level
	}

	if s.format == nil {
		format := FormatConsole
		s.format = &format
	}

	if s.colour == nil {
		colour := false
		s.colour = &colour
	}

	if s.writer == nil {
		s.writer = os.Stdout
	}
}
