// Copyright 2021 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package httpserver

import (
	"net/http"
	"time"
)

const (
	defaultName              = "http"
	defaultReadTimeout       = 10 * time.Second
	defaultReadHeaderTimeout = time.Second
	defaultShutdownTimeout   = 3 * time.Second
)

// Option is a functional option for the HTTP server.
type Option func(s *settings)

type settings struct {
	name              string
	address           string
	handler           http.Handler
	logger            Infoer
	readTimeout       time.Duration
	readHeaderTimeout time.Duration
	writeTimeout      time.Duration
	shutdownTimeout   time.Duration
}

func newSettings(options []Option) (s settings) {
	for _, option := range options {
		option(&s)
	}

	if s.name == "" {
		s.name = defaultName
	}
	if s.handler == nil {
		s.handler = http.NewServeMux()
	}
	if s.logger == nil {
		s.logger = noopLogger{}
	}
	if s.readTimeout == 0 {
		s.readTimeout = defaultReadTimeout
	}
	if s.readHeaderTimeout == 0 {
		s.readHeaderTimeout = defaultReadHeaderTimeout
	}
	if s.shutdownTimeout == 0 {
		s.shutdownTimeout = defaultShutdownTimeout
	}
	return s
}

// Name sets the server name used in the logs. It defaults to "http".
func Name(name string) Option {
	return func(s *settings) {
		s.name = name
	}
}

// Address sets the listening address. The empty address
// listens on a port assigned by the OS.
func Address(address string) Option {
	return func(s *settings) {
		s.address = address
	}
}

// Handler sets the http handler of the server.
// It defaults to an empty mux.
func Handler(handler http.Handler) Option {
	return func(s *settings) {
		s.handler = handler
	}
}

// Infoer logs information messages at the info level.
type Infoer interface {
	Info(message string)
}

// Logger sets the logger of the server. Nothing is logged by default.
func Logger(logger Infoer) Option {
	return func(s *settings) {
		s.logger = logger
	}
}

// ReadTimeout sets the request read timeout, 10 seconds by default.
func ReadTimeout(timeout time.Duration) Option {
	return func(s *settings) {
		s.readTimeout = timeout
	}
}

// ReadHeaderTimeout sets the request header read timeout, 1 second by default.
func ReadHeaderTimeout(timeout time.Duration) Option {
	return func(s *settings) {
		s.readHeaderTimeout = timeout
	}
}

// WriteTimeout sets the response write timeout. There is none by default,
// since profiles are streamed for as long as requested.
func WriteTimeout(timeout time.Duration) Option {
	return func(s *settings) {
		s.writeTimeout = timeout
	}
}

// ShutdownTimeout sets the graceful shutdown timeout, 3 seconds by default.
func ShutdownTimeout(timeout time.Duration) Option {
	return func(s *settings) {
		s.shutdownTimeout = timeout
	}
}

type noopLogger struct{}

func (noopLogger) Info(string) {}
