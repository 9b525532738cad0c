// Copyright 2021 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package httpserver

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"sync"
)

// Server is an HTTP server implementation, which uses
// the HTTP handler provided.
type Server struct {
	address    string
	addressSet chan struct{}
	addressMu  sync.RWMutex
	settings   settings
}

// New creates a new HTTP server with the given options.
func New(options ...Option) *Server {
	settings := newSettings(options)
	return &Server{
		address:    settings.address,
		addressSet: make(chan struct{}),
		settings:   settings,
	}
}

// Run runs the HTTP server until ctx is canceled.
// The ready channel is closed once the server listens,
// and the done channel receives the error of the server, if any.
func (s *Server) Run(ctx context.Context, ready chan<- struct{}, done chan<- error) {
	server := http.Server{
		Addr:              s.address,
		Handler:           s.settings.handler,
		ReadTimeout:       s.settings.readTimeout,
		ReadHeaderTimeout: s.settings.readHeaderTimeout,
		WriteTimeout:      s.settings.writeTimeout,
	}

	listener, err := net.Listen("tcp", s.address)
	if err != nil {
		close(s.addressSet)
		done <- fmt.Errorf("listening on %s: %w", s.address, err)
		return
	}

	s.addressMu.Lock()
	s.address = listener.Addr().String()
	s.addressMu.Unlock()
	close(s.addressSet)

	shutdownDone := make(chan struct{})
	go func() {
		defer close(shutdownDone)
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), s.settings.shutdownTimeout)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			s.settings.logger.Info(s.settings.name + " http server shutdown error: " + err.Error())
		}
	}()

	s.settings.logger.Info(s.settings.name + " http server listening on " + s.GetAddress())
	close(ready)

	err = server.Serve(listener)
	if errors.Is(err, http.ErrServerClosed) {
		<-shutdownDone
		err = nil
	}
	done <- err
}

// GetAddress returns the address the server listens on.
// It blocks until the server listens.
func (s *Server) GetAddress() (address string) {
	<-s.addressSet
	s.addressMu.RLock()
	defer s.addressMu.RUnlock()
	return s.address
}
