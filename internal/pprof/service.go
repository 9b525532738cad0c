// Copyright 2021 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package pprof

import (
	"context"
	"errors"
	"runtime"

	"github.com/ChainSafe/aurabridge/internal/httpserver"
)

// Runner runs until its context is canceled.
type Runner interface {
	Run(ctx context.Context, ready chan<- struct{}, done chan<- error)
}

// Service is a pprof http server service compatible with the
// lib/services Service interface.
type Service struct {
	settings Settings
	server   Runner
	address  func() string
	cancel   context.CancelFunc
	done     chan error
}

// NewService creates a pprof server service.
func NewService(settings Settings, logger httpserver.Infoer) *Service {
	settings.setDefaults()
	server := NewServer(settings.ListeningAddress, logger)
	return &Service{
		settings: settings,
		server:   server,
		address:  server.GetAddress,
		done:     make(chan error),
	}
}

// ErrServerDoneBeforeReady is returned by Start if the server stops before listening.
var ErrServerDoneBeforeReady = errors.New("server terminated before being ready")

// Start starts the pprof server service.
func (s *Service) Start() (err error) {
	runtime.SetBlockProfileRate(s.settings.BlockProfileRate)
	runtime.SetMutexProfileFraction(s.settings.MutexProfileRate)

	ctx, cancel := context.WithCancel(context.Background())
	s.cancel = cancel
	ready := make(chan struct{})

	go s.server.Run(ctx, ready, s.done)

	select {
	case <-ready:
		return nil
	case err := <-s.done:
		close(s.done)
		if err != nil {
			return err
		}
		return ErrServerDoneBeforeReady
	}
}

// Address returns the address the server listens on, once started.
func (s *Service) Address() string {
	return s.address()
}

// Stop stops the pprof server service.
func (s *Service) Stop() (err error) {
	s.cancel()
	return <-s.done
}
