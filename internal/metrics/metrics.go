// Copyright 2022 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package metrics

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/ChainSafe/aurabridge/internal/httpserver"
	"github.com/ChainSafe/aurabridge/internal/log"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// DefaultAddress is the default listening address of the metrics server.
const DefaultAddress = "localhost:9876"

var logger = log.NewFromGlobal(log.AddContext("pkg", "metrics"))

// Server is a metrics http server
type Server struct {
	cancel context.CancelFunc
	server *httpserver.Server
	done   chan error
}

// NewServer is a constructor for metrics server
func NewServer(address string) (s *Server) {
	m := http.NewServeMux()
	m.Handle("/metrics", promhttp.Handler())
	return &Server{
		server: httpserver.New(
			httpserver.Address(address),
			httpserver.Handler(m),
			httpserver.Name("metrics"),
			httpserver.Logger(logger),
		),
	}
}

// Start will start a dedicated metrics server.
func (s *Server) Start() (err error) {
	ctx, cancel := context.WithCancel(context.Background())
	s.cancel = cancel
	ready := make(chan struct{})
	s.done = make(chan error)

	go s.server.Run(ctx, ready, s.done)

	select {
	case <-ready:
		logger.Infof("metrics server started at http://%s/metrics", s.server.GetAddress())
		return nil
	case err := <-s.done:
		close(s.done)
		if err != nil {
			return err
		}
		return fmt.Errorf("metrics server exited unexpectedly")
	}
}

// Address returns the address the server listens on.
func (s *Server) Address() string {
	return s.server.GetAddress()
}

// Stop will stop the metrics server
func (s *Server) Stop() (err error) {
	s.cancel()
	select {
	case err := <-s.done:
		close(s.done)
		if err != nil {
			return err
		}
		return nil
	case <-time.NewTimer(30 * time.Second).C:
		return fmt.Errorf("metrics server exit timeout")
	}
}
