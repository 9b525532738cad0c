// Copyright 2021 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package httpserver

import (
	"context"
	"io"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_newSettings(t *testing.T) {
	t.Parallel()

	settings := newSettings([]Option{
		Address("127.0.0.1:0"),
		ShutdownTimeout(time.Second),
	})

	assert.Equal(t, "http", settings.name)
	assert.Equal(t, "127.0.0.1:0", settings.address)
	assert.NotNil(t, settings.handler)
	assert.Equal(t, noopLogger{}, settings.logger)
	assert.Zero(t, settings.writeTimeout)
	assert.Equal(t, 10*time.Second, settings.readTimeout)
	assert.Equal(t, time.Second, settings.readHeaderTimeout)
	assert.Equal(t, time.Second, settings.shutdownTimeout)
}

func Test_Server_Run(t *testing.T) {
	t.Parallel()

	mux := http.NewServeMux()
	mux.HandleFunc("/ping", func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte("pong"))
	})
	server := New(Address("127.0.0.1:0"), Handler(mux))

	ctx, cancel := context.WithCancel(context.Background())
	ready := make(chan struct{})
	done := make(chan error)
	go server.Run(ctx, ready, done)
	<-ready

	response, err := http.Get("http://" + server.GetAddress() + "/ping")
	require.NoError(t, err)
	body, err := io.ReadAll(response.Body)
	require.NoError(t, err)
	require.NoError(t, response.Body.Close())
	assert.Equal(t, "pong", string(body))

	cancel()
	assert.NoError(t, <-done)
}

func Test_Server_Run_listenError(t *testing.T) {
	t.Parallel()

	server := New(Address("invalid address"))
	ready := make(chan struct{})
	done := make(chan error)
	go server.Run(context.Background(), ready, done)

	assert.Error(t, <-done)
}
