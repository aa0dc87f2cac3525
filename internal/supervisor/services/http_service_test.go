// CineMatch - Movie Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinematch

package services

import (
	"context"
	"errors"
	"net/http"
	"sync/atomic"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/thejerf/suture/v4"
)

// fakeServer stands in for *http.Server.
type fakeServer struct {
	listenErr   error
	shutdownErr error
	block       bool

	listens   atomic.Int32
	shutdowns atomic.Int32
	started   chan struct{}
	stop      chan struct{}
}

func newFakeServer(block bool) *fakeServer {
	return &fakeServer{
		block:   block,
		started: make(chan struct{}, 1),
		stop:    make(chan struct{}),
	}
}

func (f *fakeServer) ListenAndServe() error {
	f.listens.Add(1)
	select {
	case f.started <- struct{}{}:
	default:
	}
	if f.listenErr != nil {
		return f.listenErr
	}
	if f.block {
		<-f.stop
		return http.ErrServerClosed
	}
	return nil
}

func (f *fakeServer) Shutdown(context.Context) error {
	if f.shutdowns.Add(1) == 1 {
		close(f.stop)
	}
	return f.shutdownErr
}

func waitStarted(t *testing.T, f *fakeServer) {
	t.Helper()
	select {
	case <-f.started:
	case <-time.After(time.Second):
		t.Fatal("server did not start")
	}
}

func TestNewHTTPServerService_DefaultTimeout(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   time.Duration
		want time.Duration
	}{
		{"explicit", 3 * time.Second, 3 * time.Second},
		{"zero", 0, 10 * time.Second},
		{"negative", -time.Second, 10 * time.Second},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			svc := NewHTTPServerService(newFakeServer(false), tt.in, zerolog.Nop())
			if svc.shutdownTimeout != tt.want {
				t.Errorf("shutdownTimeout = %v, want %v", svc.shutdownTimeout, tt.want)
			}
		})
	}
}

func TestHTTPServerService_GracefulShutdown(t *testing.T) {
	t.Parallel()

	server := newFakeServer(true)
	svc := NewHTTPServerService(server, time.Second, zerolog.Nop())

	ctx, cancel := context.WithCancel(context.Background())
	errCh := make(chan error, 1)
	go func() { errCh <- svc.Serve(ctx) }()

	waitStarted(t, server)
	cancel()

	select {
	case err := <-errCh:
		if !errors.Is(err, context.Canceled) {
			t.Errorf("Serve() = %v, want context.Canceled", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("Serve did not return after cancellation")
	}

	if server.listens.Load() != 1 || server.shutdowns.Load() != 1 {
		t.Errorf("listens=%d shutdowns=%d, want 1 each", server.listens.Load(), server.shutdowns.Load())
	}
}

func TestHTTPServerService_StartupFailure(t *testing.T) {
	t.Parallel()

	bindErr := errors.New("bind: address already in use")
	server := newFakeServer(false)
	server.listenErr = bindErr

	err := NewHTTPServerService(server, time.Second, zerolog.Nop()).Serve(context.Background())
	if !errors.Is(err, bindErr) {
		t.Errorf("Serve() = %v, want wrapped %v", err, bindErr)
	}
}

func TestHTTPServerService_ShutdownFailure(t *testing.T) {
	t.Parallel()

	shutdownErr := errors.New("shutdown timeout")
	server := newFakeServer(true)
	server.shutdownErr = shutdownErr
	svc := NewHTTPServerService(server, time.Second, zerolog.Nop())

	ctx, cancel := context.WithCancel(context.Background())
	errCh := make(chan error, 1)
	go func() { errCh <- svc.Serve(ctx) }()

	waitStarted(t, server)
	cancel()

	select {
	case err := <-errCh:
		if !errors.Is(err, shutdownErr) {
			t.Errorf("Serve() = %v, want %v", err, shutdownErr)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("Serve did not return")
	}
}

func TestHTTPServerService_UnderSupervisor(t *testing.T) {
	t.Parallel()

	server := newFakeServer(true)
	svc := NewHTTPServerService(server, time.Second, zerolog.Nop())
	if svc.String() != "http-server" {
		t.Errorf("String() = %q", svc.String())
	}

	sup := suture.New("test", suture.Spec{
		FailureThreshold: 3,
		FailureBackoff:   10 * time.Millisecond,
		Timeout:          2 * time.Second,
	})
	sup.Add(svc)

	ctx, cancel := context.WithCancel(context.Background())
	errCh := sup.ServeBackground(ctx)

	waitStarted(t, server)
	cancel()
	<-errCh

	if server.shutdowns.Load() < 1 {
		t.Error("Shutdown was not called")
	}
}
