// Capital Recommender - UK Business Funding Recommendation Engine
// Copyright 2026 Sotiris Spyrou (sotirisspyrou-uk)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/sotirisspyrou-uk/capital-recommender

package supervisor

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"
)

// mockServer simulates http.Server lifecycle behavior.
type mockServer struct {
	listenErr    error
	shutdownErr  error
	shutdownDone chan struct{}
	release      chan struct{}
}

func newMockServer() *mockServer {
	return &mockServer{
		shutdownDone: make(chan struct{}, 1),
		release:      make(chan struct{}),
	}
}

func (m *mockServer) ListenAndServe() error {
	if m.listenErr != nil {
		return m.listenErr
	}
	<-m.release
	return http.ErrServerClosed
}

func (m *mockServer) Shutdown(_ context.Context) error {
	m.shutdownDone <- struct{}{}
	close(m.release)
	return m.shutdownErr
}

func TestHTTPServiceGracefulShutdown(t *testing.T) {
	srv := newMockServer()
	svc := NewHTTPService(srv, time.Second)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- svc.Serve(ctx) }()

	// Give the listener goroutine a moment to start, then shut down.
	time.Sleep(10 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		if !errors.Is(err, context.Canceled) {
			t.Errorf("Serve() error = %v, want context.Canceled", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("Serve() did not return after cancellation")
	}

	select {
	case <-srv.shutdownDone:
	default:
		t.Error("Shutdown was not called")
	}
}

func TestHTTPServiceListenFailure(t *testing.T) {
	srv := newMockServer()
	srv.listenErr = errors.New("address already in use")
	svc := NewHTTPService(srv, time.Second)

	err := svc.Serve(context.Background())
	if err == nil {
		t.Fatal("Serve() error = nil, want listen failure")
	}
	if !errors.Is(err, srv.listenErr) {
		t.Errorf("Serve() error = %v, want wrapped %v", err, srv.listenErr)
	}
}

func TestHTTPServiceShutdownFailure(t *testing.T) {
	srv := newMockServer()
	srv.shutdownErr = errors.New("connections still active")
	svc := NewHTTPService(srv, time.Second)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- svc.Serve(ctx) }()

	time.Sleep(10 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		if err == nil || errors.Is(err, context.Canceled) {
			t.Errorf("Serve() error = %v, want shutdown failure", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("Serve() did not return after cancellation")
	}
}

func TestHTTPServiceDefaultTimeout(t *testing.T) {
	svc := NewHTTPService(newMockServer(), 0)
	if svc.shutdownTimeout != 10*time.Second {
		t.Errorf("shutdownTimeout = %v, want 10s default", svc.shutdownTimeout)
	}
}

func TestHTTPServiceString(t *testing.T) {
	svc := NewHTTPService(newMockServer(), time.Second)
	if svc.String() != "http-server" {
		t.Errorf("String() = %q, want http-server", svc.String())
	}
}
