package http

import (
	"context"
	"testing"
	"time"

	"aevonx/internal/config"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/require"
)

func TestStart_GracefulShutdownOnCtxCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan error, 1)
	go func() {
		done <- Start(ctx, config.HTTPServer{Port: "0", ShutdownTimeoutSeconds: 1}, chi.NewRouter())
	}()

	// Give the listener a moment to come up, then trigger shutdown.
	time.Sleep(50 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(3 * time.Second):
		t.Fatal("expected server to shut down after ctx cancel")
	}
}

func TestStart_BadPortReturnsError(t *testing.T) {
	err := Start(context.Background(), config.HTTPServer{Port: "no-such-port"}, chi.NewRouter())
	require.Error(t, err)
}
