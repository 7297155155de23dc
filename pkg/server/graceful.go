// Package server wraps the HTTP server with signal-driven graceful
// shutdown.
package server

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/causify-ai/sentinel-kg/pkg/logging"
)

// GracefulServer runs an http.Server and drains it cleanly on SIGINT or
// SIGTERM.
type GracefulServer struct {
	server       *http.Server
	log          logging.Logger
	shutdownOnce sync.Once
}

// NewGracefulServer creates a server on addr with sane timeouts.
func NewGracefulServer(addr string, handler http.Handler, log logging.Logger) *GracefulServer {
	return &GracefulServer{
		server: &http.Server{
			Addr:           addr,
			Handler:        handler,
			ReadTimeout:    15 * time.Second,
			WriteTimeout:   30 * time.Second,
			IdleTimeout:    60 * time.Second,
			MaxHeaderBytes: 1 << 20,
		},
		log: log,
	}
}

// Start serves until the listener fails or a shutdown signal arrives.
func (gs *GracefulServer) Start() error {
	go gs.handleSignals()

	gs.log.Info("http server listening", logging.String("addr", gs.server.Addr))
	if err := gs.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// Shutdown drains in-flight requests within timeout.
func (gs *GracefulServer) Shutdown(timeout time.Duration) error {
	var err error
	gs.shutdownOnce.Do(func() {
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()

		gs.log.Info("shutting down", logging.String("timeout", timeout.String()))
		if shutdownErr := gs.server.Shutdown(ctx); shutdownErr != nil {
			err = shutdownErr
		}
	})
	return err
}

func (gs *GracefulServer) handleSignals() {
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	sig := <-sigCh
	gs.log.Info("signal received", logging.String("signal", sig.String()))
	if err := gs.Shutdown(30 * time.Second); err != nil {
		gs.log.Error("shutdown failed", logging.Err(err))
		os.Exit(1)
	}
}
