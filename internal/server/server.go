package server

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/MKhiriev/go-db-journal/internal/config"
	"github.com/MKhiriev/go-db-journal/internal/logger"
	"github.com/MKhiriev/go-db-journal/internal/workers"
)

type server struct {
	httpServer      *httpServer
	background      workers.Worker
	shutdownTimeout time.Duration

	logger *logger.Logger
}

// NewServer combines an optional HTTP handler with optional background
// workers. At least one of them must be given.
func NewServer(
	handler http.Handler,
	background workers.Worker,
	cfg config.Server,
	shutdownTimeout time.Duration,
	logger *logger.Logger,
) (Server, error) {
	logger.Info().Msg("creating new server...")
	s := &server{
		background:      background,
		shutdownTimeout: shutdownTimeout,
		logger:          logger,
	}

	if handler != nil && cfg.HTTPAddress != "" {
		s.httpServer = newHTTPServer(handler, cfg, logger)
	}

	if s.httpServer == nil && s.background == nil {
		return nil, errNoServersAreCreated
	}

	return s, nil
}

func (s *server) RunServer(ctx context.Context) error {
	ctx, stop := signal.NotifyContext(ctx, syscall.SIGTERM, syscall.SIGINT, syscall.SIGQUIT)
	defer stop()

	if s.background != nil {
		s.logger.Info().Msg("Starting background workers")
		s.background.Start(ctx)
	}

	listenErr := make(chan error, 1)
	if s.httpServer != nil {
		s.logger.Info().Str("address", s.httpServer.server.Addr).Msg("Launching HTTP server")
		go func() {
			listenErr <- s.httpServer.RunServer()
		}()
	}

	var runErr error
	select {
	case <-ctx.Done():
		s.logger.Info().Msg("stop signal received")
	case runErr = <-listenErr:
	}

	shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), s.shutdownTimeout)
	defer cancel()

	err := errors.Join(runErr, s.Shutdown(shutdownCtx))
	if err == nil {
		s.logger.Info().Msg("server Shutdown gracefully")
	}
	return err
}

// Shutdown stops the listener first so no new writes are journaled while
// the workers drain.
func (s *server) Shutdown(ctx context.Context) error {
	var errs []error
	if s.httpServer != nil {
		if err := s.httpServer.Shutdown(ctx); err != nil {
			errs = append(errs, err)
		}
	}
	if s.background != nil {
		if err := s.background.Shutdown(ctx); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
