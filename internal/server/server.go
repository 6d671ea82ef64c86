// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import (
	"context"
	"fmt"
	"net"
	"os/signal"
	"syscall"
	"time"

	"github.com/MKhiriev/cardify/internal/config"
	"github.com/MKhiriev/cardify/internal/handler"
	"github.com/MKhiriev/cardify/internal/logger"
	"golang.org/x/sync/errgroup"
)

type server struct {
	httpServer      *httpServer
	tasks           []BackgroundTask
	shutdownTimeout time.Duration
	logger          *logger.Logger
}

// NewServer builds the server for handlers. tasks are started together with
// the HTTP server and stopped with it.
func NewServer(handlers *handler.Handlers, cfg config.Server, logger *logger.Logger, tasks ...BackgroundTask) (Server, error) {
	logger.Info().Msg("creating new server...")

	if handlers == nil {
		return nil, errNoHandlers
	}
	if cfg.HTTPAddress == "" || handlers.HTTP == nil {
		return nil, errNoServersAreCreated
	}

	shutdownTimeout := cfg.ShutdownTimeout
	if shutdownTimeout <= 0 {
		shutdownTimeout = config.DefaultServerShutdownTimeout
	}

	return &server{
		httpServer:      newHTTPServer(handlers.HTTP.Init(), cfg, logger),
		tasks:           tasks,
		shutdownTimeout: shutdownTimeout,
		logger:          logger,
	}, nil
}

func (s *server) RunServer(ctx context.Context) error {
	ctx, stop := signal.NotifyContext(ctx, syscall.SIGTERM, syscall.SIGINT, syscall.SIGQUIT)
	defer stop()

	ln, err := net.Listen("tcp", s.httpServer.server.Addr)
	if err != nil {
		return fmt.Errorf("listen on %s: %w", s.httpServer.server.Addr, err)
	}

	return s.run(ctx, ln)
}

func (s *server) run(ctx context.Context, ln net.Listener) error {
	group, gctx := errgroup.WithContext(ctx)

	s.logger.Info().Msg("Launching HTTP server")
	group.Go(func() error {
		return s.httpServer.serve(ln)
	})

	for _, task := range s.tasks {
		group.Go(func() error {
			return task(gctx)
		})
	}

	// stop signal, cancelled parent or a failed member
	group.Go(func() error {
		<-gctx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), s.shutdownTimeout)
		defer cancel()
		return s.httpServer.Shutdown(shutdownCtx)
	})

	if err := group.Wait(); err != nil {
		return err
	}

	s.logger.Info().Msg("server Shutdown gracefully")
	return nil
}
