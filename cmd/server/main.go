// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/MKhiriev/cardify/internal/adapter"
	"github.com/MKhiriev/cardify/internal/config"
	"github.com/MKhiriev/cardify/internal/handler"
	"github.com/MKhiriev/cardify/internal/logger"
	"github.com/MKhiriev/cardify/internal/server"
	"github.com/MKhiriev/cardify/internal/service"
	"github.com/MKhiriev/cardify/internal/session"
	"github.com/MKhiriev/cardify/internal/view"
	"github.com/MKhiriev/cardify/internal/workers"
	"github.com/MKhiriev/cardify/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

const (
	appRole              = "cardify"
	sessionSweepInterval = time.Minute
	redisPingTimeout     = 5 * time.Second
)

func main() {
	printBuildInfo()

	cfg, err := config.GetStructuredConfig(os.Args[1:])
	if err != nil {
		logger.NewLogger(appRole, config.DefaultLogLevel).Fatal().Err(err).Msg("error getting configs")
	}

	log := logger.NewLogger(appRole, cfg.App.LogLevel)
	log.Debug().
		Str("env", cfg.App.Env).
		Str("address", cfg.Server.HTTPAddress).
		Str("backend", cfg.Adapter.HTTPAddress).
		Str("session_store", cfg.Session.Store).
		Bool("debug_endpoints", cfg.App.DebugEndpointsEnabled()).
		Msg("received configs")

	store, tasks, closeStore, err := newSessionStore(cfg.Session, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating session store")
	}
	defer closeStore()

	gateway, err := adapter.NewHTTPGateway(cfg.Adapter, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating backend gateway")
	}

	services, err := service.NewServices(gateway, models.NewAppBuildInfo(buildVersion, buildDate, buildCommit), log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating services")
	}

	views, err := view.NewTemplateRenderer(log)
	if err != nil {
		log.Fatal().Err(err).Msg("error parsing page templates")
	}

	sessions := session.NewManager(store, cfg.Session, !cfg.App.IsLocal())

	handlers, err := handler.NewHandlers(services, sessions, views, *cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(handlers, cfg.Server, log, tasks...)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	if err = srv.RunServer(context.Background()); err != nil {
		log.Error().Err(err).Msg("server stopped with error")
		closeStore()
		os.Exit(1)
	}
}

// newSessionStore builds the configured session store together with the
// background tasks it needs and a close function.
func newSessionStore(cfg config.Session, log *logger.Logger) (session.Store, []server.BackgroundTask, func(), error) {
	switch strings.ToLower(cfg.Store) {
	case config.SessionStoreRedis:
		client := session.NewRedisClient(cfg.Redis)

		ctx, cancel := context.WithTimeout(context.Background(), redisPingTimeout)
		defer cancel()
		if err := client.Ping(ctx).Err(); err != nil {
			_ = client.Close()
			return nil, nil, nil, fmt.Errorf("ping redis at %s: %w", cfg.Redis.Address, err)
		}

		log.Info().Str("address", cfg.Redis.Address).Msg("using redis session store")
		closeFn := func() {
			if err := client.Close(); err != nil {
				log.Warn().Err(err).Msg("closing redis client")
			}
		}
		return session.NewRedisStore(client, cfg.Redis.Prefix), nil, closeFn, nil

	default:
		store := session.NewMemoryStore()
		sweeper := workers.NewSessionSweeper(store, sessionSweepInterval, log)

		log.Info().Msg("using in-memory session store")
		return store, []server.BackgroundTask{sweeper.Run}, func() {}, nil
	}
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}

	if buildDate == "" {
		buildDate = "N/A"
	}

	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}
