// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package handler

import (
	"github.com/MKhiriev/cardify/internal/config"
	"github.com/MKhiriev/cardify/internal/handler/http"
	"github.com/MKhiriev/cardify/internal/logger"
	"github.com/MKhiriev/cardify/internal/service"
	"github.com/MKhiriev/cardify/internal/session"
	"github.com/MKhiriev/cardify/internal/view"
)

// Handlers groups the transport handlers served by the application.
type Handlers struct {
	HTTP *http.Handler
}

// NewHandlers checks the collaborators shared by the transports and builds
// the HTTP handler when an HTTP address is configured.
func NewHandlers(services *service.Services, sessions *session.Manager, views view.Renderer, cfg config.StructuredConfig, logger *logger.Logger) (*Handlers, error) {
	logger.Info().Msg("creating new handlers...")

	switch {
	case services == nil:
		return nil, errNoServices
	case sessions == nil:
		return nil, errNoSessionManager
	case views == nil:
		return nil, errNoRenderer
	}

	handlers := &Handlers{}

	if cfg.Server.HTTPAddress != "" {
		handlers.HTTP = http.NewHandler(services, sessions, views, cfg, logger)
	}

	if handlers.HTTP == nil {
		return nil, errNoHandlersAreCreated
	}

	return handlers, nil
}
