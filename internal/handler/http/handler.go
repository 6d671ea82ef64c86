// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"time"

	"github.com/MKhiriev/cardify/internal/config"
	"github.com/MKhiriev/cardify/internal/logger"
	"github.com/MKhiriev/cardify/internal/service"
	"github.com/MKhiriev/cardify/internal/session"
	"github.com/MKhiriev/cardify/internal/view"
)

// Handler owns the collaborators shared by every route.
type Handler struct {
	services *service.Services
	sessions *session.Manager
	views    view.Renderer

	// authCookieName names the httpOnly cookie carrying the backend token.
	authCookieName string
	tokenTTL       time.Duration
	tokenSignKey   string

	// secureCookies marks cookies Secure outside local environments.
	secureCookies  bool
	debugEndpoints bool

	uploadMaxSize int64
	uploadTempDir string

	logger *logger.Logger
}

// NewHandler builds a Handler from the already wired services, session
// manager and page renderer.
func NewHandler(services *service.Services, sessions *session.Manager, views view.Renderer, cfg config.StructuredConfig, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services:       services,
		sessions:       sessions,
		views:          views,
		authCookieName: cfg.Auth.CookieName,
		tokenTTL:       cfg.Auth.TokenTTL,
		tokenSignKey:   cfg.Auth.TokenSignKey,
		secureCookies:  !cfg.App.IsLocal(),
		debugEndpoints: cfg.App.DebugEndpointsEnabled(),
		uploadMaxSize:  cfg.Upload.MaxSize,
		uploadTempDir:  cfg.Upload.TempDir,
		logger:         logger,
	}
}
