// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"strings"
	"time"
)

// Session store kinds accepted by [Session.Store].
const (
	SessionStoreMemory = "memory"
	SessionStoreRedis  = "redis"
)

// StructuredConfig is the top-level configuration container. It aggregates
// all sub-configurations and is populated by merging environment variables,
// command-line flags, an optional JSON file and defaults.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env: direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds application-level settings: environment name, log level and
	// the debug endpoints switch.
	App App `envPrefix:"APP_"`

	// Server holds network address and timeout settings for the inbound
	// HTTP server.
	Server Server `envPrefix:"SERVER_"`

	// Adapter holds the address of the backend API and the timeout applied
	// to every outbound call.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// Session holds the session store and session cookie settings.
	Session Session `envPrefix:"SESSION_"`

	// Auth holds the access token cookie settings.
	Auth Auth `envPrefix:"AUTH_"`

	// Upload holds the guest list upload limits.
	Upload Upload `envPrefix:"UPLOAD_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level configuration values.
type App struct {
	// Env is the deployment environment name ("production", "development",
	// "local", "test"...). Cookies are marked Secure outside local ones.
	// Env: APP_ENV
	Env string `env:"ENV"`

	// LogLevel is the minimum zerolog level ("debug", "info", "warn"...).
	// Env: APP_LOG_LEVEL
	LogLevel string `env:"LOG_LEVEL"`

	// DebugEndpoints enables /session-data and /cookie-data. When unset the
	// endpoints are enabled everywhere except production.
	// Env: APP_DEBUG_ENDPOINTS
	DebugEndpoints *bool `env:"DEBUG_ENDPOINTS"`
}

// IsLocal reports whether the application runs in a local or development
// environment.
func (a App) IsLocal() bool {
	switch strings.ToLower(strings.TrimSpace(a.Env)) {
	case "local", "dev", "development", "test":
		return true
	default:
		return false
	}
}

// IsProduction reports whether the application runs in production.
func (a App) IsProduction() bool {
	return strings.EqualFold(strings.TrimSpace(a.Env), "production")
}

// DebugEndpointsEnabled resolves the DebugEndpoints switch.
func (a App) DebugEndpointsEnabled() bool {
	if a.DebugEndpoints != nil {
		return *a.DebugEndpoints
	}
	return !a.IsProduction()
}

// Server holds network and timeout settings for the inbound transport layer.
type Server struct {
	// HTTPAddress is the TCP address on which the HTTP server listens,
	// in "host:port" format (e.g. "0.0.0.0:3003").
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout bounds reading a request and writing its response.
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// ShutdownTimeout bounds the graceful shutdown.
	// Env: SERVER_SHUTDOWN_TIMEOUT
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT"`
}

// Adapter holds configuration of the backend API client.
type Adapter struct {
	// HTTPAddress is the base URL of the backend API
	// (e.g. "https://api.example.com/api/v1").
	// Env: ADAPTER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout is the maximum duration of a single backend call.
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Session holds the server-side session settings.
type Session struct {
	// Store selects the session backend: "memory" or "redis".
	// Env: SESSION_STORE
	Store string `env:"STORE"`

	// CookieName is the name of the cookie carrying the session identifier.
	// Env: SESSION_COOKIE_NAME
	CookieName string `env:"COOKIE_NAME"`

	// TTL is the lifetime of a session after its last save.
	// Env: SESSION_TTL
	TTL time.Duration `env:"TTL"`

	// Redis holds the connection settings used when Store is "redis".
	Redis Redis `envPrefix:"REDIS_"`
}

// Redis holds connection settings for the redis session store.
type Redis struct {
	// Env: SESSION_REDIS_ADDRESS
	Address string `env:"ADDRESS"`
	// Env: SESSION_REDIS_PASSWORD
	Password string `env:"PASSWORD"`
	// Env: SESSION_REDIS_DB
	DB int `env:"DB"`
	// Prefix is prepended to every session key.
	// Env: SESSION_REDIS_PREFIX
	Prefix string `env:"PREFIX"`
}

// Auth holds the access token cookie settings. The token itself is issued
// by the backend.
type Auth struct {
	// CookieName is the name of the httpOnly cookie holding the token.
	// Env: AUTH_COOKIE_NAME
	CookieName string `env:"COOKIE_NAME"`

	// TokenTTL is the Max-Age given to the token cookie.
	// Env: AUTH_TOKEN_TTL
	TokenTTL time.Duration `env:"TOKEN_TTL"`

	// TokenSignKey, when set, lets the auth guard verify the HMAC signature
	// of the backend token. Without it only the expiry claim is checked.
	// Env: AUTH_TOKEN_SIGN_KEY
	TokenSignKey string `env:"TOKEN_SIGN_KEY"`
}

// Upload holds limits for the Excel guest list upload.
type Upload struct {
	// MaxSize is the maximum accepted file size in bytes.
	// Env: UPLOAD_MAX_SIZE
	MaxSize int64 `env:"MAX_SIZE"`

	// TempDir is where uploaded files are streamed before being forwarded.
	// Empty means os.TempDir().
	// Env: UPLOAD_TEMP_DIR
	TempDir string `env:"TEMP_DIR"`
}

// GetStructuredConfig loads, merges, and validates the application
// configuration from all available sources (see package documentation for
// the precedence rules).
//
// Returns a fully populated *StructuredConfig or an error if any source
// fails to load or the final config fails validation.
func GetStructuredConfig(args []string) (*StructuredConfig, error) {
	return newConfigBuilder().
		withDotEnv(".env", ".env.local").
		withEnv().
		withFlags(args).
		withJSON().
		withDefaults().
		build()
}
