// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "time"

// Default values applied to every field no other source has set.
const (
	DefaultAppEnv                = "development"
	DefaultLogLevel              = "info"
	DefaultHTTPAddress           = ":3003"
	DefaultServerRequestTimeout  = 60 * time.Second
	DefaultServerShutdownTimeout = 10 * time.Second
	DefaultAdapterRequestTimeout = 15 * time.Second
	DefaultSessionCookieName     = "cardify.sid"
	DefaultSessionTTL            = 24 * time.Hour
	DefaultRedisPrefix           = "session:"
	DefaultAuthCookieName        = "accessToken"
	DefaultAuthTokenTTL          = 15 * time.Minute
	DefaultUploadMaxSize         = 5 << 20
)

func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			Env:      DefaultAppEnv,
			LogLevel: DefaultLogLevel,
		},
		Server: Server{
			HTTPAddress:     DefaultHTTPAddress,
			RequestTimeout:  DefaultServerRequestTimeout,
			ShutdownTimeout: DefaultServerShutdownTimeout,
		},
		Adapter: Adapter{
			RequestTimeout: DefaultAdapterRequestTimeout,
		},
		Session: Session{
			Store:      SessionStoreMemory,
			CookieName: DefaultSessionCookieName,
			TTL:        DefaultSessionTTL,
			Redis: Redis{
				Prefix: DefaultRedisPrefix,
			},
		},
		Auth: Auth{
			CookieName: DefaultAuthCookieName,
			TokenTTL:   DefaultAuthTokenTTL,
		},
		Upload: Upload{
			MaxSize: DefaultUploadMaxSize,
		},
	}
}
