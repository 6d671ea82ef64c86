// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"net/url"
	"strings"
)

// validate checks that the final merged [StructuredConfig] satisfies all
// required settings before it is used at startup.
//
// Returns nil if the configuration is valid, or an error wrapping one of the
// ErrInvalid* sentinels otherwise.
func (cfg *StructuredConfig) validate() error {
	if cfg.Server.HTTPAddress == "" {
		return ErrInvalidServerConfigs
	}

	if cfg.Adapter.HTTPAddress == "" || cfg.Adapter.RequestTimeout <= 0 {
		return ErrInvalidAdapterConfigs
	}
	u, err := url.Parse(cfg.Adapter.HTTPAddress)
	if err != nil || u.Host == "" || (u.Scheme != "http" && u.Scheme != "https") {
		return fmt.Errorf("%w: backend address %q must be an absolute http(s) URL", ErrInvalidAdapterConfigs, cfg.Adapter.HTTPAddress)
	}

	switch strings.ToLower(cfg.Session.Store) {
	case SessionStoreMemory:
	case SessionStoreRedis:
		if cfg.Session.Redis.Address == "" {
			return fmt.Errorf("%w: redis store requires an address", ErrInvalidSessionConfigs)
		}
	default:
		return fmt.Errorf("%w: unknown store %q", ErrInvalidSessionConfigs, cfg.Session.Store)
	}
	if cfg.Session.CookieName == "" || cfg.Session.TTL <= 0 {
		return ErrInvalidSessionConfigs
	}

	if cfg.Auth.CookieName == "" || cfg.Auth.TokenTTL <= 0 {
		return ErrInvalidAuthConfigs
	}

	if cfg.Upload.MaxSize <= 0 {
		return ErrInvalidUploadConfigs
	}

	return nil
}
