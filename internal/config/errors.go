// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "errors"

// Validation errors returned by [StructuredConfig.validate] when required
// configuration groups are incomplete or invalid.
var (
	// ErrInvalidServerConfigs indicates invalid inbound server settings
	// (for example, a missing listen address).
	ErrInvalidServerConfigs = errors.New("invalid server configuration")
	// ErrInvalidAdapterConfigs indicates invalid backend adapter settings
	// (for example, missing backend address or request timeout).
	ErrInvalidAdapterConfigs = errors.New("invalid adapter configuration")
	// ErrInvalidSessionConfigs indicates invalid session settings
	// (for example, an unknown store or a redis store without address).
	ErrInvalidSessionConfigs = errors.New("invalid session configuration")
	// ErrInvalidAuthConfigs indicates invalid auth cookie settings.
	ErrInvalidAuthConfigs = errors.New("invalid auth configuration")
	// ErrInvalidUploadConfigs indicates invalid upload limits.
	ErrInvalidUploadConfigs = errors.New("invalid upload configuration")
)
