// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package handler

import "errors"

var (
	// errNoHandlersAreCreated is returned by NewHandlers when the server
	// configuration names no HTTP address, leaving nothing to serve. The
	// application treats it as a fatal misconfiguration.
	errNoHandlersAreCreated = errors.New("no handlers are created")

	errNoServices       = errors.New("services are not initialized")
	errNoSessionManager = errors.New("session manager is not initialized")
	errNoRenderer       = errors.New("page renderer is not initialized")
)
