// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import "context"

// Server defines the lifecycle contract of the application server.
type Server interface {
	// RunServer serves requests until ctx is cancelled or SIGTERM, SIGINT or
	// SIGQUIT arrives, then shuts down gracefully. It returns the first
	// failure of the HTTP server or of a background task.
	RunServer(ctx context.Context) error
}

// BackgroundTask runs next to the HTTP server until ctx is cancelled. A
// returned error stops the whole server.
type BackgroundTask func(ctx context.Context) error
