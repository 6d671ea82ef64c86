// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package workers holds the background workers running next to the HTTP
// server.
package workers

import "context"

// Worker is a background job. Run blocks until ctx is cancelled; a returned
// error stops the application.
type Worker interface {
	Run(ctx context.Context) error
}

// Sweeper drops expired entries and reports how many were removed.
type Sweeper interface {
	Sweep() int
}
