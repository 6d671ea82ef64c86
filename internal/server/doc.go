// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package server runs the application's HTTP server.
//
// It owns the server lifecycle: listening, running background tasks such as
// the session sweeper next to the server, reacting to stop signals and
// shutting everything down gracefully.
package server
