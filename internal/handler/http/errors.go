// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// Sentinel errors raised while reading a request, before any service runs.
// Callers can match against them with [errors.Is].
var (
	// ErrNoAccessToken is returned by the auth guard when the request carries
	// no access token cookie.
	ErrNoAccessToken = errors.New("no access token cookie")

	// ErrNoSession is returned when a handler runs without the session
	// middleware in front of it.
	ErrNoSession = errors.New("no session in request context")

	// ErrUnsupportedFileType is returned by the upload guard for files that
	// are not Excel workbooks.
	ErrUnsupportedFileType = errors.New("unsupported upload file type")

	// ErrFileTooLarge is returned by the upload guard when the file exceeds
	// the configured limit.
	ErrFileTooLarge = errors.New("upload file too large")
)
