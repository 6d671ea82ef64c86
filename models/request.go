// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "io"

// OutboundRequest describes one call to the backend API. It lives only for
// the duration of a single round trip.
type OutboundRequest struct {
	// Method is the HTTP method (GET, POST, DELETE...).
	Method string

	// Path is appended to the configured backend base URL.
	Path string

	// Token, when non-empty, is sent as "Authorization: Bearer <token>".
	Token string

	// Body is serialised as JSON. Ignored when Multipart is set.
	Body any

	// Multipart, when set, replaces the JSON body with a multipart form.
	Multipart *MultipartFile
}

// MultipartFile is a single file part of a multipart request.
type MultipartFile struct {
	Field    string
	FileName string
	Content  io.Reader
}
