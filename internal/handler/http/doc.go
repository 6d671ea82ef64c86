// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package http implements the HTTP transport layer of the cardify web
// front-end.
//
// It exposes the chi routes, the page and JSON handlers and the middleware
// chain. Request tracing, access logging, session loading, the access token
// guard and the upload guard all run here before a request is delegated to
// the service layer. Every handler ends in exactly one of a rendered page,
// a JSON envelope or a redirect.
package http
