// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package session keeps the server-side browser sessions of the cardify web
// front-end.
//
// A [Store] persists [models.Session] values by id. The [Manager] bridges a
// store and the session cookie: it loads the session named by the cookie
// (or starts a fresh one), saves it explicitly when a handler changed it and
// destroys it on logout. Sessions never change behind a handler's back; a
// value loaded at the start of a request is written back only through
// [Manager.Save].
package session

import (
	"context"
	"errors"

	"github.com/MKhiriev/cardify/models"
)

//go:generate mockgen -source=store.go -destination=../mock/session_store_mock.go -package=mock

// ErrNotFound is returned by [Store.Load] when no live session exists for
// the id.
var ErrNotFound = errors.New("session not found")

// ErrExpired is returned by [Store.Save] for a session whose expiry is
// already in the past.
var ErrExpired = errors.New("session is expired")

// ErrEmptyID is returned when a store operation needs an id and got none.
var ErrEmptyID = errors.New("session id cannot be empty")

// Store persists sessions by id. Implementations must be safe for concurrent
// use.
type Store interface {
	// Load returns the session stored under id with its ID field set, or
	// [ErrNotFound] when it is missing or expired.
	Load(ctx context.Context, id string) (models.Session, error)

	// Save stores sess under id until sess.ExpiresAt.
	Save(ctx context.Context, id string, sess models.Session) error

	// Delete removes the session stored under id. Deleting a missing session
	// is not an error.
	Delete(ctx context.Context, id string) error
}
