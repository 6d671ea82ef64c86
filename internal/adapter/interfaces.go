// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the client side of the backend API used by the
// cardify web front-end.
//
// The primary abstraction is [Gateway], which decouples the service layer
// from the HTTP transport. Every call resolves to either a decoded
// [models.BackendResponse] or an *app.Error carrying the status and message
// that should reach the browser: transport failures become 500 "API request
// failed: <cause>", backend rejections keep the backend status and message.
package adapter

import (
	"context"

	"github.com/MKhiriev/cardify/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/gateway_mock.go -package=mock

// Gateway defines communication with the backend API. Implementations build
// the outbound request, attach the bearer token when one is given and
// classify the outcome.
type Gateway interface {
	// Do executes a single outbound request and classifies the response. It
	// is the primitive all typed operations are built on.
	Do(ctx context.Context, req models.OutboundRequest) (models.BackendResponse, error)

	// Register creates an organiser account. POST /auth/register.
	Register(ctx context.Context, payload models.AccountPayload) (models.BackendResponse, error)

	// Login authenticates an organiser and returns the backend user record
	// together with the issued token. POST /auth/login.
	Login(ctx context.Context, creds models.LoginRequest) (models.LoginResult, error)

	// SecurityRegister creates a security member bound to an event on behalf
	// of the authenticated organiser. POST /security/register.
	SecurityRegister(ctx context.Context, token string, payload models.AccountPayload) (models.BackendResponse, error)

	// SecurityLogin authenticates a security member. POST /security/login.
	SecurityLogin(ctx context.Context, creds models.LoginRequest) (models.LoginResult, error)

	// CreateEvent creates an event. POST /events.
	CreateEvent(ctx context.Context, token string, event models.EventRequest) (models.BackendResponse, error)

	// ListEvents returns the events of the authenticated organiser.
	// GET /events/user/all.
	ListEvents(ctx context.Context, token string) (models.BackendResponse, error)

	// GetEvent returns a single event. GET /events/{id}.
	GetEvent(ctx context.Context, token, eventID string) (models.BackendResponse, error)

	// DeleteEvent deletes a single event. DELETE /events/{id}.
	DeleteEvent(ctx context.Context, token, eventID string) (models.BackendResponse, error)

	// AddGuests adds guests entered by hand. POST /events/{id}/guests.
	AddGuests(ctx context.Context, token string, req models.GuestsRequest) (models.BackendResponse, error)

	// UploadGuests streams an Excel guest list as a multipart form with a
	// single "file" part. POST /events/{id}/guests/upload.
	UploadGuests(ctx context.Context, token string, upload models.GuestUpload) (models.BackendResponse, error)

	// ListGuests returns the guests of an event. GET /events/{id}/guests.
	ListGuests(ctx context.Context, token, eventID string) (models.BackendResponse, error)

	// SendInvites asks the backend to send invitations to every guest of an
	// event. POST /events/{id}/send-invites.
	SendInvites(ctx context.Context, token, eventID string) (models.BackendResponse, error)

	// Scan verifies the content of an invitation QR code. POST /events/scan.
	Scan(ctx context.Context, token string, scan models.ScanRequest) (models.BackendResponse, error)
}
