// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package service holds the use cases of the cardify web front-end. Every
// operation validates its input locally and forwards it to the backend
// through an [adapter.Gateway]; nothing is persisted here.
package service

import (
	"context"

	"github.com/MKhiriev/cardify/models"
)

// AccountService covers registration and login of organisers and security
// staff.
type AccountService interface {
	Register(ctx context.Context, req models.RegisterRequest) (models.BackendResponse, error)
	Login(ctx context.Context, req models.LoginRequest) (models.LoginResult, error)
	SecurityLogin(ctx context.Context, req models.LoginRequest) (models.LoginResult, error)
	SecurityRegister(ctx context.Context, token string, req models.SecurityRegisterRequest) (models.BackendResponse, error)
}

// EventService covers events, their guest lists, invitations and the
// scanning of invitation cards. Every call needs the caller's bearer token.
type EventService interface {
	CreateEvent(ctx context.Context, token string, req models.EventRequest) (models.BackendResponse, error)
	ListEvents(ctx context.Context, token string) (models.BackendResponse, error)
	GetEvent(ctx context.Context, token, eventID string) (models.BackendResponse, error)
	DeleteEvent(ctx context.Context, token, eventID string) (models.BackendResponse, error)

	AddGuests(ctx context.Context, token string, req models.GuestsRequest) (models.BackendResponse, error)
	UploadGuests(ctx context.Context, token string, upload models.GuestUpload) (models.BackendResponse, error)
	ListGuests(ctx context.Context, token, eventID string) (models.BackendResponse, error)
	SendInvites(ctx context.Context, token, eventID string) (models.BackendResponse, error)

	Scan(ctx context.Context, token string, req models.ScanRequest) (models.BackendResponse, error)
}

// AppInfoService exposes the build metadata of the running binary.
type AppInfoService interface {
	GetBuildInfo(ctx context.Context) models.AppBuildInfo
}
