// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"strings"

	"github.com/MKhiriev/cardify/internal/adapter"
	"github.com/MKhiriev/cardify/internal/app"
	"github.com/MKhiriev/cardify/internal/logger"
	"github.com/MKhiriev/cardify/internal/validators"
	"github.com/MKhiriev/cardify/models"
)

type eventService struct {
	gateway   adapter.Gateway
	validator validators.Validator

	logger *logger.Logger
}

// NewEventService constructs an EventService backed by gateway.
func NewEventService(gateway adapter.Gateway, validator validators.Validator, logger *logger.Logger) EventService {
	return &eventService{
		gateway:   gateway,
		validator: validator,
		logger:    logger,
	}
}

func (e *eventService) CreateEvent(ctx context.Context, token string, req models.EventRequest) (models.BackendResponse, error) {
	if err := e.validator.Validate(ctx, req); err != nil {
		return models.BackendResponse{}, err
	}

	resp, err := e.gateway.CreateEvent(ctx, token, req)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("event_name", req.EventName).Msg("event creation failed")
		return models.BackendResponse{}, err
	}

	return resp, nil
}

func (e *eventService) ListEvents(ctx context.Context, token string) (models.BackendResponse, error) {
	resp, err := e.gateway.ListEvents(ctx, token)
	if err != nil {
		logger.FromContext(ctx).Err(err).Msg("listing events failed")
		return models.BackendResponse{}, err
	}

	return resp, nil
}

func (e *eventService) GetEvent(ctx context.Context, token, eventID string) (models.BackendResponse, error) {
	return e.forEvent(ctx, "fetching event", eventID, func(id string) (models.BackendResponse, error) {
		return e.gateway.GetEvent(ctx, token, id)
	})
}

func (e *eventService) DeleteEvent(ctx context.Context, token, eventID string) (models.BackendResponse, error) {
	return e.forEvent(ctx, "deleting event", eventID, func(id string) (models.BackendResponse, error) {
		return e.gateway.DeleteEvent(ctx, token, id)
	})
}

// AddGuests forwards a hand-written guest list. An empty list is rejected
// with "guests required".
func (e *eventService) AddGuests(ctx context.Context, token string, req models.GuestsRequest) (models.BackendResponse, error) {
	if err := e.validator.Validate(ctx, req); err != nil {
		return models.BackendResponse{}, err
	}

	resp, err := e.gateway.AddGuests(ctx, token, req)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("event_id", req.EventID).Int("guests", len(req.Guests)).Msg("adding guests failed")
		return models.BackendResponse{}, err
	}

	return resp, nil
}

// UploadGuests streams an Excel guest list to the backend. The file type and
// size are checked before the request reaches the service.
func (e *eventService) UploadGuests(ctx context.Context, token string, upload models.GuestUpload) (models.BackendResponse, error) {
	if strings.TrimSpace(upload.EventID) == "" {
		return models.BackendResponse{}, app.NewRequiredFieldError("event_id")
	}
	if upload.Content == nil {
		return models.BackendResponse{}, app.NewRequiredFieldError("file")
	}

	log := logger.FromContext(ctx)
	log.Info().Str("event_id", upload.EventID).Str("file", upload.FileName).Int64("size", upload.Size).Msg("uploading guest list")

	resp, err := e.gateway.UploadGuests(ctx, token, upload)
	if err != nil {
		log.Err(err).Str("event_id", upload.EventID).Msg("guest list upload failed")
		return models.BackendResponse{}, err
	}

	return resp, nil
}

func (e *eventService) ListGuests(ctx context.Context, token, eventID string) (models.BackendResponse, error) {
	return e.forEvent(ctx, "fetching guests", eventID, func(id string) (models.BackendResponse, error) {
		return e.gateway.ListGuests(ctx, token, id)
	})
}

func (e *eventService) SendInvites(ctx context.Context, token, eventID string) (models.BackendResponse, error) {
	return e.forEvent(ctx, "sending invitations", eventID, func(id string) (models.BackendResponse, error) {
		return e.gateway.SendInvites(ctx, token, id)
	})
}

func (e *eventService) Scan(ctx context.Context, token string, req models.ScanRequest) (models.BackendResponse, error) {
	if err := e.validator.Validate(ctx, req); err != nil {
		return models.BackendResponse{}, err
	}

	resp, err := e.gateway.Scan(ctx, token, req)
	if err != nil {
		logger.FromContext(ctx).Err(err).Msg("card verification failed")
		return models.BackendResponse{}, err
	}

	return resp, nil
}

// forEvent validates an event id taken from the path before running call.
func (e *eventService) forEvent(ctx context.Context, action, eventID string, call func(string) (models.BackendResponse, error)) (models.BackendResponse, error) {
	ref := models.EventRef{EventID: strings.TrimSpace(eventID)}
	if err := e.validator.Validate(ctx, ref); err != nil {
		return models.BackendResponse{}, err
	}

	resp, err := call(ref.EventID)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("event_id", ref.EventID).Msg(action + " failed")
		return models.BackendResponse{}, err
	}

	return resp, nil
}
