// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/MKhiriev/cardify/internal/adapter"
	"github.com/MKhiriev/cardify/internal/logger"
	"github.com/MKhiriev/cardify/internal/validators"
	"github.com/MKhiriev/cardify/models"
)

// accountService is the concrete implementation of AccountService.
type accountService struct {
	// gateway forwards validated forms to the backend.
	gateway adapter.Gateway

	// validator rejects a form at its first missing field.
	validator validators.Validator

	logger *logger.Logger
}

// NewAccountService constructs an AccountService backed by gateway.
func NewAccountService(gateway adapter.Gateway, validator validators.Validator, logger *logger.Logger) AccountService {
	return &accountService{
		gateway:   gateway,
		validator: validator,
		logger:    logger,
	}
}

// Register validates the registration form and creates the account on the
// backend. The form fields are renamed to the backend's snake_case names.
func (a *accountService) Register(ctx context.Context, req models.RegisterRequest) (models.BackendResponse, error) {
	log := logger.FromContext(ctx)

	if err := a.validator.Validate(ctx, req); err != nil {
		log.Debug().Err(err).Msg("invalid registration form")
		return models.BackendResponse{}, err
	}

	resp, err := a.gateway.Register(ctx, models.NewAccountPayload(req))
	if err != nil {
		log.Err(err).Str("phone", req.Phone).Msg("user registration failed")
		return models.BackendResponse{}, err
	}

	log.Info().Str("phone", req.Phone).Msg("user registered")
	return resp, nil
}

// Login validates the credentials and exchanges them for a bearer token.
func (a *accountService) Login(ctx context.Context, req models.LoginRequest) (models.LoginResult, error) {
	return a.login(ctx, req, a.gateway.Login)
}

// SecurityLogin is [accountService.Login] for security staff.
func (a *accountService) SecurityLogin(ctx context.Context, req models.LoginRequest) (models.LoginResult, error) {
	return a.login(ctx, req, a.gateway.SecurityLogin)
}

// SecurityRegister registers a security member for an event on behalf of
// the organiser owning token.
func (a *accountService) SecurityRegister(ctx context.Context, token string, req models.SecurityRegisterRequest) (models.BackendResponse, error) {
	log := logger.FromContext(ctx)

	if err := a.validator.Validate(ctx, req); err != nil {
		log.Debug().Err(err).Msg("invalid security registration form")
		return models.BackendResponse{}, err
	}

	resp, err := a.gateway.SecurityRegister(ctx, token, models.NewSecurityAccountPayload(req))
	if err != nil {
		log.Err(err).Str("event_id", req.EventID).Msg("security registration failed")
		return models.BackendResponse{}, err
	}

	log.Info().Str("event_id", req.EventID).Msg("security registered")
	return resp, nil
}

type loginFunc func(context.Context, models.LoginRequest) (models.LoginResult, error)

func (a *accountService) login(ctx context.Context, req models.LoginRequest, call loginFunc) (models.LoginResult, error) {
	log := logger.FromContext(ctx)

	if err := a.validator.Validate(ctx, req); err != nil {
		log.Debug().Err(err).Msg("invalid login form")
		return models.LoginResult{}, err
	}

	result, err := call(ctx, req)
	if err != nil {
		log.Err(err).Str("phone", req.Phone).Msg("login failed")
		return models.LoginResult{}, err
	}

	log.Info().Stringer("user_id", result.User.ID).Str("role", result.User.Role).Msg("logged in")
	return result, nil
}
