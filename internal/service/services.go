// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"github.com/MKhiriev/cardify/internal/adapter"
	"github.com/MKhiriev/cardify/internal/logger"
	"github.com/MKhiriev/cardify/internal/validators"
	"github.com/MKhiriev/cardify/models"
)

// Services aggregates every use case handed to the transport layer.
type Services struct {
	AccountService AccountService
	EventService   EventService
	AppInfoService AppInfoService
}

// NewServices wires all services to the same gateway and request validator.
func NewServices(gateway adapter.Gateway, buildInfo models.AppBuildInfo, logger *logger.Logger) (*Services, error) {
	if gateway == nil {
		return nil, ErrNilGateway
	}

	appInfoService, err := NewAppInfoService(buildInfo, logger)
	if err != nil {
		return nil, err
	}

	validator := validators.NewRequestValidator()

	return &Services{
		AccountService: NewAccountService(gateway, validator, logger),
		EventService:   NewEventService(gateway, validator, logger),
		AppInfoService: appInfoService,
	}, nil
}
