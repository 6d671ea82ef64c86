// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"testing"

	"github.com/MKhiriev/cardify/internal/logger"
	"github.com/MKhiriev/cardify/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ─────────────────────────────────────────────
// NewAppInfoService
// ─────────────────────────────────────────────

func TestNewAppInfoService_Success(t *testing.T) {
	svc, err := NewAppInfoService(models.NewAppBuildInfo("1.0.0", "2026-01-01", "abc"), logger.Nop())

	require.NoError(t, err)
	require.NotNil(t, svc)
}

func TestNewAppInfoService_EmptyVersion_ReturnsError(t *testing.T) {
	svc, err := NewAppInfoService(models.NewAppBuildInfo("", "", ""), logger.Nop())

	assert.Nil(t, svc)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrVersionIsNotSpecified))
}

// ─────────────────────────────────────────────
// GetBuildInfo
// ─────────────────────────────────────────────

func TestGetBuildInfo_ReturnsConfiguredInfo(t *testing.T) {
	svc, err := NewAppInfoService(models.NewAppBuildInfo("v1.2.3-beta+build.42", "2026-10-01", "deadbeef"), logger.Nop())
	require.NoError(t, err)

	got := svc.GetBuildInfo(context.Background())

	assert.Equal(t, "v1.2.3-beta+build.42", got.BuildVersion())
	assert.Equal(t, "2026-10-01", got.BuildDate())
	assert.Equal(t, "deadbeef", got.BuildCommit())
}

func TestGetBuildInfo_CancelledContext_StillReturnsInfo(t *testing.T) {
	svc, err := NewAppInfoService(models.NewAppBuildInfo("1.0.0", "N/A", "N/A"), logger.Nop())
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	assert.Equal(t, "1.0.0", svc.GetBuildInfo(ctx).BuildVersion())
}

// ─────────────────────────────────────────────
// NewServices
// ─────────────────────────────────────────────

func TestNewServices_NilGateway(t *testing.T) {
	services, err := NewServices(nil, models.NewAppBuildInfo("1.0.0", "", ""), logger.Nop())

	assert.Nil(t, services)
	assert.ErrorIs(t, err, ErrNilGateway)
}
