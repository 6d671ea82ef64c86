// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"
	"testing"

	"github.com/MKhiriev/cardify/internal/app"
	"github.com/MKhiriev/cardify/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// ── CreateEvent ──

func TestEventService_CreateEvent(t *testing.T) {
	services, gw := newTestServices(t)

	event := models.EventRequest{
		EventName: "Wedding", Description: "d", Location: "Hall", EventDate: "2026-12-01", StartTime: "10:00", EndTime: "18:00",
	}
	gw.EXPECT().CreateEvent(gomock.Any(), "T", event).
		Return(models.BackendResponse{Data: json.RawMessage(`{"id":1}`)}, nil)

	got, err := services.EventService.CreateEvent(context.Background(), "T", event)

	require.NoError(t, err)
	assert.Equal(t, map[string]any{"id": float64(1)}, got.DataValue())
}

func TestEventService_CreateEvent_FirstMissingField(t *testing.T) {
	services, _ := newTestServices(t)

	_, err := services.EventService.CreateEvent(context.Background(), "T", models.EventRequest{EventName: "Wedding"})

	requireValidationError(t, err, "description required")
}

// ── single event operations ──

func TestEventService_EventIDRequired(t *testing.T) {
	ops := map[string]func(EventService) error{
		"GetEvent": func(s EventService) error {
			_, err := s.GetEvent(context.Background(), "T", "")
			return err
		},
		"DeleteEvent": func(s EventService) error {
			_, err := s.DeleteEvent(context.Background(), "T", " ")
			return err
		},
		"ListGuests": func(s EventService) error {
			_, err := s.ListGuests(context.Background(), "T", "")
			return err
		},
		"SendInvites": func(s EventService) error {
			_, err := s.SendInvites(context.Background(), "T", "")
			return err
		},
	}

	for name, op := range ops {
		t.Run(name, func(t *testing.T) {
			services, _ := newTestServices(t)
			requireValidationError(t, op(services.EventService), "event_id required")
		})
	}
}

func TestEventService_ForwardsEventID(t *testing.T) {
	services, gw := newTestServices(t)
	ctx := context.Background()

	gomock.InOrder(
		gw.EXPECT().GetEvent(gomock.Any(), "T", "42").Return(models.BackendResponse{}, nil),
		gw.EXPECT().DeleteEvent(gomock.Any(), "T", "42").Return(models.BackendResponse{}, nil),
		gw.EXPECT().ListGuests(gomock.Any(), "T", "42").Return(models.BackendResponse{}, nil),
		gw.EXPECT().SendInvites(gomock.Any(), "T", "42").Return(models.BackendResponse{}, nil),
	)

	_, err := services.EventService.GetEvent(ctx, "T", "42")
	require.NoError(t, err)
	_, err = services.EventService.DeleteEvent(ctx, "T", " 42 ")
	require.NoError(t, err)
	_, err = services.EventService.ListGuests(ctx, "T", "42")
	require.NoError(t, err)
	_, err = services.EventService.SendInvites(ctx, "T", "42")
	require.NoError(t, err)
}

func TestEventService_ListEvents_BackendError(t *testing.T) {
	services, gw := newTestServices(t)

	gw.EXPECT().ListEvents(gomock.Any(), "T").
		Return(models.BackendResponse{}, app.NewGatewayError(http.StatusForbidden, app.MsgInvalidOrExpiredToken))

	_, err := services.EventService.ListEvents(context.Background(), "T")

	require.Error(t, err)
	assert.True(t, app.IsInvalidToken(err))
}

// ── AddGuests ──

func TestEventService_AddGuests(t *testing.T) {
	tests := []struct {
		name    string
		req     models.GuestsRequest
		wantMsg string
	}{
		{name: "no event", req: models.GuestsRequest{Guests: []map[string]any{{"name": "A"}}}, wantMsg: "event_id required"},
		{name: "empty guests", req: models.GuestsRequest{EventID: "1", Guests: []map[string]any{}}, wantMsg: "guests required"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			services, _ := newTestServices(t)

			_, err := services.EventService.AddGuests(context.Background(), "T", tt.req)
			requireValidationError(t, err, tt.wantMsg)
		})
	}

	t.Run("forwarded", func(t *testing.T) {
		services, gw := newTestServices(t)

		req := models.GuestsRequest{EventID: "1", Guests: []map[string]any{{"name": "A", "phone": "1"}}}
		gw.EXPECT().AddGuests(gomock.Any(), "T", req).Return(models.BackendResponse{Data: json.RawMessage(`[{"id":1}]`)}, nil)

		got, err := services.EventService.AddGuests(context.Background(), "T", req)
		require.NoError(t, err)
		assert.JSONEq(t, `[{"id":1}]`, string(got.Data))
	})
}

// ── UploadGuests ──

func TestEventService_UploadGuests(t *testing.T) {
	t.Run("missing event", func(t *testing.T) {
		services, _ := newTestServices(t)

		_, err := services.EventService.UploadGuests(context.Background(), "T", models.GuestUpload{Content: strings.NewReader("x")})
		requireValidationError(t, err, "event_id required")
	})

	t.Run("missing file", func(t *testing.T) {
		services, _ := newTestServices(t)

		_, err := services.EventService.UploadGuests(context.Background(), "T", models.GuestUpload{EventID: "1"})
		requireValidationError(t, err, "file required")
	})

	t.Run("forwarded", func(t *testing.T) {
		services, gw := newTestServices(t)

		upload := models.GuestUpload{EventID: "1", FileName: "guests.xlsx", Size: 1, Content: strings.NewReader("x")}
		gw.EXPECT().UploadGuests(gomock.Any(), "T", upload).Return(models.BackendResponse{}, nil)

		_, err := services.EventService.UploadGuests(context.Background(), "T", upload)
		require.NoError(t, err)
	})
}

// ── Scan ──

func TestEventService_Scan(t *testing.T) {
	t.Run("qr required", func(t *testing.T) {
		services, _ := newTestServices(t)

		_, err := services.EventService.Scan(context.Background(), "T", models.ScanRequest{})
		requireValidationError(t, err, "qr required")
	})

	t.Run("transport error passes through", func(t *testing.T) {
		services, gw := newTestServices(t)

		gw.EXPECT().Scan(gomock.Any(), "T", models.ScanRequest{QR: "abc"}).
			Return(models.BackendResponse{}, app.NewTransportError(context.DeadlineExceeded))

		_, err := services.EventService.Scan(context.Background(), "T", models.ScanRequest{QR: "abc"})
		require.Error(t, err)
		assert.Equal(t, http.StatusInternalServerError, app.As(err).Status)
		assert.True(t, strings.HasPrefix(app.As(err).Message, app.MsgAPIRequestFailed+": "))
	})
}
