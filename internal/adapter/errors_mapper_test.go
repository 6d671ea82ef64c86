// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"net/http"
	"testing"

	"github.com/MKhiriev/cardify/internal/app"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name        string
		status      int
		body        string
		wantErr     bool
		wantKind    app.Kind
		wantStatus  int
		wantMessage string
	}{
		{name: "2xx with success true", status: http.StatusOK, body: `{"success":true,"message":"ok"}`},
		{name: "2xx without success flag", status: http.StatusCreated, body: `{"message":"created"}`},
		{
			name: "2xx with success false and declared status", status: http.StatusOK,
			body:    `{"success":false,"statusCode":409,"message":"Phone already used"}`,
			wantErr: true, wantKind: app.KindGateway, wantStatus: http.StatusConflict, wantMessage: "Phone already used",
		},
		{
			name: "2xx with success false and no status", status: http.StatusOK,
			body:    `{"success":false}`,
			wantErr: true, wantKind: app.KindGateway, wantStatus: http.StatusInternalServerError, wantMessage: app.MsgAPIRequestFailed,
		},
		{
			name: "2xx with empty body", status: http.StatusOK, body: "  ",
			wantErr: true, wantKind: app.KindGateway, wantStatus: http.StatusInternalServerError, wantMessage: app.MsgAPIRequestFailed,
		},
		{
			name: "2xx with non json body", status: http.StatusOK, body: "<html>",
			wantErr: true, wantKind: app.KindUnexpected, wantStatus: http.StatusInternalServerError, wantMessage: app.MsgUnexpectedError,
		},
		{
			name: "4xx with message", status: http.StatusBadRequest, body: `{"message":"Invalid QR"}`,
			wantErr: true, wantKind: app.KindGateway, wantStatus: http.StatusBadRequest, wantMessage: "Invalid QR",
		},
		{
			name: "5xx with text body", status: http.StatusBadGateway, body: "upstream down",
			wantErr: true, wantKind: app.KindGateway, wantStatus: http.StatusBadGateway, wantMessage: app.MsgAPIRequestFailed,
		},
		{
			name: "401 invalid token", status: http.StatusUnauthorized, body: `{"message":"Invalid or expired token"}`,
			wantErr: true, wantKind: app.KindGateway, wantStatus: http.StatusUnauthorized, wantMessage: app.MsgInvalidOrExpiredToken,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := classify(tt.status, []byte(tt.body))
			if !tt.wantErr {
				assert.NoError(t, err)
				return
			}

			appErr := app.As(err)
			require.NotNil(t, appErr)
			assert.Equal(t, tt.wantKind, appErr.Kind)
			assert.Equal(t, tt.wantStatus, appErr.Status)
			assert.Equal(t, tt.wantMessage, appErr.Message)
		})
	}
}
