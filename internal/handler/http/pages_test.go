// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/MKhiriev/cardify/internal/app"
	"github.com/MKhiriev/cardify/internal/config"
	"github.com/MKhiriev/cardify/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// ── public pages ──

func TestPublicPages(t *testing.T) {
	tests := []struct {
		target string
		want   string
	}{
		{target: "/", want: `data-api="/user/login"`},
		{target: "/register", want: `data-api="/user/register"`},
		{target: "/security", want: `data-api="/user/security/login"`},
		{target: "/home", want: "<html"},
		{target: "/events", want: "<html"},
		{target: "/create", want: "<html"},
	}

	for _, tt := range tests {
		t.Run(tt.target, func(t *testing.T) {
			env := newTestEnv(t)

			rec := env.do(httptest.NewRequest(http.MethodGet, tt.target, nil))

			require.Equal(t, http.StatusOK, rec.Code)
			assert.Equal(t, "text/html; charset=utf-8", rec.Header().Get("Content-Type"))
			assert.Contains(t, rec.Body.String(), tt.want)
		})
	}
}

// ── event pages ──

func TestEventsPage(t *testing.T) {
	t.Run("lists events", func(t *testing.T) {
		env := newTestEnv(t)
		token := validToken(t)

		env.gateway.EXPECT().ListEvents(gomock.Any(), token).Return(models.BackendResponse{
			Data: json.RawMessage(`[{"id":1,"event_name":"Gala","event_date":"2026-12-01","location":"Hall A"}]`),
		}, nil)

		rec := env.do(httptest.NewRequest(http.MethodGet, "/user/events", nil), tokenCookie(token))

		require.Equal(t, http.StatusOK, rec.Code)
		body := rec.Body.String()
		assert.Contains(t, body, "Gala")
		assert.Contains(t, body, `href="/user/event/1"`)
		assert.Contains(t, body, "Hall A")
	})

	t.Run("empty list", func(t *testing.T) {
		env := newTestEnv(t)

		env.gateway.EXPECT().ListEvents(gomock.Any(), gomock.Any()).Return(models.BackendResponse{}, nil)

		rec := env.do(httptest.NewRequest(http.MethodGet, "/user/events", nil), tokenCookie(validToken(t)))

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), "No events yet")
	})

	t.Run("token refused by backend", func(t *testing.T) {
		env := newTestEnv(t)

		env.gateway.EXPECT().ListEvents(gomock.Any(), gomock.Any()).
			Return(models.BackendResponse{}, app.NewGatewayError(http.StatusUnauthorized, app.MsgInvalidOrExpiredToken))

		rec := env.do(httptest.NewRequest(http.MethodGet, "/user/events", nil), tokenCookie(validToken(t)))

		assert.Equal(t, http.StatusFound, rec.Code)
		assert.Equal(t, "/", rec.Header().Get("Location"))
	})

	t.Run("backend unreachable", func(t *testing.T) {
		env := newTestEnv(t)

		env.gateway.EXPECT().ListEvents(gomock.Any(), gomock.Any()).
			Return(models.BackendResponse{}, app.NewTransportError(errors.New("connection refused")))

		rec := env.do(httptest.NewRequest(http.MethodGet, "/user/events", nil), tokenCookie(validToken(t)))

		require.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.Equal(t, "API request failed: connection refused", decodeEnvelope(t, rec).Message)
	})
}

func TestEventPage(t *testing.T) {
	env := newTestEnv(t)
	token := validToken(t)

	env.gateway.EXPECT().GetEvent(gomock.Any(), token, "5").Return(models.BackendResponse{
		Data: json.RawMessage(`{"id":5,"event_name":"Gala","description":"Annual","location":"Hall A"}`),
	}, nil)

	rec := env.do(httptest.NewRequest(http.MethodGet, "/user/event/5", nil), tokenCookie(token))

	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, "<h1>Gala</h1>")
	assert.Contains(t, body, `data-api="/user/5/guests/upload"`)
	assert.Contains(t, body, `data-api="/user/invite/5"`)
}

func TestCreatePage_RestoresForm(t *testing.T) {
	env := newTestEnv(t)
	token := validToken(t)

	rec := env.do(jsonRequest(t, http.MethodPost, "/user/request", map[string]string{"event_name": "Gala", "location": "Hall A"}),
		tokenCookie(token))
	require.Equal(t, http.StatusOK, rec.Code)
	sessCookie := findCookie(rec, testSessionCookie)

	env.gateway.EXPECT().ListGuests(gomock.Any(), token, "42").
		Return(models.BackendResponse{Data: json.RawMessage(`[{"name":"Bob"}]`)}, nil)
	rec = env.do(httptest.NewRequest(http.MethodGet, "/user/guests/42", nil), tokenCookie(token), sessCookie)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = env.do(httptest.NewRequest(http.MethodGet, "/user/create", nil), tokenCookie(token), sessCookie)

	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, `value="Gala"`)
	assert.Contains(t, body, `value="Hall A"`)
	assert.Contains(t, body, `id="guests"`)
	assert.Contains(t, body, "Bob")
}

// ── debug endpoints ──

func TestDebugEndpoints(t *testing.T) {
	t.Run("enabled outside production", func(t *testing.T) {
		env := newTestEnv(t)

		rec := env.do(jsonRequest(t, http.MethodPost, "/user/request", map[string]string{"event_name": "Gala"}),
			tokenCookie(validToken(t)))
		sessCookie := findCookie(rec, testSessionCookie)

		rec = env.do(httptest.NewRequest(http.MethodGet, "/session-data", nil), sessCookie)
		require.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"event_name":"Gala"}`, jsonField(t, rec.Body.Bytes(), "initialInfo"))

		rec = env.do(httptest.NewRequest(http.MethodGet, "/cookie-data", nil), sessCookie, tokenCookie("T"))
		require.Equal(t, http.StatusOK, rec.Code)
		var cookies map[string]string
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &cookies))
		assert.Equal(t, map[string]string{testSessionCookie: sessCookie.Value, testAuthCookie: "T"}, cookies)
	})

	t.Run("hidden in production", func(t *testing.T) {
		env := newTestEnv(t, func(cfg *config.StructuredConfig) { cfg.App.Env = "production" })

		for _, target := range []string{"/session-data", "/cookie-data"} {
			rec := env.do(httptest.NewRequest(http.MethodGet, target, nil))
			assert.Equal(t, http.StatusNotFound, rec.Code, target)
		}
	})

	t.Run("explicitly disabled", func(t *testing.T) {
		disabled := false
		env := newTestEnv(t, func(cfg *config.StructuredConfig) { cfg.App.DebugEndpoints = &disabled })

		rec := env.do(httptest.NewRequest(http.MethodGet, "/session-data", nil))
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func jsonField(t *testing.T, body []byte, key string) string {
	t.Helper()

	var fields map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(body, &fields))
	return string(fields[key])
}

// ── version and fallbacks ──

func TestVersion(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(httptest.NewRequest(http.MethodGet, "/version", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"version":"1.2.3","date":"2026-10-01","commit":"abc123"}`, rec.Body.String())
}

func TestNotFound(t *testing.T) {
	tests := []struct {
		name       string
		method     string
		target     string
		accept     string
		wantHTML   bool
		wantStatus int
	}{
		{name: "browser gets a page", method: http.MethodGet, target: "/nope", accept: "text/html,application/xhtml+xml", wantHTML: true, wantStatus: http.StatusNotFound},
		{name: "api client gets envelope", method: http.MethodGet, target: "/user/nope", accept: "application/json", wantStatus: http.StatusNotFound},
		{name: "wrong method on login", method: http.MethodPut, target: "/user/login", wantStatus: http.StatusNotFound},
		{name: "wrong method on page", method: http.MethodPost, target: "/register", wantStatus: http.StatusNotFound},
		{name: "wrong method on event", method: http.MethodPatch, target: "/user/event/1", wantStatus: http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := newTestEnv(t)

			req := httptest.NewRequest(tt.method, tt.target, nil)
			if tt.accept != "" {
				req.Header.Set("Accept", tt.accept)
			}
			rec := env.do(req)

			require.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantHTML {
				assert.Contains(t, rec.Body.String(), "Page not found")
				return
			}
			resp := decodeEnvelope(t, rec)
			assert.False(t, resp.Success)
			assert.Equal(t, "Not Found", resp.Message)
		})
	}
}
