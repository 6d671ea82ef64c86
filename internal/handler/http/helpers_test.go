// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"bytes"
	"context"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/MKhiriev/cardify/internal/adapter"
	"github.com/MKhiriev/cardify/internal/config"
	"github.com/MKhiriev/cardify/internal/logger"
	"github.com/MKhiriev/cardify/internal/mock"
	"github.com/MKhiriev/cardify/internal/service"
	"github.com/MKhiriev/cardify/internal/session"
	"github.com/MKhiriev/cardify/internal/view"
	"github.com/MKhiriev/cardify/models"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// ─────────────────────────────────────────────
// Test environment
// ─────────────────────────────────────────────

const (
	testSignKey       = "test-sign-key"
	testSessionCookie = "cardify.sid"
	testAuthCookie    = "accessToken"
	testUploadLimit   = 1024
)

type testEnv struct {
	handler *Handler
	router  http.Handler
	gateway *mock.MockGateway
	store   session.Store
	cfg     config.StructuredConfig
}

func testConfig(t *testing.T) config.StructuredConfig {
	t.Helper()

	return config.StructuredConfig{
		App: config.App{Env: "test"},
		Session: config.Session{
			Store:      config.SessionStoreMemory,
			CookieName: testSessionCookie,
			TTL:        time.Hour,
		},
		Auth: config.Auth{
			CookieName:   testAuthCookie,
			TokenTTL:     15 * time.Minute,
			TokenSignKey: testSignKey,
		},
		Upload: config.Upload{
			MaxSize: testUploadLimit,
			TempDir: t.TempDir(),
		},
	}
}

// newTestEnv wires a Handler around a strict gateway mock and an in-memory
// session store. Any unexpected gateway call fails the test.
func newTestEnv(t *testing.T, tweaks ...func(*config.StructuredConfig)) *testEnv {
	t.Helper()

	gw := mock.NewMockGateway(gomock.NewController(t))
	env := newTestEnvWith(t, gw, session.NewMemoryStore(), tweaks...)
	env.gateway = gw
	return env
}

func newTestEnvWith(t *testing.T, gw adapter.Gateway, store session.Store, tweaks ...func(*config.StructuredConfig)) *testEnv {
	t.Helper()

	cfg := testConfig(t)
	for _, tweak := range tweaks {
		tweak(&cfg)
	}

	services, err := service.NewServices(gw, models.NewAppBuildInfo("1.2.3", "2026-10-01", "abc123"), logger.Nop())
	require.NoError(t, err)

	views, err := view.NewTemplateRenderer(logger.Nop())
	require.NoError(t, err)

	sessions := session.NewManager(store, cfg.Session, !cfg.App.IsLocal())
	h := NewHandler(services, sessions, views, cfg, logger.Nop())

	return &testEnv{handler: h, router: h.Init(), store: store, cfg: cfg}
}

// do serves req through the full router, sending cookies along.
func (e *testEnv) do(req *http.Request, cookies ...*http.Cookie) *httptest.ResponseRecorder {
	for _, c := range cookies {
		req.AddCookie(&http.Cookie{Name: c.Name, Value: c.Value})
	}

	rec := httptest.NewRecorder()
	e.router.ServeHTTP(rec, req)
	return rec
}

// session loads the session whose cookie was set on rec.
func (e *testEnv) session(t *testing.T, rec *httptest.ResponseRecorder) models.Session {
	t.Helper()

	cookie := findCookie(rec, testSessionCookie)
	require.NotNil(t, cookie, "session cookie must be set")

	sess, err := e.store.Load(context.Background(), cookie.Value)
	require.NoError(t, err)
	return sess
}

// ─────────────────────────────────────────────
// Request / response helpers
// ─────────────────────────────────────────────

func signedToken(t *testing.T, expiresAt time.Time) string {
	t.Helper()

	claims := jwt.RegisteredClaims{
		Subject:   "7",
		ExpiresAt: jwt.NewNumericDate(expiresAt),
		IssuedAt:  jwt.NewNumericDate(time.Now().Add(-time.Minute)),
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testSignKey))
	require.NoError(t, err)
	return signed
}

func validToken(t *testing.T) string {
	t.Helper()
	return signedToken(t, time.Now().Add(time.Hour))
}

func tokenCookie(token string) *http.Cookie {
	return &http.Cookie{Name: testAuthCookie, Value: token}
}

func jsonRequest(t *testing.T, method, target string, body any) *http.Request {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}

	req := httptest.NewRequest(method, target, &buf)
	req.Header.Set("Content-Type", "application/json")
	return req
}

func formRequest(method, target string, values url.Values) *http.Request {
	req := httptest.NewRequest(method, target, strings.NewReader(values.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return req
}

func multipartRequest(t *testing.T, target, field, fileName string, content []byte) *http.Request {
	t.Helper()

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	require.NoError(t, mw.WriteField("note", "ignored"))
	fw, err := mw.CreateFormFile(field, fileName)
	require.NoError(t, err)
	_, err = fw.Write(content)
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, target, &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	return req
}

func decodeEnvelope(t *testing.T, rec *httptest.ResponseRecorder) models.Response {
	t.Helper()

	require.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var resp models.Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	return resp
}

func findCookie(rec *httptest.ResponseRecorder, name string) *http.Cookie {
	for _, c := range rec.Result().Cookies() {
		if c.Name == name {
			return c
		}
	}
	return nil
}
