// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/MKhiriev/cardify/internal/app"
	"github.com/MKhiriev/cardify/internal/config"
	"github.com/MKhiriev/cardify/internal/logger"
	"github.com/MKhiriev/cardify/internal/utils"
	"github.com/MKhiriev/cardify/models"
	"github.com/go-resty/resty/v2"
)

// Backend API paths.
const (
	pathRegister         = "/auth/register"
	pathLogin            = "/auth/login"
	pathSecurityRegister = "/security/register"
	pathSecurityLogin    = "/security/login"
	pathEvents           = "/events"
	pathUserEvents       = "/events/user/all"
	pathScan             = "/events/scan"

	uploadFieldName = "file"
)

type httpGateway struct {
	client  *utils.HTTPClient
	baseURL string

	logger *logger.Logger
}

// NewHTTPGateway constructs the HTTP implementation of [Gateway]. It
// normalises and validates the base URL from adapterCfg.HTTPAddress and
// configures the underlying client with the resolved base URL and the
// per-call timeout. Retries are disabled.
//
// Returns an error if adapterCfg.HTTPAddress is empty or cannot be parsed as
// a valid URL.
func NewHTTPGateway(adapterCfg config.Adapter, log *logger.Logger) (Gateway, error) {
	baseURL, err := normalizeBaseURL(adapterCfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	gatewayLog := log.GetChildLogger()
	gatewayLog.Logger = gatewayLog.With().Str("component", "gateway").Logger()

	client := utils.NewHTTPClient(baseURL, adapterCfg.RequestTimeout)
	client.SetLogger(restyLogger{log: gatewayLog})

	return &httpGateway{client: client, baseURL: baseURL, logger: gatewayLog}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// Do implements [Gateway].
func (g *httpGateway) Do(ctx context.Context, out models.OutboundRequest) (models.BackendResponse, error) {
	req := g.authedRequest(ctx, out.Token)

	switch {
	case out.Multipart != nil:
		req.SetFileReader(out.Multipart.Field, out.Multipart.FileName, out.Multipart.Content)
	case out.Body != nil:
		req.SetHeader("Content-Type", "application/json").SetBody(out.Body)
	}

	event := g.logger.Debug().
		Str("method", out.Method).
		Str("url", g.baseURL+out.Path).
		Bool("authorized", out.Token != "")
	if out.Multipart != nil {
		event = event.Str("file", out.Multipart.FileName)
	} else {
		event = event.Str("payload", redactPayload(out.Body))
	}
	event.Msg("outbound request")

	resp, err := req.Execute(out.Method, out.Path)
	if err != nil {
		g.logger.Err(err).Str("method", out.Method).Str("path", out.Path).Msg("backend unreachable")
		return models.BackendResponse{}, app.NewTransportError(err)
	}

	result, err := mapHTTPResponse(resp)
	if err != nil {
		g.logger.Warn().
			Err(err).
			Str("method", out.Method).
			Str("path", out.Path).
			Int("status", resp.StatusCode()).
			Msg("backend rejected request")
		return models.BackendResponse{}, err
	}

	return result, nil
}

// Register implements [Gateway].
func (g *httpGateway) Register(ctx context.Context, payload models.AccountPayload) (models.BackendResponse, error) {
	return g.Do(ctx, models.OutboundRequest{Method: http.MethodPost, Path: pathRegister, Body: payload})
}

// Login implements [Gateway].
func (g *httpGateway) Login(ctx context.Context, creds models.LoginRequest) (models.LoginResult, error) {
	return g.login(ctx, pathLogin, creds)
}

// SecurityRegister implements [Gateway].
func (g *httpGateway) SecurityRegister(ctx context.Context, token string, payload models.AccountPayload) (models.BackendResponse, error) {
	return g.Do(ctx, models.OutboundRequest{Method: http.MethodPost, Path: pathSecurityRegister, Token: token, Body: payload})
}

// SecurityLogin implements [Gateway].
func (g *httpGateway) SecurityLogin(ctx context.Context, creds models.LoginRequest) (models.LoginResult, error) {
	return g.login(ctx, pathSecurityLogin, creds)
}

// CreateEvent implements [Gateway].
func (g *httpGateway) CreateEvent(ctx context.Context, token string, event models.EventRequest) (models.BackendResponse, error) {
	return g.Do(ctx, models.OutboundRequest{Method: http.MethodPost, Path: pathEvents, Token: token, Body: event})
}

// ListEvents implements [Gateway].
func (g *httpGateway) ListEvents(ctx context.Context, token string) (models.BackendResponse, error) {
	return g.Do(ctx, models.OutboundRequest{Method: http.MethodGet, Path: pathUserEvents, Token: token})
}

// GetEvent implements [Gateway].
func (g *httpGateway) GetEvent(ctx context.Context, token, eventID string) (models.BackendResponse, error) {
	return g.Do(ctx, models.OutboundRequest{Method: http.MethodGet, Path: eventPath(eventID), Token: token})
}

// DeleteEvent implements [Gateway].
func (g *httpGateway) DeleteEvent(ctx context.Context, token, eventID string) (models.BackendResponse, error) {
	return g.Do(ctx, models.OutboundRequest{Method: http.MethodDelete, Path: eventPath(eventID), Token: token})
}

// AddGuests implements [Gateway]. The backend expects the bare guest array.
func (g *httpGateway) AddGuests(ctx context.Context, token string, req models.GuestsRequest) (models.BackendResponse, error) {
	return g.Do(ctx, models.OutboundRequest{
		Method: http.MethodPost,
		Path:   eventPath(req.EventID, "guests"),
		Token:  token,
		Body:   req.Guests,
	})
}

// UploadGuests implements [Gateway].
func (g *httpGateway) UploadGuests(ctx context.Context, token string, upload models.GuestUpload) (models.BackendResponse, error) {
	return g.Do(ctx, models.OutboundRequest{
		Method: http.MethodPost,
		Path:   eventPath(upload.EventID, "guests", "upload"),
		Token:  token,
		Multipart: &models.MultipartFile{
			Field:    uploadFieldName,
			FileName: upload.FileName,
			Content:  upload.Content,
		},
	})
}

// ListGuests implements [Gateway].
func (g *httpGateway) ListGuests(ctx context.Context, token, eventID string) (models.BackendResponse, error) {
	return g.Do(ctx, models.OutboundRequest{Method: http.MethodGet, Path: eventPath(eventID, "guests"), Token: token})
}

// SendInvites implements [Gateway].
func (g *httpGateway) SendInvites(ctx context.Context, token, eventID string) (models.BackendResponse, error) {
	return g.Do(ctx, models.OutboundRequest{Method: http.MethodPost, Path: eventPath(eventID, "send-invites"), Token: token})
}

// Scan implements [Gateway].
func (g *httpGateway) Scan(ctx context.Context, token string, scan models.ScanRequest) (models.BackendResponse, error) {
	return g.Do(ctx, models.OutboundRequest{Method: http.MethodPost, Path: pathScan, Token: token, Body: scan})
}

func (g *httpGateway) login(ctx context.Context, path string, creds models.LoginRequest) (models.LoginResult, error) {
	resp, err := g.Do(ctx, models.OutboundRequest{Method: http.MethodPost, Path: path, Body: creds})
	if err != nil {
		return models.LoginResult{}, err
	}

	var user models.BackendUser
	if len(resp.Data) > 0 {
		if err = json.Unmarshal(resp.Data, &user); err != nil {
			return models.LoginResult{}, app.NewUnexpectedError(fmt.Errorf("decode login user: %w", err))
		}
	}

	return models.LoginResult{User: user, Token: strings.TrimSpace(resp.Token), Response: resp}, nil
}

func (g *httpGateway) authedRequest(ctx context.Context, token string) *resty.Request {
	req := g.client.R().SetContext(ctx)
	if token = strings.TrimSpace(token); token != "" {
		req.SetAuthToken(token)
	}
	return req
}

// eventPath builds /events/{id}[/suffix...] with the id path-escaped.
func eventPath(eventID string, suffix ...string) string {
	parts := append([]string{pathEvents, url.PathEscape(eventID)}, suffix...)
	return strings.Join(parts, "/")
}
