// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/cardify/internal/app"
	"github.com/MKhiriev/cardify/internal/logger"
	"github.com/MKhiriev/cardify/internal/utils"
)

// auth guards the JSON endpoints. It reads the access token cookie, checks
// it with [utils.ValidateAccessToken] and stores it in the request context
// under [utils.AccessTokenCtxKey] for the handlers to forward.
//
// The request is rejected with a 401 envelope when:
//   - the cookie is absent ("Access denied. No token provided.");
//   - the token cannot be parsed, has a bad signature or has expired
//     ("Invalid or expired token").
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token, err := h.checkAccessToken(r)
		if err != nil {
			message := app.MsgInvalidOrExpiredToken
			if errors.Is(err, ErrNoAccessToken) {
				message = app.MsgNoTokenProvided
			}
			utils.SendResponse(w, http.StatusUnauthorized, false, message, nil)
			return
		}

		next.ServeHTTP(w, r.WithContext(utils.WithAccessToken(r.Context(), token)))
	})
}

// pageAuth guards the HTML pages: any token problem sends the browser back
// to the login page.
func (h *Handler) pageAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token, err := h.checkAccessToken(r)
		if err != nil {
			http.Redirect(w, r, "/", http.StatusFound)
			return
		}

		next.ServeHTTP(w, r.WithContext(utils.WithAccessToken(r.Context(), token)))
	})
}

func (h *Handler) checkAccessToken(r *http.Request) (string, error) {
	log := logger.FromRequest(r)

	token := h.accessToken(r)
	if token == "" {
		log.Debug().Err(ErrNoAccessToken).Str("path", r.URL.Path).Send()
		return "", ErrNoAccessToken
	}

	if _, err := utils.ValidateAccessToken(token, h.tokenSignKey); err != nil {
		log.Info().Err(err).Str("path", r.URL.Path).Msg("access token rejected")
		return "", err
	}

	return token, nil
}

// tokenFromContext returns the token stored by auth or pageAuth.
func tokenFromContext(r *http.Request) string {
	token, _ := utils.GetAccessTokenFromContext(r.Context())
	return token
}
