// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
	"time"
)

// setAccessToken stores the backend token in an httpOnly, same-site strict
// cookie living for the configured token TTL.
func (h *Handler) setAccessToken(w http.ResponseWriter, token string) {
	http.SetCookie(w, &http.Cookie{
		Name:     h.authCookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   int(h.tokenTTL.Seconds()),
		HttpOnly: true,
		Secure:   h.secureCookies,
		SameSite: http.SameSiteStrictMode,
	})
}

func (h *Handler) clearAccessToken(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     h.authCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		Expires:  time.Unix(0, 0).UTC(),
		HttpOnly: true,
		Secure:   h.secureCookies,
		SameSite: http.SameSiteStrictMode,
	})
}

// accessToken returns the raw token cookie value, empty when absent.
func (h *Handler) accessToken(r *http.Request) string {
	cookie, err := r.Cookie(h.authCookieName)
	if err != nil {
		return ""
	}
	return cookie.Value
}
