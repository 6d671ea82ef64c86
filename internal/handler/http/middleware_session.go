// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/cardify/internal/app"
	"github.com/MKhiriev/cardify/internal/logger"
	"github.com/MKhiriev/cardify/internal/session"
	"github.com/MKhiriev/cardify/models"
)

// withSession loads the caller's session (or starts a fresh one) and puts it
// into the request context. A store failure is logged and the request goes
// on with a fresh session. Nothing is persisted unless a handler calls
// saveSession.
func (h *Handler) withSession(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		sess, err := h.sessions.Load(r.Context(), r)
		if err != nil {
			logger.FromRequest(r).Err(err).Str("kind", app.KindSession.String()).Msg("session could not be loaded")
		}

		ctx := session.NewContext(r.Context(), &sess)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// currentSession returns the session attached by withSession.
func currentSession(r *http.Request) (*models.Session, error) {
	sess, ok := session.FromContext(r.Context())
	if !ok {
		return nil, ErrNoSession
	}
	return sess, nil
}

// saveSession persists sess and refreshes the session cookie. Callers decide
// whether a failure is fatal for their route.
func (h *Handler) saveSession(w http.ResponseWriter, r *http.Request, sess *models.Session) error {
	if err := h.sessions.Save(r.Context(), w, sess); err != nil {
		logger.FromRequest(r).Err(err).Str("kind", app.KindSession.String()).Msg("session could not be saved")
		return app.NewSessionError(err)
	}
	return nil
}

// renewSession saves sess under a new id and drops the old entry.
func (h *Handler) renewSession(w http.ResponseWriter, r *http.Request, sess *models.Session) error {
	if err := h.sessions.Renew(r.Context(), w, sess); err != nil {
		logger.FromRequest(r).Err(err).Str("kind", app.KindSession.String()).Msg("session could not be renewed")
		return app.NewSessionError(err)
	}
	return nil
}

// updateSession applies update to the current session and saves it. The
// response does not depend on the outcome, so failures are only logged.
func (h *Handler) updateSession(w http.ResponseWriter, r *http.Request, update func(*models.Session)) {
	sess, err := currentSession(r)
	if err != nil {
		logger.FromRequest(r).Err(err).Msg("session update skipped")
		return
	}

	update(sess)
	_ = h.saveSession(w, r, sess)
}
