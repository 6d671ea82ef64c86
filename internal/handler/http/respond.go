// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
	"strings"

	"github.com/MKhiriev/cardify/internal/app"
	"github.com/MKhiriev/cardify/internal/logger"
	"github.com/MKhiriev/cardify/internal/utils"
	"github.com/MKhiriev/cardify/internal/view"
)

// sendError logs err with its kind and writes the matching envelope.
func sendError(w http.ResponseWriter, r *http.Request, err error) {
	appErr := app.As(err)

	event := logger.FromRequest(r).Warn()
	if appErr.Status >= http.StatusInternalServerError {
		event = logger.FromRequest(r).Error()
	}
	event.Err(err).
		Str("kind", appErr.Kind.String()).
		Int("status", appErr.Status).
		Msg("request failed")

	utils.SendError(w, appErr)
}

// sendPageError handles a failure on a page route: an unusable token sends
// the browser to the login page, anything else gets the error envelope.
func sendPageError(w http.ResponseWriter, r *http.Request, err error) {
	if app.IsInvalidToken(err) {
		logger.FromRequest(r).Info().Err(err).Msg("backend rejected token, redirecting to login")
		http.Redirect(w, r, "/", http.StatusFound)
		return
	}
	sendError(w, r, err)
}

// render writes page, falling back to an envelope when the template fails.
func (h *Handler) render(w http.ResponseWriter, r *http.Request, status int, page view.Page, data view.Data) {
	if err := h.views.Render(w, status, page, data); err != nil {
		sendError(w, r, app.NewUnexpectedError(err))
	}
}

func (h *Handler) notFound(w http.ResponseWriter, r *http.Request) {
	if r.Method == http.MethodGet && strings.Contains(r.Header.Get("Accept"), "text/html") {
		h.render(w, r, http.StatusNotFound, view.PageError, view.Data{Message: "Page not found"})
		return
	}
	utils.SendResponse(w, http.StatusNotFound, false, http.StatusText(http.StatusNotFound), nil)
}
