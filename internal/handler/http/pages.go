// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"encoding/json"
	"net/http"

	"github.com/MKhiriev/cardify/internal/app"
	"github.com/MKhiriev/cardify/internal/utils"
	"github.com/MKhiriev/cardify/internal/view"
	"github.com/MKhiriev/cardify/models"
	"github.com/go-chi/chi/v5"
)

// page renders a page that needs nothing but the session identity.
func (h *Handler) page(p view.Page) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		h.render(w, r, http.StatusOK, p, pageData(r))
	}
}

func (h *Handler) listEvents(w http.ResponseWriter, r *http.Request) {
	resp, err := h.services.EventService.ListEvents(r.Context(), tokenFromContext(r))
	if err != nil {
		sendPageError(w, r, err)
		return
	}

	data := pageData(r)
	data.Events = resp.DataValue()
	if data.Events == nil {
		data.Events = []any{}
	}
	h.render(w, r, http.StatusOK, view.PageEvents, data)
}

func (h *Handler) getEvent(w http.ResponseWriter, r *http.Request) {
	resp, err := h.services.EventService.GetEvent(r.Context(), tokenFromContext(r), chi.URLParam(r, "event_id"))
	if err != nil {
		sendPageError(w, r, err)
		return
	}

	data := pageData(r)
	data.Event = resp.DataValue()
	if data.Event == nil {
		data.Event = map[string]any{}
	}
	h.render(w, r, http.StatusOK, view.PageView, data)
}

// createPage re-populates the event form and the guest list from the session.
func (h *Handler) createPage(w http.ResponseWriter, r *http.Request) {
	data := pageData(r)

	if sess, err := currentSession(r); err == nil {
		data.FormData = sess.InitialInfo
		data.Guests = decodeRaw(sess.Guests)
	}
	if data.FormData == nil {
		data.FormData = map[string]any{}
	}

	h.render(w, r, http.StatusOK, view.PageCreate, data)
}

// sessionData echoes the raw session; only routed when debug endpoints are on.
func (h *Handler) sessionData(w http.ResponseWriter, r *http.Request) {
	sess, err := currentSession(r)
	if err != nil {
		sendError(w, r, app.NewSessionError(err))
		return
	}
	utils.WriteJSON(w, sess, http.StatusOK)
}

// cookieData echoes the request cookies; only routed when debug endpoints are on.
func (h *Handler) cookieData(w http.ResponseWriter, r *http.Request) {
	cookies := make(map[string]string)
	for _, c := range r.Cookies() {
		cookies[c.Name] = c.Value
	}
	utils.WriteJSON(w, cookies, http.StatusOK)
}

func pageData(r *http.Request) view.Data {
	sess, err := currentSession(r)
	if err != nil {
		return view.Data{}
	}
	return view.Data{FirstName: sess.FirstName, Email: sess.Email, Role: sess.Role}
}

func decodeRaw(raw json.RawMessage) any {
	return models.BackendResponse{Data: raw}.DataValue()
}
