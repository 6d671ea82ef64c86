// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"encoding/json"
	"net/http"
	"os"

	"github.com/MKhiriev/cardify/internal/app"
	"github.com/MKhiriev/cardify/internal/logger"
	"github.com/MKhiriev/cardify/internal/utils"
	"github.com/MKhiriev/cardify/models"
	"github.com/go-chi/chi/v5"
)

func (h *Handler) createEvent(w http.ResponseWriter, r *http.Request) {
	var req models.EventRequest
	if err := decodeBody(w, r, &req); err != nil {
		sendError(w, r, app.NewValidationError(app.MsgInvalidBody))
		return
	}

	resp, err := h.services.EventService.CreateEvent(r.Context(), tokenFromContext(r), req)
	if err != nil {
		sendError(w, r, err)
		return
	}

	h.updateSession(w, r, func(s *models.Session) {
		s.InitialInfo = nil
	})

	utils.SendResponse(w, http.StatusOK, true, app.MsgEventCreated, resp.DataValue())
}

func (h *Handler) deleteEvent(w http.ResponseWriter, r *http.Request) {
	resp, err := h.services.EventService.DeleteEvent(r.Context(), tokenFromContext(r), chi.URLParam(r, "id"))
	if err != nil {
		sendError(w, r, err)
		return
	}

	utils.SendResponse(w, http.StatusOK, true, app.MsgEventDeleted, resp.DataValue())
}

func (h *Handler) addGuests(w http.ResponseWriter, r *http.Request) {
	var req models.GuestsRequest
	if err := decodeBody(w, r, &req); err != nil {
		sendError(w, r, app.NewValidationError(app.MsgInvalidBody))
		return
	}
	req.EventID = chi.URLParam(r, "event_id")

	resp, err := h.services.EventService.AddGuests(r.Context(), tokenFromContext(r), req)
	if err != nil {
		sendError(w, r, err)
		return
	}

	h.updateSession(w, r, func(s *models.Session) {
		s.Guests = resp.Data
	})

	utils.SendResponse(w, http.StatusOK, true, app.MsgGuestsAdded, resp.DataValue())
}

// uploadGuests forwards the workbook spooled by withUpload and keeps the
// first returned guest in the session.
func (h *Handler) uploadGuests(w http.ResponseWriter, r *http.Request) {
	upload := models.GuestUpload{EventID: chi.URLParam(r, "event_id")}

	if file, ok := uploadFromContext(r); ok {
		f, err := os.Open(file.path)
		if err != nil {
			sendError(w, r, app.NewUnexpectedError(err))
			return
		}
		defer f.Close()

		upload.FileName = file.name
		upload.Size = file.size
		upload.Content = f
	}

	resp, err := h.services.EventService.UploadGuests(r.Context(), tokenFromContext(r), upload)
	if err != nil {
		sendError(w, r, err)
		return
	}

	var guests []models.UploadedGuest
	if err = json.Unmarshal(resp.Data, &guests); err != nil {
		logger.FromRequest(r).Warn().Err(err).Msg("upload response carries no guest list")
	}
	if len(guests) > 0 {
		h.updateSession(w, r, func(s *models.Session) {
			s.Guest = guests[0].Guest
		})
	}

	utils.SendResponse(w, http.StatusOK, true, app.MsgGuestsUploaded, resp.DataValue())
}

func (h *Handler) listGuests(w http.ResponseWriter, r *http.Request) {
	resp, err := h.services.EventService.ListGuests(r.Context(), tokenFromContext(r), chi.URLParam(r, "event_id"))
	if err != nil {
		sendError(w, r, err)
		return
	}

	h.updateSession(w, r, func(s *models.Session) {
		s.Guests = resp.Data
	})

	utils.SendResponse(w, http.StatusOK, true, app.MsgGuestsFetched, resp.DataValue())
}

func (h *Handler) sendInvites(w http.ResponseWriter, r *http.Request) {
	resp, err := h.services.EventService.SendInvites(r.Context(), tokenFromContext(r), chi.URLParam(r, "event_id"))
	if err != nil {
		sendError(w, r, err)
		return
	}

	h.updateSession(w, r, func(s *models.Session) {
		s.Guests = nil
	})

	utils.SendResponse(w, http.StatusOK, true, app.MsgInvitationsSent, resp.DataValue())
}

func (h *Handler) scan(w http.ResponseWriter, r *http.Request) {
	var req models.ScanRequest
	if err := decodeBody(w, r, &req); err != nil {
		sendError(w, r, app.NewValidationError(app.MsgInvalidBody))
		return
	}

	resp, err := h.services.EventService.Scan(r.Context(), tokenFromContext(r), req)
	if err != nil {
		sendError(w, r, err)
		return
	}

	utils.SendResponse(w, http.StatusOK, true, app.MsgCardVerified, resp.DataValue())
}

// saveInitialInfo keeps the first stage of the event form in the session so
// that the create page can be re-populated.
func (h *Handler) saveInitialInfo(w http.ResponseWriter, r *http.Request) {
	info := map[string]any{}
	if err := decodeBody(w, r, &info); err != nil {
		sendError(w, r, app.NewValidationError(app.MsgInvalidBody))
		return
	}

	sess, err := currentSession(r)
	if err != nil {
		sendError(w, r, app.NewSessionError(err))
		return
	}

	sess.InitialInfo = info
	if err = h.saveSession(w, r, sess); err != nil {
		sendError(w, r, err)
		return
	}

	utils.SendResponse(w, http.StatusOK, true, app.MsgInitialInfoRecorded, nil)
}
