// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"context"
	"net/http"

	"github.com/MKhiriev/cardify/internal/app"
	"github.com/MKhiriev/cardify/internal/logger"
	"github.com/MKhiriev/cardify/internal/utils"
	"github.com/MKhiriev/cardify/models"
)

func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	var req models.RegisterRequest
	if err := decodeBody(w, r, &req); err != nil {
		sendError(w, r, app.NewValidationError(app.MsgInvalidBody))
		return
	}

	resp, err := h.services.AccountService.Register(r.Context(), req)
	if err != nil {
		sendError(w, r, err)
		return
	}

	utils.SendResponse(w, http.StatusCreated, true, app.MsgUserRegistered, resp.DataValue())
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	h.startSession(w, r, h.services.AccountService.Login, app.MsgUserLoggedIn)
}

func (h *Handler) securityLogin(w http.ResponseWriter, r *http.Request) {
	h.startSession(w, r, h.services.AccountService.SecurityLogin, app.MsgSecurityLoggedIn)
}

type loginFunc func(context.Context, models.LoginRequest) (models.LoginResult, error)

// startSession logs the caller in with login, copies the backend user into
// the session under a new session id and hands the backend token over in the
// access token cookie.
func (h *Handler) startSession(w http.ResponseWriter, r *http.Request, login loginFunc, message string) {
	var req models.LoginRequest
	if err := decodeBody(w, r, &req); err != nil {
		sendError(w, r, app.NewValidationError(app.MsgInvalidBody))
		return
	}

	result, err := login(r.Context(), req)
	if err != nil {
		sendError(w, r, err)
		return
	}

	sess, err := currentSession(r)
	if err != nil {
		sendError(w, r, app.NewSessionError(err))
		return
	}

	sess.SetIdentity(result.User)
	if err = h.renewSession(w, r, sess); err != nil {
		sendError(w, r, err)
		return
	}

	h.setAccessToken(w, result.Token)

	logger.FromRequest(r).Info().Stringer("user_id", sess.UserID).Str("role", sess.Role).Msg("session started")
	utils.SendResponse(w, http.StatusCreated, true, message, result.Response.DataValue())
}

// logout always ends in a redirect to the login page: a store failure is
// logged and the cookies are cleared regardless.
func (h *Handler) logout(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	sess, _ := currentSession(r)
	if err := h.sessions.Destroy(r.Context(), w, sess); err != nil {
		log.Err(app.NewSessionError(err)).Str("kind", app.KindSession.String()).Msg("session could not be destroyed")
	}
	h.clearAccessToken(w)

	http.Redirect(w, r, "/", http.StatusFound)
}

func (h *Handler) securityRegister(w http.ResponseWriter, r *http.Request) {
	var req models.SecurityRegisterRequest
	if err := decodeBody(w, r, &req); err != nil {
		sendError(w, r, app.NewValidationError(app.MsgInvalidBody))
		return
	}

	resp, err := h.services.AccountService.SecurityRegister(r.Context(), tokenFromContext(r), req)
	if err != nil {
		sendError(w, r, err)
		return
	}

	utils.SendResponse(w, http.StatusCreated, true, app.MsgSecurityRegistered, resp.DataValue())
}
