// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"github.com/MKhiriev/cardify/internal/view"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// Init builds the router: public pages at the top level, the form and JSON
// endpoints under /user.
func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID, h.withLogging)
	router.Use(middleware.Compress(5))
	router.Use(h.withSession)

	router.Get("/", h.page(view.PageLogin))
	router.Get("/register", h.page(view.PageRegister))
	router.Get("/home", h.page(view.PageIndex))
	router.Get("/events", h.page(view.PageEvents))
	router.Get("/create", h.page(view.PageCreate))
	router.Get("/security", h.page(view.PageSecurityLogin))
	router.Get("/version", h.getServerVersion)

	if h.debugEndpoints {
		router.Get("/session-data", h.sessionData)
		router.Get("/cookie-data", h.cookieData)
	}

	router.Route("/user", func(r chi.Router) {
		// routes without authorization
		r.Group(func(r chi.Router) {
			r.Post("/register", h.register)
			r.Post("/login", h.login)
			r.Post("/security/login", h.securityLogin)
			r.Post("/logout", h.logout)
		})

		// JSON endpoints answering 401 without a valid token
		r.Group(func(r chi.Router) {
			r.Use(h.auth)

			r.Post("/security", h.securityRegister)
			r.Post("/event", h.createEvent)
			r.Delete("/event/{id}", h.deleteEvent)
			r.Post("/{event_id}/guests", h.addGuests)
			r.With(h.withUpload).Post("/{event_id}/guests/upload", h.uploadGuests)
			r.Get("/guests/{event_id}", h.listGuests)
			r.Post("/invite/{event_id}", h.sendInvites)
			r.Post("/scan", h.scan)
			r.Post("/request", h.saveInitialInfo)
		})

		// pages redirecting to the login page without a valid token
		r.Group(func(r chi.Router) {
			r.Use(h.pageAuth)

			r.Get("/home", h.page(view.PageIndex))
			r.Get("/events", h.listEvents)
			r.Get("/event/{event_id}", h.getEvent)
			r.Get("/create", h.createPage)
			r.Get("/security", h.page(view.PageSecurity))
			r.Get("/scan", h.page(view.PageScan))
		})
	})

	router.NotFound(h.notFound)
	router.MethodNotAllowed(CheckHTTPMethod(router, h.notFound))

	return router
}
