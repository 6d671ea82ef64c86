// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package view renders the HTML pages of the cardify web front-end.
//
// Every page is a template named "content" executed inside the shared
// "layout" template. Pages are parsed once at startup from an [fs.FS],
// the embedded templates by default.
package view

import (
	"bytes"
	"embed"
	"errors"
	"fmt"
	"html/template"
	"io/fs"
	"net/http"

	"github.com/MKhiriev/cardify/internal/logger"
)

//go:embed templates/*.html
var templateFS embed.FS

// Page names a renderable page.
type Page string

const (
	PageLogin         Page = "login"
	PageRegister      Page = "register"
	PageIndex         Page = "index"
	PageEvents        Page = "events"
	PageCreate        Page = "create"
	PageSecurity      Page = "security"
	PageSecurityLogin Page = "securityLogin"
	PageScan          Page = "scan"
	PageView          Page = "view"
	PageError         Page = "error"
)

var pages = []Page{
	PageLogin, PageRegister, PageIndex, PageEvents, PageCreate,
	PageSecurity, PageSecurityLogin, PageScan, PageView, PageError,
}

// ErrUnknownPage is returned when rendering a page that was not parsed.
var ErrUnknownPage = errors.New("unknown page")

// Renderer writes a complete HTML page to w.
type Renderer interface {
	Render(w http.ResponseWriter, status int, page Page, data Data) error
}

// Data is what every page template receives.
type Data struct {
	Title string

	// Identity of the logged-in user, empty on public pages.
	FirstName string
	Email     string
	Role      string

	// Events is the list rendered by the events page.
	Events any
	// Event is the single event rendered by the view page.
	Event any

	// FormData re-populates the event creation form.
	FormData map[string]any
	// Guests is the guest list cached for the event being prepared.
	Guests any

	// Message is shown by the error page.
	Message string
}

// TemplateRenderer renders pages parsed from html/template files.
type TemplateRenderer struct {
	pages map[Page]*template.Template

	logger *logger.Logger
}

// NewTemplateRenderer parses the embedded templates.
func NewTemplateRenderer(log *logger.Logger) (*TemplateRenderer, error) {
	return NewTemplateRendererFS(templateFS, log)
}

// NewTemplateRendererFS parses templates/layout.html together with one
// templates/<page>.html file per page from fsys.
func NewTemplateRendererFS(fsys fs.FS, log *logger.Logger) (*TemplateRenderer, error) {
	r := &TemplateRenderer{
		pages:  make(map[Page]*template.Template, len(pages)),
		logger: log,
	}

	for _, page := range pages {
		t, err := template.New(string(page)).Funcs(funcs()).ParseFS(fsys,
			"templates/layout.html",
			fmt.Sprintf("templates/%s.html", page),
		)
		if err != nil {
			return nil, fmt.Errorf("parse page %q: %w", page, err)
		}
		r.pages[page] = t
	}

	return r, nil
}

// Render implements [Renderer]. The page is rendered into a buffer first so
// that a template error never leaves a half-written response.
func (r *TemplateRenderer) Render(w http.ResponseWriter, status int, page Page, data Data) error {
	t, ok := r.pages[page]
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownPage, page)
	}

	if data.Title == "" {
		data.Title = defaultTitle(page)
	}

	var buf bytes.Buffer
	if err := t.ExecuteTemplate(&buf, "layout", data); err != nil {
		r.logger.Err(err).Str("page", string(page)).Msg("template execution failed")
		return fmt.Errorf("render page %q: %w", page, err)
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, err := buf.WriteTo(w)
	return err
}

func defaultTitle(page Page) string {
	switch page {
	case PageLogin:
		return "Sign in"
	case PageRegister:
		return "Create an account"
	case PageIndex:
		return "Home"
	case PageEvents:
		return "My events"
	case PageCreate:
		return "Create an event"
	case PageSecurity:
		return "Register security"
	case PageSecurityLogin:
		return "Security sign in"
	case PageScan:
		return "Scan invitation"
	case PageView:
		return "Event"
	default:
		return "Error"
	}
}
