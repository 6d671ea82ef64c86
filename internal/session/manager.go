// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package session

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/MKhiriev/cardify/internal/config"
	"github.com/MKhiriev/cardify/internal/utils"
	"github.com/MKhiriev/cardify/models"
)

// Manager ties a [Store] to the session cookie.
type Manager struct {
	store      Store
	cookieName string
	ttl        time.Duration
	secure     bool

	ids *utils.UUIDGenerator
	now func() time.Time
}

// NewManager returns a manager persisting sessions in store. secure controls
// the Secure attribute of the session cookie.
func NewManager(store Store, cfg config.Session, secure bool) *Manager {
	return &Manager{
		store:      store,
		cookieName: cfg.CookieName,
		ttl:        cfg.TTL,
		secure:     secure,
		ids:        utils.NewUUIDGenerator(),
		now:        time.Now,
	}
}

// CookieName returns the name of the session cookie.
func (m *Manager) CookieName() string {
	return m.cookieName
}

// Load returns the session named by the request cookie. A request without a
// cookie, or with a cookie naming a missing or expired session, gets a fresh
// unsaved session with a new id. A store failure is returned together with a
// fresh session so the request can still be served.
func (m *Manager) Load(ctx context.Context, r *http.Request) (models.Session, error) {
	cookie, err := r.Cookie(m.cookieName)
	if err != nil || cookie.Value == "" {
		return m.fresh(), nil
	}

	sess, err := m.store.Load(ctx, cookie.Value)
	if errors.Is(err, ErrNotFound) {
		return m.fresh(), nil
	}
	if err != nil {
		return m.fresh(), fmt.Errorf("load session: %w", err)
	}

	return sess, nil
}

// Save extends the session expiry, persists it and writes the session
// cookie.
func (m *Manager) Save(ctx context.Context, w http.ResponseWriter, sess *models.Session) error {
	if sess.ID == "" {
		sess.ID = m.ids.Generate()
	}
	sess.ExpiresAt = m.now().Add(m.ttl)

	if err := m.store.Save(ctx, sess.ID, *sess); err != nil {
		return fmt.Errorf("save session: %w", err)
	}

	http.SetCookie(w, &http.Cookie{
		Name:     m.cookieName,
		Value:    sess.ID,
		Path:     "/",
		MaxAge:   int(m.ttl.Seconds()),
		HttpOnly: true,
		Secure:   m.secure,
		SameSite: http.SameSiteLaxMode,
	})
	return nil
}

// Renew moves sess to a new id: the entry under the old id is deleted and
// the session is saved under the new one with a fresh cookie. Login calls it
// so an id handed out before authentication never carries a user.
func (m *Manager) Renew(ctx context.Context, w http.ResponseWriter, sess *models.Session) error {
	if sess.ID != "" {
		if err := m.store.Delete(ctx, sess.ID); err != nil {
			return fmt.Errorf("drop previous session: %w", err)
		}
	}

	sess.ID = m.ids.Generate()
	return m.Save(ctx, w, sess)
}

// Destroy removes the session from the store and always clears the session
// cookie, even when the store fails.
func (m *Manager) Destroy(ctx context.Context, w http.ResponseWriter, sess *models.Session) error {
	m.ClearCookie(w)

	if sess == nil || sess.ID == "" {
		return nil
	}
	if err := m.store.Delete(ctx, sess.ID); err != nil {
		return fmt.Errorf("destroy session: %w", err)
	}
	return nil
}

// ClearCookie expires the session cookie on the client.
func (m *Manager) ClearCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     m.cookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		Expires:  time.Unix(0, 0),
		HttpOnly: true,
		Secure:   m.secure,
		SameSite: http.SameSiteLaxMode,
	})
}

func (m *Manager) fresh() models.Session {
	return models.Session{ID: m.ids.Generate()}
}
