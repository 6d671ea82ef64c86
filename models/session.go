// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"encoding/json"
	"time"
)

// Session is the server-side state of one browser session. It is loaded at
// the start of every request, handed to the handler as a value and persisted
// again only when the handler explicitly saves it.
type Session struct {
	// ID is the opaque identifier carried in the session cookie.
	ID string `json:"-"`

	// FirstName, Email, UserID and Role are copied from the backend user
	// record after a successful login.
	FirstName string `json:"firstname,omitempty"`
	Email     string `json:"email,omitempty"`
	UserID    UserID `json:"userId,omitempty"`
	Role      string `json:"role,omitempty"`

	// InitialInfo holds the first stage of the event creation form so the
	// create page can be re-populated.
	InitialInfo map[string]any `json:"initialInfo,omitempty"`

	// Guests is the guest list last returned by the backend for the event
	// being prepared. It is cleared once invitations are sent.
	Guests json.RawMessage `json:"guests,omitempty"`

	// Guest is the first guest record returned by an Excel upload.
	Guest json.RawMessage `json:"guest,omitempty"`

	// ExpiresAt is the moment after which the store treats the session as gone.
	ExpiresAt time.Time `json:"expiresAt"`
}

// IsAuthenticated reports whether the session belongs to a logged-in user.
func (s Session) IsAuthenticated() bool {
	return s.Email != "" || s.UserID != ""
}

// SetIdentity copies the identity fields of a backend user into the session.
func (s *Session) SetIdentity(u BackendUser) {
	s.FirstName = u.FirstName
	s.Email = u.Email
	s.UserID = u.ID
	s.Role = u.Role
}
