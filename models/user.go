// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// RegisterRequest is the registration form submitted by a visitor.
type RegisterRequest struct {
	FirstName string `json:"firstname" validate:"required"`
	LastName  string `json:"lastname" validate:"required"`
	Phone     string `json:"phone" validate:"required"`
	Email     string `json:"email" validate:"required"`
	Password  string `json:"password" validate:"required"`
}

// LoginRequest carries the credentials used by both the user and the
// security staff login forms.
type LoginRequest struct {
	Phone    string `json:"phone" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// SecurityRegisterRequest registers a security member for one event. It is
// submitted by an authenticated organiser.
type SecurityRegisterRequest struct {
	FirstName string `json:"firstname" validate:"required"`
	LastName  string `json:"lastname" validate:"required"`
	Phone     string `json:"phone" validate:"required"`
	Email     string `json:"email" validate:"required"`
	Password  string `json:"password" validate:"required"`
	EventID   string `json:"event_id" validate:"required"`
}

// AccountPayload is the account body understood by the backend
// registration endpoints.
type AccountPayload struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Phone     string `json:"phone"`
	Email     string `json:"email"`
	Password  string `json:"password"`
	EventID   string `json:"event_id,omitempty"`
}

// NewAccountPayload maps the registration form onto the backend field names.
func NewAccountPayload(r RegisterRequest) AccountPayload {
	return AccountPayload{
		FirstName: r.FirstName,
		LastName:  r.LastName,
		Phone:     r.Phone,
		Email:     r.Email,
		Password:  r.Password,
	}
}

// NewSecurityAccountPayload maps the security registration form onto the
// backend field names.
func NewSecurityAccountPayload(r SecurityRegisterRequest) AccountPayload {
	return AccountPayload{
		FirstName: r.FirstName,
		LastName:  r.LastName,
		Phone:     r.Phone,
		Email:     r.Email,
		Password:  r.Password,
		EventID:   r.EventID,
	}
}

// BackendUser is the user record found in the data field of a successful
// login response.
type BackendUser struct {
	ID        UserID `json:"id"`
	FirstName string `json:"first_name"`
	Email     string `json:"email"`
	Role      string `json:"role"`
}

// LoginResult is what a successful login hands back to the caller: the
// decoded user, the bearer token issued by the backend and the raw backend
// payload for the response envelope.
type LoginResult struct {
	User     BackendUser
	Token    string
	Response BackendResponse
}
