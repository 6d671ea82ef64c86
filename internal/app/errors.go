// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package app

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
)

// Kind tags an [Error] with the layer that produced it.
type Kind int

const (
	// KindUnexpected covers everything that was not anticipated.
	KindUnexpected Kind = iota
	// KindValidation is a missing or malformed input detected locally.
	KindValidation
	// KindGateway is a failure reported by the backend or by the transport
	// used to reach it.
	KindGateway
	// KindSession is a failure of the session store. It is logged and never
	// surfaced to the client on logout.
	KindSession
)

// String returns the lower-case name of the kind, used as a log field.
func (k Kind) String() string {
	switch k {
	case KindValidation:
		return "validation"
	case KindGateway:
		return "gateway"
	case KindSession:
		return "session"
	default:
		return "unexpected"
	}
}

// Error is the single error shape flowing from the gateway and the services
// up to the handlers. Status and Message are what ends up in the response
// envelope; Err keeps the underlying cause for logging.
type Error struct {
	Kind    Kind
	Status  int
	Message string
	Err     error
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s error (%d): %s: %v", e.Kind, e.Status, e.Message, e.Err)
	}
	return fmt.Sprintf("%s error (%d): %s", e.Kind, e.Status, e.Message)
}

// Unwrap exposes the underlying cause to [errors.Is] and [errors.As].
func (e *Error) Unwrap() error {
	return e.Err
}

// NewValidationError returns a 400 error for the given message.
func NewValidationError(message string) *Error {
	return &Error{Kind: KindValidation, Status: http.StatusBadRequest, Message: message}
}

// NewRequiredFieldError returns a 400 error of the form "<field> required".
func NewRequiredFieldError(field string) *Error {
	return NewValidationError(field + MsgRequiredSuffix)
}

// NewGatewayError returns an error declared by the backend. A status outside
// the 4xx/5xx range becomes 500 and an empty message falls back to
// [MsgAPIRequestFailed].
func NewGatewayError(status int, message string) *Error {
	if status < http.StatusBadRequest || status > 599 {
		status = http.StatusInternalServerError
	}
	if strings.TrimSpace(message) == "" {
		message = MsgAPIRequestFailed
	}
	return &Error{Kind: KindGateway, Status: status, Message: message}
}

// NewTransportError returns a 500 error for a call that never produced a
// response.
func NewTransportError(cause error) *Error {
	return &Error{
		Kind:    KindGateway,
		Status:  http.StatusInternalServerError,
		Message: fmt.Sprintf("%s: %v", MsgAPIRequestFailed, cause),
		Err:     cause,
	}
}

// NewSessionError wraps a session store failure.
func NewSessionError(cause error) *Error {
	return &Error{
		Kind:    KindSession,
		Status:  http.StatusInternalServerError,
		Message: MsgInternalServerError,
		Err:     cause,
	}
}

// NewUnexpectedError wraps any other failure behind a generic message.
func NewUnexpectedError(cause error) *Error {
	return &Error{
		Kind:    KindUnexpected,
		Status:  http.StatusInternalServerError,
		Message: MsgUnexpectedError,
		Err:     cause,
	}
}

// As converts any error into an [*Error]. Errors that are not already of
// that type become [KindUnexpected]. Missing status or message fields are
// filled with 500 and [MsgInternalServerError].
func As(err error) *Error {
	if err == nil {
		return nil
	}

	var appErr *Error
	if !errors.As(err, &appErr) {
		return NewUnexpectedError(err)
	}

	normalized := *appErr
	if normalized.Status == 0 {
		normalized.Status = http.StatusInternalServerError
	}
	if normalized.Message == "" {
		normalized.Message = MsgInternalServerError
	}
	return &normalized
}

// IsInvalidToken reports whether err is the backend telling us the bearer
// token is no longer accepted.
func IsInvalidToken(err error) bool {
	var appErr *Error
	if !errors.As(err, &appErr) || appErr.Kind != KindGateway {
		return false
	}

	return appErr.Status == http.StatusUnauthorized ||
		strings.EqualFold(strings.TrimSpace(appErr.Message), MsgInvalidOrExpiredToken)
}
