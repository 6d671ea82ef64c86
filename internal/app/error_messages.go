// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared application-layer constants and the error
// type used across the cardify web front-end.
//
// All Msg* constants are human-readable strings written into response
// envelopes or log entries. Keeping them in one place keeps the wording
// consistent between handlers, services and the gateway adapter.
package app

const (
	// MsgAPIRequestFailed is used when the backend rejected a call without
	// declaring its own message. Transport failures prefix the cause with it.
	MsgAPIRequestFailed = "API request failed"

	// MsgUnexpectedError is returned for any failure that is neither a
	// validation nor a backend error.
	MsgUnexpectedError = "An unexpected error occurred"

	// MsgInternalServerError is the fallback when an error carries no message.
	MsgInternalServerError = "Internal server error"

	// MsgInvalidOrExpiredToken is the message the backend and the auth guard
	// use for a bearer token that can no longer be used.
	MsgInvalidOrExpiredToken = "Invalid or expired token"

	// MsgNoTokenProvided is returned by the auth guard when the request
	// carries no access token cookie.
	MsgNoTokenProvided = "Access denied. No token provided."

	// MsgInvalidBody is returned when the request body cannot be decoded.
	MsgInvalidBody = "Invalid request body"

	// MsgOnlyExcelAllowed is returned when the uploaded file is not an
	// Excel workbook.
	MsgOnlyExcelAllowed = "Only Excel files (.xlsx or .xls) are allowed."

	// MsgFileTooLarge is returned when the uploaded file exceeds the limit.
	MsgFileTooLarge = "File too large."

	// MsgRequiredSuffix is appended to a field name when it is missing.
	MsgRequiredSuffix = " required"

	MsgUserRegistered      = "User registered successfully."
	MsgUserLoggedIn        = "User logged in successfully."
	MsgSecurityRegistered  = "Security registered successfully."
	MsgSecurityLoggedIn    = "Security logged in successfully."
	MsgEventCreated        = "Event created successfully."
	MsgEventDeleted        = "Event deleted successfully."
	MsgGuestsAdded         = "Guests added successfully."
	MsgGuestsUploaded      = "Excel uploaded and guests added successfully."
	MsgGuestsFetched       = "Guests fetched successfully."
	MsgInvitationsSent     = "Invitations sent successfully."
	MsgCardVerified        = "Card is valid and verified."
	MsgInitialInfoRecorded = "Event details saved."
)
