// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"encoding/json"
	"io"
)

// EventRequest is the event creation form.
type EventRequest struct {
	EventName   string `json:"event_name" validate:"required"`
	Description string `json:"description" validate:"required"`
	Location    string `json:"location" validate:"required"`
	EventDate   string `json:"event_date" validate:"required"`
	StartTime   string `json:"start_time" validate:"required"`
	EndTime     string `json:"end_time" validate:"required"`
}

// GuestsRequest adds guests to an event by hand. Guest records are passed
// through to the backend untouched; the event id comes from the URL path.
type GuestsRequest struct {
	EventID string           `json:"-" param:"event_id" validate:"required"`
	Guests  []map[string]any `json:"guests" validate:"required,min=1"`
}

// ScanRequest carries the content of a scanned invitation QR code.
type ScanRequest struct {
	QR string `json:"qr" validate:"required"`
}

// EventRef identifies a single event taken from the request path.
type EventRef struct {
	EventID string `json:"event_id" param:"event_id" validate:"required"`
}

// GuestUpload is an Excel guest list that is streamed to the backend as a
// multipart form.
type GuestUpload struct {
	EventID  string
	FileName string
	Size     int64
	Content  io.Reader
}

// UploadedGuest is one entry of the data array returned by the upload
// endpoint; only the guest record is kept.
type UploadedGuest struct {
	Guest json.RawMessage `json:"guest"`
}
