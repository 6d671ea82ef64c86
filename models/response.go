// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "encoding/json"

// Response is the envelope returned to every JSON client regardless of
// what the backend answered.
type Response struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Data    any    `json:"data,omitempty"`
}

// BackendResponse is the body shape declared by the backend API. Every field
// is optional on the wire: Success is a pointer so that an absent flag can be
// told apart from an explicit false.
type BackendResponse struct {
	Success    *bool           `json:"success,omitempty"`
	StatusCode int             `json:"statusCode,omitempty"`
	Message    string          `json:"message,omitempty"`
	Data       json.RawMessage `json:"data,omitempty"`
	Token      string          `json:"token,omitempty"`
}

// Declared reports the backend's own verdict: true when the success flag is
// absent or set to true.
func (b BackendResponse) Declared() bool {
	return b.Success == nil || *b.Success
}

// DataValue returns Data decoded into a generic value so it can be embedded
// into a [Response] or a template. A missing payload yields nil.
func (b BackendResponse) DataValue() any {
	if len(b.Data) == 0 {
		return nil
	}

	var v any
	if err := json.Unmarshal(b.Data, &v); err != nil {
		return nil
	}
	return v
}
