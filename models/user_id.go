// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"bytes"
	"encoding/json"
	"errors"
	"strconv"
)

var errInvalidUserID = errors.New("user id must be a JSON number or string")

// UserID is the backend's user identifier. The backend may send a number or
// a string, so the value holds the JSON literal exactly as received (7 or
// "6f1c-...") and marshals back to the same literal. The zero value means no
// user.
type UserID string

// UnmarshalJSON implements json.Unmarshaler. null leaves the id empty.
func (id *UserID) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	switch {
	case bytes.Equal(data, []byte("null")):
		*id = ""
		return nil
	case len(data) > 0 && data[0] == '"':
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		if s == "" {
			*id = ""
			return nil
		}
	default:
		var n json.Number
		if err := json.Unmarshal(data, &n); err != nil {
			return errInvalidUserID
		}
	}

	*id = UserID(data)
	return nil
}

// MarshalJSON implements json.Marshaler.
func (id UserID) MarshalJSON() ([]byte, error) {
	if id == "" {
		return []byte("null"), nil
	}
	return []byte(id), nil
}

// String returns the id without JSON quoting.
func (id UserID) String() string {
	if s, err := strconv.Unquote(string(id)); err == nil {
		return s
	}
	return string(id)
}
