// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime"
	"net/http"
)

const maxFormBodySize = 1 << 20

// decodeBody fills dst from a JSON or url-encoded form body. Form values are
// mapped onto the same json field names. An empty body leaves dst untouched
// so that validation can name the first missing field.
func decodeBody(w http.ResponseWriter, r *http.Request, dst any) error {
	if r.Body == nil || r.Body == http.NoBody {
		return nil
	}
	r.Body = http.MaxBytesReader(w, r.Body, maxFormBodySize)

	mediaType, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))
	if mediaType == "application/x-www-form-urlencoded" {
		return decodeForm(r, dst)
	}

	if err := json.NewDecoder(r.Body).Decode(dst); err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("decode json body: %w", err)
	}
	return nil
}

func decodeForm(r *http.Request, dst any) error {
	if err := r.ParseForm(); err != nil {
		return fmt.Errorf("parse form body: %w", err)
	}

	values := make(map[string]any, len(r.PostForm))
	for key, vals := range r.PostForm {
		if len(vals) == 1 {
			values[key] = vals[0]
			continue
		}
		values[key] = vals
	}

	raw, err := json.Marshal(values)
	if err != nil {
		return fmt.Errorf("encode form body: %w", err)
	}
	if err = json.Unmarshal(raw, dst); err != nil {
		return fmt.Errorf("decode form body: %w", err)
	}
	return nil
}
