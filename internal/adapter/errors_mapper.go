// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/MKhiriev/cardify/internal/app"
	"github.com/MKhiriev/cardify/models"
	"github.com/go-resty/resty/v2"
)

// mapHTTPResponse classifies a received response. A call succeeds only when
// the status is 2xx, the body is a non-empty JSON object and the backend did
// not declare success:false.
func mapHTTPResponse(resp *resty.Response) (models.BackendResponse, error) {
	return classify(resp.StatusCode(), resp.Body())
}

func classify(status int, raw []byte) (models.BackendResponse, error) {
	body := bytes.TrimSpace(raw)

	var decoded models.BackendResponse
	var decodeErr error
	if len(body) > 0 {
		decodeErr = json.Unmarshal(body, &decoded)
	}

	if status < http.StatusOK || status >= http.StatusMultipleChoices {
		message := ""
		if decodeErr == nil {
			message = decoded.Message
		}
		return models.BackendResponse{}, app.NewGatewayError(status, message)
	}

	if len(body) == 0 {
		return models.BackendResponse{}, app.NewGatewayError(http.StatusInternalServerError, "")
	}

	if decodeErr != nil {
		return models.BackendResponse{}, app.NewUnexpectedError(fmt.Errorf("decode backend response: %w", decodeErr))
	}

	if !decoded.Declared() {
		return models.BackendResponse{}, app.NewGatewayError(decoded.StatusCode, decoded.Message)
	}

	return decoded, nil
}
