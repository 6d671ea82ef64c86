// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/MKhiriev/cardify/internal/app"
	"github.com/MKhiriev/cardify/models"
)

// WriteJSON serializes data to JSON and writes it to the HTTP response
// with the specified status code.
//
// Sets the Content-Type header to "application/json".
// If serialization fails, responds with HTTP 500 and returns an error.
//
// Returns the number of bytes written and an error if writing to the
// response failed.
func WriteJSON(w http.ResponseWriter, data any, statusCode int) (int, error) {
	jsonData, err := json.Marshal(data)
	if err != nil {
		http.Error(w, "error writing data to JSON", http.StatusInternalServerError)
		return 0, fmt.Errorf("error writing data to JSON: %w", err)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)

	return w.Write(jsonData)
}

// SendResponse writes the standard {success, message, data?} envelope.
// data is omitted from the body when nil.
func SendResponse(w http.ResponseWriter, statusCode int, success bool, message string, data any) (int, error) {
	return WriteJSON(w, models.Response{Success: success, Message: message, Data: data}, statusCode)
}

// SendError writes a failure envelope for err. Errors that are not an
// *app.Error are reported as 500 "An unexpected error occurred".
func SendError(w http.ResponseWriter, err error) (int, error) {
	appErr := app.As(err)
	if appErr == nil {
		appErr = app.NewUnexpectedError(nil)
	}
	return SendResponse(w, appErr.Status, false, appErr.Message, nil)
}
