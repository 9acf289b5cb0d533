// Package handler contains the HTTP handlers for the API.
//
// Handlers orchestrate validator + store for each operation and map every
// outcome onto the uniform response envelope:
//
//	success: {"success": true, "data": ..., "count": 3}
//	failure: {"success": false, "error": "Bedrooms must be a non-negative number"}
//
// No error is ever allowed past a handler: domain errors become 400/404,
// anything unexpected becomes a generic 500.
package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/sakif/property-listings/internal/apperror"
)

// envelope is the uniform response wrapper every endpoint returns.
// Count is a pointer so it only appears on list responses; a plain int would
// serialize as "count":0 everywhere.
type envelope struct {
	Success bool   `json:"success"`
	Data    any    `json:"data,omitempty"`
	Count   *int   `json:"count,omitempty"`
	Message string `json:"message,omitempty"`
	Error   string `json:"error,omitempty"`
}

// writeRawJSON sends any JSON body. Headers and status must be written
// before the body; once Encode writes, header changes are silently ignored.
func writeRawJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		slog.Error("failed to encode JSON response", slog.String("error", err.Error()))
	}
}

// writeJSON sends a response envelope.
func writeJSON(w http.ResponseWriter, status int, body envelope) {
	writeRawJSON(w, status, body)
}

// writeData sends a success envelope with the given payload.
func writeData(w http.ResponseWriter, status int, data any) {
	writeJSON(w, status, envelope{Success: true, Data: data})
}

// writeListData sends a success envelope with a payload and an item count.
func writeListData(w http.ResponseWriter, data any, count int) {
	writeJSON(w, http.StatusOK, envelope{Success: true, Data: data, Count: &count})
}

// writeError maps a domain error to an HTTP status and sends the failure
// envelope. fallback is the generic message used when err is not one of ours
// — internal details never reach the client.
//
// Conflicts map to 400, not 409: a duplicate email is reported the same way
// as any other bad request in this API.
func writeError(w http.ResponseWriter, logger *slog.Logger, err error, fallback string) {
	var appErr *apperror.AppError
	if errors.As(err, &appErr) {
		status := http.StatusInternalServerError
		switch {
		case errors.Is(err, apperror.ErrValidation), errors.Is(err, apperror.ErrConflict):
			status = http.StatusBadRequest
		case errors.Is(err, apperror.ErrNotFound):
			status = http.StatusNotFound
		}
		writeJSON(w, status, envelope{Success: false, Error: appErr.Message})
		return
	}

	logger.Error("unexpected error", slog.String("error", err.Error()))
	writeJSON(w, http.StatusInternalServerError, envelope{Success: false, Error: fallback})
}

// decodeBody decodes a JSON object body into the untyped map the validators
// consume. A body that is not a JSON object is a validation failure.
func decodeBody(r *http.Request) (map[string]any, error) {
	var data map[string]any
	if err := json.NewDecoder(r.Body).Decode(&data); err != nil {
		return nil, apperror.ValidationFailed("body", "Request body must be a JSON object")
	}
	return data, nil
}
