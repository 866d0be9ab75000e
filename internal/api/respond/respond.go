// Package respond writes JSON responses and owns the Result→HTTP
// decision table used by every activity route.
package respond

import (
	"encoding/json"
	"net/http"

	"github.com/rs/zerolog/log"
)

// Outcome is the shape of a handler Result as seen by the transport
// layer. core.Result implements it structurally.
type Outcome interface {
	IsSuccess() bool
	HasValue() bool
	ValueAny() any
	Err() string
}

// WriteJSON writes a JSON response with the given status code.
func WriteJSON(w http.ResponseWriter, statusCode int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)

	if err := json.NewEncoder(w).Encode(data); err != nil {
		log.Error().Err(err).Msg("Failed to encode JSON response")
	}
}

// WriteError writes a single-message error body: {"error": message}.
func WriteError(w http.ResponseWriter, statusCode int, message string) {
	WriteJSON(w, statusCode, map[string]string{"error": message})
}

// WriteBadRequest writes a 400 Bad Request response.
func WriteBadRequest(w http.ResponseWriter, message string) {
	WriteError(w, http.StatusBadRequest, message)
}

// WriteNotFound writes a 404 with an empty body.
func WriteNotFound(w http.ResponseWriter) {
	w.WriteHeader(http.StatusNotFound)
}

// WriteValidationErrors writes the field-keyed 400 body:
// {"errors": {field: [message, ...]}}.
func WriteValidationErrors(w http.ResponseWriter, fields map[string][]string) {
	WriteJSON(w, http.StatusBadRequest, map[string]any{"errors": fields})
}

// WriteResult translates a handler outcome into an HTTP response.
// Evaluated top to bottom, first match wins:
//
//	absent outcome            -> 404
//	success with value        -> 200 + value
//	success without value     -> 404
//	failure                   -> 400 + {"error": message}
//
// Bare query values (outcomes that are not a Result) are written as
// 200 directly. Note the table conflates "successful but empty" with
// "not found"; callers cannot tell the two apart through this boundary.
func WriteResult(w http.ResponseWriter, outcome any) {
	if outcome == nil {
		WriteNotFound(w)
		return
	}
	res, ok := outcome.(Outcome)
	if !ok {
		WriteJSON(w, http.StatusOK, outcome)
		return
	}
	switch {
	case res.IsSuccess() && res.HasValue():
		WriteJSON(w, http.StatusOK, res.ValueAny())
	case res.IsSuccess():
		WriteNotFound(w)
	default:
		WriteError(w, http.StatusBadRequest, res.Err())
	}
}
