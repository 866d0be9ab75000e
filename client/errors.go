package client

import (
	"errors"
	"fmt"
	"net/http"
)

// ServerError mirrors the structured 500 body written by the server's
// exception boundary.
type ServerError struct {
	StatusCode int    `json:"statusCode"`
	Message    string `json:"message"`
	Details    string `json:"details,omitempty"`
}

// APIError is the classified failure for any non-2xx response. The
// agent performs its per-status side effect and then always returns
// the error unchanged; no branch swallows it.
type APIError struct {
	StatusCode int
	Body       string
	// Fields holds field-keyed validation messages when the 400 body
	// carried them; Messages is the flattened list in key order.
	Fields   map[string][]string
	Messages []string
}

func (e *APIError) Error() string {
	if len(e.Messages) > 0 {
		return fmt.Sprintf("api: status %d: %v", e.StatusCode, e.Messages)
	}
	return fmt.Sprintf("api: status %d: %s", e.StatusCode, e.Body)
}

// IsNotFound reports whether err is a classified 404.
func IsNotFound(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusNotFound
}

// IsValidation reports whether err carries field-level validation messages.
func IsValidation(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && len(apiErr.Fields) > 0
}

// StatusOf returns the HTTP status of a classified error, or 0.
func StatusOf(err error) int {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.StatusCode
	}
	return 0
}
