// Package recovery is the outermost exception boundary. Every route is
// wrapped by Handler so that any returned error or panic becomes a
// structured 500 response and nothing else.
package recovery

import (
	"encoding/json"
	"fmt"
	"net/http"
	"runtime/debug"

	"github.com/rs/zerolog/log"
)

// ErrorBody is the wire shape of an unhandled fault. Details is only
// populated in development mode.
type ErrorBody struct {
	StatusCode int    `json:"statusCode"`
	Message    string `json:"message"`
	Details    string `json:"details,omitempty"`
}

// HandlerFunc is an HTTP handler that surfaces unhandled faults as a
// returned error instead of writing a response itself.
type HandlerFunc func(w http.ResponseWriter, r *http.Request) error

// Handler wraps fn so that a returned error or a panic is logged with
// full detail and converted to a 500 JSON body. The boundary never
// retries and never downgrades a fault to a 4xx; the request ends here.
func Handler(dev bool, fn HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if rec := recover(); rec != nil {
				writeFault(w, r, fmt.Errorf("panic: %v", rec), debug.Stack(), dev)
			}
		}()
		if err := fn(w, r); err != nil {
			writeFault(w, r, err, debug.Stack(), dev)
		}
	}
}

func writeFault(w http.ResponseWriter, r *http.Request, err error, stack []byte, dev bool) {
	log.Error().
		Err(err).
		Str("method", r.Method).
		Str("url", r.URL.String()).
		Str("remote", r.RemoteAddr).
		Bytes("stack", stack).
		Msg("unhandled fault")

	body := ErrorBody{
		StatusCode: http.StatusInternalServerError,
		Message:    "Internal Server Error",
	}
	if dev {
		body.Message = err.Error()
		body.Details = string(stack)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusInternalServerError)
	_ = json.NewEncoder(w).Encode(body)
}
