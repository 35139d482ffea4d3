package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"

	"demodash/pkg/types"
)

// HTTPError allows services to provide an HTTP status code for an error.
// The predict package's CoercionError, BoundsError and RequestError implement it.
type HTTPError interface {
	error
	StatusCode() int
}

// hinter is implemented by errors carrying a remediation hint.
type hinter interface {
	Hint() string
}

// statusFor maps a service error to an HTTP status, 500 when unknown.
func statusFor(err error) int {
	var he HTTPError
	if errors.As(err, &he) {
		return he.StatusCode()
	}
	return http.StatusInternalServerError
}

// hintFor returns the remediation hint carried by err, if any.
func hintFor(err error) string {
	var h hinter
	if errors.As(err, &h) {
		return h.Hint()
	}
	return ""
}

// writeJSONError writes a consistent JSON error payload.
func writeJSONError(w http.ResponseWriter, status int, msg string) {
	writeJSONErrorHint(w, status, msg, "")
}

func writeJSONErrorHint(w http.ResponseWriter, status int, msg, hint string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(types.ErrorResponse{Error: msg, Code: status, Hint: hint})
}
