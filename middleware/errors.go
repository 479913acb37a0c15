package middleware

import (
	"encoding/json"
	"errors"
	"net/http"
)

// ErrClaimMismatch is reported when a verified token carries an iss or aud
// claim that does not match the middleware configuration.
var ErrClaimMismatch = errors.New("middleware: claim mismatch")

// ErrMissingToken is reported when no extractor found a token in the request.
var ErrMissingToken = errors.New("middleware: missing token")

// HTTPError is the JSON body written for rejected requests.
type HTTPError struct {
	Status  int            `json:"-"`
	Code    string         `json:"code"`
	Message string         `json:"message"`
	Details map[string]any `json:"details,omitempty"`
}

// Error implements the error interface.
func (e HTTPError) Error() string {
	return e.Message
}

// WithMessage returns a copy of the error with a custom message.
func (e HTTPError) WithMessage(message string) HTTPError {
	e.Message = message
	return e
}

// WithDetail returns a copy of the error with one more detail entry.
func (e HTTPError) WithDetail(key string, value any) HTTPError {
	details := make(map[string]any, len(e.Details)+1)
	for k, v := range e.Details {
		details[k] = v
	}
	details[key] = value
	e.Details = details
	return e
}

// ErrUnauthorized is the default response for a missing or rejected token.
var ErrUnauthorized = HTTPError{
	Status:  http.StatusUnauthorized,
	Code:    "unauthorized",
	Message: http.StatusText(http.StatusUnauthorized),
}

// WriteError writes e as JSON with its status code.
func WriteError(w http.ResponseWriter, e HTTPError) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.Header().Set("X-Content-Type-Options", "nosniff")
	w.WriteHeader(e.Status)
	_ = json.NewEncoder(w).Encode(e)
}
