// Package response writes JSON bodies. Successful responses carry the
// resource itself; failures carry {"message": ...} plus an optional
// field-level "errors" map.
package response

import (
	"encoding/json"
	"net/http"
)

// Body is the shape of every non-resource response.
type Body struct {
	Message string            `json:"message"`
	Errors  map[string]string `json:"errors,omitempty"`
}

// JSON writes v with the given status.
func JSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v) //nolint:errcheck
}

// Message writes {"message": message}.
func Message(w http.ResponseWriter, status int, message string) {
	JSON(w, status, Body{Message: message})
}

// Error is Message for failures.
func Error(w http.ResponseWriter, status int, message string) {
	Message(w, status, message)
}

// ValidationError sends a 400 with the field-level error map.
func ValidationError(w http.ResponseWriter, message string, errs map[string]string) {
	JSON(w, http.StatusBadRequest, Body{Message: message, Errors: errs})
}

// NotFound sends a 404.
func NotFound(w http.ResponseWriter, message string) {
	Error(w, http.StatusNotFound, message)
}

// TooManyRequests sends a 429.
func TooManyRequests(w http.ResponseWriter) {
	Error(w, http.StatusTooManyRequests, "Too Many Requests")
}
