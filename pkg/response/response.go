// Package response provides the JSON envelope shared by all HTTP handlers.
package response

import (
	"encoding/json"
	"net/http"

	apperrors "github.com/oKauaDev/establo/pkg/errors"
)

// Envelope is the standard API response shape.
type Envelope struct {
	Success bool        `json:"success"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
	Error   string      `json:"error,omitempty"`
}

// JSON sends a success response with an optional payload.
func JSON(w http.ResponseWriter, status int, message string, data interface{}) {
	write(w, status, Envelope{
		Success: status >= 200 && status < 300,
		Message: message,
		Data:    data,
	})
}

// Error sends an error response with the given status and message.
func Error(w http.ResponseWriter, status int, message string) {
	write(w, status, Envelope{Success: false, Error: message})
}

// AppError sends an error response derived from an application error.
// Unknown error values are reported as internal failures.
func AppError(w http.ResponseWriter, err error) {
	if appErr, ok := apperrors.AsAppError(err); ok {
		Error(w, appErr.HTTPStatus, appErr.Message)
		return
	}
	Error(w, http.StatusInternalServerError, "internal server error")
}

func write(w http.ResponseWriter, status int, body Envelope) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}
