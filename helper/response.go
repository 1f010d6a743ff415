package helper

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/IrumShehryar/Restaurant-Website/apperrors"

	"github.com/google/uuid"
)

// Envelope is the body of every successful API response.
type Envelope struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Data    any    `json:"data,omitempty"`
}

// ErrorResponse is the body of every failed API response.
type ErrorResponse struct {
	Success   bool                `json:"success"`
	Code      apperrors.ErrorCode `json:"code"`
	Message   string              `json:"message"`
	Details   map[string]any      `json:"details,omitempty"`
	RequestID string              `json:"request_id"`
	Timestamp time.Time           `json:"timestamp"`
}

// RespondJSON writes data as JSON with the given status code.
func RespondJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		slog.Error("failed to encode JSON response", "error", err)
	}
}

func RespondSuccess(w http.ResponseWriter, status int, message string, data any) {
	RespondJSON(w, status, Envelope{
		Success: true,
		Message: message,
		Data:    data,
	})
}

// StatusFor maps an error code to its HTTP status.
func StatusFor(code apperrors.ErrorCode) int {
	switch code {
	case apperrors.ErrCodeValidation, apperrors.ErrCodeMalformedInput:
		return http.StatusBadRequest
	case apperrors.ErrCodeNotFound:
		return http.StatusNotFound
	case apperrors.ErrCodeMethodNotAllowed:
		return http.StatusMethodNotAllowed
	case apperrors.ErrCodeRateLimitExceeded:
		return http.StatusTooManyRequests
	case apperrors.ErrCodeStoreUnavailable:
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

// RespondError writes err as an ErrorResponse. Errors without a code are
// reported as INTERNAL and their text is not exposed to the client.
func RespondError(w http.ResponseWriter, r *http.Request, err error) {
	code := apperrors.ErrCodeInternal
	message := "internal server error"
	var details map[string]any

	var se *apperrors.StructuredError
	if errors.As(err, &se) && se.Code != apperrors.ErrCodeInternal {
		code = se.Code
		message = se.Message
		details = se.Context
	}

	if StatusFor(code) >= http.StatusInternalServerError {
		slog.Error("request failed",
			"requestID", RequestID(r.Context()),
			"method", r.Method,
			"path", r.URL.Path,
			"code", code,
			"error", err,
		)
	}

	WriteError(w, r, code, message, details)
}

// WriteError writes an ErrorResponse for code.
func WriteError(w http.ResponseWriter, r *http.Request, code apperrors.ErrorCode, message string, details map[string]any) {
	requestID := RequestID(r.Context())
	if requestID == "" {
		requestID = uuid.New().String()
	}

	RespondJSON(w, StatusFor(code), ErrorResponse{
		Success:   false,
		Code:      code,
		Message:   message,
		Details:   details,
		RequestID: requestID,
		Timestamp: time.Now().UTC(),
	})
}
