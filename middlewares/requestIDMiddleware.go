package middleware

import (
	"net/http"

	"github.com/IrumShehryar/Restaurant-Website/helper"

	"github.com/google/uuid"
)

const RequestIDHeader = "X-Request-Id"

// RequestID reuses a valid UUID from the X-Request-Id header or generates
// a new one, stores it in the request context and echoes it back.
func RequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID := r.Header.Get(RequestIDHeader)
		if _, err := uuid.Parse(requestID); err != nil {
			requestID = uuid.New().String()
		}

		w.Header().Set(RequestIDHeader, requestID)
		next.ServeHTTP(w, r.WithContext(helper.WithRequestID(r.Context(), requestID)))
	})
}
