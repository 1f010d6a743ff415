package middleware

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/IrumShehryar/Restaurant-Website/apperrors"
	"github.com/IrumShehryar/Restaurant-Website/helper"
)

// Recover turns a panicking handler into a 500 INTERNAL response.
func Recover(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if rec := recover(); rec != nil {
				if rec == http.ErrAbortHandler {
					panic(rec)
				}
				panicRecoveries.Inc()
				slog.Error("panic recovered",
					"error", fmt.Sprint(rec),
					"requestID", helper.RequestID(r.Context()),
					"method", r.Method,
					"path", r.URL.Path,
				)
				helper.WriteError(w, r, apperrors.ErrCodeInternal, "internal server error", nil)
			}
		}()
		next.ServeHTTP(w, r)
	})
}
