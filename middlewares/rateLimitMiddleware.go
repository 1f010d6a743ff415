package middleware

import (
	"net/http"
	"strconv"

	"github.com/IrumShehryar/Restaurant-Website/apperrors"
	"github.com/IrumShehryar/Restaurant-Website/helper"

	"golang.org/x/time/rate"
)

// RateLimit rejects requests with 429 once limiter runs out of tokens.
func RateLimit(limiter *rate.Limiter) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !limiter.Allow() {
				rateLimitRejects.Inc()
				w.Header().Set("Retry-After", "1")
				helper.WriteError(w, r, apperrors.ErrCodeRateLimitExceeded, "rate limit exceeded",
					map[string]any{
						"limit": float64(limiter.Limit()),
						"burst": limiter.Burst(),
					})
				return
			}

			w.Header().Set("X-RateLimit-Limit", strconv.Itoa(int(limiter.Limit())))
			w.Header().Set("X-RateLimit-Remaining", strconv.Itoa(int(limiter.Tokens())))
			next.ServeHTTP(w, r)
		})
	}
}
