package middleware

import (
	"net/http"

	"golang.org/x/time/rate"

	"MOVIELIST_BACK-END/internal/utils"
)

// RateLimit applies a token-bucket limiter to a handler. Used on the auth
// endpoints to slow down credential stuffing.
func RateLimit(next http.HandlerFunc, limiter *rate.Limiter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if !limiter.Allow() {
			utils.WriteErrorResponse(w, http.StatusTooManyRequests, "Too many requests", "Rate limit exceeded, try again later")
			return
		}
		next(w, r)
	}
}
