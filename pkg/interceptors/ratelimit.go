package interceptors

import (
	"net/http"

	"golang.org/x/time/rate"
)

// NewRateLimitMiddleware applies a shared token bucket to the inbound API.
// The widgets poll on timers, so a small burst is plenty; excess requests get
// 429 rather than queueing.
func NewRateLimitMiddleware(limiter *rate.Limiter) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !limiter.Allow() {
				http.Error(w, "rate limit exceeded", http.StatusTooManyRequests)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
