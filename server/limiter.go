package server

import (
	"net/http"

	"golang.org/x/time/rate"

	"github.com/katalvlaran/gridpath/metrics"
)

// RateLimiter wraps the token bucket limiter
type RateLimiter struct {
	limiter *rate.Limiter
	enabled bool
}

// NewRateLimiter creates a new rate limiter. rps <= 0 disables limiting;
// burst <= 0 means use rps.
func NewRateLimiter(rps, burst int) *RateLimiter {
	if rps <= 0 {
		return &RateLimiter{enabled: false}
	}
	if burst <= 0 {
		burst = rps
	}
	return &RateLimiter{
		limiter: rate.NewLimiter(rate.Limit(rps), burst),
		enabled: true,
	}
}

// Enabled reports whether requests are limited at all.
func (l *RateLimiter) Enabled() bool { return l.enabled }

// Middleware rejects requests above the rate with 429 Too Many Requests.
func (l *RateLimiter) Middleware(next http.Handler) http.Handler {
	if !l.enabled {
		return next
	}
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !l.limiter.Allow() {
			metrics.RateLimitedTotal.Inc()
			w.Header().Set("Retry-After", "1")
			writeError(w, http.StatusTooManyRequests, "rate limit exceeded")
			return
		}
		next.ServeHTTP(w, r)
	})
}
