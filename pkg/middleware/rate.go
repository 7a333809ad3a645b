// Package middleware provides the HTTP middleware stack.
package middleware

import (
	"net"
	"net/http"
	"strings"

	"github.com/shashiranjanraj/fooddash/pkg/cache"
	"github.com/shashiranjanraj/fooddash/pkg/logger"
	"github.com/shashiranjanraj/fooddash/pkg/metrics"
	"github.com/shashiranjanraj/fooddash/pkg/response"
)

// RateLimit rejects a client with 429 once limiter refuses it. Clients are
// keyed by IP. A limiter error lets the request through: an unreachable
// Redis must not take the API down with it.
func RateLimit(limiter cache.Limiter) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ip := ClientIP(r)

			allowed, err := limiter.Allow(r.Context(), ip)
			if err != nil {
				logger.WithCtx(r.Context()).Warn("rate limiter unavailable", "error", err)
				allowed = true
			}

			if !allowed {
				metrics.RateLimited.Inc()
				response.TooManyRequests(w)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// ClientIP returns the first X-Forwarded-For hop, then X-Real-Ip, then
// the host part of RemoteAddr.
func ClientIP(r *http.Request) string {
	if fwd := r.Header.Get("X-Forwarded-For"); fwd != "" {
		return strings.TrimSpace(strings.SplitN(fwd, ",", 2)[0])
	}
	if real := r.Header.Get("X-Real-Ip"); real != "" {
		return real
	}
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
