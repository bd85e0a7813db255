package middleware

import (
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"rugboost-api/internal/domain/user"
	"rugboost-api/internal/handler/httperr"
	"rugboost-api/internal/pkg/ratelimit"

	"github.com/gin-gonic/gin"
)

const unknownClient = "unknown"

// ClientIP identifies the caller behind the edge proxy: the first
// X-Forwarded-For entry, then X-Real-IP, then "unknown".
func ClientIP(c *gin.Context) string {
	if fwd := c.GetHeader("X-Forwarded-For"); fwd != "" {
		first, _, _ := strings.Cut(fwd, ",")
		if ip := strings.TrimSpace(first); ip != "" {
			return ip
		}
	}
	if ip := strings.TrimSpace(c.GetHeader("X-Real-IP")); ip != "" {
		return ip
	}
	return unknownClient
}

// RateLimit rejects callers over the limiter's policy with 429, a
// Retry-After header and the given message. A limiter failure rejects the
// request with 500.
func RateLimit(scope string, limiter ratelimit.Limiter, message string) gin.HandlerFunc {
	return func(c *gin.Context) {
		ip := ClientIP(c)
		decision, err := limiter.Allow(c.Request.Context(), scope+":"+ip)
		if err != nil {
			slog.Error("rate limit check failed", "scope", scope, "error", err)
			httperr.AbortFlat(c, http.StatusInternalServerError, err, "Internal server error")
			return
		}

		c.Header("X-RateLimit-Remaining", strconv.Itoa(decision.Remaining))
		if !decision.Allowed {
			slog.Warn("rate limit exceeded", "scope", scope, "ip", user.Mask(ip, 7))
			c.Header("Retry-After", strconv.Itoa(decision.RetryAfterSeconds()))
			httperr.AbortFlat(c, http.StatusTooManyRequests, nil, message)
			return
		}

		c.Next()
	}
}
