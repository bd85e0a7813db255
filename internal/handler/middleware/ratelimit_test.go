//go:build unit

package middleware_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"rugboost-api/internal/handler/middleware"
	"rugboost-api/internal/pkg/clock"
	"rugboost-api/internal/pkg/ratelimit"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type failingLimiter struct{}

func (failingLimiter) Allow(context.Context, string) (ratelimit.Decision, error) {
	return ratelimit.Decision{}, errors.New("db down")
}

func newLimitedRouter(limiter ratelimit.Limiter) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/contact", middleware.RateLimit("contact", limiter, "Too many requests. Please try again later."), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"success": true})
	})
	return r
}

func post(r *gin.Engine, headers map[string]string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/contact", nil)
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestRateLimit(t *testing.T) {
	t.Run("sixth request is rejected with Retry-After", func(t *testing.T) {
		clk := clock.NewMockClock(time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC))
		r := newLimitedRouter(ratelimit.NewMemoryLimiter(ratelimit.Policy{Max: 5, Window: 10 * time.Minute}, clk))
		headers := map[string]string{"X-Forwarded-For": "203.0.113.5"}

		for i := 0; i < 5; i++ {
			w := post(r, headers)
			require.Equal(t, http.StatusOK, w.Code, "request %d", i+1)
			assert.Equal(t, 4-i, atoi(t, w.Header().Get("X-RateLimit-Remaining")))
		}

		clk.Add(4 * time.Minute)
		w := post(r, headers)
		assert.Equal(t, http.StatusTooManyRequests, w.Code)
		assert.Equal(t, "360", w.Header().Get("Retry-After"))
		assert.JSONEq(t, `{"error":"Too many requests. Please try again later."}`, w.Body.String())
	})

	t.Run("window reset admits the caller again", func(t *testing.T) {
		clk := clock.NewMockClock(time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC))
		r := newLimitedRouter(ratelimit.NewMemoryLimiter(ratelimit.Policy{Max: 1, Window: time.Minute}, clk))

		require.Equal(t, http.StatusOK, post(r, nil).Code)
		require.Equal(t, http.StatusTooManyRequests, post(r, nil).Code)

		clk.Add(time.Minute + time.Second)
		assert.Equal(t, http.StatusOK, post(r, nil).Code)
	})

	t.Run("callers are limited independently", func(t *testing.T) {
		clk := clock.NewMockClock(time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC))
		r := newLimitedRouter(ratelimit.NewMemoryLimiter(ratelimit.Policy{Max: 1, Window: time.Minute}, clk))

		require.Equal(t, http.StatusOK, post(r, map[string]string{"X-Real-IP": "198.51.100.1"}).Code)
		assert.Equal(t, http.StatusOK, post(r, map[string]string{"X-Real-IP": "198.51.100.2"}).Code)
		assert.Equal(t, http.StatusTooManyRequests, post(r, map[string]string{"X-Real-IP": "198.51.100.1"}).Code)
	})

	t.Run("limiter failure is a 500", func(t *testing.T) {
		w := post(newLimitedRouter(failingLimiter{}), nil)
		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.JSONEq(t, `{"error":"Internal server error"}`, w.Body.String())
	})
}

func TestClientIP(t *testing.T) {
	cases := []struct {
		name    string
		headers map[string]string
		want    string
	}{
		{name: "first forwarded entry", headers: map[string]string{"X-Forwarded-For": " 203.0.113.5 , 10.0.0.1"}, want: "203.0.113.5"},
		{name: "real ip fallback", headers: map[string]string{"X-Real-IP": "198.51.100.7"}, want: "198.51.100.7"},
		{name: "blank forwarded falls through", headers: map[string]string{"X-Forwarded-For": " , 10.0.0.1", "X-Real-IP": "198.51.100.7"}, want: "198.51.100.7"},
		{name: "unknown", headers: nil, want: "unknown"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			gin.SetMode(gin.TestMode)
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)
			c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
			for k, v := range tc.headers {
				c.Request.Header.Set(k, v)
			}
			assert.Equal(t, tc.want, middleware.ClientIP(c))
		})
	}
}
