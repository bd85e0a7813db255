//go:build unit || e2e

package httptest

import (
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// AssertRateLimited checks the 429 body and the headers the rate limit
// middleware sets on rejection.
func AssertRateLimited(t *testing.T, w *httptest.ResponseRecorder, msg string) {
	t.Helper()
	AssertFlatErrorResponse(t, w, http.StatusTooManyRequests, msg)

	retry, err := strconv.Atoi(w.Header().Get("Retry-After"))
	require.NoError(t, err, "Retry-After must be whole seconds")
	assert.Positive(t, retry)
	assert.Equal(t, "0", w.Header().Get("X-RateLimit-Remaining"))
}
