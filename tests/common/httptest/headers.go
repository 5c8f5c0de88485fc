//go:build unit || e2e

package httptest

import (
	"net/http"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// AssertHeaders compares single-valued response headers. An empty expected
// value asserts the header is absent.
func AssertHeaders(t *testing.T, h http.Header, expected map[string]string) {
	t.Helper()
	for k, v := range expected {
		if v == "" {
			assert.Empty(t, h.Values(k), "header %s should be absent", k)
			continue
		}
		assert.Equal(t, v, h.Get(k), "header %s mismatch", k)
	}
}

// AssertRetryAfter checks a 429 carries a whole-second Retry-After of at
// least minSeconds.
func AssertRetryAfter(t *testing.T, h http.Header, minSeconds int) {
	t.Helper()
	raw := h.Get("Retry-After")
	require.NotEmpty(t, raw, "Retry-After missing")
	secs, err := strconv.Atoi(raw)
	require.NoError(t, err, "Retry-After %q is not whole seconds", raw)
	assert.GreaterOrEqual(t, secs, minSeconds)
}
