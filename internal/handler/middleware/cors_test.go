//go:build unit

package middleware

import (
	"net/http"
	stdhttptest "net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/Varma0099/lill-things/internal/pkg/config"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func corsRouter(cfg config.CORSConfig) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(NewCORSMiddleware(cfg))
	r.POST("/api/bookings", func(c *gin.Context) {
		c.Header(HeaderIdempotentReplayed, "true")
		c.Status(http.StatusOK)
	})
	return r
}

func TestCORS_BookingRetryHeaders(t *testing.T) {
	// Overridden lists that forgot the retry headers.
	r := corsRouter(config.CORSConfig{
		AllowOrigins:  []string{"http://localhost:5173"},
		AllowMethods:  []string{http.MethodPost},
		AllowHeaders:  []string{"Content-Type"},
		ExposeHeaders: []string{"Content-Length"},
		MaxAge:        time.Hour,
	})

	t.Run("preflight allows Idempotency-Key", func(t *testing.T) {
		req := stdhttptest.NewRequest(http.MethodOptions, "/api/bookings", nil)
		req.Header.Set("Origin", "http://localhost:5173")
		req.Header.Set("Access-Control-Request-Method", http.MethodPost)
		req.Header.Set("Access-Control-Request-Headers", "content-type,idempotency-key")
		w := stdhttptest.NewRecorder()
		r.ServeHTTP(w, req)

		require.Equal(t, http.StatusNoContent, w.Code)
		allowed := strings.ToLower(w.Header().Get("Access-Control-Allow-Headers"))
		assert.Contains(t, allowed, "idempotency-key")
	})

	t.Run("response exposes Retry-After and Idempotent-Replayed", func(t *testing.T) {
		req := stdhttptest.NewRequest(http.MethodPost, "/api/bookings", nil)
		req.Header.Set("Origin", "http://localhost:5173")
		w := stdhttptest.NewRecorder()
		r.ServeHTTP(w, req)

		require.Equal(t, http.StatusOK, w.Code)
		exposed := strings.ToLower(w.Header().Get("Access-Control-Expose-Headers"))
		assert.Contains(t, exposed, "retry-after")
		assert.Contains(t, exposed, "idempotent-replayed")
		assert.Contains(t, exposed, "content-length")
	})

	t.Run("unknown origin is refused", func(t *testing.T) {
		req := stdhttptest.NewRequest(http.MethodPost, "/api/bookings", nil)
		req.Header.Set("Origin", "https://evil.example")
		w := stdhttptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusForbidden, w.Code)
	})
}

func TestWithHeaders(t *testing.T) {
	in := []string{"Origin", "idempotency-key"}
	got := withHeaders(in, HeaderIdempotencyKey, HeaderRetryAfter)

	assert.Equal(t, []string{"Origin", "idempotency-key", "Retry-After"}, got)
	assert.Equal(t, []string{"Origin", "idempotency-key"}, in, "input is not mutated")
}
