//go:build unit

package middleware

import (
	"net/http"
	stdhttptest "net/http/httptest"
	"testing"
	"time"

	"github.com/Varma0099/lill-things/internal/pkg/config"
	"github.com/Varma0099/lill-things/tests/common/httptest"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/time/rate"
)

func newLimitedRouter(rl *RateLimiter) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/api/bookings", rl.Handler(), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})
	return r
}

func hit(r *gin.Engine, ip string) *stdhttptest.ResponseRecorder {
	return hitPath(r, "/api/bookings", ip)
}

func hitPath(r *gin.Engine, path, ip string) *stdhttptest.ResponseRecorder {
	req := stdhttptest.NewRequest(http.MethodPost, path, nil)
	req.RemoteAddr = ip + ":51000"
	w := stdhttptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestRateLimiter_BurstThenReject(t *testing.T) {
	rl := NewRateLimiter(config.RateLimitConfig{Enabled: true, RPS: 0.5, Burst: 3, TTL: time.Minute})
	r := newLimitedRouter(rl)

	for i := range 3 {
		assert.Equal(t, http.StatusOK, hit(r, "10.0.0.1").Code, "request %d", i+1)
	}

	w := hit(r, "10.0.0.1")
	require.Equal(t, http.StatusTooManyRequests, w.Code)
	httptest.AssertRetryAfter(t, w.Header(), 1)
	assert.JSONEq(t, `{"success":false,"message":"Too many requests, please try again later"}`, w.Body.String())

	// Buckets are per client.
	assert.Equal(t, http.StatusOK, hit(r, "10.0.0.2").Code)
}

func TestRateLimiter_RejectedRequestsDoNotConsumeTokens(t *testing.T) {
	rl := NewRateLimiter(config.RateLimitConfig{Enabled: true, RPS: 1, Burst: 1, TTL: time.Minute})
	r := newLimitedRouter(rl)

	require.Equal(t, http.StatusOK, hit(r, "10.0.0.1").Code)
	for range 5 {
		require.Equal(t, http.StatusTooManyRequests, hit(r, "10.0.0.1").Code)
	}
	// A cancelled reservation hands its token back, so the wait never grows past one interval.
	httptest.AssertHeaders(t, hit(r, "10.0.0.1").Header(), map[string]string{HeaderRetryAfter: "1"})
}

func TestRateLimiter_Disabled(t *testing.T) {
	rl := NewRateLimiter(config.RateLimitConfig{Enabled: false, RPS: 0.1, Burst: 1})
	r := newLimitedRouter(rl)

	for range 10 {
		assert.Equal(t, http.StatusOK, hit(r, "10.0.0.1").Code)
	}
	assert.Empty(t, rl.entries)
}

func TestRateLimiter_CleanupDropsIdleClients(t *testing.T) {
	rl := NewRateLimiter(config.RateLimitConfig{Enabled: true, RPS: 1, Burst: 1, TTL: time.Minute})
	base := time.Date(2030, 6, 15, 10, 0, 0, 0, time.UTC)
	rl.now = func() time.Time { return base }

	rl.limiter("10.0.0.1")
	rl.now = func() time.Time { return base.Add(45 * time.Second) }
	rl.limiter("10.0.0.2")

	rl.now = func() time.Time { return base.Add(90 * time.Second) }
	rl.Cleanup()

	assert.NotContains(t, rl.entries, "10.0.0.1")
	assert.Contains(t, rl.entries, "10.0.0.2")
}

func TestRateLimiters_LoginAndBookingAreSeparate(t *testing.T) {
	rls := NewRateLimiters(config.RateLimitConfig{
		Enabled: true, RPS: 0.5, Burst: 2, LoginRPS: 0.1, LoginBurst: 1, TTL: time.Minute,
	})
	gin.SetMode(gin.TestMode)
	r := gin.New()
	ok := func(c *gin.Context) { c.Status(http.StatusOK) }
	r.POST("/api/bookings", rls.Booking.Handler(), ok)
	r.POST("/api/admin/login", rls.Login.Handler(), ok)

	require.Equal(t, http.StatusOK, hitPath(r, "/api/admin/login", "10.0.0.1").Code)
	for range 3 {
		w := hitPath(r, "/api/admin/login", "10.0.0.1")
		require.Equal(t, http.StatusTooManyRequests, w.Code)
		httptest.AssertRetryAfter(t, w.Header(), 1)
	}

	// Failed sign-ins leave the booking bucket full.
	for i := range 2 {
		assert.Equal(t, http.StatusOK, hit(r, "10.0.0.1").Code, "booking %d", i+1)
	}
	assert.Equal(t, http.StatusTooManyRequests, hit(r, "10.0.0.1").Code)

	assert.Contains(t, rls.Login.entries, "10.0.0.1")
	assert.Contains(t, rls.Booking.entries, "10.0.0.1")
	assert.Equal(t, rate.Limit(0.1), rls.Login.rps)
	assert.Equal(t, 2, rls.Booking.burst)
}
