package middleware

import (
	"context"
	"log/slog"
	"math"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/Varma0099/lill-things/internal/pkg/config"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

// RateLimiter keeps one token bucket per client IP. Buckets idle for longer
// than the TTL are dropped by the janitor.
type RateLimiter struct {
	mu      sync.Mutex
	entries map[string]*limiterEntry
	rps     rate.Limit
	burst   int
	idleTTL time.Duration
	enabled bool
	now     func() time.Time
}

type limiterEntry struct {
	lim      *rate.Limiter
	lastSeen time.Time
}

func NewRateLimiter(cfg config.RateLimitConfig) *RateLimiter {
	ttl := cfg.TTL
	if ttl <= 0 {
		ttl = 10 * time.Minute
	}
	burst := cfg.Burst
	if burst < 1 {
		burst = 1
	}
	return &RateLimiter{
		entries: make(map[string]*limiterEntry),
		rps:     rate.Limit(cfg.RPS),
		burst:   burst,
		idleTTL: ttl,
		enabled: cfg.Enabled,
		now:     time.Now,
	}
}

// RateLimiters holds one limiter per protected route family. Login and
// booking never share buckets.
type RateLimiters struct {
	Booking *RateLimiter
	Login   *RateLimiter
}

func NewRateLimiters(cfg config.RateLimitConfig) *RateLimiters {
	login := cfg
	login.RPS = cfg.LoginRPS
	login.Burst = cfg.LoginBurst
	return &RateLimiters{
		Booking: NewRateLimiter(cfg),
		Login:   NewRateLimiter(login),
	}
}

func (rs *RateLimiters) StartJanitors(ctx context.Context) {
	rs.Booking.StartJanitor(ctx)
	rs.Login.StartJanitor(ctx)
}

func (r *RateLimiter) limiter(key string) *rate.Limiter {
	now := r.now()

	r.mu.Lock()
	defer r.mu.Unlock()

	if ent, ok := r.entries[key]; ok {
		ent.lastSeen = now
		return ent.lim
	}
	lim := rate.NewLimiter(r.rps, r.burst)
	r.entries[key] = &limiterEntry{lim: lim, lastSeen: now}
	return lim
}

func (r *RateLimiter) Cleanup() {
	cutoff := r.now().Add(-r.idleTTL)

	r.mu.Lock()
	defer r.mu.Unlock()

	for k, ent := range r.entries {
		if ent.lastSeen.Before(cutoff) {
			delete(r.entries, k)
		}
	}
}

// StartJanitor runs Cleanup every half TTL until ctx is done.
func (r *RateLimiter) StartJanitor(ctx context.Context) {
	if !r.enabled {
		return
	}
	t := time.NewTicker(r.idleTTL / 2)
	go func() {
		defer t.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-t.C:
				r.Cleanup()
			}
		}
	}()
}

func (r *RateLimiter) Handler() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !r.enabled {
			c.Next()
			return
		}

		lim := r.limiter(c.ClientIP())
		res := lim.Reserve()
		if !res.OK() || res.Delay() > 0 {
			retryAfter := 1
			if res.OK() {
				retryAfter = max(1, int(math.Ceil(res.Delay().Seconds())))
				res.Cancel()
			}
			slog.Warn("rate limit exceeded", "client_ip", c.ClientIP(), "path", c.FullPath())
			c.Header(HeaderRetryAfter, strconv.Itoa(retryAfter))
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{
				"success": false,
				"message": "Too many requests, please try again later",
			})
			return
		}
		c.Next()
	}
}
