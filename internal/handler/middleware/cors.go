package middleware

import (
	"log/slog"
	"slices"
	"strings"

	"github.com/Varma0099/lill-things/internal/pkg/config"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// NewCORSMiddleware builds the gin-contrib/cors handler. The booking retry
// headers are always allowed and exposed, so a browser client can send an
// Idempotency-Key and read back Retry-After or Idempotent-Replayed even when
// the env lists were overridden without them.
func NewCORSMiddleware(cfg config.CORSConfig) gin.HandlerFunc {
	corsCfg := cors.Config{
		AllowOrigins:     cfg.AllowOrigins,
		AllowMethods:     cfg.AllowMethods,
		AllowHeaders:     withHeaders(cfg.AllowHeaders, HeaderIdempotencyKey),
		ExposeHeaders:    withHeaders(cfg.ExposeHeaders, HeaderRetryAfter, HeaderIdempotentReplayed),
		AllowCredentials: cfg.AllowCredentials,
		MaxAge:           cfg.MaxAge,
	}
	slog.Info("CORS middleware initialized",
		"allow_origins", corsCfg.AllowOrigins, "expose_headers", corsCfg.ExposeHeaders)
	return cors.New(corsCfg)
}

func withHeaders(list []string, required ...string) []string {
	out := slices.Clone(list)
	for _, h := range required {
		if !slices.ContainsFunc(out, func(v string) bool { return strings.EqualFold(v, h) }) {
			out = append(out, h)
		}
	}
	return out
}
