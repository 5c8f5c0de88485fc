package components

import (
	"context"

	"github.com/Varma0099/lill-things/internal/handler"
	"github.com/Varma0099/lill-things/internal/handler/api"
	"github.com/Varma0099/lill-things/internal/handler/middleware"
	"github.com/Varma0099/lill-things/internal/pkg/config"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewAuthHandler,
		api.NewBookingHandler,
		api.NewSlotHandler,
		api.NewActivityHandler,
		api.NewAdminHandler,
		api.NewRealtimeHandler,
		middleware.NewAuthMiddleware,
		NewRateLimiters,
	),
	fx.Invoke(handler.NewRouter),
)

// NewRateLimiters sweeps idle client buckets for the app's lifetime.
func NewRateLimiters(lc fx.Lifecycle, cfg config.Config) *middleware.RateLimiters {
	rl := middleware.NewRateLimiters(cfg.RateLimit)

	ctx, cancel := context.WithCancel(context.Background())
	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			rl.StartJanitors(ctx)
			return nil
		},
		OnStop: func(_ context.Context) error {
			cancel()
			return nil
		},
	})
	return rl
}
