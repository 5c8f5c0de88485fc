package components

import (
	"context"
	"log/slog"

	"github.com/Varma0099/lill-things/internal/infra/realtime"
	"github.com/Varma0099/lill-things/internal/pkg/config"
	"github.com/Varma0099/lill-things/internal/usecase/commands"
	"github.com/Varma0099/lill-things/internal/usecase/shared"

	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

var LocalRealtimeModule = fx.Module("realtime/local",
	fx.Provide(
		fx.Annotate(
			NewHub,
			fx.As(fx.Self()),
			fx.As(new(shared.NotificationBus)),
			fx.As(new(commands.AvailabilityPublisher)),
		),
	),
)

var RedisRealtimeModule = fx.Module("realtime/redis",
	fx.Provide(
		NewHub,
		NewRedisClient,
		fx.Annotate(
			NewRedisBus,
			fx.As(new(shared.NotificationBus)),
			fx.As(new(commands.AvailabilityPublisher)),
		),
	),
)

func NewHub(cfg config.Config) *realtime.Hub {
	return realtime.NewHub(cfg.Realtime.BufferSize)
}

func NewRedisClient(lc fx.Lifecycle, cfg config.Config) *redis.Client {
	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			return rdb.Close()
		},
	})
	return rdb
}

// NewRedisBus pings Redis on start and relays its messages into the local
// hub until stop.
func NewRedisBus(lc fx.Lifecycle, cfg config.Config, rdb *redis.Client, hub *realtime.Hub) *realtime.RedisBus {
	bus := realtime.NewRedisBus(rdb, hub, cfg.Realtime.ChannelPrefix)

	runCtx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			if err := bus.Ping(ctx); err != nil {
				cancel()
				return err
			}
			go func() {
				defer close(done)
				if err := bus.Run(runCtx); err != nil {
					slog.Error("slot update relay stopped", slog.String("error", err.Error()))
				}
			}()
			slog.Info("📡 Relaying slot updates through Redis", slog.String("addr", cfg.Redis.Addr))
			return nil
		},
		OnStop: func(ctx context.Context) error {
			cancel()
			select {
			case <-done:
			case <-ctx.Done():
			}
			return nil
		},
	})
	return bus
}
