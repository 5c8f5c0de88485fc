package bootstrap

import (
	"github.com/Varma0099/lill-things/cmd/bootstrap/components"
	"github.com/Varma0099/lill-things/internal/pkg/config"

	"go.uber.org/fx"
)

func Module(cfg config.Config) fx.Option {
	return fx.Options(
		ConfigModule(cfg),
		LoggerModule,
		JWTModule,
		persistenceModule(cfg.Store.Driver),
		realtimeModule(cfg.Realtime.Driver),
		components.MailerModule,
		components.UseCaseModule,
		components.JobsModule,
		components.HandlerModule,
	)
}

func persistenceModule(driver string) fx.Option {
	if driver == config.StoreDriverMemory {
		return components.MemoryPersistenceModule
	}
	return fx.Options(
		DBModule,
		components.PostgresPersistenceModule,
	)
}

func realtimeModule(driver string) fx.Option {
	if driver == config.RealtimeDriverRedis {
		return components.RedisRealtimeModule
	}
	return components.LocalRealtimeModule
}
