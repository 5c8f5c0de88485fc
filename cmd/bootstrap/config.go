package bootstrap

import (
	"github.com/Varma0099/lill-things/internal/pkg/config"

	"go.uber.org/fx"
)

// ConfigModule supplies an already loaded config. main loads it before the
// graph is built because the store and realtime drivers pick modules.
func ConfigModule(cfg config.Config) fx.Option {
	return fx.Module("config",
		fx.Supply(cfg),
	)
}
