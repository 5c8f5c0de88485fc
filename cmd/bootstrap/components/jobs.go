package components

import (
	"context"
	"log/slog"

	"github.com/Varma0099/lill-things/internal/infra/scheduler"
	"github.com/Varma0099/lill-things/internal/pkg/config"
	"github.com/Varma0099/lill-things/internal/usecase/commands"

	"go.uber.org/fx"
)

var JobsModule = fx.Module("jobs",
	fx.Invoke(StartScheduler),
)

func StartScheduler(lc fx.Lifecycle, cfg config.Config, maintenance commands.MaintenanceCommands) error {
	if !cfg.Jobs.Enabled {
		slog.Info("Background jobs are disabled")
		return nil
	}

	s, err := scheduler.New(cfg.Jobs, maintenance)
	if err != nil {
		return err
	}
	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			s.Start()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			return s.Stop(ctx)
		},
	})
	return nil
}
