package components

import (
	"context"
	"time"

	"github.com/Varma0099/lill-things/internal/domain/booking"
	"github.com/Varma0099/lill-things/internal/pkg/clock"
	"github.com/Varma0099/lill-things/internal/pkg/config"
	"github.com/Varma0099/lill-things/internal/pkg/errs"
	"github.com/Varma0099/lill-things/internal/usecase"
	"github.com/Varma0099/lill-things/internal/usecase/commands"
	"github.com/Varma0099/lill-things/internal/usecase/queries"
	"github.com/Varma0099/lill-things/internal/usecase/shared"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseQueriesModule,
	usecaseValidatorsModule,
	usecaseCommandsModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
	fx.Annotate(
		booking.NewRandomCodeGenerator,
		fx.As(new(booking.CodeGenerator)),
	),
	func(cfg config.Config) commands.ReservationSettings {
		return commands.ReservationSettings{
			MaxCodeAttempts: cfg.Reservation.MaxCodeAttempts,
			IdempotencyTTL:  cfg.Reservation.IdempotencyTTL,
		}
	},
	func(cfg config.Config) commands.AdminAccount {
		return commands.AdminAccount{
			Username:     cfg.Admin.Username,
			PasswordHash: cfg.Admin.PasswordHash,
		}
	},
	NewMaintenanceSettings,
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		NewNotificationDispatcher,
		commands.NewAuthCommands,
		commands.NewReservationCommands,
		commands.NewAdminCommands,
		commands.NewMaintenanceCommands,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewActivityQueries,
		queries.NewAvailabilityQueries,
		queries.NewBookingQueries,
	),
)

var usecaseValidatorsModule = fx.Module("usecase/validators",
	fx.Provide(
		usecase.NewTokenValidator,
	),
)

func NewMaintenanceSettings(cfg config.Config) (commands.MaintenanceSettings, error) {
	loc, err := time.LoadLocation(cfg.Jobs.CompletionTimezone)
	if err != nil {
		return commands.MaintenanceSettings{}, errs.Wrap(err, "invalid JOBS_COMPLETION_TIMEZONE")
	}
	return commands.MaintenanceSettings{
		ResendGracePeriod: cfg.Jobs.ResendGracePeriod,
		ResendBatchSize:   cfg.Jobs.ResendBatchSize,
		ResendMaxAttempts: cfg.Jobs.ResendMaxAttempts,
		Location:          loc,
	}, nil
}

// NewNotificationDispatcher waits for in-flight emails on shutdown.
func NewNotificationDispatcher(
	lc fx.Lifecycle,
	cfg config.Config,
	notifier commands.BookingNotifier,
	uow shared.UnitOfWork,
	clk clock.Clock,
) *commands.NotificationDispatcher {
	d := commands.NewNotificationDispatcher(notifier, uow, clk, cfg.Mail.SendTimeout)
	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			return d.Drain(ctx)
		},
	})
	return d
}
