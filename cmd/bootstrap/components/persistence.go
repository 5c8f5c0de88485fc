package components

import (
	"context"
	"log/slog"

	"github.com/Varma0099/lill-things/internal/domain/activity"
	"github.com/Varma0099/lill-things/internal/infra/memstore"
	"github.com/Varma0099/lill-things/internal/infra/readstore"
	sqlc "github.com/Varma0099/lill-things/internal/infra/sqlc/generated"
	"github.com/Varma0099/lill-things/internal/infra/uow"
	"github.com/Varma0099/lill-things/internal/pkg/config"
	"github.com/Varma0099/lill-things/internal/usecase/queries"
	"github.com/Varma0099/lill-things/internal/usecase/shared"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

// CatalogSeeder is implemented by both stores.
type CatalogSeeder interface {
	SeedActivities(ctx context.Context, catalog []*activity.Activity) error
}

var PostgresPersistenceModule = fx.Module("persistence/postgres",
	baseOption,
	readstoreModule,
	uowModule,
	fx.Invoke(SeedCatalog),
)

var MemoryPersistenceModule = fx.Module("persistence/memory",
	fx.Provide(
		fx.Annotate(
			memstore.New,
			fx.As(fx.Self()),
			fx.As(new(shared.UnitOfWork)),
			fx.As(new(CatalogSeeder)),
		),
		fx.Annotate(
			memstore.NewReadStore,
			fx.As(new(queries.ActivityReadStore)),
			fx.As(new(queries.SlotReadStore)),
			fx.As(new(queries.BookingReadStore)),
		),
	),
	fx.Invoke(func(logger *slog.Logger) {
		logger.Warn("⚠️ Using the in-memory store, data is lost on restart")
	}),
	fx.Invoke(SeedCatalog),
)

var baseOption = fx.Provide(
	NewSQLQueries,
	NewDBTX,
)

var readstoreModule = fx.Module("persistence/readstore",
	fx.Provide(
		// Activity
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.ActivityReadQueries)),
		),
		fx.Annotate(
			readstore.NewActivityReadStore,
			fx.As(new(queries.ActivityReadStore)),
		),
		// Slot
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.SlotReadQueries)),
		),
		fx.Annotate(
			readstore.NewSlotReadStore,
			fx.As(new(queries.SlotReadStore)),
		),
		// Booking
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.BookingReadQueries)),
		),
		fx.Annotate(
			readstore.NewBookingReadStore,
			fx.As(new(queries.BookingReadStore)),
		),
	),
)

// Write-side repositories are built per transaction inside the UoW.
var uowModule = fx.Module("persistence/uow",
	fx.Provide(
		fx.Annotate(
			uow.NewPostgresUoW,
			fx.As(new(shared.UnitOfWork)),
			fx.As(new(CatalogSeeder)),
		),
	),
)

func NewSQLQueries(_ *pgxpool.Pool) *sqlc.Queries {
	return sqlc.New()
}

func NewDBTX(pool *pgxpool.Pool) sqlc.DBTX {
	return pool
}

// SeedCatalog upserts the default activities on start when enabled.
func SeedCatalog(lc fx.Lifecycle, cfg config.Config, seeder CatalogSeeder) {
	if !cfg.Store.SeedCatalog {
		return
	}
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			catalog := activity.DefaultCatalog()
			if err := seeder.SeedActivities(ctx, catalog); err != nil {
				return err
			}
			slog.Info("🌱 Activity catalog seeded", slog.Int("activities", len(catalog)))
			return nil
		},
	})
}
