package repository

import (
	"context"

	"github.com/Varma0099/lill-things/internal/domain/activity"
	"github.com/Varma0099/lill-things/internal/infra"
	"github.com/Varma0099/lill-things/internal/infra/repository/converter"
	sqlc "github.com/Varma0099/lill-things/internal/infra/sqlc/generated"
	"github.com/Varma0099/lill-things/internal/pkg/pgconv"

	"github.com/google/uuid"
)

//go:generate mockgen -source=activity.go -destination=../../../tests/mock/repository/activity.go -package=repositorymock

type ActivityQueries interface {
	GetActivityByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Activities, error)
	GetActivityByName(ctx context.Context, db sqlc.DBTX, name string) (sqlc.Activities, error)
	UpsertActivity(ctx context.Context, db sqlc.DBTX, arg sqlc.UpsertActivityParams) error
}

type ActivityRepository struct {
	queries ActivityQueries
	db      sqlc.DBTX
}

func NewActivityRepository(queries ActivityQueries, db sqlc.DBTX) *ActivityRepository {
	return &ActivityRepository{
		queries: queries,
		db:      db,
	}
}

func (r *ActivityRepository) FindByName(ctx context.Context, name string) (*activity.Activity, error) {
	row, err := r.queries.GetActivityByName(ctx, r.db, activity.NormalizeName(name))
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("activity not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get activity by name", err)
	}
	return converter.ActivityToDomain(row), nil
}

func (r *ActivityRepository) FindByID(ctx context.Context, id uuid.UUID) (*activity.Activity, error) {
	row, err := r.queries.GetActivityByID(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("activity not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get activity by id", err)
	}
	return converter.ActivityToDomain(row), nil
}

// Upsert inserts the activity or refreshes its catalog fields by name. The
// active flag of an existing row is left alone.
func (r *ActivityRepository) Upsert(ctx context.Context, a *activity.Activity) error {
	if err := r.queries.UpsertActivity(ctx, r.db, converter.ActivityToUpsertParams(a)); err != nil {
		return infra.WrapRepoErr("failed to upsert activity", err)
	}
	return nil
}
