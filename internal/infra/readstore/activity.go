package readstore

import (
	"context"

	"github.com/Varma0099/lill-things/internal/domain/activity"
	"github.com/Varma0099/lill-things/internal/infra"
	"github.com/Varma0099/lill-things/internal/infra/repository/converter"
	sqlc "github.com/Varma0099/lill-things/internal/infra/sqlc/generated"
	"github.com/Varma0099/lill-things/internal/pkg/pgconv"
	"github.com/Varma0099/lill-things/internal/usecase/queries"
)

type ActivityReadQueries interface {
	ListActiveActivities(ctx context.Context, db sqlc.DBTX) ([]sqlc.Activities, error)
	GetActivityByName(ctx context.Context, db sqlc.DBTX, name string) (sqlc.Activities, error)
}

type ActivityReadStore struct {
	queries ActivityReadQueries
	db      sqlc.DBTX
}

func NewActivityReadStore(queries ActivityReadQueries, db sqlc.DBTX) *ActivityReadStore {
	return &ActivityReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *ActivityReadStore) ListActive(ctx context.Context) ([]*queries.ActivityView, error) {
	rows, err := r.queries.ListActiveActivities(ctx, r.db)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list activities", err)
	}
	views := make([]*queries.ActivityView, 0, len(rows))
	for _, row := range rows {
		views = append(views, queries.NewActivityView(converter.ActivityToDomain(row)))
	}
	return views, nil
}

func (r *ActivityReadStore) FindByName(ctx context.Context, name string) (*queries.ActivityView, error) {
	row, err := r.queries.GetActivityByName(ctx, r.db, activity.NormalizeName(name))
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("activity not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get activity by name", err)
	}
	return queries.NewActivityView(converter.ActivityToDomain(row)), nil
}
