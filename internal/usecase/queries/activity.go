package queries

import (
	"context"
	"fmt"

	"github.com/Varma0099/lill-things/internal/domain/activity"
	"github.com/Varma0099/lill-things/internal/infra"
	"github.com/Varma0099/lill-things/internal/pkg/errs"
)

//go:generate mockgen -source=activity.go -destination=../../../tests/mock/queries/activity.go -package=queriesmock

type ActivityReadStore interface {
	ListActive(ctx context.Context) ([]*ActivityView, error)
	FindByName(ctx context.Context, name string) (*ActivityView, error)
}

type ActivityQueries interface {
	ListActive(ctx context.Context) ([]*ActivityView, error)
	GetByName(ctx context.Context, name string) (*ActivityView, error)
}

type activityQueriesImpl struct {
	store ActivityReadStore
}

func NewActivityQueries(store ActivityReadStore) ActivityQueries {
	return &activityQueriesImpl{store: store}
}

func (q *activityQueriesImpl) ListActive(ctx context.Context) ([]*ActivityView, error) {
	return q.store.ListActive(ctx)
}

// GetByName hides inactive activities, the same way booking refuses them.
func (q *activityQueriesImpl) GetByName(ctx context.Context, name string) (*ActivityView, error) {
	return findBookableActivity(ctx, q.store, activity.NormalizeName(name))
}

func findBookableActivity(ctx context.Context, store ActivityReadStore, name string) (*ActivityView, error) {
	av, err := store.FindByName(ctx, name)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.ErrActivityNotFound
		}
		return nil, err
	}
	if !av.IsActive {
		return nil, errs.Mark(fmt.Errorf("activity %q is not open for booking", av.Name), errs.ErrActivityNotFound)
	}
	return av, nil
}
