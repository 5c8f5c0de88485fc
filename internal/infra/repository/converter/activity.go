package converter

import (
	"github.com/Varma0099/lill-things/internal/domain/activity"
	sqlc "github.com/Varma0099/lill-things/internal/infra/sqlc/generated"
	"github.com/Varma0099/lill-things/internal/pkg/pgconv"
)

func ActivityToDomain(row sqlc.Activities) *activity.Activity {
	return activity.Reconstruct(activity.Params{
		ID:              row.ID,
		Name:            row.Name,
		Description:     row.Description,
		Icon:            row.Icon,
		Color:           row.Color,
		DurationMinutes: int(row.DurationMinutes),
		MaxCapacity:     int(row.MaxCapacity),
		PriceCents:      row.PriceCents,
		IsActive:        row.IsActive,
		CreatedAt:       pgconv.TimeFromPgtype(row.CreatedAt),
	})
}

func ActivityToUpsertParams(a *activity.Activity) sqlc.UpsertActivityParams {
	return sqlc.UpsertActivityParams{
		ID:              a.ID(),
		Name:            a.Name(),
		Description:     a.Description(),
		Icon:            a.Icon(),
		Color:           a.Color(),
		DurationMinutes: pgconv.IntToInt32(a.DurationMinutes()),
		MaxCapacity:     pgconv.IntToInt32(a.MaxCapacity()),
		PriceCents:      a.PriceCents(),
		IsActive:        a.IsActive(),
	}
}
