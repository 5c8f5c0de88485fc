package readstore

import (
	"context"
	"time"

	"github.com/Varma0099/lill-things/internal/domain/slot"
	"github.com/Varma0099/lill-things/internal/infra"
	"github.com/Varma0099/lill-things/internal/infra/repository/converter"
	sqlc "github.com/Varma0099/lill-things/internal/infra/sqlc/generated"
	"github.com/Varma0099/lill-things/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type SlotReadQueries interface {
	ListSlotsByActivityAndDate(ctx context.Context, db sqlc.DBTX, arg sqlc.ListSlotsByActivityAndDateParams) ([]sqlc.Slots, error)
}

type SlotReadStore struct {
	queries SlotReadQueries
	db      sqlc.DBTX
}

func NewSlotReadStore(queries SlotReadQueries, db sqlc.DBTX) *SlotReadStore {
	return &SlotReadStore{
		queries: queries,
		db:      db,
	}
}

// ListByActivityAndDate returns only the slots that exist; callers fill the
// rest of the day from the canonical schedule.
func (r *SlotReadStore) ListByActivityAndDate(ctx context.Context, activityID uuid.UUID, date time.Time) ([]*slot.Slot, error) {
	rows, err := r.queries.ListSlotsByActivityAndDate(ctx, r.db, sqlc.ListSlotsByActivityAndDateParams{
		ActivityID: activityID,
		SlotDate:   pgconv.DateToPgtype(date),
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list slots", err)
	}
	out := make([]*slot.Slot, 0, len(rows))
	for _, row := range rows {
		out = append(out, converter.SlotToDomain(row))
	}
	return out, nil
}
