package queries

import (
	"context"
	"strings"
	"time"

	"github.com/Varma0099/lill-things/internal/domain/activity"
	"github.com/Varma0099/lill-things/internal/domain/slot"
	"github.com/Varma0099/lill-things/internal/pkg/errs"

	"github.com/google/uuid"
)

//go:generate mockgen -source=availability.go -destination=../../../tests/mock/queries/availability.go -package=queriesmock

var ErrMissingActivityOrDate = errs.New("activity and date are required")

type SlotReadStore interface {
	ListByActivityAndDate(ctx context.Context, activityID uuid.UUID, date time.Time) ([]*slot.Slot, error)
}

type AvailabilityQueries interface {
	// Get returns one entry per canonical time slot for the activity and day.
	Get(ctx context.Context, activityName, date string) (*AvailabilityView, error)
}

type availabilityQueriesImpl struct {
	activities ActivityReadStore
	slots      SlotReadStore
}

func NewAvailabilityQueries(activities ActivityReadStore, slots SlotReadStore) AvailabilityQueries {
	return &availabilityQueriesImpl{
		activities: activities,
		slots:      slots,
	}
}

func (q *availabilityQueriesImpl) Get(ctx context.Context, activityName, rawDate string) (*AvailabilityView, error) {
	name := activity.NormalizeName(activityName)
	if name == "" || strings.TrimSpace(rawDate) == "" {
		return nil, errs.Mark(ErrMissingActivityOrDate, errs.ErrValidation)
	}
	date, err := slot.ParseDate(rawDate)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrValidation)
	}

	act, err := findBookableActivity(ctx, q.activities, name)
	if err != nil {
		return nil, err
	}

	stored, err := q.slots.ListByActivityAndDate(ctx, act.ID, date)
	if err != nil {
		return nil, err
	}

	return &AvailabilityView{
		Date:     slot.FormatDate(date),
		Activity: act.Name,
		Slots:    slot.BuildAvailability(stored, act.MaxCapacity),
	}, nil
}
