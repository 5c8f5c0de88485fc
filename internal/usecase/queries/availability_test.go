//go:build unit

package queries_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/Varma0099/lill-things/internal/domain/activity"
	"github.com/Varma0099/lill-things/internal/domain/slot"
	"github.com/Varma0099/lill-things/internal/infra"
	"github.com/Varma0099/lill-things/internal/infra/memstore"
	"github.com/Varma0099/lill-things/internal/pkg/clock"
	"github.com/Varma0099/lill-things/internal/pkg/errs"
	"github.com/Varma0099/lill-things/internal/usecase/queries"
	queriesmock "github.com/Varma0099/lill-things/tests/mock/queries"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestAvailabilityQueries_Get(t *testing.T) {
	ctx := context.Background()
	activityID := uuid.New()
	day := time.Date(2030, 6, 15, 0, 0, 0, 0, time.UTC)
	pottery := &queries.ActivityView{ID: activityID, Name: "Pottery Making", MaxCapacity: 8, IsActive: true}

	stored := []*slot.Slot{
		slot.Reconstruct(slot.ReconstructParams{ID: uuid.New(), ActivityID: activityID, Date: day, TimeSlot: slot.Slot2PM, MaxCapacity: 8, CurrentBookings: 2, IsAvailable: true}),
		slot.Reconstruct(slot.ReconstructParams{ID: uuid.New(), ActivityID: activityID, Date: day, TimeSlot: slot.Slot4PM, MaxCapacity: 8, CurrentBookings: 8, IsAvailable: true}),
		slot.Reconstruct(slot.ReconstructParams{ID: uuid.New(), ActivityID: activityID, Date: day, TimeSlot: slot.Slot6PM, MaxCapacity: 8, IsAvailable: false}),
	}

	t.Run("fills untouched labels with full capacity", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		activities := queriesmock.NewMockActivityReadStore(ctrl)
		slots := queriesmock.NewMockSlotReadStore(ctrl)

		activities.EXPECT().FindByName(ctx, "Pottery Making").Return(pottery, nil)
		slots.EXPECT().ListByActivityAndDate(ctx, activityID, day).Return(stored, nil)

		view, err := queries.NewAvailabilityQueries(activities, slots).Get(ctx, "  Pottery   Making ", "2030-06-15")
		require.NoError(t, err)

		assert.Equal(t, "2030-06-15", view.Date)
		assert.Equal(t, "Pottery Making", view.Activity)

		want := []slot.Availability{
			{TimeSlot: slot.Slot10AM, Available: true, SpotsLeft: 8},
			{TimeSlot: slot.Slot11AM, Available: true, SpotsLeft: 8},
			{TimeSlot: slot.Slot12PM, Available: true, SpotsLeft: 8},
			{TimeSlot: slot.Slot1PM, Available: true, SpotsLeft: 8},
			{TimeSlot: slot.Slot2PM, Available: true, SpotsLeft: 6},
			{TimeSlot: slot.Slot3PM, Available: true, SpotsLeft: 8},
			{TimeSlot: slot.Slot4PM, Available: false, SpotsLeft: 0},
			{TimeSlot: slot.Slot5PM, Available: true, SpotsLeft: 8},
			{TimeSlot: slot.Slot6PM, Available: false, SpotsLeft: 0},
			{TimeSlot: slot.Slot7PM, Available: true, SpotsLeft: 8},
		}
		if diff := cmp.Diff(want, view.Slots); diff != "" {
			t.Errorf("availability mismatch (-want +got):\n%s", diff)
		}
	})

	errorCases := []struct {
		name     string
		activity string
		date     string
		setup    func(*queriesmock.MockActivityReadStore, *queriesmock.MockSlotReadStore)
		check    func(t *testing.T, err error)
	}{
		{
			name:     "missing activity",
			activity: " ",
			date:     "2030-06-15",
			check:    func(t *testing.T, err error) { assert.True(t, errs.Is(err, errs.ErrValidation)) },
		},
		{
			name:     "missing date",
			activity: "Pottery Making",
			check: func(t *testing.T, err error) {
				assert.True(t, errs.Is(err, errs.ErrValidation))
				assert.True(t, errs.Is(err, queries.ErrMissingActivityOrDate))
			},
		},
		{
			name:     "malformed date",
			activity: "Pottery Making",
			date:     "June 15",
			check:    func(t *testing.T, err error) { assert.True(t, errs.Is(err, errs.ErrValidation)) },
		},
		{
			name:     "unknown activity",
			activity: "Skydiving",
			date:     "2030-06-15",
			setup: func(a *queriesmock.MockActivityReadStore, _ *queriesmock.MockSlotReadStore) {
				a.EXPECT().FindByName(ctx, "Skydiving").Return(nil, infra.WrapRepoErr("activity not found", nil, infra.KindNotFound))
			},
			check: func(t *testing.T, err error) { assert.True(t, errs.Is(err, errs.ErrActivityNotFound)) },
		},
		{
			name:     "inactive activity has no availability",
			activity: "Glass Blowing",
			date:     "2030-06-15",
			setup: func(a *queriesmock.MockActivityReadStore, _ *queriesmock.MockSlotReadStore) {
				a.EXPECT().FindByName(ctx, "Glass Blowing").
					Return(&queries.ActivityView{ID: uuid.New(), Name: "Glass Blowing", MaxCapacity: 8, IsActive: false}, nil)
			},
			check: func(t *testing.T, err error) {
				assert.True(t, errs.Is(err, errs.ErrActivityNotFound))
				assert.ErrorContains(t, err, "not open for booking")
			},
		},
		{
			name:     "slot store failure passes through",
			activity: "Pottery Making",
			date:     "2030-06-15",
			setup: func(a *queriesmock.MockActivityReadStore, s *queriesmock.MockSlotReadStore) {
				a.EXPECT().FindByName(ctx, gomock.Any()).Return(pottery, nil)
				s.EXPECT().ListByActivityAndDate(ctx, activityID, day).Return(nil, errors.New("connection reset"))
			},
			check: func(t *testing.T, err error) {
				assert.False(t, errs.Is(err, errs.ErrValidation))
				assert.ErrorContains(t, err, "connection reset")
			},
		},
	}
	for _, tc := range errorCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			activities := queriesmock.NewMockActivityReadStore(ctrl)
			slots := queriesmock.NewMockSlotReadStore(ctrl)
			if tc.setup != nil {
				tc.setup(activities, slots)
			}

			view, err := queries.NewAvailabilityQueries(activities, slots).Get(ctx, tc.activity, tc.date)
			require.Error(t, err)
			assert.Nil(t, view)
			tc.check(t, err)
		})
	}
}

func TestAvailabilityQueries_GetAgreesWithStoreOnInactiveActivity(t *testing.T) {
	ctx := context.Background()
	store := memstore.New(clock.NewMockClock(time.Date(2030, 6, 1, 9, 0, 0, 0, time.UTC)))
	closed := activity.Reconstruct(activity.Params{
		ID:              uuid.New(),
		Name:            "Glass Blowing",
		DurationMinutes: activity.DefaultDurationMinutes,
		MaxCapacity:     activity.DefaultMaxCapacity,
		IsActive:        false,
	})
	require.NoError(t, store.SeedActivities(ctx, append(activity.DefaultCatalog(), closed)))
	rs := memstore.NewReadStore(store)
	q := queries.NewAvailabilityQueries(rs, rs)

	view, err := q.Get(ctx, "glass blowing", "2030-06-15")
	assert.Nil(t, view)
	assert.True(t, errs.Is(err, errs.ErrActivityNotFound))

	view, err = q.Get(ctx, activity.PotteryMaking, "2030-06-15")
	require.NoError(t, err)
	assert.Len(t, view.Slots, len(slot.CanonicalTimeSlots()))
}
