//go:build unit

package commands_test

import (
	"context"
	"testing"

	"github.com/Varma0099/lill-things/internal/domain/activity"
	"github.com/Varma0099/lill-things/internal/domain/booking"
	"github.com/Varma0099/lill-things/internal/domain/slot"
	"github.com/Varma0099/lill-things/internal/pkg/errs"
	"github.com/Varma0099/lill-things/internal/usecase/commands"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func bookOne(t *testing.T, f *fixture, participants int) *booking.Booking {
	t.Helper()
	res, err := f.reservations(nil, 0).CreateReservation(context.Background(), potteryInput(participants))
	require.NoError(t, err)
	return res.Booking
}

func TestUpdateBookingStatus_CancelReleasesSpots(t *testing.T) {
	f := newFixture(t)
	f.notifier.EXPECT().Send(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	events := f.recordEvents()
	ctx := context.Background()

	b := bookOne(t, f, 3)

	updated, err := f.admin().UpdateBookingStatus(ctx, " "+b.Code().String()+" ", "cancelled")
	require.NoError(t, err)
	assert.Equal(t, booking.StatusCancelled, updated.Status())

	s := f.slotState(activity.PotteryMaking, "2030-06-15", slot.Slot2PM)
	assert.Equal(t, 0, s.CurrentBookings())

	got := events()
	require.Len(t, got, 2)
	assert.Equal(t, 5, got[0].SpotsLeft)
	assert.Equal(t, 8, got[1].SpotsLeft)
	assert.Equal(t, booking.StatusCancelled.String(), f.bookingView(b.Code()).Status)
}

func TestUpdateBookingStatus_NoReleaseWithoutCancel(t *testing.T) {
	f := newFixture(t)
	f.notifier.EXPECT().Send(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	events := f.recordEvents()

	b := bookOne(t, f, 2)

	updated, err := f.admin().UpdateBookingStatus(context.Background(), b.Code().String(), "no-show")
	require.NoError(t, err)
	assert.Equal(t, booking.StatusNoShow, updated.Status())
	assert.Equal(t, 2, f.slotState(activity.PotteryMaking, "2030-06-15", slot.Slot2PM).CurrentBookings())
	assert.Len(t, events(), 1)
}

func TestUpdateBookingStatus_Errors(t *testing.T) {
	f := newFixture(t)
	f.quiet()
	ctx := context.Background()

	b := bookOne(t, f, 2)
	_, err := f.admin().UpdateBookingStatus(ctx, b.Code().String(), "cancelled")
	require.NoError(t, err)

	tests := []struct {
		name   string
		code   string
		status string
		kind   error
	}{
		{"malformed code", "NOT-A-CODE", "cancelled", errs.ErrValidation},
		{"unknown status", b.Code().String(), "lost", errs.ErrValidation},
		{"unknown booking", "LT2030ZZZZZZ", "cancelled", errs.ErrBookingNotFound},
		{"terminal status", b.Code().String(), "confirmed", errs.ErrInvalidStatusTransition},
		{"cancel twice", b.Code().String(), "cancelled", errs.ErrInvalidStatusTransition},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := f.admin().UpdateBookingStatus(ctx, tt.code, tt.status)
			require.Error(t, err)
			assert.True(t, errs.Is(err, tt.kind), "got %v", err)
		})
	}

	// Nothing above may release the spots a second time.
	assert.Equal(t, 0, f.slotState(activity.PotteryMaking, "2030-06-15", slot.Slot2PM).CurrentBookings())
}

func TestUpdateSlotSettings_CloseUntouchedSlot(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	f.publisher.EXPECT().
		Publish(gomock.Any(), activity.ActingStudio, slot.UpdatedEvent{
			Activity:  activity.ActingStudio,
			Date:      "2030-06-20",
			TimeSlot:  "10:00 AM",
			SpotsLeft: 0,
		}).
		Return(nil)

	closed := false
	s, err := f.admin().UpdateSlotSettings(ctx, commands.UpdateSlotSettingsInput{
		Activity:    "acting studio",
		Date:        "2030-06-20",
		TimeSlot:    "10:00 am",
		IsAvailable: &closed,
	})
	require.NoError(t, err)
	assert.False(t, s.IsAvailable())
	assert.Equal(t, activity.DefaultMaxCapacity, s.MaxCapacity())

	in := potteryInput(1)
	in.Activity, in.Date, in.TimeSlot = activity.ActingStudio, "2030-06-20", "10:00 AM"
	_, err = f.reservations(nil, 0).CreateReservation(ctx, in)
	require.Error(t, err)
	assert.True(t, errs.Is(err, errs.ErrSlotFull))
	assert.Contains(t, err.Error(), "slot is full")
}

func TestUpdateSlotSettings_Capacity(t *testing.T) {
	f := newFixture(t)
	f.quiet()
	ctx := context.Background()

	bookOne(t, f, 8)

	grow := 10
	s, err := f.admin().UpdateSlotSettings(ctx, commands.UpdateSlotSettingsInput{
		Activity:    activity.PotteryMaking,
		Date:        "2030-06-15",
		TimeSlot:    "2:00 PM",
		MaxCapacity: &grow,
	})
	require.NoError(t, err)
	assert.True(t, s.IsAvailable())
	assert.Equal(t, 2, s.SpotsLeft())

	shrink := 7
	_, err = f.admin().UpdateSlotSettings(ctx, commands.UpdateSlotSettingsInput{
		Activity:    activity.PotteryMaking,
		Date:        "2030-06-15",
		TimeSlot:    "2:00 PM",
		MaxCapacity: &shrink,
	})
	require.Error(t, err)
	assert.True(t, errs.Is(err, errs.ErrCapacityBelowBookings))
	assert.Equal(t, 10, f.slotState(activity.PotteryMaking, "2030-06-15", slot.Slot2PM).MaxCapacity())
}

func TestUpdateSlotSettings_Errors(t *testing.T) {
	open := true
	negative := -1

	tests := []struct {
		name string
		in   commands.UpdateSlotSettingsInput
		kind error
	}{
		{
			name: "nothing to update",
			in:   commands.UpdateSlotSettingsInput{Activity: activity.PotteryMaking, Date: "2030-06-15", TimeSlot: "2:00 PM"},
			kind: errs.ErrValidation,
		},
		{
			name: "missing key",
			in:   commands.UpdateSlotSettingsInput{Activity: activity.PotteryMaking, TimeSlot: "2:00 PM", IsAvailable: &open},
			kind: errs.ErrValidation,
		},
		{
			name: "negative capacity",
			in:   commands.UpdateSlotSettingsInput{Activity: activity.PotteryMaking, Date: "2030-06-15", TimeSlot: "2:00 PM", MaxCapacity: &negative},
			kind: errs.ErrValidation,
		},
		{
			name: "bad time slot",
			in:   commands.UpdateSlotSettingsInput{Activity: activity.PotteryMaking, Date: "2030-06-15", TimeSlot: "8:00 AM", IsAvailable: &open},
			kind: errs.ErrValidation,
		},
		{
			name: "unknown activity",
			in:   commands.UpdateSlotSettingsInput{Activity: "Skydiving", Date: "2030-06-15", TimeSlot: "2:00 PM", IsAvailable: &open},
			kind: errs.ErrActivityNotFound,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)

			_, err := f.admin().UpdateSlotSettings(context.Background(), tt.in)
			require.Error(t, err)
			assert.True(t, errs.Is(err, tt.kind), "got %v", err)
		})
	}
}
