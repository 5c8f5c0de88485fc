//go:build unit

package slot_test

import (
	"testing"

	"github.com/Varma0099/lill-things/internal/domain/slot"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildAvailability(t *testing.T) {
	t.Run("no stored slots means full capacity everywhere", func(t *testing.T) {
		got := slot.BuildAvailability(nil, 8)
		require.Len(t, got, 10)
		for i, ts := range slot.CanonicalTimeSlots() {
			assert.Equal(t, slot.Availability{TimeSlot: ts, Available: true, SpotsLeft: 8}, got[i])
		}
	})

	t.Run("stored slots override their labels only", func(t *testing.T) {
		activityID := uuid.New()
		partial := slot.New(slot.Key{ActivityID: activityID, Date: day, TimeSlot: slot.Slot11AM}, 8, day)
		require.NoError(t, partial.Reserve(3))

		full := slot.New(slot.Key{ActivityID: activityID, Date: day, TimeSlot: slot.Slot2PM}, 8, day)
		require.NoError(t, full.Reserve(8))

		closed := slot.New(slot.Key{ActivityID: activityID, Date: day, TimeSlot: slot.Slot7PM}, 8, day)
		require.NoError(t, closed.ApplySettings(false, 8))

		got := slot.BuildAvailability([]*slot.Slot{full, closed, partial}, 8)

		want := make([]slot.Availability, 0, 10)
		for _, ts := range slot.CanonicalTimeSlots() {
			want = append(want, slot.Availability{TimeSlot: ts, Available: true, SpotsLeft: 8})
		}
		want[1] = slot.Availability{TimeSlot: slot.Slot11AM, Available: true, SpotsLeft: 5}
		want[4] = slot.Availability{TimeSlot: slot.Slot2PM, Available: false, SpotsLeft: 0}
		want[9] = slot.Availability{TimeSlot: slot.Slot7PM, Available: false, SpotsLeft: 0}

		if diff := cmp.Diff(want, got); diff != "" {
			t.Errorf("availability mismatch (-want +got):\n%s", diff)
		}
	})
	t.Run("closed slot with bookings still reports zero", func(t *testing.T) {
		closed := slot.New(slot.Key{ActivityID: uuid.New(), Date: day, TimeSlot: slot.Slot3PM}, 8, day)
		require.NoError(t, closed.Reserve(2))
		require.NoError(t, closed.ApplySettings(false, 8))
		require.Equal(t, 6, closed.SpotsLeft())

		got := slot.BuildAvailability([]*slot.Slot{closed}, 8)

		assert.Equal(t, slot.Availability{TimeSlot: slot.Slot3PM, Available: false, SpotsLeft: 0}, got[5])
	})
}
