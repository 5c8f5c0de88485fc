package slot

// Availability is one row of a day's schedule for an activity.
type Availability struct {
	TimeSlot  TimeSlot
	Available bool
	SpotsLeft int
}

// BuildAvailability returns exactly one entry per canonical label, in order.
// Labels with no stored slot report the activity's full capacity; labels whose
// slot is closed report zero spots.
func BuildAvailability(slots []*Slot, defaultCapacity int) []Availability {
	byLabel := make(map[TimeSlot]*Slot, len(slots))
	for _, s := range slots {
		byLabel[s.timeSlot] = s
	}

	out := make([]Availability, 0, len(canonical))
	for _, ts := range canonical {
		s, ok := byLabel[ts]
		switch {
		case !ok:
			out = append(out, Availability{TimeSlot: ts, Available: defaultCapacity > 0, SpotsLeft: defaultCapacity})
		case !s.isAvailable:
			// Zero rather than max-current: a closed slot takes no bookings, and
			// the reservation path and slot-updated events report it the same way.
			out = append(out, Availability{TimeSlot: ts, Available: false, SpotsLeft: 0})
		default:
			out = append(out, Availability{TimeSlot: ts, Available: s.SpotsLeft() > 0, SpotsLeft: s.SpotsLeft()})
		}
	}
	return out
}
