package slot

import (
	"strings"

	"github.com/Varma0099/lill-things/internal/pkg/errs"
)

var ErrInvalidTimeSlot = errs.New("time slot must be one of the studio's hourly slots")

// TimeSlot is one of the ten fixed hourly labels a day is divided into.
type TimeSlot string

const (
	Slot10AM TimeSlot = "10:00 AM"
	Slot11AM TimeSlot = "11:00 AM"
	Slot12PM TimeSlot = "12:00 PM"
	Slot1PM  TimeSlot = "1:00 PM"
	Slot2PM  TimeSlot = "2:00 PM"
	Slot3PM  TimeSlot = "3:00 PM"
	Slot4PM  TimeSlot = "4:00 PM"
	Slot5PM  TimeSlot = "5:00 PM"
	Slot6PM  TimeSlot = "6:00 PM"
	Slot7PM  TimeSlot = "7:00 PM"
)

var canonical = [...]TimeSlot{
	Slot10AM, Slot11AM, Slot12PM, Slot1PM, Slot2PM,
	Slot3PM, Slot4PM, Slot5PM, Slot6PM, Slot7PM,
}

// CanonicalTimeSlots returns the labels in display order.
func CanonicalTimeSlots() []TimeSlot {
	out := make([]TimeSlot, len(canonical))
	copy(out, canonical[:])
	return out
}

// ParseTimeSlot accepts a label ignoring surrounding whitespace and the case of AM/PM.
func ParseTimeSlot(raw string) (TimeSlot, error) {
	norm := strings.ToUpper(strings.Join(strings.Fields(raw), " "))
	for _, ts := range canonical {
		if string(ts) == norm {
			return ts, nil
		}
	}
	return "", ErrInvalidTimeSlot
}

func (t TimeSlot) String() string { return string(t) }

func (t TimeSlot) IsValid() bool {
	_, err := ParseTimeSlot(string(t))
	return err == nil
}
