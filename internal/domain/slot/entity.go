package slot

import (
	"time"

	"github.com/Varma0099/lill-things/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrSlotFull              = errs.New("slot is full")
	ErrSlotClosed            = errs.New("slot is not available")
	ErrInvalidParticipants   = errs.New("participants must be positive")
	ErrReleaseExceedsBooked  = errs.New("cannot release more spots than are booked")
	ErrCapacityBelowBookings = errs.New("capacity cannot be lower than current bookings")
)

// Key identifies a slot: one activity, one day, one hourly label.
type Key struct {
	ActivityID uuid.UUID
	Date       time.Time
	TimeSlot   TimeSlot
}

// Slot tracks capacity for one Key. currentBookings never exceeds maxCapacity.
type Slot struct {
	id              uuid.UUID
	activityID      uuid.UUID
	date            time.Time
	timeSlot        TimeSlot
	maxCapacity     int
	currentBookings int
	isAvailable     bool
	priceOverride   *int64
	createdAt       time.Time
}

// New creates an empty, open slot using the activity's capacity.
func New(key Key, maxCapacity int, now time.Time) *Slot {
	return &Slot{
		id:          uuid.New(),
		activityID:  key.ActivityID,
		date:        TruncateDate(key.Date),
		timeSlot:    key.TimeSlot,
		maxCapacity: maxCapacity,
		isAvailable: true,
		createdAt:   now,
	}
}

type ReconstructParams struct {
	ID              uuid.UUID
	ActivityID      uuid.UUID
	Date            time.Time
	TimeSlot        TimeSlot
	MaxCapacity     int
	CurrentBookings int
	IsAvailable     bool
	PriceOverride   *int64
	CreatedAt       time.Time
}

func Reconstruct(p ReconstructParams) *Slot {
	return &Slot{
		id:              p.ID,
		activityID:      p.ActivityID,
		date:            TruncateDate(p.Date),
		timeSlot:        p.TimeSlot,
		maxCapacity:     p.MaxCapacity,
		currentBookings: p.CurrentBookings,
		isAvailable:     p.IsAvailable,
		priceOverride:   p.PriceOverride,
		createdAt:       p.CreatedAt,
	}
}

func (s *Slot) ID() uuid.UUID         { return s.id }
func (s *Slot) ActivityID() uuid.UUID { return s.activityID }
func (s *Slot) Date() time.Time       { return s.date }
func (s *Slot) TimeSlot() TimeSlot    { return s.timeSlot }
func (s *Slot) MaxCapacity() int      { return s.maxCapacity }
func (s *Slot) CurrentBookings() int  { return s.currentBookings }
func (s *Slot) IsAvailable() bool     { return s.isAvailable }
func (s *Slot) PriceOverride() *int64 { return s.priceOverride }
func (s *Slot) CreatedAt() time.Time  { return s.createdAt }
func (s *Slot) Key() Key              { return Key{ActivityID: s.activityID, Date: s.date, TimeSlot: s.timeSlot} }

func (s *Slot) SpotsLeft() int {
	left := s.maxCapacity - s.currentBookings
	if left < 0 {
		return 0
	}
	return left
}

// Bookable is what clients see as "available": open and not yet full.
func (s *Slot) Bookable() bool {
	return s.isAvailable && s.SpotsLeft() > 0
}

// Reserve takes participants spots or changes nothing.
func (s *Slot) Reserve(participants int) error {
	if participants <= 0 {
		return ErrInvalidParticipants
	}
	if !s.isAvailable {
		return ErrSlotClosed
	}
	if s.currentBookings+participants > s.maxCapacity {
		return ErrSlotFull
	}
	s.currentBookings += participants
	return nil
}

// Release gives back spots held by a cancelled booking.
func (s *Slot) Release(participants int) error {
	if participants <= 0 {
		return ErrInvalidParticipants
	}
	if participants > s.currentBookings {
		return ErrReleaseExceedsBooked
	}
	s.currentBookings -= participants
	return nil
}

// ApplySettings opens or closes the slot and overrides its capacity.
func (s *Slot) ApplySettings(isAvailable bool, maxCapacity int) error {
	if maxCapacity < s.currentBookings {
		return ErrCapacityBelowBookings
	}
	s.isAvailable = isAvailable
	s.maxCapacity = maxCapacity
	return nil
}
