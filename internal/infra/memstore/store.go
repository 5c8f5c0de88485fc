// Package memstore keeps the whole booking state in process memory. It backs
// STORE_DRIVER=memory and the usecase tests, and implements the same
// transactional contract as the Postgres unit of work.
package memstore

import (
	"cmp"
	"context"
	"slices"
	"sync"
	"time"

	"github.com/Varma0099/lill-things/internal/domain/activity"
	"github.com/Varma0099/lill-things/internal/domain/booking"
	"github.com/Varma0099/lill-things/internal/domain/slot"
	"github.com/Varma0099/lill-things/internal/pkg/clock"
	"github.com/Varma0099/lill-things/internal/usecase/shared"

	"github.com/google/uuid"
)

type slotKey struct {
	activityID uuid.UUID
	date       string
	timeSlot   slot.TimeSlot
}

func keyOf(k slot.Key) slotKey {
	return slotKey{activityID: k.ActivityID, date: slot.FormatDate(k.Date), timeSlot: k.TimeSlot}
}

// state holds value copies only, so an entry can be restored by writing the
// old value back.
type state struct {
	activities  map[uuid.UUID]activity.Params
	slots       map[uuid.UUID]slot.ReconstructParams
	slotIndex   map[slotKey]uuid.UUID
	bookings    map[booking.ConfirmationCode]booking.ReconstructParams
	attempts    map[booking.ConfirmationCode]int
	idempotency map[uuid.UUID]shared.IdempotencyRecord
}

// Store serializes every transaction behind one mutex. A failed transaction
// replays its undo log, so rollback costs only the entries it touched.
type Store struct {
	mu    sync.Mutex
	clock clock.Clock
	state state
}

func New(clk clock.Clock) *Store {
	return &Store{
		clock: clk,
		state: state{
			activities:  make(map[uuid.UUID]activity.Params),
			slots:       make(map[uuid.UUID]slot.ReconstructParams),
			slotIndex:   make(map[slotKey]uuid.UUID),
			bookings:    make(map[booking.ConfirmationCode]booking.ReconstructParams),
			attempts:    make(map[booking.ConfirmationCode]int),
			idempotency: make(map[uuid.UUID]shared.IdempotencyRecord),
		},
	}
}

func (s *Store) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	tx := &memTx{store: s}
	if err := fn(ctx, tx); err != nil {
		tx.rollback()
		return err
	}
	return nil
}

func (s *Store) CommandReads() shared.CommandReads {
	return commandReads{store: s}
}

// SeedActivities upserts the catalog by name. Existing entries keep their
// ID and active flag.
func (s *Store) SeedActivities(ctx context.Context, catalog []*activity.Activity) error {
	return s.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		mt := tx.(*memTx)
		for _, a := range catalog {
			p := activityParams(a)
			for id, existing := range s.state.activities {
				if activity.SameName(existing.Name, a.Name()) {
					p.ID = id
					p.IsActive = existing.IsActive
					p.CreatedAt = existing.CreatedAt
				}
			}
			if p.CreatedAt.IsZero() {
				p.CreatedAt = s.clock.Now()
			}
			set(mt, s.state.activities, p.ID, p)
		}
		return nil
	})
}

type commandReads struct {
	store *Store
}

func (r commandReads) BookingsMissingNotifications(ctx context.Context, cutoff time.Time, maxAttempts, limit int) ([]*booking.Booking, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	var out []*booking.Booking
	for _, p := range sortedBookings(s.state.bookings, false) {
		if !p.CreatedAt.Before(cutoff) || s.state.attempts[p.Code] >= maxAttempts {
			continue
		}
		b := booking.Reconstruct(p)
		if len(b.PendingNotifications()) == 0 {
			continue
		}
		out = append(out, b)
	}
	// Stable, so equal attempt counts stay oldest first.
	slices.SortStableFunc(out, func(a, b *booking.Booking) int {
		return cmp.Compare(s.state.attempts[a.Code()], s.state.attempts[b.Code()])
	})
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func activityParams(a *activity.Activity) activity.Params {
	return activity.Params{
		ID:              a.ID(),
		Name:            a.Name(),
		Description:     a.Description(),
		Icon:            a.Icon(),
		Color:           a.Color(),
		DurationMinutes: a.DurationMinutes(),
		MaxCapacity:     a.MaxCapacity(),
		PriceCents:      a.PriceCents(),
		IsActive:        a.IsActive(),
		CreatedAt:       a.CreatedAt(),
	}
}

func slotParams(sl *slot.Slot) slot.ReconstructParams {
	return slot.ReconstructParams{
		ID:              sl.ID(),
		ActivityID:      sl.ActivityID(),
		Date:            sl.Date(),
		TimeSlot:        sl.TimeSlot(),
		MaxCapacity:     sl.MaxCapacity(),
		CurrentBookings: sl.CurrentBookings(),
		IsAvailable:     sl.IsAvailable(),
		PriceOverride:   sl.PriceOverride(),
		CreatedAt:       sl.CreatedAt(),
	}
}

func bookingParams(b *booking.Booking) booking.ReconstructParams {
	return booking.ReconstructParams{
		Code:         b.Code(),
		SlotID:       b.SlotID(),
		ActivityName: b.ActivityName(),
		BookingDate:  b.BookingDate(),
		TimeSlot:     b.TimeSlot(),
		Customer:     b.Customer(),
		Status:       b.Status(),
		EmailSent:    b.EmailSent(),
		CreatedAt:    b.CreatedAt(),
		UpdatedAt:    b.UpdatedAt(),
	}
}
