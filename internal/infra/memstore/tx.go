package memstore

import (
	"context"
	"time"

	"github.com/Varma0099/lill-things/internal/domain/activity"
	"github.com/Varma0099/lill-things/internal/domain/booking"
	"github.com/Varma0099/lill-things/internal/domain/slot"
	"github.com/Varma0099/lill-things/internal/infra"
	"github.com/Varma0099/lill-things/internal/usecase/shared"

	"github.com/google/uuid"
)

// memTx is only used while Within holds the store mutex. Every write goes
// through set or del, which log how to put the entry back.
type memTx struct {
	store *Store
	undo  []func()
}

func (t *memTx) Activities() shared.ActivityRepository         { return activityRepo{t.store} }
func (t *memTx) Slots() shared.SlotRepository                  { return slotRepo{t.store, t} }
func (t *memTx) Bookings() shared.BookingRepository            { return bookingRepo{t.store, t} }
func (t *memTx) IdempotencyKeys() shared.IdempotencyRepository { return idempotencyRepo{t.store, t} }

// rollback undoes writes newest first, so a key written twice ends up with
// the value it had before the transaction.
func (t *memTx) rollback() {
	for i := len(t.undo) - 1; i >= 0; i-- {
		t.undo[i]()
	}
	t.undo = nil
}

func remember[K comparable, V any](t *memTx, m map[K]V, k K) {
	prev, had := m[k]
	t.undo = append(t.undo, func() {
		if had {
			m[k] = prev
		} else {
			delete(m, k)
		}
	})
}

func set[K comparable, V any](t *memTx, m map[K]V, k K, v V) {
	remember(t, m, k)
	m[k] = v
}

func del[K comparable, V any](t *memTx, m map[K]V, k K) {
	if _, ok := m[k]; !ok {
		return
	}
	remember(t, m, k)
	delete(m, k)
}

type activityRepo struct{ s *Store }

func (r activityRepo) FindByName(_ context.Context, name string) (*activity.Activity, error) {
	if p, ok := findActivityByName(r.s.state, name); ok {
		return activity.Reconstruct(p), nil
	}
	return nil, infra.WrapRepoErr("activity not found", nil, infra.KindNotFound)
}

func (r activityRepo) FindByID(_ context.Context, id uuid.UUID) (*activity.Activity, error) {
	p, ok := r.s.state.activities[id]
	if !ok {
		return nil, infra.WrapRepoErr("activity not found", nil, infra.KindNotFound)
	}
	return activity.Reconstruct(p), nil
}

func findActivityByName(st state, name string) (activity.Params, bool) {
	name = activity.NormalizeName(name)
	if name == "" {
		return activity.Params{}, false
	}
	for _, p := range st.activities {
		if activity.SameName(p.Name, name) {
			return p, true
		}
	}
	return activity.Params{}, false
}

type slotRepo struct {
	s  *Store
	tx *memTx
}

func (r slotRepo) FindOrCreate(_ context.Context, key slot.Key, capacity int) (*slot.Slot, error) {
	if id, ok := r.s.state.slotIndex[keyOf(key)]; ok {
		return slot.Reconstruct(r.s.state.slots[id]), nil
	}
	fresh := slot.New(key, capacity, r.s.clock.Now())
	set(r.tx, r.s.state.slots, fresh.ID(), slotParams(fresh))
	set(r.tx, r.s.state.slotIndex, keyOf(key), fresh.ID())
	return fresh, nil
}

func (r slotRepo) FindByKey(_ context.Context, key slot.Key) (*slot.Slot, error) {
	id, ok := r.s.state.slotIndex[keyOf(key)]
	if !ok {
		return nil, infra.WrapRepoErr("slot not found", nil, infra.KindNotFound)
	}
	return slot.Reconstruct(r.s.state.slots[id]), nil
}

func (r slotRepo) FindByID(_ context.Context, id uuid.UUID) (*slot.Slot, error) {
	p, ok := r.s.state.slots[id]
	if !ok {
		return nil, infra.WrapRepoErr("slot not found", nil, infra.KindNotFound)
	}
	return slot.Reconstruct(p), nil
}

func (r slotRepo) Reserve(ctx context.Context, slotID uuid.UUID, participants int) (shared.ReserveResult, error) {
	sl, err := r.FindByID(ctx, slotID)
	if err != nil {
		return shared.ReserveResult{}, err
	}
	if err := sl.Reserve(participants); err != nil {
		left := sl.SpotsLeft()
		if !sl.IsAvailable() {
			left = 0
		}
		return shared.ReserveResult{Accepted: false, SpotsLeft: left}, nil
	}
	set(r.tx, r.s.state.slots, slotID, slotParams(sl))
	return shared.ReserveResult{Accepted: true, SpotsLeft: sl.SpotsLeft()}, nil
}

func (r slotRepo) Release(ctx context.Context, slotID uuid.UUID, participants int) (int, error) {
	sl, err := r.FindByID(ctx, slotID)
	if err != nil {
		return 0, err
	}
	if err := sl.Release(participants); err != nil {
		return 0, infra.WrapRepoErr("release exceeds bookings", err, infra.KindConstraintViolated)
	}
	set(r.tx, r.s.state.slots, slotID, slotParams(sl))
	return sl.SpotsLeft(), nil
}

func (r slotRepo) UpdateSettings(ctx context.Context, slotID uuid.UUID, isAvailable bool, capacity int) (*slot.Slot, error) {
	sl, err := r.FindByID(ctx, slotID)
	if err != nil {
		return nil, err
	}
	if err := sl.ApplySettings(isAvailable, capacity); err != nil {
		return nil, err
	}
	set(r.tx, r.s.state.slots, slotID, slotParams(sl))
	return sl, nil
}

type bookingRepo struct {
	s  *Store
	tx *memTx
}

func (r bookingRepo) Create(_ context.Context, b *booking.Booking) error {
	if _, taken := r.s.state.bookings[b.Code()]; taken {
		return infra.WrapRepoErr("confirmation code already taken", nil, infra.KindDuplicateKey)
	}
	set(r.tx, r.s.state.bookings, b.Code(), bookingParams(b))
	return nil
}

func (r bookingRepo) FindByCodeForUpdate(_ context.Context, code booking.ConfirmationCode) (*booking.Booking, error) {
	p, ok := r.s.state.bookings[code]
	if !ok {
		return nil, infra.WrapRepoErr("booking not found", nil, infra.KindNotFound)
	}
	return booking.Reconstruct(p), nil
}

func (r bookingRepo) UpdateStatus(_ context.Context, b *booking.Booking) error {
	p, ok := r.s.state.bookings[b.Code()]
	if !ok {
		return infra.WrapRepoErr("booking not found", nil, infra.KindNotFound)
	}
	p.Status = b.Status()
	p.UpdatedAt = b.UpdatedAt()
	set(r.tx, r.s.state.bookings, b.Code(), p)
	return nil
}

func (r bookingRepo) MarkNotificationSent(_ context.Context, code booking.ConfirmationCode, kind booking.NotificationKind, at time.Time) error {
	p, ok := r.s.state.bookings[code]
	if !ok {
		return infra.WrapRepoErr("booking not found", nil, infra.KindNotFound)
	}
	b := booking.Reconstruct(p)
	b.MarkNotificationSent(kind, at)
	set(r.tx, r.s.state.bookings, code, bookingParams(b))
	return nil
}

func (r bookingRepo) CompleteBefore(_ context.Context, day time.Time, at time.Time) (int64, error) {
	cutoff := slot.TruncateDate(day)
	var n int64
	for code, p := range r.s.state.bookings {
		if p.Status != booking.StatusConfirmed || !p.BookingDate.Before(cutoff) {
			continue
		}
		p.Status = booking.StatusCompleted
		p.UpdatedAt = at
		set(r.tx, r.s.state.bookings, code, p)
		n++
	}
	return n, nil
}

func (r bookingRepo) RecordNotificationAttempt(_ context.Context, codes []booking.ConfirmationCode) error {
	for _, code := range codes {
		if _, ok := r.s.state.bookings[code]; !ok {
			continue
		}
		set(r.tx, r.s.state.attempts, code, r.s.state.attempts[code]+1)
	}
	return nil
}

type idempotencyRepo struct {
	s  *Store
	tx *memTx
}

// Claim never has to wait here: the store mutex already serializes
// transactions, so a live key is always a committed one.
func (r idempotencyRepo) Claim(_ context.Context, c shared.IdempotencyClaim) (bool, error) {
	if rec, ok := r.s.state.idempotency[c.Key]; ok && rec.ExpiresAt.After(c.CreatedAt) {
		return false, nil
	}
	set(r.tx, r.s.state.idempotency, c.Key, shared.IdempotencyRecord{
		Key:         c.Key,
		Endpoint:    c.Endpoint,
		RequestHash: c.RequestHash,
		ExpiresAt:   c.ExpiresAt,
	})
	return true, nil
}

func (r idempotencyRepo) Get(_ context.Context, key uuid.UUID) (*shared.IdempotencyRecord, error) {
	rec, ok := r.s.state.idempotency[key]
	if !ok {
		return nil, infra.WrapRepoErr("idempotency key not found", nil, infra.KindNotFound)
	}
	return &rec, nil
}

func (r idempotencyRepo) Complete(_ context.Context, key uuid.UUID, code booking.ConfirmationCode) error {
	rec, ok := r.s.state.idempotency[key]
	if !ok {
		return infra.WrapRepoErr("idempotency key not found", nil, infra.KindNotFound)
	}
	rec.Result = code
	set(r.tx, r.s.state.idempotency, key, rec)
	return nil
}

func (r idempotencyRepo) DeleteExpired(_ context.Context, now time.Time) (int64, error) {
	var n int64
	for key, rec := range r.s.state.idempotency {
		if rec.ExpiresAt.After(now) {
			continue
		}
		del(r.tx, r.s.state.idempotency, key)
		n++
	}
	return n, nil
}
