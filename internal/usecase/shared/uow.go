package shared

import (
	"context"
	"time"

	"github.com/Varma0099/lill-things/internal/domain/activity"
	"github.com/Varma0099/lill-things/internal/domain/booking"
	"github.com/Varma0099/lill-things/internal/domain/slot"

	"github.com/google/uuid"
)

type UnitOfWork interface {
	// Within: Full transaction for write operations. Either every write made
	// through tx commits or none does.
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// CommandReads: Direct access to command reads outside transactions
	CommandReads() CommandReads
}

// Tx hands out repositories bound to the running transaction.
type Tx interface {
	Activities() ActivityRepository
	Slots() SlotRepository
	Bookings() BookingRepository
	IdempotencyKeys() IdempotencyRepository
}

type CommandReads interface {
	// BookingsMissingNotifications lists live bookings created before cutoff
	// that still have an undelivered email and fewer than maxAttempts resends,
	// least-retried first.
	BookingsMissingNotifications(ctx context.Context, cutoff time.Time, maxAttempts, limit int) ([]*booking.Booking, error)
}

type ActivityRepository interface {
	// FindByName matches case-insensitively on the normalized name.
	FindByName(ctx context.Context, name string) (*activity.Activity, error)
	FindByID(ctx context.Context, id uuid.UUID) (*activity.Activity, error)
}

type SlotRepository interface {
	// FindOrCreate returns the slot for key, creating it with capacity when
	// absent. Concurrent callers for the same key all get the same slot.
	FindOrCreate(ctx context.Context, key slot.Key, capacity int) (*slot.Slot, error)
	FindByKey(ctx context.Context, key slot.Key) (*slot.Slot, error)
	FindByID(ctx context.Context, id uuid.UUID) (*slot.Slot, error)
	// Reserve atomically checks and takes participants spots.
	Reserve(ctx context.Context, slotID uuid.UUID, participants int) (ReserveResult, error)
	// Release gives spots back and returns the new spotsLeft.
	Release(ctx context.Context, slotID uuid.UUID, participants int) (int, error)
	// UpdateSettings opens or closes a slot and sets its capacity. Fails with
	// slot.ErrCapacityBelowBookings when capacity < currentBookings.
	UpdateSettings(ctx context.Context, slotID uuid.UUID, isAvailable bool, capacity int) (*slot.Slot, error)
}

type BookingRepository interface {
	// Create inserts b. A taken confirmation code is reported as a
	// KindDuplicateKey repository error and leaves the transaction usable.
	Create(ctx context.Context, b *booking.Booking) error
	FindByCodeForUpdate(ctx context.Context, code booking.ConfirmationCode) (*booking.Booking, error)
	UpdateStatus(ctx context.Context, b *booking.Booking) error
	MarkNotificationSent(ctx context.Context, code booking.ConfirmationCode, kind booking.NotificationKind, at time.Time) error
	// CompleteBefore marks confirmed bookings dated before day as completed.
	CompleteBefore(ctx context.Context, day time.Time, at time.Time) (int64, error)
	// RecordNotificationAttempt bumps the resend counter of each booking.
	RecordNotificationAttempt(ctx context.Context, codes []booking.ConfirmationCode) error
}

// IdempotencyRepository stores Idempotency-Key claims next to the booking
// they produced, so a claim commits or rolls back with it.
type IdempotencyRepository interface {
	// Claim takes the key, or retakes it when the stored one has expired.
	// It reports false when a live claim already exists. A claim still held
	// by another open transaction blocks until that transaction ends.
	Claim(ctx context.Context, c IdempotencyClaim) (bool, error)
	Get(ctx context.Context, key uuid.UUID) (*IdempotencyRecord, error)
	Complete(ctx context.Context, key uuid.UUID, code booking.ConfirmationCode) error
	DeleteExpired(ctx context.Context, now time.Time) (int64, error)
}
