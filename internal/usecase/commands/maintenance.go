package commands

import (
	"context"
	"log/slog"
	"time"

	"github.com/Varma0099/lill-things/internal/domain/booking"
	"github.com/Varma0099/lill-things/internal/domain/slot"
	"github.com/Varma0099/lill-things/internal/pkg/clock"
	"github.com/Varma0099/lill-things/internal/pkg/errs"
	"github.com/Varma0099/lill-things/internal/usecase/shared"
)

//go:generate mockgen -source=maintenance.go -destination=../../../tests/mock/commands/maintenance.go -package=commandsmock

type MaintenanceCommands interface {
	// CompletePastBookings marks confirmed bookings from earlier days as completed.
	CompletePastBookings(ctx context.Context) (int64, error)
	// ResendMissingNotifications retries emails that never went out.
	ResendMissingNotifications(ctx context.Context) (int, error)
	// PurgeExpiredIdempotencyKeys drops Idempotency-Key records past their TTL.
	PurgeExpiredIdempotencyKeys(ctx context.Context) (int64, error)
}

const (
	DefaultResendBatchSize   = 50
	DefaultResendMaxAttempts = 5
)

type MaintenanceSettings struct {
	ResendGracePeriod time.Duration
	ResendBatchSize   int
	// ResendMaxAttempts caps resends per booking; past it the booking is left
	// for the owner to follow up by hand.
	ResendMaxAttempts int
	// Location decides where "today" starts for completion.
	Location *time.Location
}

type maintenanceCommandsImpl struct {
	uow        shared.UnitOfWork
	dispatcher *NotificationDispatcher
	clock      clock.Clock
	settings   MaintenanceSettings
}

func NewMaintenanceCommands(uow shared.UnitOfWork, dispatcher *NotificationDispatcher, clk clock.Clock, settings MaintenanceSettings) MaintenanceCommands {
	if settings.Location == nil {
		settings.Location = time.UTC
	}
	if settings.ResendBatchSize <= 0 {
		settings.ResendBatchSize = DefaultResendBatchSize
	}
	if settings.ResendMaxAttempts <= 0 {
		settings.ResendMaxAttempts = DefaultResendMaxAttempts
	}
	return &maintenanceCommandsImpl{
		uow:        uow,
		dispatcher: dispatcher,
		clock:      clk,
		settings:   settings,
	}
}

func (m *maintenanceCommandsImpl) CompletePastBookings(ctx context.Context) (int64, error) {
	now := m.clock.Now()
	today := slot.TruncateDate(now.In(m.settings.Location))

	var completed int64
	err := m.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		n, err := tx.Bookings().CompleteBefore(ctx, today, now)
		if err != nil {
			return err
		}
		completed = n
		return nil
	})
	if err != nil {
		return 0, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	if completed > 0 {
		slog.InfoContext(ctx, "past bookings completed", "count", completed, "before", slot.FormatDate(today))
	}
	return completed, nil
}

func (m *maintenanceCommandsImpl) ResendMissingNotifications(ctx context.Context) (int, error) {
	cutoff := m.clock.Now().Add(-m.settings.ResendGracePeriod)

	pending, err := m.uow.CommandReads().BookingsMissingNotifications(ctx, cutoff, m.settings.ResendMaxAttempts, m.settings.ResendBatchSize)
	if err != nil {
		return 0, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	if len(pending) == 0 {
		return 0, nil
	}

	// Count the attempt before sending, so a booking whose email keeps
	// failing drops out of the batch once it hits the cap.
	codes := make([]booking.ConfirmationCode, len(pending))
	for i, b := range pending {
		codes[i] = b.Code()
	}
	err = m.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Bookings().RecordNotificationAttempt(ctx, codes)
	})
	if err != nil {
		return 0, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	slog.InfoContext(ctx, "resending booking emails", "bookings", len(pending))
	for _, b := range pending {
		m.dispatcher.Dispatch(b)
	}
	if err := m.dispatcher.Drain(ctx); err != nil {
		return len(pending), err
	}
	return len(pending), nil
}

func (m *maintenanceCommandsImpl) PurgeExpiredIdempotencyKeys(ctx context.Context) (int64, error) {
	var purged int64
	err := m.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		n, err := tx.IdempotencyKeys().DeleteExpired(ctx, m.clock.Now())
		if err != nil {
			return err
		}
		purged = n
		return nil
	})
	if err != nil {
		return 0, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	if purged > 0 {
		slog.InfoContext(ctx, "expired idempotency keys purged", "count", purged)
	}
	return purged, nil
}
