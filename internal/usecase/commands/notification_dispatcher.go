package commands

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/Varma0099/lill-things/internal/domain/booking"
	"github.com/Varma0099/lill-things/internal/pkg/clock"
	"github.com/Varma0099/lill-things/internal/pkg/errs"
	"github.com/Varma0099/lill-things/internal/usecase/shared"
)

const defaultSendTimeout = 15 * time.Second

// NotificationDispatcher sends booking emails in the background and records
// each successful delivery on the booking. Failures are logged and left for
// the resend job.
type NotificationDispatcher struct {
	notifier BookingNotifier
	uow      shared.UnitOfWork
	clock    clock.Clock
	timeout  time.Duration
	wg       sync.WaitGroup
}

func NewNotificationDispatcher(notifier BookingNotifier, uow shared.UnitOfWork, clk clock.Clock, timeout time.Duration) *NotificationDispatcher {
	if timeout <= 0 {
		timeout = defaultSendTimeout
	}
	return &NotificationDispatcher{
		notifier: notifier,
		uow:      uow,
		clock:    clk,
		timeout:  timeout,
	}
}

// Dispatch returns immediately.
func (d *NotificationDispatcher) Dispatch(b *booking.Booking) {
	for _, kind := range b.PendingNotifications() {
		d.wg.Add(1)
		go func() {
			defer d.wg.Done()
			_ = d.deliver(kind, b)
		}()
	}
}

func (d *NotificationDispatcher) deliver(kind booking.NotificationKind, b *booking.Booking) error {
	ctx, cancel := context.WithTimeout(context.Background(), d.timeout)
	defer cancel()

	logger := slog.With("code", b.Code().String(), "kind", string(kind))

	if err := d.notifier.Send(ctx, kind, b); err != nil {
		logger.Error("booking email failed", "error", err.Error())
		return errs.Mark(err, errs.ErrNotificationDeliveryFail)
	}

	err := d.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Bookings().MarkNotificationSent(ctx, b.Code(), kind, d.clock.Now())
	})
	if err != nil {
		// The email went out; a later resend may duplicate it.
		logger.Warn("failed to record email delivery", "error", err.Error())
		return nil
	}

	logger.Info("booking email sent")
	return nil
}

// Drain blocks until in-flight deliveries finish or ctx is done.
func (d *NotificationDispatcher) Drain(ctx context.Context) error {
	done := make(chan struct{})
	go func() {
		d.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
