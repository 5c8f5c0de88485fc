//go:build unit

package commands_test

import (
	"context"
	"testing"
	"time"

	"github.com/Varma0099/lill-things/internal/domain/booking"
	"github.com/Varma0099/lill-things/internal/usecase/commands"
	commandsmock "github.com/Varma0099/lill-things/tests/mock/commands"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestNotificationDispatcher_SkipsDeliveredKinds(t *testing.T) {
	f := newFixture(t)
	f.publisher.EXPECT().Publish(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
	f.notifier.EXPECT().Send(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).Times(2)

	b := bookOne(t, f, 1)
	f.drain()

	// Re-dispatching the delivered booking must not send anything.
	b.MarkNotificationSent(booking.NotificationCustomerConfirmation, fixtureNow)
	b.MarkNotificationSent(booking.NotificationOwner, fixtureNow)
	f.dispatcher.Dispatch(b)
	f.drain()
}

func TestNotificationDispatcher_DrainHonorsContext(t *testing.T) {
	f := newFixture(t)
	f.quiet()

	b := bookOne(t, f, 1)
	f.drain()

	release := make(chan struct{})
	blocking := commandsmock.NewMockBookingNotifier(f.ctrl)
	blocking.EXPECT().Send(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(context.Context, booking.NotificationKind, *booking.Booking) error {
			<-release
			return nil
		}).Times(2)

	slow := commands.NewNotificationDispatcher(blocking, f.store, f.clock, time.Second)
	// The returned booking does not track deliveries, so both emails go again.
	slow.Dispatch(b)

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	require.ErrorIs(t, slow.Drain(ctx), context.DeadlineExceeded)

	close(release)
	require.NoError(t, slow.Drain(context.Background()))
	assert.True(t, f.bookingView(b.Code()).OwnerNotificationSent)
}
