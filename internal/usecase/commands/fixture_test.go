//go:build unit

package commands_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/Varma0099/lill-things/internal/domain/activity"
	"github.com/Varma0099/lill-things/internal/domain/booking"
	"github.com/Varma0099/lill-things/internal/domain/slot"
	"github.com/Varma0099/lill-things/internal/infra/memstore"
	"github.com/Varma0099/lill-things/internal/pkg/clock"
	"github.com/Varma0099/lill-things/internal/usecase/commands"
	"github.com/Varma0099/lill-things/internal/usecase/queries"
	commandsmock "github.com/Varma0099/lill-things/tests/mock/commands"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var fixtureNow = time.Date(2030, 6, 1, 9, 30, 0, 0, time.UTC)

// fixture wires the commands to the in-memory store with mocked ports.
type fixture struct {
	t          *testing.T
	ctrl       *gomock.Controller
	store      *memstore.Store
	reads      *memstore.ReadStore
	clock      *clock.MockClock
	publisher  *commandsmock.MockAvailabilityPublisher
	notifier   *commandsmock.MockBookingNotifier
	dispatcher *commands.NotificationDispatcher
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	ctrl := gomock.NewController(t)
	clk := clock.NewMockClock(fixtureNow)
	store := memstore.New(clk)
	require.NoError(t, store.SeedActivities(context.Background(), activity.DefaultCatalog()))

	f := &fixture{
		t:         t,
		ctrl:      ctrl,
		store:     store,
		reads:     memstore.NewReadStore(store),
		clock:     clk,
		publisher: commandsmock.NewMockAvailabilityPublisher(ctrl),
		notifier:  commandsmock.NewMockBookingNotifier(ctrl),
	}
	f.dispatcher = commands.NewNotificationDispatcher(f.notifier, store, clk, time.Second)
	// Async email goroutines must finish before gomock verifies the controller.
	t.Cleanup(f.drain)
	return f
}

func (f *fixture) drain() {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	require.NoError(f.t, f.dispatcher.Drain(ctx))
}

func (f *fixture) reservations(codes booking.CodeGenerator, attempts int) commands.ReservationCommands {
	if codes == nil {
		codes = booking.NewRandomCodeGenerator(f.clock)
	}
	return commands.NewReservationCommands(f.store, codes, f.publisher, f.dispatcher, f.clock,
		commands.ReservationSettings{MaxCodeAttempts: attempts})
}

func (f *fixture) admin() commands.AdminCommands {
	return commands.NewAdminCommands(f.store, f.publisher, f.clock)
}

// quiet accepts any broadcast or email.
func (f *fixture) quiet() {
	f.publisher.EXPECT().Publish(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	f.notifier.EXPECT().Send(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
}

// recordEvents captures broadcasts in order.
func (f *fixture) recordEvents() func() []slot.UpdatedEvent {
	var (
		mu     sync.Mutex
		events []slot.UpdatedEvent
	)
	f.publisher.EXPECT().Publish(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, ev slot.UpdatedEvent) error {
			mu.Lock()
			defer mu.Unlock()
			events = append(events, ev)
			return nil
		}).AnyTimes()
	return func() []slot.UpdatedEvent {
		mu.Lock()
		defer mu.Unlock()
		return append([]slot.UpdatedEvent(nil), events...)
	}
}

// slotState reads the stored slot for an activity, date and label.
func (f *fixture) slotState(activityName, date string, ts slot.TimeSlot) *slot.Slot {
	f.t.Helper()
	ctx := context.Background()

	act, err := f.reads.FindByName(ctx, activityName)
	require.NoError(f.t, err)
	day, err := slot.ParseDate(date)
	require.NoError(f.t, err)
	slots, err := f.reads.ListByActivityAndDate(ctx, act.ID, day)
	require.NoError(f.t, err)
	for _, s := range slots {
		if s.TimeSlot() == ts {
			return s
		}
	}
	return nil
}

func (f *fixture) bookingView(code booking.ConfirmationCode) *queries.BookingView {
	f.t.Helper()
	v, err := f.reads.FindByCode(context.Background(), code)
	require.NoError(f.t, err)
	return v
}

func potteryInput(participants int) commands.CreateReservationInput {
	return commands.CreateReservationInput{
		CustomerName:  "Asha Rao",
		CustomerEmail: "asha@example.com",
		CustomerPhone: "+91 98450 12345",
		Participants:  participants,
		Activity:      activity.PotteryMaking,
		Date:          "2030-06-15",
		TimeSlot:      "2:00 PM",
	}
}

// scriptedCodes hands out codes in order and repeats the last one.
type scriptedCodes struct {
	mu    sync.Mutex
	codes []booking.ConfirmationCode
	calls int
}

func (g *scriptedCodes) Generate() (booking.ConfirmationCode, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	i := min(g.calls, len(g.codes)-1)
	g.calls++
	return g.codes[i], nil
}
