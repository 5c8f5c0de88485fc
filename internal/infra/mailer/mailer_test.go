//go:build unit

package mailer

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/Varma0099/lill-things/internal/domain/booking"
	"github.com/Varma0099/lill-things/internal/domain/slot"
	"github.com/Varma0099/lill-things/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/sendgrid/rest"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeClient struct {
	resp *rest.Response
	err  error
	sent []*mail.SGMailV3
}

func (f *fakeClient) SendWithContext(_ context.Context, email *mail.SGMailV3) (*rest.Response, error) {
	f.sent = append(f.sent, email)
	return f.resp, f.err
}

func testBooking(t *testing.T, name string) *booking.Booking {
	t.Helper()
	customer, err := booking.NewCustomerInfo(name, "asha@example.com", "+91 98450 00000", 3)
	require.NoError(t, err)
	s := slot.New(slot.Key{
		ActivityID: uuid.New(),
		Date:       time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC),
		TimeSlot:   slot.Slot2PM,
	}, 8, time.Date(2025, 6, 1, 3, 30, 0, 0, time.UTC))
	return booking.New("LT2025ABC123", s, "Pottery Making", customer, time.Date(2025, 6, 1, 3, 30, 0, 0, time.UTC))
}

func TestComposer_CustomerConfirmation(t *testing.T) {
	c := NewComposer("owner@littlethings.studio", time.UTC)

	msg, err := c.Compose(booking.NotificationCustomerConfirmation, testBooking(t, "Asha Rao"))

	require.NoError(t, err)
	assert.Equal(t, "asha@example.com", msg.ToAddress)
	assert.Equal(t, "🎨 Booking Confirmed - Pottery Making at Little Things", msg.Subject)
	assert.Contains(t, msg.HTML, "LT2025ABC123")
	assert.Contains(t, msg.HTML, "Sunday, 15 June 2025")
	assert.Contains(t, msg.HTML, "2:00 PM")
	assert.Contains(t, msg.PlainText, "Participants: 3")
}

func TestComposer_OwnerNotification(t *testing.T) {
	ist := time.FixedZone("IST", 19800)
	c := NewComposer("owner@littlethings.studio", ist)

	msg, err := c.Compose(booking.NotificationOwner, testBooking(t, "Asha Rao"))

	require.NoError(t, err)
	assert.Equal(t, "owner@littlethings.studio", msg.ToAddress)
	assert.Equal(t, "📅 New Booking: Pottery Making - Asha Rao", msg.Subject)
	assert.Contains(t, msg.HTML, "+91 98450 00000")
	assert.Contains(t, msg.HTML, "1 Jun 2025, 9:00 AM")
}

func TestComposer_EscapesCustomerInput(t *testing.T) {
	c := NewComposer("owner@littlethings.studio", time.UTC)

	msg, err := c.Compose(booking.NotificationOwner, testBooking(t, "<script>alert(1)</script>"))

	require.NoError(t, err)
	assert.NotContains(t, msg.HTML, "<script>")
	assert.Contains(t, msg.HTML, "&lt;script&gt;")
}

func TestComposer_UnknownKind(t *testing.T) {
	_, err := NewComposer("", nil).Compose("sms", testBooking(t, "Asha"))
	assert.ErrorIs(t, err, ErrUnknownKind)
}

func TestSendGridNotifier_Send(t *testing.T) {
	tests := []struct {
		name     string
		owner    string
		kind     booking.NotificationKind
		resp     *rest.Response
		err      error
		wantErr  bool
		wantSent int
	}{
		{name: "accepted", owner: "owner@x.io", kind: booking.NotificationCustomerConfirmation, resp: &rest.Response{StatusCode: 202}, wantSent: 1},
		{name: "rejected status", owner: "owner@x.io", kind: booking.NotificationOwner, resp: &rest.Response{StatusCode: 401, Body: "unauthorized"}, wantErr: true, wantSent: 1},
		{name: "transport error", owner: "owner@x.io", kind: booking.NotificationOwner, err: errors.New("dial tcp"), wantErr: true, wantSent: 1},
		{name: "no owner address", owner: "", kind: booking.NotificationOwner, wantErr: true, wantSent: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := &fakeClient{resp: tt.resp, err: tt.err}
			n := newSendGridNotifier(client, "Little Things", "bookings@x.io", NewComposer(tt.owner, time.UTC))

			err := n.Send(context.Background(), tt.kind, testBooking(t, "Asha"))

			assert.Len(t, client.sent, tt.wantSent)
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, errs.Is(err, errs.ErrNotificationDeliveryFail))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, "bookings@x.io", client.sent[0].From.Address)
		})
	}
}

func TestLogNotifier_NeverFails(t *testing.T) {
	n := NewLogNotifier(NewComposer("owner@x.io", time.UTC))
	assert.NoError(t, n.Send(context.Background(), booking.NotificationOwner, testBooking(t, "Asha")))
}
