package commands

import (
	"context"

	"github.com/Varma0099/lill-things/internal/domain/booking"
	"github.com/Varma0099/lill-things/internal/domain/slot"
)

//go:generate mockgen -source=ports.go -destination=../../../tests/mock/commands/ports.go -package=commandsmock

// AvailabilityPublisher broadcasts remaining capacity after a committed change.
type AvailabilityPublisher interface {
	Publish(ctx context.Context, activityName string, ev slot.UpdatedEvent) error
}

// BookingNotifier delivers one booking email.
type BookingNotifier interface {
	Send(ctx context.Context, kind booking.NotificationKind, b *booking.Booking) error
}
