package shared

import (
	"context"

	"github.com/Varma0099/lill-things/internal/domain/slot"
)

// NotificationBus fans slot updates out to everyone watching an activity.
// Delivery is best effort: a slow or gone subscriber never blocks a publisher.
type NotificationBus interface {
	Publish(ctx context.Context, activityName string, ev slot.UpdatedEvent) error
	Subscribe(activityName string) Subscription
}

type Subscription interface {
	Events() <-chan slot.UpdatedEvent
	Close()
}
