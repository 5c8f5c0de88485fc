package realtime

import (
	"context"
	"log/slog"
	"sync"

	"github.com/Varma0099/lill-things/internal/domain/activity"
	"github.com/Varma0099/lill-things/internal/domain/slot"
	"github.com/Varma0099/lill-things/internal/usecase/shared"
)

const defaultBufferSize = 32

// Hub fans slot updates out to in-process subscribers, one channel per
// activity. A subscriber whose buffer is full misses the event.
type Hub struct {
	mu       sync.RWMutex
	channels map[string]map[*subscription]struct{}
	buffer   int
}

func NewHub(bufferSize int) *Hub {
	if bufferSize <= 0 {
		bufferSize = defaultBufferSize
	}
	return &Hub{
		channels: make(map[string]map[*subscription]struct{}),
		buffer:   bufferSize,
	}
}

func (h *Hub) Publish(_ context.Context, activityName string, ev slot.UpdatedEvent) error {
	h.Deliver(activity.ChannelKey(activityName), ev)
	return nil
}

// Deliver sends ev to every subscriber of an already-normalized channel key.
func (h *Hub) Deliver(channel string, ev slot.UpdatedEvent) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	for sub := range h.channels[channel] {
		select {
		case sub.events <- ev:
		default:
			slog.Warn("dropping slot update for slow subscriber",
				slog.String("channel", channel),
				slog.String("time_slot", ev.TimeSlot))
		}
	}
}

func (h *Hub) Subscribe(activityName string) shared.Subscription {
	key := activity.ChannelKey(activityName)
	sub := &subscription{
		hub:    h,
		key:    key,
		events: make(chan slot.UpdatedEvent, h.buffer),
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	if h.channels[key] == nil {
		h.channels[key] = make(map[*subscription]struct{})
	}
	h.channels[key][sub] = struct{}{}
	return sub
}

// Subscribers is the number of live subscriptions on an activity's channel.
func (h *Hub) Subscribers(activityName string) int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.channels[activity.ChannelKey(activityName)])
}

func (h *Hub) remove(sub *subscription) {
	h.mu.Lock()
	defer h.mu.Unlock()

	subs := h.channels[sub.key]
	if _, ok := subs[sub]; !ok {
		return
	}
	delete(subs, sub)
	if len(subs) == 0 {
		delete(h.channels, sub.key)
	}
	close(sub.events)
}

type subscription struct {
	hub    *Hub
	key    string
	events chan slot.UpdatedEvent
	once   sync.Once
}

func (s *subscription) Events() <-chan slot.UpdatedEvent { return s.events }

// Close is idempotent. The events channel is closed once the subscription is
// detached, so a range over Events ends.
func (s *subscription) Close() {
	s.once.Do(func() { s.hub.remove(s) })
}
