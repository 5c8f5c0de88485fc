//go:build unit

package realtime

import (
	"context"
	"testing"
	"time"

	"github.com/Varma0099/lill-things/internal/domain/slot"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func recv(t *testing.T, ch <-chan slot.UpdatedEvent) slot.UpdatedEvent {
	t.Helper()
	select {
	case ev := <-ch:
		return ev
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for event")
		return slot.UpdatedEvent{}
	}
}

func TestHub_DeliversToSameActivityOnly(t *testing.T) {
	hub := NewHub(4)
	pottery := hub.Subscribe("Pottery Making")
	defer pottery.Close()
	acting := hub.Subscribe("Acting Studio")
	defer acting.Close()

	ev := slot.UpdatedEvent{Activity: "Pottery Making", Date: "2025-06-15", TimeSlot: "10:00 AM", SpotsLeft: 5}
	require.NoError(t, hub.Publish(context.Background(), "  pottery making", ev))

	assert.Equal(t, ev, recv(t, pottery.Events()))
	select {
	case got := <-acting.Events():
		t.Fatalf("unexpected event on other activity: %+v", got)
	default:
	}
}

func TestHub_SlowSubscriberDoesNotBlock(t *testing.T) {
	hub := NewHub(1)
	sub := hub.Subscribe("Pottery Making")
	defer sub.Close()

	done := make(chan struct{})
	go func() {
		for i := 0; i < 10; i++ {
			_ = hub.Publish(context.Background(), "Pottery Making", slot.UpdatedEvent{SpotsLeft: i})
		}
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("publish blocked on a full subscriber")
	}
	assert.Equal(t, 0, recv(t, sub.Events()).SpotsLeft)
}

func TestHub_CloseDetaches(t *testing.T) {
	hub := NewHub(1)
	sub := hub.Subscribe("Pottery Making")
	assert.Equal(t, 1, hub.Subscribers("pottery making"))

	sub.Close()
	sub.Close()

	assert.Equal(t, 0, hub.Subscribers("pottery making"))
	_, open := <-sub.Events()
	assert.False(t, open)
	require.NoError(t, hub.Publish(context.Background(), "Pottery Making", slot.UpdatedEvent{}))
}

func TestRedisBus_RelayStripsPrefix(t *testing.T) {
	hub := NewHub(1)
	bus := NewRedisBus(nil, hub, "test:")
	sub := bus.Subscribe("Art & Painting")
	defer sub.Close()

	bus.relay(&redis.Message{Channel: "test:art & painting", Payload: `{"activity":"Art & Painting","date":"2025-06-15","timeSlot":"2:00 PM","spotsLeft":3}`})
	bus.relay(&redis.Message{Channel: "test:art & painting", Payload: `not json`})

	ev := recv(t, sub.Events())
	assert.Equal(t, 3, ev.SpotsLeft)
	assert.Equal(t, "2:00 PM", ev.TimeSlot)
}
