package chat

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/franciscosanchezn/linkup-api/internal/models"
)

func TestChannelFor(t *testing.T) {
	assert.Equal(t, "chat:a@x.com", ChannelFor("a@x.com"))
}

func TestNopHubSubscriptionClosesOnCancel(t *testing.T) {
	var hub Hub = NopHub{}
	hub.Publish(context.Background(), models.Message{ReceiverEmail: "a@x.com", Body: "hi"})

	ch, cancel := hub.Subscribe(context.Background(), "a@x.com")
	cancel()

	select {
	case _, ok := <-ch:
		assert.False(t, ok, "no message expected from a nop hub")
	case <-time.After(time.Second):
		t.Fatal("subscription did not close after cancel")
	}
}

func TestNopHubSubscriptionClosesWithContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	ch, stop := NopHub{}.Subscribe(ctx, "a@x.com")
	defer stop()

	cancel()
	select {
	case _, ok := <-ch:
		assert.False(t, ok)
	case <-time.After(time.Second):
		t.Fatal("subscription did not close after context cancellation")
	}
}

func TestRedisHubPublishFailsSafe(t *testing.T) {
	// nothing listens on port 1; publish must log and return rather than panic or block
	hub := NewRedisHub("127.0.0.1:1", "", 0)
	defer hub.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	assert.Error(t, hub.Ping(ctx))
	hub.Publish(ctx, models.Message{ID: 1, ReceiverEmail: "a@x.com", Body: "hi"})
}
