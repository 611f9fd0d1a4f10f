// Package chat fans out newly stored chat messages to connected recipients.
// Delivery is best effort: messages are persisted before publishing, and a failed
// publish only means the recipient sees the message on its next fetch.
package chat

import (
	"context"
	"encoding/json"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	"github.com/franciscosanchezn/linkup-api/internal/models"
)

var log = logrus.New()

func init() {
	log.SetFormatter(&logrus.JSONFormatter{})
	log.SetLevel(logrus.InfoLevel)
}

const channelPrefix = "chat:"

// Hub publishes messages and lets a recipient subscribe to its inbox
type Hub interface {
	// Publish notifies the receiver of msg. Errors are swallowed.
	Publish(ctx context.Context, msg models.Message)
	// Subscribe returns a channel of messages addressed to email. The channel closes when
	// ctx is done or the returned cancel func is called.
	Subscribe(ctx context.Context, email string) (<-chan models.Message, func())
}

// ChannelFor returns the pub/sub channel carrying messages addressed to email
func ChannelFor(email string) string {
	return channelPrefix + email
}

// RedisHub is a Hub over redis pub/sub
type RedisHub struct {
	client *redis.Client
}

// NewRedisHub creates a hub connected to addr
func NewRedisHub(addr, password string, db int) *RedisHub {
	return &RedisHub{client: redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})}
}

// Ping checks connectivity; used at startup to log whether realtime delivery is available
func (h *RedisHub) Ping(ctx context.Context) error {
	return h.client.Ping(ctx).Err()
}

// Close releases the redis connection pool
func (h *RedisHub) Close() error {
	return h.client.Close()
}

func (h *RedisHub) Publish(ctx context.Context, msg models.Message) {
	payload, err := json.Marshal(msg)
	if err != nil {
		log.WithError(err).Warn("Failed to encode chat message")
		return
	}
	if err := h.client.Publish(ctx, ChannelFor(msg.ReceiverEmail), payload).Err(); err != nil {
		// fail safe: the message is already stored
		log.WithError(err).WithField("message_id", msg.ID).Warn("Failed to publish chat message")
	}
}

func (h *RedisHub) Subscribe(ctx context.Context, email string) (<-chan models.Message, func()) {
	ctx, cancel := context.WithCancel(ctx)
	sub := h.client.Subscribe(ctx, ChannelFor(email))
	out := make(chan models.Message)

	go func() {
		defer close(out)
		defer sub.Close()
		in := sub.Channel()
		for {
			select {
			case <-ctx.Done():
				return
			case m, ok := <-in:
				if !ok {
					return
				}
				var msg models.Message
				if err := json.Unmarshal([]byte(m.Payload), &msg); err != nil {
					log.WithError(err).Warn("Dropping undecodable chat message")
					continue
				}
				select {
				case out <- msg:
				case <-ctx.Done():
					return
				}
			}
		}
	}()

	return out, cancel
}

// NopHub is used when redis is not configured: nothing is pushed and subscriptions
// stay open and silent until cancelled.
type NopHub struct{}

func (NopHub) Publish(ctx context.Context, msg models.Message) {}

func (NopHub) Subscribe(ctx context.Context, email string) (<-chan models.Message, func()) {
	ctx, cancel := context.WithCancel(ctx)
	out := make(chan models.Message)
	go func() {
		<-ctx.Done()
		close(out)
	}()
	return out, cancel
}
