package pubsub

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/supporthub/supporthub/internal/application/notification"
	"github.com/supporthub/supporthub/internal/shared/goroutine"
	"github.com/supporthub/supporthub/internal/shared/logger"
)

const notifyChannelPrefix = "supporthub:notify:"

// ChannelFor returns the Redis channel a group's notifications go to.
func ChannelFor(group string) string {
	return notifyChannelPrefix + group
}

// Envelope is the wire form of a notification.
type Envelope struct {
	Group      string          `json:"group"`
	Type       string          `json:"type"`
	Payload    json.RawMessage `json:"payload"`
	OccurredAt time.Time       `json:"occurred_at"`
	InstanceID string          `json:"instance_id,omitempty"`
}

// RedisNotifier publishes notifications on per-group Redis channels so that
// any instance holding a realtime connection can forward them.
type RedisNotifier struct {
	client     *redis.Client
	logger     logger.Interface
	instanceID string
}

func NewRedisNotifier(client *redis.Client, logger logger.Interface) *RedisNotifier {
	return &RedisNotifier{
		client:     client,
		logger:     logger,
		instanceID: uuid.NewString(),
	}
}

func (n *RedisNotifier) InstanceID() string {
	return n.instanceID
}

func (n *RedisNotifier) Notify(ctx context.Context, msg notification.Notification) error {
	payload, err := json.Marshal(msg.Payload)
	if err != nil {
		return fmt.Errorf("failed to marshal notification payload: %w", err)
	}
	data, err := json.Marshal(Envelope{
		Group:      msg.Group,
		Type:       msg.Type,
		Payload:    payload,
		OccurredAt: msg.OccurredAt,
		InstanceID: n.instanceID,
	})
	if err != nil {
		return fmt.Errorf("failed to marshal notification: %w", err)
	}

	if err := n.client.Publish(ctx, ChannelFor(msg.Group), data).Err(); err != nil {
		n.logger.Errorw("failed to publish notification",
			"group", msg.Group,
			"type", msg.Type,
			"error", err,
		)
		return fmt.Errorf("failed to publish notification: %w", err)
	}

	n.logger.Debugw("notification published",
		"group", msg.Group,
		"type", msg.Type,
	)
	return nil
}

// Subscribe delivers envelopes for the given groups, or for every group when
// none are named, until ctx is cancelled. Dropped connections are retried
// with exponential backoff.
func (n *RedisNotifier) Subscribe(ctx context.Context, handler func(Envelope), groups ...string) error {
	backoff := time.Second
	maxBackoff := 30 * time.Second

	for {
		err := n.subscribe(ctx, groups, handler)
		if ctx.Err() != nil {
			return ctx.Err()
		}

		n.logger.Warnw("notification subscription disconnected, reconnecting",
			"groups", strings.Join(groups, ","),
			"error", err,
			"backoff", backoff,
		)

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(backoff):
		}

		backoff = min(backoff*2, maxBackoff)
	}
}

func (n *RedisNotifier) subscribe(ctx context.Context, groups []string, handler func(Envelope)) error {
	var ps *redis.PubSub
	if len(groups) == 0 {
		ps = n.client.PSubscribe(ctx, notifyChannelPrefix+"*")
	} else {
		channels := make([]string, len(groups))
		for i, g := range groups {
			channels[i] = ChannelFor(g)
		}
		ps = n.client.Subscribe(ctx, channels...)
	}
	defer ps.Close()

	if _, err := ps.Receive(ctx); err != nil {
		return fmt.Errorf("failed to subscribe to notifications: %w", err)
	}
	n.logger.Infow("subscribed to notification channels", "groups", strings.Join(groups, ","))

	ch := ps.Channel()
	for {
		select {
		case <-ctx.Done():
			n.logger.Infow("notification subscriber stopped", "reason", ctx.Err())
			return ctx.Err()

		case msg, ok := <-ch:
			if !ok {
				n.logger.Warnw("notification channel closed")
				return nil
			}

			var env Envelope
			if err := json.Unmarshal([]byte(msg.Payload), &env); err != nil {
				n.logger.Warnw("failed to unmarshal notification",
					"channel", msg.Channel,
					"error", err,
				)
				continue
			}
			goroutine.SafeGo(n.logger, "notification-handler-"+env.Group, func() {
				handler(env)
			})
		}
	}
}
