package pubsub

import (
	"context"

	"github.com/supporthub/supporthub/internal/application/notification"
	"github.com/supporthub/supporthub/internal/shared/logger"
)

// LogNotifier stands in for RedisNotifier when Redis is disabled. It only
// records what would have been sent.
type LogNotifier struct {
	logger logger.Interface
}

func NewLogNotifier(logger logger.Interface) *LogNotifier {
	return &LogNotifier{logger: logger}
}

func (n *LogNotifier) Notify(_ context.Context, msg notification.Notification) error {
	n.logger.Infow("notification",
		"group", msg.Group,
		"type", msg.Type,
		"occurred_at", msg.OccurredAt,
	)
	return nil
}
