// Package notification fans committed domain events out to the realtime
// groups that browsers subscribe to.
package notification

import (
	"context"
	"fmt"
	"time"

	"github.com/supporthub/supporthub/internal/domain/conversation"
	"github.com/supporthub/supporthub/internal/domain/shared/events"
	"github.com/supporthub/supporthub/internal/domain/ticket"
	"github.com/supporthub/supporthub/internal/shared/logger"
)

const (
	GroupSupervisor = "supervisor"
	GroupAgent      = "agent"
)

// ConversationGroup is the group a guest widget joins for one conversation.
func ConversationGroup(conversationID uint) string {
	return fmt.Sprintf("convo:%d", conversationID)
}

// Notification is one event addressed to one group.
type Notification struct {
	Group      string    `json:"group"`
	Type       string    `json:"type"`
	Payload    any       `json:"payload"`
	OccurredAt time.Time `json:"occurred_at"`
}

// Notifier delivers notifications to the realtime sink.
type Notifier interface {
	Notify(ctx context.Context, n Notification) error
}

// Relay is an event handler that addresses events to groups and hands them
// to a Notifier. Delivery is best effort.
type Relay struct {
	notifier Notifier
	logger   logger.Interface
}

func NewRelay(notifier Notifier, logger logger.Interface) *Relay {
	return &Relay{notifier: notifier, logger: logger}
}

// Register subscribes the relay to every event type it understands.
func (r *Relay) Register(d events.EventDispatcher) error {
	for _, t := range []string{
		ticket.EventTypeTicketUpdated,
		ticket.EventTypeTicketAssigned,
		conversation.EventTypeMessagePosted,
	} {
		if err := d.Subscribe(t, r); err != nil {
			return fmt.Errorf("failed to subscribe relay to %s: %w", t, err)
		}
	}
	return nil
}

func (r *Relay) Handle(ctx context.Context, event events.DomainEvent) error {
	var failed int
	for _, n := range Address(event) {
		if err := r.notifier.Notify(ctx, n); err != nil {
			failed++
			r.logger.Warnw("failed to deliver notification",
				"group", n.Group,
				"type", n.Type,
				"error", err,
			)
		}
	}
	if failed > 0 {
		return fmt.Errorf("%d notification(s) for %s not delivered", failed, event.GetEventType())
	}
	return nil
}

// Address returns the notifications an event produces. Unknown events
// produce none.
func Address(event events.DomainEvent) []Notification {
	var groups []string
	switch e := event.(type) {
	case ticket.TicketUpdatedEvent:
		groups = []string{GroupSupervisor, GroupAgent}
	case ticket.TicketAssignedEvent:
		groups = []string{GroupAgent}
	case conversation.MessagePostedEvent:
		groups = []string{GroupSupervisor, GroupAgent, ConversationGroup(e.ConversationID)}
	default:
		return nil
	}

	out := make([]Notification, 0, len(groups))
	for _, g := range groups {
		out = append(out, Notification{
			Group:      g,
			Type:       event.GetEventType(),
			Payload:    event,
			OccurredAt: event.GetOccurredAt(),
		})
	}
	return out
}
