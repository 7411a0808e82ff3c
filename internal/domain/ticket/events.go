package ticket

import (
	"strconv"
	"time"

	"github.com/supporthub/supporthub/internal/domain/shared/events"
)

const (
	EventTypeTicketUpdated  = "ticket.updated"
	EventTypeTicketAssigned = "ticket.assigned"
)

// TicketUpdatedEvent signals that a ticket was created or changed.
type TicketUpdatedEvent struct {
	events.BaseEvent
	TicketID       uint `json:"ticket_id"`
	ConversationID uint `json:"conversation_id"`
}

func NewTicketUpdatedEvent(t *Ticket, at time.Time) TicketUpdatedEvent {
	return TicketUpdatedEvent{
		BaseEvent:      events.NewBaseEvent(EventTypeTicketUpdated, strconv.FormatUint(uint64(t.ID()), 10), at),
		TicketID:       t.ID(),
		ConversationID: t.ConversationID(),
	}
}

// TicketAssignedEvent signals that an agent now owns the ticket.
type TicketAssignedEvent struct {
	events.BaseEvent
	TicketID       uint   `json:"ticket_id"`
	ConversationID uint   `json:"conversation_id"`
	AgentUserID    string `json:"agent_user_id"`
}

func NewTicketAssignedEvent(t *Ticket, agentUserID string, at time.Time) TicketAssignedEvent {
	return TicketAssignedEvent{
		BaseEvent:      events.NewBaseEvent(EventTypeTicketAssigned, strconv.FormatUint(uint64(t.ID()), 10), at),
		TicketID:       t.ID(),
		ConversationID: t.ConversationID(),
		AgentUserID:    agentUserID,
	}
}

// ChangeEvents returns the events a committed change to t should emit.
func ChangeEvents(t *Ticket, assigned bool, at time.Time) []events.DomainEvent {
	out := []events.DomainEvent{NewTicketUpdatedEvent(t, at)}
	if assigned && t.AssignedAgentID() != nil {
		out = append(out, NewTicketAssignedEvent(t, *t.AssignedAgentID(), at))
	}
	return out
}
