package conversation

import (
	"strconv"
	"time"

	"github.com/supporthub/supporthub/internal/domain/shared/events"
)

const EventTypeMessagePosted = "conversation.message"

// MessagePostedEvent carries a new message to live viewers of a conversation.
type MessagePostedEvent struct {
	events.BaseEvent
	ConversationID uint      `json:"conversation_id"`
	TicketID       uint      `json:"ticket_id"`
	Body           string    `json:"body"`
	From           string    `json:"from"`
	Direction      string    `json:"direction"`
	SentAt         time.Time `json:"sent_at"`
}

func NewMessagePostedEvent(ticketID uint, m *Message) MessagePostedEvent {
	return MessagePostedEvent{
		BaseEvent:      events.NewBaseEvent(EventTypeMessagePosted, strconv.FormatUint(uint64(m.ConversationID()), 10), m.SentAt()),
		ConversationID: m.ConversationID(),
		TicketID:       ticketID,
		Body:           m.Body(),
		From:           m.From(),
		Direction:      m.Direction().String(),
		SentAt:         m.SentAt(),
	}
}
