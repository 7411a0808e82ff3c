package conversation

import (
	"fmt"
	"strings"
	"time"

	vo "github.com/supporthub/supporthub/internal/domain/conversation/valueobjects"
)

// ErrEmptyBody is returned for messages with no visible text.
var ErrEmptyBody = fmt.Errorf("message body is required")

// Message is immutable once created.
type Message struct {
	id             uint
	conversationID uint
	direction      vo.Direction
	from           string
	body           string
	sentAt         time.Time
}

func NewMessage(conversationID uint, direction vo.Direction, from, body string, sentAt time.Time) (*Message, error) {
	if strings.TrimSpace(body) == "" {
		return nil, ErrEmptyBody
	}
	if conversationID == 0 {
		return nil, fmt.Errorf("conversation ID is required")
	}
	if !direction.IsValid() {
		return nil, fmt.Errorf("invalid direction: %s", direction)
	}
	return &Message{
		conversationID: conversationID,
		direction:      direction,
		from:           from,
		body:           body,
		sentAt:         sentAt,
	}, nil
}

func ReconstructMessage(id, conversationID uint, direction vo.Direction, from, body string, sentAt time.Time) *Message {
	return &Message{
		id:             id,
		conversationID: conversationID,
		direction:      direction,
		from:           from,
		body:           body,
		sentAt:         sentAt,
	}
}

func (m *Message) ID() uint                { return m.id }
func (m *Message) ConversationID() uint    { return m.conversationID }
func (m *Message) Direction() vo.Direction { return m.direction }
func (m *Message) From() string            { return m.from }
func (m *Message) Body() string            { return m.body }
func (m *Message) SentAt() time.Time       { return m.sentAt }

func (m *Message) SetID(id uint) error {
	if m.id != 0 {
		return fmt.Errorf("message ID is already set")
	}
	m.id = id
	return nil
}
