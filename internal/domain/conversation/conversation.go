package conversation

import (
	"fmt"
	"strings"
	"time"

	vo "github.com/supporthub/supporthub/internal/domain/conversation/valueobjects"
)

// Conversation is a thread with one customer over one channel.
type Conversation struct {
	id            uint
	customerID    uint
	channel       vo.Channel
	subject       *string
	createdAt     time.Time
	lastMessageAt time.Time
}

func NewConversation(customerID uint, channel vo.Channel, subject string, now time.Time) (*Conversation, error) {
	if customerID == 0 {
		return nil, fmt.Errorf("customer ID is required")
	}
	if !channel.IsValid() {
		return nil, fmt.Errorf("invalid channel: %s", channel)
	}

	c := &Conversation{
		customerID:    customerID,
		channel:       channel,
		createdAt:     now,
		lastMessageAt: now,
	}
	if s := strings.TrimSpace(subject); s != "" {
		c.subject = &s
	}
	return c, nil
}

func ReconstructConversation(id, customerID uint, channel vo.Channel, subject *string, createdAt, lastMessageAt time.Time) *Conversation {
	return &Conversation{
		id:            id,
		customerID:    customerID,
		channel:       channel,
		subject:       subject,
		createdAt:     createdAt,
		lastMessageAt: lastMessageAt,
	}
}

func (c *Conversation) ID() uint                 { return c.id }
func (c *Conversation) CustomerID() uint         { return c.customerID }
func (c *Conversation) Channel() vo.Channel      { return c.channel }
func (c *Conversation) Subject() *string         { return c.subject }
func (c *Conversation) CreatedAt() time.Time     { return c.createdAt }
func (c *Conversation) LastMessageAt() time.Time { return c.lastMessageAt }

// SubjectText returns the subject or "".
func (c *Conversation) SubjectText() string {
	if c.subject == nil {
		return ""
	}
	return *c.subject
}

func (c *Conversation) SetID(id uint) error {
	if c.id != 0 {
		return fmt.Errorf("conversation ID is already set")
	}
	c.id = id
	return nil
}

// Record appends m to the conversation's activity. It does not persist m.
func (c *Conversation) Record(m *Message) error {
	if m.ConversationID() != c.id {
		return fmt.Errorf("message belongs to conversation %d, not %d", m.ConversationID(), c.id)
	}
	if m.SentAt().After(c.lastMessageAt) {
		c.lastMessageAt = m.SentAt()
	}
	return nil
}
