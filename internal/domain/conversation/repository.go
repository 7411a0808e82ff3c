package conversation

import (
	"context"
	"errors"

	vo "github.com/supporthub/supporthub/internal/domain/conversation/valueobjects"
)

var ErrConversationNotFound = errors.New("conversation not found")

type Repository interface {
	Create(ctx context.Context, c *Conversation) error
	Update(ctx context.Context, c *Conversation) error
	GetByID(ctx context.Context, id uint) (*Conversation, error)
	// FindOpen returns the customer's most recent conversation on channel
	// whose ticket is neither resolved nor closed, or (nil, nil).
	FindOpen(ctx context.Context, customerID uint, channel vo.Channel) (*Conversation, error)
	AppendMessage(ctx context.Context, m *Message) error
	// ListMessages returns messages ordered by sent time, then id.
	ListMessages(ctx context.Context, conversationID uint) ([]*Message, error)
}
