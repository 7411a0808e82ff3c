package ticket

import (
	"context"
	"errors"

	vo "github.com/supporthub/supporthub/internal/domain/ticket/valueobjects"
)

var ErrTicketNotFound = errors.New("ticket not found")

type Repository interface {
	Create(ctx context.Context, t *Ticket) error
	Update(ctx context.Context, t *Ticket) error
	GetByID(ctx context.Context, id uint) (*Ticket, error)
	GetByConversationID(ctx context.Context, conversationID uint) (*Ticket, error)
	List(ctx context.Context, filter Filter) ([]*Ticket, error)
	// QueuePosition counts non-terminal tickets in t's queue created at or
	// before t, with id breaking ties. Returns 0 when t has no queue.
	QueuePosition(ctx context.Context, t *Ticket) (int, error)
}

// Filter narrows ticket listings; results are newest-updated first.
type Filter struct {
	AssignedAgentID *string
	QueueID         *uint
	Status          *vo.TicketStatus
	Limit           int
}
