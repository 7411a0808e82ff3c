package usecases

import (
	"context"
	stderrors "errors"
	"strings"

	"github.com/supporthub/supporthub/internal/application/ticket/dto"
	"github.com/supporthub/supporthub/internal/domain/conversation"
	"github.com/supporthub/supporthub/internal/domain/customer"
	"github.com/supporthub/supporthub/internal/domain/queue"
	"github.com/supporthub/supporthub/internal/domain/ticket"
	vo "github.com/supporthub/supporthub/internal/domain/ticket/valueobjects"
	"github.com/supporthub/supporthub/internal/domain/user"
	"github.com/supporthub/supporthub/internal/shared/constants"
	"github.com/supporthub/supporthub/internal/shared/errors"
	"github.com/supporthub/supporthub/internal/shared/logger"
)

const unroutedQueueLabel = "(unrouted)"

type ListTicketsQuery struct {
	// UserID is the caller; it is only used when AssignedToMe is set.
	UserID       string
	AssignedToMe bool
	QueueID      *uint
	Status       *string
}

type ListTicketsExecutor interface {
	Execute(ctx context.Context, query ListTicketsQuery) ([]dto.TicketListItemDTO, error)
}

type ListTicketsUseCase struct {
	ticketRepo       ticket.Repository
	customerRepo     customer.Repository
	conversationRepo conversation.Repository
	queueRepo        queue.Repository
	userRepo         user.Repository
	logger           logger.Interface
}

func NewListTicketsUseCase(
	ticketRepo ticket.Repository,
	customerRepo customer.Repository,
	conversationRepo conversation.Repository,
	queueRepo queue.Repository,
	userRepo user.Repository,
	logger logger.Interface,
) *ListTicketsUseCase {
	return &ListTicketsUseCase{
		ticketRepo:       ticketRepo,
		customerRepo:     customerRepo,
		conversationRepo: conversationRepo,
		queueRepo:        queueRepo,
		userRepo:         userRepo,
		logger:           logger,
	}
}

func (uc *ListTicketsUseCase) Execute(ctx context.Context, query ListTicketsQuery) ([]dto.TicketListItemDTO, error) {
	filter := ticket.Filter{QueueID: query.QueueID, Limit: constants.MaxTicketListSize}

	if query.AssignedToMe {
		if strings.TrimSpace(query.UserID) == "" {
			return nil, errors.NewUnauthorizedError("caller identity is required")
		}
		filter.AssignedAgentID = &query.UserID
	}

	if query.Status != nil && *query.Status != "" {
		status, err := vo.NewTicketStatus(*query.Status)
		if err != nil {
			return nil, errors.NewValidationError("invalid status", *query.Status)
		}
		filter.Status = &status
	}

	tickets, err := uc.ticketRepo.List(ctx, filter)
	if err != nil {
		uc.logger.Errorw("failed to list tickets", "error", err)
		return nil, errors.NewInternalError("failed to list tickets")
	}

	lk := newLookups(uc)
	items := make([]dto.TicketListItemDTO, 0, len(tickets))
	for _, t := range tickets {
		item, err := lk.item(ctx, t)
		if err != nil {
			uc.logger.Errorw("failed to build ticket list item", "ticket_id", t.ID(), "error", err)
			return nil, errors.NewInternalError("failed to list tickets")
		}
		items = append(items, item)
	}

	uc.logger.Debugw("tickets listed", "count", len(items), "assigned_to_me", query.AssignedToMe)
	return items, nil
}

// lookups memoizes the per-row joins of one listing.
type lookups struct {
	uc        *ListTicketsUseCase
	customers map[uint]string
	channels  map[uint]string
	queues    map[uint]string
	agents    map[string]*string
}

func newLookups(uc *ListTicketsUseCase) *lookups {
	return &lookups{
		uc:        uc,
		customers: make(map[uint]string),
		channels:  make(map[uint]string),
		queues:    make(map[uint]string),
		agents:    make(map[string]*string),
	}
}

func (l *lookups) item(ctx context.Context, t *ticket.Ticket) (dto.TicketListItemDTO, error) {
	item := dto.TicketListItemDTO{
		ID:              t.ID(),
		Queue:           unroutedQueueLabel,
		QueueID:         t.QueueID(),
		Status:          t.Status().String(),
		Priority:        t.Priority().String(),
		Category:        t.Category(),
		AssignedAgentID: t.AssignedAgentID(),
		CreatedAt:       t.CreatedAt(),
		UpdatedAt:       t.UpdatedAt(),
	}

	name, ok := l.customers[t.CustomerID()]
	if !ok {
		c, err := l.uc.customerRepo.GetByID(ctx, t.CustomerID())
		switch {
		case stderrors.Is(err, customer.ErrCustomerNotFound):
			name = constants.DefaultCustomerName
		case err != nil:
			return item, err
		default:
			name = c.Name()
		}
		l.customers[t.CustomerID()] = name
	}
	item.CustomerName = name

	channel, ok := l.channels[t.ConversationID()]
	if !ok {
		convo, err := l.uc.conversationRepo.GetByID(ctx, t.ConversationID())
		if err != nil && !stderrors.Is(err, conversation.ErrConversationNotFound) {
			return item, err
		}
		if convo != nil {
			channel = convo.Channel().String()
		}
		l.channels[t.ConversationID()] = channel
	}
	item.Channel = channel

	if id := t.QueueID(); id != nil {
		qname, ok := l.queues[*id]
		if !ok {
			q, err := l.uc.queueRepo.GetByID(ctx, *id)
			if err != nil && !stderrors.Is(err, queue.ErrQueueNotFound) {
				return item, err
			}
			qname = unroutedQueueLabel
			if q != nil {
				qname = q.Name()
			}
			l.queues[*id] = qname
		}
		item.Queue = qname
	}

	if id := t.AssignedAgentID(); id != nil {
		agentName, ok := l.agents[*id]
		if !ok {
			u, err := l.uc.userRepo.GetByID(ctx, *id)
			if err != nil && !stderrors.Is(err, user.ErrUserNotFound) {
				return item, err
			}
			if u != nil {
				n := u.Name()
				agentName = &n
			}
			l.agents[*id] = agentName
		}
		item.AssignedAgent = agentName
	}
	return item, nil
}
