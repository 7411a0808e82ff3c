package usecases

import (
	"context"
	stderrors "errors"

	"github.com/supporthub/supporthub/internal/application/conversation/dto"
	"github.com/supporthub/supporthub/internal/domain/conversation"
	"github.com/supporthub/supporthub/internal/domain/customer"
	"github.com/supporthub/supporthub/internal/domain/ticket"
	"github.com/supporthub/supporthub/internal/shared/errors"
	"github.com/supporthub/supporthub/internal/shared/logger"
	"github.com/supporthub/supporthub/internal/shared/services/markdown"
)

type GetConversationQuery struct {
	TicketID uint
}

type GetConversationExecutor interface {
	Execute(ctx context.Context, query GetConversationQuery) (*dto.ConversationViewDTO, error)
}

type GetConversationUseCase struct {
	ticketRepo       ticket.Repository
	conversationRepo conversation.Repository
	customerRepo     customer.Repository
	renderer         markdown.Renderer
	logger           logger.Interface
}

func NewGetConversationUseCase(
	ticketRepo ticket.Repository,
	conversationRepo conversation.Repository,
	customerRepo customer.Repository,
	renderer markdown.Renderer,
	logger logger.Interface,
) *GetConversationUseCase {
	return &GetConversationUseCase{
		ticketRepo:       ticketRepo,
		conversationRepo: conversationRepo,
		customerRepo:     customerRepo,
		renderer:         renderer,
		logger:           logger,
	}
}

func (uc *GetConversationUseCase) Execute(ctx context.Context, query GetConversationQuery) (*dto.ConversationViewDTO, error) {
	if query.TicketID == 0 {
		return nil, errors.NewValidationError("ticket ID is required")
	}

	t, err := uc.ticketRepo.GetByID(ctx, query.TicketID)
	if err != nil {
		if stderrors.Is(err, ticket.ErrTicketNotFound) {
			return nil, errors.NewNotFoundError("ticket not found")
		}
		uc.logger.Errorw("failed to load ticket", "ticket_id", query.TicketID, "error", err)
		return nil, errors.NewInternalError("failed to load conversation")
	}

	convo, err := uc.conversationRepo.GetByID(ctx, t.ConversationID())
	if err != nil {
		if stderrors.Is(err, conversation.ErrConversationNotFound) {
			return nil, errors.NewNotFoundError("conversation not found")
		}
		uc.logger.Errorw("failed to load conversation", "conversation_id", t.ConversationID(), "error", err)
		return nil, errors.NewInternalError("failed to load conversation")
	}

	cust, err := uc.customerRepo.GetByID(ctx, t.CustomerID())
	if err != nil {
		uc.logger.Errorw("failed to load customer", "customer_id", t.CustomerID(), "error", err)
		return nil, errors.NewInternalError("failed to load conversation")
	}

	msgs, err := uc.conversationRepo.ListMessages(ctx, convo.ID())
	if err != nil {
		uc.logger.Errorw("failed to list messages", "conversation_id", convo.ID(), "error", err)
		return nil, errors.NewInternalError("failed to load conversation")
	}

	view := &dto.ConversationViewDTO{
		TicketID:       t.ID(),
		ConversationID: convo.ID(),
		Channel:        convo.Channel().String(),
		Subject:        convo.Subject(),
		Customer: dto.CustomerDTO{
			Name:  cust.Name(),
			Email: cust.Email(),
			Phone: cust.Phone(),
			IsVIP: cust.IsVIP(),
		},
		Messages: make([]dto.MessageDTO, 0, len(msgs)),
	}
	for _, m := range msgs {
		html, err := uc.renderer.Render(m.Body())
		if err != nil {
			// The plain body is still shown.
			uc.logger.Warnw("failed to render message", "message_id", m.ID(), "error", err)
		}
		view.Messages = append(view.Messages, dto.MessageDTO{
			ID:        m.ID(),
			Direction: m.Direction().String(),
			From:      m.From(),
			Body:      m.Body(),
			BodyHTML:  html,
			SentAt:    m.SentAt(),
		})
	}
	return view, nil
}
