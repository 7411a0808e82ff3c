package usecases

import (
	"context"
	stderrors "errors"
	"fmt"
	"strings"
	"time"

	"github.com/supporthub/supporthub/internal/application/inbound/dto"
	"github.com/supporthub/supporthub/internal/domain/conversation"
	convvo "github.com/supporthub/supporthub/internal/domain/conversation/valueobjects"
	"github.com/supporthub/supporthub/internal/domain/shared/events"
	"github.com/supporthub/supporthub/internal/domain/ticket"
	"github.com/supporthub/supporthub/internal/shared/biztime"
	"github.com/supporthub/supporthub/internal/shared/constants"
	"github.com/supporthub/supporthub/internal/shared/db"
	"github.com/supporthub/supporthub/internal/shared/errors"
	"github.com/supporthub/supporthub/internal/shared/logger"
)

type PostGuestMessageCommand struct {
	ConversationID uint
	Body           string
}

type PostGuestMessageExecutor interface {
	Execute(ctx context.Context, cmd PostGuestMessageCommand) (*dto.GuestMessageResultDTO, error)
}

// PostGuestMessageUseCase appends a follow-up from the guest widget to an
// existing conversation. Guests never start conversations this way.
type PostGuestMessageUseCase struct {
	conversationRepo conversation.Repository
	ticketRepo       ticket.Repository
	txMgr            db.Transactor
	publisher        events.EventPublisher
	logger           logger.Interface
	now              func() time.Time
}

func NewPostGuestMessageUseCase(
	conversationRepo conversation.Repository,
	ticketRepo ticket.Repository,
	txMgr db.Transactor,
	publisher events.EventPublisher,
	logger logger.Interface,
) *PostGuestMessageUseCase {
	return &PostGuestMessageUseCase{
		conversationRepo: conversationRepo,
		ticketRepo:       ticketRepo,
		txMgr:            txMgr,
		publisher:        publisher,
		logger:           logger,
		now:              biztime.NowUTC,
	}
}

func (uc *PostGuestMessageUseCase) Execute(ctx context.Context, cmd PostGuestMessageCommand) (*dto.GuestMessageResultDTO, error) {
	if cmd.ConversationID == 0 {
		return nil, errors.NewValidationError("conversation ID is required")
	}
	if strings.TrimSpace(cmd.Body) == "" {
		return nil, errors.NewValidationError("message body is required")
	}

	now := uc.now()
	var (
		msg *conversation.Message
		t   *ticket.Ticket
	)
	err := uc.txMgr.RunInTransaction(ctx, func(txCtx context.Context) error {
		convo, err := uc.conversationRepo.GetByID(txCtx, cmd.ConversationID)
		if err != nil {
			if stderrors.Is(err, conversation.ErrConversationNotFound) {
				return errors.NewNotFoundError("conversation not found")
			}
			return fmt.Errorf("failed to load conversation: %w", err)
		}

		msg, err = conversation.NewMessage(convo.ID(), convvo.DirectionInbound, constants.GuestSender, cmd.Body, now)
		if err != nil {
			return errors.NewValidationError(err.Error())
		}
		if err := uc.conversationRepo.AppendMessage(txCtx, msg); err != nil {
			return fmt.Errorf("failed to append message: %w", err)
		}
		if err := convo.Record(msg); err != nil {
			return err
		}
		if err := uc.conversationRepo.Update(txCtx, convo); err != nil {
			return fmt.Errorf("failed to update conversation: %w", err)
		}

		t, err = uc.ticketRepo.GetByConversationID(txCtx, convo.ID())
		if err != nil {
			if stderrors.Is(err, ticket.ErrTicketNotFound) {
				t = nil
				return nil
			}
			return fmt.Errorf("failed to load ticket: %w", err)
		}
		t.Touch(now)
		if err := uc.ticketRepo.Update(txCtx, t); err != nil {
			return fmt.Errorf("failed to update ticket: %w", err)
		}
		return nil
	})
	if err != nil {
		uc.logger.Errorw("failed to post guest message", "conversation_id", cmd.ConversationID, "error", err)
		if errors.IsAppError(err) {
			return nil, err
		}
		return nil, errors.NewInternalError("failed to post message")
	}

	var ticketID uint
	if t != nil {
		ticketID = t.ID()
	}
	if err := uc.publisher.Publish(conversation.NewMessagePostedEvent(ticketID, msg)); err != nil {
		uc.logger.Warnw("failed to publish guest message event", "conversation_id", cmd.ConversationID, "error", err)
	}

	uc.logger.Infow("guest message posted",
		"conversation_id", cmd.ConversationID,
		"message_id", msg.ID(),
	)
	return &dto.GuestMessageResultDTO{MessageID: msg.ID()}, nil
}
