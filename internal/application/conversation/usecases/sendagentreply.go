package usecases

import (
	"context"
	stderrors "errors"
	"fmt"
	"strings"
	"time"

	"github.com/supporthub/supporthub/internal/application/conversation/dto"
	"github.com/supporthub/supporthub/internal/domain/conversation"
	convvo "github.com/supporthub/supporthub/internal/domain/conversation/valueobjects"
	"github.com/supporthub/supporthub/internal/domain/customer"
	"github.com/supporthub/supporthub/internal/domain/shared/events"
	"github.com/supporthub/supporthub/internal/domain/ticket"
	"github.com/supporthub/supporthub/internal/shared/biztime"
	"github.com/supporthub/supporthub/internal/shared/constants"
	"github.com/supporthub/supporthub/internal/shared/db"
	"github.com/supporthub/supporthub/internal/shared/errors"
	"github.com/supporthub/supporthub/internal/shared/goroutine"
	"github.com/supporthub/supporthub/internal/shared/logger"
)

const mailTimeout = 30 * time.Second

type SendAgentReplyCommand struct {
	ConversationID uint
	AgentUserID    string
	AgentName      string
	Body           string
}

type SendAgentReplyExecutor interface {
	Execute(ctx context.Context, cmd SendAgentReplyCommand) (*dto.ReplyResultDTO, error)
}

type SendAgentReplyUseCase struct {
	conversationRepo conversation.Repository
	ticketRepo       ticket.Repository
	customerRepo     customer.Repository
	mailer           ReplyMailer
	txMgr            db.Transactor
	publisher        events.EventPublisher
	logger           logger.Interface
	now              func() time.Time
}

func NewSendAgentReplyUseCase(
	conversationRepo conversation.Repository,
	ticketRepo ticket.Repository,
	customerRepo customer.Repository,
	mailer ReplyMailer,
	txMgr db.Transactor,
	publisher events.EventPublisher,
	logger logger.Interface,
) *SendAgentReplyUseCase {
	return &SendAgentReplyUseCase{
		conversationRepo: conversationRepo,
		ticketRepo:       ticketRepo,
		customerRepo:     customerRepo,
		mailer:           mailer,
		txMgr:            txMgr,
		publisher:        publisher,
		logger:           logger,
		now:              biztime.NowUTC,
	}
}

func (uc *SendAgentReplyUseCase) Execute(ctx context.Context, cmd SendAgentReplyCommand) (*dto.ReplyResultDTO, error) {
	if cmd.ConversationID == 0 {
		return nil, errors.NewValidationError("conversation ID is required")
	}
	if strings.TrimSpace(cmd.Body) == "" {
		return nil, errors.NewValidationError("message body is required")
	}

	name := strings.TrimSpace(cmd.AgentName)
	if name == "" {
		name = "Agent"
	}

	now := uc.now()
	var (
		msg  *conversation.Message
		t    *ticket.Ticket
		mail *OutboundEmail
	)
	err := uc.txMgr.RunInTransaction(ctx, func(txCtx context.Context) error {
		convo, err := uc.conversationRepo.GetByID(txCtx, cmd.ConversationID)
		if err != nil {
			if stderrors.Is(err, conversation.ErrConversationNotFound) {
				return errors.NewNotFoundError("conversation not found")
			}
			return fmt.Errorf("failed to load conversation: %w", err)
		}

		msg, err = conversation.NewMessage(convo.ID(), convvo.DirectionOutbound, constants.AgentSenderPrefix+name, cmd.Body, now)
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
		switch {
		case stderrors.Is(err, ticket.ErrTicketNotFound):
			t = nil
		case err != nil:
			return fmt.Errorf("failed to load ticket: %w", err)
		default:
			t.Touch(now)
			if err := uc.ticketRepo.Update(txCtx, t); err != nil {
				return fmt.Errorf("failed to update ticket: %w", err)
			}
		}

		if convo.Channel() == convvo.ChannelEmail {
			mail, err = uc.buildEmail(txCtx, convo, cmd.Body)
			if err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		uc.logger.Errorw("failed to send agent reply",
			"conversation_id", cmd.ConversationID,
			"agent_id", cmd.AgentUserID,
			"error", err,
		)
		if errors.IsAppError(err) {
			return nil, err
		}
		return nil, errors.NewInternalError("failed to send reply")
	}

	var ticketID uint
	evts := []events.DomainEvent{}
	if t != nil {
		ticketID = t.ID()
		evts = append(evts, ticket.NewTicketUpdatedEvent(t, now))
	}
	evts = append(evts, conversation.NewMessagePostedEvent(ticketID, msg))
	if err := uc.publisher.PublishAll(evts); err != nil {
		uc.logger.Warnw("failed to publish reply events", "conversation_id", cmd.ConversationID, "error", err)
	}

	if mail != nil {
		uc.deliver(*mail)
	}

	uc.logger.Infow("agent reply sent",
		"conversation_id", cmd.ConversationID,
		"message_id", msg.ID(),
		"agent_id", cmd.AgentUserID,
	)
	return &dto.ReplyResultDTO{MessageID: msg.ID()}, nil
}

// buildEmail returns nil when the customer has no address on file.
func (uc *SendAgentReplyUseCase) buildEmail(ctx context.Context, convo *conversation.Conversation, body string) (*OutboundEmail, error) {
	cust, err := uc.customerRepo.GetByID(ctx, convo.CustomerID())
	if err != nil {
		return nil, fmt.Errorf("failed to load customer: %w", err)
	}
	if cust.Email() == "" {
		return nil, nil
	}

	subject := convo.SubjectText()
	if subject == "" {
		subject = fmt.Sprintf("Your support request #%d", convo.ID())
	} else if !strings.HasPrefix(strings.ToLower(subject), "re:") {
		subject = "Re: " + subject
	}
	return &OutboundEmail{
		To:             cust.Email(),
		ToName:         cust.Name(),
		Subject:        subject,
		Body:           body,
		ConversationID: convo.ID(),
	}, nil
}

func (uc *SendAgentReplyUseCase) deliver(mail OutboundEmail) {
	goroutine.SafeGo(uc.logger, "reply-mail", func() {
		ctx, cancel := context.WithTimeout(context.Background(), mailTimeout)
		defer cancel()
		if err := uc.mailer.SendReply(ctx, mail); err != nil {
			uc.logger.Warnw("failed to deliver reply email",
				"conversation_id", mail.ConversationID,
				"error", err,
			)
		}
	})
}
