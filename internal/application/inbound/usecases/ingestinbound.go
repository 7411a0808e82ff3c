package usecases

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/supporthub/supporthub/internal/application/inbound/dto"
	"github.com/supporthub/supporthub/internal/application/routing/services"
	"github.com/supporthub/supporthub/internal/domain/conversation"
	convvo "github.com/supporthub/supporthub/internal/domain/conversation/valueobjects"
	"github.com/supporthub/supporthub/internal/domain/customer"
	"github.com/supporthub/supporthub/internal/domain/queue"
	"github.com/supporthub/supporthub/internal/domain/routing"
	"github.com/supporthub/supporthub/internal/domain/shared/events"
	"github.com/supporthub/supporthub/internal/domain/ticket"
	"github.com/supporthub/supporthub/internal/shared/biztime"
	"github.com/supporthub/supporthub/internal/shared/db"
	"github.com/supporthub/supporthub/internal/shared/errors"
	"github.com/supporthub/supporthub/internal/shared/logger"
	"github.com/supporthub/supporthub/internal/shared/utils"
)

type IngestInboundCommand struct {
	Channel   string
	From      string
	Customer  dto.CustomerHint
	Subject   string
	Body      string
	Timestamp *time.Time
}

type IngestInboundExecutor interface {
	Execute(ctx context.Context, cmd IngestInboundCommand) (*dto.InboundResultDTO, error)
}

// TicketRouter dispatches a ticket through the rule set.
type TicketRouter interface {
	Route(ctx context.Context, in services.RouteInput) (routing.Outcome, error)
}

type IngestInboundUseCase struct {
	customerRepo     customer.Repository
	conversationRepo conversation.Repository
	ticketRepo       ticket.Repository
	queueRepo        queue.Repository
	router           TicketRouter
	txMgr            db.Transactor
	publisher        events.EventPublisher
	logger           logger.Interface
	now              func() time.Time
}

func NewIngestInboundUseCase(
	customerRepo customer.Repository,
	conversationRepo conversation.Repository,
	ticketRepo ticket.Repository,
	queueRepo queue.Repository,
	router TicketRouter,
	txMgr db.Transactor,
	publisher events.EventPublisher,
	logger logger.Interface,
) *IngestInboundUseCase {
	return &IngestInboundUseCase{
		customerRepo:     customerRepo,
		conversationRepo: conversationRepo,
		ticketRepo:       ticketRepo,
		queueRepo:        queueRepo,
		router:           router,
		txMgr:            txMgr,
		publisher:        publisher,
		logger:           logger,
		now:              biztime.NowUTC,
	}
}

// ingestState is what one ingestion produced inside the transaction.
type ingestState struct {
	ticket   *ticket.Ticket
	message  *conversation.Message
	outcome  routing.Outcome
	position int
	queue    string
}

func (uc *IngestInboundUseCase) Execute(ctx context.Context, cmd IngestInboundCommand) (*dto.InboundResultDTO, error) {
	channel, err := convvo.ParseChannel(cmd.Channel)
	if err != nil {
		return nil, errors.NewValidationError("unsupported channel", cmd.Channel)
	}
	if strings.TrimSpace(cmd.Body) == "" {
		return nil, errors.NewValidationError("message body is required")
	}

	now := uc.now()
	sentAt := now
	if cmd.Timestamp != nil && !cmd.Timestamp.IsZero() {
		sentAt = biztime.NormalizeUTC(*cmd.Timestamp)
	}

	uc.logger.Infow("ingesting inbound message",
		"channel", channel,
		"email", utils.MaskEmail(cmd.Customer.Email),
		"has_phone", strings.TrimSpace(cmd.Customer.Phone) != "",
	)

	var st ingestState
	err = uc.txMgr.RunInTransaction(ctx, func(txCtx context.Context) error {
		cust, err := uc.resolveCustomer(txCtx, cmd.Customer, now)
		if err != nil {
			return err
		}

		convo, t, err := uc.resolveConversation(txCtx, cust, channel, cmd.Subject, sentAt, now)
		if err != nil {
			return err
		}

		msg, err := conversation.NewMessage(convo.ID(), convvo.DirectionInbound, senderTag(cmd), cmd.Body, sentAt)
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

		outcome, err := uc.router.Route(txCtx, services.RouteInput{
			Ticket:       t,
			Conversation: convo,
			Customer:     cust,
			Message:      msg,
		})
		if err != nil {
			return err
		}

		if err := uc.ticketRepo.Update(txCtx, t); err != nil {
			return fmt.Errorf("failed to update ticket: %w", err)
		}

		position, err := uc.ticketRepo.QueuePosition(txCtx, t)
		if err != nil {
			return fmt.Errorf("failed to compute queue position: %w", err)
		}

		st = ingestState{ticket: t, message: msg, outcome: outcome, position: position}
		if t.HasQueue() {
			q, err := uc.queueRepo.GetByID(txCtx, *t.QueueID())
			if err != nil {
				return fmt.Errorf("failed to load queue: %w", err)
			}
			st.queue = q.Name()
		}
		return nil
	})
	if err != nil {
		uc.logger.Errorw("failed to ingest inbound message", "channel", channel, "error", err)
		if errors.IsAppError(err) {
			return nil, err
		}
		return nil, errors.NewInternalError("failed to ingest message")
	}

	uc.publish(st, now)

	uc.logger.Infow("inbound message ingested",
		"ticket_id", st.ticket.ID(),
		"conversation_id", st.ticket.ConversationID(),
		"message_id", st.message.ID(),
		"queue", st.queue,
		"position", st.position,
	)

	result := &dto.InboundResultDTO{
		TicketID:       st.ticket.ID(),
		ConversationID: st.ticket.ConversationID(),
		MessageID:      st.message.ID(),
		QueuePosition:  st.position,
		QueueName:      st.queue,
		Status:         st.ticket.Status().String(),
		Priority:       st.ticket.Priority().String(),
		Category:       st.ticket.Category(),
		MatchedRule:    st.outcome.RuleName,
	}
	if id := st.ticket.AssignedAgentID(); id != nil {
		result.AssignedAgentID = *id
	}
	return result, nil
}

func (uc *IngestInboundUseCase) resolveCustomer(ctx context.Context, hint dto.CustomerHint, now time.Time) (*customer.Customer, error) {
	email := strings.TrimSpace(hint.Email)
	phone := strings.TrimSpace(hint.Phone)

	var (
		existing *customer.Customer
		err      error
	)
	if email != "" {
		existing, err = uc.customerRepo.FindByEmail(ctx, email)
		if err != nil {
			return nil, fmt.Errorf("failed to look up customer: %w", err)
		}
	}
	// An unknown email may still come from a phone we already know.
	if existing == nil && phone != "" {
		existing, err = uc.customerRepo.FindByPhone(ctx, phone)
		if err != nil {
			return nil, fmt.Errorf("failed to look up customer: %w", err)
		}
		if existing != nil {
			existing.AdoptEmail(email)
		}
	}

	if existing == nil {
		c := customer.NewCustomer(hint.Name, email, phone, hint.IsVIP, now)
		if err := uc.customerRepo.Create(ctx, c); err != nil {
			return nil, fmt.Errorf("failed to create customer: %w", err)
		}
		return c, nil
	}

	existing.Refresh(hint.Name, hint.IsVIP)
	if err := uc.customerRepo.Update(ctx, existing); err != nil {
		return nil, fmt.Errorf("failed to update customer: %w", err)
	}
	return existing, nil
}

// resolveConversation reuses the customer's open conversation on channel, or
// opens a new conversation with a fresh ticket.
func (uc *IngestInboundUseCase) resolveConversation(
	ctx context.Context,
	cust *customer.Customer,
	channel convvo.Channel,
	subject string,
	sentAt, now time.Time,
) (*conversation.Conversation, *ticket.Ticket, error) {
	convo, err := uc.conversationRepo.FindOpen(ctx, cust.ID(), channel)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to look up conversation: %w", err)
	}
	if convo != nil {
		t, err := uc.ticketRepo.GetByConversationID(ctx, convo.ID())
		if err != nil {
			return nil, nil, fmt.Errorf("failed to load ticket for conversation %d: %w", convo.ID(), err)
		}
		return convo, t, nil
	}

	convo, err = conversation.NewConversation(cust.ID(), channel, subject, sentAt)
	if err != nil {
		return nil, nil, errors.NewValidationError(err.Error())
	}
	if err := uc.conversationRepo.Create(ctx, convo); err != nil {
		return nil, nil, fmt.Errorf("failed to create conversation: %w", err)
	}

	t, err := ticket.NewTicket(convo.ID(), cust.ID(), now)
	if err != nil {
		return nil, nil, err
	}
	if err := uc.ticketRepo.Create(ctx, t); err != nil {
		return nil, nil, fmt.Errorf("failed to create ticket: %w", err)
	}
	return convo, t, nil
}

func (uc *IngestInboundUseCase) publish(st ingestState, now time.Time) {
	evts := ticket.ChangeEvents(st.ticket, st.outcome.Assignment.Assigned, now)
	evts = append(evts, conversation.NewMessagePostedEvent(st.ticket.ID(), st.message))
	if err := uc.publisher.PublishAll(evts); err != nil {
		uc.logger.Warnw("failed to publish ingestion events", "ticket_id", st.ticket.ID(), "error", err)
	}
}

// senderTag falls back to the customer's address when the adapter sent none.
func senderTag(cmd IngestInboundCommand) string {
	for _, s := range []string{cmd.From, cmd.Customer.Email, cmd.Customer.Phone} {
		if s = strings.TrimSpace(s); s != "" {
			return s
		}
	}
	return "unknown"
}
