package usecases

import (
	"context"
	stderrors "errors"
	"fmt"
	"strings"
	"time"

	"github.com/supporthub/supporthub/internal/application/ticket/dto"
	"github.com/supporthub/supporthub/internal/domain/agent"
	"github.com/supporthub/supporthub/internal/domain/queue"
	"github.com/supporthub/supporthub/internal/domain/shared/events"
	"github.com/supporthub/supporthub/internal/domain/ticket"
	"github.com/supporthub/supporthub/internal/shared/biztime"
	"github.com/supporthub/supporthub/internal/shared/db"
	"github.com/supporthub/supporthub/internal/shared/errors"
	"github.com/supporthub/supporthub/internal/shared/logger"
)

const defaultLoadRetryLimit = 3

type AssignTicketCommand struct {
	TicketID    uint
	QueueID     *uint
	AgentUserID *string
	AssignedBy  string
}

type AssignTicketExecutor interface {
	Execute(ctx context.Context, cmd AssignTicketCommand) (*dto.TicketDTO, error)
}

// AssignTicketUseCase is the supervisor override: it moves a ticket to a
// queue and/or hands it to a specific agent regardless of capacity.
type AssignTicketUseCase struct {
	ticketRepo ticket.Repository
	queueRepo  queue.Repository
	agentRepo  agent.Repository
	txMgr      db.Transactor
	publisher  events.EventPublisher
	logger     logger.Interface
	retryLimit int
	now        func() time.Time
}

func NewAssignTicketUseCase(
	ticketRepo ticket.Repository,
	queueRepo queue.Repository,
	agentRepo agent.Repository,
	txMgr db.Transactor,
	publisher events.EventPublisher,
	retryLimit int,
	logger logger.Interface,
) *AssignTicketUseCase {
	if retryLimit <= 0 {
		retryLimit = defaultLoadRetryLimit
	}
	return &AssignTicketUseCase{
		ticketRepo: ticketRepo,
		queueRepo:  queueRepo,
		agentRepo:  agentRepo,
		txMgr:      txMgr,
		publisher:  publisher,
		logger:     logger,
		retryLimit: retryLimit,
		now:        biztime.NowUTC,
	}
}

func (uc *AssignTicketUseCase) Execute(ctx context.Context, cmd AssignTicketCommand) (*dto.TicketDTO, error) {
	uc.logger.Infow("executing assign ticket use case",
		"ticket_id", cmd.TicketID,
		"assigned_by", cmd.AssignedBy,
	)

	if err := uc.validateCommand(cmd); err != nil {
		return nil, err
	}

	now := uc.now()
	var (
		t             *ticket.Ticket
		agentAssigned bool
	)
	err := uc.txMgr.RunInTransaction(ctx, func(txCtx context.Context) error {
		var err error
		t, err = uc.ticketRepo.GetByID(txCtx, cmd.TicketID)
		if err != nil {
			if stderrors.Is(err, ticket.ErrTicketNotFound) {
				return errors.NewNotFoundError("ticket not found")
			}
			return fmt.Errorf("failed to load ticket: %w", err)
		}

		if cmd.QueueID != nil {
			if _, err := uc.queueRepo.GetByID(txCtx, *cmd.QueueID); err != nil {
				if stderrors.Is(err, queue.ErrQueueNotFound) {
					return errors.NewValidationError("queue not found")
				}
				return fmt.Errorf("failed to load queue: %w", err)
			}
			t.AssignQueue(*cmd.QueueID)
		}

		if cmd.AgentUserID != nil {
			agentAssigned, err = uc.assignAgent(txCtx, t, *cmd.AgentUserID, now)
			if err != nil {
				return err
			}
		}
		t.MarkUpdated(now)

		if err := uc.ticketRepo.Update(txCtx, t); err != nil {
			return fmt.Errorf("failed to update ticket: %w", err)
		}
		return nil
	})
	if err != nil {
		uc.logger.Errorw("failed to assign ticket", "ticket_id", cmd.TicketID, "error", err)
		if errors.IsAppError(err) {
			return nil, err
		}
		return nil, errors.NewInternalError("failed to assign ticket")
	}

	if err := uc.publisher.PublishAll(ticket.ChangeEvents(t, agentAssigned, now)); err != nil {
		uc.logger.Warnw("failed to publish assignment events", "ticket_id", t.ID(), "error", err)
	}

	uc.logger.Infow("ticket assigned successfully",
		"ticket_id", t.ID(),
		"queue_id", t.QueueID(),
		"agent_id", t.AssignedAgentID(),
	)
	return dto.ToTicketDTO(t), nil
}

// assignAgent moves the ticket's load from its previous owner to agentID.
// Reassigning to the current owner changes nothing.
func (uc *AssignTicketUseCase) assignAgent(ctx context.Context, t *ticket.Ticket, agentID string, now time.Time) (bool, error) {
	if cur := t.AssignedAgentID(); cur != nil && *cur == agentID {
		return false, nil
	}

	if _, err := uc.agentRepo.GetByUserID(ctx, agentID); err != nil {
		if stderrors.Is(err, agent.ErrAgentNotFound) {
			return false, errors.NewValidationError("agent not found")
		}
		return false, fmt.Errorf("failed to load agent: %w", err)
	}

	// Resolved and closed tickets no longer occupy a slot.
	holdsSlot := !t.Status().IsTerminal()
	if holdsSlot {
		if err := reserveAgentSlot(ctx, uc.agentRepo, agentID, uc.retryLimit, uc.logger); err != nil {
			return false, err
		}
	}

	previous, err := t.AssignAgent(agentID, now)
	if err != nil {
		return false, errors.NewValidationError(err.Error())
	}
	if previous != nil && holdsSlot {
		if err := uc.agentRepo.ReleaseLoad(ctx, *previous); err != nil {
			return false, fmt.Errorf("failed to release previous agent load: %w", err)
		}
	}
	return true, nil
}

func (uc *AssignTicketUseCase) validateCommand(cmd AssignTicketCommand) error {
	if cmd.TicketID == 0 {
		return errors.NewValidationError("ticket ID is required")
	}
	if cmd.QueueID == nil && cmd.AgentUserID == nil {
		return errors.NewValidationError("queue ID or agent user ID is required")
	}
	if cmd.QueueID != nil && *cmd.QueueID == 0 {
		return errors.NewValidationError("queue ID must be positive")
	}
	if cmd.AgentUserID != nil && strings.TrimSpace(*cmd.AgentUserID) == "" {
		return errors.NewValidationError("agent user ID cannot be blank")
	}
	return nil
}
