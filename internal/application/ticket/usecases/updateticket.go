package usecases

import (
	"context"
	stderrors "errors"
	"fmt"
	"time"

	"github.com/supporthub/supporthub/internal/application/ticket/dto"
	"github.com/supporthub/supporthub/internal/domain/agent"
	"github.com/supporthub/supporthub/internal/domain/shared/events"
	"github.com/supporthub/supporthub/internal/domain/ticket"
	vo "github.com/supporthub/supporthub/internal/domain/ticket/valueobjects"
	"github.com/supporthub/supporthub/internal/shared/biztime"
	"github.com/supporthub/supporthub/internal/shared/db"
	"github.com/supporthub/supporthub/internal/shared/errors"
	"github.com/supporthub/supporthub/internal/shared/logger"
)

type UpdateTicketCommand struct {
	TicketID uint
	Status   *string
	Priority *string
	Category *string
}

type UpdateTicketExecutor interface {
	Execute(ctx context.Context, cmd UpdateTicketCommand) (*dto.TicketDTO, error)
}

type UpdateTicketUseCase struct {
	ticketRepo ticket.Repository
	agentRepo  agent.Repository
	txMgr      db.Transactor
	publisher  events.EventPublisher
	logger     logger.Interface
	retryLimit int
	now        func() time.Time
}

func NewUpdateTicketUseCase(
	ticketRepo ticket.Repository,
	agentRepo agent.Repository,
	txMgr db.Transactor,
	publisher events.EventPublisher,
	retryLimit int,
	logger logger.Interface,
) *UpdateTicketUseCase {
	if retryLimit <= 0 {
		retryLimit = defaultLoadRetryLimit
	}
	return &UpdateTicketUseCase{
		ticketRepo: ticketRepo,
		agentRepo:  agentRepo,
		txMgr:      txMgr,
		publisher:  publisher,
		logger:     logger,
		retryLimit: retryLimit,
		now:        biztime.NowUTC,
	}
}

func (uc *UpdateTicketUseCase) Execute(ctx context.Context, cmd UpdateTicketCommand) (*dto.TicketDTO, error) {
	uc.logger.Infow("executing update ticket use case", "ticket_id", cmd.TicketID)

	if cmd.TicketID == 0 {
		return nil, errors.NewValidationError("ticket ID is required")
	}

	var (
		status   *vo.TicketStatus
		priority *vo.Priority
	)
	if cmd.Status != nil {
		s, err := vo.NewTicketStatus(*cmd.Status)
		if err != nil {
			return nil, errors.NewValidationError("invalid status", *cmd.Status)
		}
		status = &s
	}
	if cmd.Priority != nil {
		p, err := vo.NewPriority(*cmd.Priority)
		if err != nil {
			return nil, errors.NewValidationError("invalid priority", *cmd.Priority)
		}
		priority = &p
	}

	now := uc.now()
	var t *ticket.Ticket
	err := uc.txMgr.RunInTransaction(ctx, func(txCtx context.Context) error {
		var err error
		t, err = uc.ticketRepo.GetByID(txCtx, cmd.TicketID)
		if err != nil {
			if stderrors.Is(err, ticket.ErrTicketNotFound) {
				return errors.NewNotFoundError("ticket not found")
			}
			return fmt.Errorf("failed to load ticket: %w", err)
		}

		wasTerminal := t.Status().IsTerminal()
		if status != nil {
			if err := t.ChangeStatus(*status, now); err != nil {
				return errors.NewValidationError(err.Error())
			}
		}
		if priority != nil {
			if err := t.SetPriority(*priority); err != nil {
				return errors.NewValidationError(err.Error())
			}
		}
		if cmd.Category != nil {
			t.SetCategory(*cmd.Category)
		}
		t.MarkUpdated(now)

		// Reopening puts the ticket back on its agent's workload.
		if wasTerminal && !t.Status().IsTerminal() && t.IsAssigned() {
			if err := reserveAgentSlot(txCtx, uc.agentRepo, *t.AssignedAgentID(), uc.retryLimit, uc.logger); err != nil {
				return err
			}
		}

		if err := uc.ticketRepo.Update(txCtx, t); err != nil {
			return fmt.Errorf("failed to update ticket: %w", err)
		}

		// Finishing a ticket frees a slot for its agent.
		if !wasTerminal && t.Status().IsTerminal() && t.IsAssigned() {
			if err := uc.agentRepo.ReleaseLoad(txCtx, *t.AssignedAgentID()); err != nil {
				return fmt.Errorf("failed to release agent load: %w", err)
			}
		}
		return nil
	})
	if err != nil {
		uc.logger.Errorw("failed to update ticket", "ticket_id", cmd.TicketID, "error", err)
		if errors.IsAppError(err) {
			return nil, err
		}
		return nil, errors.NewInternalError("failed to update ticket")
	}

	if err := uc.publisher.Publish(ticket.NewTicketUpdatedEvent(t, now)); err != nil {
		uc.logger.Warnw("failed to publish ticket update", "ticket_id", t.ID(), "error", err)
	}

	uc.logger.Infow("ticket updated successfully",
		"ticket_id", t.ID(),
		"status", t.Status().String(),
		"priority", t.Priority().String(),
	)
	return dto.ToTicketDTO(t), nil
}
