package services

import (
	"context"
	"fmt"
	"time"

	"github.com/supporthub/supporthub/internal/domain/queue"
	"github.com/supporthub/supporthub/internal/domain/routing"
	"github.com/supporthub/supporthub/internal/domain/ticket"
	vo "github.com/supporthub/supporthub/internal/domain/ticket/valueobjects"
	"github.com/supporthub/supporthub/internal/shared/logger"
)

// Assigner abstracts the selector for the executor.
type Assigner interface {
	Assign(ctx context.Context, t *ticket.Ticket, queueID uint, now time.Time) (routing.Assignment, error)
}

// ActionExecutor applies a rule action to a ticket in a fixed order: queue,
// priority, category, status/timestamp, then optional auto-assignment.
// Unknown queue names and priorities are skipped silently.
type ActionExecutor struct {
	queueRepo queue.Repository
	assigner  Assigner
	logger    logger.Interface
}

func NewActionExecutor(queueRepo queue.Repository, assigner Assigner, logger logger.Interface) *ActionExecutor {
	return &ActionExecutor{queueRepo: queueRepo, assigner: assigner, logger: logger}
}

func (e *ActionExecutor) Apply(ctx context.Context, t *ticket.Ticket, a routing.Action, now time.Time) (routing.Assignment, error) {
	if name, ok := a.QueueNameValue(); ok {
		q, err := e.queueRepo.FindByName(ctx, name)
		if err != nil {
			return routing.Assignment{}, fmt.Errorf("failed to look up queue %q: %w", name, err)
		}
		if q != nil {
			t.AssignQueue(q.ID())
		} else {
			e.logger.Debugw("routing action names unknown queue", "queue_name", name)
		}
	}

	if raw, ok := a.PriorityValue(); ok {
		if p, err := vo.NewPriority(raw); err == nil {
			_ = t.SetPriority(p)
		}
	}

	if category, ok := a.CategoryValue(); ok {
		t.SetCategory(category)
	}

	t.MarkRouted(now)

	if a.ShouldAutoAssign() && t.HasQueue() {
		return e.assigner.Assign(ctx, t, *t.QueueID(), now)
	}
	return routing.Assignment{}, nil
}
