package services

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/supporthub/supporthub/internal/domain/agent"
	"github.com/supporthub/supporthub/internal/domain/routing"
	"github.com/supporthub/supporthub/internal/domain/ticket"
	"github.com/supporthub/supporthub/internal/shared/logger"
)

const defaultAssignRetryLimit = 3

// SelectorConfig tunes agent selection.
type SelectorConfig struct {
	AllowOverflow bool
	RetryLimit    int
}

// Selector picks the agent that should own a ticket within a queue.
//
// Tiers, first non-empty wins:
//  1. mapped, available, under capacity
//  2. mapped, under capacity
//  3. mapped (overflow, when allowed)
//
// Within a tier candidates are ordered by active count, display name, user id.
// The chosen agent's load is bumped with a compare-and-increment; losing that
// race refreshes the pool's counts with a locking read and walks the tiers
// again.
type Selector struct {
	agentRepo agent.Repository
	cfg       SelectorConfig
	logger    logger.Interface
}

func NewSelector(agentRepo agent.Repository, cfg SelectorConfig, logger logger.Interface) *Selector {
	if cfg.RetryLimit <= 0 {
		cfg.RetryLimit = defaultAssignRetryLimit
	}
	return &Selector{agentRepo: agentRepo, cfg: cfg, logger: logger}
}

// Assign sets t's agent from queueID's pool. An already-assigned ticket or an
// empty pool yields an unassigned result, not an error.
func (s *Selector) Assign(ctx context.Context, t *ticket.Ticket, queueID uint, now time.Time) (routing.Assignment, error) {
	if t.IsAssigned() {
		return routing.Assignment{}, nil
	}

	pool, err := s.agentRepo.ListByQueue(ctx, queueID)
	if err != nil {
		return routing.Assignment{}, fmt.Errorf("failed to load agents for queue %d: %w", queueID, err)
	}

	for attempt := 1; attempt <= s.cfg.RetryLimit; attempt++ {
		if attempt > 1 {
			if err := s.refreshLoads(ctx, pool); err != nil {
				return routing.Assignment{}, err
			}
		}

		chosen, tier := s.pick(pool)
		if chosen == nil {
			s.logger.Debugw("no eligible agent for queue", "queue_id", queueID, "pool_size", len(pool))
			return routing.Assignment{}, nil
		}

		ok, err := s.agentRepo.TryIncrementLoad(ctx, chosen.UserID(), chosen.ActiveTicketCount())
		if err != nil {
			return routing.Assignment{}, fmt.Errorf("failed to reserve agent %s: %w", chosen.UserID(), err)
		}
		if !ok {
			s.logger.Debugw("agent load changed concurrently, retrying",
				"agent_id", chosen.UserID(),
				"attempt", attempt,
			)
			continue
		}

		if _, err := t.AssignAgent(chosen.UserID(), now); err != nil {
			return routing.Assignment{}, err
		}
		return routing.Assignment{Assigned: true, AgentID: chosen.UserID(), Tier: tier}, nil
	}

	s.logger.Warnw("gave up assigning ticket after repeated contention",
		"ticket_id", t.ID(),
		"queue_id", queueID,
		"attempts", s.cfg.RetryLimit,
	)
	return routing.Assignment{}, nil
}

// refreshLoads overwrites the pool's cached counts. A plain re-read inside
// the transaction can return the same snapshot that just lost the race.
func (s *Selector) refreshLoads(ctx context.Context, pool []*agent.Agent) error {
	userIDs := make([]string, len(pool))
	for i, a := range pool {
		userIDs[i] = a.UserID()
	}
	loads, err := s.agentRepo.LockLoads(ctx, userIDs)
	if err != nil {
		return fmt.Errorf("failed to refresh agent loads: %w", err)
	}
	for _, a := range pool {
		if n, ok := loads[a.UserID()]; ok {
			a.SyncActiveTicketCount(n)
		}
	}
	return nil
}

func (s *Selector) pick(pool []*agent.Agent) (*agent.Agent, routing.AssignmentTier) {
	if len(pool) == 0 {
		return nil, routing.TierNone
	}

	ordered := append([]*agent.Agent(nil), pool...)
	sort.SliceStable(ordered, func(i, j int) bool {
		a, b := ordered[i], ordered[j]
		if a.ActiveTicketCount() != b.ActiveTicketCount() {
			return a.ActiveTicketCount() < b.ActiveTicketCount()
		}
		if a.DisplayName() != b.DisplayName() {
			return a.DisplayName() < b.DisplayName()
		}
		return a.UserID() < b.UserID()
	})

	for _, a := range ordered {
		if a.IsAvailable() && a.HasCapacity() {
			return a, routing.TierAvailable
		}
	}
	for _, a := range ordered {
		if a.HasCapacity() {
			return a, routing.TierUnderCapacity
		}
	}
	if s.cfg.AllowOverflow {
		return ordered[0], routing.TierOverflow
	}
	return nil, routing.TierNone
}
