package usecases

import (
	"context"
	"fmt"

	"github.com/supporthub/supporthub/internal/domain/agent"
	"github.com/supporthub/supporthub/internal/shared/errors"
	"github.com/supporthub/supporthub/internal/shared/logger"
)

// reserveAgentSlot bumps agentID's active count by one. The expected value
// for each compare-and-increment comes from a locking read, so a retry sees
// writers that committed after the transaction began.
func reserveAgentSlot(ctx context.Context, agentRepo agent.Repository, agentID string, retryLimit int, log logger.Interface) error {
	for attempt := 1; attempt <= retryLimit; attempt++ {
		loads, err := agentRepo.LockLoads(ctx, []string{agentID})
		if err != nil {
			return fmt.Errorf("failed to read agent load: %w", err)
		}
		current, found := loads[agentID]
		if !found {
			return errors.NewValidationError("agent not found")
		}

		ok, err := agentRepo.TryIncrementLoad(ctx, agentID, current)
		if err != nil {
			return fmt.Errorf("failed to increment agent load: %w", err)
		}
		if ok {
			return nil
		}
		log.Debugw("agent load changed concurrently, retrying", "agent_id", agentID, "attempt", attempt)
	}
	return errors.NewConflictError("agent workload is changing too quickly, try again")
}
