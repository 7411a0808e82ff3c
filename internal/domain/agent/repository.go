package agent

import (
	"context"
	"errors"
)

var ErrAgentNotFound = errors.New("agent not found")

type Repository interface {
	Create(ctx context.Context, a *Agent) error
	Update(ctx context.Context, a *Agent) error
	GetByUserID(ctx context.Context, userID string) (*Agent, error)
	List(ctx context.Context) ([]*Agent, error)
	// ListByQueue returns the agents mapped to the queue, with display names.
	ListByQueue(ctx context.Context, queueID uint) ([]*Agent, error)
	AddToQueue(ctx context.Context, userID string, queueID uint) error
	// LockLoads reads the current active counts with a locking read, which
	// sees rows committed after the surrounding transaction's snapshot.
	// Unknown IDs are absent from the result.
	LockLoads(ctx context.Context, userIDs []string) (map[string]int, error)
	// TryIncrementLoad bumps the agent's active count only if it still
	// equals expected. It reports false when another writer got there first.
	TryIncrementLoad(ctx context.Context, userID string, expected int) (bool, error)
	// ReleaseLoad decrements the active count, never below zero.
	ReleaseLoad(ctx context.Context, userID string) error
}
