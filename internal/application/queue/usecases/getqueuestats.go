package usecases

import (
	"context"
	stderrors "errors"

	"github.com/supporthub/supporthub/internal/application/queue/dto"
	"github.com/supporthub/supporthub/internal/domain/queue"
	"github.com/supporthub/supporthub/internal/shared/errors"
	"github.com/supporthub/supporthub/internal/shared/logger"
)

type GetQueueStatsExecutor interface {
	Execute(ctx context.Context, queueID uint) (*dto.QueueStatsDTO, error)
}

// GetQueueStatsUseCase reports the backlog of a queue. Resolved tickets still
// count as open until they are closed.
type GetQueueStatsUseCase struct {
	queueRepo queue.Repository
	logger    logger.Interface
}

func NewGetQueueStatsUseCase(queueRepo queue.Repository, logger logger.Interface) *GetQueueStatsUseCase {
	return &GetQueueStatsUseCase{queueRepo: queueRepo, logger: logger}
}

func (uc *GetQueueStatsUseCase) Execute(ctx context.Context, queueID uint) (*dto.QueueStatsDTO, error) {
	if queueID == 0 {
		return nil, errors.NewValidationError("queue ID is required")
	}

	st, err := uc.queueRepo.Stats(ctx, queueID)
	if err != nil {
		if stderrors.Is(err, queue.ErrQueueNotFound) {
			return nil, errors.NewNotFoundError("queue not found")
		}
		uc.logger.Errorw("failed to compute queue stats", "queue_id", queueID, "error", err)
		return nil, errors.NewInternalError("failed to compute queue stats")
	}

	return &dto.QueueStatsDTO{
		QueueID:         st.QueueID,
		OpenCount:       st.OpenCount,
		OldestCreatedAt: st.OldestCreatedAt,
	}, nil
}
