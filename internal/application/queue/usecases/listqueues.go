package usecases

import (
	"context"

	"github.com/supporthub/supporthub/internal/application/queue/dto"
	"github.com/supporthub/supporthub/internal/domain/queue"
	"github.com/supporthub/supporthub/internal/shared/errors"
	"github.com/supporthub/supporthub/internal/shared/logger"
)

type ListQueuesExecutor interface {
	Execute(ctx context.Context) ([]dto.QueueDTO, error)
}

type ListQueuesUseCase struct {
	queueRepo queue.Repository
	logger    logger.Interface
}

func NewListQueuesUseCase(queueRepo queue.Repository, logger logger.Interface) *ListQueuesUseCase {
	return &ListQueuesUseCase{queueRepo: queueRepo, logger: logger}
}

func (uc *ListQueuesUseCase) Execute(ctx context.Context) ([]dto.QueueDTO, error) {
	queues, err := uc.queueRepo.List(ctx)
	if err != nil {
		uc.logger.Errorw("failed to list queues", "error", err)
		return nil, errors.NewInternalError("failed to list queues")
	}

	out := make([]dto.QueueDTO, 0, len(queues))
	for _, q := range queues {
		out = append(out, dto.ToQueueDTO(q))
	}
	return out, nil
}
