package usecases

import (
	"context"

	"github.com/supporthub/supporthub/internal/application/agent/dto"
	"github.com/supporthub/supporthub/internal/domain/agent"
	"github.com/supporthub/supporthub/internal/shared/errors"
	"github.com/supporthub/supporthub/internal/shared/logger"
)

type ListAgentsExecutor interface {
	Execute(ctx context.Context) ([]dto.AgentDTO, error)
}

type ListAgentsUseCase struct {
	agentRepo agent.Repository
	logger    logger.Interface
}

func NewListAgentsUseCase(agentRepo agent.Repository, logger logger.Interface) *ListAgentsUseCase {
	return &ListAgentsUseCase{agentRepo: agentRepo, logger: logger}
}

func (uc *ListAgentsUseCase) Execute(ctx context.Context) ([]dto.AgentDTO, error) {
	agents, err := uc.agentRepo.List(ctx)
	if err != nil {
		uc.logger.Errorw("failed to list agents", "error", err)
		return nil, errors.NewInternalError("failed to list agents")
	}

	out := make([]dto.AgentDTO, 0, len(agents))
	for _, a := range agents {
		out = append(out, dto.ToAgentDTO(a))
	}
	return out, nil
}
