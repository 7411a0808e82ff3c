package usecases

import (
	"context"
	stderrors "errors"

	"github.com/supporthub/supporthub/internal/application/agent/dto"
	"github.com/supporthub/supporthub/internal/domain/agent"
	vo "github.com/supporthub/supporthub/internal/domain/agent/valueobjects"
	"github.com/supporthub/supporthub/internal/shared/errors"
	"github.com/supporthub/supporthub/internal/shared/logger"
)

type UpdatePresenceCommand struct {
	UserID   string
	Presence string
}

type UpdatePresenceExecutor interface {
	Execute(ctx context.Context, cmd UpdatePresenceCommand) (*dto.AgentDTO, error)
}

// UpdatePresenceUseCase lets an agent go available, busy, away or offline.
// Presence only affects which tier the selector places the agent in.
type UpdatePresenceUseCase struct {
	agentRepo agent.Repository
	logger    logger.Interface
}

func NewUpdatePresenceUseCase(agentRepo agent.Repository, logger logger.Interface) *UpdatePresenceUseCase {
	return &UpdatePresenceUseCase{agentRepo: agentRepo, logger: logger}
}

func (uc *UpdatePresenceUseCase) Execute(ctx context.Context, cmd UpdatePresenceCommand) (*dto.AgentDTO, error) {
	presence, err := vo.NewPresence(cmd.Presence)
	if err != nil {
		return nil, errors.NewValidationError("invalid presence", cmd.Presence)
	}

	a, err := uc.agentRepo.GetByUserID(ctx, cmd.UserID)
	if err != nil {
		if stderrors.Is(err, agent.ErrAgentNotFound) {
			return nil, errors.NewNotFoundError("agent profile not found")
		}
		uc.logger.Errorw("failed to load agent", "user_id", cmd.UserID, "error", err)
		return nil, errors.NewInternalError("failed to update presence")
	}

	if err := a.SetPresence(presence); err != nil {
		return nil, errors.NewValidationError(err.Error())
	}
	if err := uc.agentRepo.Update(ctx, a); err != nil {
		uc.logger.Errorw("failed to update agent", "user_id", cmd.UserID, "error", err)
		return nil, errors.NewInternalError("failed to update presence")
	}

	uc.logger.Infow("agent presence changed", "user_id", cmd.UserID, "presence", presence.String())
	out := dto.ToAgentDTO(a)
	return &out, nil
}
