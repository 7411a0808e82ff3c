package usecases

import (
	"context"
	stderrors "errors"

	"github.com/supporthub/supporthub/internal/application/routing/dto"
	"github.com/supporthub/supporthub/internal/domain/routing"
	"github.com/supporthub/supporthub/internal/shared/errors"
	"github.com/supporthub/supporthub/internal/shared/logger"
)

type UpdateRuleCommand struct {
	RuleID        uint
	Name          *string
	PriorityOrder *int
	ConditionJSON *string
	ActionJSON    *string
	IsEnabled     *bool
}

type UpdateRuleExecutor interface {
	Execute(ctx context.Context, cmd UpdateRuleCommand) (*dto.RuleDTO, error)
}

type UpdateRuleUseCase struct {
	ruleRepo routing.Repository
	logger   logger.Interface
}

func NewUpdateRuleUseCase(ruleRepo routing.Repository, logger logger.Interface) *UpdateRuleUseCase {
	return &UpdateRuleUseCase{ruleRepo: ruleRepo, logger: logger}
}

func (uc *UpdateRuleUseCase) Execute(ctx context.Context, cmd UpdateRuleCommand) (*dto.RuleDTO, error) {
	if cmd.RuleID == 0 {
		return nil, errors.NewValidationError("rule ID is required")
	}

	r, err := uc.ruleRepo.GetByID(ctx, cmd.RuleID)
	if err != nil {
		if stderrors.Is(err, routing.ErrRuleNotFound) {
			return nil, errors.NewNotFoundError("routing rule not found")
		}
		uc.logger.Errorw("failed to load routing rule", "rule_id", cmd.RuleID, "error", err)
		return nil, errors.NewInternalError("failed to update routing rule")
	}

	patch := routing.RulePatch{
		Name:          cmd.Name,
		Enabled:       cmd.IsEnabled,
		PriorityOrder: cmd.PriorityOrder,
	}
	if cmd.ConditionJSON != nil {
		c := orEmpty(*cmd.ConditionJSON)
		patch.ConditionJSON = &c
	}
	if cmd.ActionJSON != nil {
		a := orEmpty(*cmd.ActionJSON)
		patch.ActionJSON = &a
	}
	if err := r.Apply(patch); err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.ruleRepo.Update(ctx, r); err != nil {
		uc.logger.Errorw("failed to update routing rule", "rule_id", cmd.RuleID, "error", err)
		return nil, errors.NewInternalError("failed to update routing rule")
	}

	uc.logger.Infow("routing rule updated", "rule_id", r.ID(), "enabled", r.IsEnabled())
	out := dto.ToRuleDTO(r)
	return &out, nil
}
