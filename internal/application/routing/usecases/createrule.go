package usecases

import (
	"context"
	"strings"

	"github.com/supporthub/supporthub/internal/application/routing/dto"
	"github.com/supporthub/supporthub/internal/domain/routing"
	"github.com/supporthub/supporthub/internal/shared/errors"
	"github.com/supporthub/supporthub/internal/shared/logger"
)

const emptyPayload = "{}"

type CreateRuleCommand struct {
	Name          string
	PriorityOrder int
	ConditionJSON string
	ActionJSON    string
	IsEnabled     *bool
}

type CreateRuleExecutor interface {
	Execute(ctx context.Context, cmd CreateRuleCommand) (*dto.RuleDTO, error)
}

// CreateRuleUseCase stores a rule as given. Payloads are not validated; the
// engine reads malformed ones as empty.
type CreateRuleUseCase struct {
	ruleRepo routing.Repository
	logger   logger.Interface
}

func NewCreateRuleUseCase(ruleRepo routing.Repository, logger logger.Interface) *CreateRuleUseCase {
	return &CreateRuleUseCase{ruleRepo: ruleRepo, logger: logger}
}

func (uc *CreateRuleUseCase) Execute(ctx context.Context, cmd CreateRuleCommand) (*dto.RuleDTO, error) {
	enabled := true
	if cmd.IsEnabled != nil {
		enabled = *cmd.IsEnabled
	}

	r, err := routing.NewRule(cmd.Name, enabled, cmd.PriorityOrder, orEmpty(cmd.ConditionJSON), orEmpty(cmd.ActionJSON))
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.ruleRepo.Create(ctx, r); err != nil {
		uc.logger.Errorw("failed to create routing rule", "name", cmd.Name, "error", err)
		return nil, errors.NewInternalError("failed to create routing rule")
	}

	uc.logger.Infow("routing rule created",
		"rule_id", r.ID(),
		"name", r.Name(),
		"priority_order", r.PriorityOrder(),
		"enabled", r.IsEnabled(),
	)
	out := dto.ToRuleDTO(r)
	return &out, nil
}

func orEmpty(payload string) string {
	if strings.TrimSpace(payload) == "" {
		return emptyPayload
	}
	return payload
}
