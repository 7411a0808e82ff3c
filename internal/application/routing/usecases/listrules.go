package usecases

import (
	"context"

	"github.com/supporthub/supporthub/internal/application/routing/dto"
	"github.com/supporthub/supporthub/internal/domain/routing"
	"github.com/supporthub/supporthub/internal/shared/errors"
	"github.com/supporthub/supporthub/internal/shared/logger"
)

type ListRulesExecutor interface {
	Execute(ctx context.Context) ([]dto.RuleDTO, error)
}

// ListRulesUseCase returns every rule, disabled ones included, in the order
// the engine evaluates them.
type ListRulesUseCase struct {
	ruleRepo routing.Repository
	logger   logger.Interface
}

func NewListRulesUseCase(ruleRepo routing.Repository, logger logger.Interface) *ListRulesUseCase {
	return &ListRulesUseCase{ruleRepo: ruleRepo, logger: logger}
}

func (uc *ListRulesUseCase) Execute(ctx context.Context) ([]dto.RuleDTO, error) {
	rules, err := uc.ruleRepo.List(ctx)
	if err != nil {
		uc.logger.Errorw("failed to list routing rules", "error", err)
		return nil, errors.NewInternalError("failed to list routing rules")
	}

	out := make([]dto.RuleDTO, 0, len(rules))
	for _, r := range rules {
		out = append(out, dto.ToRuleDTO(r))
	}
	return out, nil
}
