package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/supporthub/supporthub/internal/domain/routing"
	"github.com/supporthub/supporthub/internal/infrastructure/persistence/mappers"
	"github.com/supporthub/supporthub/internal/infrastructure/persistence/models"
	"github.com/supporthub/supporthub/internal/shared/db"
)

type RoutingRuleRepository struct {
	db     *gorm.DB
	mapper mappers.RoutingRuleMapper
}

func NewRoutingRuleRepository(db *gorm.DB) *RoutingRuleRepository {
	return &RoutingRuleRepository{
		db:     db,
		mapper: mappers.NewRoutingRuleMapper(),
	}
}

func (r *RoutingRuleRepository) Create(ctx context.Context, rule *routing.Rule) error {
	model := r.mapper.ToModel(rule)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		return fmt.Errorf("failed to create routing rule: %w", err)
	}
	return rule.SetID(model.ID)
}

func (r *RoutingRuleRepository) Update(ctx context.Context, rule *routing.Rule) error {
	model := r.mapper.ToModel(rule)
	tx := db.GetTxFromContext(ctx, r.db)

	result := tx.Model(&models.RoutingRuleModel{}).
		Where("id = ?", model.ID).
		Updates(map[string]any{
			"name":           model.Name,
			"is_enabled":     model.IsEnabled,
			"priority_order": model.PriorityOrder,
			"condition_json": model.ConditionJSON,
			"action_json":    model.ActionJSON,
		})
	if result.Error != nil {
		return fmt.Errorf("failed to update routing rule: %w", result.Error)
	}
	return nil
}

func (r *RoutingRuleRepository) GetByID(ctx context.Context, id uint) (*routing.Rule, error) {
	var model models.RoutingRuleModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.First(&model, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, routing.ErrRuleNotFound
		}
		return nil, fmt.Errorf("failed to get routing rule: %w", err)
	}
	return r.mapper.ToDomain(&model), nil
}

func (r *RoutingRuleRepository) ListEnabled(ctx context.Context) ([]*routing.Rule, error) {
	return r.list(ctx, true)
}

func (r *RoutingRuleRepository) List(ctx context.Context) ([]*routing.Rule, error) {
	return r.list(ctx, false)
}

func (r *RoutingRuleRepository) list(ctx context.Context, enabledOnly bool) ([]*routing.Rule, error) {
	tx := db.GetTxFromContext(ctx, r.db)
	query := tx.Model(&models.RoutingRuleModel{})
	if enabledOnly {
		query = query.Where("is_enabled = ?", true)
	}

	var rows []models.RoutingRuleModel
	if err := query.Order("priority_order ASC, id ASC").Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to list routing rules: %w", err)
	}

	rules := make([]*routing.Rule, len(rows))
	for i := range rows {
		rules[i] = r.mapper.ToDomain(&rows[i])
	}
	return rules, nil
}
