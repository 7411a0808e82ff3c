package mappers

import (
	"encoding/json"

	"gorm.io/datatypes"

	"github.com/supporthub/supporthub/internal/domain/routing"
	"github.com/supporthub/supporthub/internal/infrastructure/persistence/models"
)

// emptyPayload replaces text that is not JSON at all. Both parse to a
// payload with every field absent, so rule behaviour is unchanged.
const emptyPayload = "{}"

type RoutingRuleMapper interface {
	ToModel(r *routing.Rule) *models.RoutingRuleModel
	ToDomain(model *models.RoutingRuleModel) *routing.Rule
}

type RoutingRuleMapperImpl struct{}

func NewRoutingRuleMapper() RoutingRuleMapper {
	return &RoutingRuleMapperImpl{}
}

func (m *RoutingRuleMapperImpl) ToModel(r *routing.Rule) *models.RoutingRuleModel {
	return &models.RoutingRuleModel{
		ID:            r.ID(),
		Name:          r.Name(),
		IsEnabled:     r.IsEnabled(),
		PriorityOrder: r.PriorityOrder(),
		ConditionJSON: jsonColumn(r.ConditionJSON()),
		ActionJSON:    jsonColumn(r.ActionJSON()),
	}
}

func (m *RoutingRuleMapperImpl) ToDomain(model *models.RoutingRuleModel) *routing.Rule {
	if model == nil {
		return nil
	}
	return routing.ReconstructRule(
		model.ID,
		model.Name,
		model.IsEnabled,
		model.PriorityOrder,
		string(model.ConditionJSON),
		string(model.ActionJSON),
	)
}

func jsonColumn(raw string) datatypes.JSON {
	if !json.Valid([]byte(raw)) {
		return datatypes.JSON(emptyPayload)
	}
	return datatypes.JSON(raw)
}
