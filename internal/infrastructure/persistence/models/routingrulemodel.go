package models

import (
	"gorm.io/datatypes"

	"github.com/supporthub/supporthub/internal/shared/constants"
)

type RoutingRuleModel struct {
	ID            uint           `gorm:"primaryKey"`
	Name          string         `gorm:"size:100;not null"`
	IsEnabled     bool           `gorm:"not null"`
	PriorityOrder int            `gorm:"not null;index"`
	ConditionJSON datatypes.JSON `gorm:"column:condition_json;not null"`
	ActionJSON    datatypes.JSON `gorm:"column:action_json;not null"`
}

func (RoutingRuleModel) TableName() string {
	return constants.TableRoutingRules
}
