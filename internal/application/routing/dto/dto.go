package dto

import "github.com/supporthub/supporthub/internal/domain/routing"

type RuleDTO struct {
	ID            uint   `json:"id"`
	Name          string `json:"name"`
	IsEnabled     bool   `json:"is_enabled"`
	PriorityOrder int    `json:"priority_order"`
	ConditionJSON string `json:"condition_json"`
	ActionJSON    string `json:"action_json"`
}

type CreateRuleRequest struct {
	Name          string `json:"name" binding:"required,max=100"`
	PriorityOrder int    `json:"priority_order"`
	ConditionJSON string `json:"condition_json"`
	ActionJSON    string `json:"action_json"`
	IsEnabled     *bool  `json:"is_enabled"`
}

type UpdateRuleRequest struct {
	Name          *string `json:"name" binding:"omitempty,max=100"`
	PriorityOrder *int    `json:"priority_order"`
	ConditionJSON *string `json:"condition_json"`
	ActionJSON    *string `json:"action_json"`
	IsEnabled     *bool   `json:"is_enabled"`
}

func ToRuleDTO(r *routing.Rule) RuleDTO {
	return RuleDTO{
		ID:            r.ID(),
		Name:          r.Name(),
		IsEnabled:     r.IsEnabled(),
		PriorityOrder: r.PriorityOrder(),
		ConditionJSON: r.ConditionJSON(),
		ActionJSON:    r.ActionJSON(),
	}
}
