package routing

import (
	"context"
	"errors"
	"fmt"
	"strings"
)

var ErrRuleNotFound = errors.New("routing rule not found")

// Rule is an ordered condition/action pair. Payloads are stored verbatim and
// only interpreted when the rule set is loaded.
type Rule struct {
	id            uint
	name          string
	enabled       bool
	priorityOrder int
	conditionJSON string
	actionJSON    string
}

func NewRule(name string, enabled bool, order int, conditionJSON, actionJSON string) (*Rule, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("rule name is required")
	}
	return &Rule{
		name:          name,
		enabled:       enabled,
		priorityOrder: order,
		conditionJSON: conditionJSON,
		actionJSON:    actionJSON,
	}, nil
}

func ReconstructRule(id uint, name string, enabled bool, order int, conditionJSON, actionJSON string) *Rule {
	return &Rule{
		id:            id,
		name:          name,
		enabled:       enabled,
		priorityOrder: order,
		conditionJSON: conditionJSON,
		actionJSON:    actionJSON,
	}
}

func (r *Rule) ID() uint              { return r.id }
func (r *Rule) Name() string          { return r.name }
func (r *Rule) IsEnabled() bool       { return r.enabled }
func (r *Rule) PriorityOrder() int    { return r.priorityOrder }
func (r *Rule) ConditionJSON() string { return r.conditionJSON }
func (r *Rule) ActionJSON() string    { return r.actionJSON }

func (r *Rule) SetID(id uint) error {
	if r.id != 0 {
		return fmt.Errorf("rule ID is already set")
	}
	r.id = id
	return nil
}

// RulePatch holds optional replacements for a rule's fields.
type RulePatch struct {
	Name          *string
	Enabled       *bool
	PriorityOrder *int
	ConditionJSON *string
	ActionJSON    *string
}

func (r *Rule) Apply(p RulePatch) error {
	if p.Name != nil {
		name := strings.TrimSpace(*p.Name)
		if name == "" {
			return fmt.Errorf("rule name is required")
		}
		r.name = name
	}
	if p.Enabled != nil {
		r.enabled = *p.Enabled
	}
	if p.PriorityOrder != nil {
		r.priorityOrder = *p.PriorityOrder
	}
	if p.ConditionJSON != nil {
		r.conditionJSON = *p.ConditionJSON
	}
	if p.ActionJSON != nil {
		r.actionJSON = *p.ActionJSON
	}
	return nil
}

// CompiledRule is a rule with its payloads parsed.
type CompiledRule struct {
	Rule      *Rule
	Condition Condition
	Action    Action
}

func Compile(r *Rule) CompiledRule {
	return CompiledRule{
		Rule:      r,
		Condition: ParseCondition(r.conditionJSON),
		Action:    ParseAction(r.actionJSON),
	}
}

type Repository interface {
	Create(ctx context.Context, r *Rule) error
	Update(ctx context.Context, r *Rule) error
	GetByID(ctx context.Context, id uint) (*Rule, error)
	// ListEnabled returns enabled rules ordered by priority order, then id.
	ListEnabled(ctx context.Context) ([]*Rule, error)
	// List returns every rule in evaluation order.
	List(ctx context.Context) ([]*Rule, error)
}
