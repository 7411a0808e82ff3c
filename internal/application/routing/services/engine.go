// Package services holds the dispatch pipeline: rule evaluation, action
// execution and agent selection.
package services

import (
	"context"
	"fmt"
	"time"

	"github.com/supporthub/supporthub/internal/domain/conversation"
	"github.com/supporthub/supporthub/internal/domain/customer"
	"github.com/supporthub/supporthub/internal/domain/routing"
	"github.com/supporthub/supporthub/internal/domain/ticket"
	"github.com/supporthub/supporthub/internal/shared/biztime"
	"github.com/supporthub/supporthub/internal/shared/logger"
)

// RouteInput is the ticket being routed together with the contact that
// triggered routing.
type RouteInput struct {
	Ticket       *ticket.Ticket
	Conversation *conversation.Conversation
	Customer     *customer.Customer
	Message      *conversation.Message
}

// Engine evaluates enabled rules in order and applies the first match.
type Engine struct {
	ruleRepo routing.Repository
	executor *ActionExecutor
	logger   logger.Interface
	now      func() time.Time
}

func NewEngine(ruleRepo routing.Repository, executor *ActionExecutor, logger logger.Interface) *Engine {
	return &Engine{ruleRepo: ruleRepo, executor: executor, logger: logger, now: biztime.NowUTC}
}

// Route mutates in.Ticket according to the first matching rule. With no match
// the ticket is left untouched.
func (e *Engine) Route(ctx context.Context, in RouteInput) (routing.Outcome, error) {
	rules, err := e.load(ctx)
	if err != nil {
		return routing.NoMatch, err
	}

	snap := routing.Snapshot{
		Channel: in.Conversation.Channel(),
		IsVIP:   in.Customer.IsVIP(),
		Subject: in.Conversation.SubjectText(),
		Body:    in.Message.Body(),
	}

	for _, r := range rules {
		if !r.Condition.Matches(snap) {
			continue
		}

		assignment, err := e.executor.Apply(ctx, in.Ticket, r.Action, e.now())
		if err != nil {
			return routing.NoMatch, fmt.Errorf("failed to apply rule %q: %w", r.Rule.Name(), err)
		}

		e.logger.Infow("ticket routed",
			"ticket_id", in.Ticket.ID(),
			"rule_id", r.Rule.ID(),
			"rule", r.Rule.Name(),
			"assigned", assignment.Assigned,
			"agent_id", assignment.AgentID,
			"tier", assignment.Tier.String(),
		)
		return routing.Outcome{
			Matched:    true,
			RuleID:     r.Rule.ID(),
			RuleName:   r.Rule.Name(),
			Assignment: assignment,
		}, nil
	}

	e.logger.Infow("no routing rule matched", "ticket_id", in.Ticket.ID())
	return routing.NoMatch, nil
}

func (e *Engine) load(ctx context.Context) ([]routing.CompiledRule, error) {
	rules, err := e.ruleRepo.ListEnabled(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load routing rules: %w", err)
	}

	compiled := make([]routing.CompiledRule, len(rules))
	for i, r := range rules {
		compiled[i] = routing.Compile(r)
	}

	// Unconditional rules are fallbacks by convention; anything after one is dead.
	for i, r := range compiled {
		if r.Condition.IsEmpty() && i < len(compiled)-1 {
			e.logger.Warnw("unconditional routing rule shadows later rules",
				"rule_id", r.Rule.ID(),
				"rule", r.Rule.Name(),
				"shadowed", len(compiled)-1-i,
			)
			break
		}
	}
	return compiled, nil
}
