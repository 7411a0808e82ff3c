package ticket

import (
	"fmt"
	"strings"
	"time"

	vo "github.com/supporthub/supporthub/internal/domain/ticket/valueobjects"
	"github.com/supporthub/supporthub/internal/shared/constants"
)

// Ticket is the unit of work dispatched to a queue and optionally an agent.
// It is bound one-to-one to a conversation.
type Ticket struct {
	id              uint
	conversationID  uint
	customerID      uint
	queueID         *uint
	assignedAgentID *string
	status          vo.TicketStatus
	priority        vo.Priority
	category        string
	createdAt       time.Time
	updatedAt       time.Time
}

// NewTicket opens a ticket for a fresh conversation: New, Normal, General.
func NewTicket(conversationID, customerID uint, now time.Time) (*Ticket, error) {
	if conversationID == 0 {
		return nil, fmt.Errorf("conversation ID is required")
	}
	if customerID == 0 {
		return nil, fmt.Errorf("customer ID is required")
	}

	return &Ticket{
		conversationID: conversationID,
		customerID:     customerID,
		status:         vo.StatusNew,
		priority:       vo.PriorityNormal,
		category:       constants.DefaultCategory,
		createdAt:      now,
		updatedAt:      now,
	}, nil
}

func ReconstructTicket(
	id, conversationID, customerID uint,
	queueID *uint,
	assignedAgentID *string,
	status vo.TicketStatus,
	priority vo.Priority,
	category string,
	createdAt, updatedAt time.Time,
) (*Ticket, error) {
	if id == 0 {
		return nil, fmt.Errorf("ticket ID cannot be zero")
	}
	if !status.IsValid() {
		return nil, fmt.Errorf("invalid status: %s", status)
	}
	if !priority.IsValid() {
		return nil, fmt.Errorf("invalid priority: %s", priority)
	}

	return &Ticket{
		id:              id,
		conversationID:  conversationID,
		customerID:      customerID,
		queueID:         queueID,
		assignedAgentID: assignedAgentID,
		status:          status,
		priority:        priority,
		category:        category,
		createdAt:       createdAt,
		updatedAt:       updatedAt,
	}, nil
}

func (t *Ticket) ID() uint                 { return t.id }
func (t *Ticket) ConversationID() uint     { return t.conversationID }
func (t *Ticket) CustomerID() uint         { return t.customerID }
func (t *Ticket) QueueID() *uint           { return t.queueID }
func (t *Ticket) AssignedAgentID() *string { return t.assignedAgentID }
func (t *Ticket) Status() vo.TicketStatus  { return t.status }
func (t *Ticket) Priority() vo.Priority    { return t.priority }
func (t *Ticket) Category() string         { return t.category }
func (t *Ticket) CreatedAt() time.Time     { return t.createdAt }
func (t *Ticket) UpdatedAt() time.Time     { return t.updatedAt }
func (t *Ticket) IsAssigned() bool         { return t.assignedAgentID != nil }
func (t *Ticket) HasQueue() bool           { return t.queueID != nil }
func (t *Ticket) IsOpenForReuse() bool     { return !t.status.IsTerminal() }

func (t *Ticket) SetID(id uint) error {
	if t.id != 0 {
		return fmt.Errorf("ticket ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("ticket ID cannot be zero")
	}
	t.id = id
	return nil
}

func (t *Ticket) AssignQueue(queueID uint) {
	t.queueID = &queueID
}

func (t *Ticket) SetPriority(p vo.Priority) error {
	if !p.IsValid() {
		return fmt.Errorf("invalid priority: %s", p)
	}
	t.priority = p
	return nil
}

// SetCategory replaces the category; blank values are ignored.
func (t *Ticket) SetCategory(category string) {
	category = strings.TrimSpace(category)
	if category == "" {
		return
	}
	t.category = category
}

// MarkRouted moves a New ticket to Open and bumps its update time.
func (t *Ticket) MarkRouted(now time.Time) {
	if t.status.IsNew() {
		t.status = vo.StatusOpen
	}
	t.updatedAt = now
}

// AssignAgent sets the owning agent and returns the one it replaced, if any.
func (t *Ticket) AssignAgent(agentID string, now time.Time) (previous *string, err error) {
	if strings.TrimSpace(agentID) == "" {
		return nil, fmt.Errorf("agent ID is required")
	}
	previous = t.assignedAgentID
	t.assignedAgentID = &agentID
	t.updatedAt = now
	return previous, nil
}

// ChangeStatus sets any valid status. Leaving New through a manual update
// does not pass through routing.
func (t *Ticket) ChangeStatus(status vo.TicketStatus, now time.Time) error {
	if !status.IsValid() {
		return fmt.Errorf("invalid status: %s", status)
	}
	t.status = status
	t.updatedAt = now
	return nil
}

// MarkUpdated bumps the update time after a manual edit.
func (t *Ticket) MarkUpdated(now time.Time) {
	t.updatedAt = now
}

// Touch records activity on the ticket's conversation. New tickets become Open.
func (t *Ticket) Touch(now time.Time) {
	t.MarkRouted(now)
}
