package dto

import (
	"time"

	"github.com/supporthub/supporthub/internal/domain/ticket"
)

type TicketDTO struct {
	ID              uint      `json:"id"`
	ConversationID  uint      `json:"conversation_id"`
	CustomerID      uint      `json:"customer_id"`
	QueueID         *uint     `json:"queue_id"`
	AssignedAgentID *string   `json:"assigned_agent_id"`
	Status          string    `json:"status"`
	Priority        string    `json:"priority"`
	Category        string    `json:"category"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// TicketListItemDTO is a ticket row as shown on the agent and supervisor boards.
type TicketListItemDTO struct {
	ID              uint      `json:"id"`
	CustomerName    string    `json:"customer_name"`
	Channel         string    `json:"channel"`
	Queue           string    `json:"queue"`
	QueueID         *uint     `json:"queue_id"`
	Status          string    `json:"status"`
	Priority        string    `json:"priority"`
	Category        string    `json:"category"`
	AssignedAgent   *string   `json:"assigned_agent"`
	AssignedAgentID *string   `json:"assigned_agent_id"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

type UpdateTicketRequest struct {
	Status   *string `json:"status"`
	Priority *string `json:"priority"`
	Category *string `json:"category" binding:"omitempty,max=100"`
}

type AssignTicketRequest struct {
	QueueID     *uint   `json:"queue_id"`
	AgentUserID *string `json:"agent_user_id" binding:"omitempty,min=1"`
}

func ToTicketDTO(t *ticket.Ticket) *TicketDTO {
	if t == nil {
		return nil
	}
	return &TicketDTO{
		ID:              t.ID(),
		ConversationID:  t.ConversationID(),
		CustomerID:      t.CustomerID(),
		QueueID:         t.QueueID(),
		AssignedAgentID: t.AssignedAgentID(),
		Status:          t.Status().String(),
		Priority:        t.Priority().String(),
		Category:        t.Category(),
		CreatedAt:       t.CreatedAt(),
		UpdatedAt:       t.UpdatedAt(),
	}
}
