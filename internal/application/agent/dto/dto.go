package dto

import "github.com/supporthub/supporthub/internal/domain/agent"

type AgentDTO struct {
	UserID            string   `json:"user_id"`
	DisplayName       string   `json:"display_name"`
	Presence          string   `json:"presence"`
	MaxActiveTickets  int      `json:"max_active_tickets"`
	ActiveTicketCount int      `json:"active_ticket_count"`
	Skills            []string `json:"skills"`
	QueueIDs          []uint   `json:"queue_ids"`
}

type UpdatePresenceRequest struct {
	Presence string `json:"presence" binding:"required"`
}

func ToAgentDTO(a *agent.Agent) AgentDTO {
	skills := a.Skills()
	if skills == nil {
		skills = []string{}
	}
	queueIDs := a.QueueIDs()
	if queueIDs == nil {
		queueIDs = []uint{}
	}
	return AgentDTO{
		UserID:            a.UserID(),
		DisplayName:       a.DisplayName(),
		Presence:          a.Presence().String(),
		MaxActiveTickets:  a.MaxActiveTickets(),
		ActiveTicketCount: a.ActiveTicketCount(),
		Skills:            skills,
		QueueIDs:          queueIDs,
	}
}
