package mappers

import (
	"github.com/supporthub/supporthub/internal/domain/agent"
	vo "github.com/supporthub/supporthub/internal/domain/agent/valueobjects"
	"github.com/supporthub/supporthub/internal/infrastructure/persistence/models"
)

type AgentMapper interface {
	ToModel(a *agent.Agent) *models.AgentModel
	// ToDomain attaches the queue memberships loaded separately.
	ToDomain(model *models.AgentModel, queueIDs []uint) *agent.Agent
}

type AgentMapperImpl struct{}

func NewAgentMapper() AgentMapper {
	return &AgentMapperImpl{}
}

func (m *AgentMapperImpl) ToModel(a *agent.Agent) *models.AgentModel {
	return &models.AgentModel{
		UserID:            a.UserID(),
		DisplayName:       a.DisplayName(),
		Presence:          a.Presence().String(),
		MaxActiveTickets:  a.MaxActiveTickets(),
		ActiveTicketCount: a.ActiveTicketCount(),
		Skills:            a.SkillsCSV(),
	}
}

func (m *AgentMapperImpl) ToDomain(model *models.AgentModel, queueIDs []uint) *agent.Agent {
	if model == nil {
		return nil
	}
	if queueIDs == nil {
		queueIDs = []uint{}
	}
	return agent.ReconstructAgent(
		model.UserID,
		model.DisplayName,
		vo.Presence(model.Presence),
		model.MaxActiveTickets,
		model.ActiveTicketCount,
		agent.ParseSkillsCSV(model.Skills),
		queueIDs,
	)
}
