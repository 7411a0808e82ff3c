package mappers

import (
	"fmt"

	"github.com/supporthub/supporthub/internal/domain/ticket"
	vo "github.com/supporthub/supporthub/internal/domain/ticket/valueobjects"
	"github.com/supporthub/supporthub/internal/infrastructure/persistence/models"
	"github.com/supporthub/supporthub/internal/shared/biztime"
)

// TicketMapper handles the conversion between Ticket domain entities and persistence models.
type TicketMapper interface {
	// ToModel converts a ticket domain entity to a persistence model.
	ToModel(t *ticket.Ticket) *models.TicketModel

	// ToDomain converts a ticket persistence model to a domain entity.
	ToDomain(model *models.TicketModel) (*ticket.Ticket, error)

	// ToDomainList converts a slice of models, failing on the first bad row.
	ToDomainList(models []models.TicketModel) ([]*ticket.Ticket, error)
}

// TicketMapperImpl is the concrete implementation of TicketMapper.
type TicketMapperImpl struct{}

// NewTicketMapper creates a new TicketMapper.
func NewTicketMapper() TicketMapper {
	return &TicketMapperImpl{}
}

func (m *TicketMapperImpl) ToModel(t *ticket.Ticket) *models.TicketModel {
	return &models.TicketModel{
		ID:              t.ID(),
		ConversationID:  t.ConversationID(),
		CustomerID:      t.CustomerID(),
		QueueID:         t.QueueID(),
		AssignedAgentID: t.AssignedAgentID(),
		Status:          t.Status().String(),
		Priority:        t.Priority().String(),
		Category:        t.Category(),
		CreatedAt:       biztime.ToMillis(t.CreatedAt()),
		UpdatedAt:       biztime.ToMillis(t.UpdatedAt()),
	}
}

func (m *TicketMapperImpl) ToDomain(model *models.TicketModel) (*ticket.Ticket, error) {
	if model == nil {
		return nil, nil
	}

	t, err := ticket.ReconstructTicket(
		model.ID,
		model.ConversationID,
		model.CustomerID,
		model.QueueID,
		model.AssignedAgentID,
		vo.TicketStatus(model.Status),
		vo.Priority(model.Priority),
		model.Category,
		biztime.FromMillis(model.CreatedAt),
		biztime.FromMillis(model.UpdatedAt),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to reconstruct ticket %d: %w", model.ID, err)
	}
	return t, nil
}

func (m *TicketMapperImpl) ToDomainList(rows []models.TicketModel) ([]*ticket.Ticket, error) {
	tickets := make([]*ticket.Ticket, 0, len(rows))
	for i := range rows {
		t, err := m.ToDomain(&rows[i])
		if err != nil {
			return nil, err
		}
		tickets = append(tickets, t)
	}
	return tickets, nil
}
