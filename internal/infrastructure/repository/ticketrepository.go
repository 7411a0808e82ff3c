package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/supporthub/supporthub/internal/domain/ticket"
	vo "github.com/supporthub/supporthub/internal/domain/ticket/valueobjects"
	"github.com/supporthub/supporthub/internal/infrastructure/persistence/mappers"
	"github.com/supporthub/supporthub/internal/infrastructure/persistence/models"
	"github.com/supporthub/supporthub/internal/shared/db"
)

type TicketRepository struct {
	db     *gorm.DB
	mapper mappers.TicketMapper
}

func NewTicketRepository(db *gorm.DB) *TicketRepository {
	return &TicketRepository{
		db:     db,
		mapper: mappers.NewTicketMapper(),
	}
}

func (r *TicketRepository) Create(ctx context.Context, t *ticket.Ticket) error {
	model := r.mapper.ToModel(t)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		return fmt.Errorf("failed to create ticket: %w", err)
	}
	return t.SetID(model.ID)
}

func (r *TicketRepository) Update(ctx context.Context, t *ticket.Ticket) error {
	model := r.mapper.ToModel(t)
	tx := db.GetTxFromContext(ctx, r.db)

	// A map is used so that cleared queue/agent pointers are written as NULL.
	err := tx.Model(&models.TicketModel{}).
		Where("id = ?", model.ID).
		Updates(map[string]any{
			"queue_id":          model.QueueID,
			"assigned_agent_id": model.AssignedAgentID,
			"status":            model.Status,
			"priority":          model.Priority,
			"category":          model.Category,
			"updated_at":        model.UpdatedAt,
		}).Error
	if err != nil {
		return fmt.Errorf("failed to update ticket: %w", err)
	}

	// Note: RowsAffected may be 0 when updated values are identical to existing values.

	return nil
}

func (r *TicketRepository) GetByID(ctx context.Context, id uint) (*ticket.Ticket, error) {
	return r.getOne(ctx, "id = ?", id)
}

func (r *TicketRepository) GetByConversationID(ctx context.Context, conversationID uint) (*ticket.Ticket, error) {
	return r.getOne(ctx, "conversation_id = ?", conversationID)
}

func (r *TicketRepository) getOne(ctx context.Context, cond string, arg any) (*ticket.Ticket, error) {
	var model models.TicketModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Where(cond, arg).Take(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ticket.ErrTicketNotFound
		}
		return nil, fmt.Errorf("failed to get ticket: %w", err)
	}
	return r.mapper.ToDomain(&model)
}

func (r *TicketRepository) List(ctx context.Context, filter ticket.Filter) ([]*ticket.Ticket, error) {
	tx := db.GetTxFromContext(ctx, r.db)
	query := tx.Model(&models.TicketModel{})

	if filter.AssignedAgentID != nil {
		query = query.Where("assigned_agent_id = ?", *filter.AssignedAgentID)
	}
	if filter.QueueID != nil {
		query = query.Where("queue_id = ?", *filter.QueueID)
	}
	if filter.Status != nil {
		query = query.Where("status = ?", filter.Status.String())
	}

	var rows []models.TicketModel
	if err := query.
		Order("updated_at DESC, id DESC").
		Scopes(db.Limit(filter.Limit)).
		Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to list tickets: %w", err)
	}
	return r.mapper.ToDomainList(rows)
}

func (r *TicketRepository) QueuePosition(ctx context.Context, t *ticket.Ticket) (int, error) {
	if t.QueueID() == nil {
		return 0, nil
	}

	model := r.mapper.ToModel(t)
	tx := db.GetTxFromContext(ctx, r.db)

	var position int64
	err := tx.Model(&models.TicketModel{}).
		Where("queue_id = ?", *model.QueueID).
		Scopes(db.StatusNotIn("status", vo.TerminalStatusStrings()...)).
		Where("created_at < ? OR (created_at = ? AND id <= ?)", model.CreatedAt, model.CreatedAt, model.ID).
		Count(&position).Error
	if err != nil {
		return 0, fmt.Errorf("failed to compute queue position: %w", err)
	}
	return int(position), nil
}
