package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/supporthub/supporthub/internal/domain/agent"
	"github.com/supporthub/supporthub/internal/infrastructure/persistence/mappers"
	"github.com/supporthub/supporthub/internal/infrastructure/persistence/models"
	"github.com/supporthub/supporthub/internal/shared/constants"
	"github.com/supporthub/supporthub/internal/shared/db"
)

type AgentRepository struct {
	db     *gorm.DB
	mapper mappers.AgentMapper
}

func NewAgentRepository(db *gorm.DB) *AgentRepository {
	return &AgentRepository{
		db:     db,
		mapper: mappers.NewAgentMapper(),
	}
}

func (r *AgentRepository) Create(ctx context.Context, a *agent.Agent) error {
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(r.mapper.ToModel(a)).Error; err != nil {
		return fmt.Errorf("failed to create agent: %w", err)
	}
	return nil
}

// Update writes profile fields only; the workload counter is changed
// exclusively through TryIncrementLoad and ReleaseLoad.
func (r *AgentRepository) Update(ctx context.Context, a *agent.Agent) error {
	model := r.mapper.ToModel(a)
	tx := db.GetTxFromContext(ctx, r.db)

	result := tx.Model(&models.AgentModel{}).
		Where("user_id = ?", model.UserID).
		Updates(map[string]any{
			"display_name":       model.DisplayName,
			"presence":           model.Presence,
			"max_active_tickets": model.MaxActiveTickets,
			"skills":             model.Skills,
		})
	if result.Error != nil {
		return fmt.Errorf("failed to update agent: %w", result.Error)
	}
	return nil
}

func (r *AgentRepository) GetByUserID(ctx context.Context, userID string) (*agent.Agent, error) {
	var model models.AgentModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Where("user_id = ?", userID).Take(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, agent.ErrAgentNotFound
		}
		return nil, fmt.Errorf("failed to get agent: %w", err)
	}

	memberships, err := r.queueMemberships(ctx, []string{userID})
	if err != nil {
		return nil, err
	}
	return r.mapper.ToDomain(&model, memberships[userID]), nil
}

func (r *AgentRepository) List(ctx context.Context) ([]*agent.Agent, error) {
	var rows []models.AgentModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Order("display_name ASC, user_id ASC").Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to list agents: %w", err)
	}
	return r.withMemberships(ctx, rows)
}

func (r *AgentRepository) ListByQueue(ctx context.Context, queueID uint) ([]*agent.Agent, error) {
	var rows []models.AgentModel
	tx := db.GetTxFromContext(ctx, r.db)

	err := tx.
		Joins("JOIN "+constants.TableAgentQueues+" aq ON aq.user_id = "+constants.TableAgents+".user_id").
		Where("aq.queue_id = ?", queueID).
		Find(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list agents by queue: %w", err)
	}
	return r.withMemberships(ctx, rows)
}

func (r *AgentRepository) AddToQueue(ctx context.Context, userID string, queueID uint) error {
	tx := db.GetTxFromContext(ctx, r.db)

	err := tx.Clauses(clause.OnConflict{DoNothing: true}).
		Create(&models.AgentQueueModel{UserID: userID, QueueID: queueID}).Error
	if err != nil {
		return fmt.Errorf("failed to add agent to queue: %w", err)
	}
	return nil
}

func (r *AgentRepository) LockLoads(ctx context.Context, userIDs []string) (map[string]int, error) {
	loads := make(map[string]int, len(userIDs))
	if len(userIDs) == 0 {
		return loads, nil
	}

	var rows []models.AgentModel
	tx := db.GetTxFromContext(ctx, r.db)

	// Ordered so concurrent lockers take row locks in the same sequence.
	err := tx.Clauses(clause.Locking{Strength: clause.LockingStrengthUpdate}).
		Select("user_id", "active_ticket_count").
		Where("user_id IN ?", userIDs).
		Order("user_id ASC").
		Find(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to lock agent loads: %w", err)
	}
	for i := range rows {
		loads[rows[i].UserID] = rows[i].ActiveTicketCount
	}
	return loads, nil
}

func (r *AgentRepository) TryIncrementLoad(ctx context.Context, userID string, expected int) (bool, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	result := tx.Model(&models.AgentModel{}).
		Where("user_id = ? AND active_ticket_count = ?", userID, expected).
		UpdateColumn("active_ticket_count", gorm.Expr("active_ticket_count + 1"))
	if result.Error != nil {
		return false, fmt.Errorf("failed to increment agent load: %w", result.Error)
	}
	return result.RowsAffected == 1, nil
}

func (r *AgentRepository) ReleaseLoad(ctx context.Context, userID string) error {
	tx := db.GetTxFromContext(ctx, r.db)

	result := tx.Model(&models.AgentModel{}).
		Where("user_id = ? AND active_ticket_count > 0", userID).
		UpdateColumn("active_ticket_count", gorm.Expr("active_ticket_count - 1"))
	if result.Error != nil {
		return fmt.Errorf("failed to release agent load: %w", result.Error)
	}
	return nil
}

func (r *AgentRepository) withMemberships(ctx context.Context, rows []models.AgentModel) ([]*agent.Agent, error) {
	userIDs := make([]string, len(rows))
	for i := range rows {
		userIDs[i] = rows[i].UserID
	}

	memberships, err := r.queueMemberships(ctx, userIDs)
	if err != nil {
		return nil, err
	}

	agents := make([]*agent.Agent, len(rows))
	for i := range rows {
		agents[i] = r.mapper.ToDomain(&rows[i], memberships[rows[i].UserID])
	}
	return agents, nil
}

func (r *AgentRepository) queueMemberships(ctx context.Context, userIDs []string) (map[string][]uint, error) {
	out := make(map[string][]uint, len(userIDs))
	if len(userIDs) == 0 {
		return out, nil
	}

	var rows []models.AgentQueueModel
	tx := db.GetTxFromContext(ctx, r.db)
	if err := tx.Where("user_id IN ?", userIDs).Order("queue_id ASC").Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to load agent queues: %w", err)
	}
	for _, row := range rows {
		out[row.UserID] = append(out[row.UserID], row.QueueID)
	}
	return out, nil
}
