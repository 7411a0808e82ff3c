package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/supporthub/supporthub/internal/domain/queue"
	vo "github.com/supporthub/supporthub/internal/domain/ticket/valueobjects"
	"github.com/supporthub/supporthub/internal/infrastructure/persistence/mappers"
	"github.com/supporthub/supporthub/internal/infrastructure/persistence/models"
	"github.com/supporthub/supporthub/internal/shared/biztime"
	"github.com/supporthub/supporthub/internal/shared/db"
)

type QueueRepository struct {
	db     *gorm.DB
	mapper mappers.QueueMapper
}

func NewQueueRepository(db *gorm.DB) *QueueRepository {
	return &QueueRepository{
		db:     db,
		mapper: mappers.NewQueueMapper(),
	}
}

func (r *QueueRepository) Create(ctx context.Context, q *queue.Queue) error {
	model := r.mapper.ToModel(q)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		return fmt.Errorf("failed to create queue: %w", err)
	}
	return q.SetID(model.ID)
}

func (r *QueueRepository) GetByID(ctx context.Context, id uint) (*queue.Queue, error) {
	var model models.QueueModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.First(&model, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, queue.ErrQueueNotFound
		}
		return nil, fmt.Errorf("failed to get queue: %w", err)
	}
	return r.mapper.ToDomain(&model), nil
}

func (r *QueueRepository) FindByName(ctx context.Context, name string) (*queue.Queue, error) {
	var model models.QueueModel
	tx := db.GetTxFromContext(ctx, r.db)

	// BINARY keeps the lookup case-sensitive under MySQL's default collation.
	cond := "name = ?"
	if tx.Dialector.Name() == "mysql" {
		cond = "name = BINARY ?"
	}
	if err := tx.Where(cond, name).Take(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find queue by name: %w", err)
	}
	return r.mapper.ToDomain(&model), nil
}

func (r *QueueRepository) List(ctx context.Context) ([]*queue.Queue, error) {
	var rows []models.QueueModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Order("name ASC").Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to list queues: %w", err)
	}

	queues := make([]*queue.Queue, len(rows))
	for i := range rows {
		queues[i] = r.mapper.ToDomain(&rows[i])
	}
	return queues, nil
}

func (r *QueueRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Model(&models.QueueModel{}).Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count queues: %w", err)
	}
	return count, nil
}

func (r *QueueRepository) Stats(ctx context.Context, id uint) (*queue.Stats, error) {
	if _, err := r.GetByID(ctx, id); err != nil {
		return nil, err
	}

	tx := db.GetTxFromContext(ctx, r.db)
	unfinished := func() *gorm.DB {
		return tx.Model(&models.TicketModel{}).
			Where("queue_id = ? AND status <> ?", id, vo.StatusClosed.String())
	}

	stats := &queue.Stats{QueueID: id}
	if err := unfinished().Count(&stats.OpenCount).Error; err != nil {
		return nil, fmt.Errorf("failed to count queue tickets: %w", err)
	}
	if stats.OpenCount == 0 {
		return stats, nil
	}

	var oldest models.TicketModel
	if err := unfinished().Order("created_at ASC, id ASC").Take(&oldest).Error; err != nil {
		return nil, fmt.Errorf("failed to find oldest queue ticket: %w", err)
	}
	createdAt := biztime.FromMillis(oldest.CreatedAt)
	stats.OldestCreatedAt = &createdAt
	return stats, nil
}
