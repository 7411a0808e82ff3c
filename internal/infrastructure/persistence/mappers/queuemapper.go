package mappers

import (
	"github.com/supporthub/supporthub/internal/domain/queue"
	"github.com/supporthub/supporthub/internal/infrastructure/persistence/models"
)

type QueueMapper interface {
	ToModel(q *queue.Queue) *models.QueueModel
	ToDomain(model *models.QueueModel) *queue.Queue
}

type QueueMapperImpl struct{}

func NewQueueMapper() QueueMapper {
	return &QueueMapperImpl{}
}

func (m *QueueMapperImpl) ToModel(q *queue.Queue) *models.QueueModel {
	return &models.QueueModel{
		ID:          q.ID(),
		Name:        q.Name(),
		Description: q.Description(),
	}
}

func (m *QueueMapperImpl) ToDomain(model *models.QueueModel) *queue.Queue {
	if model == nil {
		return nil
	}
	return queue.ReconstructQueue(model.ID, model.Name, model.Description)
}
