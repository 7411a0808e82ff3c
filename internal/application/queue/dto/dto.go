package dto

import (
	"time"

	"github.com/supporthub/supporthub/internal/domain/queue"
)

type QueueDTO struct {
	ID          uint   `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

type QueueStatsDTO struct {
	QueueID         uint       `json:"queue_id"`
	OpenCount       int64      `json:"open_count"`
	OldestCreatedAt *time.Time `json:"oldest_created_at"`
}

func ToQueueDTO(q *queue.Queue) QueueDTO {
	return QueueDTO{ID: q.ID(), Name: q.Name(), Description: q.Description()}
}
