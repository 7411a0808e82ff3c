package models

import "github.com/supporthub/supporthub/internal/shared/constants"

type QueueModel struct {
	ID          uint   `gorm:"primaryKey"`
	Name        string `gorm:"size:100;not null;uniqueIndex"`
	Description string `gorm:"size:500"`
}

func (QueueModel) TableName() string {
	return constants.TableQueues
}
