package models

import "github.com/supporthub/supporthub/internal/shared/constants"

type TicketModel struct {
	ID              uint    `gorm:"primaryKey"`
	ConversationID  uint    `gorm:"not null;uniqueIndex"`
	CustomerID      uint    `gorm:"not null;index"`
	QueueID         *uint   `gorm:"index:idx_tickets_queue_status,priority:1"`
	AssignedAgentID *string `gorm:"size:64;index"`
	Status          string  `gorm:"size:20;not null;index:idx_tickets_queue_status,priority:2"`
	Priority        string  `gorm:"size:20;not null"`
	Category        string  `gorm:"size:100;not null"`
	// Timestamps are owned by the domain; GORM must not overwrite them.
	CreatedAt int64 `gorm:"autoCreateTime:false;not null"`
	UpdatedAt int64 `gorm:"autoUpdateTime:false;not null;index"`

	// Note: No foreign key constraints or associations.
	// All relationships are managed by application business logic.
}

func (TicketModel) TableName() string {
	return constants.TableTickets
}
