package models

import "github.com/supporthub/supporthub/internal/shared/constants"

// AgentModel is keyed by the user id it extends.
type AgentModel struct {
	UserID            string `gorm:"primaryKey;size:64"`
	DisplayName       string `gorm:"size:100;not null"`
	Presence          string `gorm:"size:20;not null;default:offline"`
	MaxActiveTickets  int    `gorm:"not null;default:5"`
	ActiveTicketCount int    `gorm:"not null;default:0"`
	Skills            string `gorm:"size:500"`
}

func (AgentModel) TableName() string {
	return constants.TableAgents
}

type AgentQueueModel struct {
	UserID  string `gorm:"primaryKey;size:64"`
	QueueID uint   `gorm:"primaryKey;index"`
}

func (AgentQueueModel) TableName() string {
	return constants.TableAgentQueues
}
