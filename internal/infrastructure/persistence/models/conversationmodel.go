package models

import "github.com/supporthub/supporthub/internal/shared/constants"

type ConversationModel struct {
	ID            uint    `gorm:"primaryKey"`
	CustomerID    uint    `gorm:"not null;index:idx_conversations_customer_channel,priority:1"`
	Channel       string  `gorm:"size:10;not null;index:idx_conversations_customer_channel,priority:2"`
	Subject       *string `gorm:"size:300"`
	CreatedAt     int64   `gorm:"autoCreateTime:false;not null"`
	LastMessageAt int64   `gorm:"not null"`
}

func (ConversationModel) TableName() string {
	return constants.TableConversations
}

type MessageModel struct {
	ID             uint   `gorm:"primaryKey"`
	ConversationID uint   `gorm:"not null;index:idx_messages_conversation_sent,priority:1"`
	Direction      string `gorm:"size:10;not null"`
	Sender         string `gorm:"size:255;not null"`
	Body           string `gorm:"type:text;not null"`
	SentAt         int64  `gorm:"not null;index:idx_messages_conversation_sent,priority:2"`
}

func (MessageModel) TableName() string {
	return constants.TableMessages
}
