package mappers

import (
	"github.com/supporthub/supporthub/internal/domain/conversation"
	vo "github.com/supporthub/supporthub/internal/domain/conversation/valueobjects"
	"github.com/supporthub/supporthub/internal/infrastructure/persistence/models"
	"github.com/supporthub/supporthub/internal/shared/biztime"
)

// ConversationMapper converts conversations and their messages.
type ConversationMapper interface {
	ToModel(c *conversation.Conversation) *models.ConversationModel
	ToDomain(model *models.ConversationModel) *conversation.Conversation
	MessageToModel(msg *conversation.Message) *models.MessageModel
	MessageToDomain(model *models.MessageModel) *conversation.Message
}

type ConversationMapperImpl struct{}

func NewConversationMapper() ConversationMapper {
	return &ConversationMapperImpl{}
}

func (m *ConversationMapperImpl) ToModel(c *conversation.Conversation) *models.ConversationModel {
	return &models.ConversationModel{
		ID:            c.ID(),
		CustomerID:    c.CustomerID(),
		Channel:       c.Channel().String(),
		Subject:       c.Subject(),
		CreatedAt:     biztime.ToMillis(c.CreatedAt()),
		LastMessageAt: biztime.ToMillis(c.LastMessageAt()),
	}
}

func (m *ConversationMapperImpl) ToDomain(model *models.ConversationModel) *conversation.Conversation {
	if model == nil {
		return nil
	}
	return conversation.ReconstructConversation(
		model.ID,
		model.CustomerID,
		vo.Channel(model.Channel),
		model.Subject,
		biztime.FromMillis(model.CreatedAt),
		biztime.FromMillis(model.LastMessageAt),
	)
}

func (m *ConversationMapperImpl) MessageToModel(msg *conversation.Message) *models.MessageModel {
	return &models.MessageModel{
		ID:             msg.ID(),
		ConversationID: msg.ConversationID(),
		Direction:      msg.Direction().String(),
		Sender:         msg.From(),
		Body:           msg.Body(),
		SentAt:         biztime.ToMillis(msg.SentAt()),
	}
}

func (m *ConversationMapperImpl) MessageToDomain(model *models.MessageModel) *conversation.Message {
	if model == nil {
		return nil
	}
	return conversation.ReconstructMessage(
		model.ID,
		model.ConversationID,
		vo.Direction(model.Direction),
		model.Sender,
		model.Body,
		biztime.FromMillis(model.SentAt),
	)
}
