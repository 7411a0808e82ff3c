package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/supporthub/supporthub/internal/domain/conversation"
	vo "github.com/supporthub/supporthub/internal/domain/conversation/valueobjects"
	ticketvo "github.com/supporthub/supporthub/internal/domain/ticket/valueobjects"
	"github.com/supporthub/supporthub/internal/infrastructure/persistence/mappers"
	"github.com/supporthub/supporthub/internal/infrastructure/persistence/models"
	"github.com/supporthub/supporthub/internal/shared/constants"
	"github.com/supporthub/supporthub/internal/shared/db"
)

type ConversationRepository struct {
	db     *gorm.DB
	mapper mappers.ConversationMapper
}

func NewConversationRepository(db *gorm.DB) *ConversationRepository {
	return &ConversationRepository{
		db:     db,
		mapper: mappers.NewConversationMapper(),
	}
}

func (r *ConversationRepository) Create(ctx context.Context, c *conversation.Conversation) error {
	model := r.mapper.ToModel(c)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		return fmt.Errorf("failed to create conversation: %w", err)
	}
	return c.SetID(model.ID)
}

func (r *ConversationRepository) Update(ctx context.Context, c *conversation.Conversation) error {
	model := r.mapper.ToModel(c)
	tx := db.GetTxFromContext(ctx, r.db)

	err := tx.Model(&models.ConversationModel{}).
		Where("id = ?", model.ID).
		Updates(map[string]any{
			"subject":         model.Subject,
			"last_message_at": model.LastMessageAt,
		}).Error
	if err != nil {
		return fmt.Errorf("failed to update conversation: %w", err)
	}
	return nil
}

func (r *ConversationRepository) GetByID(ctx context.Context, id uint) (*conversation.Conversation, error) {
	var model models.ConversationModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.First(&model, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, conversation.ErrConversationNotFound
		}
		return nil, fmt.Errorf("failed to get conversation: %w", err)
	}
	return r.mapper.ToDomain(&model), nil
}

func (r *ConversationRepository) FindOpen(ctx context.Context, customerID uint, channel vo.Channel) (*conversation.Conversation, error) {
	var model models.ConversationModel
	tx := db.GetTxFromContext(ctx, r.db)

	err := tx.
		Select(constants.TableConversations+".*").
		Joins("JOIN "+constants.TableTickets+" ON "+constants.TableTickets+".conversation_id = "+constants.TableConversations+".id").
		Where(constants.TableConversations+".customer_id = ? AND "+constants.TableConversations+".channel = ?", customerID, channel.String()).
		Scopes(db.StatusNotIn(constants.TableTickets+".status", ticketvo.TerminalStatusStrings()...)).
		Order(constants.TableConversations + ".id DESC").
		Take(&model).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find open conversation: %w", err)
	}
	return r.mapper.ToDomain(&model), nil
}

func (r *ConversationRepository) AppendMessage(ctx context.Context, m *conversation.Message) error {
	model := r.mapper.MessageToModel(m)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		return fmt.Errorf("failed to append message: %w", err)
	}
	return m.SetID(model.ID)
}

func (r *ConversationRepository) ListMessages(ctx context.Context, conversationID uint) ([]*conversation.Message, error) {
	var rows []models.MessageModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.
		Where("conversation_id = ?", conversationID).
		Order("sent_at ASC, id ASC").
		Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to list messages: %w", err)
	}

	messages := make([]*conversation.Message, len(rows))
	for i := range rows {
		messages[i] = r.mapper.MessageToDomain(&rows[i])
	}
	return messages, nil
}
