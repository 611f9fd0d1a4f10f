package services

import (
	"context"

	"gorm.io/gorm"

	"github.com/franciscosanchezn/linkup-api/internal/chat"
	"github.com/franciscosanchezn/linkup-api/internal/models"
)

// MessageService stores direct messages and hands them to the chat hub
type MessageService interface {
	// SendMessage persists msg, then publishes it to the receiver
	SendMessage(ctx context.Context, msg models.Message) (models.Message, error)
	// Conversation returns the messages exchanged between a and b, oldest first
	Conversation(ctx context.Context, a, b string) ([]models.Message, error)
}

type messageService struct {
	db  *gorm.DB
	hub chat.Hub
}

func NewMessageService(db *gorm.DB, hub chat.Hub) MessageService {
	if hub == nil {
		hub = chat.NopHub{}
	}
	return &messageService{db: db, hub: hub}
}

func (s *messageService) SendMessage(ctx context.Context, msg models.Message) (models.Message, error) {
	msg.ID = 0
	if err := s.db.WithContext(ctx).Create(&msg).Error; err != nil {
		return models.Message{}, err
	}
	s.hub.Publish(ctx, msg)
	return msg, nil
}

func (s *messageService) Conversation(ctx context.Context, a, b string) ([]models.Message, error) {
	var messages []models.Message
	err := s.db.WithContext(ctx).
		Where("(sender_email = ? AND receiver_email = ?) OR (sender_email = ? AND receiver_email = ?)", a, b, b, a).
		Order("created_at, id").
		Find(&messages).Error
	if err != nil {
		return nil, err
	}
	return messages, nil
}
