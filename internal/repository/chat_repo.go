package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	"kivulounge/internal/domain"
)

type ChatRepository struct {
	db *gorm.DB
}

func NewChatRepository(db *gorm.DB) *ChatRepository {
	return &ChatRepository{db: db}
}

type chatMessageModel struct {
	ID            int64     `gorm:"column:id;primaryKey"`
	UserID        *int64    `gorm:"column:user_id"`
	GuestName     *string   `gorm:"column:guest_name"`
	GuestEmail    *string   `gorm:"column:guest_email"`
	Message       string    `gorm:"column:message"`
	IsFromSupport bool      `gorm:"column:is_from_support"`
	CreatedAt     time.Time `gorm:"column:created_at"`
}

func (chatMessageModel) TableName() string { return "chat_messages" }

func toDomainChatMessage(m chatMessageModel) *domain.ChatMessage {
	var guestName, guestEmail string
	if m.GuestName != nil {
		guestName = *m.GuestName
	}
	if m.GuestEmail != nil {
		guestEmail = *m.GuestEmail
	}
	return &domain.ChatMessage{
		ID:            m.ID,
		UserID:        m.UserID,
		GuestName:     guestName,
		GuestEmail:    guestEmail,
		Message:       m.Message,
		IsFromSupport: m.IsFromSupport,
		CreatedAt:     m.CreatedAt,
	}
}

func toChatMessageModel(msg *domain.ChatMessage) chatMessageModel {
	var guestName, guestEmail *string
	if msg.GuestName != "" {
		v := msg.GuestName
		guestName = &v
	}
	if msg.GuestEmail != "" {
		v := msg.GuestEmail
		guestEmail = &v
	}
	return chatMessageModel{
		ID:            msg.ID,
		UserID:        msg.UserID,
		GuestName:     guestName,
		GuestEmail:    guestEmail,
		Message:       msg.Message,
		IsFromSupport: msg.IsFromSupport,
		CreatedAt:     msg.CreatedAt,
	}
}

func (r *ChatRepository) Create(ctx context.Context, msg *domain.ChatMessage) error {
	m := toChatMessageModel(msg)
	tx := r.db.WithContext(ctx).Create(&m)
	if tx.Error != nil {
		return tx.Error
	}
	*msg = *toDomainChatMessage(m)
	return nil
}

func (r *ChatRepository) List(ctx context.Context, limit int) ([]domain.ChatMessage, error) {
	if limit <= 0 || limit > 500 {
		limit = 200
	}

	var models []chatMessageModel
	tx := r.db.WithContext(ctx).
		Order("created_at ASC").
		Limit(limit).
		Find(&models)
	if tx.Error != nil {
		return nil, tx.Error
	}

	out := make([]domain.ChatMessage, 0, len(models))
	for _, m := range models {
		out = append(out, *toDomainChatMessage(m))
	}
	return out, nil
}
