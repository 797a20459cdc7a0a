package chat

import (
	"context"

	"kivulounge/internal/domain"
)

type ChatRepository interface {
	Create(ctx context.Context, msg *domain.ChatMessage) error
	List(ctx context.Context, limit int) ([]domain.ChatMessage, error)
}

// Broadcaster is what the service needs from the hub.
type Broadcaster interface {
	Broadcast(message interface{})
}
