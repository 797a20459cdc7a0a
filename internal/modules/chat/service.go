package chat

import (
	"context"
	"strings"

	"kivulounge/internal/domain"
)

type Service struct {
	messages ChatRepository
	hub      Broadcaster
}

func NewService(messages ChatRepository, hub Broadcaster) *Service {
	return &Service{messages: messages, hub: hub}
}

// Post persists a chat message and pushes it to connected support staff.
// Authenticated callers are identified by userID; guests must leave a name
// and email so staff can reply.
func (s *Service) Post(ctx context.Context, userID int64, fromSupport bool, req PostMessageRequest) (*domain.ChatMessage, error) {
	msg := &domain.ChatMessage{
		Message:       strings.TrimSpace(req.Message),
		IsFromSupport: fromSupport,
	}

	if userID != 0 {
		msg.UserID = &userID
	} else {
		name := strings.TrimSpace(req.GuestName)
		email := strings.TrimSpace(req.GuestEmail)
		if name == "" || email == "" {
			return nil, ErrGuestIdentityRequired
		}
		msg.GuestName = name
		msg.GuestEmail = email
	}

	if err := s.messages.Create(ctx, msg); err != nil {
		return nil, err
	}

	if s.hub != nil {
		s.hub.Broadcast(msg)
	}
	return msg, nil
}

func (s *Service) History(ctx context.Context, limit int) ([]domain.ChatMessage, error) {
	return s.messages.List(ctx, limit)
}
