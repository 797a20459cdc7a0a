package catalog

import (
	"context"

	"kivulounge/internal/domain"
)

type Service struct {
	rooms RoomRepository
	cache RoomCache
}

func NewService(rooms RoomRepository, cache RoomCache) *Service {
	return &Service{rooms: rooms, cache: cache}
}

func (s *Service) ListRooms(ctx context.Context) ([]domain.Room, error) {
	if s.cache != nil {
		if rooms, ok := s.cache.GetRooms(ctx); ok {
			return rooms, nil
		}
	}

	rooms, err := s.rooms.List(ctx)
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		s.cache.SetRooms(ctx, rooms)
	}
	return rooms, nil
}

func (s *Service) GetRoom(ctx context.Context, id int64) (*domain.Room, error) {
	return s.rooms.GetByID(ctx, id)
}
