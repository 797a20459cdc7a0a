package catalog

import (
	"context"

	"kivulounge/internal/domain"
)

type RoomRepository interface {
	List(ctx context.Context) ([]domain.Room, error)
	GetByID(ctx context.Context, id int64) (*domain.Room, error)
}

// RoomCache holds the room listing between catalog reads. A nil cache (or a
// cache miss) falls through to the repository.
type RoomCache interface {
	GetRooms(ctx context.Context) ([]domain.Room, bool)
	SetRooms(ctx context.Context, rooms []domain.Room)
	Invalidate(ctx context.Context)
}
