package admin

import (
	"context"
	"time"

	"kivulounge/internal/domain"
	"kivulounge/internal/repository"
)

type BookingRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Booking, error)
	ListWithRoom(ctx context.Context, status, search string) ([]repository.AdminBookingRow, error)
	UpdateStatus(ctx context.Context, bookingID int64, status string) error
	Stats(ctx context.Context, now time.Time) (repository.BookingStats, error)
}

type RoomRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Room, error)
	Create(ctx context.Context, room *domain.Room) error
	Update(ctx context.Context, room *domain.Room) error
	Delete(ctx context.Context, id int64) error
	Counts(ctx context.Context) (total, available int64, err error)
}

// RoomCache is invalidated whenever the admin mutates the room catalog.
type RoomCache interface {
	Invalidate(ctx context.Context)
}

type NotificationSender interface {
	BookingConfirmed(ctx context.Context, b *domain.Booking) error
	BookingCancelled(ctx context.Context, b *domain.Booking, reason string) error
}
