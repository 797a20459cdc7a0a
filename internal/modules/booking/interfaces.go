package booking

import (
	"context"
	"time"

	"kivulounge/internal/domain"
	"kivulounge/internal/repository"
)

// BookingRepository is the store-side surface the submission flow needs.
// CheckAvailability is the availability oracle: a single-shot query, never
// retried here.
type BookingRepository interface {
	CheckAvailability(ctx context.Context, roomID int64, checkIn, checkOut time.Time) (bool, error)
	Create(ctx context.Context, b *domain.Booking) error
	GetByID(ctx context.Context, id int64) (*domain.Booking, error)
	GetByUserWithRoom(ctx context.Context, userID int64, limit, offset int) ([]repository.UserBookingRow, error)
	UpdateStatus(ctx context.Context, bookingID int64, status string) error
}

type RoomRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Room, error)
}

// NotificationSender delivers booking lifecycle mail. Failures are logged
// and never fail the booking itself.
type NotificationSender interface {
	BookingReceived(ctx context.Context, b *domain.Booking, room *domain.Room) error
	BookingCancelled(ctx context.Context, b *domain.Booking, reason string) error
}
