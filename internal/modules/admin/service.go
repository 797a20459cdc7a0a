package admin

import (
	"context"
	"encoding/csv"
	"io"
	"strconv"
	"time"

	"kivulounge/internal/domain"
)

type Service struct {
	bookings BookingRepository
	rooms    RoomRepository
	cache    RoomCache
	notifs   NotificationSender
}

func NewService(bookings BookingRepository, rooms RoomRepository, cache RoomCache, notifs NotificationSender) *Service {
	return &Service{bookings: bookings, rooms: rooms, cache: cache, notifs: notifs}
}

func (s *Service) ListBookings(ctx context.Context, status, search string) ([]BookingRow, error) {
	rows, err := s.bookings.ListWithRoom(ctx, status, search)
	if err != nil {
		return nil, err
	}

	out := make([]BookingRow, 0, len(rows))
	for _, r := range rows {
		var phone, requests string
		if r.GuestPhone != nil {
			phone = *r.GuestPhone
		}
		if r.SpecialRequests != nil {
			requests = *r.SpecialRequests
		}
		out = append(out, BookingRow{
			ID:              r.ID,
			GuestName:       r.GuestName,
			GuestEmail:      r.GuestEmail,
			GuestPhone:      phone,
			BookingType:     r.BookingType,
			Status:          r.Status,
			CheckIn:         r.CheckIn,
			CheckOut:        r.CheckOut,
			TotalCost:       r.TotalCost,
			SpecialRequests: requests,
			CreatedAt:       r.CreatedAt,
			RoomID:          r.RoomID,
			RoomName:        r.RoomName,
		})
	}
	return out, nil
}

// UpdateBookingStatus moves a booking along its lifecycle. The transition
// table is the single authority: anything it does not allow is rejected, so
// statuses only ever move forward.
func (s *Service) UpdateBookingStatus(ctx context.Context, bookingID int64, status domain.BookingStatus) (*domain.Booking, error) {
	b, err := s.bookings.GetByID(ctx, bookingID)
	if err != nil {
		return nil, err
	}

	if !b.Status.CanTransitionTo(status) {
		return nil, ErrInvalidTransition
	}

	if err := s.bookings.UpdateStatus(ctx, bookingID, string(status)); err != nil {
		return nil, err
	}

	updated, err := s.bookings.GetByID(ctx, bookingID)
	if err != nil {
		return nil, err
	}

	if s.notifs != nil {
		switch status {
		case domain.BookingConfirmed:
			_ = s.notifs.BookingConfirmed(ctx, updated)
		case domain.BookingCancelled:
			_ = s.notifs.BookingCancelled(ctx, updated, "cancelled by staff")
		}
	}

	return updated, nil
}

func (s *Service) Stats(ctx context.Context) (*DashboardStats, error) {
	bookingStats, err := s.bookings.Stats(ctx, time.Now())
	if err != nil {
		return nil, err
	}

	totalRooms, availableRooms, err := s.rooms.Counts(ctx)
	if err != nil {
		return nil, err
	}

	return &DashboardStats{
		TotalBookings:     bookingStats.Total,
		PendingBookings:   bookingStats.Pending,
		ConfirmedBookings: bookingStats.Confirmed,
		CompletedBookings: bookingStats.Completed,
		CancelledBookings: bookingStats.Cancelled,
		Revenue:           bookingStats.Revenue,
		TodayCheckIns:     bookingStats.TodayCheckIns,
		TodayCheckOuts:    bookingStats.TodayCheckOuts,
		TotalRooms:        totalRooms,
		AvailableRooms:    availableRooms,
	}, nil
}

var exportHeader = []string{
	"Guest Name", "Email", "Phone", "Room", "Check-in", "Check-out",
	"Status", "Total Cost", "Booking Type",
}

// ExportCSV streams the current booking list (with the active filters) as a
// CSV download.
func (s *Service) ExportCSV(ctx context.Context, w io.Writer, status, search string) error {
	rows, err := s.ListBookings(ctx, status, search)
	if err != nil {
		return err
	}

	cw := csv.NewWriter(w)
	if err := cw.Write(exportHeader); err != nil {
		return err
	}

	for _, r := range rows {
		record := []string{
			r.GuestName,
			r.GuestEmail,
			r.GuestPhone,
			r.RoomName,
			r.CheckIn.Format("2006-01-02"),
			r.CheckOut.Format("2006-01-02"),
			r.Status,
			strconv.FormatFloat(r.TotalCost, 'f', 2, 64),
			r.BookingType,
		}
		if err := cw.Write(record); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}

func (s *Service) CreateRoom(ctx context.Context, req RoomRequest) (*domain.Room, error) {
	room := &domain.Room{
		Name:        req.Name,
		Description: req.Description,
		Capacity:    req.Capacity,
		DailyRate:   req.DailyRate,
		HourlyRate:  req.HourlyRate,
		Amenities:   req.Amenities,
		IsAvailable: true,
	}
	if req.IsAvailable != nil {
		room.IsAvailable = *req.IsAvailable
	}

	if err := s.rooms.Create(ctx, room); err != nil {
		return nil, err
	}

	s.invalidateCatalog(ctx)
	return room, nil
}

func (s *Service) UpdateRoom(ctx context.Context, id int64, req RoomRequest) (*domain.Room, error) {
	room, err := s.rooms.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	room.Name = req.Name
	room.Description = req.Description
	room.Capacity = req.Capacity
	room.DailyRate = req.DailyRate
	room.HourlyRate = req.HourlyRate
	room.Amenities = req.Amenities
	if req.IsAvailable != nil {
		room.IsAvailable = *req.IsAvailable
	}

	if err := s.rooms.Update(ctx, room); err != nil {
		return nil, err
	}

	s.invalidateCatalog(ctx)
	return room, nil
}

func (s *Service) DeleteRoom(ctx context.Context, id int64) error {
	if err := s.rooms.Delete(ctx, id); err != nil {
		return err
	}
	s.invalidateCatalog(ctx)
	return nil
}

func (s *Service) invalidateCatalog(ctx context.Context) {
	if s.cache != nil {
		s.cache.Invalidate(ctx)
	}
}
