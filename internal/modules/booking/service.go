package booking

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5/pgconn"

	"kivulounge/internal/domain"
	"kivulounge/internal/pricing"
)

type Service struct {
	bookings BookingRepository
	rooms    RoomRepository
	notifs   NotificationSender

	// contactPhone is the WhatsApp number anonymous requests are handed to.
	contactPhone string

	// storeTimeout bounds the availability check plus the insert. Zero
	// disables the bound.
	storeTimeout time.Duration
}

func NewService(
	bookings BookingRepository,
	rooms RoomRepository,
	notifs NotificationSender,
	contactPhone string,
	storeTimeout time.Duration,
) *Service {
	return &Service{
		bookings:     bookings,
		rooms:        rooms,
		notifs:       notifs,
		contactPhone: contactPhone,
		storeTimeout: storeTimeout,
	}
}

// Submit runs the booking submission flow: validate, branch on identity,
// check availability, persist with status pending. Anonymous callers are
// handed a pre-filled contact message instead of a persisted record so that
// guests without an account can still express booking intent.
//
// Note on exclusivity: this flow does not itself guarantee the interval
// stays free between the availability check and the insert; that race is
// closed (on PostgreSQL) by the store's no-overbooking constraint.
func (s *Service) Submit(ctx context.Context, identity Identity, req SubmitBookingRequest) (*SubmitResult, error) {
	if err := validateSubmit(req, time.Now()); err != nil {
		return nil, err
	}

	room, err := s.rooms.GetByID(ctx, req.RoomID)
	if err != nil {
		return nil, err
	}

	total := pricing.Total(req.CheckIn, req.CheckOut, req.BookingType, pricing.RateCard{
		DailyRate:  room.DailyRate,
		HourlyRate: room.HourlyRate,
	})

	if identity.Anonymous() {
		msg := ContactMessage(room, req, total)
		return &SubmitResult{
			Outcome:        OutcomeHandedOff,
			ContactMessage: msg,
			ContactURL:     WhatsAppURL(s.contactPhone, msg),
		}, nil
	}

	if s.storeTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.storeTimeout)
		defer cancel()
	}

	// A room taken out of service blocks persisted bookings the same way a
	// taken interval does.
	if !room.IsAvailable {
		return nil, ErrNotAvailable
	}

	ok, err := s.bookings.CheckAvailability(ctx, req.RoomID, req.CheckIn, req.CheckOut)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrAvailabilityCheck, err)
	}
	if !ok {
		return nil, ErrNotAvailable
	}

	b := &domain.Booking{
		RoomID:          req.RoomID,
		UserID:          identity.UserID,
		BookingType:     req.BookingType,
		CheckIn:         req.CheckIn,
		CheckOut:        req.CheckOut,
		GuestName:       req.GuestName,
		GuestEmail:      req.GuestEmail,
		GuestPhone:      req.GuestPhone,
		SpecialRequests: req.SpecialRequests,
		TotalCost:       total,
		Status:          domain.BookingPending,
	}

	if err := s.bookings.Create(ctx, b); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" && pgErr.ConstraintName == "idx_no_overbooking" {
			return nil, ErrNotAvailable
		}
		return nil, fmt.Errorf("%w: %v", ErrPersist, err)
	}

	if s.notifs != nil {
		_ = s.notifs.BookingReceived(ctx, b, room)
	}

	return &SubmitResult{Outcome: OutcomePersisted, Booking: b}, nil
}

func validateSubmit(req SubmitBookingRequest, now time.Time) error {
	if req.CheckIn.IsZero() || req.CheckOut.IsZero() {
		return ErrMissingFields
	}
	if !req.CheckOut.After(req.CheckIn) {
		return ErrMissingFields
	}
	if req.CheckIn.Before(now) {
		return ErrMissingFields
	}
	if strings.TrimSpace(req.GuestName) == "" || strings.TrimSpace(req.GuestEmail) == "" {
		return ErrMissingFields
	}
	return nil
}

func (s *Service) MyBookings(ctx context.Context, userID int64, limit, offset int) ([]BookingDetails, error) {
	rows, err := s.bookings.GetByUserWithRoom(ctx, userID, limit, offset)
	if err != nil {
		return nil, err
	}

	out := make([]BookingDetails, 0, len(rows))
	for _, r := range rows {
		var requests string
		if r.SpecialRequests != nil {
			requests = *r.SpecialRequests
		}
		out = append(out, BookingDetails{
			ID:              r.ID,
			BookingType:     r.BookingType,
			Status:          r.Status,
			CheckIn:         r.CheckIn,
			CheckOut:        r.CheckOut,
			TotalCost:       r.TotalCost,
			SpecialRequests: requests,
			CreatedAt:       r.CreatedAt,
			RoomID:          r.RoomID,
			RoomName:        r.RoomName,
			RoomCapacity:    r.RoomCapacity,
			RoomImageURL:    r.RoomImageURL,
		})
	}
	return out, nil
}

// Cancel lets a guest withdraw their own booking while it is still pending.
// Later states belong to the admin surface.
func (s *Service) Cancel(ctx context.Context, userID, bookingID int64) (*domain.Booking, error) {
	b, err := s.bookings.GetByID(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	if b.UserID != userID {
		return nil, ErrForbidden
	}
	if b.Status != domain.BookingPending {
		return nil, ErrInvalidTransition
	}

	if err := s.bookings.UpdateStatus(ctx, bookingID, string(domain.BookingCancelled)); err != nil {
		return nil, err
	}

	if s.notifs != nil {
		_ = s.notifs.BookingCancelled(ctx, b, "cancelled by guest")
	}

	return s.bookings.GetByID(ctx, bookingID)
}
