package booking

import (
	"time"

	"kivulounge/internal/domain"
)

// Identity is the authenticated caller, or Anonymous when there is none.
// The submission flow branches on it exactly once.
type Identity struct {
	UserID int64
}

var Anonymous = Identity{}

func (i Identity) Anonymous() bool { return i.UserID == 0 }

// SubmitBookingRequest is the transient booking request. The service never
// mutates it: on any rejection the caller's form state stays intact.
type SubmitBookingRequest struct {
	RoomID          int64              `json:"room_id" binding:"required"`
	BookingType     domain.BookingType `json:"booking_type" binding:"required,oneof=daily hourly"`
	CheckIn         time.Time          `json:"check_in"`
	CheckOut        time.Time          `json:"check_out"`
	GuestName       string             `json:"guest_name"`
	GuestEmail      string             `json:"guest_email"`
	GuestPhone      string             `json:"guest_phone"`
	SpecialRequests string             `json:"special_requests"`
}

type Outcome string

const (
	// OutcomePersisted means a pending booking record was written.
	OutcomePersisted Outcome = "persisted"
	// OutcomeHandedOff means the anonymous caller got a pre-filled contact
	// message instead of a persisted record.
	OutcomeHandedOff Outcome = "handed_off"
)

type SubmitResult struct {
	Outcome Outcome

	// Booking is set when Outcome is OutcomePersisted.
	Booking *domain.Booking

	// ContactMessage and ContactURL are set when Outcome is OutcomeHandedOff.
	ContactMessage string
	ContactURL     string
}

// BookingDetails is one row of the guest dashboard.
type BookingDetails struct {
	ID              int64     `json:"id"`
	BookingType     string    `json:"booking_type"`
	Status          string    `json:"status"`
	CheckIn         time.Time `json:"check_in"`
	CheckOut        time.Time `json:"check_out"`
	TotalCost       float64   `json:"total_cost"`
	SpecialRequests string    `json:"special_requests,omitempty"`
	CreatedAt       time.Time `json:"created_at"`

	RoomID       int64  `json:"room_id"`
	RoomName     string `json:"room_name"`
	RoomCapacity int    `json:"room_capacity"`
	RoomImageURL string `json:"room_image_url,omitempty"`
}
