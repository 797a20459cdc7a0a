package domain

import "time"

type BookingType string

const (
	BookingDaily  BookingType = "daily"
	BookingHourly BookingType = "hourly"
)

type BookingStatus string

const (
	BookingPending   BookingStatus = "pending"
	BookingConfirmed BookingStatus = "confirmed"
	BookingCancelled BookingStatus = "cancelled"
	BookingCompleted BookingStatus = "completed"
)

// allowedTransitions encodes the monotonic booking lifecycle:
// pending -> confirmed -> completed, or pending -> cancelled (terminal).
// Transitions are never reversed.
var allowedTransitions = map[BookingStatus][]BookingStatus{
	BookingPending:   {BookingConfirmed, BookingCancelled},
	BookingConfirmed: {BookingCompleted},
}

func (s BookingStatus) CanTransitionTo(next BookingStatus) bool {
	for _, allowed := range allowedTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

type Booking struct {
	ID              int64         `json:"id"`
	RoomID          int64         `json:"room_id" validate:"required"`
	UserID          int64         `json:"user_id" validate:"required"`
	BookingType     BookingType   `json:"booking_type" validate:"required"`
	CheckIn         time.Time     `json:"check_in" validate:"required"`
	CheckOut        time.Time     `json:"check_out" validate:"required"`
	GuestName       string        `json:"guest_name" validate:"required"`
	GuestEmail      string        `json:"guest_email" validate:"required,email"`
	GuestPhone      string        `json:"guest_phone,omitempty"`
	SpecialRequests string        `json:"special_requests,omitempty" gorm:"type:text"`
	TotalCost       float64       `json:"total_cost" validate:"gte=0"`
	Status          BookingStatus `json:"status"`
	CreatedAt       time.Time     `json:"created_at"`
	UpdatedAt       time.Time     `json:"updated_at"`
	CancelledAt     *time.Time    `json:"cancelled_at,omitempty"`

	Room *Room `json:"room,omitempty" gorm:"foreignKey:RoomID"`
	User *User `json:"user,omitempty" gorm:"foreignKey:UserID"`
}
