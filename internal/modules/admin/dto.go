package admin

import "time"

type UpdateStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=pending confirmed cancelled completed"`
}

type RoomRequest struct {
	Name        string   `json:"name" validate:"required"`
	Description string   `json:"description"`
	Capacity    int      `json:"capacity" validate:"required,gt=0"`
	DailyRate   float64  `json:"daily_rate" validate:"required,gt=0"`
	HourlyRate  float64  `json:"hourly_rate" validate:"required,gt=0"`
	Amenities   []string `json:"amenities"`
	IsAvailable *bool    `json:"is_available"`
}

// DashboardStats is the admin overview: booking counts by status, revenue
// from confirmed and completed bookings, today's movements, and room totals.
type DashboardStats struct {
	TotalBookings     int64   `json:"total_bookings"`
	PendingBookings   int64   `json:"pending_bookings"`
	ConfirmedBookings int64   `json:"confirmed_bookings"`
	CompletedBookings int64   `json:"completed_bookings"`
	CancelledBookings int64   `json:"cancelled_bookings"`
	Revenue           float64 `json:"revenue"`
	TodayCheckIns     int64   `json:"today_check_ins"`
	TodayCheckOuts    int64   `json:"today_check_outs"`
	TotalRooms        int64   `json:"total_rooms"`
	AvailableRooms    int64   `json:"available_rooms"`
}

type BookingRow struct {
	ID              int64     `json:"id"`
	GuestName       string    `json:"guest_name"`
	GuestEmail      string    `json:"guest_email"`
	GuestPhone      string    `json:"guest_phone,omitempty"`
	BookingType     string    `json:"booking_type"`
	Status          string    `json:"status"`
	CheckIn         time.Time `json:"check_in"`
	CheckOut        time.Time `json:"check_out"`
	TotalCost       float64   `json:"total_cost"`
	SpecialRequests string    `json:"special_requests,omitempty"`
	CreatedAt       time.Time `json:"created_at"`
	RoomID          int64     `json:"room_id"`
	RoomName        string    `json:"room_name"`
}
