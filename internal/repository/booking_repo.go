package repository

import (
	"context"
	"strings"
	"time"

	"gorm.io/gorm"

	"kivulounge/internal/domain"
)

type BookingRepository struct {
	db *gorm.DB
}

func NewBookingRepository(db *gorm.DB) *BookingRepository {
	return &BookingRepository{db: db}
}

type bookingModel struct {
	ID              int64      `gorm:"column:id;primaryKey"`
	RoomID          int64      `gorm:"column:room_id"`
	UserID          int64      `gorm:"column:user_id"`
	BookingType     string     `gorm:"column:booking_type"`
	CheckIn         time.Time  `gorm:"column:check_in"`
	CheckOut        time.Time  `gorm:"column:check_out"`
	GuestName       string     `gorm:"column:guest_name"`
	GuestEmail      string     `gorm:"column:guest_email"`
	GuestPhone      *string    `gorm:"column:guest_phone"`
	SpecialRequests *string    `gorm:"column:special_requests"`
	TotalCost       float64    `gorm:"column:total_cost"`
	Status          string     `gorm:"column:status"`
	CreatedAt       time.Time  `gorm:"column:created_at"`
	UpdatedAt       time.Time  `gorm:"column:updated_at"`
	CancelledAt     *time.Time `gorm:"column:cancelled_at"`
}

func (bookingModel) TableName() string { return "bookings" }

func toDomainBooking(m bookingModel) *domain.Booking {
	var phone, requests string
	if m.GuestPhone != nil {
		phone = *m.GuestPhone
	}
	if m.SpecialRequests != nil {
		requests = *m.SpecialRequests
	}

	return &domain.Booking{
		ID:              m.ID,
		RoomID:          m.RoomID,
		UserID:          m.UserID,
		BookingType:     domain.BookingType(m.BookingType),
		CheckIn:         m.CheckIn,
		CheckOut:        m.CheckOut,
		GuestName:       m.GuestName,
		GuestEmail:      m.GuestEmail,
		GuestPhone:      phone,
		SpecialRequests: requests,
		TotalCost:       m.TotalCost,
		Status:          domain.BookingStatus(m.Status),
		CreatedAt:       m.CreatedAt,
		UpdatedAt:       m.UpdatedAt,
		CancelledAt:     m.CancelledAt,
	}
}

func toBookingModel(b *domain.Booking) bookingModel {
	var phone, requests *string
	if b.GuestPhone != "" {
		v := b.GuestPhone
		phone = &v
	}
	if b.SpecialRequests != "" {
		v := b.SpecialRequests
		requests = &v
	}

	return bookingModel{
		ID:              b.ID,
		RoomID:          b.RoomID,
		UserID:          b.UserID,
		BookingType:     string(b.BookingType),
		CheckIn:         b.CheckIn,
		CheckOut:        b.CheckOut,
		GuestName:       b.GuestName,
		GuestEmail:      b.GuestEmail,
		GuestPhone:      phone,
		SpecialRequests: requests,
		TotalCost:       b.TotalCost,
		Status:          string(b.Status),
		CreatedAt:       b.CreatedAt,
		UpdatedAt:       b.UpdatedAt,
		CancelledAt:     b.CancelledAt,
	}
}

func (r *BookingRepository) Create(ctx context.Context, b *domain.Booking) error {
	m := toBookingModel(b)
	tx := r.db.WithContext(ctx).Create(&m)
	if tx.Error != nil {
		return tx.Error
	}
	*b = *toDomainBooking(m)
	return nil
}

func (r *BookingRepository) GetByID(ctx context.Context, id int64) (*domain.Booking, error) {
	var m bookingModel
	tx := r.db.WithContext(ctx).First(&m, id)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return toDomainBooking(m), nil
}

// CheckAvailability reports whether the room has no live booking overlapping
// [checkIn, checkOut). Cancelled bookings do not block.
func (r *BookingRepository) CheckAvailability(ctx context.Context, roomID int64, checkIn, checkOut time.Time) (bool, error) {
	var cnt int64
	tx := r.db.WithContext(ctx).
		Model(&bookingModel{}).
		Where("room_id = ?", roomID).
		Where("status IN ?", []string{string(domain.BookingPending), string(domain.BookingConfirmed)}).
		Where("check_in < ? AND check_out > ?", checkOut, checkIn).
		Count(&cnt)
	if tx.Error != nil {
		return false, tx.Error
	}
	return cnt == 0, nil
}

// UserBookingRow is a booking joined with the room details the guest
// dashboard shows.
type UserBookingRow struct {
	ID              int64     `gorm:"column:id"`
	BookingType     string    `gorm:"column:booking_type"`
	Status          string    `gorm:"column:status"`
	CheckIn         time.Time `gorm:"column:check_in"`
	CheckOut        time.Time `gorm:"column:check_out"`
	TotalCost       float64   `gorm:"column:total_cost"`
	SpecialRequests *string   `gorm:"column:special_requests"`
	CreatedAt       time.Time `gorm:"column:created_at"`
	RoomID          int64     `gorm:"column:room_id"`
	RoomName        string    `gorm:"column:room_name"`
	RoomCapacity    int       `gorm:"column:room_capacity"`
	RoomImageURL    string    `gorm:"column:room_image_url"`
}

func (r *BookingRepository) GetByUserWithRoom(ctx context.Context, userID int64, limit, offset int) ([]UserBookingRow, error) {
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}

	var rows []UserBookingRow
	tx := r.db.WithContext(ctx).
		Table("bookings").
		Select(`bookings.id, bookings.booking_type, bookings.status,
			bookings.check_in, bookings.check_out, bookings.total_cost,
			bookings.special_requests, bookings.created_at, bookings.room_id,
			rooms.name AS room_name, rooms.capacity AS room_capacity,
			rooms.image_url AS room_image_url`).
		Joins("JOIN rooms ON rooms.id = bookings.room_id").
		Where("bookings.user_id = ?", userID).
		Order("bookings.created_at DESC").
		Limit(limit).
		Offset(offset).
		Scan(&rows)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return rows, nil
}

// AdminBookingRow is a booking joined with its room name for the admin list.
type AdminBookingRow struct {
	ID              int64     `gorm:"column:id"`
	GuestName       string    `gorm:"column:guest_name"`
	GuestEmail      string    `gorm:"column:guest_email"`
	GuestPhone      *string   `gorm:"column:guest_phone"`
	BookingType     string    `gorm:"column:booking_type"`
	Status          string    `gorm:"column:status"`
	CheckIn         time.Time `gorm:"column:check_in"`
	CheckOut        time.Time `gorm:"column:check_out"`
	TotalCost       float64   `gorm:"column:total_cost"`
	SpecialRequests *string   `gorm:"column:special_requests"`
	CreatedAt       time.Time `gorm:"column:created_at"`
	RoomID          int64     `gorm:"column:room_id"`
	RoomName        string    `gorm:"column:room_name"`
}

// ListWithRoom returns all bookings, newest first, optionally filtered by
// status and by a case-insensitive guest name/email search.
func (r *BookingRepository) ListWithRoom(ctx context.Context, status, search string) ([]AdminBookingRow, error) {
	tx := r.db.WithContext(ctx).
		Table("bookings").
		Select(`bookings.id, bookings.guest_name, bookings.guest_email,
			bookings.guest_phone, bookings.booking_type, bookings.status,
			bookings.check_in, bookings.check_out, bookings.total_cost,
			bookings.special_requests, bookings.created_at, bookings.room_id,
			rooms.name AS room_name`).
		Joins("JOIN rooms ON rooms.id = bookings.room_id").
		Order("bookings.created_at DESC")

	if status != "" && status != "all" {
		tx = tx.Where("bookings.status = ?", status)
	}
	if search != "" {
		pattern := "%" + strings.ToLower(search) + "%"
		tx = tx.Where("LOWER(bookings.guest_name) LIKE ? OR LOWER(bookings.guest_email) LIKE ?", pattern, pattern)
	}

	var rows []AdminBookingRow
	if err := tx.Scan(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *BookingRepository) UpdateStatus(ctx context.Context, bookingID int64, status string) error {
	updates := map[string]interface{}{
		"status":     status,
		"updated_at": time.Now(),
	}
	if status == string(domain.BookingCancelled) {
		now := time.Now()
		updates["cancelled_at"] = &now
	}

	tx := r.db.WithContext(ctx).
		Model(&bookingModel{}).
		Where("id = ?", bookingID).
		Updates(updates)
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// BookingStats aggregates the numbers the admin dashboard shows.
type BookingStats struct {
	Total          int64
	Pending        int64
	Confirmed      int64
	Completed      int64
	Cancelled      int64
	Revenue        float64
	TodayCheckIns  int64
	TodayCheckOuts int64
}

func (r *BookingRepository) Stats(ctx context.Context, now time.Time) (BookingStats, error) {
	var stats BookingStats

	counts := map[string]*int64{
		string(domain.BookingPending):   &stats.Pending,
		string(domain.BookingConfirmed): &stats.Confirmed,
		string(domain.BookingCompleted): &stats.Completed,
		string(domain.BookingCancelled): &stats.Cancelled,
	}

	if err := r.db.WithContext(ctx).Model(&bookingModel{}).Count(&stats.Total).Error; err != nil {
		return stats, err
	}
	for status, dst := range counts {
		if err := r.db.WithContext(ctx).
			Model(&bookingModel{}).
			Where("status = ?", status).
			Count(dst).Error; err != nil {
			return stats, err
		}
	}

	// Revenue counts only bookings the lounge will actually host.
	row := r.db.WithContext(ctx).
		Model(&bookingModel{}).
		Select("COALESCE(SUM(total_cost), 0)").
		Where("status IN ?", []string{string(domain.BookingConfirmed), string(domain.BookingCompleted)}).
		Row()
	if err := row.Scan(&stats.Revenue); err != nil {
		return stats, err
	}

	dayStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	dayEnd := dayStart.Add(24 * time.Hour)

	if err := r.db.WithContext(ctx).
		Model(&bookingModel{}).
		Where("status = ?", string(domain.BookingConfirmed)).
		Where("check_in >= ? AND check_in < ?", dayStart, dayEnd).
		Count(&stats.TodayCheckIns).Error; err != nil {
		return stats, err
	}
	if err := r.db.WithContext(ctx).
		Model(&bookingModel{}).
		Where("status = ?", string(domain.BookingConfirmed)).
		Where("check_out >= ? AND check_out < ?", dayStart, dayEnd).
		Count(&stats.TodayCheckOuts).Error; err != nil {
		return stats, err
	}

	return stats, nil
}

// CompleteFinished moves confirmed bookings whose check-out has passed to
// completed. Returns the number of bookings updated.
func (r *BookingRepository) CompleteFinished(ctx context.Context, now time.Time) (int64, error) {
	tx := r.db.WithContext(ctx).
		Model(&bookingModel{}).
		Where("status = ?", string(domain.BookingConfirmed)).
		Where("check_out <= ?", now).
		Updates(map[string]interface{}{
			"status":     string(domain.BookingCompleted),
			"updated_at": now,
		})
	return tx.RowsAffected, tx.Error
}
