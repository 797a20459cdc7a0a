package domain

import "time"

// ChatMessage is one entry in the support chat stream. UserID is nil for
// guests, who identify themselves with a name and email instead.
type ChatMessage struct {
	ID            int64     `json:"id"`
	UserID        *int64    `json:"user_id,omitempty"`
	GuestName     string    `json:"guest_name,omitempty"`
	GuestEmail    string    `json:"guest_email,omitempty"`
	Message       string    `json:"message" gorm:"type:text" validate:"required"`
	IsFromSupport bool      `json:"is_from_support"`
	CreatedAt     time.Time `json:"created_at"`
}
