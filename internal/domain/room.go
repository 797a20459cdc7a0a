package domain

import "time"

// Room is a bookable unit. DailyRate and HourlyRate form its rate card;
// both are advisory prices, the final amount stays negotiable.
type Room struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name" validate:"required"`
	Description string    `json:"description,omitempty" gorm:"type:text"`
	Capacity    int       `json:"capacity" validate:"required,gt=0"`
	DailyRate   float64   `json:"daily_rate" validate:"required,gte=0"`
	HourlyRate  float64   `json:"hourly_rate" validate:"required,gte=0"`
	ImageURL    string    `json:"image_url,omitempty"`
	Amenities   []string  `json:"amenities,omitempty" gorm:"serializer:json"`
	IsAvailable bool      `json:"is_available"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
