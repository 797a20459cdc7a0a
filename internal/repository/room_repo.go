package repository

import (
	"context"
	"encoding/json"
	"time"

	"gorm.io/gorm"

	"kivulounge/internal/domain"
)

type RoomRepository struct {
	db *gorm.DB
}

func NewRoomRepository(db *gorm.DB) *RoomRepository {
	return &RoomRepository{db: db}
}

type roomModel struct {
	ID          int64     `gorm:"column:id;primaryKey"`
	Name        string    `gorm:"column:name"`
	Description *string   `gorm:"column:description"`
	Capacity    int       `gorm:"column:capacity"`
	DailyRate   float64   `gorm:"column:daily_rate"`
	HourlyRate  float64   `gorm:"column:hourly_rate"`
	ImageURL    *string   `gorm:"column:image_url"`
	Amenities   *string   `gorm:"column:amenities"`
	IsAvailable bool      `gorm:"column:is_available"`
	CreatedAt   time.Time `gorm:"column:created_at"`
	UpdatedAt   time.Time `gorm:"column:updated_at"`
}

func (roomModel) TableName() string { return "rooms" }

func toDomainRoom(m roomModel) *domain.Room {
	var description, imageURL string
	if m.Description != nil {
		description = *m.Description
	}
	if m.ImageURL != nil {
		imageURL = *m.ImageURL
	}

	var amenities []string
	if m.Amenities != nil && *m.Amenities != "" {
		// Stored as a JSON array; a malformed value degrades to no amenities.
		_ = json.Unmarshal([]byte(*m.Amenities), &amenities)
	}

	return &domain.Room{
		ID:          m.ID,
		Name:        m.Name,
		Description: description,
		Capacity:    m.Capacity,
		DailyRate:   m.DailyRate,
		HourlyRate:  m.HourlyRate,
		ImageURL:    imageURL,
		Amenities:   amenities,
		IsAvailable: m.IsAvailable,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}

func toRoomModel(r *domain.Room) roomModel {
	var description, imageURL, amenities *string
	if r.Description != "" {
		v := r.Description
		description = &v
	}
	if r.ImageURL != "" {
		v := r.ImageURL
		imageURL = &v
	}
	if len(r.Amenities) > 0 {
		raw, err := json.Marshal(r.Amenities)
		if err == nil {
			v := string(raw)
			amenities = &v
		}
	}

	return roomModel{
		ID:          r.ID,
		Name:        r.Name,
		Description: description,
		Capacity:    r.Capacity,
		DailyRate:   r.DailyRate,
		HourlyRate:  r.HourlyRate,
		ImageURL:    imageURL,
		Amenities:   amenities,
		IsAvailable: r.IsAvailable,
		CreatedAt:   r.CreatedAt,
		UpdatedAt:   r.UpdatedAt,
	}
}

func (r *RoomRepository) List(ctx context.Context) ([]domain.Room, error) {
	var models []roomModel
	tx := r.db.WithContext(ctx).Order("name").Find(&models)
	if tx.Error != nil {
		return nil, tx.Error
	}

	rooms := make([]domain.Room, 0, len(models))
	for _, m := range models {
		rooms = append(rooms, *toDomainRoom(m))
	}
	return rooms, nil
}

func (r *RoomRepository) GetByID(ctx context.Context, id int64) (*domain.Room, error) {
	var m roomModel
	tx := r.db.WithContext(ctx).First(&m, id)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return toDomainRoom(m), nil
}

func (r *RoomRepository) Create(ctx context.Context, room *domain.Room) error {
	m := toRoomModel(room)
	tx := r.db.WithContext(ctx).Create(&m)
	if tx.Error != nil {
		return tx.Error
	}
	*room = *toDomainRoom(m)
	return nil
}

func (r *RoomRepository) Update(ctx context.Context, room *domain.Room) error {
	m := toRoomModel(room)
	m.UpdatedAt = time.Now()
	tx := r.db.WithContext(ctx).
		Model(&roomModel{}).
		Where("id = ?", room.ID).
		Select("name", "description", "capacity", "daily_rate", "hourly_rate", "amenities", "is_available", "updated_at").
		Updates(&m)
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *RoomRepository) Delete(ctx context.Context, id int64) error {
	tx := r.db.WithContext(ctx).Delete(&roomModel{}, id)
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *RoomRepository) UpdateImageURL(ctx context.Context, id int64, imageURL string) error {
	tx := r.db.WithContext(ctx).
		Model(&roomModel{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"image_url":  imageURL,
			"updated_at": time.Now(),
		})
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *RoomRepository) Counts(ctx context.Context) (total, available int64, err error) {
	if err = r.db.WithContext(ctx).Model(&roomModel{}).Count(&total).Error; err != nil {
		return 0, 0, err
	}
	if err = r.db.WithContext(ctx).Model(&roomModel{}).Where("is_available = ?", true).Count(&available).Error; err != nil {
		return 0, 0, err
	}
	return total, available, nil
}
