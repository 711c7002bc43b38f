package services

import (
	"context"
	"strings"

	"gorm.io/gorm"

	"hotel-booking-backend/models"
)

// HotelService is the read-only catalog surface. The booking core never
// mutates hotels or rooms.
type HotelService struct {
	DB *gorm.DB
}

func NewHotelService(db *gorm.DB) *HotelService {
	return &HotelService{DB: db}
}

type HotelSummary struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
}

// FindByName does a case-insensitive partial match ordered by name.
// An empty query returns an empty list, not the whole catalog.
func (s *HotelService) FindByName(ctx context.Context, name string) ([]HotelSummary, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return []HotelSummary{}, nil
	}

	var hotels []models.Hotel
	if err := s.DB.WithContext(ctx).
		Where("LOWER(name) LIKE ?", "%"+strings.ToLower(name)+"%").
		Order("name ASC").
		Find(&hotels).Error; err != nil {
		return nil, err
	}

	out := make([]HotelSummary, 0, len(hotels))
	for _, h := range hotels {
		out = append(out, HotelSummary{ID: h.ID, Name: h.Name})
	}
	return out, nil
}
