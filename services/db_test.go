package services

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"hotel-booking-backend/config"
	"hotel-booking-backend/models"
)

// newTestDB opens a throwaway sqlite database with the production
// schema. A single connection keeps sqlite from returning spurious
// lock errors under the concurrency tests; contention then resolves
// through the unique index exactly as it would on MySQL.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	path := filepath.Join(t.TempDir(), "booking.db")
	db, err := gorm.Open(sqlite.Open(path+"?_busy_timeout=5000"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, config.AutoMigrate(db))
	return db
}

func newBookingService(db *gorm.DB) *BookingService {
	return NewBookingService(db, NewReferenceGenerator("GLA", 5), 30)
}

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// seedHotel creates one hotel with the standard six-room block:
// 101/102 single (cap 1), 201/202 double (cap 2), 301/302 deluxe (cap 4).
func seedHotel(t *testing.T, db *gorm.DB, name string) models.Hotel {
	t.Helper()

	hotel := models.Hotel{Name: name}
	require.NoError(t, db.Create(&hotel).Error)

	rooms := []models.Room{
		{HotelID: hotel.ID, RoomNumber: "101", RoomType: models.RoomTypeSingle, Capacity: 1},
		{HotelID: hotel.ID, RoomNumber: "102", RoomType: models.RoomTypeSingle, Capacity: 1},
		{HotelID: hotel.ID, RoomNumber: "201", RoomType: models.RoomTypeDouble, Capacity: 2},
		{HotelID: hotel.ID, RoomNumber: "202", RoomType: models.RoomTypeDouble, Capacity: 2},
		{HotelID: hotel.ID, RoomNumber: "301", RoomType: models.RoomTypeDeluxe, Capacity: 4},
		{HotelID: hotel.ID, RoomNumber: "302", RoomType: models.RoomTypeDeluxe, Capacity: 4},
	}
	require.NoError(t, db.Create(&rooms).Error)
	return hotel
}
