package services

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"

	"hotel-booking-backend/models"
)

// AdminService holds the testing helpers: idempotent seed and full
// reset. Reset is a wipe, not a booking-lifecycle operation, so the
// allocation invariants do not apply to it.
type AdminService struct {
	DB     *gorm.DB
	RefGen *ReferenceGenerator
}

func NewAdminService(db *gorm.DB, refGen *ReferenceGenerator) *AdminService {
	return &AdminService{DB: db, RefGen: refGen}
}

type ResetResult struct {
	HotelsDeleted     int64 `json:"hotelsDeleted"`
	RoomsDeleted      int64 `json:"roomsDeleted"`
	BookingsDeleted   int64 `json:"bookingsDeleted"`
	RoomNightsDeleted int64 `json:"roomNightsDeleted"`
}

type SeedResult struct {
	Seeded            bool   `json:"seeded"`
	Message           string `json:"message"`
	HotelsCreated     int    `json:"hotelsCreated"`
	RoomsCreated      int    `json:"roomsCreated"`
	BookingsCreated   int    `json:"bookingsCreated"`
	RoomNightsCreated int    `json:"roomNightsCreated"`
}

// Reset deletes everything, children first so FK constraints hold.
// Counts are taken before the wipe so the response reports what changed.
func (s *AdminService) Reset(ctx context.Context) (*ResetResult, error) {
	out := &ResetResult{}

	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&models.RoomNight{}).Count(&out.RoomNightsDeleted).Error; err != nil {
			return err
		}
		if err := tx.Model(&models.Booking{}).Count(&out.BookingsDeleted).Error; err != nil {
			return err
		}
		if err := tx.Model(&models.Room{}).Count(&out.RoomsDeleted).Error; err != nil {
			return err
		}
		if err := tx.Model(&models.Hotel{}).Count(&out.HotelsDeleted).Error; err != nil {
			return err
		}

		for _, stmt := range []string{
			"DELETE FROM room_nights",
			"DELETE FROM bookings",
			"DELETE FROM rooms",
			"DELETE FROM hotels",
		} {
			if err := tx.Exec(stmt).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	log.Printf("admin reset: hotels=%d rooms=%d bookings=%d roomNights=%d",
		out.HotelsDeleted, out.RoomsDeleted, out.BookingsDeleted, out.RoomNightsDeleted)
	return out, nil
}

// Seed loads Glasgow-flavoured sample data: 3 hotels with 6 rooms each
// and one example booking so availability has something to react to.
// Idempotent: skipped when any hotel already exists.
func (s *AdminService) Seed(ctx context.Context) (*SeedResult, error) {
	db := s.DB.WithContext(ctx)

	var hotelCount int64
	if err := db.Model(&models.Hotel{}).Count(&hotelCount).Error; err != nil {
		return nil, err
	}
	if hotelCount > 0 {
		return &SeedResult{Seeded: false, Message: "Database already contains data. Seed skipped."}, nil
	}

	out := &SeedResult{Seeded: true, Message: "Seed completed."}

	err := db.Transaction(func(tx *gorm.DB) error {
		hotels := []models.Hotel{
			{Name: "Grand Central Hotel Glasgow"},
			{Name: "Blythswood Square Hotel"},
			{Name: "Dakota Glasgow"},
		}
		if err := tx.Create(&hotels).Error; err != nil {
			return err
		}
		out.HotelsCreated = len(hotels)

		prefixes := []string{"GC", "BS", "DK"}
		for i := range hotels {
			rooms := seedRooms(hotels[i].ID, prefixes[i])
			if err := tx.Create(&rooms).Error; err != nil {
				return err
			}
			out.RoomsCreated += len(rooms)
		}

		var exampleRoom models.Room
		if err := tx.
			Where("hotel_id = ? AND room_type = ?", hotels[1].ID, models.RoomTypeSingle).
			Order("room_number ASC").
			First(&exampleRoom).Error; err != nil {
			return err
		}

		reference, err := s.RefGen.Generate()
		if err != nil {
			return err
		}

		checkIn := time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC)
		checkOut := time.Date(2026, 2, 3, 0, 0, 0, 0, time.UTC)

		booking := models.Booking{
			Reference:  reference,
			HotelID:    hotels[1].ID,
			RoomID:     exampleRoom.ID,
			GuestCount: 1,
			CheckIn:    checkIn,
			CheckOut:   checkOut,
		}
		if err := tx.Create(&booking).Error; err != nil {
			return err
		}
		out.BookingsCreated = 1

		nights, err := EnumerateNights(checkIn, checkOut)
		if err != nil {
			return err
		}
		for _, night := range nights {
			row := models.RoomNight{RoomID: exampleRoom.ID, BookingID: booking.ID, NightDate: night}
			if err := tx.Create(&row).Error; err != nil {
				return err
			}
			out.RoomNightsCreated++
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	log.Printf("admin seed: hotels=%d rooms=%d bookings=%d roomNights=%d",
		out.HotelsCreated, out.RoomsCreated, out.BookingsCreated, out.RoomNightsCreated)
	return out, nil
}

// seedRooms builds the standard block per hotel: 2 singles (cap 1),
// 2 doubles (cap 2), 2 deluxe (cap 4).
func seedRooms(hotelID uint, prefix string) []models.Room {
	amenities := func(items ...string) datatypes.JSON {
		b, _ := json.Marshal(items)
		return datatypes.JSON(b)
	}
	return []models.Room{
		{HotelID: hotelID, RoomNumber: prefix + "101", RoomType: models.RoomTypeSingle, Capacity: 1, Amenities: amenities("wifi")},
		{HotelID: hotelID, RoomNumber: prefix + "102", RoomType: models.RoomTypeSingle, Capacity: 1, Amenities: amenities("wifi")},
		{HotelID: hotelID, RoomNumber: prefix + "201", RoomType: models.RoomTypeDouble, Capacity: 2, Amenities: amenities("wifi", "tea tray")},
		{HotelID: hotelID, RoomNumber: prefix + "202", RoomType: models.RoomTypeDouble, Capacity: 2, Amenities: amenities("wifi", "tea tray")},
		{HotelID: hotelID, RoomNumber: prefix + "301", RoomType: models.RoomTypeDeluxe, Capacity: 4, Amenities: amenities("wifi", "tea tray", "city view")},
		{HotelID: hotelID, RoomNumber: prefix + "302", RoomType: models.RoomTypeDeluxe, Capacity: 4, Amenities: amenities("wifi", "tea tray", "city view")},
	}
}
