// services/booking_service.go
package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sort"
	"strings"
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"

	"hotel-booking-backend/models"
	"hotel-booking-backend/utils"
)

// BookingService owns the allocation core: availability reads, room
// selection, and the transactional commit of a booking plus its
// room-night ledger rows.
//
// Selection is deliberately optimistic. The availability check at
// selection time is advisory only; the unique (room_id, night_date)
// index is the actual arbiter, and losing the race between selection
// and commit surfaces as ErrBookingConflict, not corruption.
type BookingService struct {
	DB        *gorm.DB
	RefGen    *ReferenceGenerator
	MaxNights int
}

func NewBookingService(db *gorm.DB, refGen *ReferenceGenerator, maxNights int) *BookingService {
	if maxNights <= 0 {
		maxNights = 30
	}
	return &BookingService{DB: db, RefGen: refGen, MaxNights: maxNights}
}

// ---------------------------
// DTOs
// ---------------------------

type AvailableRoom struct {
	ID         uint            `json:"id"`
	RoomNumber string          `json:"roomNumber"`
	RoomType   models.RoomType `json:"roomType"`
	Capacity   int             `json:"capacity"`
	Amenities  datatypes.JSON  `json:"amenities,omitempty"`
}

type AvailabilityResult struct {
	HotelID  uint            `json:"hotelId"`
	CheckIn  string          `json:"checkIn"`
	CheckOut string          `json:"checkOut"`
	Guests   int             `json:"guests"`
	Rooms    []AvailableRoom `json:"rooms"`
}

type BookingRequest struct {
	HotelID  uint
	RoomType models.RoomType
	CheckIn  time.Time
	CheckOut time.Time
	Guests   int
}

type BookingDetails struct {
	Reference    string          `json:"reference"`
	HotelID      uint            `json:"hotelId"`
	HotelName    string          `json:"hotelName"`
	RoomID       uint            `json:"roomId"`
	RoomNumber   string          `json:"roomNumber"`
	RoomType     models.RoomType `json:"roomType"`
	RoomCapacity int             `json:"roomCapacity"`
	GuestCount   int             `json:"guestCount"`
	CheckIn      string          `json:"checkIn"`
	CheckOut     string          `json:"checkOut"`
	CreatedUtc   time.Time       `json:"createdUtc"`
}

// ---------------------------
// Availability
// ---------------------------

// GetAvailability lists rooms of a hotel with capacity >= guests and no
// ledger row on any night in [checkIn, checkOut). Point-in-time view:
// a listed room can still lose a race to a concurrent booking.
func (s *BookingService) GetAvailability(ctx context.Context, hotelID uint, checkIn, checkOut time.Time, guests int) (*AvailabilityResult, error) {
	if err := ValidateStayDates(checkIn, checkOut); err != nil {
		return nil, err
	}
	if err := ValidateGuests(guests); err != nil {
		return nil, err
	}

	db := s.DB.WithContext(ctx)

	var hotelCount int64
	if err := db.Model(&models.Hotel{}).Where("id = ?", hotelID).Count(&hotelCount).Error; err != nil {
		return nil, err
	}
	if hotelCount == 0 {
		return nil, ErrHotelNotFound
	}

	occupied := db.Model(&models.RoomNight{}).
		Select("room_id").
		Where("night_date >= ? AND night_date < ?", checkIn, checkOut)

	var rooms []models.Room
	if err := db.
		Where("hotel_id = ? AND capacity >= ?", hotelID, guests).
		Where("id NOT IN (?)", occupied).
		Order("room_number ASC").
		Find(&rooms).Error; err != nil {
		return nil, err
	}

	// Listing order is room type rank then room number. room_type is a
	// string column, so a plain ORDER BY would put deluxe before single.
	sort.SliceStable(rooms, func(i, j int) bool {
		return rooms[i].RoomType.Rank() < rooms[j].RoomType.Rank()
	})

	out := make([]AvailableRoom, 0, len(rooms))
	for _, r := range rooms {
		out = append(out, AvailableRoom{
			ID:         r.ID,
			RoomNumber: r.RoomNumber,
			RoomType:   r.RoomType,
			Capacity:   r.Capacity,
			Amenities:  r.Amenities,
		})
	}

	return &AvailabilityResult{
		HotelID:  hotelID,
		CheckIn:  utils.FormatDate(checkIn),
		CheckOut: utils.FormatDate(checkOut),
		Guests:   guests,
		Rooms:    out,
	}, nil
}

// ---------------------------
// Create booking
// ---------------------------

// CreateBooking validates the request, resolves the hotel, selects a
// room, issues a reference and commits the booking with its full night
// set in one transaction. On success it returns the assigned reference.
func (s *BookingService) CreateBooking(ctx context.Context, req BookingRequest) (string, error) {
	if err := ValidateStayDates(req.CheckIn, req.CheckOut); err != nil {
		return "", err
	}
	if err := ValidateGuests(req.Guests); err != nil {
		return "", err
	}
	if err := ValidateMaxStayLength(req.CheckIn, req.CheckOut, s.MaxNights); err != nil {
		return "", err
	}
	if !req.RoomType.Valid() {
		return "", &ValidationError{Msg: fmt.Sprintf("unknown room type %q", string(req.RoomType))}
	}

	db := s.DB.WithContext(ctx)

	var hotel models.Hotel
	if err := db.First(&hotel, req.HotelID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", ErrHotelNotFound
		}
		return "", err
	}

	log.Printf("booking attempt hotel=%d type=%s checkIn=%s checkOut=%s guests=%d",
		req.HotelID, req.RoomType, utils.FormatDate(req.CheckIn), utils.FormatDate(req.CheckOut), req.Guests)

	room, err := s.findFirstAvailableRoom(ctx, req)
	if err != nil {
		return "", err
	}
	if room == nil {
		return "", ErrNoRoomAvailable
	}

	reference, err := s.RefGen.UniqueReference(ctx, s.DB)
	if err != nil {
		return "", err
	}

	if err := s.commitBooking(ctx, req, room, reference); err != nil {
		return "", err
	}

	log.Printf("booking created reference=%s room=%d", reference, room.ID)
	return reference, nil
}

// findFirstAvailableRoom picks the lowest-numbered room of the requested
// type with enough capacity and no ledger overlap. Returning nil,nil
// means no candidate; the caller turns that into ErrNoRoomAvailable.
func (s *BookingService) findFirstAvailableRoom(ctx context.Context, req BookingRequest) (*models.Room, error) {
	db := s.DB.WithContext(ctx)

	occupied := db.Model(&models.RoomNight{}).
		Select("room_id").
		Where("night_date >= ? AND night_date < ?", req.CheckIn, req.CheckOut)

	var room models.Room
	err := db.
		Where("hotel_id = ? AND room_type = ? AND capacity >= ?", req.HotelID, req.RoomType, req.Guests).
		Where("id NOT IN (?)", occupied).
		Order("room_number ASC").
		First(&room).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &room, nil
}

// commitBooking inserts the booking plus one room_nights row per night
// in a single transaction. A uniqueness rejection means a concurrent
// transaction committed an overlapping night first: the whole insert is
// rolled back (no partial booking or ledger rows survive) and the
// caller gets ErrBookingConflict.
func (s *BookingService) commitBooking(ctx context.Context, req BookingRequest, room *models.Room, reference string) error {
	nights, err := EnumerateNights(req.CheckIn, req.CheckOut)
	if err != nil {
		return err
	}

	txErr := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		booking := models.Booking{
			Reference:  reference,
			HotelID:    req.HotelID,
			RoomID:     room.ID,
			GuestCount: req.Guests,
			CheckIn:    req.CheckIn,
			CheckOut:   req.CheckOut,
		}
		if err := tx.Create(&booking).Error; err != nil {
			return err
		}

		rows := make([]models.RoomNight, 0, len(nights))
		for _, night := range nights {
			rows = append(rows, models.RoomNight{
				RoomID:    room.ID,
				BookingID: booking.ID,
				NightDate: night,
			})
		}
		return tx.Create(&rows).Error
	})

	if txErr == nil {
		return nil
	}
	if IsUniqueViolation(txErr) {
		log.Printf("booking conflict reference=%s room=%d: %v", reference, room.ID, txErr)
		return ErrBookingConflict
	}
	return txErr
}

// ---------------------------
// Lookup
// ---------------------------

// GetBookingByReference returns the full booking detail or
// ErrBookingNotFound. Pure read.
func (s *BookingService) GetBookingByReference(ctx context.Context, reference string) (*BookingDetails, error) {
	reference = strings.TrimSpace(reference)
	if reference == "" {
		return nil, ErrBookingNotFound
	}

	var booking models.Booking
	err := s.DB.WithContext(ctx).
		Preload("Hotel").
		Preload("Room").
		Where("reference = ?", reference).
		First(&booking).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrBookingNotFound
	}
	if err != nil {
		return nil, err
	}

	return &BookingDetails{
		Reference:    booking.Reference,
		HotelID:      booking.HotelID,
		HotelName:    booking.Hotel.Name,
		RoomID:       booking.RoomID,
		RoomNumber:   booking.Room.RoomNumber,
		RoomType:     booking.Room.RoomType,
		RoomCapacity: booking.Room.Capacity,
		GuestCount:   booking.GuestCount,
		CheckIn:      utils.FormatDate(booking.CheckIn),
		CheckOut:     utils.FormatDate(booking.CheckOut),
		CreatedUtc:   booking.CreatedAt.UTC(),
	}, nil
}
