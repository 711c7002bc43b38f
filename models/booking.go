package models

import (
	"time"
)

// Booking is immutable once committed. CheckOut is exclusive: the stay
// occupies the nights in [CheckIn, CheckOut).
type Booking struct {
	ID        uint   `gorm:"primaryKey" json:"id"`
	Reference string `gorm:"size:64;uniqueIndex" json:"reference"`

	HotelID    uint `gorm:"index;column:hotel_id" json:"hotelId"`
	RoomID     uint `gorm:"index;column:room_id" json:"roomId"`
	GuestCount int  `gorm:"column:guest_count" json:"guestCount"`

	CheckIn  time.Time `gorm:"column:check_in;type:date" json:"checkIn"`
	CheckOut time.Time `gorm:"column:check_out;type:date" json:"checkOut"`

	CreatedAt time.Time `json:"createdAt"`

	Hotel  Hotel       `gorm:"foreignKey:HotelID" json:"-"`
	Room   Room        `gorm:"foreignKey:RoomID" json:"-"`
	Nights []RoomNight `gorm:"foreignKey:BookingID" json:"-"`
}
