package models

import (
	"gorm.io/datatypes"
)

// RoomType is stored as a lowercase string. Listings sort
// single < double < deluxe, which is not alphabetical, so ordering goes
// through Rank() instead of ORDER BY room_type.
type RoomType string

const (
	RoomTypeSingle RoomType = "single"
	RoomTypeDouble RoomType = "double"
	RoomTypeDeluxe RoomType = "deluxe"
)

func (t RoomType) Valid() bool {
	switch t {
	case RoomTypeSingle, RoomTypeDouble, RoomTypeDeluxe:
		return true
	}
	return false
}

func (t RoomType) Rank() int {
	switch t {
	case RoomTypeSingle:
		return 0
	case RoomTypeDouble:
		return 1
	case RoomTypeDeluxe:
		return 2
	}
	return 3
}

type Room struct {
	ID      uint `gorm:"primaryKey" json:"id"`
	HotelID uint `gorm:"uniqueIndex:uniq_hotel_room_number" json:"hotelId"`

	RoomNumber string   `gorm:"column:room_number;size:50;uniqueIndex:uniq_hotel_room_number" json:"roomNumber"`
	RoomType   RoomType `gorm:"column:room_type;size:20" json:"roomType"`
	Capacity   int      `json:"capacity"`

	// Catalog extras shown in availability results, e.g. ["wifi","city view"].
	Amenities datatypes.JSON `gorm:"column:amenities" json:"amenities,omitempty"`

	Hotel Hotel `gorm:"foreignKey:HotelID" json:"-"`
}
