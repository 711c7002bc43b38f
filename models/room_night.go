package models

import (
	"time"
)

// RoomNight is one ledger row per room per night. The unique
// (room_id, night_date) index is what prevents double booking; a commit
// racing for an occupied night fails here and nowhere else.
type RoomNight struct {
	ID        uint `gorm:"primaryKey" json:"id"`
	RoomID    uint `gorm:"column:room_id;uniqueIndex:uniq_room_night" json:"roomId"`
	BookingID uint `gorm:"column:booking_id;index" json:"bookingId"`

	NightDate time.Time `gorm:"column:night_date;type:date;uniqueIndex:uniq_room_night" json:"nightDate"`
}
