package models

type Hotel struct {
	ID   uint   `gorm:"primaryKey" json:"id"`
	Name string `gorm:"size:255;index" json:"name"`

	Rooms []Room `gorm:"foreignKey:HotelID" json:"rooms,omitempty"`
}
