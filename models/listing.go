package models

import (
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type Listing struct {
	gorm.Model

	HostID        uint    `gorm:"index;column:host_id" json:"host_id"`
	Title         string  `gorm:"size:200" json:"title"`
	Description   string  `gorm:"type:text" json:"description"`
	City          string  `gorm:"size:100;index" json:"city"`
	Address       string  `gorm:"size:200" json:"address"`
	PricePerNight float64 `gorm:"column:price_per_night" json:"price_per_night"`
	MaxGuests     int     `gorm:"column:max_guests;default:1" json:"max_guests"`

	Amenities datatypes.JSON `gorm:"column:amenities" json:"amenities,omitempty"`

	Host     User           `gorm:"foreignKey:HostID" json:"host,omitempty"`
	Images   []ListingImage `gorm:"foreignKey:ListingID;constraint:OnDelete:CASCADE" json:"images"`
	Bookings []Booking      `gorm:"foreignKey:ListingID;constraint:OnDelete:CASCADE" json:"bookings,omitempty"`
}
