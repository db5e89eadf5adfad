package models

import (
	"time"

	"gorm.io/gorm"
)

const (
	BookingStatusPending  = "PENDING"
	BookingStatusApproved = "APPROVED"
	BookingStatusDeclined = "DECLINED"
)

// Booking is a guest's date-range request against a listing. Intervals are
// half-open [check_in, check_out): a check-out on another booking's check-in
// day is not an overlap.
type Booking struct {
	ID        uint `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	ListingID     uint      `gorm:"index;column:listing_id" json:"listing_id"`
	GuestID       uint      `gorm:"index;column:guest_id" json:"guest_id"`
	ReferenceCode string    `gorm:"column:reference_code;size:64" json:"reference_code,omitempty"`
	CheckIn       time.Time `gorm:"column:check_in" json:"check_in"`
	CheckOut      time.Time `gorm:"column:check_out" json:"check_out"`
	GuestsCount   int       `gorm:"column:guests_count;default:1" json:"guests_count"`
	Message       string    `gorm:"type:text" json:"message,omitempty"`
	Status        string    `gorm:"column:status;size:10;index" json:"status"`

	Listing Listing `gorm:"foreignKey:ListingID" json:"listing,omitempty"`
	Guest   User    `gorm:"foreignKey:GuestID" json:"guest,omitempty"`
}
