// services/booking_service.go
package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/tarekelbanna92/rental-egypt/models"
)

// BookingService owns the booking lifecycle: PENDING on request,
// host-approved to APPROVED or DECLINED, both terminal.
type BookingService struct {
	DB *gorm.DB
}

func NewBookingService(db *gorm.DB) *BookingService {
	return &BookingService{DB: db}
}

type BookingRequest struct {
	ListingID   uint
	GuestID     uint
	CheckIn     time.Time
	CheckOut    time.Time
	GuestsCount int
	Message     string
}

// lockForUpdate takes a row lock so the approval re-check and the status
// write happen as one read-modify-write. sqlite (tests) has no
// SELECT ... FOR UPDATE; its transactions are exclusive anyway.
func lockForUpdate(tx *gorm.DB) *gorm.DB {
	if tx.Dialector.Name() == "sqlite" {
		return tx
	}
	return tx.Clauses(clause.Locking{Strength: "UPDATE"})
}

// RequestBooking validates the range, rejects ranges taken by an APPROVED
// booking and persists a PENDING booking. PENDING bookings never block each
// other, so overlapping requests may coexist until a host approves one.
// The listing's own host is not special-cased and may book their listing.
func (s *BookingService) RequestBooking(req BookingRequest) (*models.Booking, error) {
	if !req.CheckIn.Before(req.CheckOut) {
		return nil, ErrInvalidRange
	}
	if req.GuestsCount <= 0 {
		req.GuestsCount = 1
	}

	var listing models.Listing
	if err := s.DB.First(&listing, req.ListingID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrListingNotFound
		}
		return nil, fmt.Errorf("load listing: %w", err)
	}

	conflict, err := HasDateConflict(s.DB, req.ListingID, req.CheckIn, req.CheckOut, 0)
	if err != nil {
		return nil, err
	}
	if conflict {
		return nil, ErrDatesUnavailable
	}

	bk := &models.Booking{
		ListingID:     req.ListingID,
		GuestID:       req.GuestID,
		ReferenceCode: uuid.NewString(),
		CheckIn:       req.CheckIn,
		CheckOut:      req.CheckOut,
		GuestsCount:   req.GuestsCount,
		Message:       req.Message,
		Status:        models.BookingStatusPending,
	}
	if err := s.DB.Create(bk).Error; err != nil {
		return nil, fmt.Errorf("create booking: %w", err)
	}
	return bk, nil
}

// ApproveBooking moves a PENDING booking to APPROVED on behalf of the
// listing's host. The availability scan runs again inside the transaction,
// excluding the booking itself, because another overlapping request may have
// been approved since the guest asked: first approved wins. A conflict
// leaves the booking PENDING; it is never auto-declined.
func (s *BookingService) ApproveBooking(bookingID, hostID uint) (*models.Booking, error) {
	var booking models.Booking

	txErr := s.DB.Transaction(func(tx *gorm.DB) error {
		if err := lockForUpdate(tx).First(&booking, bookingID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrBookingNotFound
			}
			return fmt.Errorf("load booking: %w", err)
		}

		// The ownership load takes the listing row lock too: approvals of
		// different bookings on the same listing serialize there, so the
		// availability scan below always sees the committed winner.
		if _, err := RequireListingOwner(lockForUpdate(tx), booking.ListingID, hostID); err != nil {
			return err
		}

		if booking.Status != models.BookingStatusPending {
			return ErrBookingNotPending
		}

		conflict, err := HasDateConflict(tx, booking.ListingID, booking.CheckIn, booking.CheckOut, booking.ID)
		if err != nil {
			return err
		}
		if conflict {
			return ErrDatesUnavailable
		}

		if err := tx.Model(&booking).Update("status", models.BookingStatusApproved).Error; err != nil {
			return fmt.Errorf("update booking status: %w", err)
		}
		booking.Status = models.BookingStatusApproved
		return nil
	})
	if txErr != nil {
		return nil, txErr
	}
	return &booking, nil
}

// DeclineBooking moves a PENDING booking to DECLINED. No availability check:
// the owning host may decline any pending request unconditionally.
func (s *BookingService) DeclineBooking(bookingID, hostID uint) (*models.Booking, error) {
	var booking models.Booking

	txErr := s.DB.Transaction(func(tx *gorm.DB) error {
		if err := lockForUpdate(tx).First(&booking, bookingID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrBookingNotFound
			}
			return fmt.Errorf("load booking: %w", err)
		}

		if _, err := RequireListingOwner(tx, booking.ListingID, hostID); err != nil {
			return err
		}

		if booking.Status != models.BookingStatusPending {
			return ErrBookingNotPending
		}

		if err := tx.Model(&booking).Update("status", models.BookingStatusDeclined).Error; err != nil {
			return fmt.Errorf("update booking status: %w", err)
		}
		booking.Status = models.BookingStatusDeclined
		return nil
	})
	if txErr != nil {
		return nil, txErr
	}
	return &booking, nil
}

// ListByGuest returns the guest's own bookings, newest first.
func (s *BookingService) ListByGuest(guestID uint) ([]models.Booking, error) {
	var list []models.Booking
	if err := s.DB.
		Preload("Listing").
		Where("guest_id = ?", guestID).
		Order("created_at DESC").
		Find(&list).Error; err != nil {
		return nil, fmt.Errorf("list guest bookings: %w", err)
	}
	return list, nil
}

// ListForHost returns bookings across all listings owned by the host.
func (s *BookingService) ListForHost(hostID uint) ([]models.Booking, error) {
	var list []models.Booking
	if err := s.DB.
		Joins("JOIN listings ON listings.id = bookings.listing_id").
		Where("listings.host_id = ?", hostID).
		Preload("Listing").
		Preload("Guest").
		Order("bookings.created_at DESC").
		Find(&list).Error; err != nil {
		return nil, fmt.Errorf("list host bookings: %w", err)
	}
	return list, nil
}
