package services

import (
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/tarekelbanna92/rental-egypt/models"
)

// RangesOverlap reports whether the half-open intervals [aStart, aEnd) and
// [bStart, bEnd) intersect. Equal boundaries (back-to-back stays) do not
// count as an overlap.
func RangesOverlap(aStart, aEnd, bStart, bEnd time.Time) bool {
	return bStart.Before(aEnd) && bEnd.After(aStart)
}

// HasDateConflict reports whether an APPROVED booking on the listing
// intersects [checkIn, checkOut). PENDING and DECLINED bookings never
// conflict. excludeBookingID, when non-zero, is left out of the scan so a
// booking can be re-checked against everyone but itself at approval time.
//
// Run it on the transaction that will write the status change; the scan is
// only race-safe inside the same tx as the approval.
func HasDateConflict(tx *gorm.DB, listingID uint, checkIn, checkOut time.Time, excludeBookingID uint) (bool, error) {
	q := tx.Model(&models.Booking{}).
		Where("listing_id = ? AND status = ?", listingID, models.BookingStatusApproved).
		Where("check_in < ? AND check_out > ?", checkOut, checkIn)
	if excludeBookingID != 0 {
		q = q.Where("id <> ?", excludeBookingID)
	}

	var count int64
	if err := q.Count(&count).Error; err != nil {
		return false, fmt.Errorf("scan approved bookings: %w", err)
	}
	return count > 0, nil
}
