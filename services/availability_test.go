package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tarekelbanna92/rental-egypt/models"
)

func TestRangesOverlap(t *testing.T) {
	d := func(value string) time.Time {
		parsed, err := time.Parse("2006-01-02", value)
		require.NoError(t, err)
		return parsed
	}

	cases := []struct {
		name                       string
		aStart, aEnd, bStart, bEnd string
		want                       bool
	}{
		{"disjoint before", "2025-06-01", "2025-06-05", "2025-06-10", "2025-06-15", false},
		{"disjoint after", "2025-06-10", "2025-06-15", "2025-06-01", "2025-06-05", false},
		{"back-to-back checkout on checkin", "2025-06-01", "2025-06-05", "2025-06-05", "2025-06-10", false},
		{"back-to-back other direction", "2025-06-05", "2025-06-10", "2025-06-01", "2025-06-05", false},
		{"partial overlap", "2025-06-01", "2025-06-05", "2025-06-03", "2025-06-07", true},
		{"contained", "2025-06-01", "2025-06-10", "2025-06-03", "2025-06-05", true},
		{"containing", "2025-06-03", "2025-06-05", "2025-06-01", "2025-06-10", true},
		{"identical", "2025-06-01", "2025-06-05", "2025-06-01", "2025-06-05", true},
		{"one night shared", "2025-06-01", "2025-06-05", "2025-06-04", "2025-06-06", true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := RangesOverlap(d(tc.aStart), d(tc.aEnd), d(tc.bStart), d(tc.bEnd))
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestHasDateConflict_OnlyApprovedCounts(t *testing.T) {
	db := newTestDB(t)
	host := createUser(t, db, "host", models.RoleHost)
	guest := createUser(t, db, "guest", models.RoleGuest)
	listing := createListing(t, db, host.ID)

	for _, status := range []string{models.BookingStatusPending, models.BookingStatusDeclined} {
		require.NoError(t, db.Create(&models.Booking{
			ListingID: listing.ID,
			GuestID:   guest.ID,
			CheckIn:   day(t, "2025-06-01"),
			CheckOut:  day(t, "2025-06-10"),
			Status:    status,
		}).Error)
	}

	conflict, err := HasDateConflict(db, listing.ID, day(t, "2025-06-03"), day(t, "2025-06-05"), 0)
	require.NoError(t, err)
	assert.False(t, conflict)
}

func TestHasDateConflict_ExcludesGivenBooking(t *testing.T) {
	db := newTestDB(t)
	host := createUser(t, db, "host", models.RoleHost)
	guest := createUser(t, db, "guest", models.RoleGuest)
	listing := createListing(t, db, host.ID)

	approved := models.Booking{
		ListingID: listing.ID,
		GuestID:   guest.ID,
		CheckIn:   day(t, "2025-06-01"),
		CheckOut:  day(t, "2025-06-10"),
		Status:    models.BookingStatusApproved,
	}
	require.NoError(t, db.Create(&approved).Error)

	conflict, err := HasDateConflict(db, listing.ID, day(t, "2025-06-01"), day(t, "2025-06-10"), 0)
	require.NoError(t, err)
	assert.True(t, conflict)

	conflict, err = HasDateConflict(db, listing.ID, day(t, "2025-06-01"), day(t, "2025-06-10"), approved.ID)
	require.NoError(t, err)
	assert.False(t, conflict, "a booking must not conflict with itself")
}

func TestHasDateConflict_ScopedToListing(t *testing.T) {
	db := newTestDB(t)
	host := createUser(t, db, "host", models.RoleHost)
	guest := createUser(t, db, "guest", models.RoleGuest)
	listingA := createListing(t, db, host.ID)
	listingB := createListing(t, db, host.ID)

	require.NoError(t, db.Create(&models.Booking{
		ListingID: listingA.ID,
		GuestID:   guest.ID,
		CheckIn:   day(t, "2025-06-01"),
		CheckOut:  day(t, "2025-06-10"),
		Status:    models.BookingStatusApproved,
	}).Error)

	conflict, err := HasDateConflict(db, listingB.ID, day(t, "2025-06-01"), day(t, "2025-06-10"), 0)
	require.NoError(t, err)
	assert.False(t, conflict)
}
