// controllers/booking_controller.go
package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/tarekelbanna92/rental-egypt/config"
	"github.com/tarekelbanna92/rental-egypt/middleware"
	"github.com/tarekelbanna92/rental-egypt/services"
	"github.com/tarekelbanna92/rental-egypt/utils"
)

type BookingController struct {
	BookingSvc *services.BookingService
	Cfg        *config.AppConfig
}

func NewBookingController(svc *services.BookingService, cfg *config.AppConfig) *BookingController {
	return &BookingController{BookingSvc: svc, Cfg: cfg}
}

type BookingRequestPayload struct {
	CheckIn     string `json:"check_in" binding:"required"`
	CheckOut    string `json:"check_out" binding:"required"`
	GuestsCount int    `json:"guests_count"`
	Message     string `json:"message"`
}

func (bc *BookingController) parseDate(value string) (time.Time, bool) {
	t, err := time.Parse(bc.Cfg.DateFormat, value)
	return t, err == nil
}

// RequestBooking handles a guest's date-range request against a listing.
func (bc *BookingController) RequestBooking(c *gin.Context) {
	guestID, ok := middleware.CurrentUserID(c)
	if !ok {
		utils.JSONError(c, http.StatusUnauthorized, "authentication required")
		return
	}
	listingID, ok := paramUint(c, "id")
	if !ok {
		utils.JSONError(c, http.StatusBadRequest, "invalid listing id")
		return
	}

	var payload BookingRequestPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, err.Error())
		return
	}

	checkIn, ok := bc.parseDate(payload.CheckIn)
	if !ok {
		utils.JSONError(c, http.StatusBadRequest, "invalid check_in format")
		return
	}
	checkOut, ok := bc.parseDate(payload.CheckOut)
	if !ok {
		utils.JSONError(c, http.StatusBadRequest, "invalid check_out format")
		return
	}

	booking, err := bc.BookingSvc.RequestBooking(services.BookingRequest{
		ListingID:   listingID,
		GuestID:     guestID,
		CheckIn:     checkIn,
		CheckOut:    checkOut,
		GuestsCount: payload.GuestsCount,
		Message:     payload.Message,
	})
	if err != nil {
		utils.JSONError(c, statusForError(err), err.Error())
		return
	}
	utils.JSONSuccess(c, http.StatusCreated, booking)
}

func (bc *BookingController) Approve(c *gin.Context) {
	hostID, ok := middleware.CurrentUserID(c)
	if !ok {
		utils.JSONError(c, http.StatusUnauthorized, "authentication required")
		return
	}
	bookingID, ok := paramUint(c, "id")
	if !ok {
		utils.JSONError(c, http.StatusBadRequest, "invalid booking id")
		return
	}

	booking, err := bc.BookingSvc.ApproveBooking(bookingID, hostID)
	if err != nil {
		utils.JSONError(c, statusForError(err), err.Error())
		return
	}
	utils.JSONSuccess(c, http.StatusOK, booking)
}

func (bc *BookingController) Decline(c *gin.Context) {
	hostID, ok := middleware.CurrentUserID(c)
	if !ok {
		utils.JSONError(c, http.StatusUnauthorized, "authentication required")
		return
	}
	bookingID, ok := paramUint(c, "id")
	if !ok {
		utils.JSONError(c, http.StatusBadRequest, "invalid booking id")
		return
	}

	booking, err := bc.BookingSvc.DeclineBooking(bookingID, hostID)
	if err != nil {
		utils.JSONError(c, statusForError(err), err.Error())
		return
	}
	utils.JSONSuccess(c, http.StatusOK, booking)
}

// MyBookings lists the caller's own booking requests.
func (bc *BookingController) MyBookings(c *gin.Context) {
	guestID, ok := middleware.CurrentUserID(c)
	if !ok {
		utils.JSONError(c, http.StatusUnauthorized, "authentication required")
		return
	}

	bookings, err := bc.BookingSvc.ListByGuest(guestID)
	if err != nil {
		utils.JSONError(c, statusForError(err), err.Error())
		return
	}
	utils.JSONSuccess(c, http.StatusOK, bookings)
}

// HostBookings lists booking requests across the host's listings.
func (bc *BookingController) HostBookings(c *gin.Context) {
	hostID, ok := middleware.CurrentUserID(c)
	if !ok {
		utils.JSONError(c, http.StatusUnauthorized, "authentication required")
		return
	}

	bookings, err := bc.BookingSvc.ListForHost(hostID)
	if err != nil {
		utils.JSONError(c, statusForError(err), err.Error())
		return
	}
	utils.JSONSuccess(c, http.StatusOK, bookings)
}
