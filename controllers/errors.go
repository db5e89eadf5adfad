package controllers

import (
	"errors"
	"net/http"

	"github.com/tarekelbanna92/rental-egypt/services"
)

// statusForError maps service sentinels onto HTTP statuses. Unrecognized
// errors are internal.
func statusForError(err error) int {
	switch {
	case errors.Is(err, services.ErrUserNotFound),
		errors.Is(err, services.ErrListingNotFound),
		errors.Is(err, services.ErrBookingNotFound),
		errors.Is(err, services.ErrImageNotFound):
		return http.StatusNotFound
	case errors.Is(err, services.ErrNotAuthorized):
		return http.StatusForbidden
	case errors.Is(err, services.ErrInvalidCredentials):
		return http.StatusUnauthorized
	case errors.Is(err, services.ErrDatesUnavailable),
		errors.Is(err, services.ErrBookingNotPending),
		errors.Is(err, services.ErrUsernameTaken):
		return http.StatusConflict
	case errors.Is(err, services.ErrInvalidRange),
		errors.Is(err, services.ErrInvalidCapacity),
		errors.Is(err, services.ErrTooManyFiles),
		errors.Is(err, services.ErrFileTooLarge),
		errors.Is(err, services.ErrInvalidOrderSet):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
