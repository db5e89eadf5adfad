package services

import "errors"

var (
	ErrUserNotFound    = errors.New("user_not_found")
	ErrListingNotFound = errors.New("listing_not_found")
	ErrBookingNotFound = errors.New("booking_not_found")
	ErrImageNotFound   = errors.New("image_not_found")
)

var (
	ErrInvalidRange      = errors.New("invalid_range")
	ErrDatesUnavailable  = errors.New("dates_unavailable")
	ErrBookingNotPending = errors.New("booking_not_pending")
	ErrInvalidCapacity   = errors.New("invalid_capacity")
)

var ErrNotAuthorized = errors.New("not_authorized")

var (
	ErrTooManyFiles    = errors.New("too_many_files")
	ErrFileTooLarge    = errors.New("file_too_large")
	ErrInvalidOrderSet = errors.New("invalid_order_set")
)

var (
	ErrUsernameTaken      = errors.New("username_taken")
	ErrInvalidCredentials = errors.New("invalid_credentials")
)
