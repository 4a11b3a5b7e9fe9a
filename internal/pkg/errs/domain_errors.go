package errs

import "errors"

// Sentinel errors shared by the usecase and handler layers
var (
	// Showtime errors
	ErrShowtimeNotFound = errors.New("showtime not found")

	// Booking errors
	ErrBookingNotFound = errors.New("booking not found")
	ErrSeatConflict    = errors.New("seats are no longer available")

	// Validation errors
	ErrInvalidRequest = errors.New("invalid booking request")
)
