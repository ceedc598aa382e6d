package booking

import "errors"

var (
	ErrBookingNotFound = errors.New("booking request not found")
	ErrDateInPast      = errors.New("booking date must be today or later")
	ErrInvalidStatus   = errors.New("invalid booking status")
)
