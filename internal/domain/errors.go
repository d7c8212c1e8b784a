package domain

import "errors"

// Sentinel errors shared across services. Repositories translate storage
// misses into ErrNotFound; the delivery layer maps each sentinel to an HTTP
// status in one place.
var (
	ErrNotFound           = errors.New("not found")
	ErrInvalidInput       = errors.New("invalid input")
	ErrUnauthorized       = errors.New("unauthorized")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrDuplicateEmail     = errors.New("email already in use")
	ErrForbidden          = errors.New("ticket does not grant access")

	// Gate failures on the activity and hotel flows.
	ErrPaymentRequired = errors.New("ticket payment required")
	ErrBookingRequired = errors.New("room booking required")

	// Seat accounting.
	ErrActivityFull = errors.New("activity is at capacity")
	ErrTimeConflict = errors.New("activity overlaps an existing registration")
	ErrRoomFull     = errors.New("room is at capacity")
)
