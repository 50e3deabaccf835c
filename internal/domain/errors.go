package domain

import "errors"

var (
	ErrListingNotFound     = errors.New("listing not found")
	ErrReservationNotFound = errors.New("reservation not found")
)

var (
	ErrInvalidStayLength  = errors.New("invalid stay length")
	ErrGuestCountExceeded = errors.New("guest count exceeds listing capacity")
	ErrUnavailable        = errors.New("dates are not available")
	ErrInvalidState       = errors.New("invalid reservation state for this transition")
	ErrLockTimeout        = errors.New("listing is busy, try again")
)

var (
	ErrNotOwner       = errors.New("actor is not the listing owner")
	ErrNotParticipant = errors.New("actor is not a participant of this reservation")
)

var (
	ErrValidation = errors.New("validation error")
)
