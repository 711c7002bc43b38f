package services

import (
	"errors"
)

// Typed outcomes of the booking core. Controllers map these onto HTTP
// statuses; nothing leaves the service layer as an unstructured failure.
var (
	ErrHotelNotFound   = errors.New("hotel not found")
	ErrBookingNotFound = errors.New("booking not found")

	// ErrNoRoomAvailable: no room of the requested type/capacity was free
	// for the whole range at selection time.
	ErrNoRoomAvailable = errors.New("no available room matches the request")

	// ErrBookingConflict: the ledger's unique (room, night) index rejected
	// the commit — a concurrent booking took an overlapping night first.
	// The request looked satisfiable; retrying re-runs selection against
	// fresh state.
	ErrBookingConflict = errors.New("room is no longer available for one or more nights")

	// ErrReferenceExhausted: every bounded reference-generation attempt
	// collided with a persisted reference.
	ErrReferenceExhausted = errors.New("unable to generate a unique booking reference")
)

// ValidationError marks bad input. It is always raised before any
// persistence write.
type ValidationError struct {
	Msg string
}

func (e *ValidationError) Error() string { return e.Msg }
