package services

import (
	"fmt"
	"time"
)

// Booking rules: date validation and night expansion. Kept pure so the
// committer, the seeder and the tests all share one definition.

// ValidateStayDates requires checkOut strictly after checkIn. Both are
// expected at UTC midnight (utils.ParseDate / utils.DateOnly).
func ValidateStayDates(checkIn, checkOut time.Time) error {
	if !checkOut.After(checkIn) {
		return &ValidationError{Msg: "checkOut must be after checkIn"}
	}
	return nil
}

func ValidateGuests(guests int) error {
	if guests < 1 {
		return &ValidationError{Msg: "guests must be at least 1"}
	}
	return nil
}

// ValidateMaxStayLength is a business guard against unbounded
// allocations, not a physical constraint.
func ValidateMaxStayLength(checkIn, checkOut time.Time, maxNights int) error {
	if NightCount(checkIn, checkOut) > maxNights {
		return &ValidationError{Msg: fmt.Sprintf("stay length cannot exceed %d nights", maxNights)}
	}
	return nil
}

// NightCount is the number of occupied nights in [checkIn, checkOut).
func NightCount(checkIn, checkOut time.Time) int {
	return int(checkOut.Sub(checkIn).Hours() / 24)
}

// EnumerateNights expands a stay into its night dates: checkIn inclusive,
// checkOut exclusive. The sequence is re-derivable at any time; the
// persisted room_nights rows, not this slice, are the source of truth
// for occupancy.
func EnumerateNights(checkIn, checkOut time.Time) ([]time.Time, error) {
	if err := ValidateStayDates(checkIn, checkOut); err != nil {
		return nil, err
	}
	nights := make([]time.Time, 0, NightCount(checkIn, checkOut))
	for d := checkIn; d.Before(checkOut); d = d.AddDate(0, 0, 1) {
		nights = append(nights, d)
	}
	return nights, nil
}
