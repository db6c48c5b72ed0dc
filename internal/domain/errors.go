package domain

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var (
	ErrNotFound       = errors.New("not found")
	ErrInvalidRequest = errors.New("invalid request")

	ErrMovieNotFound   = fmt.Errorf("movie %w", ErrNotFound)
	ErrShowNotFound    = fmt.Errorf("show %w", ErrNotFound)
	ErrBookingNotFound = fmt.Errorf("booking %w", ErrNotFound)
)

// SeatsUnavailableError lists requested seats that are already booked or
// outside the show's seat range. Both cases are reported the same way.
type SeatsUnavailableError struct {
	ShowID string
	Seats  []int
}

func (e *SeatsUnavailableError) Error() string {
	return fmt.Sprintf("seats unavailable for show %s: %s", e.ShowID, joinSeats(e.Seats))
}

// BookingRejectedError is returned by the ledger when the reservation was refused.
type BookingRejectedError struct {
	Unavailable []int
	cause       error
}

func NewBookingRejectedError(cause *SeatsUnavailableError) *BookingRejectedError {
	return &BookingRejectedError{
		Unavailable: append([]int(nil), cause.Seats...),
		cause:       cause,
	}
}

func (e *BookingRejectedError) Error() string {
	return "booking rejected: some seats are booked: " + joinSeats(e.Unavailable)
}

func (e *BookingRejectedError) Unwrap() error {
	return e.cause
}

func joinSeats(seats []int) string {
	parts := make([]string, len(seats))
	for i, s := range seats {
		parts[i] = strconv.Itoa(s)
	}
	return "[" + strings.Join(parts, ", ") + "]"
}
