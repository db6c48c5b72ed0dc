package domain

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNotFoundErrors(t *testing.T) {
	for _, err := range []error{ErrMovieNotFound, ErrShowNotFound, ErrBookingNotFound} {
		assert.ErrorIs(t, fmt.Errorf("%w: X1", err), ErrNotFound)
	}
	assert.NotErrorIs(t, ErrShowNotFound, ErrMovieNotFound)
}

func TestBookingRejectedError(t *testing.T) {
	cause := &SeatsUnavailableError{ShowID: "S001", Seats: []int{2, 101}}
	err := error(NewBookingRejectedError(cause))

	assert.Equal(t, "booking rejected: some seats are booked: [2, 101]", err.Error())

	var unavailable *SeatsUnavailableError
	require.True(t, errors.As(err, &unavailable))
	assert.Equal(t, "S001", unavailable.ShowID)

	cause.Seats[0] = 99
	var rejected *BookingRejectedError
	require.True(t, errors.As(err, &rejected))
	assert.Equal(t, []int{2, 101}, rejected.Unavailable)
}

func TestShowAvailableSeats(t *testing.T) {
	s := Show{TotalSeats: 100, BookedSeats: []int{1, 2, 3}}
	assert.Equal(t, 97, s.AvailableSeats())
}

func TestBookingClone(t *testing.T) {
	b := &Booking{ID: "B1", Seats: []int{1, 2}, Status: BookingStatusConfirmed}
	c := b.Clone()
	c.Seats[0] = 9
	c.Status = BookingStatusCancelled

	assert.Equal(t, []int{1, 2}, b.Seats)
	assert.Equal(t, BookingStatusConfirmed, b.Status)
}
