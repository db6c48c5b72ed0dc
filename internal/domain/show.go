package domain

import "github.com/shopspring/decimal"

// Show is a snapshot of one scheduled screening. BookedSeats is sorted ascending.
type Show struct {
	ID          string
	MovieID     string
	Theater     string
	Date        string
	StartTime   string
	TicketPrice decimal.Decimal
	TotalSeats  int
	BookedSeats []int
}

// AvailableSeats is derived from the booked set and never stored.
func (s Show) AvailableSeats() int {
	return s.TotalSeats - len(s.BookedSeats)
}
