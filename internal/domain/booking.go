package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type BookingStatus string

const (
	BookingStatusConfirmed BookingStatus = "CONFIRMED"
	BookingStatusCancelled BookingStatus = "CANCELLED"
)

type Booking struct {
	ID            string
	ShowID        string
	CustomerName  string
	CustomerPhone string
	Seats         []int
	TotalAmount   decimal.Decimal
	Status        BookingStatus
	CreatedAt     time.Time
}

// Clone returns a copy that shares no memory with b.
func (b *Booking) Clone() *Booking {
	c := *b
	c.Seats = append([]int(nil), b.Seats...)
	return &c
}
