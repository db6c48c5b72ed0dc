package kafka

import (
	"time"

	"github.com/Domenick1991/showbooking/internal/domain"
	"github.com/google/uuid"
)

const (
	EventBookingCreated   = "booking_created"
	EventBookingCancelled = "booking_cancelled"
)

type BookingEvent struct {
	ID            string    `json:"id"`
	Type          string    `json:"type"`
	BookingID     string    `json:"booking_id"`
	ShowID        string    `json:"show_id"`
	Seats         []int     `json:"seats"`
	CustomerName  string    `json:"customer_name"`
	CustomerPhone string    `json:"customer_phone"`
	TotalAmount   string    `json:"total_amount"`
	Status        string    `json:"status"`
	OccurredAt    time.Time `json:"occurred_at"`
}

func NewBookingEvent(eventType string, b *domain.Booking, at time.Time) BookingEvent {
	return BookingEvent{
		ID:            uuid.NewString(),
		Type:          eventType,
		BookingID:     b.ID,
		ShowID:        b.ShowID,
		Seats:         append([]int(nil), b.Seats...),
		CustomerName:  b.CustomerName,
		CustomerPhone: b.CustomerPhone,
		TotalAmount:   b.TotalAmount.StringFixed(2),
		Status:        string(b.Status),
		OccurredAt:    at,
	}
}
