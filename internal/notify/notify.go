package notify

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/Domenick1991/showbooking/internal/kafka"
	"github.com/Domenick1991/showbooking/internal/logger"
)

var ErrNoRecipient = errors.New("notification has no recipient")

// Sender delivers booking notifications to customers. Delivery is a log line
// until an SMS gateway is wired in.
type Sender struct {
	log logger.Logger
}

func NewSender(log logger.Logger) *Sender {
	return &Sender{log: log}
}

func (s *Sender) Send(_ context.Context, event kafka.BookingEvent) error {
	if event.CustomerPhone == "" {
		return ErrNoRecipient
	}
	s.log.Info("notification sent",
		"to", event.CustomerPhone,
		"booking_id", event.BookingID,
		"message", Message(event),
	)
	return nil
}

// Message renders the customer-facing text for event.
func Message(event kafka.BookingEvent) string {
	seats := make([]string, len(event.Seats))
	for i, seat := range event.Seats {
		seats[i] = strconv.Itoa(seat)
	}

	switch event.Type {
	case kafka.EventBookingCreated:
		return fmt.Sprintf("Hi %s, booking %s is confirmed for show %s, seats %s. Total %s.",
			event.CustomerName, event.BookingID, event.ShowID, strings.Join(seats, ", "), event.TotalAmount)
	case kafka.EventBookingCancelled:
		return fmt.Sprintf("Hi %s, booking %s for show %s has been cancelled. Seats %s were released.",
			event.CustomerName, event.BookingID, event.ShowID, strings.Join(seats, ", "))
	default:
		return fmt.Sprintf("Hi %s, booking %s is now %s.", event.CustomerName, event.BookingID, event.Status)
	}
}
