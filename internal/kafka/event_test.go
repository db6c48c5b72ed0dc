package kafka

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/Domenick1991/showbooking/internal/domain"
	"github.com/segmentio/kafka-go"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewBookingEvent(t *testing.T) {
	at := time.Date(2025, 12, 13, 10, 0, 0, 0, time.UTC)
	b := &domain.Booking{
		ID:            "B7",
		ShowID:        "S001",
		CustomerName:  "Asha",
		CustomerPhone: "9876543210",
		Seats:         []int{60, 61},
		TotalAmount:   decimal.NewFromInt(560),
		Status:        domain.BookingStatusConfirmed,
	}

	event := NewBookingEvent(EventBookingCreated, b, at)

	assert.NotEmpty(t, event.ID)
	assert.Equal(t, EventBookingCreated, event.Type)
	assert.Equal(t, "B7", event.BookingID)
	assert.Equal(t, "560.00", event.TotalAmount)
	assert.Equal(t, "CONFIRMED", event.Status)
	assert.Equal(t, at, event.OccurredAt)

	b.Seats[0] = 1
	assert.Equal(t, []int{60, 61}, event.Seats)
}

func TestDecodeBookingEvent(t *testing.T) {
	data, err := json.Marshal(BookingEvent{Type: EventBookingCancelled, BookingID: "B2", Seats: []int{4}})
	require.NoError(t, err)

	event, err := DecodeBookingEvent(kafka.Message{Value: data})
	require.NoError(t, err)
	assert.Equal(t, EventBookingCancelled, event.Type)
	assert.Equal(t, "B2", event.BookingID)
	assert.Equal(t, []int{4}, event.Seats)

	_, err = DecodeBookingEvent(kafka.Message{Value: []byte("{")})
	assert.Error(t, err)

	_, err = DecodeBookingEvent(kafka.Message{Offset: 12, Value: []byte(`{"type":"booking_created"}`)})
	assert.ErrorContains(t, err, "missing booking id")
}
