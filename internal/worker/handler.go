package worker

import (
	"context"

	"github.com/Domenick1991/showbooking/internal/kafka"
	"github.com/Domenick1991/showbooking/internal/logger"
	kafkaGo "github.com/segmentio/kafka-go"
)

type Notifier interface {
	Send(ctx context.Context, event kafka.BookingEvent) error
}

type AuditRecorder interface {
	Record(ctx context.Context, event kafka.BookingEvent) error
}

// EventHandler processes booking events from the notifications topic.
// Failures are logged and the message is skipped; the consumer never stops
// because of a single bad event.
type EventHandler struct {
	notifier Notifier
	audit    AuditRecorder
	log      logger.Logger
}

// NewEventHandler accepts a nil audit recorder when no database is configured.
func NewEventHandler(notifier Notifier, audit AuditRecorder, log logger.Logger) *EventHandler {
	return &EventHandler{notifier: notifier, audit: audit, log: log}
}

func (h *EventHandler) Handle(ctx context.Context, msg kafkaGo.Message) error {
	event, err := kafka.DecodeBookingEvent(msg)
	if err != nil {
		h.log.Warn("decode event error", "offset", msg.Offset, "error", err)
		return nil
	}

	if h.audit != nil {
		if err := h.audit.Record(ctx, event); err != nil {
			h.log.Error("record booking audit", "event_id", event.ID, "booking_id", event.BookingID, "error", err)
		}
	}

	if err := h.notifier.Send(ctx, event); err != nil {
		h.log.Warn("send notification", "booking_id", event.BookingID, "type", event.Type, "error", err)
	}
	return nil
}
