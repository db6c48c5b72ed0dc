package repository

import (
	"context"

	"github.com/Domenick1991/showbooking/internal/kafka"
	"github.com/jackc/pgx/v5/pgxpool"
)

// BookingAuditRepository keeps an append-only trail of booking events.
type BookingAuditRepository interface {
	Record(ctx context.Context, event kafka.BookingEvent) error
}

type PGBookingAuditRepository struct {
	db *pgxpool.Pool
}

func NewBookingAuditRepository(db *pgxpool.Pool) BookingAuditRepository {
	return &PGBookingAuditRepository{db: db}
}

// Record is idempotent per event id, so redelivered messages are harmless.
func (r *PGBookingAuditRepository) Record(ctx context.Context, event kafka.BookingEvent) error {
	_, err := r.db.Exec(ctx, `
        INSERT INTO booking_audit (event_id, event_type, booking_id, show_id, seats, customer_name, customer_phone, total_amount, status, occurred_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8::numeric, $9, $10)
        ON CONFLICT (event_id) DO NOTHING
    `, event.ID, event.Type, event.BookingID, event.ShowID, event.Seats, event.CustomerName, event.CustomerPhone, event.TotalAmount, event.Status, event.OccurredAt)
	return err
}

var _ BookingAuditRepository = (*PGBookingAuditRepository)(nil)
