package booking

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/Domenick1991/showbooking/internal/domain"
	"github.com/Domenick1991/showbooking/internal/kafka"
	"github.com/Domenick1991/showbooking/internal/logger"
	"github.com/Domenick1991/showbooking/internal/service/reservation"
)

const DefaultIDPrefix = "B"

type BookingUseCase interface {
	CreateBooking(ctx context.Context, input CreateBookingInput) (*domain.Booking, error)
	GetBooking(ctx context.Context, id string) (*domain.Booking, error)
	ListBookings(ctx context.Context) ([]domain.Booking, error)
	CancelBooking(ctx context.Context, id string) (*domain.Booking, error)
}

type ShowLookup interface {
	GetShow(showID string) (*domain.Show, error)
}

type Producer interface {
	Publish(ctx context.Context, topic, key string, value any) error
}

// BookingService is the booking ledger. It owns every booking record and the
// id sequence; seat state stays with the catalog and is changed only through
// the reservation engine.
//
// Lock order is show lock before ledger lock. No method holds both today:
// cancel releases seats with the ledger lock dropped.
type BookingService struct {
	shows              ShowLookup
	reservations       reservation.ReservationUseCase
	producer           Producer
	bookingTopic       string
	notificationsTopic string
	idPrefix           string
	now                func() time.Time
	log                logger.Logger

	mu       sync.Mutex
	seq      int64
	bookings []*domain.Booking
	byID     map[string]*domain.Booking
	// releasing holds bookings whose seats are being returned; the channel
	// closes when the release settles.
	releasing map[string]chan struct{}
}

type CreateBookingInput struct {
	ShowID        string `json:"showId"`
	CustomerName  string `json:"customerName"`
	CustomerPhone string `json:"customerPhone"`
	Seats         []int  `json:"seats"`
}

type BookingServiceOption func(*BookingService)

// WithProducer publishes booking events to topic.
func WithProducer(producer Producer, topic string) BookingServiceOption {
	return func(s *BookingService) {
		s.producer = producer
		s.bookingTopic = topic
	}
}

func WithNotificationsTopic(topic string) BookingServiceOption {
	return func(s *BookingService) {
		s.notificationsTopic = topic
	}
}

func WithIDPrefix(prefix string) BookingServiceOption {
	return func(s *BookingService) {
		if prefix != "" {
			s.idPrefix = prefix
		}
	}
}

func WithClock(now func() time.Time) BookingServiceOption {
	return func(s *BookingService) {
		s.now = now
	}
}

func WithLogger(log logger.Logger) BookingServiceOption {
	return func(s *BookingService) {
		s.log = log
	}
}

func NewBookingService(
	shows ShowLookup,
	reservations reservation.ReservationUseCase,
	opts ...BookingServiceOption,
) *BookingService {
	service := &BookingService{
		shows:        shows,
		reservations: reservations,
		idPrefix:     DefaultIDPrefix,
		now:          time.Now,
		log:          logger.NewNop(),
		byID:         make(map[string]*domain.Booking),
		releasing:    make(map[string]chan struct{}),
	}
	for _, opt := range opts {
		opt(service)
	}
	return service
}

func (s *BookingService) CreateBooking(ctx context.Context, input CreateBookingInput) (*domain.Booking, error) {
	if err := input.validate(); err != nil {
		return nil, err
	}

	if _, err := s.shows.GetShow(input.ShowID); err != nil {
		return nil, err
	}

	alloc, err := s.reservations.Reserve(input.ShowID, input.Seats)
	if err != nil {
		var unavailable *domain.SeatsUnavailableError
		if errors.As(err, &unavailable) {
			s.log.Info("booking rejected", "show_id", input.ShowID, "unavailable", unavailable.Seats)
			return nil, domain.NewBookingRejectedError(unavailable)
		}
		return nil, err
	}

	created := s.append(&domain.Booking{
		ShowID:        alloc.ShowID,
		CustomerName:  input.CustomerName,
		CustomerPhone: input.CustomerPhone,
		Seats:         alloc.Seats,
		TotalAmount:   alloc.Total(),
		Status:        domain.BookingStatusConfirmed,
	})
	s.log.Info("booking created",
		"booking_id", created.ID,
		"show_id", created.ShowID,
		"seats", created.Seats,
		"available_seats", alloc.AvailableSeats,
	)

	if err := s.publish(ctx, kafka.EventBookingCreated, created); err != nil {
		s.log.Warn("failed to publish booking event", "type", kafka.EventBookingCreated, "booking_id", created.ID, "error", err)
	}
	return created, nil
}

func (s *BookingService) GetBooking(_ context.Context, id string) (*domain.Booking, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	b, ok := s.byID[id]
	if !ok {
		return nil, fmt.Errorf("%w: %s", domain.ErrBookingNotFound, id)
	}
	return b.Clone(), nil
}

// ListBookings returns all bookings in creation order.
func (s *BookingService) ListBookings(_ context.Context) ([]domain.Booking, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]domain.Booking, 0, len(s.bookings))
	for _, b := range s.bookings {
		out = append(out, *b.Clone())
	}
	return out, nil
}

// CancelBooking returns the booking's seats to the show and marks it cancelled.
// Cancelling a cancelled booking returns it unchanged. While the seats are
// being released the booking still reads as CONFIRMED, and a concurrent cancel
// of the same booking waits for that release instead of releasing again.
func (s *BookingService) CancelBooking(ctx context.Context, id string) (*domain.Booking, error) {
	for {
		s.mu.Lock()
		b, ok := s.byID[id]
		if !ok {
			s.mu.Unlock()
			return nil, fmt.Errorf("%w: %s", domain.ErrBookingNotFound, id)
		}
		if b.Status == domain.BookingStatusCancelled {
			current := b.Clone()
			s.mu.Unlock()
			return current, nil
		}
		if done, busy := s.releasing[id]; busy {
			s.mu.Unlock()
			select {
			case <-done:
				continue
			case <-ctx.Done():
				return nil, ctx.Err()
			}
		}

		done := make(chan struct{})
		s.releasing[id] = done
		showID, seats := b.ShowID, slices.Clone(b.Seats)
		s.mu.Unlock()

		return s.finishCancel(ctx, id, showID, seats, done)
	}
}

// finishCancel releases the seats outside the ledger lock, then settles the
// status and wakes any cancel waiting on done.
func (s *BookingService) finishCancel(ctx context.Context, id, showID string, seats []int, done chan struct{}) (*domain.Booking, error) {
	releaseErr := s.reservations.Release(showID, seats)

	s.mu.Lock()
	delete(s.releasing, id)
	close(done)
	if releaseErr != nil && !errors.Is(releaseErr, domain.ErrShowNotFound) {
		s.mu.Unlock()
		return nil, fmt.Errorf("release seats for booking %s: %w", id, releaseErr)
	}
	b := s.byID[id]
	b.Status = domain.BookingStatusCancelled
	cancelled := b.Clone()
	s.mu.Unlock()

	if releaseErr != nil {
		s.log.Warn("show missing on cancel, no seats released", "booking_id", id, "show_id", showID)
	}
	s.log.Info("booking cancelled", "booking_id", id, "show_id", showID, "seats", seats)

	if err := s.publish(ctx, kafka.EventBookingCancelled, cancelled); err != nil {
		s.log.Warn("failed to publish booking event", "type", kafka.EventBookingCancelled, "booking_id", id, "error", err)
	}
	return cancelled, nil
}

// append assigns the next id and timestamp and stores b. The id counter and
// the append share one lock, so ids follow insertion order.
func (s *BookingService) append(b *domain.Booking) *domain.Booking {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.seq++
	b.ID = fmt.Sprintf("%s%d", s.idPrefix, s.seq)
	b.CreatedAt = s.now()
	s.bookings = append(s.bookings, b)
	s.byID[b.ID] = b
	return b.Clone()
}

func (s *BookingService) publish(ctx context.Context, eventType string, booking *domain.Booking) error {
	if s.producer == nil || s.bookingTopic == "" {
		return nil
	}
	event := kafka.NewBookingEvent(eventType, booking, s.now())

	// Each topic is written independently so the worker still hears about the
	// booking when the booking topic is down.
	var errs []error
	for _, topic := range []string{s.bookingTopic, s.notificationsTopic} {
		if topic == "" {
			continue
		}
		if err := s.producer.Publish(ctx, topic, booking.ID, event); err != nil {
			errs = append(errs, fmt.Errorf("publish to %s: %w", topic, err))
		}
	}
	return errors.Join(errs...)
}

func (in CreateBookingInput) validate() error {
	switch {
	case strings.TrimSpace(in.ShowID) == "":
		return fmt.Errorf("%w: show id is required", domain.ErrInvalidRequest)
	case strings.TrimSpace(in.CustomerName) == "":
		return fmt.Errorf("%w: customer name is required", domain.ErrInvalidRequest)
	case strings.TrimSpace(in.CustomerPhone) == "":
		return fmt.Errorf("%w: customer phone is required", domain.ErrInvalidRequest)
	case len(in.Seats) == 0:
		return fmt.Errorf("%w: at least one seat is required", domain.ErrInvalidRequest)
	}
	return nil
}

var _ BookingUseCase = (*BookingService)(nil)
