package reservation

import (
	"fmt"
	"slices"

	"github.com/Domenick1991/showbooking/internal/catalog"
	"github.com/Domenick1991/showbooking/internal/domain"
	"github.com/shopspring/decimal"
)

type ReservationUseCase interface {
	Reserve(showID string, seats []int) (*Allocation, error)
	Release(showID string, seats []int) error
}

// SeatInventory gives exclusive, per-show access to a show's booked seats.
type SeatInventory interface {
	WithSeats(showID string, fn func(show domain.Show, seats *catalog.Seats) error) error
}

// Allocation is the result of a committed reservation.
type Allocation struct {
	ShowID         string
	Seats          []int
	TicketPrice    decimal.Decimal
	AvailableSeats int
}

// Total is the price of all allocated seats.
func (a *Allocation) Total() decimal.Decimal {
	return a.TicketPrice.Mul(decimal.NewFromInt(int64(len(a.Seats))))
}

type Engine struct {
	inventory SeatInventory
}

func NewEngine(inventory SeatInventory) *Engine {
	return &Engine{inventory: inventory}
}

// Reserve books every requested seat or none of them. Seats that are taken or
// outside 1..TotalSeats are returned in a *domain.SeatsUnavailableError, in
// request order.
func (e *Engine) Reserve(showID string, seats []int) (*Allocation, error) {
	if err := checkSeatList(seats); err != nil {
		return nil, err
	}

	var alloc *Allocation
	err := e.inventory.WithSeats(showID, func(show domain.Show, inv *catalog.Seats) error {
		var unavailable []int
		for _, seat := range seats {
			if !inv.IsFree(seat) {
				unavailable = append(unavailable, seat)
			}
		}
		if len(unavailable) > 0 {
			return &domain.SeatsUnavailableError{ShowID: showID, Seats: unavailable}
		}

		inv.Book(seats...)
		committed := slices.Clone(seats)
		slices.Sort(committed)
		alloc = &Allocation{
			ShowID:         showID,
			Seats:          committed,
			TicketPrice:    show.TicketPrice,
			AvailableSeats: inv.Available(),
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return alloc, nil
}

// Release returns seats to the show. Releasing a seat that is not booked is a no-op.
func (e *Engine) Release(showID string, seats []int) error {
	return e.inventory.WithSeats(showID, func(_ domain.Show, inv *catalog.Seats) error {
		inv.Release(seats...)
		return nil
	})
}

func checkSeatList(seats []int) error {
	if len(seats) == 0 {
		return fmt.Errorf("%w: at least one seat is required", domain.ErrInvalidRequest)
	}
	seen := make(map[int]struct{}, len(seats))
	for _, seat := range seats {
		if _, dup := seen[seat]; dup {
			return fmt.Errorf("%w: seat %d requested more than once", domain.ErrInvalidRequest, seat)
		}
		seen[seat] = struct{}{}
	}
	return nil
}

var _ ReservationUseCase = (*Engine)(nil)
