// Package catalog holds movies and shows in memory.
//
// Movies are immutable. Each show carries its own lock guarding the booked seat
// set, so seat changes on different shows never contend. The set of shows is
// fixed when the store is built and is read without a store-wide lock.
package catalog

import (
	"fmt"
	"slices"
	"sync"

	"github.com/Domenick1991/showbooking/internal/domain"
)

type Store struct {
	movies     map[string]domain.Movie
	movieOrder []string
	shows      map[string]*showState
	showOrder  []string
	byMovie    map[string][]string
}

type showState struct {
	mu     sync.Mutex
	show   domain.Show // BookedSeats is always nil here
	booked map[int]struct{}
}

// NewStore validates the seed and builds the catalog from it.
func NewStore(seed *Seed) (*Store, error) {
	if err := seed.Validate(); err != nil {
		return nil, err
	}

	s := &Store{
		movies:  make(map[string]domain.Movie, len(seed.Movies)),
		shows:   make(map[string]*showState, len(seed.Shows)),
		byMovie: make(map[string][]string),
	}
	for _, m := range seed.Movies {
		s.movies[m.ID] = domain.Movie{
			ID:              m.ID,
			Title:           m.Title,
			Genre:           m.Genre,
			DurationMinutes: m.DurationMinutes,
			Language:        m.Language,
			Description:     m.Description,
			Cast:            slices.Clone(m.Cast),
		}
		s.movieOrder = append(s.movieOrder, m.ID)
	}
	for _, sh := range seed.Shows {
		st := &showState{
			show: domain.Show{
				ID:          sh.ID,
				MovieID:     sh.MovieID,
				Theater:     sh.Theater,
				Date:        sh.Date,
				StartTime:   sh.StartTime,
				TicketPrice: sh.TicketPrice,
				TotalSeats:  sh.TotalSeats,
			},
			booked: make(map[int]struct{}, len(sh.BookedSeats)),
		}
		for _, seat := range sh.BookedSeats {
			st.booked[seat] = struct{}{}
		}
		s.shows[sh.ID] = st
		s.showOrder = append(s.showOrder, sh.ID)
		s.byMovie[sh.MovieID] = append(s.byMovie[sh.MovieID], sh.ID)
	}
	return s, nil
}

func (s *Store) GetMovie(movieID string) (*domain.Movie, error) {
	m, ok := s.movies[movieID]
	if !ok {
		return nil, fmt.Errorf("%w: %s", domain.ErrMovieNotFound, movieID)
	}
	m.Cast = slices.Clone(m.Cast)
	return &m, nil
}

// ListMovies returns movies in seed order.
func (s *Store) ListMovies() []domain.Movie {
	out := make([]domain.Movie, 0, len(s.movieOrder))
	for _, id := range s.movieOrder {
		m := s.movies[id]
		m.Cast = slices.Clone(m.Cast)
		out = append(out, m)
	}
	return out
}

// ListShowsForMovie returns snapshots of the movie's shows in seed order.
// An unknown movie yields an empty slice.
func (s *Store) ListShowsForMovie(movieID string) []domain.Show {
	ids := s.byMovie[movieID]
	out := make([]domain.Show, 0, len(ids))
	for _, id := range ids {
		out = append(out, s.shows[id].snapshot())
	}
	return out
}

func (s *Store) GetShow(showID string) (*domain.Show, error) {
	st, ok := s.shows[showID]
	if !ok {
		return nil, fmt.Errorf("%w: %s", domain.ErrShowNotFound, showID)
	}
	sh := st.snapshot()
	return &sh, nil
}

// WithSeats runs fn while holding the show's lock. It is the only write path
// to a show's booked seats; the reservation engine is its caller. fn must not
// retain seats after returning.
func (s *Store) WithSeats(showID string, fn func(show domain.Show, seats *Seats) error) error {
	st, ok := s.shows[showID]
	if !ok {
		return fmt.Errorf("%w: %s", domain.ErrShowNotFound, showID)
	}

	st.mu.Lock()
	defer st.mu.Unlock()
	return fn(st.show, &Seats{total: st.show.TotalSeats, booked: st.booked})
}

func (st *showState) snapshot() domain.Show {
	st.mu.Lock()
	defer st.mu.Unlock()

	sh := st.show
	sh.BookedSeats = make([]int, 0, len(st.booked))
	for seat := range st.booked {
		sh.BookedSeats = append(sh.BookedSeats, seat)
	}
	slices.Sort(sh.BookedSeats)
	return sh
}

// Seats is a show's mutable seat inventory, valid only inside WithSeats.
type Seats struct {
	total  int
	booked map[int]struct{}
}

func (s *Seats) Total() int { return s.total }

// Available is derived from the booked set on every call.
func (s *Seats) Available() int { return s.total - len(s.booked) }

// IsFree reports whether seat is in range and not booked.
func (s *Seats) IsFree(seat int) bool {
	if seat < 1 || seat > s.total {
		return false
	}
	_, taken := s.booked[seat]
	return !taken
}

// Book marks seats as booked. Callers check IsFree first.
func (s *Seats) Book(seats ...int) {
	for _, seat := range seats {
		s.booked[seat] = struct{}{}
	}
}

// Release removes seats from the booked set; seats not booked are ignored.
func (s *Seats) Release(seats ...int) {
	for _, seat := range seats {
		delete(s.booked, seat)
	}
}
