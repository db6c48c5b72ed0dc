package repository

import (
	"context"
	"fmt"

	"github.com/Domenick1991/showbooking/internal/catalog"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

// CatalogSeedRepository reads the initial catalog. The store built from it
// never writes back.
type CatalogSeedRepository interface {
	LoadSeed(ctx context.Context) (*catalog.Seed, error)
}

type PGCatalogRepository struct {
	db *pgxpool.Pool
}

func NewCatalogRepository(db *pgxpool.Pool) CatalogSeedRepository {
	return &PGCatalogRepository{db: db}
}

func (r *PGCatalogRepository) LoadSeed(ctx context.Context) (*catalog.Seed, error) {
	movies, err := r.loadMovies(ctx)
	if err != nil {
		return nil, fmt.Errorf("load movies: %w", err)
	}
	shows, err := r.loadShows(ctx)
	if err != nil {
		return nil, fmt.Errorf("load shows: %w", err)
	}
	return &catalog.Seed{Movies: movies, Shows: shows}, nil
}

func (r *PGCatalogRepository) loadMovies(ctx context.Context) ([]catalog.MovieRecord, error) {
	rows, err := r.db.Query(ctx, `SELECT id, title, genre, duration_minutes, language, description FROM movies ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	movies := make([]catalog.MovieRecord, 0)
	index := make(map[string]int)
	for rows.Next() {
		var m catalog.MovieRecord
		if err := rows.Scan(&m.ID, &m.Title, &m.Genre, &m.DurationMinutes, &m.Language, &m.Description); err != nil {
			return nil, err
		}
		index[m.ID] = len(movies)
		movies = append(movies, m)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	castRows, err := r.db.Query(ctx, `SELECT movie_id, name FROM movie_cast ORDER BY movie_id, position`)
	if err != nil {
		return nil, err
	}
	defer castRows.Close()

	for castRows.Next() {
		var movieID, name string
		if err := castRows.Scan(&movieID, &name); err != nil {
			return nil, err
		}
		if i, ok := index[movieID]; ok {
			movies[i].Cast = append(movies[i].Cast, name)
		}
	}
	return movies, castRows.Err()
}

func (r *PGCatalogRepository) loadShows(ctx context.Context) ([]catalog.ShowRecord, error) {
	rows, err := r.db.Query(ctx, `SELECT id, movie_id, theater, to_char(show_date, 'YYYY-MM-DD'), to_char(start_time, 'HH24:MI'), ticket_price::text, total_seats FROM shows ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	shows := make([]catalog.ShowRecord, 0)
	index := make(map[string]int)
	for rows.Next() {
		var (
			s     catalog.ShowRecord
			price string
		)
		if err := rows.Scan(&s.ID, &s.MovieID, &s.Theater, &s.Date, &s.StartTime, &price, &s.TotalSeats); err != nil {
			return nil, err
		}
		if s.TicketPrice, err = decimal.NewFromString(price); err != nil {
			return nil, fmt.Errorf("show %s: ticket price %q: %w", s.ID, price, err)
		}
		index[s.ID] = len(shows)
		shows = append(shows, s)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	seatRows, err := r.db.Query(ctx, `SELECT show_id, seat_number FROM show_booked_seats ORDER BY show_id, seat_number`)
	if err != nil {
		return nil, err
	}
	defer seatRows.Close()

	for seatRows.Next() {
		var (
			showID string
			seat   int
		)
		if err := seatRows.Scan(&showID, &seat); err != nil {
			return nil, err
		}
		if i, ok := index[showID]; ok {
			shows[i].BookedSeats = append(shows[i].BookedSeats, seat)
		}
	}
	return shows, seatRows.Err()
}

var _ CatalogSeedRepository = (*PGCatalogRepository)(nil)
