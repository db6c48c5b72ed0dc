package repository

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/Domenick1991/showbooking/internal/catalog"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
)

const (
	testDBName     = "showbooking"
	testDBUser     = "test_user"
	testDBPassword = "test_password"
	testDBImage    = "postgres:17-alpine"
)

// startPostgres runs a throwaway Postgres with the schema from migrations/
// applied. Tests using it are skipped with -short or without a container runtime.
func startPostgres(t *testing.T) *pgxpool.Pool {
	t.Helper()
	if testing.Short() {
		t.Skip("postgres container tests are skipped in short mode")
	}
	testcontainers.SkipIfProviderIsNotHealthy(t)

	ctx := context.Background()
	container, err := postgres.Run(ctx, testDBImage,
		postgres.WithDatabase(testDBName),
		postgres.WithUsername(testDBUser),
		postgres.WithPassword(testDBPassword),
		postgres.WithInitScripts(filepath.Join("..", "..", "migrations", "001_init.sql")),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(60*time.Second),
		),
	)
	testcontainers.CleanupContainer(t, container)
	require.NoError(t, err)

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	pool, err := pgxpool.New(ctx, dsn)
	require.NoError(t, err)
	t.Cleanup(pool.Close)
	return pool
}

// insertSeed writes seed into the catalog tables the way an operator would
// provision them.
func insertSeed(t *testing.T, pool *pgxpool.Pool, seed *catalog.Seed) {
	t.Helper()
	ctx := context.Background()

	for _, m := range seed.Movies {
		_, err := pool.Exec(ctx,
			`INSERT INTO movies (id, title, genre, duration_minutes, language, description) VALUES ($1, $2, $3, $4, $5, $6)`,
			m.ID, m.Title, m.Genre, m.DurationMinutes, m.Language, m.Description)
		require.NoError(t, err)

		// Positions run backwards to the insert order so the load has to sort by position.
		for i := len(m.Cast) - 1; i >= 0; i-- {
			_, err := pool.Exec(ctx, `INSERT INTO movie_cast (movie_id, position, name) VALUES ($1, $2, $3)`, m.ID, i, m.Cast[i])
			require.NoError(t, err)
		}
	}

	for _, sh := range seed.Shows {
		_, err := pool.Exec(ctx,
			`INSERT INTO shows (id, movie_id, theater, show_date, start_time, ticket_price, total_seats) VALUES ($1, $2, $3, $4::date, $5::time, $6::numeric, $7)`,
			sh.ID, sh.MovieID, sh.Theater, sh.Date, sh.StartTime, sh.TicketPrice.String(), sh.TotalSeats)
		require.NoError(t, err)

		for i := len(sh.BookedSeats) - 1; i >= 0; i-- {
			_, err := pool.Exec(ctx, `INSERT INTO show_booked_seats (show_id, seat_number) VALUES ($1, $2)`, sh.ID, sh.BookedSeats[i])
			require.NoError(t, err)
		}
	}
}
