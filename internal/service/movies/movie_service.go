package movies

import (
	"context"

	"github.com/Domenick1991/showbooking/internal/domain"
)

type MovieUseCase interface {
	ListMovies(ctx context.Context) ([]domain.Movie, error)
	GetMovie(ctx context.Context, id string) (*domain.Movie, error)
	ListShowsForMovie(ctx context.Context, movieID string) ([]domain.Show, error)
	GetShow(ctx context.Context, id string) (*domain.Show, error)
}

type Catalog interface {
	ListMovies() []domain.Movie
	GetMovie(movieID string) (*domain.Movie, error)
	ListShowsForMovie(movieID string) []domain.Show
	GetShow(showID string) (*domain.Show, error)
}

// MovieCache stores the movie list. Shows are never cached because their
// seat counts change with every booking.
type MovieCache interface {
	GetMovies(ctx context.Context) ([]domain.Movie, error)
	SetMovies(ctx context.Context, movies []domain.Movie) error
}

type MovieService struct {
	catalog Catalog
	cache   MovieCache
}

// NewMovieService accepts a nil cache.
func NewMovieService(catalog Catalog, cache MovieCache) *MovieService {
	return &MovieService{catalog: catalog, cache: cache}
}

func (s *MovieService) ListMovies(ctx context.Context) ([]domain.Movie, error) {
	if s.cache != nil {
		if cached, err := s.cache.GetMovies(ctx); err == nil && cached != nil {
			return cached, nil
		}
	}

	movies := s.catalog.ListMovies()
	if s.cache != nil {
		_ = s.cache.SetMovies(ctx, movies)
	}
	return movies, nil
}

func (s *MovieService) GetMovie(_ context.Context, id string) (*domain.Movie, error) {
	return s.catalog.GetMovie(id)
}

func (s *MovieService) ListShowsForMovie(_ context.Context, movieID string) ([]domain.Show, error) {
	return s.catalog.ListShowsForMovie(movieID), nil
}

func (s *MovieService) GetShow(_ context.Context, id string) (*domain.Show, error) {
	return s.catalog.GetShow(id)
}

var _ MovieUseCase = (*MovieService)(nil)
