package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Domenick1991/showbooking/internal/domain"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockMovieUseCase struct {
	mock.Mock
}

func (m *MockMovieUseCase) ListMovies(ctx context.Context) ([]domain.Movie, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Movie), args.Error(1)
}

func (m *MockMovieUseCase) GetMovie(ctx context.Context, id string) (*domain.Movie, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Movie), args.Error(1)
}

func (m *MockMovieUseCase) ListShowsForMovie(ctx context.Context, movieID string) ([]domain.Show, error) {
	args := m.Called(ctx, movieID)
	return args.Get(0).([]domain.Show), args.Error(1)
}

func (m *MockMovieUseCase) GetShow(ctx context.Context, id string) (*domain.Show, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Show), args.Error(1)
}

func TestMovieHandler_listMovies(t *testing.T) {
	mockService := &MockMovieUseCase{}
	handler := NewMovieHandler(mockService)

	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest("GET", "/api/movies", nil)

	mockService.On("ListMovies", c.Request.Context()).Return([]domain.Movie{
		{ID: "M001", Title: "Vikram", Cast: []string{"Kamal Haasan"}},
		{ID: "M002", Title: "KGF - Chapter 2"},
	}, nil)

	handler.listMovies(c)

	assert.Equal(t, http.StatusOK, w.Code)
	var response []movieResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	require.Len(t, response, 2)
	assert.Equal(t, "M001", response[0].MovieID)
	assert.Equal(t, []string{"Kamal Haasan"}, response[0].Cast)
	assert.Equal(t, []string{}, response[1].Cast)
}

func TestMovieHandler_getMovie_NotFound(t *testing.T) {
	mockService := &MockMovieUseCase{}
	handler := NewMovieHandler(mockService)

	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Params = gin.Params{{Key: "movieId", Value: "M999"}}
	c.Request = httptest.NewRequest("GET", "/api/movies/M999", nil)

	mockService.On("GetMovie", c.Request.Context(), "M999").Return(nil, fmt.Errorf("%w: M999", domain.ErrMovieNotFound))

	handler.getMovie(c)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestMovieHandler_listShows(t *testing.T) {
	mockService := &MockMovieUseCase{}
	handler := NewMovieHandler(mockService)

	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Params = gin.Params{{Key: "movieId", Value: "M001"}}
	c.Request = httptest.NewRequest("GET", "/api/shows/M001", nil)

	mockService.On("ListShowsForMovie", c.Request.Context(), "M001").Return([]domain.Show{{
		ID:          "S001",
		MovieID:     "M001",
		Theater:     "Pathé Cinema Chennai",
		Date:        "2025-12-13",
		StartTime:   "18:00",
		TicketPrice: decimal.NewFromInt(280),
		TotalSeats:  100,
		BookedSeats: []int{1, 2, 3},
	}}, nil)

	handler.listShows(c)

	assert.Equal(t, http.StatusOK, w.Code)
	var response []showResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	require.Len(t, response, 1)
	assert.Equal(t, "280.00", response[0].TicketPrice)
	assert.Equal(t, 97, response[0].AvailableSeats)
	assert.Equal(t, []int{1, 2, 3}, response[0].BookedSeats)
}

func TestMovieHandler_listShows_Empty(t *testing.T) {
	mockService := &MockMovieUseCase{}
	handler := NewMovieHandler(mockService)

	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Params = gin.Params{{Key: "movieId", Value: "M999"}}
	c.Request = httptest.NewRequest("GET", "/api/shows/M999", nil)

	mockService.On("ListShowsForMovie", c.Request.Context(), "M999").Return([]domain.Show{}, nil)

	handler.listShows(c)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "no shows found")
}

func TestMovieHandler_getShow(t *testing.T) {
	mockService := &MockMovieUseCase{}
	handler := NewMovieHandler(mockService)

	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Params = gin.Params{{Key: "showId", Value: "S002"}}
	c.Request = httptest.NewRequest("GET", "/api/show/S002", nil)

	mockService.On("GetShow", c.Request.Context(), "S002").Return(&domain.Show{ID: "S002", TicketPrice: decimal.NewFromInt(320), TotalSeats: 100}, nil)

	handler.getShow(c)

	assert.Equal(t, http.StatusOK, w.Code)
	var response showResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Equal(t, 100, response.AvailableSeats)
	assert.Equal(t, []int{}, response.BookedSeats)
}
