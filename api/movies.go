package api

import (
	"net/http"

	"github.com/Domenick1991/showbooking/internal/domain"
	"github.com/Domenick1991/showbooking/internal/service/movies"
	"github.com/gin-gonic/gin"
)

type MovieHandler struct {
	service movies.MovieUseCase
}

type movieResponse struct {
	MovieID         string   `json:"movieId"`
	Title           string   `json:"title"`
	Genre           string   `json:"genre"`
	DurationMinutes int      `json:"durationMinutes"`
	Language        string   `json:"language"`
	Description     string   `json:"description"`
	Cast            []string `json:"cast"`
}

type showResponse struct {
	ShowID         string `json:"showId"`
	MovieID        string `json:"movieId"`
	Theater        string `json:"theater"`
	Date           string `json:"date"`
	StartTime      string `json:"startTime"`
	TicketPrice    string `json:"ticketPrice"`
	TotalSeats     int    `json:"totalSeats"`
	AvailableSeats int    `json:"availableSeats"`
	BookedSeats    []int  `json:"bookedSeats"`
}

func NewMovieHandler(service movies.MovieUseCase) *MovieHandler {
	return &MovieHandler{service: service}
}

func (h *MovieHandler) Register(router *gin.RouterGroup) {
	router.GET("/movies", h.listMovies)
	router.GET("/movies/:movieId", h.getMovie)
	router.GET("/shows/:movieId", h.listShows)
	router.GET("/show/:showId", h.getShow)
}

func (h *MovieHandler) listMovies(c *gin.Context) {
	list, err := h.service.ListMovies(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}

	out := make([]movieResponse, 0, len(list))
	for _, m := range list {
		out = append(out, toMovieResponse(m))
	}
	c.JSON(http.StatusOK, out)
}

func (h *MovieHandler) getMovie(c *gin.Context) {
	movie, err := h.service.GetMovie(c.Request.Context(), c.Param("movieId"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, toMovieResponse(*movie))
}

// listShows answers 404 when the movie has no shows, including unknown movies.
func (h *MovieHandler) listShows(c *gin.Context) {
	shows, err := h.service.ListShowsForMovie(c.Request.Context(), c.Param("movieId"))
	if err != nil {
		writeError(c, err)
		return
	}
	if len(shows) == 0 {
		c.JSON(http.StatusNotFound, gin.H{"message": "no shows found"})
		return
	}

	out := make([]showResponse, 0, len(shows))
	for _, s := range shows {
		out = append(out, toShowResponse(s))
	}
	c.JSON(http.StatusOK, out)
}

func (h *MovieHandler) getShow(c *gin.Context) {
	show, err := h.service.GetShow(c.Request.Context(), c.Param("showId"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, toShowResponse(*show))
}

func toMovieResponse(m domain.Movie) movieResponse {
	cast := m.Cast
	if cast == nil {
		cast = []string{}
	}
	return movieResponse{
		MovieID:         m.ID,
		Title:           m.Title,
		Genre:           m.Genre,
		DurationMinutes: m.DurationMinutes,
		Language:        m.Language,
		Description:     m.Description,
		Cast:            cast,
	}
}

func toShowResponse(s domain.Show) showResponse {
	booked := s.BookedSeats
	if booked == nil {
		booked = []int{}
	}
	return showResponse{
		ShowID:         s.ID,
		MovieID:        s.MovieID,
		Theater:        s.Theater,
		Date:           s.Date,
		StartTime:      s.StartTime,
		TicketPrice:    s.TicketPrice.StringFixed(2),
		TotalSeats:     s.TotalSeats,
		AvailableSeats: s.AvailableSeats(),
		BookedSeats:    booked,
	}
}
