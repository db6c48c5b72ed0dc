package api

import (
	"context"
	"net/http"
	"time"

	"github.com/Domenick1991/showbooking/internal/domain"
	"github.com/Domenick1991/showbooking/internal/service/booking"
	"github.com/gin-gonic/gin"
)

// ShowReader resolves the show embedded in booking responses.
type ShowReader interface {
	GetShow(ctx context.Context, id string) (*domain.Show, error)
}

type BookingHandler struct {
	service booking.BookingUseCase
	shows   ShowReader
}

type createBookingRequest struct {
	ShowID        string `json:"showId"`
	CustomerName  string `json:"customerName"`
	CustomerPhone string `json:"customerPhone"`
	Seats         []int  `json:"seats"`
}

type bookingResponse struct {
	BookingID     string        `json:"bookingId"`
	ShowID        string        `json:"showId"`
	Show          *showResponse `json:"show,omitempty"`
	CustomerName  string        `json:"customerName"`
	CustomerPhone string        `json:"customerPhone"`
	Seats         []int         `json:"seats"`
	TotalAmount   string        `json:"totalAmount"`
	Timestamp     string        `json:"timestamp"`
	Status        string        `json:"status"`
}

type cancelResponse struct {
	Message string          `json:"message"`
	Booking bookingResponse `json:"booking"`
}

func NewBookingHandler(service booking.BookingUseCase, shows ShowReader) *BookingHandler {
	return &BookingHandler{service: service, shows: shows}
}

func (h *BookingHandler) Register(router *gin.RouterGroup) {
	router.POST("/bookings", h.create)
	router.GET("/bookings", h.list)
	router.GET("/bookings/:bookingId", h.get)
	router.DELETE("/bookings/:bookingId", h.cancel)
}

func (h *BookingHandler) create(c *gin.Context) {
	var req createBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	created, err := h.service.CreateBooking(c.Request.Context(), booking.CreateBookingInput{
		ShowID:        req.ShowID,
		CustomerName:  req.CustomerName,
		CustomerPhone: req.CustomerPhone,
		Seats:         req.Seats,
	})
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusCreated, h.toResponse(c.Request.Context(), created))
}

func (h *BookingHandler) list(c *gin.Context) {
	bookings, err := h.service.ListBookings(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}

	out := make([]bookingResponse, 0, len(bookings))
	for i := range bookings {
		out = append(out, h.toResponse(c.Request.Context(), &bookings[i]))
	}
	c.JSON(http.StatusOK, out)
}

func (h *BookingHandler) get(c *gin.Context) {
	b, err := h.service.GetBooking(c.Request.Context(), c.Param("bookingId"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, h.toResponse(c.Request.Context(), b))
}

func (h *BookingHandler) cancel(c *gin.Context) {
	b, err := h.service.CancelBooking(c.Request.Context(), c.Param("bookingId"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, cancelResponse{
		Message: "Cancelled",
		Booking: h.toResponse(c.Request.Context(), b),
	})
}

func (h *BookingHandler) toResponse(ctx context.Context, b *domain.Booking) bookingResponse {
	resp := bookingResponse{
		BookingID:     b.ID,
		ShowID:        b.ShowID,
		CustomerName:  b.CustomerName,
		CustomerPhone: b.CustomerPhone,
		Seats:         b.Seats,
		TotalAmount:   b.TotalAmount.StringFixed(2),
		Timestamp:     b.CreatedAt.UTC().Format(time.RFC3339),
		Status:        string(b.Status),
	}
	if h.shows != nil {
		if show, err := h.shows.GetShow(ctx, b.ShowID); err == nil {
			sr := toShowResponse(*show)
			resp.Show = &sr
		}
	}
	return resp
}
