package api

import (
	"errors"
	"net/http"

	"github.com/Domenick1991/showbooking/internal/domain"
	"github.com/gin-gonic/gin"
)

// writeError maps domain errors to HTTP responses.
func writeError(c *gin.Context, err error) {
	var rejected *domain.BookingRejectedError
	var unavailable *domain.SeatsUnavailableError

	switch {
	case errors.As(err, &rejected):
		c.JSON(http.StatusConflict, gin.H{"message": "some seats are booked", "unavailableSeats": rejected.Unavailable})
	case errors.As(err, &unavailable):
		c.JSON(http.StatusConflict, gin.H{"message": "some seats are booked", "unavailableSeats": unavailable.Seats})
	case errors.Is(err, domain.ErrInvalidRequest):
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
	case errors.Is(err, domain.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"message": err.Error()})
	default:
		_ = c.Error(err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "internal server error"})
	}
}
