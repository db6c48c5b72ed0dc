package api

import (
	"net/http"
	"path/filepath"
	"time"

	"github.com/Domenick1991/showbooking/internal/logger"
	"github.com/Domenick1991/showbooking/internal/service/booking"
	"github.com/Domenick1991/showbooking/internal/service/movies"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	httpSwagger "github.com/swaggo/http-swagger"
)

const requestIDHeader = "X-Request-ID"

type RouterConfig struct {
	// SwaggerDir holds openapi.yaml; empty disables the docs routes.
	SwaggerDir string
}

func NewRouter(cfg RouterConfig, log logger.Logger, movieSvc movies.MovieUseCase, bookingSvc booking.BookingUseCase) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery(), RequestLogger(log))

	group := router.Group("/api")
	group.GET("/health", health)
	NewMovieHandler(movieSvc).Register(group)
	NewBookingHandler(bookingSvc, movieSvc).Register(group)

	if cfg.SwaggerDir != "" {
		router.StaticFile("/docs/openapi.yaml", filepath.Join(cfg.SwaggerDir, "openapi.yaml"))
		router.GET("/swagger/*any", gin.WrapH(httpSwagger.Handler(httpSwagger.URL("/docs/openapi.yaml"))))
	}

	router.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"message": "endpoint not found"})
	})
	return router
}

func health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "OK"})
}

// RequestLogger tags each request with an id and logs it once it completes.
func RequestLogger(log logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		requestID := c.GetHeader(requestIDHeader)
		if requestID == "" {
			requestID = uuid.NewString()
		}
		c.Header(requestIDHeader, requestID)

		c.Next()

		fields := []any{
			"request_id", requestID,
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
			"duration_ms", time.Since(start).Milliseconds(),
		}
		if errs := c.Errors.ByType(gin.ErrorTypeAny); len(errs) > 0 {
			log.Error("HTTP request failed", append(fields, "error", errs.String())...)
			return
		}
		log.Info("HTTP request", fields...)
	}
}
