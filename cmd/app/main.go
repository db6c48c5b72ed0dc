package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Domenick1991/showbooking/api"
	"github.com/Domenick1991/showbooking/config"
	"github.com/Domenick1991/showbooking/internal/bootstrap"
	"github.com/Domenick1991/showbooking/internal/cache"
	"github.com/Domenick1991/showbooking/internal/catalog"
	"github.com/Domenick1991/showbooking/internal/kafka"
	"github.com/Domenick1991/showbooking/internal/logger"
	"github.com/Domenick1991/showbooking/internal/repository"
	"github.com/Domenick1991/showbooking/internal/service/booking"
	"github.com/Domenick1991/showbooking/internal/service/movies"
	"github.com/Domenick1991/showbooking/internal/service/reservation"
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"
)

func main() {
	_ = godotenv.Load()

	cfgPath := os.Getenv("CONFIG_PATH")
	if cfgPath == "" {
		cfgPath = "config.yaml"
	}

	cfg, err := config.LoadConfig(cfgPath)
	if err != nil {
		log.Fatalf("load config: %v", err)
	}
	if level := os.Getenv("LOG_LEVEL"); level != "" {
		cfg.Log.Level = level
	}

	if err := run(cfg); err != nil {
		log.Fatalf("server error: %v", err)
	}
}

func run(cfg *config.Config) error {
	lg := logger.New(cfg.Log.Level, cfg.Log.Format)
	defer lg.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	var pool *pgxpool.Pool
	if cfg.Database.Enabled() {
		var err error
		if pool, err = pgxpool.New(ctx, cfg.Database.DSN()); err != nil {
			return fmt.Errorf("connect postgres: %w", err)
		}
		defer pool.Close()
	}

	seed, err := loadSeed(ctx, cfg, pool)
	if err != nil {
		return err
	}
	store, err := catalog.NewStore(seed)
	if err != nil {
		return err
	}
	lg.Info("catalog loaded", "source", cfg.Catalog.Source, "movies", len(seed.Movies), "shows", len(seed.Shows))

	var movieCache movies.MovieCache
	if cfg.Redis.Addr != "" {
		redisCache := cache.NewRedisCache(cfg.Redis, time.Duration(cfg.Booking.MoviesCacheTTL)*time.Second)
		defer redisCache.Close()
		if err := redisCache.Ping(ctx); err != nil {
			lg.Warn("redis unavailable, movie cache misses will fall through", "error", err)
		}
		movieCache = redisCache
	}

	opts := []booking.BookingServiceOption{
		booking.WithIDPrefix(cfg.Booking.IDPrefix),
		booking.WithLogger(lg.With("component", "booking")),
	}
	if len(cfg.Kafka.Brokers) > 0 {
		producer := kafka.NewProducer(cfg.Kafka.Brokers, lg.With("component", "kafka"))
		defer producer.Close()
		if err := producer.CheckConnection(ctx); err != nil {
			lg.Warn("kafka unavailable, booking events will be dropped", "error", err)
		}
		opts = append(opts,
			booking.WithProducer(producer, cfg.Kafka.BookingTopic),
			booking.WithNotificationsTopic(cfg.Kafka.NotificationsTopic),
		)
	}

	engine := reservation.NewEngine(store)
	bookingService := booking.NewBookingService(store, engine, opts...)
	movieService := movies.NewMovieService(store, movieCache)

	if cfg.Log.Format == "json" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := api.NewRouter(api.RouterConfig{SwaggerDir: cfg.HTTP.SwaggerDir}, lg, movieService, bookingService)

	return bootstrap.Run(ctx, cfg, router, lg)
}

func loadSeed(ctx context.Context, cfg *config.Config, pool *pgxpool.Pool) (*catalog.Seed, error) {
	switch cfg.Catalog.Source {
	case config.CatalogSourceFile:
		return catalog.LoadSeedFile(cfg.Catalog.SeedPath)
	case config.CatalogSourcePostgres:
		return repository.NewCatalogRepository(pool).LoadSeed(ctx)
	default:
		return catalog.DefaultSeed()
	}
}
