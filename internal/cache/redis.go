package cache

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/Domenick1991/showbooking/config"
	"github.com/Domenick1991/showbooking/internal/domain"
	"github.com/redis/go-redis/v9"
)

const moviesKey = "cache:movies"

type RedisCache struct {
	client    *redis.Client
	moviesTTL time.Duration
}

func NewRedisCache(cfg config.RedisConfig, moviesTTL time.Duration) *RedisCache {
	return &RedisCache{
		client:    redis.NewClient(&redis.Options{Addr: cfg.Addr, Password: cfg.Password, DB: cfg.DB}),
		moviesTTL: moviesTTL,
	}
}

// GetMovies returns nil, nil on a cache miss.
func (c *RedisCache) GetMovies(ctx context.Context) ([]domain.Movie, error) {
	data, err := c.client.Get(ctx, moviesKey).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, err
	}

	var movies []domain.Movie
	if err := json.Unmarshal(data, &movies); err != nil {
		return nil, err
	}
	return movies, nil
}

func (c *RedisCache) SetMovies(ctx context.Context, movies []domain.Movie) error {
	payload, err := json.Marshal(movies)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, moviesKey, payload, c.moviesTTL).Err()
}

func (c *RedisCache) Ping(ctx context.Context) error {
	return c.client.Ping(ctx).Err()
}

func (c *RedisCache) Close() error {
	return c.client.Close()
}
