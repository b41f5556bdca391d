// Package cache stores normalized provider responses keyed by search
// parameters so repeated searches skip the provider round trip.
// Session state is never cached.
package cache

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/flight-search/flight-result-engine/internal/domain"
)

// KeyPrefix namespaces every cache key.
const KeyPrefix = "flightsearch:"

// SearchCache stores search results by their parameters.
type SearchCache interface {
	// Get returns the cached result; ok is false on a miss.
	Get(ctx context.Context, params domain.SearchParams) (result *domain.SearchResult, ok bool, err error)

	// Set stores result for params.
	Set(ctx context.Context, params domain.SearchParams, result *domain.SearchResult) error

	Close() error
}

// RedisConfig holds the Redis connection settings.
type RedisConfig struct {
	Addr     string
	Password string
	DB       int
	TTL      time.Duration
}

// RedisCache is a SearchCache backed by Redis.
type RedisCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisCache connects to Redis and verifies the connection.
func NewRedisCache(ctx context.Context, cfg RedisConfig) (*RedisCache, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("ping redis at %s: %w", cfg.Addr, err)
	}

	return NewRedisCacheWithClient(client, cfg.TTL), nil
}

// NewRedisCacheWithClient wraps an existing client.
func NewRedisCacheWithClient(client *redis.Client, ttl time.Duration) *RedisCache {
	return &RedisCache{client: client, ttl: ttl}
}

func (c *RedisCache) Get(ctx context.Context, params domain.SearchParams) (*domain.SearchResult, bool, error) {
	data, err := c.client.Get(ctx, Key(params)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("redis get: %w", err)
	}

	var result domain.SearchResult
	if err := json.Unmarshal(data, &result); err != nil {
		return nil, false, fmt.Errorf("decode cached result: %w", err)
	}
	return &result, true, nil
}

func (c *RedisCache) Set(ctx context.Context, params domain.SearchParams, result *domain.SearchResult) error {
	data, err := json.Marshal(result)
	if err != nil {
		return fmt.Errorf("encode result: %w", err)
	}

	if err := c.client.Set(ctx, Key(params), data, c.ttl).Err(); err != nil {
		return fmt.Errorf("redis set: %w", err)
	}
	return nil
}

func (c *RedisCache) Close() error {
	return c.client.Close()
}

// NoOpCache never stores anything.
type NoOpCache struct{}

func NewNoOpCache() *NoOpCache {
	return &NoOpCache{}
}

func (NoOpCache) Get(context.Context, domain.SearchParams) (*domain.SearchResult, bool, error) {
	return nil, false, nil
}

func (NoOpCache) Set(context.Context, domain.SearchParams, *domain.SearchResult) error {
	return nil
}

func (NoOpCache) Close() error {
	return nil
}

// Key derives the cache key of params. Callers normalize params first;
// one-way searches ignore ReturnDate.
func Key(params domain.SearchParams) string {
	keyData := struct {
		Origin        string
		Destination   string
		DepartureDate string
		ReturnDate    string
		Passengers    int
		TripType      domain.TripType
	}{
		Origin:        params.Origin,
		Destination:   params.Destination,
		DepartureDate: params.DepartureDate,
		Passengers:    params.Passengers,
		TripType:      params.TripType,
	}
	if params.IsRoundTrip() {
		keyData.ReturnDate = params.ReturnDate
	}

	data, _ := json.Marshal(keyData)
	hash := sha256.Sum256(data)
	return KeyPrefix + hex.EncodeToString(hash[:])
}

var (
	_ SearchCache = (*RedisCache)(nil)
	_ SearchCache = (*NoOpCache)(nil)
)
