package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math/rand"
	"time"

	"github.com/alwaysshuvo/ProductHub--Server--Simplify-Your-Product-Management/internal/domain"
	"github.com/redis/go-redis/v9"
)

const (
	keyPrefix     = "producthub:cart:"
	defaultTTL    = 15 * time.Minute
	defaultJitter = 5 * time.Minute
)

// RedisCache keeps carts as JSON under producthub:cart:<userId>. Entries
// expire after ttl plus a random share of jitter so that carts cached
// together do not all expire together.
type RedisCache struct {
	client redis.UniversalClient
	ttl    time.Duration
	jitter time.Duration
}

type Option func(*RedisCache)

func WithTTL(ttl, jitter time.Duration) Option {
	return func(r *RedisCache) {
		r.ttl = ttl
		r.jitter = jitter
	}
}

func NewRedisCache(client redis.UniversalClient, opts ...Option) *RedisCache {
	r := &RedisCache{
		client: client,
		ttl:    defaultTTL,
		jitter: defaultJitter,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Get returns ErrCacheMiss for absent entries and for entries that no longer
// decode; the latter are evicted.
func (r *RedisCache) Get(ctx context.Context, userID string) (*domain.Cart, error) {
	key := cacheKey(userID)

	data, err := r.client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrCacheMiss
	}
	if err != nil {
		return nil, fmt.Errorf("redis get %s: %w", key, err)
	}

	var cart domain.Cart
	if errDecode := json.Unmarshal(data, &cart); errDecode != nil {
		r.client.Del(ctx, key)
		return nil, fmt.Errorf("%w: corrupt entry %s: %v", ErrCacheMiss, key, errDecode)
	}
	return &cart, nil
}

func (r *RedisCache) Set(ctx context.Context, userID string, cart *domain.Cart) error {
	payload, err := json.Marshal(cart)
	if err != nil {
		return fmt.Errorf("encode cart: %w", err)
	}

	key := cacheKey(userID)
	if err := r.client.Set(ctx, key, payload, r.expiry()).Err(); err != nil {
		return fmt.Errorf("redis set %s: %w", key, err)
	}
	return nil
}

func (r *RedisCache) Delete(ctx context.Context, userID string) error {
	key := cacheKey(userID)
	if err := r.client.Del(ctx, key).Err(); err != nil {
		return fmt.Errorf("redis del %s: %w", key, err)
	}
	return nil
}

func (r *RedisCache) expiry() time.Duration {
	if r.jitter <= 0 {
		return r.ttl
	}
	return r.ttl + time.Duration(rand.Int63n(int64(r.jitter)))
}

func cacheKey(userID string) string {
	return keyPrefix + userID
}
