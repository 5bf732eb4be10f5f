package server

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	astarpa "github.com/RagnarGrootKoerkamp/astar-pairwise-aligner"
)

// ErrCacheMiss is returned by Cache.Get when no result is stored for a key.
var ErrCacheMiss = errors.New("astarpa: cache miss")

// Cache stores alignment results keyed by the content hash of a request, so repeated requests
// for the same (A, B, params) triple skip the search entirely.
type Cache interface {
	Get(ctx context.Context, key string) (astarpa.Result, error)
	Set(ctx context.Context, key string, result astarpa.Result) error
}

// Key derives a stable cache key from the two sequences and the serialized request parameters.
// It is exported so callers constructing a request can compute a key before deciding whether to
// call the server at all.
func Key(a, b string, params string) string {
	h := sha256.New()
	h.Write([]byte(a))
	h.Write([]byte{0})
	h.Write([]byte(b))
	h.Write([]byte{0})
	h.Write([]byte(params))
	return hex.EncodeToString(h.Sum(nil))
}

// NopCache never caches; Get always reports a miss. It is used when no redis.Client is
// configured, so the server works without a cache dependency.
type NopCache struct{}

func (NopCache) Get(ctx context.Context, key string) (astarpa.Result, error) {
	return astarpa.Result{}, ErrCacheMiss
}

func (NopCache) Set(ctx context.Context, key string, result astarpa.Result) error {
	return nil
}

// RedisCache caches results in redis, JSON-encoded, under a namespaced key with a fixed TTL.
type RedisCache struct {
	client *redis.Client
	ttl    time.Duration
	prefix string
}

// NewRedisCache wraps client as a Cache, namespacing all keys under "astarpa:align:" and
// expiring entries after ttl.
func NewRedisCache(client *redis.Client, ttl time.Duration) *RedisCache {
	return &RedisCache{client: client, ttl: ttl, prefix: "astarpa:align:"}
}

func (c *RedisCache) Get(ctx context.Context, key string) (astarpa.Result, error) {
	raw, err := c.client.Get(ctx, c.prefix+key).Bytes()
	if errors.Is(err, redis.Nil) {
		return astarpa.Result{}, ErrCacheMiss
	}
	if err != nil {
		return astarpa.Result{}, fmt.Errorf("astarpa: redis get: %w", err)
	}
	var result astarpa.Result
	if err := json.Unmarshal(raw, &result); err != nil {
		return astarpa.Result{}, fmt.Errorf("astarpa: decoding cached result: %w", err)
	}
	return result, nil
}

func (c *RedisCache) Set(ctx context.Context, key string, result astarpa.Result) error {
	raw, err := json.Marshal(result)
	if err != nil {
		return fmt.Errorf("astarpa: encoding result for cache: %w", err)
	}
	if err := c.client.Set(ctx, c.prefix+key, raw, c.ttl).Err(); err != nil {
		return fmt.Errorf("astarpa: redis set: %w", err)
	}
	return nil
}
