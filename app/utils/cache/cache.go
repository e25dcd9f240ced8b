package cache

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
)

// Cache wraps the redis client behind the handful of primitives the
// services need: TTL'd get/set, atomic counters, batched reads and a
// cursor-based key scan.
type Cache struct {
	rdb *redis.Client
}

func New(rdb *redis.Client) *Cache {
	return &Cache{rdb: rdb}
}

// Get returns the raw value and whether the key exists.
func (c *Cache) Get(ctx context.Context, key string) (string, bool, error) {
	val, err := c.rdb.Get(ctx, key).Result()
	if errors.Is(err, redis.Nil) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return val, true, nil
}

func (c *Cache) Set(ctx context.Context, key, value string, ttl time.Duration) error {
	return c.rdb.Set(ctx, key, value, ttl).Err()
}

// GetJSON deserializes a cached payload into dest. Returns false on a miss.
func (c *Cache) GetJSON(ctx context.Context, key string, dest interface{}) (bool, error) {
	raw, ok, err := c.Get(ctx, key)
	if err != nil || !ok {
		return false, err
	}
	if err := json.Unmarshal([]byte(raw), dest); err != nil {
		return false, err
	}
	return true, nil
}

func (c *Cache) SetJSON(ctx context.Context, key string, value interface{}, ttl time.Duration) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return err
	}
	return c.Set(ctx, key, string(raw), ttl)
}

func (c *Cache) IncrBy(ctx context.Context, key string, n int64) (int64, error) {
	return c.rdb.IncrBy(ctx, key, n).Result()
}

func (c *Cache) Expire(ctx context.Context, key string, ttl time.Duration) error {
	return c.rdb.Expire(ctx, key, ttl).Err()
}

// MGet fetches all keys in one round trip. Missing keys come back as empty
// strings in the same positions.
func (c *Cache) MGet(ctx context.Context, keys ...string) ([]string, error) {
	if len(keys) == 0 {
		return nil, nil
	}
	vals, err := c.rdb.MGet(ctx, keys...).Result()
	if err != nil {
		return nil, err
	}
	out := make([]string, len(vals))
	for i, v := range vals {
		if s, ok := v.(string); ok {
			out[i] = s
		}
	}
	return out, nil
}

func (c *Cache) Del(ctx context.Context, keys ...string) error {
	if len(keys) == 0 {
		return nil
	}
	return c.rdb.Del(ctx, keys...).Err()
}

// Keys returns a restartable iterator over all keys matching pattern,
// backed by cursor-based SCAN so it never blocks the server.
func (c *Cache) Keys(pattern string) *KeyIterator {
	return &KeyIterator{rdb: c.rdb, pattern: pattern}
}

// KeyIterator walks SCAN pages lazily. The zero cursor returned by redis is
// the termination sentinel.
type KeyIterator struct {
	rdb     *redis.Client
	pattern string
	cursor  uint64
	buf     []string
	started bool
	done    bool
	current string
	err     error
}

func (it *KeyIterator) Next(ctx context.Context) bool {
	for len(it.buf) == 0 {
		if it.err != nil || (it.started && it.done) {
			return false
		}
		keys, cursor, err := it.rdb.Scan(ctx, it.cursor, it.pattern, 100).Result()
		if err != nil {
			it.err = err
			return false
		}
		it.started = true
		it.cursor = cursor
		it.buf = keys
		if cursor == 0 {
			it.done = true
			if len(it.buf) == 0 {
				return false
			}
		}
	}
	it.current = it.buf[0]
	it.buf = it.buf[1:]
	return true
}

func (it *KeyIterator) Key() string {
	return it.current
}

func (it *KeyIterator) Err() error {
	return it.err
}
