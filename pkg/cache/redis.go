package cache

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"

	apperr "github.com/elitelau/frog-leap-problem/pkg/errors"
)

// DefaultNamespace prefixes every key written by RedisCache unless another
// namespace is given.
const DefaultNamespace = "frogleap:"

// RedisCache stores entries as plain Redis strings under a namespace prefix.
// It is safe for concurrent use.
type RedisCache struct {
	rdb *redis.Client
	ns  string
}

// NewRedisCache connects to addr and verifies the connection with PING,
// retrying transient failures.
func NewRedisCache(ctx context.Context, addr, namespace string) (*RedisCache, error) {
	if addr == "" {
		return nil, apperr.New(apperr.ErrCodeInvalidConfig, "redis cache needs an address")
	}
	if namespace == "" {
		namespace = DefaultNamespace
	}
	return newRedisCache(ctx, &redis.Options{Addr: addr}, namespace, defaultRetry)
}

func newRedisCache(ctx context.Context, opts *redis.Options, ns string, policy retryPolicy) (*RedisCache, error) {
	c := &RedisCache{rdb: redis.NewClient(opts), ns: ns}

	err := policy.do(ctx, func() error {
		if err := c.rdb.Ping(ctx).Err(); err != nil {
			return Retryable(err)
		}
		return nil
	})
	if err != nil {
		c.rdb.Close()
		return nil, apperr.Wrap(apperr.ErrCodeCache, err, "connect to redis at %s", opts.Addr)
	}
	return c, nil
}

func (c *RedisCache) key(k string) string { return c.ns + k }

// Get returns a miss for absent or expired keys.
func (c *RedisCache) Get(ctx context.Context, key string) ([]byte, bool, error) {
	data, err := c.rdb.Get(ctx, c.key(key)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, apperr.Wrap(apperr.ErrCodeCache, err, "redis get %s", key)
	}
	return data, true, nil
}

// Set stores data with SET, using ttl as the expiry when positive.
func (c *RedisCache) Set(ctx context.Context, key string, data []byte, ttl time.Duration) error {
	if ttl < 0 {
		ttl = 0
	}
	if err := c.rdb.Set(ctx, c.key(key), data, ttl).Err(); err != nil {
		return apperr.Wrap(apperr.ErrCodeCache, err, "redis set %s", key)
	}
	return nil
}

func (c *RedisCache) Delete(ctx context.Context, key string) error {
	if err := c.rdb.Del(ctx, c.key(key)).Err(); err != nil {
		return apperr.Wrap(apperr.ErrCodeCache, err, "redis del %s", key)
	}
	return nil
}

// Clear deletes every key under the namespace using SCAN, so it never
// blocks the server the way KEYS would.
func (c *RedisCache) Clear(ctx context.Context) (int, error) {
	count := 0
	iter := c.rdb.Scan(ctx, 0, c.ns+"*", 100).Iterator()
	for iter.Next(ctx) {
		n, err := c.rdb.Del(ctx, iter.Val()).Result()
		if err != nil {
			return count, apperr.Wrap(apperr.ErrCodeCache, err, "redis del %s", iter.Val())
		}
		count += int(n)
	}
	if err := iter.Err(); err != nil {
		return count, apperr.Wrap(apperr.ErrCodeCache, err, "redis scan")
	}
	return count, nil
}

// Ping checks that the server is still reachable.
func (c *RedisCache) Ping(ctx context.Context) error {
	return c.rdb.Ping(ctx).Err()
}

func (c *RedisCache) Close() error { return c.rdb.Close() }

var (
	_ Cache   = (*RedisCache)(nil)
	_ Clearer = (*RedisCache)(nil)
)
