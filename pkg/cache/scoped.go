package cache

import (
	"context"
	"time"
)

// Scoped prefixes every key before handing it to the inner cache. The CLI
// scopes entries by build version so that artifacts rendered by an older
// binary are never served by a newer one.
type Scoped struct {
	inner  Cache
	prefix string
}

// NewScoped wraps inner. A nil inner is replaced by a NullCache.
func NewScoped(inner Cache, prefix string) *Scoped {
	if inner == nil {
		inner = NewNullCache()
	}
	return &Scoped{inner: inner, prefix: prefix}
}

func (s *Scoped) Get(ctx context.Context, key string) ([]byte, bool, error) {
	return s.inner.Get(ctx, s.prefix+key)
}

func (s *Scoped) Set(ctx context.Context, key string, data []byte, ttl time.Duration) error {
	return s.inner.Set(ctx, s.prefix+key, data, ttl)
}

func (s *Scoped) Delete(ctx context.Context, key string) error {
	return s.inner.Delete(ctx, s.prefix+key)
}

func (s *Scoped) Close() error { return s.inner.Close() }

// Unwrap returns the inner cache.
func (s *Scoped) Unwrap() Cache { return s.inner }
