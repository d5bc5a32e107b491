package cache

import (
	"context"
	"time"

	"github.com/elitelau/frog-leap-problem/pkg/observability"
)

// Observed reports hits, misses and stores to the registered cache hooks.
type Observed struct {
	inner   Cache
	keyType string
}

// NewObserved wraps inner. keyType labels the events (for example "svg").
func NewObserved(inner Cache, keyType string) *Observed {
	return &Observed{inner: inner, keyType: keyType}
}

func (o *Observed) Get(ctx context.Context, key string) ([]byte, bool, error) {
	data, ok, err := o.inner.Get(ctx, key)
	if err != nil {
		return nil, false, err
	}
	if ok {
		observability.Cache().OnCacheHit(ctx, o.keyType)
	} else {
		observability.Cache().OnCacheMiss(ctx, o.keyType)
	}
	return data, ok, nil
}

func (o *Observed) Set(ctx context.Context, key string, data []byte, ttl time.Duration) error {
	if err := o.inner.Set(ctx, key, data, ttl); err != nil {
		return err
	}
	observability.Cache().OnCacheSet(ctx, o.keyType, len(data))
	return nil
}

func (o *Observed) Delete(ctx context.Context, key string) error {
	return o.inner.Delete(ctx, key)
}

func (o *Observed) Close() error { return o.inner.Close() }
