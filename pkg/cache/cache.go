package cache

import (
	"context"
	"strings"
	"time"

	apperr "github.com/elitelau/frog-leap-problem/pkg/errors"
)

// Cache stores opaque byte payloads under string keys.
//
// Get reports a miss as (nil, false, nil); an error means the backend itself
// failed. A ttl of zero stores the entry without expiry.
type Cache interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
	Close() error
}

// Clearer is implemented by backends that can drop every entry they own.
type Clearer interface {
	Clear(ctx context.Context) (int, error)
}

// Backend names accepted by Open.
const (
	BackendFile  = "file"
	BackendRedis = "redis"
	BackendNone  = "none"
)

// Backends lists the accepted backend names.
var Backends = []string{BackendFile, BackendRedis, BackendNone}

// Options selects and configures a backend.
type Options struct {
	Backend   string
	Dir       string // file backend
	RedisAddr string // redis backend
	Namespace string // key prefix for redis
}

// Open builds the backend named by opts.Backend. An empty name means file.
func Open(ctx context.Context, opts Options) (Cache, error) {
	switch strings.ToLower(opts.Backend) {
	case "", BackendFile:
		if opts.Dir == "" {
			return nil, apperr.New(apperr.ErrCodeInvalidConfig, "file cache needs a directory")
		}
		fc, err := NewFileCache(opts.Dir)
		if err != nil {
			return nil, err
		}
		return fc, nil
	case BackendRedis:
		rc, err := NewRedisCache(ctx, opts.RedisAddr, opts.Namespace)
		if err != nil {
			return nil, err
		}
		return rc, nil
	case BackendNone:
		return NewNullCache(), nil
	default:
		return nil, apperr.New(apperr.ErrCodeInvalidConfig,
			"unknown cache backend %q (want one of %s)", opts.Backend, strings.Join(Backends, ", "))
	}
}

// RenderKey names a rendered artifact by output format and source digest.
func RenderKey(format, sourceHash string) string {
	return hashKey("render", format, sourceHash)
}
