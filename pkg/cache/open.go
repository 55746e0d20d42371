package cache

import (
	"context"
	"fmt"
)

// Backend names accepted by Open.
const (
	BackendNone  = "none"
	BackendFile  = "file"
	BackendRedis = "redis"
)

// Open returns the cache for a backend name. dir is used by the file
// backend and url by the redis backend.
func Open(ctx context.Context, backend, dir, url string) (Cache, error) {
	switch backend {
	case "", BackendNone:
		return NewNullCache(), nil
	case BackendFile:
		fc, err := NewFileCache(dir)
		if err != nil {
			return nil, err
		}
		return fc, nil
	case BackendRedis:
		return NewRedisCache(ctx, url)
	default:
		return nil, fmt.Errorf("unknown cache backend %q", backend)
	}
}
