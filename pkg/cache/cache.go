// Package cache stores computed graphs and rendered artifacts.
//
// Three backends implement [Cache]:
//
//   - [NullCache] never stores anything (caching disabled, tests)
//   - [FileCache] writes one JSON file per key (CLI default)
//   - [RedisCache] shares entries between API replicas
//
// Keys are produced by a [Keyer] from content hashes, so a changed task list,
// focus or layout setting never hits a stale entry. Loaded task lists are
// not cached at all.
package cache

import (
	"context"
	"errors"
	"time"
)

// ErrUnavailable is returned when a shared backend cannot be reached.
var ErrUnavailable = errors.New("cache backend unavailable")

// Cache is a byte-oriented key/value store with per-entry expiry.
// Implementations must be safe for concurrent use.
type Cache interface {
	// Get returns the value and true on a hit, nil and false on a miss.
	// An error means the backend failed, not that the key is absent.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores data under key. A ttl of zero means no expiry.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	// Delete removes key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases backend resources.
	Close() error
}

// Default entry lifetimes.
const (
	// TTLGraph applies to computed graphs. They are keyed by the task
	// content hash, so they never go stale, only unused.
	TTLGraph = 24 * time.Hour

	// TTLArtifact applies to rendered SVG/PNG/PDF/DOT output.
	TTLArtifact = 24 * time.Hour
)

// NullCache is the backend for `backend = "none"` and --no-cache: every
// Get misses and every Set is dropped.
type NullCache struct{}

// NewNullCache returns a cache that stores nothing.
func NewNullCache() Cache { return NullCache{} }

func (NullCache) Get(context.Context, string) ([]byte, bool, error) { return nil, false, nil }
func (NullCache) Set(context.Context, string, []byte, time.Duration) error { return nil }
func (NullCache) Delete(context.Context, string) error { return nil }
func (NullCache) Close() error { return nil }

var _ Cache = NullCache{}
