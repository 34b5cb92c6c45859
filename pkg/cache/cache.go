// Package cache stores finished run results so that an unchanged seed file
// is not saturated twice.
//
// # Backends
//
// [FileCache] keeps one JSON entry per key under a directory (the CLI uses
// the user cache directory). [NullCache] stores nothing and is used when
// caching is disabled.
//
// # Keys
//
// A [Keyer] derives keys from a hash of the normalized seed input and the
// line variant. The matching engine is deliberately not part of the key:
// every engine computes the same antichain. [ScopedKeyer] prefixes another
// keyer to separate namespaces.
package cache

import (
	"context"
	"time"
)

// Cache is a byte-oriented key/value store with optional expiry.
type Cache interface {
	// Get returns the stored value and whether it was found. A missing or
	// expired key is a miss, not an error.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores data under key. A ttl of zero never expires.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	// Delete removes key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases resources held by the cache.
	Close() error
}

// NullCache stores nothing: every Get misses. Runs started with --no-cache
// use it.
type NullCache struct{}

var _ Cache = NullCache{}

// NewNullCache returns a cache that never hits.
func NewNullCache() Cache { return NullCache{} }

func (NullCache) Get(context.Context, string) ([]byte, bool, error)        { return nil, false, nil }
func (NullCache) Set(context.Context, string, []byte, time.Duration) error { return nil }
func (NullCache) Delete(context.Context, string) error                     { return nil }
func (NullCache) Close() error                                             { return nil }
