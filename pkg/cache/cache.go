// Package cache stores rendered pages between builds.
//
// Keys are content hashes of everything that influences a page, so an entry
// never has to be invalidated explicitly: a changed snippet, template or
// option simply produces a different key. Entries still carry a TTL so the
// cache directory does not grow without bound.
package cache

import (
	"context"
	"time"
)

// TTLPage is how long a rendered page stays cached.
const TTLPage = 7 * 24 * time.Hour

// Cache is a byte store keyed by string.
type Cache interface {
	// Get returns the cached value and whether it was found.
	Get(ctx context.Context, key string) ([]byte, bool, error)
	// Set stores data under key. A zero ttl never expires.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error
	// Delete removes key. Missing keys are not an error.
	Delete(ctx context.Context, key string) error
	// Close releases resources held by the cache.
	Close() error
}
