package cache

import (
	"context"
	"time"
)

// NullCache is the page cache used for --no-cache builds and when the cache
// directory cannot be created. Every lookup misses, so every page is
// rendered from its template.
type NullCache struct{}

// NewNullCache returns a cache that stores nothing.
func NewNullCache() *NullCache {
	return &NullCache{}
}

// Get reports a miss for every key.
func (*NullCache) Get(context.Context, string) ([]byte, bool, error) {
	return nil, false, nil
}

// Set drops the page.
func (*NullCache) Set(context.Context, string, []byte, time.Duration) error {
	return nil
}

// Delete has nothing to remove.
func (*NullCache) Delete(context.Context, string) error {
	return nil
}

// Close releases nothing.
func (*NullCache) Close() error {
	return nil
}

var _ Cache = (*NullCache)(nil)
