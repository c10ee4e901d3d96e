package ports

import "context"

// RenderCache stores rendered timeline paths keyed by a digest of the render
// input. Implementations must be safe for concurrent use.
type RenderCache interface {
	// Get returns the cached value and whether it was present.
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, value []byte) error
	// Purge drops every entry owned by the cache.
	Purge(ctx context.Context) error
}
