// Package cache holds the in-process render cache and the tier that stacks it
// in front of a shared cache.
package cache

import (
	"context"
	"time"

	"github.com/maypok86/otter/v2"
)

const (
	defaultMaxEntries = 10_000
	defaultTTL        = 10 * time.Minute
)

// Memory is a bounded in-process cache. Entries expire ttl after being
// written.
type Memory struct {
	cache *otter.Cache[string, []byte]
}

func NewMemory(maxEntries int, ttl time.Duration) *Memory {
	if maxEntries <= 0 {
		maxEntries = defaultMaxEntries
	}
	if ttl <= 0 {
		ttl = defaultTTL
	}

	return &Memory{
		cache: otter.Must(&otter.Options[string, []byte]{
			MaximumSize:      maxEntries,
			ExpiryCalculator: otter.ExpiryWriting[string, []byte](ttl),
		}),
	}
}

func (m *Memory) Get(_ context.Context, key string) ([]byte, bool, error) {
	v, ok := m.cache.GetIfPresent(key)
	return v, ok, nil
}

func (m *Memory) Set(_ context.Context, key string, value []byte) error {
	m.cache.Set(key, value)
	return nil
}

func (m *Memory) Purge(context.Context) error {
	m.cache.InvalidateAll()
	return nil
}
