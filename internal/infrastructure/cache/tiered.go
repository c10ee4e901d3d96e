package cache

import (
	"context"
	"errors"

	"github.com/rs/zerolog"

	"github.com/99minutos/eld-logs/internal/core/ports"
)

// Tiered reads through a fast local cache before a shared one. Hits in the
// shared tier are copied back into the local tier.
type Tiered struct {
	local  ports.RenderCache
	shared ports.RenderCache
	log    zerolog.Logger
}

func NewTiered(local, shared ports.RenderCache, log zerolog.Logger) *Tiered {
	return &Tiered{local: local, shared: shared, log: log}
}

func (t *Tiered) Get(ctx context.Context, key string) ([]byte, bool, error) {
	if v, ok, err := t.local.Get(ctx, key); err == nil && ok {
		return v, true, nil
	}

	v, ok, err := t.shared.Get(ctx, key)
	if err != nil || !ok {
		return nil, false, err
	}

	if err := t.local.Set(ctx, key, v); err != nil {
		t.log.Warn().Err(err).Str("key", key).Msg("failed to back-fill local cache")
	}
	return v, true, nil
}

// Set writes both tiers. A shared-tier failure is returned after the local
// write has gone through.
func (t *Tiered) Set(ctx context.Context, key string, value []byte) error {
	return errors.Join(t.local.Set(ctx, key, value), t.shared.Set(ctx, key, value))
}

func (t *Tiered) Purge(ctx context.Context) error {
	return errors.Join(t.local.Purge(ctx), t.shared.Purge(ctx))
}
