// Package cache provides content-addressed caching for solved layouts and
// rendered artifacts.
//
// Cache keys are derived from the manifest hash plus the options that went
// into the result (frame size, output format), so a cache entry is valid
// exactly as long as its inputs are unchanged.
//
// Three backends are provided:
//   - FileCache: entries as files under a directory, used by the CLI.
//   - RedisCache: shared cache for server deployments.
//   - NullCache: no-op backend used to disable caching.
package cache

import (
	"context"
	"time"
)

// Default TTLs per entry type. Layouts are cheap to recompute, artifacts
// less so; both keys are content-addressed so stale entries can only come
// from TTL expiry, never from input drift.
const (
	TTLLayout   = 7 * 24 * time.Hour
	TTLArtifact = 30 * 24 * time.Hour
)

// Cache is the backend-agnostic cache interface.
//
// Get returns (data, true, nil) on a hit and (nil, false, nil) on a miss;
// an error indicates a backend failure, not a miss.
type Cache interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
	Close() error
}
