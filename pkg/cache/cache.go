package cache

import (
	"context"
	"time"
)

// Cache is the read-through cache contract used by the repositories.
// Implementations must treat a miss as (false, nil), not an error.
type Cache interface {
	// Get unmarshals the cached value for key into dest.
	// Returns true on a hit; dest is untouched on a miss.
	Get(ctx context.Context, key string, dest interface{}) (bool, error)

	// Set stores value under key for the given TTL.
	Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error

	// Delete removes keys from the cache.
	Delete(ctx context.Context, keys ...string) error

	// Ping verifies the backing store is reachable.
	Ping(ctx context.Context) error
}
