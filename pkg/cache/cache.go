// Package cache stores traced tile documents between runs.
//
// Tracing a sprite is cheap but not free, and the CLI is typically run many
// times against the same art while tuning a layout. Entries are keyed by the
// sprite content hash and the trace options (see [Keyer]), so editing a
// sprite or changing an option produces a miss.
//
// Backends:
//   - [FileCache]: files under the user cache directory, the CLI default
//   - [RedisCache]: a shared Redis instance, for build machines that trace
//     the same asset set
//   - [NullCache]: stores nothing, used by --no-cache
package cache

import (
	"context"
	"time"
)

// TTLTrace is how long a traced tile stays cached.
const TTLTrace = 30 * 24 * time.Hour

// Cache is a byte-oriented key/value store with expiry.
type Cache interface {
	// Get returns the value for key. A missing or expired entry is a miss,
	// not an error.
	Get(ctx context.Context, key string) ([]byte, bool, error)
	// Set stores data under key. A ttl <= 0 never expires.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error
	// Delete removes key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error
	// Close releases backend resources.
	Close() error
}

// Clearer is implemented by caches that can drop every entry they own.
type Clearer interface {
	Clear(ctx context.Context) (int, error)
}
