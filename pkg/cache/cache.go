// Package cache provides pluggable byte caches for scored word pairs.
//
// The file backend serves CLI runs, the redis backend serves shared
// deployments, and the null backend disables caching entirely. All
// backends store opaque bytes under hashed keys with optional expiry.
package cache

import (
	"context"
	"time"
)

// Cache is the interface all backends implement.
type Cache interface {
	// Get retrieves a value. The second return is false on a miss.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores a value. A ttl of zero means no expiry.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	// Delete removes a value. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases backend resources.
	Close() error
}

// DefaultTTL is the expiry applied to score entries by callers that have
// no better policy. Scores are deterministic for a word pair, so the TTL
// exists only to bound cache growth.
const DefaultTTL = 30 * 24 * time.Hour

// ScoreKey returns the cache key for a scored word pair. The pair is
// unordered: ScoreKey(a, b) == ScoreKey(b, a).
func ScoreKey(a, b string) string {
	if b < a {
		a, b = b, a
	}
	return hashKey("score", a, b)
}
