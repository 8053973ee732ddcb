// Copyright (c) 2026 Ba7besh <team@ba7besh.app>
// All rights reserved. See LICENSE for details.

// lookup.go provides a Valkey-backed cache for slow-moving reference
// lookups: the category tree and the tag vocabulary. Search and
// recommendation results are never cached — only these directory lookups,
// which change rarely and are requested on almost every client screen.
package cache

import (
	"context"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	// lookupKeyPrefix is the Valkey key prefix for cached lookups.
	lookupKeyPrefix = "lookup:"

	// DefaultLookupTTL is how long a cached lookup stays fresh.
	DefaultLookupTTL = 10 * time.Minute
)

// Well-known lookup cache keys.
const (
	CategoryTreeKey = "categories"
	TagListKey      = "tags"
)

// LookupCache stores serialized lookup responses in Valkey. A miss or a
// Valkey error both read as a miss; callers fall through to the store.
type LookupCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewLookupCache creates a lookup cache backed by the given Valkey client.
func NewLookupCache(client *redis.Client, ttl time.Duration) *LookupCache {
	if ttl == 0 {
		ttl = DefaultLookupTTL
	}
	return &LookupCache{client: client, ttl: ttl}
}

// Get retrieves a cached lookup payload. Returns false on miss.
func (lc *LookupCache) Get(ctx context.Context, key string) ([]byte, bool) {
	val, err := lc.client.Get(ctx, lookupKeyPrefix+key).Bytes()
	if err == redis.Nil {
		return nil, false
	}
	if err != nil {
		slog.Warn("lookup cache get error", "key", key, "error", err)
		return nil, false
	}
	slog.Debug("lookup cache hit", "key", key)
	return val, true
}

// Set stores a lookup payload with the configured TTL. Entries are only ever
// evicted by expiry; no write path exists to invalidate them early.
func (lc *LookupCache) Set(ctx context.Context, key string, payload []byte) {
	if err := lc.client.Set(ctx, lookupKeyPrefix+key, payload, lc.ttl).Err(); err != nil {
		slog.Warn("lookup cache set error", "key", key, "error", err)
	}
}
