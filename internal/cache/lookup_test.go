// Copyright (c) 2026 Ba7besh <team@ba7besh.app>
// All rights reserved. See LICENSE for details.

// Integration tests for the lookup cache. They require a running Valkey
// instance and skip when none is available; DB 15 keeps test keys away
// from application data.
package cache

import (
	"context"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

func testValkey(t *testing.T) *redis.Client {
	t.Helper()

	host := os.Getenv("VALKEY_HOST")
	if host == "" {
		host = "localhost"
	}
	port := os.Getenv("VALKEY_PORT")
	if port == "" {
		port = "6379"
	}

	client := redis.NewClient(&redis.Options{
		Addr: fmt.Sprintf("%s:%s", host, port),
		DB:   15,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		t.Skipf("skipping: Valkey not available: %v", err)
	}
	t.Cleanup(func() { client.Close() })
	return client
}

func TestLookupCacheGetSet(t *testing.T) {
	client := testValkey(t)
	lc := NewLookupCache(client, time.Minute)
	ctx := context.Background()

	key := "test-" + uuid.NewString()
	t.Cleanup(func() { client.Del(ctx, "lookup:"+key) })

	if _, ok := lc.Get(ctx, key); ok {
		t.Fatal("expected miss on fresh key")
	}

	payload := []byte(`[{"id":"c1","en_name":"Restaurants"}]`)
	lc.Set(ctx, key, payload)

	got, ok := lc.Get(ctx, key)
	if !ok {
		t.Fatal("expected hit after Set")
	}
	if string(got) != string(payload) {
		t.Errorf("payload: got %q, want %q", got, payload)
	}
}

func TestLookupCacheTTL(t *testing.T) {
	client := testValkey(t)
	lc := NewLookupCache(client, time.Minute)
	ctx := context.Background()

	key := "test-" + uuid.NewString()
	t.Cleanup(func() { client.Del(ctx, "lookup:"+key) })
	lc.Set(ctx, key, []byte("payload"))

	ttl, err := client.TTL(ctx, "lookup:"+key).Result()
	if err != nil {
		t.Fatalf("TTL: %v", err)
	}
	if ttl <= 0 || ttl > time.Minute {
		t.Errorf("ttl: got %v, want in (0, 1m]", ttl)
	}
}

func TestNewLookupCacheDefaultTTL(t *testing.T) {
	lc := NewLookupCache(nil, 0)
	if lc.ttl != DefaultLookupTTL {
		t.Errorf("ttl: got %v, want %v", lc.ttl, DefaultLookupTTL)
	}
}
