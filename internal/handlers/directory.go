// Copyright (c) 2026 Ba7besh <team@ba7besh.app>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"ba7besh/internal/cache"
	"ba7besh/internal/store"
)

// Directory groups the reference-data lookups clients need on almost every
// screen: the category tree and the tag vocabulary. Both are served through
// the Valkey lookup cache when one is configured.
type Directory struct {
	categoryStore *store.CategoryStore
	tagStore      *store.TagStore
	lookupCache   *cache.LookupCache
}

// NewDirectory creates a new Directory handler group. lookupCache may be nil
// when Valkey is not configured; lookups then always hit the store.
func NewDirectory(categoryStore *store.CategoryStore, tagStore *store.TagStore, lookupCache *cache.LookupCache) *Directory {
	return &Directory{
		categoryStore: categoryStore,
		tagStore:      tagStore,
		lookupCache:   lookupCache,
	}
}

// Categories handles GET /categories, the full category tree.
func (h *Directory) Categories(w http.ResponseWriter, r *http.Request) {
	h.serveLookup(w, r, cache.CategoryTreeKey, func(ctx context.Context) (any, error) {
		return h.categoryStore.Tree(ctx)
	})
}

// Tags handles GET /tags, the distinct tag list.
func (h *Directory) Tags(w http.ResponseWriter, r *http.Request) {
	h.serveLookup(w, r, cache.TagListKey, func(ctx context.Context) (any, error) {
		return h.tagStore.List(ctx)
	})
}

// serveLookup serves a cached lookup, falling through to the store on miss
// and repopulating the cache from the marshaled response.
func (h *Directory) serveLookup(w http.ResponseWriter, r *http.Request, key string, fetch func(context.Context) (any, error)) {
	ctx := r.Context()

	if h.lookupCache != nil {
		if payload, ok := h.lookupCache.Get(ctx, key); ok {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusOK)
			w.Write(payload)
			return
		}
	}

	result, err := fetch(ctx)
	if err != nil {
		writeError(w, r, err)
		return
	}

	payload, err := json.Marshal(result)
	if err != nil {
		writeError(w, r, err)
		return
	}
	if h.lookupCache != nil {
		h.lookupCache.Set(ctx, key, payload)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write(payload)
}
